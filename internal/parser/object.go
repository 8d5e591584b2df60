package parser

import (
	"errors"

	geojson "github.com/paulmach/go.geojson"
	"go.uber.org/zap"
)

// Object is a named entry of the topology's "objects" member.
type Object struct {
	Name       string
	Type       string // "GeometryCollection", or the kind of a bare geometry object
	Geometries []Geometry
}

// parseObject builds an Object from its raw node.
//
// TopoJSON objects are usually GeometryCollections, but an object may also be
// a bare geometry; that case becomes a collection of one. An object with a
// "geometries" member and no type is read as a collection. Unknown kinds are
// rejected, or skipped and recorded when opts.SkipUnknownGeometries is set.
func parseObject(topo *Topology, name string, v any, opts ParseOptions) (*Object, error) {
	path := "objects." + name
	raw, err := ToMap(v, path)
	if err != nil {
		return nil, err
	}

	obj := &Object{Name: name}
	if t, ok := raw["type"].(string); ok {
		obj.Type = t
	}

	// A "geometries" member makes a collection even without a type tag.
	// Anything else is classified as one geometry, so the unknown-kind
	// policy applies to it like to any other geometry.
	rawGeoms, hasGeoms := raw["geometries"]
	var nodes []any
	if obj.Type == string(geojson.GeometryCollection) || (obj.Type == "" && hasGeoms) {
		obj.Type = string(geojson.GeometryCollection)
		if hasGeoms {
			if nodes, err = ToList(rawGeoms, path+".geometries"); err != nil {
				return nil, err
			}
		}
	} else {
		nodes = []any{raw}
	}

	obj.Geometries = make([]Geometry, 0, len(nodes))
	for i, node := range nodes {
		g, err := Classify(node, name, i)
		if err != nil {
			var unknown *ErrUnknownGeometryKind
			if opts.SkipUnknownGeometries && errors.As(err, &unknown) {
				topo.Skipped = append(topo.Skipped, SkippedGeometry{Object: name, Index: i, Kind: unknown.Kind})
				opts.logger().Warn("skipping geometry of unknown kind",
					zap.String("object", name),
					zap.Int("geometry", i),
					zap.String("kind", unknown.Kind))
				continue
			}
			return nil, err
		}
		obj.Geometries = append(obj.Geometries, g)
	}

	return obj, nil
}
