package parser

// geometry.go - TopoJSON geometry variants and the kind classifier

import (
	"strconv"

	geojson "github.com/paulmach/go.geojson"
	"github.com/spf13/cast"
)

// NameProperty is the properties key holding a geometry's display name.
const NameProperty = "nam"

// Geometry is one of Point, MultiPoint, LineString, MultiLineString, Polygon
// or MultiPolygon. Callers switch on the concrete type.
type Geometry interface {
	// Kind returns the geometry's TopoJSON type tag.
	Kind() geojson.GeometryType

	// Props returns the geometry's properties (nil when absent).
	Props() map[string]any

	isGeometry()
}

// Point is a single quantized position. It is not arc-indexed.
type Point struct {
	Properties  map[string]any
	Coordinates [2]int
}

// MultiPoint is a set of quantized positions.
type MultiPoint struct {
	Properties  map[string]any
	Coordinates [][2]int
}

// LineString is one polyline made of signed arc indices.
type LineString struct {
	Properties map[string]any
	Arcs       []int
}

// MultiLineString is a set of polylines.
type MultiLineString struct {
	Properties map[string]any
	Arcs       [][]int
}

// Polygon is a set of rings, the first being the exterior.
type Polygon struct {
	Properties map[string]any
	Arcs       [][]int
}

// MultiPolygon is a set of polygons.
type MultiPolygon struct {
	Properties map[string]any
	Arcs       [][][]int
}

func (*Point) Kind() geojson.GeometryType           { return geojson.GeometryPoint }
func (*MultiPoint) Kind() geojson.GeometryType      { return geojson.GeometryMultiPoint }
func (*LineString) Kind() geojson.GeometryType      { return geojson.GeometryLineString }
func (*MultiLineString) Kind() geojson.GeometryType { return geojson.GeometryMultiLineString }
func (*Polygon) Kind() geojson.GeometryType         { return geojson.GeometryPolygon }
func (*MultiPolygon) Kind() geojson.GeometryType    { return geojson.GeometryMultiPolygon }

func (g *Point) Props() map[string]any           { return g.Properties }
func (g *MultiPoint) Props() map[string]any      { return g.Properties }
func (g *LineString) Props() map[string]any      { return g.Properties }
func (g *MultiLineString) Props() map[string]any { return g.Properties }
func (g *Polygon) Props() map[string]any         { return g.Properties }
func (g *MultiPolygon) Props() map[string]any    { return g.Properties }

func (*Point) isGeometry()           {}
func (*MultiPoint) isGeometry()      {}
func (*LineString) isGeometry()      {}
func (*MultiLineString) isGeometry() {}
func (*Polygon) isGeometry()         {}
func (*MultiPolygon) isGeometry()    {}

// IsGeometryKind reports whether s is one of the six geometry type tags.
// Matching is exact and case-sensitive.
func IsGeometryKind(s string) bool {
	switch geojson.GeometryType(s) {
	case geojson.GeometryPoint, geojson.GeometryMultiPoint,
		geojson.GeometryLineString, geojson.GeometryMultiLineString,
		geojson.GeometryPolygon, geojson.GeometryMultiPolygon:
		return true
	}
	return false
}

// Classify converts one raw geometry node into its typed variant.
//
// object and idx are only used to label errors. A missing or non-string
// "type" is a shape mismatch, except JSON null which TopoJSON uses for
// empty geometries and is reported as the unknown kind "null".
func Classify(node any, object string, idx int) (Geometry, error) {
	path := index("objects."+object+".geometries", idx)

	obj, err := ToMap(node, path)
	if err != nil {
		return nil, err
	}

	rawType, ok := obj["type"]
	if !ok {
		return nil, &ErrShapeMismatch{Path: path + ".type", Expected: "geometry type string", Got: "missing"}
	}
	if rawType == nil {
		return nil, &ErrUnknownGeometryKind{Object: object, Index: idx, Kind: "null"}
	}
	kind, ok := rawType.(string)
	if !ok {
		return nil, mismatch(path+".type", "geometry type string", rawType)
	}

	if !IsGeometryKind(kind) {
		return nil, &ErrUnknownGeometryKind{Object: object, Index: idx, Kind: kind}
	}

	var props map[string]any
	if raw, ok := obj["properties"]; ok && raw != nil {
		if props, err = ToMap(raw, path+".properties"); err != nil {
			return nil, err
		}
	}

	coords, hasCoords := obj["coordinates"]
	arcs, hasArcs := obj["arcs"]

	var g Geometry
	switch geojson.GeometryType(kind) {
	case geojson.GeometryPoint:
		p := &Point{Properties: props}
		if hasCoords {
			p.Coordinates, err = toPair(coords, path+".coordinates")
		}
		g = p
	case geojson.GeometryMultiPoint:
		mp := &MultiPoint{Properties: props}
		if hasCoords {
			mp.Coordinates, err = toPairs(coords, path+".coordinates")
		}
		g = mp
	case geojson.GeometryLineString:
		ls := &LineString{Properties: props}
		if hasArcs {
			ls.Arcs, err = ToIntArray(arcs, path+".arcs")
		}
		g = ls
	case geojson.GeometryMultiLineString:
		mls := &MultiLineString{Properties: props}
		if hasArcs {
			mls.Arcs, err = ToIntArray2(arcs, path+".arcs")
		}
		g = mls
	case geojson.GeometryPolygon:
		pg := &Polygon{Properties: props}
		if hasArcs {
			pg.Arcs, err = ToIntArray2(arcs, path+".arcs")
		}
		g = pg
	case geojson.GeometryMultiPolygon:
		mpg := &MultiPolygon{Properties: props}
		if hasArcs {
			mpg.Arcs, err = ToIntArray3(arcs, path+".arcs")
		}
		g = mpg
	}

	if err != nil {
		return nil, err
	}
	return g, nil
}

// ArcSequences returns every arc-index sequence of a geometry: the line of a
// LineString, each line of a MultiLineString, each ring of a Polygon and each
// ring of every polygon of a MultiPolygon. Points have none.
func ArcSequences(g Geometry) [][]int {
	switch g := g.(type) {
	case *LineString:
		return [][]int{g.Arcs}
	case *MultiLineString:
		return g.Arcs
	case *Polygon:
		return g.Arcs
	case *MultiPolygon:
		rings := make([][]int, 0, len(g.Arcs))
		for _, polygon := range g.Arcs {
			rings = append(rings, polygon...)
		}
		return rings
	}
	return nil
}

// DisplayName returns the geometry's label: the "nam" property when it is
// set and non-empty, otherwise the 1-based position of the geometry within
// its object as a decimal string.
func DisplayName(g Geometry, idx int) string {
	if props := g.Props(); props != nil {
		if raw, ok := props[NameProperty]; ok && raw != nil {
			if name, err := cast.ToStringE(raw); err == nil && name != "" {
				return name
			}
		}
	}
	return strconv.Itoa(idx + 1)
}

func toPairs(v any, path string) ([][2]int, error) {
	list, err := ToList(v, path)
	if err != nil {
		return nil, mismatch(path, "[][]integer", v)
	}
	result := make([][2]int, len(list))
	for i, elem := range list {
		if result[i], err = toPair(elem, index(path, i)); err != nil {
			return nil, err
		}
	}
	return result, nil
}
