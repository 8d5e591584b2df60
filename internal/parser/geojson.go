package parser

import (
	"fmt"

	geojson "github.com/paulmach/go.geojson"
)

// FeatureCollection converts one object to GeoJSON. Arcs are resolved and
// decoded, positions are transformed and each geometry's properties are
// copied onto its feature.
func (t *Topology) FeatureCollection(object string) (*geojson.FeatureCollection, error) {
	obj, ok := t.Objects[object]
	if !ok {
		return nil, fmt.Errorf("object %q not found", object)
	}

	r := NewResolver(t, len(t.Arcs))
	fc := geojson.NewFeatureCollection()

	for i, g := range obj.Geometries {
		f, err := t.feature(r, g)
		if err != nil {
			return nil, fmt.Errorf("object %q geometry %d: %w", object, i, err)
		}
		for k, v := range g.Props() {
			f.SetProperty(k, v)
		}
		fc.AddFeature(f)
	}

	return fc, nil
}

func (t *Topology) feature(r *Resolver, g Geometry) (*geojson.Feature, error) {
	switch g := g.(type) {
	case *Point:
		return geojson.NewPointFeature(coordinate(t.DecodePosition(g.Coordinates))), nil

	case *MultiPoint:
		points := make([][]float64, len(g.Coordinates))
		for i, p := range g.Coordinates {
			points[i] = coordinate(t.DecodePosition(p))
		}
		return geojson.NewMultiPointFeature(points...), nil

	case *LineString:
		line, err := r.ResolveLine(g.Arcs)
		if err != nil {
			return nil, err
		}
		return geojson.NewLineStringFeature(coordinates(line)), nil

	case *MultiLineString:
		lines, err := r.ResolveRings(g.Arcs)
		if err != nil {
			return nil, err
		}
		return geojson.NewMultiLineStringFeature(nested(lines)...), nil

	case *Polygon:
		rings, err := r.ResolveRings(g.Arcs)
		if err != nil {
			return nil, err
		}
		return geojson.NewPolygonFeature(nested(rings)), nil

	case *MultiPolygon:
		polygons := make([][][][]float64, len(g.Arcs))
		for i, polygon := range g.Arcs {
			rings, err := r.ResolveRings(polygon)
			if err != nil {
				return nil, err
			}
			polygons[i] = nested(rings)
		}
		return geojson.NewMultiPolygonFeature(polygons...), nil
	}

	return nil, fmt.Errorf("unsupported geometry %T", g)
}

func coordinate(p [2]float64) []float64 {
	return []float64{p[0], p[1]}
}

func coordinates(points [][2]float64) [][]float64 {
	out := make([][]float64, len(points))
	for i, p := range points {
		out[i] = coordinate(p)
	}
	return out
}

func nested(lines [][][2]float64) [][][]float64 {
	out := make([][][]float64, len(lines))
	for i, line := range lines {
		out[i] = coordinates(line)
	}
	return out
}
