package parser

// topology.go - TopoJSON document model and arc decoding
//
// A topology stores every line once, in the shared arc table. Geometries
// refer to arcs by signed index and the quantization transform turns the
// integer arc coordinates back into map coordinates.

import (
	"sort"
)

// TopologyType is the expected value of the document's "type" member.
const TopologyType = "Topology"

// Topology is a parsed TopoJSON document. It is built once by the parser and
// is read-only afterwards, so it may be shared between goroutines.
type Topology struct {
	Type      string             // "Topology" for well-formed input
	Transform *Transform         // nil when the document is not quantized
	Arcs      [][][]float64      // Raw arcs: positions (delta-coded when quantized)
	Objects   map[string]*Object // Named objects
	BBox      []float64          // Optional [minX, minY, ..., maxX, maxY]

	// Skipped lists geometries dropped because of an unknown kind.
	// Only populated when ParseOptions.SkipUnknownGeometries is set.
	Skipped []SkippedGeometry

	root any // Untyped document tree, kept for JSONPath queries
}

// SkippedGeometry records a geometry dropped during classification.
type SkippedGeometry struct {
	Object string
	Index  int
	Kind   string
}

// Root returns the untyped value tree the topology was built from.
func (t *Topology) Root() any {
	return t.root
}

// ObjectNames returns object names in sorted order.
// Map iteration order is random, sorting keeps mesh output deterministic.
func (t *Topology) ObjectNames() []string {
	names := make([]string, 0, len(t.Objects))
	for name := range t.Objects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ArcCount returns the number of arcs in the arc table.
func (t *Topology) ArcCount() int {
	return len(t.Arcs)
}

// DecodeArc decodes the arc with the given (non-negative) id.
func (t *Topology) DecodeArc(id int) ([][2]float64, error) {
	if id < 0 || id >= len(t.Arcs) {
		return nil, &ErrInvalidArcReference{Index: id, ArcCount: len(t.Arcs)}
	}
	return DecodeArc(t.Arcs[id], t.Transform), nil
}

// DecodePosition maps a Point/MultiPoint position to map coordinates.
// Positions are absolute, so only the transform applies.
func (t *Topology) DecodePosition(p [2]int) [2]float64 {
	if t.Transform == nil {
		return [2]float64{float64(p[0]), float64(p[1])}
	}
	return t.Transform.Apply(float64(p[0]), float64(p[1]))
}

// accumulator is the running sum of arc deltas.
type accumulator struct {
	x, y float64
}

func (a accumulator) add(dx, dy float64) accumulator {
	return accumulator{x: a.x + dx, y: a.y + dy}
}

// DecodeArc turns one raw arc into absolute points.
//
// With a transform, each pair is a delta from the previous position (the
// first is relative to the origin): the running sum is scaled and translated.
// Without a transform, pairs are returned unchanged and nothing accumulates.
func DecodeArc(raw [][]float64, transform *Transform) [][2]float64 {
	points := make([][2]float64, 0, len(raw))

	if transform == nil {
		for _, p := range raw {
			points = append(points, [2]float64{p[0], p[1]})
		}
		return points
	}

	var sum accumulator
	for _, d := range raw {
		sum = sum.add(d[0], d[1])
		points = append(points, transform.Apply(sum.x, sum.y))
	}
	return points
}

// parseArcs reads the top-level "arcs" member. Every position needs at least
// two values; extra dimensions are kept but ignored by decoding.
func parseArcs(v any) ([][][]float64, error) {
	arcs, err := ToFloatArray3(v, "arcs")
	if err != nil {
		return nil, err
	}
	for i, arc := range arcs {
		for j, p := range arc {
			if len(p) < 2 {
				return nil, &ErrShapeMismatch{
					Path:     index(index("arcs", i), j),
					Expected: "pair [x, y]",
					Got:      describe(toAnySlice(p)),
				}
			}
		}
	}
	return arcs, nil
}

// parseBBox reads the optional "bbox" member, which must hold 2N numbers.
func parseBBox(v any) ([]float64, error) {
	bbox, err := ToFloatArray(v, "bbox")
	if err != nil {
		return nil, err
	}
	if len(bbox)%2 != 0 {
		return nil, &ErrShapeMismatch{Path: "bbox", Expected: "2N numbers", Got: describe(v)}
	}
	return bbox, nil
}

func toAnySlice(values []float64) []any {
	out := make([]any, len(values))
	for i, f := range values {
		out[i] = f
	}
	return out
}
