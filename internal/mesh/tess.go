package mesh

import (
	libtess2 "github.com/hajimehoshi/go-libtess2"
)

// Tess2 triangulates rings with libtess2 under the odd winding rule. It is
// the default triangulator.
//
// Output triangles are counter-clockwise and index the input ring. Rings
// whose tessellation needs extra vertices (self-intersections) and rings
// that enclose no area fail with ErrTriangulationFailed.
type Tess2 struct{}

// Triangulate implements Triangulator.
func (Tess2) Triangulate(ring [][2]float64) ([]int, error) {
	n := len(ring)
	if n < 3 {
		return nil, &ErrTriangulationFailed{Points: n, Reason: "fewer than 3 points"}
	}

	// libtess2 works in float32 and returns its own vertex list, so
	// vertices are matched back to the ring by their float32 position.
	contour := make(libtess2.Contour, n)
	lookup := make(map[Vertex]int, n)
	for i, p := range ring {
		v := vertex(p)
		contour[i] = libtess2.Vertex{X: v.X, Y: v.Y}
		if _, ok := lookup[v]; !ok {
			lookup[v] = i
		}
	}

	elements, vertices, err := libtess2.Tesselate([]libtess2.Contour{contour}, libtess2.WindingRuleOdd)
	if err != nil {
		return nil, &ErrTriangulationFailed{Points: n, Reason: err.Error()}
	}

	remap := make([]int, len(vertices))
	for i, v := range vertices {
		id, ok := lookup[Vertex{X: v.X, Y: v.Y}]
		if !ok {
			return nil, &ErrTriangulationFailed{Points: n, Reason: "ring self-intersects"}
		}
		remap[i] = id
	}

	indices := make([]int, 0, len(elements))
	for i := 0; i+2 < len(elements); i += 3 {
		a, b, c := elements[i], elements[i+1], elements[i+2]
		if a < 0 || b < 0 || c < 0 || a >= len(remap) || b >= len(remap) || c >= len(remap) {
			continue // unused polygon slot
		}
		a, b, c = remap[a], remap[b], remap[c]

		switch turn := cross(ring[a], ring[b], ring[c]); {
		case turn > 0:
			indices = append(indices, a, b, c)
		case turn < 0:
			indices = append(indices, a, c, b)
		}
	}

	if len(indices) == 0 {
		return nil, &ErrTriangulationFailed{Points: n, Reason: "ring encloses no area"}
	}
	return indices, nil
}
