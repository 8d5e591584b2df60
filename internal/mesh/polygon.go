package mesh

import (
	"errors"
	"fmt"
)

// Triangulator turns an open ring (no repeated closing point) into a
// triangle index list referencing the ring's points.
type Triangulator interface {
	Triangulate(ring [][2]float64) ([]int, error)
}

// TriangulatorFunc adapts a function to the Triangulator interface.
type TriangulatorFunc func(ring [][2]float64) ([]int, error)

// Triangulate calls f(ring).
func (f TriangulatorFunc) Triangulate(ring [][2]float64) ([]int, error) {
	return f(ring)
}

// DefaultTriangulator is used when a nil Triangulator is passed.
var DefaultTriangulator Triangulator = Tess2{}

// MeshPolygon fills one ring.
//
// A closing point equal to the first point is dropped before triangulation.
// Rings with fewer than 3 distinct points return an empty mesh with
// ErrDegenerateInput and never reach the triangulator. Triangulator errors
// are reported as ErrTriangulationFailed with the ring's point count.
func MeshPolygon(ring [][2]float64, t Triangulator) (*Mesh, error) {
	points := openRing(ring)

	if distinct := countDistinct(points); distinct < 3 {
		return &Mesh{}, &ErrDegenerateInput{Kind: "polygon", Points: distinct, Minimum: 3}
	}

	if t == nil {
		t = DefaultTriangulator
	}

	indices, err := t.Triangulate(points)
	if err != nil {
		var failed *ErrTriangulationFailed
		if errors.As(err, &failed) {
			return &Mesh{}, err
		}
		return &Mesh{}, &ErrTriangulationFailed{Points: len(points), Reason: err.Error()}
	}

	m := &Mesh{
		Vertices: make([]Vertex, len(points)),
		Indices:  indices,
	}
	for i, p := range points {
		m.Vertices[i] = vertex(p)
	}

	if err := m.Validate(); err != nil {
		return &Mesh{}, &ErrTriangulationFailed{Points: len(points), Reason: err.Error()}
	}
	return m, nil
}

// MeshRings fills every ring independently: holes are meshed as filled
// polygons of their own, not subtracted from the exterior. The result has one
// mesh per ring (empty for rings that failed); failures are joined into the
// returned error.
func MeshRings(rings [][][2]float64, t Triangulator) ([]*Mesh, error) {
	meshes := make([]*Mesh, len(rings))
	var errs []error

	for i, ring := range rings {
		m, err := MeshPolygon(ring, t)
		if err != nil {
			errs = append(errs, fmt.Errorf("ring %d: %w", i, err))
		}
		meshes[i] = m
	}

	return meshes, errors.Join(errs...)
}

// openRing returns ring without its closing point, if it has one.
func openRing(ring [][2]float64) [][2]float64 {
	if len(ring) > 1 && ring[0] == ring[len(ring)-1] {
		return ring[:len(ring)-1]
	}
	return ring
}

func countDistinct(points [][2]float64) int {
	seen := make(map[[2]float64]struct{}, len(points))
	for _, p := range points {
		seen[p] = struct{}{}
	}
	return len(seen)
}
