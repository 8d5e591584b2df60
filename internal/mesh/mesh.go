// Package mesh builds triangle meshes from decoded TopoJSON point sequences.
//
// Two meshers are provided: MeshLine extrudes a polyline into a mitered
// ribbon of constant width, and MeshPolygon fills a ring through a
// Triangulator. Both work in float64 and narrow to float32 only when the
// vertex buffer is written.
package mesh

import (
	"fmt"
)

// Vertex is a mesh vertex in the map plane.
type Vertex struct {
	X float32
	Y float32
}

// Mesh is a vertex buffer plus a triangle index buffer (3 indices per
// triangle, each referencing a vertex position).
type Mesh struct {
	Vertices []Vertex
	Indices  []int
}

// IsEmpty reports whether the mesh has no triangles.
func (m *Mesh) IsEmpty() bool {
	return m == nil || len(m.Indices) == 0
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	if m == nil {
		return 0
	}
	return len(m.Indices) / 3
}

// Bounds returns the bounding box of the vertex buffer.
// ok is false for a mesh without vertices.
func (m *Mesh) Bounds() (b Bounds, ok bool) {
	if m == nil || len(m.Vertices) == 0 {
		return Bounds{}, false
	}

	first := m.Vertices[0]
	b = Bounds{
		MinX: float64(first.X), MaxX: float64(first.X),
		MinY: float64(first.Y), MaxY: float64(first.Y),
	}
	for _, v := range m.Vertices[1:] {
		b = b.ExtendPoint(float64(v.X), float64(v.Y))
	}
	return b, true
}

// Vertices3D lays the mesh on the XZ plane of a Y-up scene: (x, y) becomes
// (x, 0, y).
func (m *Mesh) Vertices3D() [][3]float32 {
	if m == nil {
		return nil
	}
	out := make([][3]float32, len(m.Vertices))
	for i, v := range m.Vertices {
		out[i] = [3]float32{v.X, 0, v.Y}
	}
	return out
}

// Validate checks that the index buffer holds whole triangles and that every
// index references a vertex.
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(m.Indices))
	}
	for i, idx := range m.Indices {
		if idx < 0 || idx >= len(m.Vertices) {
			return fmt.Errorf("index %d at position %d out of range for %d vertices", idx, i, len(m.Vertices))
		}
	}
	return nil
}

func vertex(p [2]float64) Vertex {
	return Vertex{X: float32(p[0]), Y: float32(p[1])}
}
