package topomesh

import (
	"sort"

	"github.com/dhconnelly/rtreego"
)

// indexedMesh wraps a mesh position for R-tree storage.
type indexedMesh struct {
	pos    int
	bounds Bounds
}

// Bounds implements rtreego.Spatial interface.
func (m *indexedMesh) Bounds() rtreego.Rect {
	return toRect(m.bounds)
}

// toRect converts bounds to an R-tree rectangle. R-tree rectangles need
// non-zero sides, so flat bounds get a small thickness.
func toRect(b Bounds) rtreego.Rect {
	const epsilon = 1e-9

	width := b.Width()
	height := b.Height()
	if width < epsilon {
		width = epsilon
	}
	if height < epsilon {
		height = epsilon
	}

	rect, _ := rtreego.NewRect(rtreego.Point{b.MinX, b.MinY}, []float64{width, height})
	return rect
}

// buildMeshIndex creates an R-tree (2D, min=25 children, max=50 children)
// over the bounds of every mesh.
func buildMeshIndex(meshes []NamedMesh) *rtreego.Rtree {
	rtree := rtreego.NewTree(2, 25, 50)
	for i, m := range meshes {
		b, ok := m.Mesh.Bounds()
		if !ok {
			continue
		}
		rtree.Insert(&indexedMesh{pos: i, bounds: b})
	}
	return rtree
}

// MeshesInBounds returns the meshes whose bounding boxes intersect bounds,
// in MeshSet order.
//
// Example:
//
//	viewport := topomesh.Bounds{MinX: -71.5, MinY: 42.0, MaxX: -71.0, MaxY: 42.5}
//	for _, m := range set.MeshesInBounds(viewport) {
//	    render(m.Mesh)
//	}
func (s *MeshSet) MeshesInBounds(bounds Bounds) []NamedMesh {
	if bounds.MaxX < bounds.MinX || bounds.MaxY < bounds.MinY {
		return nil
	}
	if s.rtree == nil {
		// Set was assembled by hand, fallback to linear search
		return s.meshesInBoundsLinear(bounds)
	}

	spatials := s.rtree.SearchIntersect(toRect(bounds))

	positions := make([]int, 0, len(spatials))
	for _, spatial := range spatials {
		positions = append(positions, spatial.(*indexedMesh).pos)
	}
	sort.Ints(positions)

	result := make([]NamedMesh, 0, len(positions))
	for _, pos := range positions {
		result = append(result, s.Meshes[pos])
	}
	return result
}

// meshesInBoundsLinear performs linear search when no spatial index exists.
func (s *MeshSet) meshesInBoundsLinear(bounds Bounds) []NamedMesh {
	var result []NamedMesh
	for _, m := range s.Meshes {
		if b, ok := m.Mesh.Bounds(); ok && bounds.Intersects(b) {
			result = append(result, m)
		}
	}
	return result
}

// Bounds returns the union of all mesh bounds. ok is false for an empty set.
func (s *MeshSet) Bounds() (bounds Bounds, ok bool) {
	for _, m := range s.Meshes {
		b, has := m.Mesh.Bounds()
		if !has {
			continue
		}
		if !ok {
			bounds, ok = b, true
			continue
		}
		bounds = bounds.Union(b)
	}
	return bounds, ok
}
