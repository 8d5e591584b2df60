package parser

// resolver.go - arc reference resolution and ring/line stitching
//
// Geometries refer to arcs by signed index. A non-negative index i means arc
// i traversed forward; a negative index i means arc ^i (= -i-1) traversed in
// reverse. Consecutive arcs of a line or ring share their boundary vertex.

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Direction is the traversal direction of an arc reference.
type Direction int

const (
	// Forward traverses the arc from its first to its last point.
	Forward Direction = iota

	// Reverse traverses the arc from its last to its first point.
	Reverse
)

// String returns "forward" or "reverse".
func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}

// DecodeArcRef splits a signed arc index into arc id and direction.
func DecodeArcRef(i int) (id int, dir Direction) {
	if i >= 0 {
		return i, Forward
	}
	return -i - 1, Reverse
}

// EncodeArcRef is the inverse of DecodeArcRef.
func EncodeArcRef(id int, dir Direction) int {
	if dir == Reverse {
		return -id - 1
	}
	return id
}

// Resolver turns arc-index sequences into point sequences.
//
// Decoded arcs are memoized by arc id when a cache size is given; reversal is
// applied after lookup, so both directions share one entry. The cache is safe
// for concurrent use, so one Resolver may serve several goroutines.
type Resolver struct {
	topo  *Topology
	cache *lru.Cache[int, [][2]float64] // nil disables memoization
}

// NewResolver creates a resolver for topo. cacheSize is the number of decoded
// arcs kept in memory; zero or negative disables caching.
func NewResolver(topo *Topology, cacheSize int) *Resolver {
	r := &Resolver{topo: topo}
	if cacheSize > 0 {
		// lru.New only fails for a non-positive size.
		r.cache, _ = lru.New[int, [][2]float64](cacheSize)
	}
	return r
}

// arc returns the decoded points of arc id. The returned slice is shared
// with the cache and must not be modified.
func (r *Resolver) arc(id int) ([][2]float64, error) {
	if r.cache != nil {
		if points, ok := r.cache.Get(id); ok {
			return points, nil
		}
	}

	points, err := r.topo.DecodeArc(id)
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		r.cache.Add(id, points)
	}
	return points, nil
}

// ResolveArc decodes one signed arc reference into points in traversal order.
func (r *Resolver) ResolveArc(i int) ([][2]float64, error) {
	if err := ValidateArcIndex(i, len(r.topo.Arcs)); err != nil {
		return nil, err
	}

	id, dir := DecodeArcRef(i)
	points, err := r.arc(id)
	if err != nil {
		return nil, err
	}

	out := make([][2]float64, len(points))
	if dir == Reverse {
		for k, p := range points {
			out[len(points)-1-k] = p
		}
	} else {
		copy(out, points)
	}
	return out, nil
}

// ResolveRing stitches the arcs of a ring (or line) into one point sequence.
//
// The first arc contributes all of its points. Every following arc starts
// where the previous one ended, so its first point is dropped. Closure is
// not enforced here.
func (r *Resolver) ResolveRing(arcs []int) ([][2]float64, error) {
	coords := make([][2]float64, 0)

	for _, i := range arcs {
		points, err := r.ResolveArc(i)
		if err != nil {
			return nil, err
		}

		if len(coords) > 0 && len(points) > 0 {
			points = points[1:]
		}
		coords = append(coords, points...)
	}

	return coords, nil
}

// ResolveLine is ResolveRing for open polylines.
func (r *Resolver) ResolveLine(arcs []int) ([][2]float64, error) {
	return r.ResolveRing(arcs)
}

// ResolveRings resolves each arc sequence of a polygon or multi-line.
func (r *Resolver) ResolveRings(rings [][]int) ([][][2]float64, error) {
	result := make([][][2]float64, 0, len(rings))
	for _, ring := range rings {
		coords, err := r.ResolveRing(ring)
		if err != nil {
			return nil, err
		}
		result = append(result, coords)
	}
	return result, nil
}

// IsRingClosed reports whether a resolved ring ends where it starts.
func IsRingClosed(ring [][2]float64) bool {
	if len(ring) < 3 {
		return false
	}
	first := ring[0]
	last := ring[len(ring)-1]
	return first[0] == last[0] && first[1] == last[1]
}
