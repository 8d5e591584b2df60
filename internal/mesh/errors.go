package mesh

import (
	"fmt"
)

// ErrDegenerateInput indicates a point sequence too short to mesh. It is a
// warning: the mesher still returns a valid, empty mesh alongside it.
type ErrDegenerateInput struct {
	Kind    string // "line" or "polygon"
	Points  int    // Points received (distinct points for polygons)
	Minimum int    // Points required
}

func (e *ErrDegenerateInput) Error() string {
	return fmt.Sprintf("degenerate %s: %d points, need at least %d", e.Kind, e.Points, e.Minimum)
}

// ErrTriangulationFailed indicates the triangulator rejected a ring, e.g.
// because it self-intersects or encloses no area.
type ErrTriangulationFailed struct {
	Points int    // Point count of the offending ring
	Reason string // Triangulator diagnostic
}

func (e *ErrTriangulationFailed) Error() string {
	return fmt.Sprintf("triangulation failed for ring of %d points: %s", e.Points, e.Reason)
}
