package topomesh

import (
	"errors"

	"github.com/beetlebugorg/topomesh/internal/mesh"
	"github.com/beetlebugorg/topomesh/internal/parser"
)

// Errors returned by parsing and meshing. Match them with errors.As.
type (
	// ErrShapeMismatch: a JSON value has the wrong shape. Fatal for the document.
	ErrShapeMismatch = parser.ErrShapeMismatch

	// ErrUnknownGeometryKind: a geometry type tag is not one of the six kinds.
	ErrUnknownGeometryKind = parser.ErrUnknownGeometryKind

	// ErrInvalidArcReference: a signed arc index is outside the arc table.
	ErrInvalidArcReference = parser.ErrInvalidArcReference

	// ErrTriangulationFailed: the triangulator rejected a ring.
	ErrTriangulationFailed = mesh.ErrTriangulationFailed

	// ErrDegenerateInput: too few points to mesh. Non-fatal.
	ErrDegenerateInput = mesh.ErrDegenerateInput
)

// IsWarning reports whether err only signals degenerate input, for which
// the mesher still produced a valid (empty) mesh.
func IsWarning(err error) bool {
	var degenerate *ErrDegenerateInput
	return errors.As(err, &degenerate)
}
