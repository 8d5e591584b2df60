package parser

import (
	"fmt"
)

// ErrShapeMismatch indicates a JSON value that cannot be coerced to the
// requested numeric array or map shape.
type ErrShapeMismatch struct {
	Path     string // Location in the document, e.g. "arcs[3][1]"
	Expected string // Expected shape, e.g. "[]int", "number", "pair"
	Got      string // Description of the value found
}

func (e *ErrShapeMismatch) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("shape mismatch: expected %s, got %s", e.Expected, e.Got)
	}
	return fmt.Sprintf("shape mismatch at %s: expected %s, got %s", e.Path, e.Expected, e.Got)
}

// ErrUnknownGeometryKind indicates a geometry whose type tag is not one of
// the six TopoJSON geometry kinds.
type ErrUnknownGeometryKind struct {
	Object string
	Index  int
	Kind   string
}

func (e *ErrUnknownGeometryKind) Error() string {
	return fmt.Sprintf("object %q geometry %d: unknown geometry kind %q", e.Object, e.Index, e.Kind)
}

// ErrInvalidArcReference indicates a signed arc index that points outside
// the topology's arc table.
type ErrInvalidArcReference struct {
	Index    int
	ArcCount int
}

func (e *ErrInvalidArcReference) Error() string {
	return fmt.Sprintf("arc index %d out of range for %d arcs (valid: %d..%d)",
		e.Index, e.ArcCount, -e.ArcCount, e.ArcCount-1)
}
