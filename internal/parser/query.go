package parser

import (
	"fmt"

	"github.com/ohler55/ojg/jp"
)

// Query evaluates a JSONPath expression against the raw document.
//
// Useful for inspecting members the typed model ignores, e.g.
// "$.objects.*.geometries[*].properties.nam".
func (t *Topology) Query(expr string) ([]any, error) {
	x, err := jp.ParseString(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath '%s': %w", expr, err)
	}
	return x.Get(t.root), nil
}
