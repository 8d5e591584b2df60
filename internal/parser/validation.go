package parser

import (
	"fmt"
)

// ValidateArcIndex checks one signed arc index against the arc table size.
// Valid indices are -arcCount..arcCount-1.
func ValidateArcIndex(i, arcCount int) error {
	if i < -arcCount || i >= arcCount {
		return &ErrInvalidArcReference{Index: i, ArcCount: arcCount}
	}
	return nil
}

// ValidateTopology checks that every arc index referenced by any geometry
// resolves to an arc in the topology.
func ValidateTopology(topo *Topology) error {
	if topo == nil {
		return fmt.Errorf("topology is nil")
	}

	n := len(topo.Arcs)
	for _, name := range topo.ObjectNames() {
		obj := topo.Objects[name]
		for gi, g := range obj.Geometries {
			for _, seq := range ArcSequences(g) {
				for _, i := range seq {
					if err := ValidateArcIndex(i, n); err != nil {
						return fmt.Errorf("object %q geometry %d: %w", name, gi, err)
					}
				}
			}
		}
	}

	return nil
}
