package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/beetlebugorg/topomesh/pkg/topomesh"
)

func safeParse(path string) (*topomesh.Topology, error) {
	topo, err := topomesh.NewParser().Parse(path)
	if err != nil {
		var shape *topomesh.ErrShapeMismatch
		var unknown *topomesh.ErrUnknownGeometryKind
		var arc *topomesh.ErrInvalidArcReference

		switch {
		case errors.As(err, &shape):
			log.Printf("Malformed document at %s", shape.Path)
		case errors.As(err, &unknown):
			log.Printf("Unknown geometry %q, retry with SkipUnknownGeometries", unknown.Kind)
		case errors.As(err, &arc):
			log.Printf("Arc %d does not exist (%d arcs)", arc.Index, arc.ArcCount)
		}
		return nil, err
	}
	return topo, nil
}

func main() {
	topo, err := safeParse("coast.topojson")
	if err != nil {
		log.Fatal(err)
	}

	set, err := topomesh.Build(topo, topomesh.DefaultBuildOptions())
	if err != nil {
		log.Fatal(err)
	}

	// Mesh problems never stop the build
	for _, issue := range set.Issues {
		if issue.IsWarning() {
			fmt.Printf("warning: %v\n", issue)
			continue
		}
		var failed *topomesh.ErrTriangulationFailed
		if errors.As(issue, &failed) {
			fmt.Printf("ring of %d points could not be filled: %s\n", failed.Points, failed.Reason)
		}
	}

	fmt.Printf("Built %d meshes, %d errors\n", set.Count(), len(set.Errors()))
}
