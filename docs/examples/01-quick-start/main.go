package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/topomesh/pkg/topomesh"
)

func main() {
	// Create parser
	parser := topomesh.NewParser()

	// Parse topology file
	topo, err := parser.Parse("coast.topojson")
	if err != nil {
		log.Fatal(err)
	}

	// Print topology info
	fmt.Printf("Objects: %v\n", topo.ObjectNames())
	fmt.Printf("Arcs: %d\n", topo.ArcCount())

	// Build meshes with a 0.5 unit offset on each side of every line
	opts := topomesh.DefaultBuildOptions()
	opts.LineWidth = 0.5

	set, err := topomesh.Build(topo, opts)
	if err != nil {
		log.Fatal(err)
	}

	for _, m := range set.Meshes {
		fmt.Printf("%s/%s (%s): %d vertices, %d triangles\n",
			m.Object, m.Name, m.Kind, len(m.Mesh.Vertices), m.Mesh.TriangleCount())
	}

	// Get overall bounds
	if bounds, ok := set.Bounds(); ok {
		fmt.Printf("Bounds: [%.4f,%.4f] to [%.4f,%.4f]\n",
			bounds.MinX, bounds.MinY, bounds.MaxX, bounds.MaxY)
	}
}
