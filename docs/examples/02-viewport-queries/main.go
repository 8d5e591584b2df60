package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/topomesh/pkg/topomesh"
)

func main() {
	topo, err := topomesh.NewParser().Parse("coast.topojson")
	if err != nil {
		log.Fatal(err)
	}

	set, err := topomesh.Build(topo, topomesh.DefaultBuildOptions())
	if err != nil {
		log.Fatal(err)
	}

	// Define viewport in map coordinates
	viewport := topomesh.Bounds{
		MinX: -71.5, MaxX: -71.0,
		MinY: 42.0, MaxY: 42.5,
	}

	// Query only visible meshes (R-tree lookup)
	visible := set.MeshesInBounds(viewport)

	fmt.Printf("Visible meshes: %d of %d\n", len(visible), set.Count())
	for _, m := range visible {
		// Y-up scenes lay the map on the XZ plane
		vertices := m.Mesh.Vertices3D()
		fmt.Printf("  %s/%s: %d vertices\n", m.Object, m.Name, len(vertices))
	}
}
