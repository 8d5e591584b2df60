package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/topomesh/pkg/topomesh"
)

// Build only the road network
func buildRoads(topo *topomesh.Topology) (*topomesh.MeshSet, error) {
	opts := topomesh.DefaultBuildOptions()
	opts.ObjectFilter = []string{"roads"}
	opts.LineWidth = 2
	return topomesh.Build(topo, opts)
}

// Look up geometry names without decoding anything
func printNames(topo *topomesh.Topology) error {
	names, err := topo.Query("$.objects.*.geometries[*].properties.nam")
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Printf("  %v\n", name)
	}
	return nil
}

func main() {
	topo, err := topomesh.NewParser().Parse("city.topojson")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("=== Named geometries ===")
	if err := printNames(topo); err != nil {
		log.Fatal(err)
	}

	fmt.Println("\n=== Roads only ===")
	set, err := buildRoads(topo)
	if err != nil {
		log.Fatal(err)
	}
	for _, m := range set.ByObject("roads") {
		fmt.Printf("  %s part %d: %d triangles\n", m.Name, m.Part, m.Mesh.TriangleCount())
	}
}
