package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/beetlebugorg/topomesh/pkg/topomesh"
)

func describe(topo *topomesh.Topology, g topomesh.Geometry, idx int) {
	name := topomesh.DisplayName(g, idx)

	switch g := g.(type) {
	case *topomesh.Point:
		// Positions are quantized but not delta-coded
		p := topo.DecodePosition(g.Coordinates)
		fmt.Printf("Point %s: %.6f, %.6f\n", name, p[0], p[1])

	case *topomesh.MultiPoint:
		fmt.Printf("MultiPoint %s: %d positions\n", name, len(g.Coordinates))

	case *topomesh.LineString:
		fmt.Printf("LineString %s: %d arcs\n", name, len(g.Arcs))

	case *topomesh.MultiLineString:
		fmt.Printf("MultiLineString %s: %d lines\n", name, len(g.Arcs))

	case *topomesh.Polygon:
		if len(g.Arcs) == 0 {
			fmt.Printf("Polygon %s: empty\n", name)
			return
		}
		// Negative indices mean the arc is walked backwards
		for _, ref := range g.Arcs[0] {
			id, dir := topomesh.DecodeArcRef(ref)
			fmt.Printf("Polygon %s: arc %d %s\n", name, id, dir)
		}

	case *topomesh.MultiPolygon:
		fmt.Printf("MultiPolygon %s: %d polygons\n", name, len(g.Arcs))
	}
}

func main() {
	topo, err := topomesh.NewParser().Parse("coast.topojson")
	if err != nil {
		log.Fatal(err)
	}

	for _, name := range topo.ObjectNames() {
		for i, g := range topo.Objects[name].Geometries {
			describe(topo, g, i)
		}
	}

	// Export the first object as GeoJSON
	fc, err := topo.FeatureCollection(topo.ObjectNames()[0])
	if err != nil {
		log.Fatal(err)
	}
	if err := json.NewEncoder(os.Stdout).Encode(fc); err != nil {
		log.Fatal(err)
	}
}
