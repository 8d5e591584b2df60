package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/beetlebugorg/topomesh/pkg/topomesh"
)

func main() {
	paths, err := filepath.Glob("tiles/*.topojson")
	if err != nil {
		log.Fatal(err)
	}

	// Parse all tiles on a worker pool
	files, errs := topomesh.LoadFiles(paths, topomesh.NewParser(), topomesh.LoadOptions{
		Parallel:   true,
		SkipErrors: true,
		ErrorLog:   os.Stderr,
		Progress: func(loaded, total int) {
			fmt.Printf("\rLoading: %d/%d", loaded, total)
		},
	})
	fmt.Printf("\nLoaded %d tiles, %d failed\n", len(files), len(errs))

	// Keep recently used tiles in memory
	cache, err := topomesh.NewTopologyCache(32)
	if err != nil {
		log.Fatal(err)
	}
	for _, f := range files {
		cache.Add(f.Path, f.Topology)
	}

	opts := topomesh.DefaultBuildOptions()
	opts.ArcCacheSize = 4096 // tiles with many shared borders benefit from a larger arc cache

	for _, f := range files {
		topo, err := cache.Get(f.Path, func() (*topomesh.Topology, error) {
			return topomesh.NewParser().Parse(f.Path)
		})
		if err != nil {
			log.Fatal(err)
		}

		set, err := topomesh.Build(topo, opts)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s: %d meshes\n", filepath.Base(f.Path), set.Count())
	}

	stats := cache.Stats()
	fmt.Printf("Cache: %d entries, %d hits, %d misses\n", stats.Count, stats.Hits, stats.Misses)
}
