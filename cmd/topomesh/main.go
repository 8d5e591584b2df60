// Command topomesh decodes TopoJSON files and writes triangle meshes,
// GeoJSON or a document summary.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
