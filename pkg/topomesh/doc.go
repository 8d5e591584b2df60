// Package topomesh decodes TopoJSON topologies and turns their geometry into
// triangle meshes for rendering.
//
// # Basic Usage
//
//	parser := topomesh.NewParser()
//	topo, err := parser.Parse("coast.topojson")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	set, err := topomesh.Build(topo, topomesh.DefaultBuildOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, m := range set.Meshes {
//	    fmt.Printf("%s %s: %d vertices\n", m.Object, m.Name, len(m.Mesh.Vertices))
//	}
//
// # Meshes
//
// LineString and MultiLineString geometries become ribbons: every point is
// offset by BuildOptions.LineWidth to both sides of the line, with mitered
// joins at interior points. Polygon and MultiPolygon rings are filled by a
// Triangulator (Tess2, backed by libtess2, by default). Each ring is meshed
// on its own, so holes render as filled areas on top of their exterior.
//
// A mesh is a flat vertex buffer plus a triangle index list. Vertices3D maps
// the map plane onto the XZ plane of a Y-up scene.
//
// # Errors
//
// Malformed documents fail parsing with ErrShapeMismatch,
// ErrUnknownGeometryKind or ErrInvalidArcReference. Mesh problems are
// per-geometry: Build records them in MeshSet.Issues and carries on.
// ErrDegenerateInput is a warning (see IsWarning); ErrTriangulationFailed is
// not.
//
// # Spatial Queries
//
// Build indexes mesh bounds in an R-tree:
//
//	visible := set.MeshesInBounds(topomesh.Bounds{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10})
//
// # Inspection
//
// Topology.Query runs JSONPath expressions against the raw document and
// Topology.FeatureCollection exports an object as GeoJSON.
package topomesh
