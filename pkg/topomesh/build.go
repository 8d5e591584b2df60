package topomesh

import (
	"fmt"

	"github.com/beetlebugorg/topomesh/internal/mesh"
	"github.com/beetlebugorg/topomesh/internal/parser"
	"github.com/dhconnelly/rtreego"
	geojson "github.com/paulmach/go.geojson"
	"go.uber.org/zap"
)

// NamedMesh is one mesh produced by Build together with the labels a scene
// needs to place it.
type NamedMesh struct {
	Object   string               // Object name in the topology
	Name     string               // "nam" property, or the 1-based geometry index
	Geometry int                  // Geometry index within the object
	Part     int                  // Line or ring index within the geometry
	Kind     geojson.GeometryType // Kind of the source geometry
	Mesh     *Mesh
}

// Issue is a per-geometry failure recorded by Build. Issues never stop the
// build of sibling geometries.
type Issue struct {
	Object   string
	Geometry int
	Part     int
	Kind     geojson.GeometryType
	Err      error
}

func (i Issue) Error() string {
	return fmt.Sprintf("object %q geometry %d part %d (%s): %v", i.Object, i.Geometry, i.Part, i.Kind, i.Err)
}

// Unwrap returns the underlying error.
func (i Issue) Unwrap() error { return i.Err }

// IsWarning reports whether the issue is non-fatal degenerate input.
func (i Issue) IsWarning() bool { return IsWarning(i.Err) }

// MeshSet is the result of Build.
//
// Meshes are ordered by object name, then geometry index, then part. Empty
// meshes (degenerate input) are left out; their warnings are in Issues.
type MeshSet struct {
	Meshes []NamedMesh
	Issues []Issue

	rtree *rtreego.Rtree // Spatial index over Meshes
}

// Count returns the number of meshes.
func (s *MeshSet) Count() int {
	return len(s.Meshes)
}

// ByObject returns the meshes built from the named object.
func (s *MeshSet) ByObject(name string) []NamedMesh {
	var result []NamedMesh
	for _, m := range s.Meshes {
		if m.Object == name {
			result = append(result, m)
		}
	}
	return result
}

// Errors returns the issues that are not warnings.
func (s *MeshSet) Errors() []Issue {
	var result []Issue
	for _, issue := range s.Issues {
		if !issue.IsWarning() {
			result = append(result, issue)
		}
	}
	return result
}

// Build meshes every line and polygon geometry of topo.
//
// LineString and MultiLineString lines become ribbons of opts.LineWidth.
// Every ring of a Polygon or MultiPolygon, holes included, becomes its own
// filled mesh. Points produce no mesh.
//
// Per-geometry problems (degenerate input, triangulation failure, bad arc
// references in an unvalidated topology) are collected in MeshSet.Issues.
// Build only fails for a nil topology or an ObjectFilter naming a missing
// object.
//
// Example:
//
//	set, err := topomesh.Build(topo, topomesh.DefaultBuildOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, m := range set.Meshes {
//	    fmt.Printf("%s/%s: %d triangles\n", m.Object, m.Name, m.Mesh.TriangleCount())
//	}
func Build(topo *Topology, opts BuildOptions) (*MeshSet, error) {
	if topo == nil {
		return nil, fmt.Errorf("topology is nil")
	}

	names, err := selectObjects(topo, opts.ObjectFilter)
	if err != nil {
		return nil, err
	}

	b := &builder{
		topo:     topo,
		resolver: parser.NewResolver(topo, opts.ArcCacheSize),
		opts:     opts,
	}

	results := make([]objectResult, len(names))
	forEach(len(names), opts.Parallel, opts.Workers, func(i int) {
		results[i] = b.buildObject(names[i])
	}, opts.Progress)

	set := &MeshSet{}
	for _, r := range results {
		set.Meshes = append(set.Meshes, r.meshes...)
		set.Issues = append(set.Issues, r.issues...)
	}

	log := opts.logger()
	for _, issue := range set.Issues {
		log.Warn("mesh issue",
			zap.String("object", issue.Object),
			zap.Int("geometry", issue.Geometry),
			zap.Int("part", issue.Part),
			zap.String("kind", string(issue.Kind)),
			zap.Bool("warning", issue.IsWarning()),
			zap.Error(issue.Err))
	}

	set.rtree = buildMeshIndex(set.Meshes)
	return set, nil
}

// selectObjects returns the object names to build, sorted.
func selectObjects(topo *Topology, filter []string) ([]string, error) {
	if len(filter) == 0 {
		return topo.ObjectNames(), nil
	}

	wanted := make(map[string]bool, len(filter))
	for _, name := range filter {
		if _, ok := topo.Objects[name]; !ok {
			return nil, fmt.Errorf("object %q not found", name)
		}
		wanted[name] = true
	}

	names := make([]string, 0, len(wanted))
	for _, name := range topo.ObjectNames() {
		if wanted[name] {
			names = append(names, name)
		}
	}
	return names, nil
}

type objectResult struct {
	meshes []NamedMesh
	issues []Issue
}

// builder holds the state shared by all objects of one Build call. The
// resolver's arc cache is safe for concurrent use.
type builder struct {
	topo     *Topology
	resolver *parser.Resolver
	opts     BuildOptions
}

func (b *builder) buildObject(name string) objectResult {
	var res objectResult
	obj := b.topo.Objects[name]

	for gi, g := range obj.Geometries {
		var meshFn func(points [][2]float64) (*Mesh, error)
		switch g.(type) {
		case *parser.LineString, *parser.MultiLineString:
			meshFn = func(points [][2]float64) (*Mesh, error) {
				return mesh.MeshLine(points, b.opts.LineWidth)
			}
		case *parser.Polygon, *parser.MultiPolygon:
			meshFn = func(points [][2]float64) (*Mesh, error) {
				return mesh.MeshPolygon(points, b.opts.Triangulator)
			}
		default:
			continue // points
		}

		label := parser.DisplayName(g, gi)
		for part, arcs := range parser.ArcSequences(g) {
			issue := Issue{Object: name, Geometry: gi, Part: part, Kind: g.Kind()}

			points, err := b.resolver.ResolveRing(arcs)
			if err != nil {
				issue.Err = err
				res.issues = append(res.issues, issue)
				continue
			}

			m, err := meshFn(points)
			if err != nil {
				issue.Err = err
				res.issues = append(res.issues, issue)
			}
			if m.IsEmpty() {
				continue
			}

			res.meshes = append(res.meshes, NamedMesh{
				Object:   name,
				Name:     label,
				Geometry: gi,
				Part:     part,
				Kind:     g.Kind(),
				Mesh:     m,
			})
		}
	}

	return res
}
