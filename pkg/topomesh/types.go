package topomesh

import (
	"github.com/beetlebugorg/topomesh/internal/mesh"
	"github.com/beetlebugorg/topomesh/internal/parser"
)

// Topology is a parsed TopoJSON document. It is read-only after parsing and
// safe to share between goroutines.
type Topology = parser.Topology

// Object is a named entry of a topology's "objects" member.
type Object = parser.Object

// Transform is the quantization transform of a topology.
type Transform = parser.Transform

// SkippedGeometry records a geometry dropped because of an unknown kind.
type SkippedGeometry = parser.SkippedGeometry

// Geometry is one of *Point, *MultiPoint, *LineString, *MultiLineString,
// *Polygon or *MultiPolygon.
type Geometry = parser.Geometry

// Geometry variants.
type (
	Point           = parser.Point
	MultiPoint      = parser.MultiPoint
	LineString      = parser.LineString
	MultiLineString = parser.MultiLineString
	Polygon         = parser.Polygon
	MultiPolygon    = parser.MultiPolygon
)

// Mesh is a vertex buffer plus a triangle index buffer.
type Mesh = mesh.Mesh

// Vertex is a mesh vertex in the map plane.
type Vertex = mesh.Vertex

// Bounds is an axis-aligned bounding box in map coordinates.
type Bounds = mesh.Bounds

// Triangulator fills rings for the polygon mesher.
type Triangulator = mesh.Triangulator

// TriangulatorFunc adapts a function to the Triangulator interface.
type TriangulatorFunc = mesh.TriangulatorFunc

// Tess2 is the default triangulator, backed by libtess2.
type Tess2 = mesh.Tess2

// EarClipper is a float64 ear clipping triangulator.
type EarClipper = mesh.EarClipper

// Direction is the traversal direction of an arc reference.
type Direction = parser.Direction

const (
	Forward = parser.Forward
	Reverse = parser.Reverse
)

// DecodeArcRef splits a signed arc index into arc id and direction.
func DecodeArcRef(i int) (int, Direction) { return parser.DecodeArcRef(i) }

// EncodeArcRef builds the signed arc index for an arc id and direction.
func EncodeArcRef(id int, dir Direction) int { return parser.EncodeArcRef(id, dir) }

// DisplayName returns the "nam" property of g, or idx+1 as a string.
func DisplayName(g Geometry, idx int) string { return parser.DisplayName(g, idx) }

// MeshLine extrudes a polyline into a ribbon offset by width on each side.
func MeshLine(points [][2]float64, width float64) (*Mesh, error) {
	return mesh.MeshLine(points, width)
}

// MeshPolygon fills a ring. A nil triangulator selects Tess2.
func MeshPolygon(ring [][2]float64, t Triangulator) (*Mesh, error) {
	return mesh.MeshPolygon(ring, t)
}
