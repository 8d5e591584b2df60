package parser

import (
	"testing"

	geojson "github.com/paulmach/go.geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyAllKinds(t *testing.T) {
	tests := []struct {
		name  string
		node  map[string]any
		check func(t *testing.T, g Geometry)
	}{
		{
			name: "Point",
			node: map[string]any{"type": "Point", "coordinates": []any{int64(1), int64(2)}},
			check: func(t *testing.T, g Geometry) {
				p, ok := g.(*Point)
				require.True(t, ok)
				assert.Equal(t, [2]int{1, 2}, p.Coordinates)
			},
		},
		{
			name: "MultiPoint",
			node: map[string]any{"type": "MultiPoint", "coordinates": []any{
				[]any{int64(1), int64(2)}, []any{int64(3), int64(4)},
			}},
			check: func(t *testing.T, g Geometry) {
				mp, ok := g.(*MultiPoint)
				require.True(t, ok)
				assert.Equal(t, [][2]int{{1, 2}, {3, 4}}, mp.Coordinates)
			},
		},
		{
			name: "LineString",
			node: map[string]any{"type": "LineString", "arcs": []any{int64(0), int64(-2)}},
			check: func(t *testing.T, g Geometry) {
				ls, ok := g.(*LineString)
				require.True(t, ok)
				assert.Equal(t, []int{0, -2}, ls.Arcs)
			},
		},
		{
			name: "MultiLineString",
			node: map[string]any{"type": "MultiLineString", "arcs": []any{
				[]any{int64(0)}, []any{int64(1), int64(2)},
			}},
			check: func(t *testing.T, g Geometry) {
				mls, ok := g.(*MultiLineString)
				require.True(t, ok)
				assert.Equal(t, [][]int{{0}, {1, 2}}, mls.Arcs)
			},
		},
		{
			name: "Polygon",
			node: map[string]any{"type": "Polygon", "arcs": []any{
				[]any{int64(0), int64(1)}, []any{int64(-3)},
			}},
			check: func(t *testing.T, g Geometry) {
				pg, ok := g.(*Polygon)
				require.True(t, ok)
				assert.Equal(t, [][]int{{0, 1}, {-3}}, pg.Arcs)
			},
		},
		{
			name: "MultiPolygon",
			node: map[string]any{"type": "MultiPolygon", "arcs": []any{
				[]any{[]any{int64(0)}}, []any{[]any{int64(1)}, []any{int64(2)}},
			}},
			check: func(t *testing.T, g Geometry) {
				mpg, ok := g.(*MultiPolygon)
				require.True(t, ok)
				assert.Equal(t, [][][]int{{{0}}, {{1}, {2}}}, mpg.Arcs)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Classify(tt.node, "test", 0)
			require.NoError(t, err)
			assert.Equal(t, geojson.GeometryType(tt.name), g.Kind())
			assert.True(t, IsGeometryKind(tt.name))
			tt.check(t, g)
		})
	}
}

func TestClassifyUnknownKind(t *testing.T) {
	tests := []struct {
		name string
		kind any
		want string
	}{
		{"unknown tag", "Circle", "Circle"},
		{"wrong case", "polygon", "polygon"},
		{"null type", nil, "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Classify(map[string]any{"type": tt.kind}, "land", 3)
			assert.Nil(t, g)

			var unknown *ErrUnknownGeometryKind
			require.ErrorAs(t, err, &unknown)
			assert.Equal(t, tt.want, unknown.Kind)
			assert.Equal(t, "land", unknown.Object)
			assert.Equal(t, 3, unknown.Index)
		})
	}
}

func TestClassifyShapeMismatch(t *testing.T) {
	tests := []struct {
		name     string
		node     any
		wantPath string
	}{
		{"not an object", []any{}, "objects.land.geometries[0]"},
		{"missing type", map[string]any{}, "objects.land.geometries[0].type"},
		{"numeric type", map[string]any{"type": int64(3)}, "objects.land.geometries[0].type"},
		{
			"string arc index",
			map[string]any{"type": "LineString", "arcs": []any{"0"}},
			"objects.land.geometries[0].arcs[0]",
		},
		{
			"flat polygon arcs",
			map[string]any{"type": "Polygon", "arcs": []any{int64(0)}},
			"objects.land.geometries[0].arcs[0]",
		},
		{
			"short point",
			map[string]any{"type": "Point", "coordinates": []any{int64(1)}},
			"objects.land.geometries[0].coordinates",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Classify(tt.node, "land", 0)
			assert.Nil(t, g)

			var shape *ErrShapeMismatch
			require.ErrorAs(t, err, &shape)
			assert.Equal(t, tt.wantPath, shape.Path)
		})
	}
}

func TestClassifyProperties(t *testing.T) {
	g, err := Classify(map[string]any{
		"type":       "LineString",
		"arcs":       []any{int64(0)},
		"properties": map[string]any{"nam": "Main St"},
	}, "roads", 0)
	require.NoError(t, err)
	assert.Equal(t, "Main St", g.Props()["nam"])
}

func TestArcSequences(t *testing.T) {
	assert.Equal(t, [][]int{{0, 1}}, ArcSequences(&LineString{Arcs: []int{0, 1}}))
	assert.Equal(t, [][]int{{0}, {-1}, {2}}, ArcSequences(&MultiPolygon{Arcs: [][][]int{{{0}, {-1}}, {{2}}}}))
	assert.Nil(t, ArcSequences(&Point{}))
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name  string
		props map[string]any
		idx   int
		want  string
	}{
		{"name property", map[string]any{"nam": "Lake"}, 0, "Lake"},
		{"no properties", nil, 0, "1"},
		{"missing key", map[string]any{"other": "x"}, 4, "5"},
		{"empty name", map[string]any{"nam": ""}, 1, "2"},
		{"null name", map[string]any{"nam": nil}, 2, "3"},
		{"numeric name", map[string]any{"nam": int64(42)}, 0, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &Polygon{Properties: tt.props}
			assert.Equal(t, tt.want, DisplayName(g, tt.idx))
		})
	}
}
