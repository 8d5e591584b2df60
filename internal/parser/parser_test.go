package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseBytesIslandTopology(t *testing.T) {
	topo, err := ParseBytes([]byte(islandTopology), DefaultParseOptions())
	require.NoError(t, err)

	assert.Equal(t, TopologyType, topo.Type)
	require.NotNil(t, topo.Transform)
	assert.Equal(t, [2]float64{0.5, 2}, topo.Transform.Scale)
	assert.Equal(t, [2]float64{10, 20}, topo.Transform.Translate)
	assert.Equal(t, 2, topo.ArcCount())
	assert.Equal(t, []float64{10, 20, 11, 24}, topo.BBox)
	assert.Equal(t, []string{"land", "mark"}, topo.ObjectNames())
	assert.Empty(t, topo.Skipped)

	land := topo.Objects["land"]
	assert.Equal(t, "GeometryCollection", land.Type)
	require.Len(t, land.Geometries, 2)
	assert.IsType(t, &Polygon{}, land.Geometries[0])
	assert.Equal(t, "Island", DisplayName(land.Geometries[0], 0))
	assert.IsType(t, &LineString{}, land.Geometries[1])
	assert.Equal(t, "2", DisplayName(land.Geometries[1], 1))

	// A bare geometry object becomes a collection of one.
	mark := topo.Objects["mark"]
	assert.Equal(t, "Point", mark.Type)
	require.Len(t, mark.Geometries, 1)
	p := mark.Geometries[0].(*Point)
	assert.Equal(t, [2]float64{12, 28}, topo.DecodePosition(p.Coordinates))
}

func TestParseBytesMissingMembers(t *testing.T) {
	topo, err := ParseBytes([]byte(`{"type":"Topology"}`), DefaultParseOptions())
	require.NoError(t, err)
	assert.Nil(t, topo.Transform)
	assert.Empty(t, topo.Arcs)
	assert.Empty(t, topo.Objects)
	assert.Nil(t, topo.BBox)
}

func TestParseBytesUntypedCollection(t *testing.T) {
	doc := `{
	  "type": "Topology",
	  "arcs": [[[0, 0], [1, 1]]],
	  "objects": {"paths": {"geometries": [{"type": "LineString", "arcs": [0]}]}}
	}`

	topo, err := ParseBytes([]byte(doc), DefaultParseOptions())
	require.NoError(t, err)

	obj := topo.Objects["paths"]
	require.NotNil(t, obj)
	assert.Equal(t, "GeometryCollection", obj.Type)
	require.Len(t, obj.Geometries, 1)
	assert.IsType(t, &LineString{}, obj.Geometries[0])
}

func TestParseBytesErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect func(t *testing.T, err error)
	}{
		{
			name:  "invalid json",
			input: `{"type":`,
			expect: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
		{
			name:  "root is an array",
			input: `[]`,
			expect: func(t *testing.T, err error) {
				var shape *ErrShapeMismatch
				assert.ErrorAs(t, err, &shape)
			},
		},
		{
			name:  "string arc coordinate",
			input: `{"type":"Topology","arcs":[[[0,"1"]]],"objects":{}}`,
			expect: func(t *testing.T, err error) {
				var shape *ErrShapeMismatch
				require.ErrorAs(t, err, &shape)
				assert.Equal(t, "arcs[0][0][1]", shape.Path)
			},
		},
		{
			name:  "unknown geometry kind",
			input: `{"type":"Topology","arcs":[],"objects":{"a":{"type":"GeometryCollection","geometries":[{"type":"Circle"}]}}}`,
			expect: func(t *testing.T, err error) {
				var unknown *ErrUnknownGeometryKind
				require.ErrorAs(t, err, &unknown)
				assert.Equal(t, "Circle", unknown.Kind)
			},
		},
		{
			name:  "arc index out of range",
			input: `{"type":"Topology","arcs":[[[0,0],[1,1]]],"objects":{"a":{"type":"LineString","arcs":[1]}}}`,
			expect: func(t *testing.T, err error) {
				var invalid *ErrInvalidArcReference
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, 1, invalid.Index)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topo, err := ParseBytes([]byte(tt.input), DefaultParseOptions())
			assert.Nil(t, topo)
			tt.expect(t, err)
		})
	}
}

func TestParseSkipUnknownGeometries(t *testing.T) {
	input := `{"type":"Topology","arcs":[[[0,0],[1,1]]],"objects":{
		"b":{"type":"GeometryCollection","geometries":[{"type":"Circle"},{"type":"LineString","arcs":[0]}]},
		"a":{"type":"GeometryCollection","geometries":[{"type":null}]}
	}}`

	core, logs := observer.New(zap.WarnLevel)
	opts := DefaultParseOptions()
	opts.SkipUnknownGeometries = true
	opts.Logger = zap.New(core)

	topo, err := ParseBytes([]byte(input), opts)
	require.NoError(t, err)

	assert.Equal(t, []SkippedGeometry{
		{Object: "a", Index: 0, Kind: "null"},
		{Object: "b", Index: 0, Kind: "Circle"},
	}, topo.Skipped)
	assert.Empty(t, topo.Objects["a"].Geometries)
	require.Len(t, topo.Objects["b"].Geometries, 1)
	assert.IsType(t, &LineString{}, topo.Objects["b"].Geometries[0])

	assert.Equal(t, 2, logs.FilterMessage("skipping geometry of unknown kind").Len())
}

func TestParseSkipDoesNotHideShapeErrors(t *testing.T) {
	input := `{"type":"Topology","arcs":[],"objects":{"a":{"type":"GeometryCollection","geometries":[{"type":"LineString","arcs":["x"]}]}}}`

	opts := DefaultParseOptions()
	opts.SkipUnknownGeometries = true

	_, err := ParseBytes([]byte(input), opts)
	var shape *ErrShapeMismatch
	assert.ErrorAs(t, err, &shape)
}

func TestParseWithoutValidation(t *testing.T) {
	input := `{"type":"Topology","arcs":[],"objects":{"a":{"type":"LineString","arcs":[5]}}}`

	opts := DefaultParseOptions()
	opts.ValidateTopology = false

	topo, err := ParseBytes([]byte(input), opts)
	require.NoError(t, err)
	assert.Error(t, ValidateTopology(topo))
}

func TestParserParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "island.topojson")
	require.NoError(t, os.WriteFile(path, []byte(islandTopology), 0o644))

	topo, err := NewParser().Parse(path)
	require.NoError(t, err)
	assert.Len(t, topo.Objects, 2)

	_, err = NewParser().Parse(filepath.Join(t.TempDir(), "missing.topojson"))
	assert.Error(t, err)
}

func TestQuery(t *testing.T) {
	topo, err := ParseBytes([]byte(islandTopology), DefaultParseOptions())
	require.NoError(t, err)

	names, err := topo.Query("$.objects.land.geometries[*].properties.nam")
	require.NoError(t, err)
	assert.Equal(t, []any{"Island"}, names)

	_, err = topo.Query("$.[")
	assert.Error(t, err)
}
