package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeArcIdentityVsCumulative(t *testing.T) {
	raw := [][]float64{{0, 0}, {1, 1}, {1, 1}}

	t.Run("no transform returns raw pairs", func(t *testing.T) {
		got := DecodeArc(raw, nil)
		assert.Equal(t, [][2]float64{{0, 0}, {1, 1}, {1, 1}}, got)
	})

	t.Run("identity transform accumulates", func(t *testing.T) {
		identity := &Transform{Scale: [2]float64{1, 1}}
		got := DecodeArc(raw, identity)
		assert.Equal(t, [][2]float64{{0, 0}, {1, 1}, {2, 2}}, got)
	})
}

func TestDecodeArcScaleAndTranslate(t *testing.T) {
	tr := &Transform{Scale: [2]float64{0.5, 2}, Translate: [2]float64{10, 20}}
	raw := [][]float64{{4, 1}, {2, -1}, {-6, 0}}

	got := DecodeArc(raw, tr)
	require.Len(t, got, 3)
	assert.Equal(t, [2]float64{12, 22}, got[0])
	assert.Equal(t, [2]float64{13, 20}, got[1])
	assert.Equal(t, [2]float64{10, 20}, got[2])
}

func TestDecodeArcIgnoresExtraDimensions(t *testing.T) {
	got := DecodeArc([][]float64{{1, 2, 99}}, nil)
	assert.Equal(t, [][2]float64{{1, 2}}, got)
}

func TestTopologyDecodeArcOutOfRange(t *testing.T) {
	topo := &Topology{Arcs: [][][]float64{{{0, 0}}}}

	_, err := topo.DecodeArc(1)
	var invalid *ErrInvalidArcReference
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 1, invalid.Index)
	assert.Equal(t, 1, invalid.ArcCount)
}

func TestDecodePosition(t *testing.T) {
	topo := &Topology{}
	assert.Equal(t, [2]float64{3, 4}, topo.DecodePosition([2]int{3, 4}))

	topo.Transform = &Transform{Scale: [2]float64{2, 3}, Translate: [2]float64{1, 1}}
	assert.Equal(t, [2]float64{7, 13}, topo.DecodePosition([2]int{3, 4}))
}

func TestObjectNamesSorted(t *testing.T) {
	topo := &Topology{Objects: map[string]*Object{
		"roads": {}, "coast": {}, "lakes": {},
	}}
	assert.Equal(t, []string{"coast", "lakes", "roads"}, topo.ObjectNames())
}

func TestParseTransformDefaults(t *testing.T) {
	tr, err := parseTransform(map[string]any{"translate": []any{float64(5), int64(6)}})
	require.NoError(t, err)
	assert.Equal(t, [2]float64{1, 1}, tr.Scale)
	assert.Equal(t, [2]float64{5, 6}, tr.Translate)

	_, err = parseTransform(map[string]any{"scale": []any{float64(1)}})
	var shape *ErrShapeMismatch
	require.ErrorAs(t, err, &shape)
	assert.Equal(t, "transform.scale", shape.Path)
}

func TestParseArcsRequiresPairs(t *testing.T) {
	_, err := parseArcs([]any{[]any{[]any{int64(1), int64(2)}, []any{int64(3)}}})
	var shape *ErrShapeMismatch
	require.ErrorAs(t, err, &shape)
	assert.Equal(t, "arcs[0][1]", shape.Path)
}

func TestParseBBoxOddLength(t *testing.T) {
	_, err := parseBBox([]any{int64(0), int64(0), int64(1)})
	var shape *ErrShapeMismatch
	require.ErrorAs(t, err, &shape)
	assert.Equal(t, "bbox", shape.Path)

	bbox, err := parseBBox([]any{int64(0), int64(0), int64(1), int64(1)})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1, 1}, bbox)
}
