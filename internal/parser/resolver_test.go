package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T, cacheSize int) *Resolver {
	t.Helper()
	topo, err := ParseBytes([]byte(islandTopology), DefaultParseOptions())
	require.NoError(t, err)
	return NewResolver(topo, cacheSize)
}

func TestArcRefRoundTrip(t *testing.T) {
	for i := -5; i < 5; i++ {
		id, dir := DecodeArcRef(i)
		assert.GreaterOrEqual(t, id, 0)
		assert.Equal(t, i, EncodeArcRef(id, dir))
	}

	id, dir := DecodeArcRef(-1)
	assert.Equal(t, 0, id)
	assert.Equal(t, Reverse, dir)
	assert.Equal(t, "reverse", dir.String())

	id, dir = DecodeArcRef(0)
	assert.Equal(t, 0, id)
	assert.Equal(t, Forward, dir)
	assert.Equal(t, "forward", dir.String())
}

func TestResolveArcDirection(t *testing.T) {
	for _, cacheSize := range []int{0, 8} {
		r := newTestResolver(t, cacheSize)

		forward, err := r.ResolveArc(0)
		require.NoError(t, err)
		assert.Equal(t, [][2]float64{{10, 20}, {11, 20}, {11, 24}}, forward)

		reverse, err := r.ResolveArc(-1)
		require.NoError(t, err)
		assert.Equal(t, [][2]float64{{11, 24}, {11, 20}, {10, 20}}, reverse)

		// Reversal must not leak into the cached forward copy.
		again, err := r.ResolveArc(0)
		require.NoError(t, err)
		assert.Equal(t, forward, again)
	}
}

func TestResolveArcInvalid(t *testing.T) {
	r := newTestResolver(t, 0)

	for _, i := range []int{2, -3, 100} {
		_, err := r.ResolveArc(i)
		var invalid *ErrInvalidArcReference
		require.ErrorAs(t, err, &invalid, "index %d", i)
		assert.Equal(t, i, invalid.Index)
		assert.Equal(t, 2, invalid.ArcCount)
	}
}

func TestResolveRingStitching(t *testing.T) {
	r := newTestResolver(t, 4)

	ring, err := r.ResolveRing([]int{0, 1})
	require.NoError(t, err)

	// 3 + 3 points less one shared vertex.
	require.Len(t, ring, 5)
	assert.Equal(t, [][2]float64{{10, 20}, {11, 20}, {11, 24}, {10, 24}, {10, 20}}, ring)
	assert.True(t, IsRingClosed(ring))

	for k := 1; k < len(ring); k++ {
		assert.NotEqual(t, ring[k-1], ring[k], "adjacent duplicate at %d", k)
	}
}

func TestResolveRingReversed(t *testing.T) {
	r := newTestResolver(t, 0)

	ring, err := r.ResolveRing([]int{-2, -1})
	require.NoError(t, err)
	assert.Equal(t, [][2]float64{{10, 20}, {10, 24}, {11, 24}, {11, 20}, {10, 20}}, ring)
}

func TestResolveRingEmptyFirstArc(t *testing.T) {
	topo := &Topology{Arcs: [][][]float64{
		{},
		{{0, 0}, {1, 0}},
	}}
	r := NewResolver(topo, 0)

	line, err := r.ResolveLine([]int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, [][2]float64{{0, 0}, {1, 0}}, line)
}

func TestResolveRingsPropagatesError(t *testing.T) {
	r := newTestResolver(t, 0)

	_, err := r.ResolveRings([][]int{{0}, {7}})
	var invalid *ErrInvalidArcReference
	assert.ErrorAs(t, err, &invalid)
}

func TestIsRingClosed(t *testing.T) {
	assert.False(t, IsRingClosed(nil))
	assert.False(t, IsRingClosed([][2]float64{{0, 0}, {0, 0}}))
	assert.False(t, IsRingClosed([][2]float64{{0, 0}, {1, 0}, {1, 1}}))
	assert.True(t, IsRingClosed([][2]float64{{0, 0}, {1, 0}, {0, 0}}))
}
