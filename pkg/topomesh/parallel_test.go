package topomesh

import (
	"bytes"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTopologies(t *testing.T) []string {
	t.Helper()
	dir := t.TempDir()

	good := filepath.Join(dir, "harbour.topojson")
	require.NoError(t, os.WriteFile(good, []byte(harbourTopology), 0o644))

	empty := filepath.Join(dir, "empty.topojson")
	require.NoError(t, os.WriteFile(empty, []byte(`{"type":"Topology","arcs":[],"objects":{}}`), 0o644))

	return []string{good, filepath.Join(dir, "missing.topojson"), empty}
}

func TestLoadFilesSkipErrors(t *testing.T) {
	paths := writeTopologies(t)
	var log bytes.Buffer

	files, errs := LoadFiles(paths, NewParser(), LoadOptions{
		Parallel:   true,
		Workers:    2,
		SkipErrors: true,
		ErrorLog:   &log,
	})

	require.Len(t, files, 2)
	assert.Equal(t, paths[0], files[0].Path)
	assert.Len(t, files[0].Topology.Objects, 3)
	assert.Equal(t, paths[2], files[1].Path)

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "missing.topojson")
	assert.Contains(t, log.String(), "Error loading topology")
}

func TestLoadFilesStopOnError(t *testing.T) {
	files, errs := LoadFiles(writeTopologies(t), NewParser(), LoadOptions{Parallel: false})
	assert.Nil(t, files)
	assert.Len(t, errs, 1)
}

func TestForEach(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		seen := make([]int32, 50)
		var progress atomic.Int32

		forEach(len(seen), parallel, 8, func(i int) {
			atomic.AddInt32(&seen[i], 1)
		}, func(done, total int) {
			progress.Add(1)
			assert.Equal(t, 50, total)
		})

		for i, n := range seen {
			assert.Equal(t, int32(1), n, "index %d parallel=%v", i, parallel)
		}
		assert.Equal(t, int32(50), progress.Load())
	}

	// No jobs, no calls.
	forEach(0, true, 4, func(int) { t.Fatal("unexpected call") }, nil)
}
