package topomesh

import (
	"runtime"

	"go.uber.org/zap"
)

// ParseOptions configures parsing behavior.
type ParseOptions struct {
	// SkipUnknownGeometries drops geometries with an unrecognized type tag
	// (recorded in Topology.Skipped) instead of failing the parse.
	SkipUnknownGeometries bool

	// ValidateTopology checks every referenced arc index at parse time.
	ValidateTopology bool

	// Logger receives warnings. Nil disables logging.
	Logger *zap.Logger
}

// DefaultParseOptions returns default options.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		SkipUnknownGeometries: false,
		ValidateTopology:      true,
	}
}

// BuildOptions controls mesh generation.
type BuildOptions struct {
	// LineWidth is the offset applied on each side of LineString and
	// MultiLineString ribbons. The ribbon is 2*LineWidth wide.
	LineWidth float64

	// ObjectFilter limits the build to the named objects.
	// Empty means all objects.
	ObjectFilter []string

	// Parallel builds objects on a pool of worker goroutines.
	Parallel bool

	// Workers is the pool size. If 0, defaults to runtime.NumCPU().
	// Only used when Parallel is true.
	Workers int

	// ArcCacheSize is the number of decoded arcs kept for reuse between
	// geometries sharing an arc. 0 disables the cache.
	ArcCacheSize int

	// Triangulator fills polygon rings. Nil selects Tess2.
	Triangulator Triangulator

	// Progress is called after each object is built with (done, total).
	Progress func(done, total int)

	// Logger receives one Warn entry per mesh issue. Nil disables logging.
	Logger *zap.Logger
}

// DefaultBuildOptions returns build options with sensible defaults.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		LineWidth:    1,
		Parallel:     true,
		Workers:      runtime.NumCPU(),
		ArcCacheSize: 1024,
	}
}

func (o BuildOptions) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
