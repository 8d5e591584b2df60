package topomesh

import (
	"fmt"
	"io"
	"runtime"
	"sync"
)

// LoadOptions controls parallel loading behavior and error handling.
type LoadOptions struct {
	// Parallel enables concurrent file parsing.
	Parallel bool

	// Workers specifies the number of parallel parser goroutines.
	// If 0, defaults to runtime.NumCPU().
	Workers int

	// SkipErrors causes loading to continue even when individual files fail.
	// Failed files are skipped and errors are collected.
	// When false, the first error in path order is returned alone.
	SkipErrors bool

	// Progress is an optional callback called after each file with (loaded, total).
	Progress func(loaded, total int)

	// ErrorLog is an optional writer for detailed error reporting.
	ErrorLog io.Writer
}

// DefaultLoadOptions returns load options with sensible defaults.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Parallel:   true,
		Workers:    runtime.NumCPU(),
		SkipErrors: true,
	}
}

// TopologyFile is a parsed file.
type TopologyFile struct {
	Path     string
	Topology *Topology
}

// LoadFiles parses several TopoJSON files, concurrently when opts.Parallel
// is set. Results keep the order of paths.
//
// Example:
//
//	files, errs := topomesh.LoadFiles(paths, topomesh.NewParser(), topomesh.LoadOptions{
//	    Parallel:   true,
//	    SkipErrors: true,
//	    ErrorLog:   os.Stderr,
//	})
func LoadFiles(paths []string, parser Parser, opts LoadOptions) ([]TopologyFile, []error) {
	topos := make([]*Topology, len(paths))
	errs := make([]error, len(paths))

	forEach(len(paths), opts.Parallel, opts.Workers, func(i int) {
		topos[i], errs[i] = parser.Parse(paths[i])
	}, opts.Progress)

	files := make([]TopologyFile, 0, len(paths))
	var errors []error

	for i, path := range paths {
		if errs[i] != nil {
			err := fmt.Errorf("%s: %w", path, errs[i])

			if opts.ErrorLog != nil {
				fmt.Fprintf(opts.ErrorLog, "Error loading topology: %v\n", err)
			}

			if !opts.SkipErrors {
				return nil, []error{err}
			}
			errors = append(errors, err)
			continue
		}
		files = append(files, TopologyFile{Path: path, Topology: topos[i]})
	}

	return files, errors
}

// forEach calls fn(i) for every i in [0, n), on a worker pool when parallel
// is set. fn must only write state owned by index i. progress, if set, is
// called from the calling goroutine after each completion.
func forEach(n int, parallel bool, workers int, fn func(i int), progress func(done, total int)) {
	if n == 0 {
		return
	}

	// If parallel disabled, fall back to serial
	if !parallel || n == 1 {
		for i := 0; i < n; i++ {
			fn(i)
			if progress != nil {
				progress(i+1, n)
			}
		}
		return
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	// Don't create more workers than jobs
	if workers > n {
		workers = n
	}

	jobs := make(chan int, n)
	results := make(chan int, n)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				fn(i)
				results <- i
			}
		}()
	}

	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)

	// Wait for workers to finish in a separate goroutine
	go func() {
		wg.Wait()
		close(results)
	}()

	done := 0
	for range results {
		done++
		if progress != nil {
			progress(done, n)
		}
	}
}
