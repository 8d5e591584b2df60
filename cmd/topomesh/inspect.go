package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/beetlebugorg/topomesh/pkg/topomesh"
	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"
)

func (a *app) inspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file>...",
		Short: "Summarize topologies or run a JSONPath query against them",
		Example: `  topomesh inspect coast.topojson
  topomesh inspect coast.topojson --query '$.objects.*.geometries[*].properties.nam'`,
		Args:    cobra.MinimumNArgs(1),
		PreRunE: a.bindLocal,
		RunE:    a.runInspect,
	}

	f := cmd.Flags()
	f.StringP("query", "q", "", "JSONPath expression evaluated against each document")
	f.Int("workers", 0, "parser goroutines (0 = number of CPUs)")
	return cmd
}

func (a *app) runInspect(cmd *cobra.Command, args []string) error {
	files, errs := topomesh.LoadFiles(args, a.parser(), topomesh.LoadOptions{
		Parallel:   len(args) > 1,
		Workers:    a.conf.GetInt("workers"),
		SkipErrors: true,
		ErrorLog:   os.Stderr,
	})

	w := cmd.OutOrStdout()
	query := a.conf.GetString("query")

	for _, file := range files {
		if query != "" {
			results, err := file.Topology.Query(query)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\n", file.Path)
			for _, r := range results {
				fmt.Fprintf(w, "  %s\n", oj.JSON(r, &ojg.Options{Sort: true}))
			}
			continue
		}
		summarize(w, file)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d of %d files failed to parse", len(errs), len(args))
	}
	return nil
}

func summarize(w io.Writer, file topomesh.TopologyFile) {
	topo := file.Topology

	fmt.Fprintf(w, "%s\n", file.Path)
	fmt.Fprintf(w, "  type: %s\n", topo.Type)
	fmt.Fprintf(w, "  arcs: %d\n", topo.ArcCount())
	if t := topo.Transform; t != nil {
		fmt.Fprintf(w, "  transform: scale=(%g, %g) translate=(%g, %g)\n",
			t.Scale[0], t.Scale[1], t.Translate[0], t.Translate[1])
	}
	if len(topo.BBox) > 0 {
		fmt.Fprintf(w, "  bbox: %v\n", topo.BBox)
	}

	fmt.Fprintf(w, "  objects: %d\n", len(topo.Objects))
	for _, name := range topo.ObjectNames() {
		obj := topo.Objects[name]
		fmt.Fprintf(w, "    %s (%s): %d geometries %s\n", name, obj.Type, len(obj.Geometries), kindCounts(obj))
	}

	if len(topo.Skipped) > 0 {
		fmt.Fprintf(w, "  skipped: %d\n", len(topo.Skipped))
		for _, s := range topo.Skipped {
			fmt.Fprintf(w, "    %s[%d]: %s\n", s.Object, s.Index, s.Kind)
		}
	}
}

// kindCounts formats e.g. "[LineString=2 Polygon=1]".
func kindCounts(obj *topomesh.Object) string {
	counts := make(map[string]int)
	for _, g := range obj.Geometries {
		counts[string(g.Kind())]++
	}

	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = fmt.Sprintf("%s=%d", k, counts[k])
	}
	return "[" + strings.Join(parts, " ") + "]"
}
