package main

import (
	"encoding/json"
	"fmt"

	"github.com/beetlebugorg/topomesh/pkg/topomesh"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type meshDocument struct {
	File   string        `json:"file"`
	Meshes []meshRecord  `json:"meshes"`
	Issues []issueRecord `json:"issues"`
}

type meshRecord struct {
	Object   string `json:"object"`
	Name     string `json:"name"`
	Geometry int    `json:"geometry"`
	Part     int    `json:"part"`
	Kind     string `json:"kind"`
	Vertices any    `json:"vertices"`
	Indices  []int  `json:"indices"`
}

type issueRecord struct {
	Object   string `json:"object"`
	Geometry int    `json:"geometry"`
	Part     int    `json:"part"`
	Kind     string `json:"kind"`
	Warning  bool   `json:"warning"`
	Error    string `json:"error"`
}

func (a *app) meshCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "mesh <file>",
		Short:   "Build meshes and write them as JSON",
		Args:    cobra.ExactArgs(1),
		PreRunE: a.bindLocal,
		RunE:    a.runMesh,
	}

	f := cmd.Flags()
	f.Float64("width", 1, "ribbon offset on each side of a line")
	f.StringSlice("objects", nil, "only build these objects")
	f.Int("workers", 0, "worker goroutines (0 = number of CPUs)")
	f.Bool("serial", false, "build without a worker pool")
	f.Int("arc-cache", 1024, "decoded arcs kept for reuse (0 disables)")
	f.Bool("3d", false, "write vertices as (x, 0, y)")
	f.Bool("indent", false, "indent the JSON output")
	addOutputFlag(f)
	return cmd
}

func (a *app) runMesh(cmd *cobra.Command, args []string) error {
	topo, err := a.parser().Parse(args[0])
	if err != nil {
		return err
	}

	opts := topomesh.DefaultBuildOptions()
	opts.LineWidth = a.conf.GetFloat64("width")
	opts.ObjectFilter = a.conf.GetStringSlice("objects")
	opts.Parallel = !a.conf.GetBool("serial")
	opts.Workers = a.conf.GetInt("workers")
	opts.ArcCacheSize = a.conf.GetInt("arc-cache")
	opts.Logger = a.log

	set, err := topomesh.Build(topo, opts)
	if err != nil {
		return err
	}
	a.log.Info("built meshes",
		zap.String("file", args[0]),
		zap.Int("meshes", set.Count()),
		zap.Int("issues", len(set.Issues)))

	doc := meshDocument{
		File:   args[0],
		Meshes: make([]meshRecord, 0, len(set.Meshes)),
		Issues: make([]issueRecord, 0, len(set.Issues)),
	}
	for _, m := range set.Meshes {
		rec := meshRecord{
			Object:   m.Object,
			Name:     m.Name,
			Geometry: m.Geometry,
			Part:     m.Part,
			Kind:     string(m.Kind),
			Indices:  m.Mesh.Indices,
		}
		if a.conf.GetBool("3d") {
			rec.Vertices = m.Mesh.Vertices3D()
		} else {
			rec.Vertices = vertexPairs(m.Mesh.Vertices)
		}
		doc.Meshes = append(doc.Meshes, rec)
	}
	for _, issue := range set.Issues {
		doc.Issues = append(doc.Issues, issueRecord{
			Object:   issue.Object,
			Geometry: issue.Geometry,
			Part:     issue.Part,
			Kind:     string(issue.Kind),
			Warning:  issue.IsWarning(),
			Error:    issue.Err.Error(),
		})
	}

	w, closeOut, err := a.output(cmd)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	if a.conf.GetBool("indent") {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		_ = closeOut()
		return fmt.Errorf("write meshes: %w", err)
	}
	return closeOut()
}

func vertexPairs(vertices []topomesh.Vertex) [][2]float32 {
	out := make([][2]float32, len(vertices))
	for i, v := range vertices {
		out[i] = [2]float32{v.X, v.Y}
	}
	return out
}
