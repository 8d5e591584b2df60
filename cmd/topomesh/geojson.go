package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) geojsonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "geojson <file>",
		Short:   "Convert one object to a GeoJSON FeatureCollection",
		Args:    cobra.ExactArgs(1),
		PreRunE: a.bindLocal,
		RunE:    a.runGeoJSON,
	}

	f := cmd.Flags()
	f.String("object", "", "object to convert (may be omitted when there is only one)")
	addOutputFlag(f)
	return cmd
}

func (a *app) runGeoJSON(cmd *cobra.Command, args []string) error {
	topo, err := a.parser().Parse(args[0])
	if err != nil {
		return err
	}

	object := a.conf.GetString("object")
	if object == "" {
		names := topo.ObjectNames()
		if len(names) != 1 {
			return fmt.Errorf("--object is required, choose one of: %s", strings.Join(names, ", "))
		}
		object = names[0]
	}

	fc, err := topo.FeatureCollection(object)
	if err != nil {
		return err
	}
	data, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode geojson: %w", err)
	}

	w, closeOut, err := a.output(cmd)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		_ = closeOut()
		return err
	}
	return closeOut()
}
