package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beetlebugorg/topomesh/pkg/topomesh"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app carries the configuration and logger shared by all subcommands.
// Every flag is bound into conf, so it can also come from a TOPOMESH_*
// environment variable or the --config file.
type app struct {
	conf *viper.Viper
	log  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{conf: viper.New(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "topomesh",
		Short: "Decode TopoJSON and build triangle meshes",
		Long: `topomesh reads TopoJSON topologies, resolves their shared arcs and turns
lines into mitered ribbons and polygons into filled triangle meshes.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (YAML, TOML or JSON)")
	flags.BoolP("verbose", "v", false, "log debug output to stderr")
	flags.Bool("skip-unknown", false, "skip geometries of unknown kind instead of failing")
	flags.Bool("no-validate", false, "do not check arc references while parsing")
	_ = a.conf.BindPFlags(flags)

	root.AddCommand(a.meshCmd(), a.geojsonCmd(), a.inspectCmd())
	return root
}

func (a *app) init() error {
	a.conf.SetEnvPrefix("TOPOMESH")
	a.conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.conf.AutomaticEnv()

	if cfg := a.conf.GetString("config"); cfg != "" {
		a.conf.SetConfigFile(cfg)
		if err := a.conf.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}

	logger, err := newLogger(a.conf.GetBool("verbose"))
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	a.log = logger
	return nil
}

// bindLocal binds the running subcommand's own flags. Done at run time so
// that subcommands may reuse flag names.
func (a *app) bindLocal(cmd *cobra.Command, args []string) error {
	return a.conf.BindPFlags(cmd.Flags())
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func (a *app) parser() topomesh.Parser {
	return topomesh.NewParserWithOptions(topomesh.ParseOptions{
		SkipUnknownGeometries: a.conf.GetBool("skip-unknown"),
		ValidateTopology:      !a.conf.GetBool("no-validate"),
		Logger:                a.log,
	})
}

// addOutputFlag registers --out on a subcommand that writes a document.
func addOutputFlag(f *pflag.FlagSet) {
	f.StringP("out", "o", "", "output file (default stdout)")
}

// output returns the --out file, or the command's stdout when unset.
func (a *app) output(cmd *cobra.Command) (io.Writer, func() error, error) {
	path := a.conf.GetString("out")
	if path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, f.Close, nil
}
