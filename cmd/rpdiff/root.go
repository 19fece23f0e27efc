package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rpdiff/internal/config"
	"github.com/katalvlaran/rpdiff/internal/logging"
)

// app carries global flags and the resolved configuration to subcommands.
type app struct {
	stdout, stderr io.Writer

	configPath string
	verbose    bool
	noColor    bool

	cfg config.Config
	log *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "rpdiff",
		Short: "Compare transit route-paths link by link",
		Long: `rpdiff aligns the links of two route-path variants side by side
and highlights where they differ. Route-paths are read from YAML or JSON
documents.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to a YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable coloured output")

	root.AddCommand(newCompareCmd(a), newValidateCmd(a))

	return root
}

// setup loads configuration and builds the logger; flags win over the file.
func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	if a.noColor {
		cfg.Output.Color = false
	}
	log, err := logging.New(a.stderr, logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	a.log.Debug("configuration loaded", "path", a.configPath, "max_links", cfg.Align.MaxLinks, "tie_break", cfg.Align.TieBreak)

	return nil
}
