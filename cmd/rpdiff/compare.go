package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rpdiff/align"
	"github.com/katalvlaran/rpdiff/render"
	"github.com/katalvlaran/rpdiff/routepath"
)

// errDifferences is returned by compare --fail-on-diff when rows differ.
var errDifferences = errors.New("route-paths differ")

type compareFlags struct {
	format     string
	tieBreak   string
	maxLinks   int
	failOnDiff bool
}

func newCompareCmd(a *app) *cobra.Command {
	var f compareFlags
	cmd := &cobra.Command{
		Use:   "compare <first> <second>",
		Short: "Align two route-paths and show differences",
		Long: `The compare command aligns the links of two route-paths row by row.
Rows present on one side only, or paired but unequal, are highlighted.

Example:
  rpdiff compare 1001-1.yaml 1001-1-new.yaml
  rpdiff compare a.json b.json --format json
  rpdiff compare a.yaml b.yaml --fail-on-diff`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCompare(cmd, args[0], args[1], f)
		},
	}
	cmd.Flags().StringVar(&f.format, "format", "", "Output format (text, json)")
	cmd.Flags().StringVar(&f.tieBreak, "tie-break", "", "Equal flag for ambiguous rows (mismatch, legacy)")
	cmd.Flags().IntVar(&f.maxLinks, "max-links", 0, "Longest route-path accepted")
	cmd.Flags().BoolVar(&f.failOnDiff, "fail-on-diff", false, "Exit with status 2 when the route-paths differ")

	return cmd
}

func (a *app) runCompare(cmd *cobra.Command, firstPath, secondPath string, f compareFlags) error {
	if cmd.Flags().Changed("format") {
		a.cfg.Output.Format = f.format
	}
	if cmd.Flags().Changed("tie-break") {
		a.cfg.Align.TieBreak = f.tieBreak
	}
	if cmd.Flags().Changed("max-links") {
		a.cfg.Align.MaxLinks = f.maxLinks
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	first, err := routepath.Load(firstPath)
	if err != nil {
		a.log.Error("load failed", "path", firstPath, "err", err)
		return err
	}
	second, err := routepath.Load(secondPath)
	if err != nil {
		a.log.Error("load failed", "path", secondPath, "err", err)
		return err
	}
	a.log.Debug("route-paths loaded",
		"first", first.Key(), "first_links", len(first.Links),
		"second", second.Key(), "second_links", len(second.Links))

	opts := a.cfg.AlignOptions()
	rows, err := align.AlignRoutePaths(first, second, &opts)
	if err != nil {
		if errors.Is(err, align.ErrAlignmentOverflow) {
			return fmt.Errorf("cannot compare %s and %s: %w", first.Key(), second.Key(), err)
		}
		return err
	}
	summary := align.Summarize(rows)
	a.log.Debug("aligned", "rows", summary.Rows, "differences", summary.Differences())

	switch a.cfg.Output.Format {
	case "json":
		err = render.JSON(a.stdout, first.Key(), second.Key(), rows)
	default:
		err = render.Text(a.stdout, rows, render.TextOptions{
			FirstTitle:  first.Key(),
			SecondTitle: second.Key(),
			Color:       a.cfg.Output.Color,
			Summary:     a.cfg.Output.Summary,
		})
	}
	if err != nil {
		return err
	}

	if f.failOnDiff && !summary.Identical() {
		return errDifferences
	}

	return nil
}
