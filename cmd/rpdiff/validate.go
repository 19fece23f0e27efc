package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rpdiff/routepath"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>...",
		Short: "Check route-path documents for gaps and ordering errors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runValidate(args)
		},
	}
}

func (a *app) runValidate(paths []string) error {
	failed := 0
	for _, p := range paths {
		rp, err := routepath.Load(p)
		if err != nil {
			failed++
			fmt.Fprintf(a.stdout, "FAIL %s: %v\n", p, err)
			continue
		}
		fmt.Fprintf(a.stdout, "OK   %s (%s, %d links)\n", p, rp.Key(), len(rp.Links))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d route-paths invalid", failed, len(paths))
	}

	return nil
}
