// Command rpdiff compares two route-path documents link by link.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the CLI and maps errors to exit codes:
// 0 success, 1 failure, 2 differences found with --fail-on-diff.
func run(args []string) int {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, errDifferences) {
			return 2
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	return 0
}
