package main

import (
	"fmt"

	larafonydocs "github.com/DJWeb-Damian-Jozwiak/larafony-docs"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	paths := deps.Docs.AllPaths()
	if len(paths) == 0 {
		fmt.Fprintln(deps.Stdout, "Nothing to check: the navigation descriptor lists no pages.")
		return nil
	}

	var missing []string
	for _, p := range paths {
		if !deps.Docs.Exists(p) {
			missing = append(missing, p)
		}
	}

	if len(missing) > 0 {
		for _, p := range missing {
			fmt.Fprintf(deps.Stderr, "missing: %s\n", p)
		}
		return larafonydocs.Errorf(larafonydocs.ENOTFOUND, "%d of %d content files missing", len(missing), len(paths))
	}

	fmt.Fprintf(deps.Stdout, "OK: %d content files present\n", len(paths))
	return nil
}
