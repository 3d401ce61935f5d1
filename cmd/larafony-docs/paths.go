package main

import "fmt"

// Run executes the paths command.
func (c *PathsCmd) Run(deps *Dependencies) error {
	for _, p := range deps.Docs.AllPaths() {
		fmt.Fprintln(deps.Stdout, p)
	}
	return nil
}
