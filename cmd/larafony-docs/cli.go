package main

import (
	"context"
	"io"

	larafonydocs "github.com/DJWeb-Damian-Jozwiak/larafony-docs"
)

// Dependencies holds the provider and streams for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Docs   larafonydocs.Provider
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Dir     string `short:"d" default:"docs" help:"Documentation root directory"`
	Verbose bool   `short:"v" help:"Log provider activity to stderr"`

	List  ListCmd  `cmd:"" help:"List sections and their pages"`
	Paths PathsCmd `cmd:"" help:"Print every content path in the navigation descriptor"`
	Check CheckCmd `cmd:"" help:"Verify every listed content file exists on disk"`
	Show  ShowCmd  `cmd:"" help:"Print a documentation page"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// PathsCmd is the "paths" subcommand.
type PathsCmd struct{}

// CheckCmd is the "check" subcommand.
type CheckCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Section string `arg:"" help:"Section id"`
	Slug    string `arg:"" help:"Page slug"`
	Meta    bool   `help:"Print frontmatter entries instead of the body"`
	Raw     bool   `help:"Print the file verbatim, frontmatter included"`
	Toc     bool   `help:"Print the page's heading outline"`
}
