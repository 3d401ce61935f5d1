package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	larafonydocs "github.com/DJWeb-Damian-Jozwiak/larafony-docs"
	"github.com/DJWeb-Damian-Jozwiak/larafony-docs/fs"
	docslog "github.com/DJWeb-Damian-Jozwiak/larafony-docs/slog"
	"github.com/alecthomas/kong"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Documentation provider used by all commands. Left nil to build a
	// filesystem provider from the --dir flag; set directly in tests.
	Docs larafonydocs.Provider
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("larafony-docs"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'larafony-docs --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if m.Docs == nil {
		m.Docs = buildProvider(cli, stderr)
	}
	deps.Docs = m.Docs

	return kongCtx.Run(deps)
}

// buildProvider wires the filesystem provider, with slog decoration and a
// meta.json diagnostic observer when --verbose is set.
func buildProvider(cli *CLI, stderr io.Writer) larafonydocs.Provider {
	if !cli.Verbose {
		return fs.NewProvider(cli.Dir)
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	inner := fs.NewProvider(cli.Dir, fs.WithMetaErrorFunc(func(err error) {
		logger.Warn("navigation descriptor unreadable", "err", err)
	}))
	return docslog.NewProvider(inner, logger)
}
