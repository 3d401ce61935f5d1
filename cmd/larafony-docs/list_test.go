package main_test

import (
	"bytes"
	"context"
	"testing"

	larafonydocs "github.com/DJWeb-Damian-Jozwiak/larafony-docs"
	main "github.com/DJWeb-Damian-Jozwiak/larafony-docs/cmd/larafony-docs"
	"github.com/DJWeb-Damian-Jozwiak/larafony-docs/mock"
	"github.com/stretchr/testify/assert"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists sections with their pages", func(t *testing.T) {
		t.Parallel()

		docs := &mock.Provider{
			SectionsFn: func() []larafonydocs.Section {
				return []larafonydocs.Section{
					{
						ID:    "getting-started",
						Title: "Getting Started",
						Pages: []larafonydocs.Page{
							{File: "installation.md", Title: "Installation", Slug: "installation"},
						},
					},
					{
						ID:    "routing",
						Title: "Routing",
						Pages: []larafonydocs.Page{
							{File: "basics.md", Title: "Routing Basics", Slug: "basics"},
						},
					},
				}
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Docs:   docs,
		}

		err := (&main.ListCmd{}).Run(deps)

		assert.NoError(t, err)
		assert.Contains(t, stdout.String(), "getting-started  Getting Started")
		assert.Contains(t, stdout.String(), "  installation  Installation  (installation.md)")
		assert.Contains(t, stdout.String(), "routing  Routing")
		assert.Empty(t, stderr.String())
	})

	t.Run("prints a hint when no sections exist", func(t *testing.T) {
		t.Parallel()

		docs := &mock.Provider{
			SectionsFn: func() []larafonydocs.Section { return nil },
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Docs:   docs,
		}

		err := (&main.ListCmd{}).Run(deps)

		assert.NoError(t, err)
		assert.Contains(t, stdout.String(), "No sections found")
	})
}
