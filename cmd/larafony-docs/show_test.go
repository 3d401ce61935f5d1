package main_test

import (
	"bytes"
	"context"
	"testing"

	larafonydocs "github.com/DJWeb-Damian-Jozwiak/larafony-docs"
	main "github.com/DJWeb-Damian-Jozwiak/larafony-docs/cmd/larafony-docs"
	"github.com/DJWeb-Damian-Jozwiak/larafony-docs/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func showDeps(docs *mock.Provider) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Docs:   docs,
	}, stdout, stderr
}

func routingMock(t *testing.T) *mock.Provider {
	t.Helper()

	return &mock.Provider{
		FindPageFn: func(sectionID, slug string) (*larafonydocs.Page, error) {
			if sectionID == "routing" && slug == "basics" {
				return &larafonydocs.Page{File: "basics.md", Title: "Routing Basics", Slug: "basics"}, nil
			}
			return nil, larafonydocs.Errorf(larafonydocs.ENOTFOUND, "page %q not found in section %q", slug, sectionID)
		},
		ReadFn: func(relPath string) (string, error) {
			return "---\ntitle: \"Routing Basics\"\n---\n# Routing\n\n## Route Parameters\n", nil
		},
		ParseFn: func(relPath string) (*larafonydocs.Document, error) {
			return &larafonydocs.Document{
				Frontmatter: map[string]string{"title": "Routing Basics", "icon": "signpost"},
				Content:     "# Routing\n\n## Route Parameters\n",
			}, nil
		},
	}
}

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the body by default", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := showDeps(routingMock(t))
		cmd := &main.ShowCmd{Section: "routing", Slug: "basics"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "# Routing\n\n## Route Parameters\n", stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("prints frontmatter with --meta, keys sorted", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := showDeps(routingMock(t))
		cmd := &main.ShowCmd{Section: "routing", Slug: "basics", Meta: true}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "icon: signpost\ntitle: Routing Basics\n", stdout.String())
	})

	t.Run("prints the raw file with --raw", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := showDeps(routingMock(t))
		cmd := &main.ShowCmd{Section: "routing", Slug: "basics", Raw: true}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "---\ntitle: \"Routing Basics\"\n---\n# Routing\n\n## Route Parameters\n", stdout.String())
	})

	t.Run("prints the heading outline with --toc", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := showDeps(routingMock(t))
		cmd := &main.ShowCmd{Section: "routing", Slug: "basics", Toc: true}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Routing  #routing\n  Route Parameters  #route-parameters\n", stdout.String())
	})

	t.Run("reports a missing page on stderr", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := showDeps(routingMock(t))
		cmd := &main.ShowCmd{Section: "routing", Slug: "missing"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, larafonydocs.ENOTFOUND, larafonydocs.ErrorCode(err))
		assert.Contains(t, stderr.String(), "not found")
		assert.Empty(t, stdout.String())
	})
}
