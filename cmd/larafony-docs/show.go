package main

import (
	"fmt"
	"sort"
	"strings"

	larafonydocs "github.com/DJWeb-Damian-Jozwiak/larafony-docs"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	page, err := deps.Docs.FindPage(c.Section, c.Slug)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", larafonydocs.ErrorMessage(err))
		return err
	}

	relPath := c.Section + "/" + page.File

	if c.Raw {
		raw, err := deps.Docs.Read(relPath)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", larafonydocs.ErrorMessage(err))
			return err
		}
		fmt.Fprint(deps.Stdout, raw)
		return nil
	}

	doc, err := deps.Docs.Parse(relPath)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", larafonydocs.ErrorMessage(err))
		return err
	}

	if c.Meta {
		keys := make([]string, 0, len(doc.Frontmatter))
		for k := range doc.Frontmatter {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(deps.Stdout, "%s: %s\n", k, doc.Frontmatter[k])
		}
		return nil
	}

	if c.Toc {
		for _, h := range doc.Headings() {
			fmt.Fprintf(deps.Stdout, "%s%s  #%s\n", strings.Repeat("  ", h.Level-1), h.Title, h.Anchor)
		}
		return nil
	}

	fmt.Fprint(deps.Stdout, doc.Content)
	return nil
}
