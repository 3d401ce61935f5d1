package main

import "fmt"

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	sections := deps.Docs.Sections()
	if len(sections) == 0 {
		fmt.Fprintln(deps.Stdout, "No sections found. Is there a meta.json under the documentation root?")
		return nil
	}

	for _, section := range sections {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", section.ID, section.Title)
		for _, page := range section.Pages {
			fmt.Fprintf(deps.Stdout, "  %s  %s  (%s)\n", page.Slug, page.Title, page.File)
		}
	}

	return nil
}
