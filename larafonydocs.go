// Package larafonydocs provides read-only access to the Larafony framework
// documentation corpus: a directory of Markdown files carrying restricted
// frontmatter, plus a meta.json navigation descriptor describing sections
// and pages. It resolves corpus-relative paths, reads and parses documents,
// and answers navigation queries over the cached descriptor.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, slog/).
package larafonydocs
