package larafonydocs

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Document represents a single documentation file split into frontmatter
// entries and body content. Documents are derived on every read; only the
// navigation descriptor is cached.
type Document struct {
	Frontmatter map[string]string `json:"frontmatter"`
	Content     string            `json:"content"`
}

// frontmatterBlockRe matches a frontmatter block anchored at the very start
// of the content: a line of three hyphens, the block body, and a closing line
// of three hyphens.
var frontmatterBlockRe = regexp.MustCompile(`(?s)\A---\n(.*?)\n---\n`)

// frontmatterLineRe matches a single frontmatter entry: a bare word key, a
// colon, and a double-quoted value. This is deliberately a flat subset of
// frontmatter syntax, not general YAML; lines that do not match are skipped.
var frontmatterLineRe = regexp.MustCompile(`^(\w+):\s*"(.*)"$`)

// ParseDocument splits raw file content into frontmatter and body. Content
// without a leading frontmatter block yields an empty frontmatter map and the
// content unchanged. Malformed lines inside the block are skipped silently.
func ParseDocument(raw string) *Document {
	m := frontmatterBlockRe.FindStringSubmatch(raw)
	if m == nil {
		return &Document{Frontmatter: map[string]string{}, Content: raw}
	}

	frontmatter := make(map[string]string)
	for _, line := range strings.Split(m[1], "\n") {
		entry := frontmatterLineRe.FindStringSubmatch(strings.TrimSpace(line))
		if entry == nil {
			continue
		}
		frontmatter[entry[1]] = unescape(entry[2])
	}

	return &Document{
		Frontmatter: frontmatter,
		Content:     raw[len(m[0]):],
	}
}

// StripFrontmatter removes a leading frontmatter block, delimiters included.
// Content without a recognizable block is returned unchanged; the removal is
// best-effort, not mandatory.
func StripFrontmatter(raw string) string {
	if loc := frontmatterBlockRe.FindStringIndex(raw); loc != nil {
		return raw[loc[1]:]
	}
	return raw
}

// unescape resolves backslash escape sequences in a quoted frontmatter
// value, e.g. `\"` becomes `"`.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// ContentHash computes a hash of the document body using xxhash.
// Consumers use it for change detection and cache busting.
func (d *Document) ContentHash() string {
	h := xxhash.Sum64String(d.Content)
	return fmt.Sprintf("%x", h)
}
