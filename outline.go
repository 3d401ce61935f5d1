package larafonydocs

import (
	"strconv"
	"strings"
	"unicode"
)

// Heading represents a heading in a document body.
type Heading struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
}

// Headings returns all headings (H1-H6) of the document body with URL-safe
// anchors. Headings inside fenced code blocks are ignored and duplicate
// anchors get numeric suffixes.
func (d *Document) Headings() []Heading {
	var headings []Heading
	anchorCounts := make(map[string]int)
	inFence := false

	for _, line := range strings.Split(d.Content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
			continue
		}
		if inFence || !strings.HasPrefix(line, "#") {
			continue
		}

		level := 0
		for level < len(line) && line[level] == '#' {
			level++
		}
		if level > 6 || level >= len(line) || line[level] != ' ' {
			continue
		}
		title := strings.TrimSpace(line[level:])
		if title == "" {
			continue
		}

		anchor := slugifyAnchor(title)
		if count, seen := anchorCounts[anchor]; seen {
			anchorCounts[anchor] = count + 1
			anchor += "-" + strconv.Itoa(count)
		} else {
			anchorCounts[anchor] = 1
		}

		headings = append(headings, Heading{Level: level, Title: title, Anchor: anchor})
	}

	return headings
}

// slugifyAnchor creates a URL-safe anchor from a heading title: lowercase,
// spaces collapsed to single hyphens, everything else dropped.
func slugifyAnchor(title string) string {
	var b strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			prevHyphen = false
		case unicode.IsSpace(r) || r == '-':
			if !prevHyphen && b.Len() > 0 {
				b.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
