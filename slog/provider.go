// Package slog provides logging decorators for documentation providers.
// The core accessor never logs on its own; wrap it when visibility into
// filesystem activity is wanted.
package slog

import (
	"log/slog"
	"time"

	larafonydocs "github.com/DJWeb-Damian-Jozwiak/larafony-docs"
)

// Ensure Provider implements larafonydocs.Provider at compile time.
var _ larafonydocs.Provider = (*Provider)(nil)

// Provider wraps a larafonydocs.Provider with logging on the operations that
// touch the filesystem. Pure path and navigation lookups delegate silently.
type Provider struct {
	next   larafonydocs.Provider
	logger *slog.Logger
}

// NewProvider creates a logging Provider around next.
func NewProvider(next larafonydocs.Provider, logger *slog.Logger) *Provider {
	return &Provider{next: next, logger: logger}
}

// BasePath delegates to the wrapped provider.
func (p *Provider) BasePath() string { return p.next.BasePath() }

// ResolvePath delegates to the wrapped provider.
func (p *Provider) ResolvePath(relPath string) string { return p.next.ResolvePath(relPath) }

// Exists delegates and logs the probe result.
func (p *Provider) Exists(relPath string) bool {
	found := p.next.Exists(relPath)
	p.logger.Debug("exists", "path", relPath, "found", found)
	return found
}

// Read delegates and logs bytes read and duration.
func (p *Provider) Read(relPath string) (string, error) {
	begin := time.Now()
	content, err := p.next.Read(relPath)
	if err != nil {
		p.logger.Error("read", "path", relPath, "err", err)
		return "", err
	}
	p.logger.Info("read", "path", relPath, "bytes", len(content), "duration", time.Since(begin))
	return content, nil
}

// ReadContent delegates and logs bytes read and duration.
func (p *Provider) ReadContent(relPath string) (string, error) {
	begin := time.Now()
	content, err := p.next.ReadContent(relPath)
	if err != nil {
		p.logger.Error("read content", "path", relPath, "err", err)
		return "", err
	}
	p.logger.Info("read content", "path", relPath, "bytes", len(content), "duration", time.Since(begin))
	return content, nil
}

// Parse delegates and logs frontmatter entry count and duration.
func (p *Provider) Parse(relPath string) (*larafonydocs.Document, error) {
	begin := time.Now()
	doc, err := p.next.Parse(relPath)
	if err != nil {
		p.logger.Error("parse", "path", relPath, "err", err)
		return nil, err
	}
	p.logger.Info("parse", "path", relPath, "frontmatter", len(doc.Frontmatter), "duration", time.Since(begin))
	return doc, nil
}

// Meta delegates and logs section count and duration.
func (p *Provider) Meta() *larafonydocs.Meta {
	begin := time.Now()
	meta := p.next.Meta()
	p.logger.Debug("meta", "sections", len(meta.Sections), "duration", time.Since(begin))
	return meta
}

// Sections delegates to the wrapped provider.
func (p *Provider) Sections() []larafonydocs.Section { return p.next.Sections() }

// FindSection delegates to the wrapped provider.
func (p *Provider) FindSection(sectionID string) (*larafonydocs.Section, error) {
	return p.next.FindSection(sectionID)
}

// FindPage delegates to the wrapped provider.
func (p *Provider) FindPage(sectionID, slug string) (*larafonydocs.Page, error) {
	return p.next.FindPage(sectionID, slug)
}

// AllPaths delegates to the wrapped provider.
func (p *Provider) AllPaths() []string { return p.next.AllPaths() }

// ClearCache delegates and logs the reset.
func (p *Provider) ClearCache() {
	p.next.ClearCache()
	p.logger.Info("cache cleared")
}
