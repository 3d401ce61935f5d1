// Package fs provides filesystem-backed access to a documentation tree.
package fs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	larafonydocs "github.com/DJWeb-Damian-Jozwiak/larafony-docs"
)

// Ensure Provider implements larafonydocs.Provider at compile time.
var _ larafonydocs.Provider = (*Provider)(nil)

// Provider implements larafonydocs.Provider over a directory on disk.
// The navigation descriptor is loaded lazily and cached until ClearCache;
// every other read hits the filesystem directly. Safe for concurrent use.
type Provider struct {
	basePath  string
	metaErrFn func(error)

	mu   sync.Mutex
	meta *larafonydocs.Meta
}

// Option configures a Provider.
type Option func(*Provider)

// WithMetaErrorFunc registers an observer invoked when meta.json is present
// but cannot be read or decoded. The descriptor still degrades to empty; the
// observer only surfaces the fault.
func WithMetaErrorFunc(fn func(error)) Option {
	return func(p *Provider) { p.metaErrFn = fn }
}

// NewProvider returns a Provider rooted at basePath.
func NewProvider(basePath string, opts ...Option) *Provider {
	p := &Provider{basePath: basePath}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// BasePath returns the documentation root.
func (p *Provider) BasePath() string { return p.basePath }

// ResolvePath joins the base path with a corpus-relative path. The relative
// path is rooted and cleaned first, so neither leading separators nor
// parent-directory segments can escape the base path.
func (p *Provider) ResolvePath(relPath string) string {
	rooted := "/" + strings.TrimLeft(filepath.FromSlash(relPath), string(filepath.Separator))
	return filepath.Join(p.basePath, filepath.Clean(rooted))
}

// Exists reports whether the resolved file is on disk at call time.
// It is never cached; the result reflects current filesystem state.
func (p *Provider) Exists(relPath string) bool {
	info, err := os.Stat(p.ResolvePath(relPath))
	return err == nil && !info.IsDir()
}

// Read returns the full content of the resolved file.
func (p *Provider) Read(relPath string) (string, error) {
	b, err := os.ReadFile(p.ResolvePath(relPath))
	if errors.Is(err, os.ErrNotExist) {
		return "", larafonydocs.Errorf(larafonydocs.ENOTFOUND, "document %q not found", relPath)
	}
	if err != nil {
		return "", fmt.Errorf("read %q: %w", relPath, err)
	}
	return string(b), nil
}

// ReadContent returns the file content with any leading frontmatter removed.
func (p *Provider) ReadContent(relPath string) (string, error) {
	raw, err := p.Read(relPath)
	if err != nil {
		return "", err
	}
	return larafonydocs.StripFrontmatter(raw), nil
}

// Parse returns the file split into frontmatter entries and body.
func (p *Provider) Parse(relPath string) (*larafonydocs.Document, error) {
	raw, err := p.Read(relPath)
	if err != nil {
		return nil, err
	}
	return larafonydocs.ParseDocument(raw), nil
}

// Meta returns the cached navigation descriptor, loading meta.json on the
// first call. A missing or malformed descriptor yields an empty Meta.
func (p *Provider) Meta() *larafonydocs.Meta {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.meta != nil {
		return p.meta
	}

	meta := &larafonydocs.Meta{}
	b, err := os.ReadFile(filepath.Join(p.basePath, larafonydocs.MetaFileName))
	switch {
	case err == nil:
		if jsonErr := json.Unmarshal(b, meta); jsonErr != nil {
			p.observeMetaError(fmt.Errorf("decode %s: %w", larafonydocs.MetaFileName, jsonErr))
			meta = &larafonydocs.Meta{}
		}
	case errors.Is(err, os.ErrNotExist):
		// An incomplete corpus is expected; no descriptor means no sections.
	default:
		p.observeMetaError(err)
	}

	p.meta = meta
	return p.meta
}

func (p *Provider) observeMetaError(err error) {
	if p.metaErrFn != nil {
		p.metaErrFn(err)
	}
}

// Sections returns the descriptor's sections in declaration order.
func (p *Provider) Sections() []larafonydocs.Section {
	return p.Meta().Sections
}

// FindSection returns the section with the given id.
func (p *Provider) FindSection(sectionID string) (*larafonydocs.Section, error) {
	if section := p.Meta().FindSection(sectionID); section != nil {
		return section, nil
	}
	return nil, larafonydocs.Errorf(larafonydocs.ENOTFOUND, "section %q not found", sectionID)
}

// FindPage returns the page with the given slug in the given section.
func (p *Provider) FindPage(sectionID, slug string) (*larafonydocs.Page, error) {
	meta := p.Meta()
	if meta.FindSection(sectionID) == nil {
		return nil, larafonydocs.Errorf(larafonydocs.ENOTFOUND, "section %q not found", sectionID)
	}
	if page := meta.FindPage(sectionID, slug); page != nil {
		return page, nil
	}
	return nil, larafonydocs.Errorf(larafonydocs.ENOTFOUND, "page %q not found in section %q", slug, sectionID)
}

// AllPaths returns every "<section-id>/<file>" path in the descriptor.
func (p *Provider) AllPaths() []string {
	return p.Meta().AllPaths()
}

// ClearCache drops the cached descriptor so the next Meta call re-reads
// meta.json from disk.
func (p *Provider) ClearCache() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.meta = nil
}
