// Package mock provides mock implementations of larafonydocs interfaces.
package mock

import (
	larafonydocs "github.com/DJWeb-Damian-Jozwiak/larafony-docs"
)

var _ larafonydocs.Provider = (*Provider)(nil)

// Provider is a mock implementation of larafonydocs.Provider.
type Provider struct {
	BasePathFn    func() string
	ResolvePathFn func(relPath string) string
	ExistsFn      func(relPath string) bool
	ReadFn        func(relPath string) (string, error)
	ReadContentFn func(relPath string) (string, error)
	ParseFn       func(relPath string) (*larafonydocs.Document, error)
	MetaFn        func() *larafonydocs.Meta
	SectionsFn    func() []larafonydocs.Section
	FindSectionFn func(sectionID string) (*larafonydocs.Section, error)
	FindPageFn    func(sectionID, slug string) (*larafonydocs.Page, error)
	AllPathsFn    func() []string
	ClearCacheFn  func()
}

func (p *Provider) BasePath() string {
	return p.BasePathFn()
}

func (p *Provider) ResolvePath(relPath string) string {
	return p.ResolvePathFn(relPath)
}

func (p *Provider) Exists(relPath string) bool {
	return p.ExistsFn(relPath)
}

func (p *Provider) Read(relPath string) (string, error) {
	return p.ReadFn(relPath)
}

func (p *Provider) ReadContent(relPath string) (string, error) {
	return p.ReadContentFn(relPath)
}

func (p *Provider) Parse(relPath string) (*larafonydocs.Document, error) {
	return p.ParseFn(relPath)
}

func (p *Provider) Meta() *larafonydocs.Meta {
	return p.MetaFn()
}

func (p *Provider) Sections() []larafonydocs.Section {
	return p.SectionsFn()
}

func (p *Provider) FindSection(sectionID string) (*larafonydocs.Section, error) {
	return p.FindSectionFn(sectionID)
}

func (p *Provider) FindPage(sectionID, slug string) (*larafonydocs.Page, error) {
	return p.FindPageFn(sectionID, slug)
}

func (p *Provider) AllPaths() []string {
	return p.AllPathsFn()
}

func (p *Provider) ClearCache() {
	p.ClearCacheFn()
}
