package larafonydocs

// Meta is the parsed navigation descriptor (meta.json): the ordered list of
// documentation sections. Unknown keys in the descriptor are ignored; a
// missing or malformed descriptor decodes to an empty Meta.
type Meta struct {
	Sections []Section `json:"sections"`
}

// Section is a named grouping of documentation pages. ID is unique within
// the descriptor and doubles as the directory holding the section's files.
type Section struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
	Pages []Page `json:"pages"`
}

// Page is a single documentation entry. Slug is unique within its owning
// section; uniqueness across sections is not guaranteed.
type Page struct {
	File  string `json:"file"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// FindSection returns the first section with the given id, or nil if no
// section matches. On a malformed descriptor with duplicate ids the first
// occurrence in declaration order wins.
func (m *Meta) FindSection(sectionID string) *Section {
	for i := range m.Sections {
		if m.Sections[i].ID == sectionID {
			return &m.Sections[i]
		}
	}
	return nil
}

// FindPage returns the first page with the given slug inside the section
// with the given id, or nil if the section or the page is missing.
func (m *Meta) FindPage(sectionID, slug string) *Page {
	section := m.FindSection(sectionID)
	if section == nil {
		return nil
	}
	for i := range section.Pages {
		if section.Pages[i].Slug == slug {
			return &section.Pages[i]
		}
	}
	return nil
}

// AllPaths returns every content path the descriptor claims to contain, as
// "<section-id>/<file>" in declaration order. Paths use forward slashes
// regardless of host OS; Provider.ResolvePath converts to native separators.
func (m *Meta) AllPaths() []string {
	var paths []string
	for _, section := range m.Sections {
		for _, page := range section.Pages {
			paths = append(paths, section.ID+"/"+page.File)
		}
	}
	return paths
}
