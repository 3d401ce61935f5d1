package larafonydocs

// MetaFileName is the navigation descriptor filename inside the base path.
const MetaFileName = "meta.json"

// Provider is the single point of access to a documentation tree: path
// resolution, raw and parsed content reads, and navigation queries over the
// cached descriptor.
//
// Read-like operations return ENOTFOUND for missing files, sections, or
// pages. A missing or malformed descriptor degrades to an empty Meta rather
// than an error, so an incomplete corpus never halts a caller.
type Provider interface {
	// BasePath returns the documentation root.
	BasePath() string

	// ResolvePath joins the base path with a corpus-relative path. Leading
	// separators and parent-directory segments are neutralized so the
	// result always stays under BasePath.
	ResolvePath(relPath string) string

	// Exists reports whether the resolved file is on disk at call time.
	Exists(relPath string) bool

	// Read returns the full file content.
	// Returns ENOTFOUND if the file does not exist.
	Read(relPath string) (string, error)

	// ReadContent returns the file content with any leading frontmatter
	// block removed. Returns ENOTFOUND if the file does not exist.
	ReadContent(relPath string) (string, error)

	// Parse returns the file split into frontmatter entries and body.
	// Returns ENOTFOUND if the file does not exist.
	Parse(relPath string) (*Document, error)

	// Meta returns the cached navigation descriptor, loading it on first
	// call. A missing or malformed descriptor yields an empty Meta.
	Meta() *Meta

	// Sections returns the descriptor's sections in declaration order.
	Sections() []Section

	// FindSection returns the section with the given id.
	// Returns ENOTFOUND if no section matches.
	FindSection(sectionID string) (*Section, error)

	// FindPage returns the page with the given slug in the given section.
	// Returns ENOTFOUND if the section or the page is missing.
	FindPage(sectionID, slug string) (*Page, error)

	// AllPaths returns every "<section-id>/<file>" path in the descriptor.
	AllPaths() []string

	// ClearCache drops the cached descriptor so the next Meta call
	// re-reads meta.json. Intended for tests and hot-reload tooling.
	ClearCache()
}
