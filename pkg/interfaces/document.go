package interfaces

import (
	"context"
	"time"
)

// Document represents one local Markdown blog draft: a metadata header plus a
// body. The struct is shared between the interfaces package and internal
// implementations so consumers can depend on a stable contract.
type Document struct {
	FilePath     string
	Meta         Metadata
	Body         []byte
	LastModified time.Time
}

// Metadata models the header fields blogsync reads and writes. Raw preserves
// every header key actually present in the source file (known and unknown) so
// write-back never drops fields the sync does not own.
type Metadata struct {
	Title        string         `yaml:"title" json:"title"`
	CanonicalURL string         `yaml:"canonical_url" json:"canonical_url"`
	CoverImage   string         `yaml:"cover_image" json:"cover_image"`
	Tags         []string       `yaml:"tags" json:"tags"`
	PostID       string         `yaml:"hashnode_post_id" json:"hashnode_post_id"`
	Raw          map[string]any `yaml:"-" json:"raw"`
}

// HasPostID reports whether the document has already been assigned a remote
// post identifier by a previous sync.
func (m Metadata) HasPostID() bool {
	return m.PostID != ""
}

// DocumentStore abstracts the folder of Markdown documents a sync run operates
// on. List is non-recursive and returns paths in directory order.
type DocumentStore interface {
	List(ctx context.Context) ([]string, error)
	Read(ctx context.Context, path string) (*Document, error)
	// WritePostID persists the assigned remote identifier into the document's
	// header. It only ever adds an identifier that was previously absent;
	// implementations must leave documents with an existing identifier
	// untouched and must preserve body bytes and unrelated header fields.
	WritePostID(ctx context.Context, path, id string) error
}

// MarkdownParser defines how raw Markdown bytes are converted into HTML for
// local previews. Implementations should be stateless so callers can reuse a
// single instance without additional locking.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown parsing behaviour, keeping option names
// readable for configuration unmarshalling and CLI flags.
type ParseOptions struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}
