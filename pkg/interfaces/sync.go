package interfaces

import "context"

// Tag is a name/slug pair attached to a blog post on the remote platform.
type Tag struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// PostInput carries the normalized fields for a create-or-update publication.
// A non-empty PostID selects the update path; optional fields are omitted from
// the outgoing payload when empty.
type PostInput struct {
	Title           string
	ContentMarkdown string
	CanonicalURL    string
	CoverImage      string
	Tags            []Tag
	PostID          string
}

// PublishResult reports the identifier and canonical URL the platform assigned
// to the post, and whether an existing post was updated rather than created.
type PublishResult struct {
	ID      string
	URL     string
	Updated bool
}

// Publisher sends a single post to the remote blogging platform.
type Publisher interface {
	Publish(ctx context.Context, input PostInput) (*PublishResult, error)
}

// ImageStore abstracts the cloud storage destination used to rehost locally
// referenced images. EnsureFolder is idempotent by exact name; Upload creates
// a new remote file on every call (no content dedup) and returns a durable
// public view URL.
type ImageStore interface {
	EnsureFolder(ctx context.Context, name string) (string, error)
	Upload(ctx context.Context, localPath, folderID string) (string, error)
}

// SyncOptions controls a single sync run.
type SyncOptions struct {
	// DryRun parses documents and resolves local images but performs no
	// uploads, no publications, and no write-backs.
	DryRun bool
}

// SyncResult aggregates per-document outcomes of one run. Failures are
// document-scoped; Errors carries one entry per failed document.
type SyncResult struct {
	Published int
	Updated   int
	Skipped   int
	Failed    int
	Errors    []error
}

// SyncService drives the end-to-end publish workflow over a document folder.
type SyncService interface {
	Run(ctx context.Context, opts SyncOptions) (*SyncResult, error)
}
