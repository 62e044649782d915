package document

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-blogsync/internal/logging"
	"github.com/goliatone/go-blogsync/pkg/interfaces"
)

const markdownExt = ".md"

var (
	// ErrFolderRequired reports that no documents folder was configured.
	ErrFolderRequired = errors.New("document: documents folder is required")
	// ErrMalformedDocument indicates a file that could not be decoded as a
	// Markdown document with a metadata header.
	ErrMalformedDocument = errors.New("document: malformed document")
	// ErrPostIDRequired reports an attempted write-back with an empty identifier.
	ErrPostIDRequired = errors.New("document: post identifier is required")
)

// Store reads and writes Markdown documents inside a single folder. Discovery
// is non-recursive; nested folders are left to the author's own organisation.
type Store struct {
	dir    string
	logger interfaces.Logger
}

// StoreOption customises Store construction.
type StoreOption func(*Store)

// WithLogger injects the logger used for write-back diagnostics.
func WithLogger(logger interfaces.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore constructs a document store rooted at dir.
func NewStore(dir string, opts ...StoreOption) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, ErrFolderRequired
	}
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("document store: stat folder %s: %w", dir, err)
	}

	s := &Store{
		dir:    filepath.Clean(dir),
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Dir returns the folder the store operates on.
func (s *Store) Dir() string {
	return s.dir
}

// List returns the paths of Markdown files directly inside the configured
// folder, in directory order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("document store: list %s: %w", s.dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(entry.Name(), markdownExt) {
			continue
		}
		paths = append(paths, filepath.Join(s.dir, entry.Name()))
	}
	return paths, nil
}

// Read parses a single document. Missing header fields fall back to their
// defaults; a file that cannot be decoded fails with ErrMalformedDocument.
func (s *Store) Read(ctx context.Context, path string) (*interfaces.Document, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("document store: read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s is not valid UTF-8", ErrMalformedDocument, path)
	}

	meta, body, err := parseHeader(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedDocument, path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("document store: stat %s: %w", path, err)
	}

	return &interfaces.Document{
		FilePath:     path,
		Meta:         meta,
		Body:         body,
		LastModified: info.ModTime(),
	}, nil
}

// WritePostID adds the assigned remote identifier to the document's header.
// Documents that already carry an identifier are left untouched; the body and
// every unrelated header field round-trip unchanged.
func (s *Store) WritePostID(ctx context.Context, path, id string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return ErrPostIDRequired
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("document store: read %s: %w", path, err)
	}

	meta, body, err := parseHeader(data)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedDocument, path, err)
	}

	if meta.HasPostID() {
		s.logger.Debug("document.post_id.present", "path", path, "post_id", meta.PostID)
		return nil
	}

	raw := meta.Raw
	if raw == nil {
		raw = map[string]any{}
	}
	raw[postIDKey] = id

	header, err := renderHeader(raw)
	if err != nil {
		return fmt.Errorf("document store: %s: %w", path, err)
	}

	out := make([]byte, 0, len(header)+len(body))
	out = append(out, header...)
	out = append(out, body...)

	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("document store: write %s: %w", path, err)
	}

	s.logger.Debug("document.post_id.persisted", "path", path, "post_id", id)
	return nil
}
