// Package sync drives the end-to-end publish workflow: read each local
// document, rehost its images, publish or update the remote post, and persist
// newly assigned post identifiers back into the source file.
package sync

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-blogsync/internal/hashnode"
	"github.com/goliatone/go-blogsync/internal/images"
	"github.com/goliatone/go-blogsync/internal/logging"
	"github.com/goliatone/go-blogsync/pkg/interfaces"
	"github.com/google/uuid"
)

// ErrDocumentStoreRequired indicates the syncer was built without a store.
var ErrDocumentStoreRequired = errors.New("sync: document store is required")

// ErrPublisherRequired indicates the syncer was built without a publisher.
var ErrPublisherRequired = errors.New("sync: publisher is required")

// Config carries the run-level settings for a Syncer.
type Config struct {
	// ImagesDir is the root local image embeds resolve against.
	ImagesDir string
	// RemoteFolder is the cloud storage folder rehosted images land in. It is
	// resolved to a folder ID once per run and reused for every upload.
	RemoteFolder string
}

// Syncer implements interfaces.SyncService over a document store, an optional
// image store, and a publisher. Documents are processed sequentially; a
// failure in one document is logged and counted but never aborts the batch.
type Syncer struct {
	cfg       Config
	documents interfaces.DocumentStore
	images    interfaces.ImageStore
	publisher interfaces.Publisher
	logger    interfaces.Logger
}

var _ interfaces.SyncService = (*Syncer)(nil)

// Option customizes a Syncer.
type Option func(*Syncer)

// WithImageStore enables image rehosting. Without it, local embeds are left
// untouched in the outgoing content.
func WithImageStore(store interfaces.ImageStore) Option {
	return func(s *Syncer) {
		s.images = store
	}
}

// WithLogger attaches a logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Syncer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New builds a Syncer.
func New(cfg Config, documents interfaces.DocumentStore, publisher interfaces.Publisher, opts ...Option) (*Syncer, error) {
	if documents == nil {
		return nil, ErrDocumentStoreRequired
	}
	if publisher == nil {
		return nil, ErrPublisherRequired
	}

	s := &Syncer{
		cfg:       cfg,
		documents: documents,
		publisher: publisher,
		logger:    logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Run processes every document in the store. Per-document failures are
// recorded in the result and the batch continues; only a failure to list the
// folder fails the run itself. A run started is driven to the end of the
// document list even if the context is cancelled mid-batch.
func (s *Syncer) Run(ctx context.Context, opts interfaces.SyncOptions) (*interfaces.SyncResult, error) {
	runID := uuid.New().String()
	logger := logging.WithFields(s.logger, map[string]any{"run_id": runID})

	paths, err := s.documents.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("sync: list documents: %w", err)
	}

	logger.Info("sync run started", "documents", len(paths), "dry_run", opts.DryRun)

	result := &interfaces.SyncResult{}
	var folderID string

	for _, path := range paths {
		outcome, err := s.syncDocument(ctx, logger, path, opts, &folderID)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Errorf("%s: %w", path, err))
			logger.Error("document sync failed", "path", path, "error", err)
			continue
		}
		switch outcome {
		case outcomePublished:
			result.Published++
		case outcomeUpdated:
			result.Updated++
		case outcomeSkipped:
			result.Skipped++
		}
	}

	logger.Info("sync run finished",
		"published", result.Published,
		"updated", result.Updated,
		"skipped", result.Skipped,
		"failed", result.Failed,
	)
	return result, nil
}

type outcome int

const (
	outcomePublished outcome = iota
	outcomeUpdated
	outcomeSkipped
)

func (s *Syncer) syncDocument(ctx context.Context, logger interfaces.Logger, path string, opts interfaces.SyncOptions, folderID *string) (outcome, error) {
	doc, err := s.documents.Read(ctx, path)
	if err != nil {
		return 0, err
	}

	action := "publish"
	if doc.Meta.HasPostID() {
		action = "update"
	}
	docLogger := logging.WithDocumentContext(logger, path, action)

	content := strings.TrimSpace(string(doc.Body))

	localPaths := images.ExtractLocalImagePaths(content, s.cfg.ImagesDir)
	docLogger.Debug("document parsed",
		"title", doc.Meta.Title,
		"images", len(localPaths),
	)

	if opts.DryRun {
		docLogger.Info("dry run: would publish",
			"title", doc.Meta.Title,
			"images", len(localPaths),
		)
		return outcomeSkipped, nil
	}

	if len(localPaths) > 0 {
		if s.images == nil {
			docLogger.Warn("no image store configured, local embeds left as-is",
				"images", len(localPaths))
		} else {
			content, err = s.rehostImages(ctx, docLogger, content, localPaths, folderID)
			if err != nil {
				return 0, err
			}
		}
	}

	published, err := s.publisher.Publish(ctx, interfaces.PostInput{
		Title:           doc.Meta.Title,
		ContentMarkdown: content,
		CanonicalURL:    doc.Meta.CanonicalURL,
		CoverImage:      doc.Meta.CoverImage,
		Tags:            hashnode.BuildTags(doc.Meta.Tags),
		PostID:          doc.Meta.PostID,
	})
	if err != nil {
		return 0, err
	}

	if !doc.Meta.HasPostID() {
		if err := s.documents.WritePostID(ctx, path, published.ID); err != nil {
			return 0, fmt.Errorf("persist post id: %w", err)
		}
	}

	if published.Updated {
		return outcomeUpdated, nil
	}
	return outcomePublished, nil
}

// rehostImages uploads every extracted image in order and rewrites the body to
// reference the returned public URLs. The remote folder is resolved on first
// use and cached for the rest of the run.
func (s *Syncer) rehostImages(ctx context.Context, logger interfaces.Logger, content string, localPaths []string, folderID *string) (string, error) {
	if *folderID == "" {
		id, err := s.images.EnsureFolder(ctx, s.cfg.RemoteFolder)
		if err != nil {
			return "", err
		}
		*folderID = id
	}

	urls := make([]string, 0, len(localPaths))
	for _, localPath := range localPaths {
		url, err := s.images.Upload(ctx, localPath, *folderID)
		if err != nil {
			return "", err
		}
		urls = append(urls, url)
	}
	logger.Debug("images rehosted", "count", len(urls))

	return images.RewriteLocalImageLinks(content, urls)
}
