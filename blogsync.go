// Package blogsync is a one-way publisher for locally authored Markdown blog
// drafts. It reads documents from a folder, rehosts locally referenced images
// to cloud storage, publishes or updates the matching post on Hashnode, and
// persists newly assigned post identifiers back into the source files.
package blogsync

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-blogsync/internal/document"
	"github.com/goliatone/go-blogsync/internal/hashnode"
	"github.com/goliatone/go-blogsync/internal/logging"
	"github.com/goliatone/go-blogsync/internal/logging/console"
	"github.com/goliatone/go-blogsync/internal/logging/gologger"
	"github.com/goliatone/go-blogsync/internal/markdown"
	"github.com/goliatone/go-blogsync/internal/rehost"
	syncer "github.com/goliatone/go-blogsync/internal/sync"
	"github.com/goliatone/go-blogsync/pkg/interfaces"
)

// Module is the top level blogsync runtime façade. It wires the document
// store, the image rehosting client, the publisher, and the sync service from
// a single configuration value.
type Module struct {
	cfg        Config
	provider   interfaces.LoggerProvider
	documents  interfaces.DocumentStore
	imageStore interfaces.ImageStore
	publisher  interfaces.Publisher
	syncer     interfaces.SyncService
	parser     interfaces.MarkdownParser
}

// Option overrides one of the module's collaborators, mainly for tests and
// host applications that bring their own implementations.
type Option func(*Module)

// WithLoggerProvider overrides the logging provider built from configuration.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		if provider != nil {
			m.provider = provider
		}
	}
}

// WithDocumentStore overrides the filesystem-backed document store.
func WithDocumentStore(store interfaces.DocumentStore) Option {
	return func(m *Module) {
		if store != nil {
			m.documents = store
		}
	}
}

// WithImageStore overrides the cloud storage client used for image rehosting.
func WithImageStore(store interfaces.ImageStore) Option {
	return func(m *Module) {
		if store != nil {
			m.imageStore = store
		}
	}
}

// WithPublisher overrides the blogging platform client.
func WithPublisher(publisher interfaces.Publisher) Option {
	return func(m *Module) {
		if publisher != nil {
			m.publisher = publisher
		}
	}
}

// New validates the configuration and wires the module.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{cfg: cfg}
	for _, opt := range opts {
		opt(m)
	}

	if m.provider == nil {
		provider, err := buildLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		m.provider = provider
	}

	if m.documents == nil {
		store, err := document.NewStore(cfg.DocumentsDir,
			document.WithLogger(logging.DocumentLogger(m.provider)))
		if err != nil {
			return nil, err
		}
		m.documents = store
	}

	if m.publisher == nil {
		client, err := hashnode.NewClient(hashnode.Config{
			Endpoint:      cfg.Hashnode.Endpoint,
			Token:         cfg.Hashnode.Token,
			PublicationID: cfg.Hashnode.PublicationID,
			Logger:        logging.PublisherLogger(m.provider),
		})
		if err != nil {
			return nil, err
		}
		m.publisher = client
	}

	if m.imageStore == nil && cfg.Features.Rehost {
		client, err := rehost.NewClient(rehost.Config{
			BaseURL:         cfg.Storage.BaseURL,
			CredentialsFile: cfg.Storage.CredentialsFile,
			Logger:          logging.RehostLogger(m.provider),
		})
		if err != nil {
			return nil, err
		}
		m.imageStore = client
	}

	syncOpts := []syncer.Option{
		syncer.WithLogger(logging.SyncLogger(m.provider)),
	}
	if m.imageStore != nil {
		syncOpts = append(syncOpts, syncer.WithImageStore(m.imageStore))
	}

	service, err := syncer.New(syncer.Config{
		ImagesDir:    cfg.ImagesDir,
		RemoteFolder: cfg.RemoteFolder,
	}, m.documents, m.publisher, syncOpts...)
	if err != nil {
		return nil, err
	}
	m.syncer = service

	m.parser = markdown.NewGoldmarkParser(interfaces.ParseOptions{
		Extensions: cfg.Parser.Extensions,
		Sanitize:   cfg.Parser.Sanitize,
		HardWraps:  cfg.Parser.HardWraps,
		SafeMode:   cfg.Parser.SafeMode,
	})

	return m, nil
}

// Config returns the configuration the module was built with.
func (m *Module) Config() Config {
	return m.cfg
}

// LoggerProvider exposes the logging provider for host integrations.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	return m.provider
}

// Documents returns the configured document store.
func (m *Module) Documents() interfaces.DocumentStore {
	return m.documents
}

// Images returns the configured image store; nil when rehosting is disabled.
func (m *Module) Images() interfaces.ImageStore {
	return m.imageStore
}

// Publisher returns the configured platform client.
func (m *Module) Publisher() interfaces.Publisher {
	return m.publisher
}

// Sync returns the configured sync service.
func (m *Module) Sync() interfaces.SyncService {
	return m.syncer
}

// Parser returns the Markdown preview renderer.
func (m *Module) Parser() interfaces.MarkdownParser {
	return m.parser
}

func buildLoggerProvider(cfg LoggingConfig) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", "console":
		level := consoleLevel(cfg.Level)
		return console.NewProvider(console.Options{MinLevel: &level}), nil
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
		if err != nil {
			return nil, err
		}
		return provider, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, cfg.Provider)
	}
}

func consoleLevel(level string) console.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return console.LevelTrace
	case "debug":
		return console.LevelDebug
	case "warn", "warning":
		return console.LevelWarn
	case "error":
		return console.LevelError
	case "fatal":
		return console.LevelFatal
	default:
		return console.LevelInfo
	}
}
