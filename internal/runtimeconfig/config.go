// Package runtimeconfig holds the process-level configuration surface for a
// sync run: folders, platform credentials, storage bindings, and logging.
package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
)

var ErrDocumentsDirRequired = errors.New("blogsync config: documents directory is required")
var ErrTokenRequired = errors.New("blogsync config: hashnode access token is required")
var ErrPublicationIDRequired = errors.New("blogsync config: hashnode publication ID is required")
var ErrStorageCredentialsRequired = errors.New("blogsync config: storage credentials file is required when rehosting is enabled")
var ErrStorageBaseURLRequired = errors.New("blogsync config: storage base URL is required when rehosting is enabled")
var ErrRemoteFolderRequired = errors.New("blogsync config: remote image folder name is required when rehosting is enabled")
var ErrLoggingProviderUnknown = errors.New("blogsync config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("blogsync config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("blogsync config: logging format is invalid")

// Config aggregates folder bindings, platform credentials, and feature flags.
// Fields use simple types so host applications can populate them from any
// configuration source.
type Config struct {
	// DocumentsDir is the folder Markdown drafts are read from.
	DocumentsDir string
	// ImagesDir is the root local image embeds resolve against.
	ImagesDir string
	// RemoteFolder names the cloud storage folder rehosted images land in.
	RemoteFolder string
	Hashnode     HashnodeConfig
	Storage      StorageConfig
	Features     Features
	Parser       ParserConfig
	Logging      LoggingConfig
}

// HashnodeConfig carries the blogging platform credentials.
type HashnodeConfig struct {
	Endpoint      string
	Token         string
	PublicationID string
}

// StorageConfig carries the cloud storage bindings used for image rehosting.
type StorageConfig struct {
	BaseURL         string
	CredentialsFile string
}

// Features toggles module functionality.
type Features struct {
	// Rehost enables image rehosting. When false, local embeds are left
	// untouched in published content.
	Rehost bool
	// Sync gates the sync command layer.
	Sync bool
}

// ParserConfig mirrors interfaces.ParseOptions for runtime configuration of
// the preview renderer.
type ParserConfig struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults for a sync run.
func DefaultConfig() Config {
	return Config{
		DocumentsDir: "content",
		ImagesDir:    "content/images",
		RemoteFolder: "hashnode-images",
		Hashnode: HashnodeConfig{
			Endpoint: "https://gql.hashnode.com",
		},
		Features: Features{
			Sync: true,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.DocumentsDir) == "" {
		return ErrDocumentsDirRequired
	}
	if strings.TrimSpace(cfg.Hashnode.Token) == "" {
		return ErrTokenRequired
	}
	if strings.TrimSpace(cfg.Hashnode.PublicationID) == "" {
		return ErrPublicationIDRequired
	}
	if cfg.Features.Rehost {
		if strings.TrimSpace(cfg.Storage.BaseURL) == "" {
			return ErrStorageBaseURLRequired
		}
		if strings.TrimSpace(cfg.Storage.CredentialsFile) == "" {
			return ErrStorageCredentialsRequired
		}
		if strings.TrimSpace(cfg.RemoteFolder) == "" {
			return ErrRemoteFolderRequired
		}
	}
	provider := normalizeProvider(cfg.Logging.Provider)
	if provider != "" && !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == "gologger" {
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
