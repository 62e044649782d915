// Package bootstrap assembles a blogsync module for CLI entry points, loading
// configuration from a config file, a .env file, and environment variables.
package bootstrap

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-blogsync"
	"github.com/goliatone/go-blogsync/internal/logging"
	"github.com/goliatone/go-blogsync/pkg/interfaces"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Options captures CLI overrides applied on top of file and environment
// configuration. Empty fields leave the loaded value untouched.
type Options struct {
	ConfigFile     string
	DocumentsDir   string
	ImagesDir      string
	RemoteFolder   string
	Rehost         *bool
	LogLevel       string
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the blogsync module plus the collaborators CLI commands use.
type Module struct {
	Module    *blogsync.Module
	Sync      interfaces.SyncService
	Documents interfaces.DocumentStore
	Parser    interfaces.MarkdownParser
	Logger    interfaces.Logger
	Config    blogsync.Config
}

// BuildModule loads configuration and constructs a ready blogsync module.
func BuildModule(opts Options) (*Module, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	moduleOpts := []blogsync.Option{}
	if opts.LoggerProvider != nil {
		moduleOpts = append(moduleOpts, blogsync.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := blogsync.New(cfg, moduleOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise blogsync module: %w", err)
	}

	return &Module{
		Module:    module,
		Sync:      module.Sync(),
		Documents: module.Documents(),
		Parser:    module.Parser(),
		Logger:    logging.SyncLogger(module.LoggerProvider()),
		Config:    cfg,
	}, nil
}

// loadConfig layers defaults, config.yaml, .env, environment variables, and
// CLI overrides, in that order of precedence (later wins).
func loadConfig(opts Options) (blogsync.Config, error) {
	cfg := blogsync.DefaultConfig()

	// Errors are ignored: a missing .env file is the common case.
	godotenv.Load()

	v := viper.New()
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("BLOGSYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
	}

	setString(v, "documents_dir", &cfg.DocumentsDir)
	setString(v, "images_dir", &cfg.ImagesDir)
	setString(v, "remote_folder", &cfg.RemoteFolder)
	setString(v, "hashnode.endpoint", &cfg.Hashnode.Endpoint)
	setString(v, "hashnode.token", &cfg.Hashnode.Token)
	setString(v, "hashnode.publication_id", &cfg.Hashnode.PublicationID)
	setString(v, "storage.base_url", &cfg.Storage.BaseURL)
	setString(v, "storage.credentials_file", &cfg.Storage.CredentialsFile)
	setString(v, "logging.provider", &cfg.Logging.Provider)
	setString(v, "logging.level", &cfg.Logging.Level)
	setString(v, "logging.format", &cfg.Logging.Format)
	if v.IsSet("features.rehost") {
		cfg.Features.Rehost = v.GetBool("features.rehost")
	}
	if v.IsSet("features.sync") {
		cfg.Features.Sync = v.GetBool("features.sync")
	}

	if trimmed := strings.TrimSpace(opts.DocumentsDir); trimmed != "" {
		cfg.DocumentsDir = trimmed
	}
	if trimmed := strings.TrimSpace(opts.ImagesDir); trimmed != "" {
		cfg.ImagesDir = trimmed
	}
	if trimmed := strings.TrimSpace(opts.RemoteFolder); trimmed != "" {
		cfg.RemoteFolder = trimmed
	}
	if opts.Rehost != nil {
		cfg.Features.Rehost = *opts.Rehost
	}
	if trimmed := strings.TrimSpace(opts.LogLevel); trimmed != "" {
		cfg.Logging.Level = trimmed
	}

	return cfg, nil
}

func setString(v *viper.Viper, key string, target *string) {
	if v.IsSet(key) {
		if value := strings.TrimSpace(v.GetString(key)); value != "" {
			*target = value
		}
	}
}
