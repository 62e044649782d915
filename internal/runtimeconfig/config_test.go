package runtimeconfig

import (
	"errors"
	"testing"
)

func validConfig() Config {
	cfg := DefaultConfig()
	cfg.Hashnode.Token = "token"
	cfg.Hashnode.PublicationID = "pub-1"
	return cfg
}

func TestValidateAcceptsDefaultsWithCredentials(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidateRequiresDocumentsDir(t *testing.T) {
	cfg := validConfig()
	cfg.DocumentsDir = "  "
	if err := cfg.Validate(); !errors.Is(err, ErrDocumentsDirRequired) {
		t.Fatalf("expected ErrDocumentsDirRequired, got %v", err)
	}
}

func TestValidateRequiresToken(t *testing.T) {
	cfg := validConfig()
	cfg.Hashnode.Token = ""
	if err := cfg.Validate(); !errors.Is(err, ErrTokenRequired) {
		t.Fatalf("expected ErrTokenRequired, got %v", err)
	}
}

func TestValidateRequiresPublicationID(t *testing.T) {
	cfg := validConfig()
	cfg.Hashnode.PublicationID = ""
	if err := cfg.Validate(); !errors.Is(err, ErrPublicationIDRequired) {
		t.Fatalf("expected ErrPublicationIDRequired, got %v", err)
	}
}

func TestValidateRehostRequiresStorageBindings(t *testing.T) {
	cfg := validConfig()
	cfg.Features.Rehost = true
	if err := cfg.Validate(); !errors.Is(err, ErrStorageBaseURLRequired) {
		t.Fatalf("expected ErrStorageBaseURLRequired, got %v", err)
	}

	cfg.Storage.BaseURL = "https://storage.example.com/api"
	if err := cfg.Validate(); !errors.Is(err, ErrStorageCredentialsRequired) {
		t.Fatalf("expected ErrStorageCredentialsRequired, got %v", err)
	}

	cfg.Storage.CredentialsFile = "credentials.json"
	cfg.RemoteFolder = ""
	if err := cfg.Validate(); !errors.Is(err, ErrRemoteFolderRequired) {
		t.Fatalf("expected ErrRemoteFolderRequired, got %v", err)
	}

	cfg.RemoteFolder = "hashnode-images"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid rehost config, got %v", err)
	}
}

func TestValidateRejectsUnknownProvider(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Provider = "syslog"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}

func TestValidateRejectsInvalidLevel(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "loud"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}
}

func TestValidateFormatOnlyCheckedForGologger(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Provider = "console"
	cfg.Logging.Format = "weird"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("console provider should ignore format, got %v", err)
	}

	cfg.Logging.Provider = "gologger"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}
