package blogsync

import "github.com/goliatone/go-blogsync/internal/runtimeconfig"

var (
	ErrDocumentsDirRequired       = runtimeconfig.ErrDocumentsDirRequired
	ErrTokenRequired              = runtimeconfig.ErrTokenRequired
	ErrPublicationIDRequired      = runtimeconfig.ErrPublicationIDRequired
	ErrStorageCredentialsRequired = runtimeconfig.ErrStorageCredentialsRequired
	ErrStorageBaseURLRequired     = runtimeconfig.ErrStorageBaseURLRequired
	ErrRemoteFolderRequired       = runtimeconfig.ErrRemoteFolderRequired
	ErrLoggingProviderUnknown     = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid        = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid       = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config         = runtimeconfig.Config
	HashnodeConfig = runtimeconfig.HashnodeConfig
	StorageConfig  = runtimeconfig.StorageConfig
	Features       = runtimeconfig.Features
	ParserConfig   = runtimeconfig.ParserConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
)

// DefaultConfig returns the default runtime configuration.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
