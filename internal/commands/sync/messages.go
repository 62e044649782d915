package synccmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const syncDocumentsMessageType = "blogsync.sync_documents"

// SyncDocumentsCommand triggers a publish run over the configured document
// folder. Directory is informational (the folder the run operates on) and is
// required so log output always names the content source.
type SyncDocumentsCommand struct {
	// Directory names the filesystem path the documents are read from.
	Directory string `json:"directory"`
	// DryRun parses and resolves documents without uploading or publishing.
	DryRun bool `json:"dry_run,omitempty"`
}

// Type implements command.Message.
func (SyncDocumentsCommand) Type() string { return syncDocumentsMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd SyncDocumentsCommand) Validate() error {
	err := validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("blogsync.sync_documents.directory_required", "directory is required")
			}
			return nil
		})),
	)
	if err != nil {
		return err
	}
	return nil
}
