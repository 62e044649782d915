package synccmd

import (
	"context"
	"errors"

	"github.com/goliatone/go-blogsync/internal/commands"
	"github.com/goliatone/go-blogsync/internal/logging"
	"github.com/goliatone/go-blogsync/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

const syncOperation = "blogsync.sync_documents"

// ErrSyncFeatureDisabled is returned when the sync feature flag is disabled at runtime.
var ErrSyncFeatureDisabled = errors.New("sync command: feature disabled")

var _ command.Commander[SyncDocumentsCommand] = (*SyncDocumentsHandler)(nil)

// SyncDocumentsHandler orchestrates publish runs via the shared command handler foundation.
type SyncDocumentsHandler struct {
	inner *commands.Handler[SyncDocumentsCommand]
}

// NewSyncDocumentsHandler creates a handler bound to the supplied sync service.
func NewSyncDocumentsHandler(service interfaces.SyncService, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[SyncDocumentsCommand]) *SyncDocumentsHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg SyncDocumentsCommand) error {
		if !gates.syncEnabled() {
			return ErrSyncFeatureDisabled
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		result, err := service.Run(ctx, interfaces.SyncOptions{DryRun: msg.DryRun})
		if err != nil {
			return err
		}
		if result != nil {
			logging.WithFields(baseLogger, map[string]any{
				"published_count": result.Published,
				"updated_count":   result.Updated,
				"skipped_count":   result.Skipped,
				"failed_count":    result.Failed,
				"dry_run":         msg.DryRun,
			}).Info("blogsync.command.sync_documents.completed")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[SyncDocumentsCommand]{
		commands.WithLogger[SyncDocumentsCommand](baseLogger),
		commands.WithOperation[SyncDocumentsCommand](syncOperation),
		commands.WithMessageFields(func(msg SyncDocumentsCommand) map[string]any {
			fields := map[string]any{
				"directory": msg.Directory,
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[SyncDocumentsCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SyncDocumentsHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[SyncDocumentsCommand].
func (h *SyncDocumentsHandler) Execute(ctx context.Context, msg SyncDocumentsCommand) error {
	return h.inner.Execute(ctx, msg)
}
