package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to errors leaving the command boundary. Leaf packages
// keep their own sentinel errors; these codes identify which dispatch stage
// failed once an error crosses into CLI output or telemetry.
const (
	codeMessageInvalid  = "BLOGSYNC_MESSAGE_INVALID"
	codeRunCanceled     = "BLOGSYNC_RUN_CANCELED"
	codeRunTimeout      = "BLOGSYNC_RUN_TIMEOUT"
	codeContextFailure  = "BLOGSYNC_CONTEXT_FAILURE"
	codeExecutionFailed = "BLOGSYNC_EXECUTION_FAILED"
)

// wrapValidationError categorises a message validation failure. Errors that
// already carry a category pass through untouched.
func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "command message failed validation").
		WithTextCode(codeMessageInvalid)
}

// wrapContextError distinguishes cancellation from deadline expiry so callers
// can tell an operator abort apart from a slow run.
func wrapContextError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	switch {
	case errors.Is(err, context.Canceled):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command run cancelled").
			WithTextCode(codeRunCanceled)
	case errors.Is(err, context.DeadlineExceeded):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command run exceeded its deadline").
			WithTextCode(codeRunTimeout)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command context failed").
			WithTextCode(codeContextFailure)
	}
}

func wrapExecuteError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution failed").
		WithTextCode(codeExecutionFailed)
}
