package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"
)

func TestWrapContextErrorClassifiesWrappedCancellation(t *testing.T) {
	err := wrapContextError(fmt.Errorf("run aborted: %w", context.Canceled))
	if err == nil {
		t.Fatal("expected error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
	if !strings.Contains(err.Error(), "cancelled") {
		t.Fatalf("expected cancellation classification, got %v", err)
	}
}

func TestWrapContextErrorClassifiesDeadline(t *testing.T) {
	err := wrapContextError(context.DeadlineExceeded)
	if !strings.Contains(err.Error(), "deadline") {
		t.Fatalf("expected deadline classification, got %v", err)
	}
}

func TestWrapErrorsPassThroughAlreadyWrapped(t *testing.T) {
	wrapped := goerrors.Wrap(errors.New("boom"), goerrors.CategoryCommand, "already wrapped")
	if got := wrapExecuteError(wrapped); !errors.Is(got, wrapped) {
		t.Fatalf("expected pass-through, got %v", got)
	}
	if got := wrapValidationError(wrapped); !errors.Is(got, wrapped) {
		t.Fatalf("expected pass-through, got %v", got)
	}
}

func TestWrapErrorsNilPassthrough(t *testing.T) {
	if err := wrapValidationError(nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if err := wrapContextError(nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if err := wrapExecuteError(nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}
