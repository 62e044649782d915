package main

import (
	"context"
	"testing"

	"github.com/goliatone/go-blogsync"
	"github.com/goliatone/go-blogsync/cmd/blogsync/internal/bootstrap"
	"github.com/goliatone/go-blogsync/internal/logging"
	"github.com/goliatone/go-blogsync/pkg/interfaces"
)

type stubSyncService struct {
	runCalls int
	lastOpts interfaces.SyncOptions
}

func (s *stubSyncService) Run(_ context.Context, opts interfaces.SyncOptions) (*interfaces.SyncResult, error) {
	s.runCalls++
	s.lastOpts = opts
	return &interfaces.SyncResult{}, nil
}

func stubModule(svc *stubSyncService) *bootstrap.Module {
	cfg := blogsync.DefaultConfig()
	cfg.DocumentsDir = "docs"
	return &bootstrap.Module{
		Sync:   svc,
		Logger: logging.NoOp(),
		Config: cfg,
	}
}

func TestRunSyncUsesCommandHandler(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	svc := &stubSyncService{}
	moduleBuilder = func(bootstrap.Options) (*bootstrap.Module, error) {
		return stubModule(svc), nil
	}

	if err := runSync([]string{}); err != nil {
		t.Fatalf("runSync returned error: %v", err)
	}
	if svc.runCalls != 1 {
		t.Fatalf("expected one sync run, got %d", svc.runCalls)
	}
	if svc.lastOpts.DryRun {
		t.Fatal("expected a live run by default")
	}
}

func TestRunSyncForwardsDryRun(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	svc := &stubSyncService{}
	moduleBuilder = func(bootstrap.Options) (*bootstrap.Module, error) {
		return stubModule(svc), nil
	}

	if err := runSync([]string{"-dry-run"}); err != nil {
		t.Fatalf("runSync returned error: %v", err)
	}
	if !svc.lastOpts.DryRun {
		t.Fatal("expected dry run forwarded")
	}
}

func TestRunSyncForwardsFlagOverrides(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	var captured bootstrap.Options
	moduleBuilder = func(opts bootstrap.Options) (*bootstrap.Module, error) {
		captured = opts
		return stubModule(&stubSyncService{}), nil
	}

	err := runSync([]string{
		"-content-dir", "drafts",
		"-images-dir", "drafts/img",
		"-remote-folder", "blog-images",
		"-rehost",
	})
	if err != nil {
		t.Fatalf("runSync returned error: %v", err)
	}
	if captured.DocumentsDir != "drafts" || captured.ImagesDir != "drafts/img" {
		t.Fatalf("unexpected options %+v", captured)
	}
	if captured.RemoteFolder != "blog-images" {
		t.Fatalf("unexpected remote folder %q", captured.RemoteFolder)
	}
	if captured.Rehost == nil || !*captured.Rehost {
		t.Fatal("expected rehost override set")
	}
}
