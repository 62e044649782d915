package blogsync

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-blogsync/pkg/interfaces"
)

type recordingPublisher struct {
	inputs []interfaces.PostInput
}

func (p *recordingPublisher) Publish(ctx context.Context, input interfaces.PostInput) (*interfaces.PublishResult, error) {
	p.inputs = append(p.inputs, input)
	return &interfaces.PublishResult{
		ID:      "p1",
		URL:     "https://blog.example.com/p1",
		Updated: input.PostID != "",
	}, nil
}

func testConfig(dir string) Config {
	cfg := DefaultConfig()
	cfg.DocumentsDir = dir
	cfg.ImagesDir = filepath.Join(dir, "images")
	cfg.Hashnode.Token = "token"
	cfg.Hashnode.PublicationID = "pub-1"
	return cfg
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	_, err := New(cfg)
	if !errors.Is(err, ErrTokenRequired) {
		t.Fatalf("expected ErrTokenRequired, got %v", err)
	}
}

func TestNewWiresCollaborators(t *testing.T) {
	module, err := New(testConfig(t.TempDir()), WithPublisher(&recordingPublisher{}))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if module.Documents() == nil || module.Sync() == nil || module.Parser() == nil {
		t.Fatal("expected collaborators wired")
	}
	if module.Images() != nil {
		t.Fatal("image store should be nil when rehosting is disabled")
	}
}

func TestEndToEndSyncWritesBackPostID(t *testing.T) {
	dir := t.TempDir()
	source := strings.Join([]string{
		"---",
		"title: T",
		"tags:",
		"    - x",
		"    - y",
		"---",
		"",
		"Hello world.",
		"",
	}, "\n")
	path := filepath.Join(dir, "draft.md")
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("write draft: %v", err)
	}

	publisher := &recordingPublisher{}
	module, err := New(testConfig(dir), WithPublisher(publisher))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	result, err := module.Sync().Run(context.Background(), interfaces.SyncOptions{})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Published != 1 || result.Failed != 0 {
		t.Fatalf("unexpected result %+v", result)
	}

	if len(publisher.inputs) != 1 {
		t.Fatalf("expected one publication, got %d", len(publisher.inputs))
	}
	input := publisher.inputs[0]
	if input.Title != "T" {
		t.Fatalf("unexpected title %q", input.Title)
	}
	if len(input.Tags) != 2 || input.Tags[0].Name != "x" || input.Tags[0].Slug != "x" {
		t.Fatalf("unexpected tags %v", input.Tags)
	}
	if input.CanonicalURL != "" || input.CoverImage != "" {
		t.Fatalf("empty optional fields must stay empty: %+v", input)
	}

	updated, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read draft: %v", err)
	}
	if !strings.Contains(string(updated), "hashnode_post_id: p1") {
		t.Fatalf("expected post id persisted, got:\n%s", updated)
	}
	if !strings.HasSuffix(string(updated), "Hello world.\n") {
		t.Fatalf("body must stay byte-identical, got:\n%s", updated)
	}

	// Second run takes the update path and leaves the file untouched.
	before := string(updated)
	result, err = module.Sync().Run(context.Background(), interfaces.SyncOptions{})
	if err != nil {
		t.Fatalf("second Run failed: %v", err)
	}
	if result.Updated != 1 {
		t.Fatalf("expected update, got %+v", result)
	}
	if publisher.inputs[1].PostID != "p1" {
		t.Fatalf("expected reuse of assigned id, got %+v", publisher.inputs[1])
	}

	after, _ := os.ReadFile(path)
	if string(after) != before {
		t.Fatal("file must not change once the post id is set")
	}
}
