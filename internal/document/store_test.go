package document

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const sampleDoc = `---
title: Sample
tags:
    - a
summary: keep me
---

Sample body.
`

func TestNewStoreRequiresFolder(t *testing.T) {
	if _, err := NewStore(" "); !errors.Is(err, ErrFolderRequired) {
		t.Fatalf("expected ErrFolderRequired, got %v", err)
	}
	if _, err := NewStore(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected error for missing folder")
	}
}

func TestListReturnsOnlyMarkdownFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.md", sampleDoc)
	writeFile(t, dir, "two.md", sampleDoc)
	writeFile(t, dir, "notes.txt", "not a document")
	if err := os.Mkdir(filepath.Join(dir, "nested.md"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	paths, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 documents, got %v", paths)
	}
	for _, path := range paths {
		if !strings.HasSuffix(path, ".md") {
			t.Fatalf("unexpected path %q", path)
		}
	}
}

func TestReadParsesDocument(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "doc.md", sampleDoc)

	store, _ := NewStore(dir)
	doc, err := store.Read(context.Background(), path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if doc.Meta.Title != "Sample" {
		t.Fatalf("title mismatch, got %q", doc.Meta.Title)
	}
	if !strings.Contains(string(doc.Body), "Sample body.") {
		t.Fatalf("body mismatch: %q", string(doc.Body))
	}
	if doc.LastModified.IsZero() {
		t.Fatal("expected LastModified set")
	}
}

func TestReadRejectsInvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.md")
	if err := os.WriteFile(path, []byte{0xff, 0xfe, 0xfd}, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	store, _ := NewStore(dir)
	if _, err := store.Read(context.Background(), path); !errors.Is(err, ErrMalformedDocument) {
		t.Fatalf("expected ErrMalformedDocument, got %v", err)
	}
}

func TestWritePostIDPersistsAndPreservesContent(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "doc.md", sampleDoc)

	store, _ := NewStore(dir)
	before, _ := store.Read(context.Background(), path)

	if err := store.WritePostID(context.Background(), path, "p1"); err != nil {
		t.Fatalf("WritePostID: %v", err)
	}

	after, err := store.Read(context.Background(), path)
	if err != nil {
		t.Fatalf("re-read: %v", err)
	}
	if after.Meta.PostID != "p1" {
		t.Fatalf("expected post id persisted, got %q", after.Meta.PostID)
	}
	if after.Meta.Raw["summary"] != "keep me" {
		t.Fatalf("unrelated header field lost: %#v", after.Meta.Raw)
	}
	if string(after.Body) != string(before.Body) {
		t.Fatalf("body changed:\nbefore %q\nafter  %q", before.Body, after.Body)
	}
}

func TestWritePostIDKeepsExplicitlyEmptyFields(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "doc.md", "---\ntitle: T\ncanonical_url: \"\"\ntags: []\n---\nbody\n")

	store, _ := NewStore(dir)
	if err := store.WritePostID(context.Background(), path, "p1"); err != nil {
		t.Fatalf("WritePostID: %v", err)
	}

	raw, _ := os.ReadFile(path)
	content := string(raw)
	if !strings.Contains(content, "canonical_url:") {
		t.Fatalf("canonical_url key dropped on write-back:\n%s", content)
	}
	if !strings.Contains(content, "tags: []") {
		t.Fatalf("empty tags list dropped on write-back:\n%s", content)
	}
	if !strings.Contains(content, "hashnode_post_id: p1") {
		t.Fatalf("post id missing after write-back:\n%s", content)
	}
}

func TestWritePostIDNeverOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "doc.md", "---\ntitle: T\nhashnode_post_id: original\n---\nbody\n")

	store, _ := NewStore(dir)
	raw, _ := os.ReadFile(path)

	if err := store.WritePostID(context.Background(), path, "replacement"); err != nil {
		t.Fatalf("WritePostID: %v", err)
	}

	unchanged, _ := os.ReadFile(path)
	if string(unchanged) != string(raw) {
		t.Fatal("file with existing id must stay byte-identical")
	}
}

func TestWritePostIDRequiresID(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "doc.md", sampleDoc)

	store, _ := NewStore(dir)
	if err := store.WritePostID(context.Background(), path, "  "); !errors.Is(err, ErrPostIDRequired) {
		t.Fatalf("expected ErrPostIDRequired, got %v", err)
	}
}
