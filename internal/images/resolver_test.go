package images

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtractLocalImagePaths(t *testing.T) {
	body := strings.Join([]string{
		"# Title",
		"",
		"![[diagram.png]]",
		"some text with an inline ![[ignored.png]] embed",
		"![[photos/cover.jpg]]",
		"![[unterminated.png",
		"",
	}, "\n")

	got := ExtractLocalImagePaths(body, "/assets")
	want := []string{
		filepath.Join("/assets", "diagram.png"),
		filepath.Join("/assets", "photos/cover.jpg"),
	}

	if len(got) != len(want) {
		t.Fatalf("expected %d paths, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("path %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestExtractLocalImagePathsNoEmbeds(t *testing.T) {
	if got := ExtractLocalImagePaths("plain text\nno images here\n", "/assets"); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestExtractLocalImagePathsCarriageReturn(t *testing.T) {
	got := ExtractLocalImagePaths("![[win.png]]\r\nnext line\r\n", "/assets")
	if len(got) != 1 {
		t.Fatalf("expected 1 path, got %v", got)
	}
	if got[0] != filepath.Join("/assets", "win.png") {
		t.Fatalf("unexpected path %q", got[0])
	}
}

func TestExtractLocalImagePathsIdempotent(t *testing.T) {
	body := "![[a.png]]\ntext\n![[b.png]]\n"
	first := ExtractLocalImagePaths(body, "/img")
	second := ExtractLocalImagePaths(body, "/img")
	if len(first) != len(second) {
		t.Fatalf("extraction not stable: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("extraction not stable at %d: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestRewriteLocalImageLinks(t *testing.T) {
	body := "intro\n![[diagram.png]]\nmiddle\n![[cover.jpg]]\n"
	urls := []string{
		"https://cdn.example.com/d.png",
		"https://cdn.example.com/c.jpg",
	}

	out, err := RewriteLocalImageLinks(body, urls)
	if err != nil {
		t.Fatalf("rewrite failed: %v", err)
	}
	if strings.Contains(out, "![[") {
		t.Fatalf("expected all embeds rewritten, got %q", out)
	}
	if !strings.Contains(out, "![Alt Text](https://cdn.example.com/d.png)") {
		t.Fatalf("missing first link in %q", out)
	}
	if !strings.Contains(out, "![Alt Text](https://cdn.example.com/c.jpg)") {
		t.Fatalf("missing second link in %q", out)
	}
}

func TestRewriteLocalImageLinksTooFewURLs(t *testing.T) {
	body := "![[a.png]]\n![[b.png]]\n"
	_, err := RewriteLocalImageLinks(body, []string{"https://cdn.example.com/a.png"})
	if !errors.Is(err, ErrURLCountMismatch) {
		t.Fatalf("expected ErrURLCountMismatch, got %v", err)
	}
}

func TestRewriteLocalImageLinksNoEmbeds(t *testing.T) {
	body := "nothing to do here\n"
	out, err := RewriteLocalImageLinks(body, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != body {
		t.Fatalf("body changed: %q", out)
	}
}
