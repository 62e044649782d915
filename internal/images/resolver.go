// Package images locates local image embeds inside document bodies and
// rewrites them to public URLs once rehosting has completed.
package images

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

const (
	embedOpen  = "![["
	embedClose = "]]"

	// altText is the literal alt text substituted for rewritten embeds.
	altText = "Alt Text"
)

// ErrURLCountMismatch reports that fewer public URLs were supplied than local
// embeds found in the body. Rewriting must fail fast rather than silently
// attach images to the wrong embeds.
var ErrURLCountMismatch = errors.New("images: public URL count does not match embed count")

// ExtractLocalImagePaths scans body line by line and returns, in order of
// appearance, the absolute path of every local image embed joined against
// imagesRoot. A line is an embed if and only if it starts with the exact token
// "![[" and closes with "]]" on the same line; embeds elsewhere on a line, or
// using a different syntax, are silently ignored. The scan has no side
// effects, so repeated calls over the same body yield the same sequence.
func ExtractLocalImagePaths(body, imagesRoot string) []string {
	tokens := extractEmbedTokens(body)
	if len(tokens) == 0 {
		return nil
	}

	paths := make([]string, 0, len(tokens))
	for _, token := range tokens {
		paths = append(paths, filepath.Join(imagesRoot, token))
	}
	return paths
}

// RewriteLocalImageLinks re-extracts local embeds from body and replaces every
// occurrence of the i-th embed's filename token with a Markdown image link to
// publicURLs[i]. The URL list must be aligned by position with a fresh
// extraction over the same body; a shorter list fails with ErrURLCountMismatch.
func RewriteLocalImageLinks(body string, publicURLs []string) (string, error) {
	tokens := extractEmbedTokens(body)
	if len(publicURLs) < len(tokens) {
		return "", fmt.Errorf("%w: %d urls for %d embeds", ErrURLCountMismatch, len(publicURLs), len(tokens))
	}

	out := body
	for i, token := range tokens {
		needle := embedOpen + filepath.Base(token) + embedClose
		replacement := "![" + altText + "](" + publicURLs[i] + ")"
		out = strings.ReplaceAll(out, needle, replacement)
	}
	return out, nil
}

// extractEmbedTokens returns the raw path tokens of line-leading embeds.
func extractEmbedTokens(body string) []string {
	var tokens []string
	for _, raw := range strings.Split(body, "\n") {
		line := strings.TrimRight(raw, "\r")
		if !strings.HasPrefix(line, embedOpen) {
			continue
		}
		rest := line[len(embedOpen):]
		end := strings.Index(rest, embedClose)
		if end < 0 {
			continue
		}
		tokens = append(tokens, rest[:end])
	}
	return tokens
}
