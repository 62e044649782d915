package document

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-blogsync/pkg/interfaces"
)

const postIDKey = "hashnode_post_id"

// defaultTitle is assigned when a document header carries no title.
const defaultTitle = "Untitled"

// parseHeader extracts metadata and Markdown body content from the provided
// source bytes. It returns the structured metadata, the body without
// delimiters, and any error encountered. The full header is also decoded into
// Metadata.Raw so write-back preserves every key the author wrote, including
// keys holding empty values.
func parseHeader(source []byte) (interfaces.Metadata, []byte, error) {
	var env headerEnvelope

	body, err := frontmatter.Parse(bytes.NewReader(source), &env)
	if err != nil {
		return interfaces.Metadata{}, nil, fmt.Errorf("parse header: %w", err)
	}

	raw := map[string]any{}
	if _, err := frontmatter.Parse(bytes.NewReader(source), &raw); err != nil {
		return interfaces.Metadata{}, nil, fmt.Errorf("parse header: %w", err)
	}

	return envelopeToMetadata(env, raw), body, nil
}

// renderHeader serializes the raw header map back into a delimited frontmatter
// block. Key order follows the YAML encoder; field values round-trip.
func renderHeader(raw map[string]any) ([]byte, error) {
	encoded, err := yaml.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("render header: %w", err)
	}

	var buf bytes.Buffer
	buf.Grow(len(encoded) + 8)
	buf.WriteString("---\n")
	buf.Write(encoded)
	buf.WriteString("---\n")
	return buf.Bytes(), nil
}

type headerEnvelope struct {
	Title        string   `yaml:"title"`
	CanonicalURL string   `yaml:"canonical_url"`
	CoverImage   string   `yaml:"cover_image"`
	Tags         []string `yaml:"tags"`
	PostID       string   `yaml:"hashnode_post_id"`
}

func envelopeToMetadata(env headerEnvelope, raw map[string]any) interfaces.Metadata {
	title := env.Title
	if title == "" {
		title = defaultTitle
	}

	return interfaces.Metadata{
		Title:        title,
		CanonicalURL: env.CanonicalURL,
		CoverImage:   env.CoverImage,
		Tags:         append([]string(nil), env.Tags...),
		PostID:       env.PostID,
		Raw:          raw,
	}
}
