// Package hashnode publishes posts to the Hashnode GraphQL API.
package hashnode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goliatone/go-blogsync/internal/logging"
	"github.com/goliatone/go-blogsync/pkg/interfaces"
	"github.com/goliatone/go-slug"
)

// DefaultEndpoint is Hashnode's public GraphQL endpoint.
const DefaultEndpoint = "https://gql.hashnode.com"

const publishPostMutation = `mutation PublishPost($input: PublishPostInput!) {
  publishPost(input: $input) {
    post {
      id
      title
      url
    }
  }
}`

const updatePostMutation = `mutation UpdatePost($input: UpdatePostInput!) {
  updatePost(input: $input) {
    post {
      id
      title
      url
    }
  }
}`

// HTTPError reports a non-2xx response from the platform, carrying the raw
// response body for diagnosis.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("hashnode: http %d: %s", e.StatusCode, e.Body)
}

// ResponseShapeError reports a 2xx response missing the expected post fields.
type ResponseShapeError struct {
	Operation string
}

func (e *ResponseShapeError) Error() string {
	return fmt.Sprintf("hashnode: %s response missing post id", e.Operation)
}

// Config carries the settings for the Hashnode client.
type Config struct {
	// Endpoint defaults to DefaultEndpoint when empty.
	Endpoint string
	// Token is the personal access token sent as a bearer credential.
	Token string
	// PublicationID selects the destination publication for new posts.
	PublicationID string
	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient *http.Client
	Logger     interfaces.Logger
}

// Client sends publish and update mutations. It satisfies interfaces.Publisher.
type Client struct {
	endpoint      string
	token         string
	publicationID string
	httpc         *http.Client
	logger        interfaces.Logger
}

var _ interfaces.Publisher = (*Client)(nil)

// NewClient validates the config and returns a ready client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("hashnode: access token is required")
	}
	if cfg.PublicationID == "" {
		return nil, fmt.Errorf("hashnode: publication ID is required")
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	httpc := cfg.HTTPClient
	if httpc == nil {
		httpc = &http.Client{Timeout: 30 * time.Second}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	return &Client{
		endpoint:      endpoint,
		token:         cfg.Token,
		publicationID: cfg.PublicationID,
		httpc:         httpc,
		logger:        logger,
	}, nil
}

// Publish sends the post to the platform. A non-empty PostID selects the
// update mutation, whose payload carries only id, title, and content; tags,
// canonical URL, and cover image are not forwarded on update. The create
// mutation includes those fields when present.
func (c *Client) Publish(ctx context.Context, input interfaces.PostInput) (*interfaces.PublishResult, error) {
	isUpdate := input.PostID != ""

	var query string
	payload := map[string]any{}

	if isUpdate {
		query = updatePostMutation
		payload["id"] = input.PostID
		payload["title"] = input.Title
		payload["contentMarkdown"] = input.ContentMarkdown
		if len(input.Tags) > 0 || input.CanonicalURL != "" || input.CoverImage != "" {
			c.logger.Debug("update payload drops tags, canonical URL, and cover image",
				"post_id", input.PostID,
				"tags", len(input.Tags),
			)
		}
	} else {
		query = publishPostMutation
		payload["title"] = input.Title
		payload["publicationId"] = c.publicationID
		payload["contentMarkdown"] = input.ContentMarkdown
		if len(input.Tags) > 0 {
			payload["tags"] = input.Tags
		}
		if input.CanonicalURL != "" {
			payload["canonicalUrl"] = input.CanonicalURL
		}
		if input.CoverImage != "" {
			payload["coverImage"] = input.CoverImage
		}
	}

	body, err := json.Marshal(map[string]any{
		"query":     query,
		"variables": map[string]any{"input": payload},
	})
	if err != nil {
		return nil, fmt.Errorf("hashnode: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("hashnode: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hashnode: send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("hashnode: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	operation := "publishPost"
	if isUpdate {
		operation = "updatePost"
	}

	post, err := decodePost(raw, operation)
	if err != nil {
		return nil, err
	}

	action := "published"
	if isUpdate {
		action = "updated"
	}
	c.logger.Info("blog post "+action,
		"title", input.Title,
		"post_id", post.ID,
		"url", post.URL,
	)

	return &interfaces.PublishResult{
		ID:      post.ID,
		URL:     post.URL,
		Updated: isUpdate,
	}, nil
}

type postPayload struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

func decodePost(raw []byte, operation string) (*postPayload, error) {
	var envelope struct {
		Data map[string]struct {
			Post *postPayload `json:"post"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("hashnode: decode response: %w", err)
	}

	node, ok := envelope.Data[operation]
	if !ok || node.Post == nil || node.Post.ID == "" {
		return nil, &ResponseShapeError{Operation: operation}
	}
	return node.Post, nil
}

// BuildTags converts raw tag names to the name/slug pairs the platform
// expects. Names that cannot be slugified keep the name as slug.
func BuildTags(names []string) []interfaces.Tag {
	if len(names) == 0 {
		return nil
	}

	tags := make([]interfaces.Tag, 0, len(names))
	for _, name := range names {
		s, err := slug.Normalize(name)
		if err != nil || s == "" {
			s = name
		}
		tags = append(tags, interfaces.Tag{Name: name, Slug: s})
	}
	return tags
}
