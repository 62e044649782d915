// Package rehost uploads local image files to a cloud storage backend and
// returns durable public view URLs for them.
package rehost

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/goliatone/go-blogsync/internal/logging"
	"github.com/goliatone/go-blogsync/pkg/interfaces"
)

var (
	// ErrCredentialsRequired indicates the storage credentials file was
	// missing, unreadable, or did not contain a token.
	ErrCredentialsRequired = errors.New("rehost: storage credentials required")
	// ErrUploadFailed wraps any failure while uploading or publishing a file.
	ErrUploadFailed = errors.New("rehost: upload failed")
	// ErrFolderLookupFailed wraps failures while resolving or creating the
	// remote folder.
	ErrFolderLookupFailed = errors.New("rehost: folder lookup failed")
)

// Config carries the settings needed to talk to the storage backend.
type Config struct {
	// BaseURL is the storage API root, e.g. "https://storage.example.com/api/v3".
	BaseURL string
	// CredentialsFile points at a JSON file holding {"token": "..."}.
	CredentialsFile string
	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient *http.Client
	Logger     interfaces.Logger
}

// Client talks to the storage HTTP API. It satisfies interfaces.ImageStore.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
	logger  interfaces.Logger
}

var _ interfaces.ImageStore = (*Client)(nil)

type credentials struct {
	Token string `json:"token"`
}

// NewClient loads the credentials file and returns a ready client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("rehost: base URL is required")
	}
	if cfg.CredentialsFile == "" {
		return nil, ErrCredentialsRequired
	}

	raw, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCredentialsRequired, err)
	}

	var creds credentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCredentialsRequired, err)
	}
	if creds.Token == "" {
		return nil, fmt.Errorf("%w: empty token in %s", ErrCredentialsRequired, cfg.CredentialsFile)
	}

	httpc := cfg.HTTPClient
	if httpc == nil {
		httpc = &http.Client{Timeout: 60 * time.Second}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	return &Client{
		baseURL: cfg.BaseURL,
		token:   creds.Token,
		httpc:   httpc,
		logger:  logger,
	}, nil
}

type folderRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// EnsureFolder returns the ID of the remote folder with the exact given name,
// creating it when no match exists. Matching is case-sensitive; lookup is by
// name only, never by content.
func (c *Client) EnsureFolder(ctx context.Context, name string) (string, error) {
	lookup := fmt.Sprintf("%s/folders?name=%s", c.baseURL, url.QueryEscape(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookup, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFolderLookupFailed, err)
	}
	c.authorize(req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFolderLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: lookup status %d", ErrFolderLookupFailed, resp.StatusCode)
	}

	var listing struct {
		Folders []folderRecord `json:"folders"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return "", fmt.Errorf("%w: %v", ErrFolderLookupFailed, err)
	}

	for _, folder := range listing.Folders {
		if folder.Name == name {
			c.logger.Debug("remote folder found", "name", name, "folder_id", folder.ID)
			return folder.ID, nil
		}
	}

	return c.createFolder(ctx, name)
}

func (c *Client) createFolder(ctx context.Context, name string) (string, error) {
	payload, _ := json.Marshal(map[string]string{"name": name})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/folders", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFolderLookupFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFolderLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("%w: create status %d", ErrFolderLookupFailed, resp.StatusCode)
	}

	var created folderRecord
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("%w: %v", ErrFolderLookupFailed, err)
	}

	c.logger.Info("remote folder created", "name", name, "folder_id", created.ID)
	return created.ID, nil
}

// Upload pushes the file at localPath into the given folder, grants public
// read access, and returns the shareable view URL. Every call creates a new
// remote file object; there is no dedup by name or content.
func (c *Client) Upload(ctx context.Context, localPath, folderID string) (string, error) {
	file, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filepath.Base(localPath))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	endpoint := fmt.Sprintf("%s/folders/%s/files", c.baseURL, url.PathEscape(folderID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.authorize(req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: upload status %d: %s", ErrUploadFailed, resp.StatusCode, string(body))
	}

	var uploaded struct {
		ID      string `json:"id"`
		ViewURL string `json:"viewUrl"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if uploaded.ID == "" || uploaded.ViewURL == "" {
		return "", fmt.Errorf("%w: response missing id or viewUrl", ErrUploadFailed)
	}

	if err := c.grantPublicRead(ctx, uploaded.ID); err != nil {
		return "", err
	}

	c.logger.Info("image rehosted",
		"file", filepath.Base(localPath),
		"file_id", uploaded.ID,
		"url", uploaded.ViewURL,
	)
	return uploaded.ViewURL, nil
}

func (c *Client) grantPublicRead(ctx context.Context, fileID string) error {
	payload, _ := json.Marshal(map[string]string{
		"role": "reader",
		"type": "anyone",
	})

	endpoint := fmt.Sprintf("%s/files/%s/permissions", c.baseURL, url.PathEscape(fileID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("%w: permission status %d", ErrUploadFailed, resp.StatusCode)
	}
	return nil
}

func (c *Client) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.token)
}
