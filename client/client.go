package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lafoolehh-stack/SomaliPin-V1/internal/domain"
)

const defaultTimeout = 10 * time.Second

// Placeholder values that show up in copy-pasted example configs.
// They count as "not configured".
var placeholderURLFragments = []string{"xyzcompany", "example.supabase"}
var placeholderKeys = []string{"your-anon-key", "changeme"}

// IsConfigured reports whether the connection settings point at a real
// backend. The check is pure: it never dials, so startup can decide
// the backend strategy without latency or panics on bad configuration.
func IsConfigured(baseURL, anonKey string) bool {
	if baseURL == "" || !strings.HasPrefix(baseURL, "http") {
		return false
	}
	for _, fragment := range placeholderURLFragments {
		if strings.Contains(baseURL, fragment) {
			return false
		}
	}
	if anonKey == "" {
		return false
	}
	for _, placeholder := range placeholderKeys {
		if anonKey == placeholder {
			return false
		}
	}
	return true
}

// Client talks to a Supabase project: the PostgREST dossiers table and
// the storage API. Credentials are attached in RoundTrip so every
// request carries them uniformly.
type Client struct {
	client    *http.Client
	baseURL   string
	anonKey   string
	userAgent string
}

func New(baseURL, anonKey string) *Client {
	httpClient := http.Client{
		Timeout: defaultTimeout,
	}

	c := &Client{
		client:    &httpClient,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		anonKey:   anonKey,
		userAgent: "somalipin/1.0",
	}
	httpClient.Transport = c
	return c
}

func (c *Client) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+c.anonKey)
	return http.DefaultTransport.RoundTrip(req)
}

// SelectDossiers fetches every row of the dossiers table.
func (c *Client) SelectDossiers(ctx context.Context) ([]domain.Dossier, error) {
	var dossiers []domain.Dossier
	err := c.do(ctx, http.MethodGet, "/rest/v1/dossiers?select=*", nil, "", &dossiers)
	if err != nil {
		return nil, err
	}
	return dossiers, nil
}

// InsertDossier creates a new row. PostgREST expects an array body.
func (c *Client) InsertDossier(ctx context.Context, input domain.DossierInput) error {
	body, err := json.Marshal([]domain.DossierInput{input})
	if err != nil {
		return fmt.Errorf("failed to encode dossier: %v", err)
	}
	return c.do(ctx, http.MethodPost, "/rest/v1/dossiers", bytes.NewReader(body), "application/json", nil)
}

// UpdateDossier updates the row with the given id.
func (c *Client) UpdateDossier(ctx context.Context, id string, input domain.DossierInput) error {
	body, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("failed to encode dossier: %v", err)
	}
	path := "/rest/v1/dossiers?id=eq." + url.QueryEscape(id)
	return c.do(ctx, http.MethodPatch, path, bytes.NewReader(body), "application/json", nil)
}

// DeleteDossier removes the row with the given id.
func (c *Client) DeleteDossier(ctx context.Context, id string) error {
	path := "/rest/v1/dossiers?id=eq." + url.QueryEscape(id)
	return c.do(ctx, http.MethodDelete, path, nil, "", nil)
}

// UploadObject stores an object in a storage bucket under key.
func (c *Client) UploadObject(ctx context.Context, bucket, key, contentType string, body io.Reader) error {
	path := "/storage/v1/object/" + url.PathEscape(bucket) + "/" + url.PathEscape(key)
	return c.do(ctx, http.MethodPost, path, body, contentType, nil)
}

// PublicObjectURL computes the public URL for a stored object. This is
// derived locally; Supabase serves public buckets at a fixed path.
func (c *Client) PublicObjectURL(bucket, key string) string {
	return c.baseURL + "/storage/v1/object/public/" + url.PathEscape(bucket) + "/" + url.PathEscape(key)
}

// backendError is the PostgREST/storage error body.
type backendError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, response any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if method == http.MethodPost || method == http.MethodPatch {
		req.Header.Set("Prefer", "return=minimal")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.BackendError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var remote backendError
		if err := json.NewDecoder(resp.Body).Decode(&remote); err == nil {
			if remote.Message != "" {
				return domain.BackendError{Message: remote.Message}
			}
			if remote.Error != "" {
				return domain.BackendError{Message: remote.Error}
			}
		}
		return domain.BackendError{Message: fmt.Sprintf("unexpected status code: %d", resp.StatusCode)}
	}

	if response == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(response); err != nil {
		return domain.BackendError{Message: fmt.Sprintf("failed to decode response: %v", err)}
	}
	return nil
}
