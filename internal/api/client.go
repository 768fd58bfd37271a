package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Client is the single choke point for calls to the recipe API. It
// prefixes the configured base URL, attaches the bearer token when one
// is held and normalizes non-2xx responses into *Error.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

// New creates a client for the given API origin, e.g.
// "http://localhost:8000/api".
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetToken installs or clears (empty string) the bearer token used on
// every subsequent request.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Token returns the currently held bearer token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Get issues a GET and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, endpoint string, out any) error {
	return c.requestJSON(ctx, http.MethodGet, endpoint, nil, out)
}

// Post issues a POST with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, endpoint string, body, out any) error {
	return c.requestJSON(ctx, http.MethodPost, endpoint, body, out)
}

// Put issues a PUT with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, endpoint string, body, out any) error {
	return c.requestJSON(ctx, http.MethodPut, endpoint, body, out)
}

// Delete issues a DELETE and decodes the response into out.
func (c *Client) Delete(ctx context.Context, endpoint string, out any) error {
	return c.requestJSON(ctx, http.MethodDelete, endpoint, nil, out)
}

// Upload POSTs a multipart form and decodes the response into out. The
// multipart writer sets the boundary content type; the client never
// overrides it.
func (c *Client) Upload(ctx context.Context, endpoint string, form *Form, out any) error {
	body, contentType, err := form.encode()
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, endpoint, body, contentType, "", out)
}

// PutForm simulates a multipart PUT via the method-override convention
// the API requires: the request goes out as POST with a leading
// _method=PUT field and an X-HTTP-Method-Override header.
func (c *Client) PutForm(ctx context.Context, endpoint string, form *Form, out any) error {
	body, contentType, err := form.withMethodOverride(http.MethodPut).encode()
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, endpoint, body, contentType, http.MethodPut, out)
}

func (c *Client) requestJSON(ctx context.Context, method, endpoint string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}
	return c.do(ctx, method, endpoint, reader, "application/json", "", out)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body io.Reader, contentType, override string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if override != "" {
		req.Header.Set("X-HTTP-Method-Override", override)
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Status: resp.StatusCode}
		// Error bodies are JSON too; fall back to a generic message
		// when the server sends something else.
		if err := json.Unmarshal(respBody, apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = "API request failed"
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}
