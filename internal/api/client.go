package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"bizbook/internal/domain"
)

// ─────────────────────────────────────────────────────────────
// Businesses API client
// ─────────────────────────────────────────────────────────────
//
// Thin client for the remote directory API. Every response carries a
// {status, message, data} envelope; anything whose status is not
// "success" — or any transport failure — is one undifferentiated
// error. The caller never branches on distinct server error codes.

// Client talks to the businesses REST API.
type Client struct {
	mu      sync.RWMutex
	baseURL string
	http    *http.Client
}

// New creates a Client for the given base URL (e.g. "http://localhost:5000/api").
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// SetBaseURL swaps the endpoint at runtime (config hot-reload).
func (c *Client) SetBaseURL(baseURL string) {
	c.mu.Lock()
	c.baseURL = strings.TrimRight(baseURL, "/")
	c.mu.Unlock()
}

// BaseURL returns the current endpoint.
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// envelope is the wire shape shared by all endpoints.
type envelope struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Data    []domain.Business `json:"data,omitempty"`
}

// List fetches the full collection.
func (c *Client) List(ctx context.Context) ([]domain.Business, error) {
	env, err := c.do(ctx, http.MethodGet, "/businesses", nil)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// Create submits a full candidate record.
func (c *Client) Create(ctx context.Context, b domain.Business) error {
	_, err := c.do(ctx, http.MethodPost, "/businesses", b)
	return err
}

// Update replaces the record with matching id.
func (c *Client) Update(ctx context.Context, b domain.Business) error {
	_, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/businesses/%d", b.ID), b)
	return err
}

// Delete removes the record with the given id.
func (c *Client) Delete(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/businesses/%d", id), nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*envelope, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL()+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	// Read body (limit to 5MB to prevent memory issues).
	data, err := io.ReadAll(io.LimitReader(resp.Body, 5*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode, snippet(data))
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	if env.Status != "success" {
		if env.Message != "" {
			return nil, fmt.Errorf("api: %s", env.Message)
		}
		return nil, fmt.Errorf("api: request failed with status %q", env.Status)
	}
	return &env, nil
}

func snippet(data []byte) string {
	const max = 256
	if len(data) > max {
		data = data[:max]
	}
	return string(data)
}
