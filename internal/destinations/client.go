package destinations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Backend defaults. The paths are appended to the base URL as-is.
const (
	DefaultBaseURL  = "http://localhost:3000"
	PathPopular     = "/destinosPopulares"
	PathRecommended = "/recomendados"
)

// ErrUnexpectedStatus is returned for any non-2xx response.
var ErrUnexpectedStatus = errors.New("unexpected status")

// Client issues plain GETs against the destinos backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout bounds each request. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Timeout = d
		c.httpClient = &hc
	}
}

// NewClient builds a client for baseURL, falling back to DefaultBaseURL when
// empty. A trailing slash is trimmed.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the normalized base the client was built with.
func (c *Client) BaseURL() string { return c.baseURL }

// Popular fetches the popular destinations list.
func (c *Client) Popular(ctx context.Context) ([]Destination, error) {
	return c.list(ctx, PathPopular)
}

// Recommended fetches the recommended destinations list.
func (c *Client) Recommended(ctx context.Context) ([]Destination, error) {
	return c.list(ctx, PathRecommended)
}

func (c *Client) list(ctx context.Context, path string) ([]Destination, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", path, err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("get %s: %w: %d", path, ErrUnexpectedStatus, resp.StatusCode)
	}

	var out []Destination
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if out == nil {
		out = []Destination{}
	}
	return out, nil
}
