// Package convert is the HTTP client for the reel conversion endpoint.
//
// A conversion is a single GET that blocks until the video is ready and
// returns it as the response body. The client makes exactly one attempt:
// no retries, no timeout, no cancellation beyond the caller's context.
package convert

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"dagenreels/internal/jsonutil"
)

// DefaultServerURL is the default reelsd base URL.
const DefaultServerURL = "http://localhost:8000"

// EndpointPath is the conversion endpoint, relative to the server URL.
const EndpointPath = "/api/convert"

// ScenesResponse is returned by the endpoint when format=json.
type ScenesResponse struct {
	URL    string   `json:"url"`
	Scenes []string `json:"scenes"`
}

// StatusError is returned when the endpoint answers with a non-2xx status.
// The code and detail are meant for diagnostic logs only.
type StatusError struct {
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("convert: server returned status %d", e.Code)
	}
	return fmt.Sprintf("convert: server returned status %d: %s", e.Code, e.Detail)
}

// Converter turns an article URL into reel bytes.
type Converter interface {
	Convert(ctx context.Context, article string) ([]byte, error)
}

// Client talks to a reelsd instance.
type Client struct {
	base   string
	client *http.Client
}

// Ensure Client implements Converter.
var _ Converter = (*Client)(nil)

// NewClient creates a client for the server at base.
// An empty base falls back to REELS_SERVER, then DefaultServerURL.
// The http.Client has no timeout: conversions can take minutes.
func NewClient(base string) *Client {
	if base == "" {
		base = os.Getenv("REELS_SERVER")
	}
	if base == "" {
		base = DefaultServerURL
	}
	return &Client{
		base:   strings.TrimRight(base, "/"),
		client: &http.Client{},
	}
}

// BaseURL returns the resolved server base URL.
func (c *Client) BaseURL() string {
	return c.base
}

// WithHTTPClient replaces the underlying http.Client (for tests).
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.client = hc
	return c
}

// BuildURL returns the conversion URL for article against base.
// The article is percent-encoded exactly once as the url query parameter.
func BuildURL(base, article string, extra url.Values) (string, error) {
	u, err := url.Parse(strings.TrimRight(base, "/") + EndpointPath)
	if err != nil {
		return "", fmt.Errorf("parse server url %q: %w", base, err)
	}
	q := url.Values{}
	for k, vs := range extra {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("url", article)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Convert issues one GET to the endpoint and returns the binary body on 2xx.
func (c *Client) Convert(ctx context.Context, article string) ([]byte, error) {
	resp, err := c.get(ctx, article, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("convert: read body: %w", err)
	}
	return body, nil
}

// Scenes asks the endpoint for the summarised scene texts without rendering media.
func (c *Client) Scenes(ctx context.Context, article string) (*ScenesResponse, error) {
	resp, err := c.get(ctx, article, url.Values{"format": {"json"}})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out ScenesResponse
	if err := jsonutil.DecodeWithContext(resp.Body, &out, "convert: decode scenes"); err != nil {
		return nil, err
	}
	return &out, nil
}

// get performs the request and converts non-2xx responses into *StatusError.
// On success the caller owns resp.Body.
func (c *Client) get(ctx context.Context, article string, extra url.Values) (*http.Response, error) {
	target, err := BuildURL(c.base, article, extra)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("convert: build request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("convert: request failed: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, &StatusError{Code: resp.StatusCode, Detail: readDetail(resp.Body)}
	}
	return resp, nil
}

// readDetail extracts the error detail from a {"detail": "..."} body,
// falling back to the first bytes of a plain-text body.
func readDetail(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 4096))
	var m map[string]interface{}
	if err := jsonutil.UnmarshalWithContext(b, &m, "detail"); err == nil {
		if d := jsonutil.GetString(m, "detail"); d != "" {
			return d
		}
	}
	s := strings.TrimSpace(string(b))
	if len(s) > 200 {
		s = s[:197] + "..."
	}
	return s
}
