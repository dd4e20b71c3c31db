// Package deezer is a thin client for the public Deezer API: search, the
// top-tracks chart and single track lookups.
package deezer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jaki95/track-search/config"
)

const userAgent = "track-search/1.0"

type Client struct {
	baseURL  string
	proxyURL string
	http     *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default HTTP client, mostly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

func NewClient(cfg config.DeezerConfig, opts ...Option) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultDeezerBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}

	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		proxyURL: cfg.ProxyURL,
		http: &http.Client{
			Timeout: timeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search queries the search endpoint. Only the first page is requested.
func (c *Client) Search(ctx context.Context, query string) ([]RawTrack, error) {
	val := url.Values{}
	val.Set("q", query)

	var body listResponse
	if err := c.get(ctx, "search", "/search?"+val.Encode(), &body); err != nil {
		return nil, err
	}
	if body.Error != nil {
		return nil, newProviderError(body.Error)
	}
	return body.Data, nil
}

// Chart returns the current top tracks.
func (c *Client) Chart(ctx context.Context) ([]RawTrack, error) {
	var body listResponse
	if err := c.get(ctx, "chart", "/chart/0/tracks", &body); err != nil {
		return nil, err
	}
	if body.Error != nil {
		return nil, newProviderError(body.Error)
	}
	return body.Data, nil
}

// Track fetches a single track by id.
func (c *Client) Track(ctx context.Context, id int64) (*RawTrack, error) {
	var body trackResponse
	if err := c.get(ctx, "track", "/track/"+strconv.FormatInt(id, 10), &body); err != nil {
		return nil, err
	}
	if body.Error != nil {
		return nil, newProviderError(body.Error)
	}
	return &body.RawTrack, nil
}

func (c *Client) endpoint(path string) string {
	return c.proxyURL + c.baseURL + path
}

// get performs the request and decodes the JSON body into out. A body that
// decodes but carries a non-2xx status is only an error when it has no
// provider error of its own, so the caller can surface the provider message.
func (c *Client) get(ctx context.Context, op, path string, out envelope) error {
	reqURL := c.endpoint(path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &TransportError{Op: op, URL: reqURL, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	c.setCommonHeaders(req)

	slog.Debug("Requesting Deezer", "op", op, "url", reqURL)

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: op, URL: reqURL, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: op, URL: reqURL, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if err := json.Unmarshal(data, out); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return &TransportError{Op: op, URL: reqURL, Err: fmt.Errorf("unexpected status code: %d", resp.StatusCode)}
		}
		return &TransportError{Op: op, URL: reqURL, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	if (resp.StatusCode < 200 || resp.StatusCode > 299) && out.providerError() == nil {
		return &TransportError{Op: op, URL: reqURL, Err: fmt.Errorf("unexpected status code: %d", resp.StatusCode)}
	}

	return nil
}

func (c *Client) setCommonHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
}

// envelope is a decoded response body that may carry a provider error.
type envelope interface {
	providerError() *apiError
}

func (r *listResponse) providerError() *apiError  { return r.Error }
func (r *trackResponse) providerError() *apiError { return r.Error }
