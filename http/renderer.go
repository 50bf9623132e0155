// Package http provides a static implementation of pageprofile.Renderer for
// sites that do not need JavaScript. No console telemetry is captured.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/pageprofile"
	"golang.org/x/net/html/charset"
)

// Defaults for Renderer.
const (
	DefaultTimeout   = 10 * time.Second
	DefaultMaxBytes  = 10 << 20
	DefaultUserAgent = "pageprofile/1.0 (+https://github.com/fwojciec/pageprofile)"
)

// Ensure Renderer implements pageprofile.Renderer at compile time.
var _ pageprofile.Renderer = (*Renderer)(nil)

// Renderer retrieves pages with plain HTTP GET requests and decodes them
// to UTF-8 based on the declared or sniffed charset.
type Renderer struct {
	client    *http.Client
	timeout   time.Duration
	maxBytes  int64
	userAgent string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTimeout sets the timeout for HTTP requests.
func WithTimeout(d time.Duration) Option {
	return func(r *Renderer) {
		r.timeout = d
	}
}

// WithMaxBytes limits how much of a response body is read.
func WithMaxBytes(n int64) Option {
	return func(r *Renderer) {
		r.maxBytes = n
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(r *Renderer) {
		r.userAgent = ua
	}
}

// NewRenderer creates a new HTTP-based Renderer.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		timeout:   DefaultTimeout,
		maxBytes:  DefaultMaxBytes,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.client = &http.Client{
		Timeout: r.timeout,
	}
	return r
}

// Render fetches the URL and returns its HTML.
// Returns ENOTFOUND for a 404 response.
func (r *Renderer) Render(ctx context.Context, url string) (*pageprofile.RenderedPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, pageprofile.Errorf(pageprofile.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", r.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, pageprofile.Errorf(pageprofile.ENOTFOUND, "page not found: %s", url)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := charset.NewReader(io.LimitReader(resp.Body, r.maxBytes), resp.Header.Get("Content-Type"))
	if errors.Is(err, io.EOF) {
		return &pageprofile.RenderedPage{URL: url}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", url, err)
	}
	html, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}

	return &pageprofile.RenderedPage{
		URL:  url,
		HTML: string(html),
	}, nil
}

// Close is a no-op; http.Client needs no explicit cleanup.
func (r *Renderer) Close() error {
	return nil
}
