/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package load

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"bennypowers.dev/exporter/internal/version"
	"bennypowers.dev/exporter/resource"
)

const (
	// DefaultTimeout bounds a single URL fetch.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxSize caps a fetched document at 10 MB.
	DefaultMaxSize int64 = 10 * 1024 * 1024
)

// ErrTooLarge indicates a fetched document exceeded the size cap.
var ErrTooLarge = errors.New("resource document too large")

// Fetcher fetches content from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// StatusError reports a non-200 response.
type StatusError struct {
	URL    string
	Status string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetching %s: %s", e.URL, e.Status)
}

// HTTPFetcher downloads resource documents, asking for the media types
// the resource decoder accepts.
type HTTPFetcher struct {
	client  *http.Client
	maxSize int64
	accept  string
}

// FetchOption customizes an HTTPFetcher.
type FetchOption func(*HTTPFetcher)

// WithClient replaces the default http.Client.
func WithClient(c *http.Client) FetchOption {
	return func(f *HTTPFetcher) { f.client = c }
}

// NewHTTPFetcher creates an HTTPFetcher that rejects documents larger
// than maxSize bytes.
func NewHTTPFetcher(maxSize int64, opts ...FetchOption) *HTTPFetcher {
	f := &HTTPFetcher{
		client:  http.DefaultClient,
		maxSize: maxSize,
		accept:  acceptHeader(resource.MediaTypes),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// acceptHeader ranks types in order with falling quality values, then
// accepts anything else at the lowest rank.
func acceptHeader(types []string) string {
	parts := make([]string, 0, len(types)+1)
	for i, t := range types {
		if i == 0 {
			parts = append(parts, t)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s;q=0.%d", t, max(10-i, 2)))
	}
	parts = append(parts, "*/*;q=0.1")
	return strings.Join(parts, ", ")
}

// Fetch implements Fetcher.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", url, err)
	}
	req.Header.Set("Accept", f.accept)
	req.Header.Set("User-Agent", "exporter/"+version.Get())

	resp, err := f.client.Do(req)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return nil, fmt.Errorf("timeout fetching %s: %w", url, err)
	case err != nil:
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: url, Status: resp.Status, Code: resp.StatusCode}
	}
	if resp.ContentLength > f.maxSize {
		return nil, f.tooLarge(url)
	}
	return f.readLimited(url, resp.Body)
}

// readLimited reads at most maxSize bytes, failing if the body has more.
func (f *HTTPFetcher) readLimited(url string, body io.Reader) ([]byte, error) {
	content, err := io.ReadAll(io.LimitReader(body, f.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	if int64(len(content)) > f.maxSize {
		return nil, f.tooLarge(url)
	}
	return content, nil
}

func (f *HTTPFetcher) tooLarge(url string) error {
	return fmt.Errorf("%w: %s exceeds %d bytes", ErrTooLarge, url, f.maxSize)
}
