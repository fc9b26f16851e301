/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load reads resource documents from local files or http(s) URLs.
package load

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	"bennypowers.dev/exporter/fs"
	"bennypowers.dev/exporter/internal/logger"
)

// Reader reads resource documents by path or URL.
type Reader struct {
	filesystem fs.FileSystem
	fetcher    Fetcher
	timeout    time.Duration
}

// NewReader creates a Reader. A nil fetcher disables URL inputs.
func NewReader(filesystem fs.FileSystem, fetcher Fetcher) *Reader {
	return &Reader{
		filesystem: filesystem,
		fetcher:    fetcher,
		timeout:    DefaultTimeout,
	}
}

// WithTimeout sets the per-fetch timeout.
func (r *Reader) WithTimeout(d time.Duration) *Reader {
	r.timeout = d
	return r
}

// IsURL reports whether location is an http or https URL.
func IsURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// Read returns the content at location.
func (r *Reader) Read(ctx context.Context, location string) ([]byte, error) {
	if !IsURL(location) {
		data, err := r.filesystem.ReadFile(location)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", location, err)
		}
		return data, nil
	}

	if r.fetcher == nil {
		return nil, fmt.Errorf("cannot fetch %s: network inputs are disabled", location)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	logger.Debug("fetching %s", location)
	return r.fetcher.Fetch(ctx, location)
}

// BaseName returns the final path element of location without its
// extension, ignoring any URL query or fragment.
func BaseName(location string) string {
	p := location
	if IsURL(location) {
		if u, err := url.Parse(location); err == nil {
			p = path.Clean("/" + u.Path)
		}
	}
	base := filepath.Base(p)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
