/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package load

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/exporter/resource"
)

func TestAcceptHeader(t *testing.T) {
	assert.Equal(t,
		"application/json, application/yaml;q=0.9, text/yaml;q=0.8, */*;q=0.1",
		acceptHeader([]string{"application/json", "application/yaml", "text/yaml"}))
	assert.Equal(t, "*/*;q=0.1", acceptHeader(nil))
}

func TestHTTPFetcher_Success(t *testing.T) {
	body := `[{"name": "Ada"}]`
	var accept, agent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accept = r.Header.Get("Accept")
		agent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	content, err := NewHTTPFetcher(DefaultMaxSize, WithClient(srv.Client())).
		Fetch(context.Background(), srv.URL+"/users.json")
	require.NoError(t, err)
	assert.Equal(t, body, string(content))
	assert.True(t, strings.HasPrefix(agent, "exporter/"), agent)
	assert.Equal(t, acceptHeader(resource.MediaTypes), accept)
	assert.True(t, strings.HasPrefix(accept, resource.MediaTypes[0]+", "), accept)
}

func TestHTTPFetcher_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte("too late"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewHTTPFetcher(DefaultMaxSize).Fetch(ctx, srv.URL+"/users.json")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestHTTPFetcher_MaxSizeExceeded(t *testing.T) {
	t.Run("declared length", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(strings.Repeat("x", 100)))
		}))
		defer srv.Close()

		_, err := NewHTTPFetcher(50).Fetch(context.Background(), srv.URL+"/users.json")
		assert.ErrorIs(t, err, ErrTooLarge)
	})

	t.Run("streamed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for range 10 {
				_, _ = w.Write([]byte(strings.Repeat("x", 10)))
				w.(http.Flusher).Flush()
			}
		}))
		defer srv.Close()

		_, err := NewHTTPFetcher(50).Fetch(context.Background(), srv.URL+"/users.json")
		assert.ErrorIs(t, err, ErrTooLarge)
	})

	t.Run("at the limit", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(strings.Repeat("x", 50)))
		}))
		defer srv.Close()

		content, err := NewHTTPFetcher(50).Fetch(context.Background(), srv.URL+"/users.json")
		require.NoError(t, err)
		assert.Len(t, content, 50)
	})
}

func TestHTTPFetcher_Non200Status(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewHTTPFetcher(DefaultMaxSize).Fetch(context.Background(), srv.URL+"/users.json")
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.Code)
	assert.Contains(t, err.Error(), "404")
}
