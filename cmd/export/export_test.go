/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package export

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	exportlib "bennypowers.dev/exporter/export"
	"bennypowers.dev/exporter/export/driver"
	"bennypowers.dev/exporter/load"
	"bennypowers.dev/exporter/resource"
	"bennypowers.dev/exporter/testutil"
)

func runGolden(t *testing.T, opts Options, pattern, golden string) {
	t.Helper()
	mfs := testutil.NewFixtureFS(t, "export", "/project")
	opts.RootDir = "/project"

	var buf bytes.Buffer
	require.NoError(t, Run(t.Context(), mfs, opts, []string{pattern}, &buf))

	testutil.UpdateGoldenFile(t, golden, buf.Bytes())
	assert.Equal(t, string(testutil.LoadFixtureFile(t, golden)), buf.String())
}

func TestRun_DefaultFormat(t *testing.T) {
	runGolden(t, Options{}, "data/users.yaml", "golden/users.csv")
}

func TestRun_NamedFormat(t *testing.T) {
	runGolden(t, Options{Format: "report"}, "data/order.json", "golden/order.xml")
}

func TestRun_Overrides(t *testing.T) {
	runGolden(t, Options{
		Format: "report",
		Overrides: driver.Config{
			"pretty_print": true,
			"root_element": "Purchase",
		},
	}, "data/order.json", "golden/order-pretty.xml")
}

func TestRun_WithoutAndDelimiter(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "export", "/project")

	var buf bytes.Buffer
	err := Run(t.Context(), mfs, Options{
		RootDir:   "/project",
		Without:   []string{"email"},
		Overrides: driver.Config{"delimiter": ";"},
	}, []string{"data/*.yaml"}, &buf)
	require.NoError(t, err)

	assert.Equal(t, "\"Name\";\"Admin\"\n\"Ada Lovelace\";\"true\"\n\"Grace Hopper\";\"false\"\n", buf.String())
}

func TestRun_Collection(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "export", "/project")

	var buf bytes.Buffer
	err := Run(t.Context(), mfs, Options{
		RootDir:    "/project",
		Format:     "report",
		Collection: true,
		Without:    []string{"lines"},
	}, []string{"data/order.json"}, &buf)
	require.NoError(t, err)

	assert.Equal(t,
		"<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<Orders><Order><Id>42</Id><Status>shipped</Status></Order></Orders>\n",
		buf.String())
}

func TestRun_OutputFile(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "export", "/project")

	var buf bytes.Buffer
	err := Run(t.Context(), mfs, Options{
		RootDir: "/project",
		Output:  "/project/out/users.csv",
	}, []string{"data/users.yaml"}, &buf)
	require.NoError(t, err)

	assert.Empty(t, buf.String())
	written, err := mfs.ReadFile("/project/out/users.csv")
	require.NoError(t, err)
	assert.Equal(t, string(testutil.LoadFixtureFile(t, "golden/users.csv")), string(written))
}

func TestRun_Metrics(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "export", "/project")
	metrics := exportlib.NewMetrics(prometheus.NewRegistry())

	var buf bytes.Buffer
	err := Run(t.Context(), mfs, Options{RootDir: "/project", Metrics: metrics},
		[]string{"data/users.yaml"}, &buf)
	require.NoError(t, err)

	assert.Equal(t, 1.0, promtest.ToFloat64(metrics.Exports.WithLabelValues("sheet", "collection", "success")))
	assert.Equal(t, 1.0, promtest.ToFloat64(metrics.Resolutions.WithLabelValues("csv", "builtin")))
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		patterns []string
		wantErr  error
	}{
		{
			name:     "unknown format",
			opts:     Options{Format: "nope"},
			patterns: []string{"data/users.yaml"},
			wantErr:  exportlib.ErrConfiguration,
		},
		{
			name:     "unknown format with overrides",
			opts:     Options{Format: "nope", Overrides: driver.Config{"delimiter": ";"}},
			patterns: []string{"data/users.yaml"},
			wantErr:  exportlib.ErrConfiguration,
		},
		{
			name:     "invalid input",
			opts:     Options{},
			patterns: []string{"data/scalars.json"},
			wantErr:  resource.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mfs := testutil.NewFixtureFS(t, "export", "/project")
			tt.opts.RootDir = "/project"

			var buf bytes.Buffer
			err := Run(t.Context(), mfs, tt.opts, tt.patterns, &buf)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, buf.String())
		})
	}
}

func TestRun_NoMatches(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "export", "/project")

	var buf bytes.Buffer
	err := Run(t.Context(), mfs, Options{RootDir: "/project"}, []string{"data/*.csv"}, &buf)
	assert.EqualError(t, err, "no input files matched")
}

func TestRun_URL(t *testing.T) {
	body := testutil.LoadFixtureFile(t, "export/data/users.yaml")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	mfs := testutil.NewFixtureFS(t, "export", "/project")

	var buf bytes.Buffer
	err := Run(t.Context(), mfs, Options{
		RootDir: "/project",
		Fetcher: load.NewHTTPFetcher(load.DefaultMaxSize),
	}, []string{srv.URL + "/users.yaml"}, &buf)
	require.NoError(t, err)
	assert.Equal(t, string(testutil.LoadFixtureFile(t, "golden/users.csv")), buf.String())

	err = Run(t.Context(), mfs, Options{RootDir: "/project"}, []string{srv.URL + "/users.yaml"}, &buf)
	assert.ErrorContains(t, err, "network inputs are disabled")
}

func TestRun_MissingFile(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "export", "/project")

	var buf bytes.Buffer
	err := Run(t.Context(), mfs, Options{RootDir: "/project"}, []string{"data/missing.yaml"}, &buf)
	assert.ErrorContains(t, err, "reading /project/data/missing.yaml")
}

func TestTypeNameFor(t *testing.T) {
	tests := map[string]string{
		"data/users.yaml":                            "User",
		"order.json":                                 "Order",
		"/abs/order-lines.yaml":                      "OrderLine",
		"categories.jsonc":                           "Category",
		"https://example.com/api/people.json?page=2": "Person",
	}
	for path, want := range tests {
		t.Run(path, func(t *testing.T) {
			assert.Equal(t, want, TypeNameFor(path))
		})
	}
}

func TestOverridesFromFlags(t *testing.T) {
	t.Cleanup(func() {
		Cmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	})
	require.NoError(t, Cmd.ParseFlags([]string{
		"--no-pretty",
		"--root-element", "Report",
		"--include-sub-resources=false",
		"--enclosure", "'",
	}))

	assert.Equal(t, driver.Config{
		"pretty_print":          false,
		"root_element":          "Report",
		"include_sub_resources": false,
		"enclosure":             "'",
	}, overridesFromFlags(Cmd))
}
