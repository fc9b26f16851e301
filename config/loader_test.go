/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/exporter/export/driver"
	"bennypowers.dev/exporter/internal/mapfs"
	"bennypowers.dev/exporter/testutil"
)

func TestLoad_YAML(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "config/yaml", "/project")

	cfg, err := Load(mfs, "/project")
	require.NoError(t, err)

	assert.Equal(t, "report", cfg.Default)
	assert.Equal(t, DefaultAlias, cfg.Alias)
	assert.Equal(t, []string{"csv", "report", "sheet", "xml"}, cfg.Formats())

	report := cfg.FormatConfig("report")
	assert.Equal(t, "xml", report.Driver())
	assert.Equal(t, "report", report["root_element"])
	assert.Equal(t, true, report["pretty_print"])

	assert.Equal(t, ";", cfg.FormatConfig("sheet")["delimiter"])
}

func TestLoad_JSON(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "config/json", "/project")

	cfg, err := Load(mfs, "/project")
	require.NoError(t, err)

	assert.Equal(t, "xml", cfg.DefaultFormat())
	assert.Equal(t, "export", cfg.Alias)
	assert.Equal(t, driver.Config{"driver": "csv", "enclosure": "'"}, cfg.FormatConfig("legacy"))
}

func TestLoad_NotFound(t *testing.T) {
	cfg, err := Load(mapfs.New(), "/project")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvDefault, "xml")
	t.Setenv(EnvAlias, "exports")
	mfs := testutil.NewFixtureFS(t, "config/yaml", "/project")

	cfg, err := Load(mfs, "/project")
	require.NoError(t, err)
	assert.Equal(t, "xml", cfg.Default)
	assert.Equal(t, "exports", cfg.Alias)
}

func TestLoad_Invalid(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/exporter.yaml", "default: [", 0644)

	_, err := Load(mfs, "/project")
	assert.Error(t, err)

	cfg := LoadOrDefault(mfs, "/project")
	assert.Equal(t, Default(), cfg)
}

func TestFormatConfig(t *testing.T) {
	cfg := Default()

	assert.Nil(t, cfg.FormatConfig("missing"))

	csv := cfg.FormatConfig("csv")
	csv["delimiter"] = ";"
	assert.NotContains(t, cfg.Exporters["csv"], "delimiter", "FormatConfig must return a copy")
}
