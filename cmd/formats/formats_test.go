/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package formats

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/exporter/config"
	"bennypowers.dev/exporter/export/driver"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Default = "report"
	cfg.Exporters["report"] = driver.Config{"driver": "xml", "root_element": "report"}
	cfg.Exporters["draft"] = driver.Config{"pretty_print": true}
	return cfg
}

func TestList(t *testing.T) {
	assert.Equal(t, []Format{
		{Name: "csv", Driver: "csv"},
		{Name: "draft", Driver: ""},
		{Name: "report", Driver: "xml", Default: true},
		{Name: "xml", Driver: "xml"},
	}, List(testConfig()))
}

func TestPrint(t *testing.T) {
	list := List(testConfig())

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Print(&buf, list, "table"))
		assert.Equal(t, ""+
			"csv                  csv\n"+
			"draft                -\n"+
			"report               xml        (default)\n"+
			"xml                  xml\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Print(&buf, list[:1], "json"))
		assert.JSONEq(t, `[{"name": "csv", "driver": "csv", "default": false}]`, buf.String())
	})

	t.Run("unknown", func(t *testing.T) {
		assert.Error(t, Print(&bytes.Buffer{}, list, "yaml"))
	})
}
