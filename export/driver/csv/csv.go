/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package csv provides the CSV export driver.
package csv

import (
	"strings"

	"bennypowers.dev/exporter/export/driver"
	"bennypowers.dev/exporter/naming"
	"bennypowers.dev/exporter/resource"
)

// DriverName is the registry id of the CSV driver.
const DriverName = "csv"

// Configuration keys understood by the CSV driver.
const (
	DelimiterKey = "delimiter"
	EnclosureKey = "enclosure"
)

// Defaults returns the CSV driver's built-in configuration.
func Defaults() driver.Config {
	return driver.Config{
		DelimiterKey: ",",
		EnclosureKey: `"`,
	}
}

// Exporter flattens resources into a header line and one data line per item.
type Exporter struct {
	*driver.Base

	delimiter string
	enclosure string
}

// New creates a CSV exporter with config merged over Defaults.
func New(config driver.Config) *Exporter {
	base := driver.NewBase(Defaults(), config)
	cfg := base.Config()
	return &Exporter{
		Base:      base,
		delimiter: cfg.String(DelimiterKey),
		enclosure: cfg.String(EnclosureKey),
	}
}

// WithoutFields implements driver.Exporter.
func (e *Exporter) WithoutFields(fields ...string) driver.Exporter {
	e.SetIgnored(fields...)
	return e
}

// ExportItem implements driver.Exporter. The result is the header line,
// a newline, the data line and a trailing newline, or "" when no
// stringable fields remain after filtering.
func (e *Exporter) ExportItem(r resource.Resource) (string, error) {
	data := e.Filter(r.Resolve(), true)
	if data.Len() == 0 {
		return "", nil
	}

	return strings.Join([]string{
		e.columns(data.Keys()),
		e.row(data) + "\n",
	}, "\n"), nil
}

// ExportCollection implements driver.Exporter. The header comes from the
// first item's filtered keys and is not regenerated for later items, so
// items with different keys produce misaligned rows.
func (e *Exporter) ExportCollection(c resource.Collection) (string, error) {
	var sb strings.Builder
	headed := false

	for _, item := range c.Items() {
		data := e.Filter(item.Resolve(), true)

		if !headed {
			sb.WriteString(e.columns(data.Keys()))
			sb.WriteString("\n")
			headed = true
		}

		if data.Len() > 0 {
			sb.WriteString(e.row(data))
			sb.WriteString("\n")
		}
	}

	return sb.String(), nil
}

func (e *Exporter) columns(keys []string) string {
	cells := make([]string, len(keys))
	for i, key := range keys {
		cells[i] = e.escape(naming.ToHumanWords(key))
	}
	return strings.Join(cells, e.delimiter)
}

func (e *Exporter) row(data *resource.Data) string {
	cells := make([]string, 0, data.Len())
	data.Each(func(_ string, value any) {
		cells = append(cells, e.escape(driver.ToString(value)))
	})
	return strings.Join(cells, e.delimiter)
}

// escape always wraps the value in the enclosure and doubles any enclosure
// already inside it.
func (e *Exporter) escape(value string) string {
	if e.enclosure == "" {
		return value
	}
	doubled := strings.ReplaceAll(value, e.enclosure, e.enclosure+e.enclosure)
	return e.enclosure + doubled + e.enclosure
}
