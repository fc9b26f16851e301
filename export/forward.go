/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package export

import (
	"bennypowers.dev/exporter/export/driver"
	"bennypowers.dev/exporter/resource"
)

// The methods below call through to the default format's exporter.

// Config returns the default exporter's configuration.
func (m *Manager) Config() (driver.Config, error) {
	e, err := m.Format("")
	if err != nil {
		return nil, err
	}
	return e.Config(), nil
}

// WithoutFields replaces the default exporter's ignored fields. The cached
// instance is modified, so the exclusion applies to every later caller of
// the default format.
func (m *Manager) WithoutFields(fields ...string) (driver.Exporter, error) {
	e, err := m.Format("")
	if err != nil {
		return nil, err
	}
	return e.WithoutFields(fields...), nil
}

// ExportItem exports a resource with the default exporter.
func (m *Manager) ExportItem(r resource.Resource) (string, error) {
	return m.ExportItemAs("", r)
}

// ExportCollection exports a collection with the default exporter.
func (m *Manager) ExportCollection(c resource.Collection) (string, error) {
	return m.ExportCollectionAs("", c)
}
