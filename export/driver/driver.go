/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package driver provides the interface and shared behavior for export drivers.
package driver

import (
	"maps"
	"slices"
	"sync"

	"bennypowers.dev/exporter/resource"
)

// Exporter defines the interface for format drivers.
type Exporter interface {
	// Config returns the driver's effective configuration.
	Config() Config

	// WithoutFields replaces the set of fields excluded from every
	// subsequent export and returns the same exporter.
	WithoutFields(fields ...string) Exporter

	// ExportItem serializes a single resource.
	ExportItem(r resource.Resource) (string, error)

	// ExportCollection serializes every resource in a collection.
	ExportCollection(c resource.Collection) (string, error)
}

// Base carries the configuration and field exclusions shared by all drivers.
// Drivers embed it and supply their own defaults.
type Base struct {
	config Config

	mu      sync.RWMutex
	ignored []string
}

// NewBase merges overrides over defaults, key by key, and returns the base
// holding the result. The merge happens once; later reads never observe a
// missing default.
func NewBase(defaults, overrides Config) *Base {
	merged := make(Config, len(defaults)+len(overrides))
	maps.Copy(merged, defaults)
	maps.Copy(merged, overrides)
	return &Base{config: merged}
}

// Config returns a copy of the effective configuration.
func (b *Base) Config() Config {
	return maps.Clone(b.config)
}

// SetIgnored replaces the ignored field set. It does not accumulate:
// SetIgnored("a") followed by SetIgnored("b") ignores only "b".
func (b *Base) SetIgnored(fields ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ignored = slices.Clone(fields)
}

// Ignored returns a copy of the ignored field set.
func (b *Base) Ignored() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.ignored)
}

// Filter returns a copy of data without ignored keys. When stringableOnly
// is set, values that are not stringable are dropped too. Only the given
// level is filtered; nested values are copied by reference.
func (b *Base) Filter(data *resource.Data, stringableOnly bool) *resource.Data {
	ignored := b.Ignored()

	out := resource.New()
	data.Each(func(key string, value any) {
		if slices.Contains(ignored, key) {
			return
		}
		if stringableOnly && !IsStringable(value) {
			return
		}
		out.Set(key, value)
	})
	return out
}
