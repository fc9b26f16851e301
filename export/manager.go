/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package export resolves named export formats to configured driver
// instances.
package export

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"bennypowers.dev/exporter/export/driver"
	"bennypowers.dev/exporter/export/driver/csv"
	"bennypowers.dev/exporter/export/driver/xml"
	"bennypowers.dev/exporter/internal/logger"
	"bennypowers.dev/exporter/resource"
)

// OnDemand is the format name reported for exporters created by Build.
const OnDemand = "ondemand"

// Factory creates a driver instance from its format configuration.
type Factory func(m *Manager, config driver.Config) (driver.Exporter, error)

// ConfigSource supplies format configuration to a Manager.
type ConfigSource interface {
	// DefaultFormat returns the format used when none is named.
	DefaultFormat() string

	// FormatConfig returns the configuration of a named format, including
	// its "driver" key, or nil if the format is not configured.
	FormatConfig(name string) driver.Config
}

var builtinDrivers = map[string]Factory{
	csv.DriverName: func(_ *Manager, config driver.Config) (driver.Exporter, error) {
		return csv.New(config), nil
	},
	xml.DriverName: func(_ *Manager, config driver.Config) (driver.Exporter, error) {
		return xml.New(config), nil
	},
}

// Manager resolves format names to driver instances and caches them.
// It is safe for concurrent use.
type Manager struct {
	source  ConfigSource
	metrics *Metrics

	mu        sync.Mutex
	exporters map[string]driver.Exporter
	custom    map[string]Factory
}

// Option configures a Manager.
type Option func(*Manager)

// WithMetrics records resolutions and forwarded exports in m.
func WithMetrics(m *Metrics) Option {
	return func(mgr *Manager) {
		mgr.metrics = m
	}
}

// NewManager creates a manager reading format configuration from source.
func NewManager(source ConfigSource, opts ...Option) *Manager {
	m := &Manager{
		source:    source,
		exporters: make(map[string]driver.Exporter),
		custom:    make(map[string]Factory),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// DefaultFormat returns the configured default format name.
func (m *Manager) DefaultFormat() string {
	return m.source.DefaultFormat()
}

// Format returns the exporter for a named format, resolving and caching it
// on first use. An empty name selects the default format. Repeated calls
// return the same instance until it is forgotten or purged.
func (m *Manager) Format(name string) (driver.Exporter, error) {
	if name == "" {
		name = m.DefaultFormat()
	}

	m.mu.Lock()
	cached, ok := m.exporters[name]
	m.mu.Unlock()
	if ok {
		return cached, nil
	}

	// Factories may call back into the manager, so they run unlocked.
	e, err := m.resolve(name, m.source.FormatConfig(name))
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if cached, ok := m.exporters[name]; ok {
		return cached, nil
	}
	m.exporters[name] = e
	logger.Debug("cached exporter [%s]", name)
	return e, nil
}

// Build creates an uncached exporter from an explicit configuration. A nil
// config builds the default format's driver with no extra options.
func (m *Manager) Build(config driver.Config) (driver.Exporter, error) {
	if config == nil {
		config = driver.Config{driver.DriverKey: m.defaultDriver()}
	}
	return m.resolve(OnDemand, config)
}

// defaultDriver returns the driver id of the default format, falling back to
// the format name itself.
func (m *Manager) defaultDriver() string {
	name := m.DefaultFormat()
	if id := m.source.FormatConfig(name).Driver(); id != "" {
		return id
	}
	return name
}

func (m *Manager) resolve(name string, config driver.Config) (driver.Exporter, error) {
	id := config.Driver()
	if id == "" {
		return nil, &ConfigurationError{Format: name}
	}

	m.mu.Lock()
	factory, isCustom := m.custom[id]
	m.mu.Unlock()

	source := "custom"
	if !isCustom {
		var ok bool
		if factory, ok = builtinDrivers[id]; !ok {
			return nil, &UnsupportedDriverError{Driver: id}
		}
		source = "builtin"
	}

	e, err := factory(m, config)
	if err != nil {
		return nil, fmt.Errorf("creating %s driver for [%s]: %w", id, name, err)
	}
	if e == nil {
		return nil, fmt.Errorf("%w: %s driver for [%s] returned no exporter", ErrConfiguration, id, name)
	}

	logger.Debug("resolved exporter [%s] using %s driver %s", name, source, id)
	m.metrics.resolved(id, source)
	return e, nil
}

// Extend registers a factory for a driver id. Registered factories take
// precedence over built-in drivers with the same id.
func (m *Manager) Extend(driverID string, factory Factory) *Manager {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.custom[driverID] = factory
	return m
}

// Set caches an exporter under a format name, replacing any prior entry.
func (m *Manager) Set(name string, e driver.Exporter) *Manager {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.exporters[name] = e
	return m
}

// Forget evicts the named exporters from the cache.
func (m *Manager) Forget(names ...string) *Manager {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, name := range names {
		delete(m.exporters, name)
	}
	return m
}

// Purge evicts a single cached exporter. An empty name selects the default
// format.
func (m *Manager) Purge(name string) {
	if name == "" {
		name = m.DefaultFormat()
	}
	m.Forget(name)
}

// Drivers returns the sorted ids of all resolvable drivers.
func (m *Manager) Drivers() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := slices.Collect(maps.Keys(builtinDrivers))
	for id := range m.custom {
		if !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// Cached returns the sorted names of cached exporters.
func (m *Manager) Cached() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Sorted(maps.Keys(m.exporters))
}

// ExportItemAs exports a resource with the named format's exporter.
func (m *Manager) ExportItemAs(name string, r resource.Resource) (string, error) {
	e, err := m.Format(name)
	if err != nil {
		return "", err
	}
	out, err := e.ExportItem(r)
	m.metrics.exported(m.formatLabel(name), "item", err)
	return out, err
}

// ExportCollectionAs exports a collection with the named format's exporter.
func (m *Manager) ExportCollectionAs(name string, c resource.Collection) (string, error) {
	e, err := m.Format(name)
	if err != nil {
		return "", err
	}
	out, err := e.ExportCollection(c)
	m.metrics.exported(m.formatLabel(name), "collection", err)
	return out, err
}

func (m *Manager) formatLabel(name string) string {
	if name == "" {
		return m.DefaultFormat()
	}
	return name
}
