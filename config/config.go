/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for exporter formats.
package config

import (
	"maps"
	"slices"

	"bennypowers.dev/exporter/export/driver"
	"bennypowers.dev/exporter/export/driver/csv"
	"bennypowers.dev/exporter/export/driver/xml"
)

// DefaultAlias is the conventional short name for the export manager.
const DefaultAlias = "exporter"

// Config represents the exporter configuration.
type Config struct {
	// Default is the format used when none is named.
	Default string `yaml:"default" json:"default" mapstructure:"default"`

	// Exporters maps format names to driver configuration. Each entry
	// needs a "driver" key; other keys are driver options.
	Exporters map[string]driver.Config `yaml:"exporters" json:"exporters" mapstructure:"exporters"`

	// Alias is the short name under which the manager is registered.
	Alias string `yaml:"alias" json:"alias" mapstructure:"alias"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Default: csv.DriverName,
		Exporters: map[string]driver.Config{
			csv.DriverName: {driver.DriverKey: csv.DriverName},
			xml.DriverName: {driver.DriverKey: xml.DriverName},
		},
		Alias: DefaultAlias,
	}
}

// DefaultFormat returns the configured default format name.
func (c *Config) DefaultFormat() string {
	return c.Default
}

// FormatConfig returns a copy of the named format's configuration,
// or nil if the format is not configured.
func (c *Config) FormatConfig(name string) driver.Config {
	cfg, ok := c.Exporters[name]
	if !ok {
		return nil
	}
	return maps.Clone(cfg)
}

// Formats returns the sorted names of configured formats.
func (c *Config) Formats() []string {
	return slices.Sorted(maps.Keys(c.Exporters))
}
