/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"bennypowers.dev/exporter/fs"
	"bennypowers.dev/exporter/internal/logger"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "exporter"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// Environment variables that override file configuration.
const (
	EnvDefault = "DEFAULT_EXPORTER"
	EnvAlias   = "EXPORTER_ALIAS"
)

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// Load reads .config/exporter.{yaml,yml,json} from rootDir over the
// defaults, then applies environment overrides. A missing file is not an
// error. Keys are case-insensitive, so format names are lowercased.
func Load(filesystem fs.FileSystem, rootDir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if err := v.BindEnv("default", EnvDefault); err != nil {
		return nil, err
	}
	if err := v.BindEnv("alias", EnvAlias); err != nil {
		return nil, err
	}

	if path, ok := findConfigFile(filesystem, rootDir); ok {
		data, err := filesystem.ReadFile(path)
		if err != nil {
			return nil, err
		}
		v.SetConfigType(strings.TrimPrefix(filepath.Ext(path), "."))
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		logger.Debug("loaded config from %s", path)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault returns config or defaults if it cannot be loaded.
func LoadOrDefault(filesystem fs.FileSystem, rootDir string) *Config {
	cfg, err := Load(filesystem, rootDir)
	if err != nil {
		logger.Warn("using default config: %v", err)
		return Default()
	}
	return cfg
}

func findConfigFile(filesystem fs.FileSystem, rootDir string) (string, bool) {
	for _, ext := range configExtensions {
		path := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if filesystem.Exists(path) {
			return path, true
		}
	}
	return "", false
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("default", d.Default)
	v.SetDefault("alias", d.Alias)
	for name, cfg := range d.Exporters {
		for key, value := range cfg {
			v.SetDefault("exporters."+name+"."+key, value)
		}
	}
}
