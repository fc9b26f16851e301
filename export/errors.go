/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package export

import (
	"errors"
	"fmt"
)

// Sentinel errors for exporter resolution.
var (
	// ErrConfiguration indicates a format has no configured driver.
	ErrConfiguration = errors.New("exporter configuration error")

	// ErrUnsupportedDriver indicates a driver id has neither a built-in
	// implementation nor a registered factory.
	ErrUnsupportedDriver = errors.New("unsupported exporter driver")
)

// ConfigurationError reports a format whose configuration lacks a driver.
type ConfigurationError struct {
	Format string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("exporter [%s] does not have a configured driver", e.Format)
}

// Unwrap returns ErrConfiguration.
func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// UnsupportedDriverError reports a driver id that cannot be resolved.
type UnsupportedDriverError struct {
	Driver string
}

func (e *UnsupportedDriverError) Error() string {
	return fmt.Sprintf("driver [%s] is not supported", e.Driver)
}

// Unwrap returns ErrUnsupportedDriver.
func (e *UnsupportedDriverError) Unwrap() error { return ErrUnsupportedDriver }
