/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package driver

import "github.com/spf13/cast"

// DriverKey is the configuration key naming the driver that serves a format.
const DriverKey = "driver"

// Config maps option names to values for a single driver instance.
type Config map[string]any

// Driver returns the configured driver id, or "" if none is set.
func (c Config) Driver() string {
	return c.String(DriverKey)
}

// Has reports whether key is set to a non-nil value.
func (c Config) Has(key string) bool {
	v, ok := c[key]
	return ok && v != nil
}

// String returns the option as a string. Missing, nil or unconvertible
// values yield "".
func (c Config) String(key string) string {
	s, err := cast.ToStringE(c[key])
	if err != nil {
		return ""
	}
	return s
}

// Bool returns the option as a bool. Strings such as "false" and "0"
// are interpreted; missing or unconvertible values yield false.
func (c Config) Bool(key string) bool {
	b, err := cast.ToBoolE(c[key])
	if err != nil {
		return false
	}
	return b
}
