/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package driver

import (
	"fmt"

	"github.com/spf13/cast"
)

// IsStringable reports whether v can be written as text without structural
// interpretation: non-nil scalars and values implementing fmt.Stringer.
func IsStringable(v any) bool {
	switch v.(type) {
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64,
		fmt.Stringer:
		return true
	default:
		return false
	}
}

// ToString returns the canonical text of a stringable value.
func ToString(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return cast.ToString(v)
}
