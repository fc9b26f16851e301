/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromGit(t *testing.T) {
	tests := []struct {
		name   string
		tag    string
		commit string
		dirty  bool
		want   string
	}{
		{"tag and commit", "v1.2.0", "abcdef0123456", false, "v1.2.0-abcdef0"},
		{"describe output keeps tag", "v1.2.0-3-gabcdef0", "abcdef0123456", false, "v1.2.0-3-gabcdef0"},
		{"dirty", "v1.2.0", "abc", true, "v1.2.0-abc-dirty"},
		{"empty commit", "v1.2.0", "", false, "v1.2.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fromGit(tt.tag, tt.commit, tt.dirty))
		})
	}
}

func TestGet_LdflagsWin(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })

	Version = "v9.9.9"
	assert.Equal(t, "v9.9.9", Get())
	assert.Equal(t, "v9.9.9", Info().Version)
}
