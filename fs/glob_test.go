/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package fs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/exporter/fs"
	"bennypowers.dev/exporter/internal/mapfs"
)

func newTree() *mapfs.MapFileSystem {
	mfs := mapfs.New()
	mfs.AddFile("/project/data/users.yaml", "[]", 0644)
	mfs.AddFile("/project/data/orders.json", "[]", 0644)
	mfs.AddFile("/project/data/nested/items.yaml", "[]", 0644)
	mfs.AddFile("/project/notes.txt", "", 0644)
	return mfs
}

func TestExpand(t *testing.T) {
	mfs := newTree()

	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{
			name:     "plain path is passed through",
			patterns: []string{"data/missing.yaml"},
			want:     []string{"/project/data/missing.yaml"},
		},
		{
			name:     "single star",
			patterns: []string{"data/*.yaml"},
			want:     []string{"/project/data/users.yaml"},
		},
		{
			name:     "double star",
			patterns: []string{"data/**/*.yaml"},
			want:     []string{"/project/data/nested/items.yaml", "/project/data/users.yaml"},
		},
		{
			name:     "alternation",
			patterns: []string{"data/*.{json,yaml}"},
			want:     []string{"/project/data/orders.json", "/project/data/users.yaml"},
		},
		{
			name:     "duplicates dropped",
			patterns: []string{"data/users.yaml", "data/*.yaml"},
			want:     []string{"/project/data/users.yaml"},
		},
		{
			name:     "absolute pattern",
			patterns: []string{"/project/*.txt"},
			want:     []string{"/project/notes.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fs.Expand(mfs, "/project", tt.patterns...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpand_NoMatches(t *testing.T) {
	got, err := fs.Expand(newTree(), "/project", "data/*.csv")
	require.NoError(t, err)
	assert.Empty(t, got)
}
