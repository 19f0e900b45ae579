// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsx

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExistsFS(t *testing.T) {
	fsys := fstest.MapFS{
		"data/cube.obj": {Data: []byte("v 0 0 0\n")},
	}
	ok, err := FileExistsFS(fsys, "data/cube.obj")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = FileExistsFS(fsys, "data")
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = FileExistsFS(fsys, "missing.obj")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestDirFSAndFind(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "uvmap.dds")
	require.NoError(t, os.WriteFile(fn, []byte("DDS "), 0o644))

	dfs, name, err := DirFS(fn)
	require.NoError(t, err)
	assert.Equal(t, "uvmap.dds", name)
	ok, err := FileExistsFS(dfs, name)
	assert.NoError(t, err)
	assert.True(t, ok)

	found := FindFilesOnPaths([]string{t.TempDir(), dir}, "uvmap.dds", "other.dds")
	require.Len(t, found, 1)
	assert.Equal(t, fn, found[0])
}
