//go:build unix

package fsmeta

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOS_LstatAndStat(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(file, []byte("0123456789"), 0o644))
	link := filepath.Join(dir, "data.lnk")
	require.NoError(t, os.Symlink(file, link))

	fsys := OS()

	info, err := fsys.Lstat(file)
	require.NoError(t, err)
	assert.True(t, info.IsRegular())
	assert.False(t, info.IsSymlink())
	assert.Equal(t, int64(10), info.Size)
	assert.Equal(t, uint64(1), info.Nlink)

	info, err = fsys.Lstat(link)
	require.NoError(t, err)
	assert.True(t, info.IsSymlink())

	info, err = fsys.Stat(link)
	require.NoError(t, err)
	assert.True(t, info.IsRegular())
	assert.Equal(t, int64(10), info.Size)

	info, err = fsys.Lstat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestOS_HardlinkCount(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	require.NoError(t, os.Link(file, filepath.Join(dir, "b")))

	info, err := OS().Lstat(file)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), info.Nlink)
}

func TestOS_Errors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	_, err := OS().Lstat(missing)
	require.Error(t, err)
	assert.True(t, IsNotExist(err))
	assert.False(t, IsPermission(err))

	_, err = OS().Lstat("")
	assert.True(t, IsNotExist(err))

	_, err = OS().OpenDir(missing)
	assert.True(t, IsNotExist(err))
}

func TestOS_OpenDir(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < readBatch+3; i++ {
		name := filepath.Join(dir, "f"+string(rune('A'+i%26))+string(rune('a'+i/26)))
		require.NoError(t, os.WriteFile(name, nil, 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	it, err := OS().OpenDir(dir)
	require.NoError(t, err)
	defer func() { _ = it.Close() }()

	regular, dirs := 0, 0
	for {
		e, err := it.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		if e.IsRegular() {
			regular++
		}
		if e.Type.IsDir() {
			dirs++
		}
	}
	assert.Equal(t, readBatch+3, regular)
	assert.Equal(t, 1, dirs)

	_, err = it.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadNames(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"one", "two", "Three"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), nil, 0o644))
	}

	names, err := ReadNames(OS(), dir)
	require.NoError(t, err)
	sort.Strings(names)
	assert.Equal(t, []string{"Three", "one", "two"}, names)

	_, err = ReadNames(OS(), filepath.Join(dir, "nope"))
	assert.Error(t, err)
}
