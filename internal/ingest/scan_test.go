package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o644))
}

func names(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.Base(p)
	}
	return out
}

func TestScan_SortedPDFsOnly(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.pdf"))
	touch(t, filepath.Join(dir, "a.pdf"))
	touch(t, filepath.Join(dir, "C.PDF"))
	touch(t, filepath.Join(dir, "notes.txt"))

	s := &Scanner{SkipHidden: true}
	paths, stats, err := s.Scan(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"C.PDF", "a.pdf", "b.pdf"}, names(paths))
	for _, p := range paths {
		assert.True(t, filepath.IsAbs(p))
	}
	assert.Equal(t, uint32(3), stats.Matched)
	assert.Equal(t, uint32(4), stats.Scanned)
}

func TestScan_HiddenEntriesSkipped(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "visible.pdf"))
	touch(t, filepath.Join(dir, ".hidden.pdf"))

	s := &Scanner{SkipHidden: true}
	paths, _, err := s.Scan(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"visible.pdf"}, names(paths))
}

func TestScan_NonRecursiveIgnoresSubfolders(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "top.pdf"))
	touch(t, filepath.Join(dir, "sub", "nested.pdf"))

	s := &Scanner{}
	paths, _, err := s.Scan(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"top.pdf"}, names(paths))
}

func TestScan_RecursiveWalksSubfolders(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "top.pdf"))
	touch(t, filepath.Join(dir, "sub", "nested.pdf"))
	touch(t, filepath.Join(dir, ".git", "object.pdf"))

	s := &Scanner{Recursive: true, SkipHidden: true}
	paths, stats, err := s.Scan(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"nested.pdf", "top.pdf"}, names(paths))
	assert.Equal(t, uint32(2), stats.Matched)
}

func TestScan_EmptyRootIsAnError(t *testing.T) {
	s := &Scanner{}
	_, _, err := s.Scan("   ")
	require.Error(t, err)
}

func TestScan_MissingRootIsAnError(t *testing.T) {
	s := &Scanner{}
	_, _, err := s.Scan(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden("/in/.hidden.pdf"))
	assert.False(t, IsHidden("/in/visible.pdf"))
}
