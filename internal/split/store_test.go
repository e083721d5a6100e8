// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package split

import (
	"bytes"
	"errors"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/spread-splitter/pkg/types"
)

func testHalf(page int, side Side, w, h int) Half {
	return Half{Page: page, Side: side, Image: spread(w, h)}
}

func TestNewStore(t *testing.T) {
	cfg := types.DefaultSplitConfig()

	s, err := NewStore(cfg)
	require.NoError(t, err)
	assert.IsType(t, &memoryStore{}, s)

	cfg.Spill = true
	s, err = NewStore(cfg)
	require.NoError(t, err)
	assert.IsType(t, &spillStore{}, s)

	cfg = types.DefaultSplitConfig()
	cfg.SpillDir = filepath.Join(t.TempDir(), "nested", "spill")
	s, err = NewStore(cfg)
	require.NoError(t, err)
	assert.IsType(t, &spillStore{}, s)
	assert.DirExists(t, cfg.SpillDir)
}

func TestMemoryStore_Put(t *testing.T) {
	s := &memoryStore{quality: types.DefaultJPEGQuality}

	h, err := s.Put(testHalf(3, SideRight, 40, 30))
	require.NoError(t, err)

	assert.Equal(t, 3, h.Page)
	assert.Equal(t, SideRight, h.Side)
	assert.Equal(t, 40, h.Width)
	assert.Equal(t, 30, h.Height)
	assert.Empty(t, h.Path)

	data, err := h.Bytes()
	require.NoError(t, err)
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Width)
	assert.Equal(t, 30, cfg.Height)

	assert.Empty(t, s.Cleanup())
}

func TestMemoryStore_Deterministic(t *testing.T) {
	s := &memoryStore{quality: types.DefaultJPEGQuality}

	a, err := s.Put(testHalf(1, SideLeft, 32, 16))
	require.NoError(t, err)
	b, err := s.Put(testHalf(1, SideLeft, 32, 16))
	require.NoError(t, err)

	da, _ := a.Bytes()
	db, _ := b.Bytes()
	assert.Equal(t, da, db)
}

func TestSpillStore_UniqueFilesAndCleanup(t *testing.T) {
	dir := t.TempDir()
	s := &spillStore{dir: dir, quality: types.DefaultJPEGQuality}

	seen := map[string]bool{}
	for i := 0; i < 6; i++ {
		h, err := s.Put(testHalf(i/2+1, SideLeft, 8, 8))
		require.NoError(t, err)
		require.NotEmpty(t, h.Path)
		assert.Equal(t, dir, filepath.Dir(h.Path))
		assert.False(t, seen[h.Path], "duplicate transient file %s", h.Path)
		seen[h.Path] = true

		data, err := h.Bytes()
		require.NoError(t, err)
		_, err = jpeg.DecodeConfig(bytes.NewReader(data))
		require.NoError(t, err)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 6)

	assert.Empty(t, s.Cleanup())

	entries, err = os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSpillStore_CleanupWarning(t *testing.T) {
	dir := t.TempDir()
	s := &spillStore{dir: dir, quality: types.DefaultJPEGQuality}

	stuck, err := s.Put(testHalf(1, SideLeft, 8, 8))
	require.NoError(t, err)
	gone, err := s.Put(testHalf(1, SideRight, 8, 8))
	require.NoError(t, err)
	ok, err := s.Put(testHalf(2, SideLeft, 8, 8))
	require.NoError(t, err)

	// Replace one transient file with a non-empty directory so it cannot be
	// removed, and delete another ahead of time.
	require.NoError(t, os.Remove(stuck.Path))
	require.NoError(t, os.MkdirAll(filepath.Join(stuck.Path, "child"), 0o755))
	require.NoError(t, os.Remove(gone.Path))

	errs := s.Cleanup()
	require.Len(t, errs, 1)

	var w *CleanupWarning
	require.True(t, errors.As(errs[0], &w))
	assert.Equal(t, stuck.Path, w.Path)
	assert.ErrorIs(t, errs[0], ErrCleanup)

	assert.NoFileExists(t, ok.Path)
}

func TestHandle_BytesMissingFile(t *testing.T) {
	h := Handle{Path: filepath.Join(t.TempDir(), "missing.jpg")}
	_, err := h.Bytes()
	assert.ErrorContains(t, err, "reading transient file")
}
