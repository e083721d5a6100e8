// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package split

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/spread-splitter/internal/inspect"
	"github.com/pdiddy/spread-splitter/pkg/types"
)

func putAll(t *testing.T, s Store, halves ...Half) []Handle {
	t.Helper()
	handles := make([]Handle, 0, len(halves))
	for _, h := range halves {
		handle, err := s.Put(h)
		require.NoError(t, err)
		handles = append(handles, handle)
	}
	return handles
}

func TestAssemble_PerHalfPageSize(t *testing.T) {
	s := &memoryStore{quality: types.DefaultJPEGQuality}
	// Source pages of different sizes: each output page keeps its own size.
	handles := putAll(t, s,
		testHalf(1, SideLeft, 300, 400),
		testHalf(1, SideRight, 301, 400),
		testHalf(2, SideLeft, 120, 90),
		testHalf(2, SideRight, 120, 90),
	)

	out := filepath.Join(t.TempDir(), "out.pdf")
	require.NoError(t, Assemble(out, handles, "scan"))

	report, err := inspect.Inspect(out)
	require.NoError(t, err)
	require.Equal(t, 4, report.PageCount)

	want := [][2]float64{{300, 400}, {301, 400}, {120, 90}, {120, 90}}
	for i, w := range want {
		assert.InDelta(t, w[0], report.Pages[i].Width, 0.01, "page %d width", i+1)
		assert.InDelta(t, w[1], report.Pages[i].Height, 0.01, "page %d height", i+1)
	}
}

func TestAssemble_FromSpillStore(t *testing.T) {
	s := &spillStore{dir: t.TempDir(), quality: types.DefaultJPEGQuality}
	handles := putAll(t, s, testHalf(1, SideLeft, 50, 60), testHalf(1, SideRight, 50, 60))

	out := filepath.Join(t.TempDir(), "out.pdf")
	require.NoError(t, Assemble(out, handles, "scan"))

	n, err := inspect.PageCount(out)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Empty(t, s.Cleanup())
}

func TestAssemble_Empty(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.pdf")
	err := Assemble(out, nil, "scan")
	assert.ErrorIs(t, err, ErrEmptyOutput)
	assert.NoFileExists(t, out)
}

func TestAssemble_WriteError(t *testing.T) {
	s := &memoryStore{quality: types.DefaultJPEGQuality}
	handles := putAll(t, s, testHalf(1, SideLeft, 10, 10))

	out := filepath.Join(t.TempDir(), "missing-dir", "out.pdf")
	err := Assemble(out, handles, "scan")

	var we *WriteError
	require.True(t, errors.As(err, &we))
	assert.Equal(t, out, we.Path)
	assert.ErrorIs(t, err, ErrWrite)
	assert.NoFileExists(t, out)
}

func TestAssemble_UnreadableHandle(t *testing.T) {
	handles := []Handle{{Page: 1, Side: SideLeft, Width: 10, Height: 10, Path: filepath.Join(t.TempDir(), "gone.jpg")}}

	out := filepath.Join(t.TempDir(), "out.pdf")
	err := Assemble(out, handles, "scan")

	assert.ErrorIs(t, err, ErrWrite)
	assert.ErrorContains(t, err, "page 1 left half")
	assert.NoFileExists(t, out)
}
