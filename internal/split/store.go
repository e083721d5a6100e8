// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package split

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"os"

	"github.com/pdiddy/spread-splitter/pkg/types"
)

// spillPattern names transient files; os.CreateTemp replaces the * with a
// unique suffix.
const spillPattern = "spread-*.jpg"

// Handle refers to one encoded half-image and carries the dimensions its
// output page must have.
type Handle struct {
	Page   int
	Side   Side
	Width  int
	Height int

	// Path is set when the encoded bytes live in a transient file.
	Path string
	data []byte
}

// Bytes returns the JPEG-encoded half.
func (h Handle) Bytes() ([]byte, error) {
	if h.Path == "" {
		return h.data, nil
	}
	data, err := os.ReadFile(h.Path)
	if err != nil {
		return nil, fmt.Errorf("reading transient file: %w", err)
	}
	return data, nil
}

// Store persists encoded halves until the output document is assembled.
type Store interface {
	// Put encodes h and returns a handle for later retrieval.
	Put(h Half) (Handle, error)

	// Cleanup releases everything Put created. Each failure is returned
	// as a *CleanupWarning; none of them stops the remaining deletions.
	Cleanup() []error
}

// NewStore returns the spill store when cfg asks for transient files and
// the in-memory store otherwise.
func NewStore(cfg types.SplitConfig) (Store, error) {
	if !cfg.Spill && cfg.SpillDir == "" {
		return &memoryStore{quality: cfg.JPEGQuality}, nil
	}
	if cfg.SpillDir != "" {
		if err := os.MkdirAll(cfg.SpillDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating spill directory %s: %w", cfg.SpillDir, err)
		}
	}
	return &spillStore{dir: cfg.SpillDir, quality: cfg.JPEGQuality}, nil
}

func encodeJPEG(h Half, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, h.Image, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encoding %s half: %w", h.Side, err)
	}
	return buf.Bytes(), nil
}

func newHandle(h Half) Handle {
	b := h.Image.Bounds()
	return Handle{Page: h.Page, Side: h.Side, Width: b.Dx(), Height: b.Dy()}
}

// memoryStore keeps encoded halves in memory; the assembler takes them
// directly, so there is nothing to clean up.
type memoryStore struct {
	quality int
}

func (s *memoryStore) Put(h Half) (Handle, error) {
	data, err := encodeJPEG(h, s.quality)
	if err != nil {
		return Handle{}, err
	}
	handle := newHandle(h)
	handle.data = data
	return handle, nil
}

func (s *memoryStore) Cleanup() []error { return nil }

// spillStore writes each encoded half to its own transient file.
type spillStore struct {
	dir     string
	quality int
	paths   []string
}

func (s *spillStore) Put(h Half) (Handle, error) {
	data, err := encodeJPEG(h, s.quality)
	if err != nil {
		return Handle{}, err
	}

	f, err := os.CreateTemp(s.dir, spillPattern)
	if err != nil {
		return Handle{}, fmt.Errorf("creating transient file: %w", err)
	}
	// Track the file before writing so Cleanup removes partial writes too.
	s.paths = append(s.paths, f.Name())

	if _, err := f.Write(data); err != nil {
		f.Close()
		return Handle{}, fmt.Errorf("writing transient file %s: %w", f.Name(), err)
	}
	if err := f.Close(); err != nil {
		return Handle{}, fmt.Errorf("closing transient file %s: %w", f.Name(), err)
	}

	handle := newHandle(h)
	handle.Path = f.Name()
	return handle, nil
}

func (s *spillStore) Cleanup() []error {
	var errs []error
	for _, p := range s.paths {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			errs = append(errs, &CleanupWarning{Path: p, Err: err})
		}
	}
	s.paths = nil
	return errs
}
