// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package split

import (
	"errors"
	"fmt"
)

var (
	ErrOpen    = errors.New("open failed")
	ErrRender  = errors.New("render failed")
	ErrWrite   = errors.New("write failed")
	ErrCleanup = errors.New("cleanup failed")

	// ErrEmptyOutput is returned when no page produced halves, so there is
	// nothing to assemble. No output file is written.
	ErrEmptyOutput = errors.New("no pages to write")

	// ErrUnexpected wraps a panic recovered outside the per-page step.
	ErrUnexpected = errors.New("unexpected failure")
)

// OpenError reports that the source document could not be opened.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("opening %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() []error { return []error{ErrOpen, e.Err} }

// RenderError reports that one page could not be rasterized, split, or
// stored. Page is 1-based.
type RenderError struct {
	Page int
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("page %d: %v", e.Page, e.Err)
}

func (e *RenderError) Unwrap() []error { return []error{ErrRender, e.Err} }

// WriteError reports that the output document could not be created,
// written, or verified.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() []error { return []error{ErrWrite, e.Err} }

// CleanupWarning reports a transient file that could not be deleted.
// It is logged and never fails a run.
type CleanupWarning struct {
	Path string
	Err  error
}

func (e *CleanupWarning) Error() string {
	return fmt.Sprintf("removing transient file %s: %v", e.Path, e.Err)
}

func (e *CleanupWarning) Unwrap() []error { return []error{ErrCleanup, e.Err} }
