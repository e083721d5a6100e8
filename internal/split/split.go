// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package split turns a PDF of scanned two-page spreads into a PDF with one
// page per half. Each source page is rasterized, cut at its horizontal
// midpoint, and both halves are JPEG-encoded and reassembled as pages sized
// to the half. A page that fails is logged and skipped; the run continues.
//
// The pipeline is strictly sequential:
//
//	opened -> processing_page* -> assembling -> finalized -> cleaned
package split

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/spread-splitter/internal/inspect"
	"github.com/pdiddy/spread-splitter/pkg/types"
)

// PageResult is the outcome of processing one source page. Exactly one of
// Handles (left then right) or Err is set.
type PageResult struct {
	Page    int
	Handles []Handle
	Err     error
}

// Summary holds the counts from one split run.
type Summary struct {
	SourcePages  int
	SplitPages   int
	SkippedPages int
	OutputPages  int

	// Skipped lists the 1-based numbers of pages that failed.
	Skipped  []int
	Duration time.Duration
}

// Status classifies the run for the history ledger.
func (s Summary) Status() types.RunStatus {
	if s.SkippedPages > 0 {
		return types.RunPartial
	}
	return types.RunSucceeded
}

// Splitter runs the split pipeline with a fixed configuration.
type Splitter struct {
	cfg  types.SplitConfig
	open Opener
	log  logrus.FieldLogger

	// countPages re-reads the output when cfg.Verify is set.
	countPages func(path string) (int, error)
	newStore   func(cfg types.SplitConfig) (Store, error)
}

// NewSplitter validates cfg and returns a Splitter that opens documents
// with open (OpenFitz in production).
func NewSplitter(cfg types.SplitConfig, open Opener, log logrus.FieldLogger) (*Splitter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid split config: %w", err)
	}
	return &Splitter{
		cfg:        cfg,
		open:       open,
		log:        log,
		countPages: inspect.PageCount,
		newStore:   NewStore,
	}, nil
}

// Run splits every page of the PDF at in and writes the result to out.
// Open and write failures end the run; page failures are skipped. A run in
// which no page could be split returns ErrEmptyOutput without writing out.
// Transient files are removed on every path. A panic outside the per-page
// step is returned as an error wrapping ErrUnexpected.
func (s *Splitter) Run(ctx context.Context, in, out string) (summary Summary, err error) {
	start := time.Now()
	log := s.log.WithFields(logrus.Fields{"input": in, "output": out})

	// Registered first so it runs after the close and cleanup defers.
	defer func() {
		summary.Duration = time.Since(start)
		if r := recover(); r != nil {
			log.WithField("stack", string(debug.Stack())).Debug("Exception details")
			err = fmt.Errorf("%w: %v", ErrUnexpected, r)
		}
	}()

	doc, err := s.open(in)
	if err != nil {
		var oe *OpenError
		if !errors.As(err, &oe) {
			err = &OpenError{Path: in, Err: err}
		}
		return summary, err
	}
	defer func() {
		if cerr := doc.Close(); cerr != nil {
			log.WithError(cerr).Warn("Could not close source document")
		}
	}()

	summary.SourcePages = doc.NumPage()
	log.WithField("pages", summary.SourcePages).Debug("Opened source document")

	store, err := s.newStore(s.cfg)
	if err != nil {
		return summary, err
	}
	defer func() {
		for _, w := range store.Cleanup() {
			log.WithError(w).Warn("Could not remove transient file")
		}
		log.Debug("Cleaned up transient files")
	}()

	var handles []Handle
	for i := 0; i < summary.SourcePages; i++ {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		res := s.processPage(log, doc, store, i)
		if res.Err != nil {
			log.WithError(res.Err).WithField("page", res.Page).
				Errorf("Error processing page %d", res.Page)
			summary.Skipped = append(summary.Skipped, res.Page)
			continue
		}
		handles = append(handles, res.Handles...)
		summary.SplitPages++
	}
	summary.SkippedPages = len(summary.Skipped)

	if len(handles) == 0 {
		return summary, fmt.Errorf("%s has %d page(s), %d split: %w",
			in, summary.SourcePages, summary.SplitPages, ErrEmptyOutput)
	}

	log.WithField("pages", len(handles)).Debug("Assembling output document")
	if err := Assemble(out, handles, documentTitle(in)); err != nil {
		return summary, err
	}
	summary.OutputPages = len(handles)

	if s.cfg.Verify {
		if err := s.verify(out, summary.OutputPages); err != nil {
			os.Remove(out)
			return summary, err
		}
	}

	log.Infof("Successfully split %s into %s", in, out)
	log.Infof("Total pages in output PDF: %d", summary.OutputPages)
	return summary, nil
}

// processPage renders, splits, and stores page i. Any failure, including a
// renderer panic, yields a *RenderError and no handles.
func (s *Splitter) processPage(log logrus.FieldLogger, doc Document, store Store, i int) (res PageResult) {
	page := i + 1
	res.Page = page

	defer func() {
		if r := recover(); r != nil {
			res.Handles = nil
			res.Err = &RenderError{Page: page, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	log.Infof("Processing page %d", page)

	img, err := doc.Render(i, s.cfg.Zoom)
	if err != nil {
		return PageResult{Page: page, Err: &RenderError{Page: page, Err: err}}
	}

	left, right, err := SplitImage(img, s.cfg.OddWidth)
	if err != nil {
		return PageResult{Page: page, Err: &RenderError{Page: page, Err: err}}
	}

	for _, h := range []Half{
		{Page: page, Side: SideLeft, Image: left},
		{Page: page, Side: SideRight, Image: right},
	} {
		handle, err := store.Put(h)
		if err != nil {
			return PageResult{Page: page, Err: &RenderError{Page: page, Err: err}}
		}
		res.Handles = append(res.Handles, handle)
	}

	log.Infof("Split page %d into two halves", page)
	return res
}

func (s *Splitter) verify(out string, want int) error {
	got, err := s.countPages(out)
	if err != nil {
		return &WriteError{Path: out, Err: fmt.Errorf("verifying output: %w", err)}
	}
	if got != want {
		return &WriteError{Path: out, Err: fmt.Errorf("output has %d pages, want %d", got, want)}
	}
	return nil
}

func documentTitle(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
