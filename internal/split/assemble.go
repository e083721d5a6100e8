// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package split

import (
	"fmt"
	"os"

	"github.com/signintech/gopdf"
)

const producer = "spread-splitter"

// Assemble writes a PDF at path with one page per handle, in order. Each
// page is exactly its handle's width x height in points and the image fills
// it from the origin. Nothing is written to path until every page has been
// drawn. Failures are returned as *WriteError.
func Assemble(path string, handles []Handle, title string) error {
	if len(handles) == 0 {
		return ErrEmptyOutput
	}

	pdf := &gopdf.GoPdf{}
	first := pageRect(handles[0])
	pdf.Start(gopdf.Config{PageSize: *first})
	pdf.SetInfo(gopdf.PdfInfo{
		Title:    title,
		Creator:  producer,
		Producer: producer,
	})

	for _, h := range handles {
		if err := drawPage(pdf, h); err != nil {
			return &WriteError{Path: path, Err: fmt.Errorf("page %d %s half: %w", h.Page, h.Side, err)}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := pdf.Write(f); err != nil {
		f.Close()
		os.Remove(path)
		return &WriteError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

func drawPage(pdf *gopdf.GoPdf, h Handle) error {
	data, err := h.Bytes()
	if err != nil {
		return err
	}
	holder, err := gopdf.ImageHolderByBytes(data)
	if err != nil {
		return fmt.Errorf("loading image: %w", err)
	}

	rect := pageRect(h)
	pdf.AddPageWithOption(gopdf.PageOption{PageSize: rect})
	if err := pdf.ImageByHolder(holder, 0, 0, rect); err != nil {
		return fmt.Errorf("drawing image: %w", err)
	}
	return nil
}

// pageRect maps pixels one-to-one onto PDF points.
func pageRect(h Handle) *gopdf.Rect {
	return &gopdf.Rect{W: float64(h.Width), H: float64(h.Height)}
}
