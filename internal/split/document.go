// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package split

import (
	"fmt"
	"image"
	"os"

	"github.com/gen2brain/go-fitz"
)

// nativeDPI is the resolution of one PDF point.
const nativeDPI = 72.0

// Document is an opened source document with random page access.
// Page indexes are zero-based.
type Document interface {
	// NumPage returns the number of pages.
	NumPage() int

	// Render rasterizes page i at zoom times its native size.
	Render(i int, zoom float64) (image.Image, error)

	// Close releases the document.
	Close() error
}

// Opener opens a source document by path.
type Opener func(path string) (Document, error)

// fitzDocument renders pages with MuPDF.
type fitzDocument struct {
	doc *fitz.Document
}

// OpenFitz opens a PDF with MuPDF. Missing, unreadable, and malformed files
// are reported as *OpenError.
func OpenFitz(path string) (Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &OpenError{Path: path, Err: fmt.Errorf("is a directory")}
	}

	doc, err := fitz.New(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	return &fitzDocument{doc: doc}, nil
}

func (d *fitzDocument) NumPage() int { return d.doc.NumPage() }

// Render returns an RGBA bitmap. MuPDF renders with fixed anti-aliasing, so
// the same page and zoom always produce the same pixels.
func (d *fitzDocument) Render(i int, zoom float64) (image.Image, error) {
	img, err := d.doc.ImageDPI(i, nativeDPI*zoom)
	if err != nil {
		return nil, fmt.Errorf("rendering at %.0f dpi: %w", nativeDPI*zoom, err)
	}
	return img, nil
}

func (d *fitzDocument) Close() error { return d.doc.Close() }
