// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package inspect reads page counts and page dimensions from PDF files.
// It is used to verify split output and backs the inspect subcommand.
package inspect

import (
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"go.yaml.in/yaml/v3"
)

// PageSize is the media box of one page in PDF points.
type PageSize struct {
	Page   int     `json:"page" yaml:"page"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Report describes a PDF file.
type Report struct {
	Path      string     `json:"path" yaml:"path"`
	PageCount int        `json:"page_count" yaml:"page_count"`
	Pages     []PageSize `json:"pages" yaml:"pages"`
}

// PageCount returns the number of pages in the PDF at path.
func PageCount(path string) (int, error) {
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("counting pages in %s: %w", path, err)
	}
	return n, nil
}

// Inspect returns the page count and the size of every page.
func Inspect(path string) (Report, error) {
	n, err := PageCount(path)
	if err != nil {
		return Report{}, err
	}

	dims, err := api.PageDimsFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("reading page dimensions of %s: %w", path, err)
	}

	r := Report{Path: path, PageCount: n, Pages: make([]PageSize, len(dims))}
	for i, d := range dims {
		r.Pages[i] = PageSize{Page: i + 1, Width: d.Width, Height: d.Height}
	}
	return r, nil
}

// WriteText prints r as an aligned table.
func WriteText(w io.Writer, r Report) error {
	if _, err := fmt.Fprintf(w, "%s: %d pages\n", r.Path, r.PageCount); err != nil {
		return err
	}
	for _, p := range r.Pages {
		if _, err := fmt.Fprintf(w, "  page %-4d %8.2f x %-8.2f pt\n", p.Page, p.Width, p.Height); err != nil {
			return err
		}
	}
	return nil
}

// WriteYAML encodes r as YAML.
func WriteYAML(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return enc.Close()
}
