// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package split

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/pdiddy/spread-splitter/pkg/types"
)

// Side identifies which half of a source page an image came from.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Half is one vertical half of a rasterized source page.
type Half struct {
	// Page is the 1-based source page number.
	Page  int
	Side  Side
	Image *image.RGBA
}

// SplitImage cuts img at the horizontal midpoint W/2 (floor). The left half
// covers columns [0, W/2) and the right half [W/2, W). Under
// OddWidthPreserve an odd width leaves the right half one column wider;
// OddWidthTrim drops the last column instead. Both halves are copied into
// fresh buffers anchored at (0,0).
func SplitImage(img image.Image, policy types.OddWidthPolicy) (left, right *image.RGBA, err error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 2 || h < 1 {
		return nil, nil, fmt.Errorf("bitmap %dx%d too small to split", w, h)
	}

	mid := w / 2
	end := w
	if policy == types.OddWidthTrim && w%2 == 1 {
		end = w - 1
	}

	left = crop(img, image.Rect(b.Min.X, b.Min.Y, b.Min.X+mid, b.Max.Y))
	right = crop(img, image.Rect(b.Min.X+mid, b.Min.Y, b.Min.X+end, b.Max.Y))
	return left, right, nil
}

func crop(src image.Image, r image.Rectangle) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), src, r.Min, draw.Src)
	return dst
}
