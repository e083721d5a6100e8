// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// OddWidthPolicy controls how a page bitmap with an odd pixel width is split.
type OddWidthPolicy string

const (
	// OddWidthPreserve keeps every column: the right half is one column wider.
	OddWidthPreserve OddWidthPolicy = "preserve"
	// OddWidthTrim drops the final column so both halves have width W/2.
	OddWidthTrim OddWidthPolicy = "trim"
)

const (
	// DefaultZoom renders pages at twice their native resolution (144 DPI).
	DefaultZoom = 2.0

	// DefaultJPEGQuality is the fixed quality used to encode each half.
	DefaultJPEGQuality = 75
)

// SplitConfig holds settings for the split pipeline.
type SplitConfig struct {
	// Zoom is the linear magnification applied when rasterizing a page
	// (default 2). The render DPI is 72 * Zoom.
	Zoom float64 `json:"zoom" yaml:"zoom" mapstructure:"zoom"`

	// JPEGQuality is the JPEG quality (1-100) used for every half-image.
	JPEGQuality int `json:"jpeg_quality" yaml:"jpeg_quality" mapstructure:"jpeg_quality"`

	// OddWidth selects the split policy for odd-width bitmaps.
	OddWidth OddWidthPolicy `json:"odd_width" yaml:"odd_width" mapstructure:"odd_width"`

	// Spill writes encoded halves to temporary files instead of keeping
	// them in memory. SpillDir selects the directory (default: OS temp dir).
	Spill    bool   `json:"spill" yaml:"spill" mapstructure:"spill"`
	SpillDir string `json:"spill_dir,omitempty" yaml:"spill_dir,omitempty" mapstructure:"spill_dir"`

	// Verify re-opens the output after writing and checks its page count.
	Verify bool `json:"verify" yaml:"verify" mapstructure:"verify"`

	// HistoryDB is the path of the SQLite run ledger. Empty disables it.
	HistoryDB string `json:"history_db,omitempty" yaml:"history_db,omitempty" mapstructure:"history_db"`
}

// DefaultSplitConfig returns a SplitConfig with the documented defaults.
func DefaultSplitConfig() SplitConfig {
	return SplitConfig{
		Zoom:        DefaultZoom,
		JPEGQuality: DefaultJPEGQuality,
		OddWidth:    OddWidthPreserve,
	}
}

// Validate reports the first invalid setting.
func (c SplitConfig) Validate() error {
	if c.Zoom <= 0 {
		return fmt.Errorf("zoom must be positive, got %v", c.Zoom)
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("jpeg quality must be between 1 and 100, got %d", c.JPEGQuality)
	}
	switch c.OddWidth {
	case OddWidthPreserve, OddWidthTrim:
	default:
		return fmt.Errorf("unsupported odd-width policy %q: use preserve or trim", c.OddWidth)
	}
	return nil
}

// LogFormat selects the log record encoding.
type LogFormat string

const (
	LogText LogFormat = "text"
	LogJSON LogFormat = "json"
)

// LogConfig holds process-wide logger settings.
type LogConfig struct {
	// Level is a logrus level name (default "info").
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is text (default) or json.
	Format LogFormat `json:"format" yaml:"format" mapstructure:"format"`
}
