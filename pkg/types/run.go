// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// RunStatus records how a split run ended.
type RunStatus string

const (
	RunSucceeded RunStatus = "succeeded"
	RunPartial   RunStatus = "partial"
	RunFailed    RunStatus = "failed"
)

// RunRecord is one row of the run ledger.
type RunRecord struct {
	ID           int64         `json:"id" yaml:"id"`
	InputPath    string        `json:"input_path" yaml:"input_path"`
	OutputPath   string        `json:"output_path" yaml:"output_path"`
	SourcePages  int           `json:"source_pages" yaml:"source_pages"`
	SplitPages   int           `json:"split_pages" yaml:"split_pages"`
	SkippedPages int           `json:"skipped_pages" yaml:"skipped_pages"`
	OutputPages  int           `json:"output_pages" yaml:"output_pages"`
	StartedAt    time.Time     `json:"started_at" yaml:"started_at"`
	Duration     time.Duration `json:"duration" yaml:"duration"`
	Status       RunStatus     `json:"status" yaml:"status"`
	Error        string        `json:"error,omitempty" yaml:"error,omitempty"`
}
