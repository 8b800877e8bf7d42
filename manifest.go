package mdxport

import (
	"context"
	"time"
)

// Conversion status values.
const (
	StatusConverted = "converted"
	StatusSkipped   = "skipped"
	StatusFailed    = "failed"
)

// Conversion records the outcome of converting one source document within
// a batch run.
type Conversion struct {
	ID            string    `json:"id"`
	RunID         string    `json:"runId"`
	SourceFile    string    `json:"sourceFile"`
	OutputPath    string    `json:"outputPath"`
	Title         string    `json:"title"`
	Status        string    `json:"status"`
	Detail        string    `json:"detail"`
	Images        int       `json:"images"`
	ImageFailures int       `json:"imageFailures"`
	ContentHash   string    `json:"contentHash"`
	ConvertedAt   time.Time `json:"convertedAt"`
}

// Validate returns an error if the conversion contains invalid fields.
func (c *Conversion) Validate() error {
	if c.RunID == "" {
		return Errorf(EINVALID, "conversion run ID required")
	}
	if c.SourceFile == "" {
		return Errorf(EINVALID, "conversion source file required")
	}
	switch c.Status {
	case StatusConverted, StatusSkipped, StatusFailed:
	default:
		return Errorf(EINVALID, "conversion status %q not recognized", c.Status)
	}
	return nil
}

// ConversionFilter represents a filter for FindConversions.
type ConversionFilter struct {
	RunID  *string `json:"runId"`
	Status *string `json:"status"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ManifestService records and queries per-document conversion outcomes.
type ManifestService interface {
	// CreateConversion records the outcome of one document conversion.
	CreateConversion(ctx context.Context, c *Conversion) error

	// FindConversions retrieves conversions matching the filter, most
	// recent first.
	FindConversions(ctx context.Context, filter ConversionFilter) ([]*Conversion, error)

	// LatestRunID returns the ID of the most recent run.
	// Returns ENOTFOUND if no conversions are recorded.
	LatestRunID(ctx context.Context) (string, error)
}
