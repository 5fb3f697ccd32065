package salesboard

import "errors"

// Sentinel errors shared by the report builders. Empty-result conditions are
// values (a report flagged as such), not errors; these cover the cases the
// caller must branch on before rendering.
var (
	// ErrMissingCategory is returned when the requested goal category has no
	// tiers configured for the requested month.
	ErrMissingCategory = errors.New("goal category not configured")

	// ErrInvalidRange is returned when a report range starts after it ends.
	// It is detected before any aggregation runs.
	ErrInvalidRange = errors.New("invalid date range: start after end")

	// ErrNoData is returned when every input table is empty after filtering,
	// so the report would be a table of zeros with undefined figures.
	ErrNoData = errors.New("no data after filtering")
)
