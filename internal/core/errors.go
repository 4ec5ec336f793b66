package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for the analysis engine. Callers distinguish them with
// errors.Is.
var (
	// ErrEmptyTitle reports a record whose title is empty or whitespace-only
	// after normalization. The record is excluded from the batch, not retried.
	ErrEmptyTitle = errors.New("title is empty after normalization")

	// ErrInsufficientData reports a batch in which no record produced a valid
	// analysis. Aggregation refuses to run rather than return zeroed
	// statistics.
	ErrInsufficientData = errors.New("no successfully analyzed videos in batch")

	// ErrNoDescription reports a missing description to the SEO analyzer's
	// callers that need to distinguish absence from a zero score.
	ErrNoDescription = errors.New("no description provided")
)

// MalformedRecordError reports a record missing a required field. The record
// is skipped and counted, never aborting the batch.
type MalformedRecordError struct {
	VideoID string // Identifier of the offending record, may be empty
	Field   string // Name of the missing or invalid field
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record %q: missing or invalid field %s", e.VideoID, e.Field)
}

// ScoreRangeError reports a computed score outside its documented range. It
// marks an internal defect: the affected analysis is aborted with a
// diagnostic instead of silently clamping the value.
type ScoreRangeError struct {
	Component string  // Component that produced the score
	Score     float64 // The out-of-range value
	Min, Max  float64 // Documented closed range
}

func (e *ScoreRangeError) Error() string {
	return fmt.Sprintf("%s produced score %.2f outside [%.0f,%.0f]", e.Component, e.Score, e.Min, e.Max)
}

// CheckScoreRange validates a computed score against its documented closed
// range and returns a ScoreRangeError on violation.
func CheckScoreRange(component string, score, min, max float64) error {
	if score < min || score > max {
		return &ScoreRangeError{Component: component, Score: score, Min: min, Max: max}
	}
	return nil
}
