// Package models defines the shared data types flowing through the
// moodgraph pipeline: comment records, sentiment series, emotion count
// tables, trend curves and entropy records.
package models

import "time"

// CommentRecord is a single comment as loaded from the input source.
// It is immutable once loaded; all downstream stages derive new values.
type CommentRecord struct {
	Timestamp time.Time // comment creation time (UTC)
	Body      string    // raw comment text
	Score     int       // vote score from the export
}

// SentimentSeries is an ordered sequence of per-comment sentiment
// values for one scoring method. Index i corresponds to the i-th
// cleaned comment; chronological order is position order.
type SentimentSeries []float64

// TrendCurve is a smoothed, amplitude-normalized resampling of a
// SentimentSeries. Its length is fixed by configuration regardless of
// the input length, and its values lie in [-1, 1].
type TrendCurve []float64

// EntropyRecord pairs one sentence with its mixed-message entropy.
type EntropyRecord struct {
	Sentence string
	Entropy  float64
}
