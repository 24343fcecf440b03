package models

import "fmt"

// DataFormatError reports a malformed input file: a missing required
// column or an unparsable cell. It is fatal and aborts the run before
// any output is produced.
type DataFormatError struct {
	Column string
	Row    int // 1-based data row, 0 when the problem is the header
	Reason string
}

func (e *DataFormatError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("input format: row %d, column %q: %s", e.Row, e.Column, e.Reason)
	}
	return fmt.Sprintf("input format: column %q: %s", e.Column, e.Reason)
}

// EmptyInputError reports that zero comments reached a stage that
// needs at least one. It is recoverable: the pipeline still produces
// a document with placeholder pages.
type EmptyInputError struct {
	Stage string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s: no comments to process", e.Stage)
}

// ScoreError records a scorer failure on a single comment. The batch
// continues past it; the failing slot keeps a zero value.
type ScoreError struct {
	Index  int    // position in the cleaned comment sequence
	Scorer string // scoring method name
	Err    error
}

func (e *ScoreError) Error() string {
	return fmt.Sprintf("scoring comment %d with %s: %v", e.Index, e.Scorer, e.Err)
}

func (e *ScoreError) Unwrap() error { return e.Err }
