// Package comments loads comment records from their source and applies
// the row filtering pipeline that precedes text normalization.
package comments

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/seenimoa/moodgraph/pkg/models"
	"github.com/seenimoa/moodgraph/pkg/utils"
)

// Required CSV columns. Column order is free; lookup is header-driven.
const (
	colCreated = "created_utc"
	colBody    = "body"
	colScore   = "score"
)

// LoadCSV reads comment records from a CSV export. The header row must
// contain created_utc, body and score; extra columns are ignored.
func LoadCSV(r io.Reader) ([]models.CommentRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &models.DataFormatError{Column: colCreated, Reason: "empty input"}
	}
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{colCreated, colBody, colScore} {
		if _, ok := idx[required]; !ok {
			return nil, &models.DataFormatError{Column: required, Reason: "missing column"}
		}
	}

	var records []models.CommentRecord
	row := 0
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, fmt.Errorf("reading CSV row %d: %w", row, err)
		}

		ts, err := utils.ParseEpoch(fields[idx[colCreated]])
		if err != nil {
			return nil, &models.DataFormatError{Column: colCreated, Row: row, Reason: err.Error()}
		}
		score, err := strconv.Atoi(strings.TrimSpace(fields[idx[colScore]]))
		if err != nil {
			return nil, &models.DataFormatError{Column: colScore, Row: row, Reason: "not an integer"}
		}

		records = append(records, models.CommentRecord{
			Timestamp: ts,
			Body:      fields[idx[colBody]],
			Score:     score,
		})
	}
	return records, nil
}

// LoadCSVFile opens path and reads it with LoadCSV.
func LoadCSVFile(path string) ([]models.CommentRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	records, err := LoadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return records, nil
}
