package comments

import (
	"time"

	"github.com/seenimoa/moodgraph/pkg/models"
	"github.com/seenimoa/moodgraph/pkg/utils"
)

// FilterOptions configures the row filtering pipeline.
type FilterOptions struct {
	Day          time.Time // target UTC calendar day; zero keeps all days
	MaxRows      int       // row cap; 0 means no cap
	Placeholders []string  // bodies dropped by exact match
}

// Filter applies the three predicates in their fixed order: date match,
// row cap, placeholder removal. The cap runs strictly after the date
// filter and strictly before placeholder removal, so which rows survive
// the cap does not depend on how many placeholders they contain.
func Filter(records []models.CommentRecord, opts FilterOptions) []models.CommentRecord {
	kept := make([]models.CommentRecord, 0, len(records))
	for _, rec := range records {
		if !opts.Day.IsZero() && !utils.SameDay(rec.Timestamp, opts.Day) {
			continue
		}
		kept = append(kept, rec)
	}

	if opts.MaxRows > 0 && len(kept) > opts.MaxRows {
		kept = kept[:opts.MaxRows]
	}

	out := kept[:0]
	for _, rec := range kept {
		if isPlaceholder(rec.Body, opts.Placeholders) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func isPlaceholder(body string, placeholders []string) bool {
	for _, p := range placeholders {
		if body == p {
			return true
		}
	}
	return false
}

// Bodies extracts the body strings in record order.
func Bodies(records []models.CommentRecord) []string {
	bodies := make([]string, len(records))
	for i, rec := range records {
		bodies[i] = rec.Body
	}
	return bodies
}
