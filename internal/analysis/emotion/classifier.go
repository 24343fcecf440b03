// Package emotion classifies comments into the eight NRC emotion
// categories plus positive/negative polarity, and aggregates the
// per-comment counts into the batch table the charts consume.
package emotion

import (
	"strings"

	"github.com/seenimoa/moodgraph/pkg/models"
)

// Classifier is the injectable categorical capability: per-text counts
// over the ten fixed category labels.
type Classifier interface {
	Classify(text string) models.EmotionCounts
}

// Lexicon classifies by whole-word lookup against the embedded
// NRC-style lexicon. A word contributes one count to every category
// it evokes.
type Lexicon struct{}

func NewLexicon() *Lexicon { return &Lexicon{} }

func (l *Lexicon) Classify(text string) models.EmotionCounts {
	counts := models.NewEmotionCounts()
	for _, word := range strings.Fields(strings.ToLower(text)) {
		for _, label := range nrcLexicon[strings.Trim(word, `.,!?;:"'()[]{}`)] {
			counts[label]++
		}
	}
	return counts
}

// ClassifyBatch runs the classifier over every comment, preserving
// input order.
func ClassifyBatch(comments []string, c Classifier) []models.EmotionCounts {
	perComment := make([]models.EmotionCounts, len(comments))
	for i, text := range comments {
		perComment[i] = c.Classify(text)
	}
	return perComment
}

// Aggregate sums per-comment counts into one table. The total equals
// the exact integer sum of the inputs.
func Aggregate(perComment []models.EmotionCounts) models.EmotionCounts {
	agg := models.NewEmotionCounts()
	for _, counts := range perComment {
		agg.Add(counts)
	}
	return agg
}

// Percentages converts an aggregate table to each category's share of
// the total, in percent. An all-zero table yields all zeros.
func Percentages(agg models.EmotionCounts) map[string]float64 {
	pct := make(map[string]float64, len(agg))
	total := agg.Total()
	for _, label := range models.EmotionLabels() {
		if total == 0 {
			pct[label] = 0
			continue
		}
		pct[label] = 100 * float64(agg[label]) / float64(total)
	}
	return pct
}

// Column extracts one category's per-comment count sequence as a
// numeric series aligned with the comment index, ready for smoothing.
func Column(perComment []models.EmotionCounts, label string) []float64 {
	col := make([]float64, len(perComment))
	for i, counts := range perComment {
		col[i] = float64(counts[label])
	}
	return col
}

// Columns extracts every category's series, keyed by label.
func Columns(perComment []models.EmotionCounts) map[string][]float64 {
	cols := make(map[string][]float64, 10)
	for _, label := range models.EmotionLabels() {
		cols[label] = Column(perComment, label)
	}
	return cols
}
