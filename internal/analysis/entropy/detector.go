// Package entropy flags mixed-message comments: sentences that carry
// both strongly positive and strongly negative signals at once.
package entropy

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/seenimoa/moodgraph/internal/analysis/sentiment"
	"github.com/seenimoa/moodgraph/pkg/models"
)

var sentenceEnd = regexp.MustCompile(`[.!?]+`)

// Sentences splits a comment on sentence-ending punctuation runs and
// returns the trimmed, non-empty fragments in order.
func Sentences(text string) []string {
	parts := sentenceEnd.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Detector computes a per-sentence mixed-message score from an
// injectable token valence function.
type Detector struct {
	valence func(word string) float64
}

// NewDetector uses the embedded signed word lexicon for valences.
func NewDetector() *Detector {
	return &Detector{valence: sentiment.TokenValence}
}

// NewDetectorWithValence injects a custom valence function.
func NewDetectorWithValence(valence func(string) float64) *Detector {
	return &Detector{valence: valence}
}

// Sentence scores one sentence. The score is the binary Shannon
// entropy, in bits, of how the sentence's absolute valence mass splits
// between positive and negative tokens:
//
//	p = pos/(pos+neg), q = neg/(pos+neg), H = -p·log2(p) - q·log2(q)
//
// A sentence with no emotional tokens, or with tokens of only one
// sign, scores 0; an even split of strong positive and strong negative
// mass scores 1.
func (d *Detector) Sentence(text string) float64 {
	pos, neg := 0.0, 0.0
	for _, word := range strings.Fields(text) {
		v := d.valence(word)
		switch {
		case v > 0:
			pos += v
		case v < 0:
			neg += -v
		}
	}
	total := pos + neg
	if total == 0 || pos == 0 || neg == 0 {
		return 0
	}
	// stat.Entropy uses natural log; divide by ln 2 for bits.
	return stat.Entropy([]float64{pos / total, neg / total}) / math.Ln2
}

// Detect scores every sentence of every comment, preserving input
// order across the batch.
func (d *Detector) Detect(comments []string) []models.EntropyRecord {
	var records []models.EntropyRecord
	for _, comment := range comments {
		for _, s := range Sentences(comment) {
			records = append(records, models.EntropyRecord{
				Sentence: s,
				Entropy:  d.Sentence(s),
			})
		}
	}
	return records
}

// TopMixed returns the n highest-entropy records, most mixed first.
// Ties keep their batch order.
func TopMixed(records []models.EntropyRecord, n int) []models.EntropyRecord {
	top := make([]models.EntropyRecord, len(records))
	copy(top, records)
	sort.SliceStable(top, func(a, b int) bool {
		return top[a].Entropy > top[b].Entropy
	})
	if n < len(top) {
		top = top[:n]
	}
	return top
}
