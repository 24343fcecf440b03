package models

// The eight NRC emotion categories plus the two polarity flags, in the
// display order used by every chart and table.
const (
	EmotionAnger        = "anger"
	EmotionAnticipation = "anticipation"
	EmotionDisgust      = "disgust"
	EmotionFear         = "fear"
	EmotionJoy          = "joy"
	EmotionSadness      = "sadness"
	EmotionSurprise     = "surprise"
	EmotionTrust        = "trust"
	PolarityNegative    = "negative"
	PolarityPositive    = "positive"
)

// EmotionLabels returns all ten category labels in display order.
func EmotionLabels() []string {
	return []string{
		EmotionAnger,
		EmotionAnticipation,
		EmotionDisgust,
		EmotionFear,
		EmotionJoy,
		EmotionSadness,
		EmotionSurprise,
		EmotionTrust,
		PolarityNegative,
		PolarityPositive,
	}
}

// IsEmotionLabel reports whether s is one of the ten category labels.
func IsEmotionLabel(s string) bool {
	for _, l := range EmotionLabels() {
		if l == s {
			return true
		}
	}
	return false
}

// EmotionCounts maps a category label to a non-negative match count,
// either for a single comment or aggregated over a whole batch.
type EmotionCounts map[string]int

// NewEmotionCounts returns a counts table with every label present at zero.
func NewEmotionCounts() EmotionCounts {
	c := make(EmotionCounts, 10)
	for _, l := range EmotionLabels() {
		c[l] = 0
	}
	return c
}

// Add accumulates other into c.
func (c EmotionCounts) Add(other EmotionCounts) {
	for label, n := range other {
		c[label] += n
	}
}

// Total returns the sum of all category counts.
func (c EmotionCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}
