package sentiment

import "github.com/jonreiter/govader"

// VADER scores text with the VADER compound polarity in [-1, 1].
type VADER struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVADER builds a scorer around govader's embedded lexicon.
func NewVADER() *VADER {
	return &VADER{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VADER) Name() string { return "vader" }

func (v *VADER) Score(text string) (float64, error) {
	return v.analyzer.PolarityScores(text).Compound, nil
}
