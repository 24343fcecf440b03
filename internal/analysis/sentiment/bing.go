package sentiment

import "strings"

// Binary polarity word sets in the style of the Bing Liu opinion
// lexicon: a word is positive, negative, or unlisted.
var bingPositive = wordSet(
	"good", "great", "love", "loved", "loves", "happy", "best", "nice",
	"amazing", "awesome", "fantastic", "wonderful", "excellent",
	"brilliant", "perfect", "beautiful", "gain", "gains", "profit",
	"strong", "solid", "win", "winning", "rally", "bullish", "hope",
	"hopeful", "excited", "glad", "safe", "calm", "impressive",
	"useful", "interesting", "thanks", "delighted", "joy", "rich",
)

var bingNegative = wordSet(
	"bad", "terrible", "awful", "horrible", "hate", "hated", "hates",
	"sad", "angry", "anger", "scared", "scary", "fear", "panic",
	"crash", "crashed", "crashing", "loss", "losses", "lost", "weak",
	"drop", "drops", "dump", "dumped", "fall", "falling", "fell",
	"plunge", "plunged", "bearish", "worst", "worried", "worry",
	"problem", "problems", "wrong", "risky", "scam", "fraud", "ponzi",
	"stolen", "hacked", "worthless", "disaster", "nightmare", "ruin",
	"ruined", "broke", "broken", "stupid", "idiot",
)

func wordSet(words ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Bing counts polarity matches: score = positives - negatives.
type Bing struct{}

func NewBing() *Bing { return &Bing{} }

func (b *Bing) Name() string { return "bing" }

func (b *Bing) Score(text string) (float64, error) {
	pos, neg := 0, 0
	for _, word := range strings.Fields(strings.ToLower(text)) {
		w := trimWordPunct(word)
		if _, ok := bingPositive[w]; ok {
			pos++
		}
		if _, ok := bingNegative[w]; ok {
			neg++
		}
	}
	return float64(pos - neg), nil
}
