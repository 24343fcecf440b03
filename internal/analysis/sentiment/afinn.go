package sentiment

import "strings"

// AFINN-style signed word valences, -5 (most negative) to +5 (most
// positive). A compact embedded subset tuned for social-media comment
// vocabulary; whole-word matches only.
var afinnLexicon = map[string]float64{
	// strong positive
	"superb": 5, "outstanding": 5, "breathtaking": 5,
	"amazing": 4, "awesome": 4, "fantastic": 4, "wonderful": 4,
	"brilliant": 4, "excellent": 4, "incredible": 4, "perfect": 4,
	"win": 4, "winning": 4, "euphoric": 4, "thrilled": 4,
	// positive
	"love": 3, "loved": 3, "loves": 3, "great": 3, "happy": 3,
	"excited": 3, "beautiful": 3, "best": 3, "joy": 3, "delighted": 3,
	"impressive": 3, "rich": 3, "moon": 3, "bullish": 3,
	"good": 2, "nice": 2, "like": 2, "likes": 2, "liked": 2,
	"glad": 2, "hope": 2, "hopeful": 2, "gain": 2, "gains": 2,
	"profit": 2, "profits": 2, "up": 2, "rally": 2, "pump": 2,
	"strong": 2, "solid": 2, "safe": 2, "calm": 2, "fine": 2,
	"interesting": 2, "thanks": 2, "thank": 2, "useful": 2,
	"ok": 1, "okay": 1, "decent": 1, "fair": 1, "agree": 1,
	// negative
	"meh": -1, "unsure": -1, "doubt": -1, "doubts": -1, "flat": -1,
	"bad": -2, "sad": -2, "drop": -2, "drops": -2, "down": -2,
	"dip": -2, "weak": -2, "loss": -2, "losses": -2, "lost": -2,
	"worried": -2, "worry": -2, "fear": -2, "bearish": -2,
	"dump": -2, "dumped": -2, "falling": -2, "fall": -2, "fell": -2,
	"problem": -2, "problems": -2, "wrong": -2, "risky": -2,
	"hate": -3, "hated": -3, "hates": -3, "angry": -3, "anger": -3,
	"scared": -3, "scary": -3, "terrible": -3, "awful": -3,
	"panic": -3, "crash": -3, "crashed": -3, "crashing": -3,
	"plunge": -3, "plunged": -3, "broke": -3, "broken": -3,
	"worst": -3, "ruin": -3, "ruined": -3, "stupid": -3, "idiot": -3,
	// strong negative
	"horrible": -4, "disaster": -4, "scam": -4, "fraud": -4,
	"ponzi": -4, "stolen": -4, "hacked": -4, "worthless": -4,
	"devastating": -4, "catastrophe": -5, "nightmare": -4,
}

// AFINN sums the signed valences of matched words. The raw sum is
// unbounded; the trend smoother rescales downstream.
type AFINN struct{}

func NewAFINN() *AFINN { return &AFINN{} }

func (a *AFINN) Name() string { return "afinn" }

func (a *AFINN) Score(text string) (float64, error) {
	total := 0.0
	for _, word := range strings.Fields(strings.ToLower(text)) {
		total += afinnLexicon[trimWordPunct(word)]
	}
	return total, nil
}

// TokenValence exposes the signed valence of a single word, 0 for
// words outside the lexicon. The mixed-message detector uses it to
// weigh per-sentence contradiction.
func TokenValence(word string) float64 {
	return afinnLexicon[trimWordPunct(strings.ToLower(word))]
}

func trimWordPunct(w string) string {
	return strings.Trim(w, `.,!?;:"'()[]{}`)
}
