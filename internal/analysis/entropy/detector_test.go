package entropy

import (
	"math"
	"testing"
)

func TestSentences(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"One. Two! Three?", []string{"One", "Two", "Three"}},
		{"Trailing dots...", []string{"Trailing dots"}},
		{"no punctuation at all", []string{"no punctuation at all"}},
		{"", nil},
		{"?!.", nil},
		{"Mixed?! Yes... definitely.", []string{"Mixed", "Yes", "definitely"}},
	}
	for _, tt := range tests {
		got := Sentences(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("Sentences(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("Sentences(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

// Fixed valence stub: makes the entropy values exact.
func stubValence(word string) float64 {
	switch word {
	case "up":
		return 2
	case "down":
		return -2
	case "slightly":
		return 1
	}
	return 0
}

func TestSentenceNeutralIsZero(t *testing.T) {
	d := NewDetectorWithValence(stubValence)
	if got := d.Sentence("the chair and the table"); got != 0 {
		t.Errorf("neutral sentence: got %f, want 0", got)
	}
}

func TestSentenceUniformSignIsZero(t *testing.T) {
	d := NewDetectorWithValence(stubValence)
	if got := d.Sentence("up up up"); got != 0 {
		t.Errorf("all-positive sentence: got %f, want 0", got)
	}
	if got := d.Sentence("down down"); got != 0 {
		t.Errorf("all-negative sentence: got %f, want 0", got)
	}
}

func TestSentenceEvenMixIsMaximal(t *testing.T) {
	d := NewDetectorWithValence(stubValence)
	got := d.Sentence("up down")
	if math.Abs(got-1) > 1e-12 {
		t.Errorf("even mix: got %f, want 1", got)
	}
}

// Entropy grows as the split between positive and negative mass
// approaches even.
func TestSentenceMonotoneInBalance(t *testing.T) {
	d := NewDetectorWithValence(stubValence)
	skewed := d.Sentence("up up up up down") // 8:2 split
	lessSkewed := d.Sentence("up up down")   // 4:2 split
	even := d.Sentence("up down")            // 2:2 split
	if !(skewed < lessSkewed && lessSkewed < even) {
		t.Errorf("entropy not monotone in balance: %f, %f, %f", skewed, lessSkewed, even)
	}
}

func TestSentenceMagnitudeWeighted(t *testing.T) {
	d := NewDetectorWithValence(stubValence)
	// "slightly" (weight 1) against "down" (weight 2) is less balanced
	// than "up" (weight 2) against "down" (weight 2).
	weak := d.Sentence("slightly down")
	strong := d.Sentence("up down")
	if weak >= strong {
		t.Errorf("weak mix %f should score below strong mix %f", weak, strong)
	}
}

func TestDetectWithEmbeddedLexicon(t *testing.T) {
	d := NewDetector()
	records := d.Detect([]string{
		"I love this. Total crash though!",
		"nothing emotional here",
	})
	if len(records) != 3 {
		t.Fatalf("expected 3 sentence records, got %d", len(records))
	}
	// "I love this" is one-sided, "Total crash though" is one-sided,
	// "nothing emotional here" is neutral: all zero.
	for _, r := range records {
		if r.Entropy != 0 {
			t.Errorf("%q: got %f, want 0", r.Sentence, r.Entropy)
		}
	}

	mixed := d.Detect([]string{"i love the gains but fear the crash"})
	if len(mixed) != 1 {
		t.Fatalf("expected 1 record, got %d", len(mixed))
	}
	if mixed[0].Entropy <= 0 {
		t.Errorf("mixed sentence: got %f, want > 0", mixed[0].Entropy)
	}
}

func TestDetectEmptyBatch(t *testing.T) {
	d := NewDetector()
	if got := d.Detect(nil); len(got) != 0 {
		t.Errorf("Detect(nil) = %v", got)
	}
}

func TestTopMixed(t *testing.T) {
	d := NewDetectorWithValence(stubValence)
	records := d.Detect([]string{"up down.", "up up up up down.", "up up down."})
	top := TopMixed(records, 2)
	if len(top) != 2 {
		t.Fatalf("expected 2 records, got %d", len(top))
	}
	if top[0].Sentence != "up down" {
		t.Errorf("most mixed: got %q", top[0].Sentence)
	}
	if top[0].Entropy < top[1].Entropy {
		t.Error("TopMixed not sorted descending")
	}
	// n larger than the batch returns everything.
	if got := TopMixed(records, 10); len(got) != 3 {
		t.Errorf("TopMixed over-request: got %d records", len(got))
	}
}
