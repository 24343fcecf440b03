package textnorm

import (
	"math/rand"
	"strings"
	"testing"
)

func newNormalizer(t *testing.T, opts Options) *Normalizer {
	t.Helper()
	n, err := New(opts)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	return n
}

func TestNewRejectsUnknownEncoding(t *testing.T) {
	if _, err := New(Options{Encoding: "ebcdic"}); err == nil {
		t.Error("expected error for unsupported encoding")
	}
}

func TestCleanBasics(t *testing.T) {
	n := newNormalizer(t, Options{})
	tests := []struct {
		in, want string
	}{
		{"I love bitcoin!!", "i love bitcoin"},
		{"bitcoin CRASHED, I'm scared and angry", "bitcoin crashed im scared and angry"},
		{"good 42 day", "goodday"}, // digits leave a double space, which the single replace then removes
		{"", ""},
		{"!!!", ""},
	}
	for _, tt := range tests {
		if got := n.Clean(tt.in); got != tt.want {
			t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// The default behaviour removes exactly one double-space run, it
// does not collapse whitespace in general.
func TestCleanSingleDoubleSpaceReplace(t *testing.T) {
	n := newNormalizer(t, Options{})
	if got := n.Clean("too  many spaces"); got != "toomany spaces" {
		t.Errorf("literal replace: got %q", got)
	}
	// Only the first occurrence goes.
	if got := n.Clean("a  b  c"); got != "ab  c" {
		t.Errorf("second double space must survive: got %q", got)
	}
}

func TestCleanCollapseAllWhitespace(t *testing.T) {
	n := newNormalizer(t, Options{CollapseAllWhitespace: true})
	if got := n.Clean("a  b   c"); got != "a b c" {
		t.Errorf("general collapse: got %q", got)
	}
}

func TestCleanLatin1Transcode(t *testing.T) {
	n := newNormalizer(t, Options{Encoding: "latin-1"})
	// 0xE9 is é in latin-1; it is not an ASCII letter and is dropped
	// after transcoding rather than corrupting neighbouring bytes.
	in := "caf\xe9 time"
	if got := n.Clean(in); got != "caf time" {
		t.Errorf("Clean(%q) = %q, want %q", in, got, "caf time")
	}
}

func TestCleanStripMarkup(t *testing.T) {
	n := newNormalizer(t, Options{StripMarkup: true})
	if got := n.Clean("<p>I <b>love</b> bitcoin</p>"); got != "i love bitcoin" {
		t.Errorf("markup strip: got %q", got)
	}
	// Without the option, tag names leak through as letters.
	plain := newNormalizer(t, Options{})
	if got := plain.Clean("<b>x</b>"); got != "bxb" {
		t.Errorf("without strip: got %q", got)
	}
}

// Output alphabet is confined to lowercase letters and spaces, for
// arbitrary byte input.
func TestCleanAlphabetProperty(t *testing.T) {
	n := newNormalizer(t, Options{})
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		raw := make([]byte, rng.Intn(80))
		rng.Read(raw)
		got := n.Clean(string(raw))
		for _, r := range got {
			if r != ' ' && (r < 'a' || r > 'z') {
				t.Fatalf("Clean(%q) produced %q outside [a-z ]", raw, r)
			}
		}
	}
}

func TestCleanIdempotentOnCleanInput(t *testing.T) {
	n := newNormalizer(t, Options{})
	inputs := []string{
		"i love bitcoin",
		"bitcoin crashed im scared and angry",
		"a b c d",
		"",
	}
	for _, in := range inputs {
		once := n.Clean(in)
		if twice := n.Clean(once); twice != once {
			t.Errorf("Clean not idempotent: %q -> %q -> %q", in, once, twice)
		}
	}
}

func TestCleanAllDropsEmptyAndReverses(t *testing.T) {
	n := newNormalizer(t, Options{})
	got := n.CleanAll([]string{"I love bitcoin!!", "...", "bitcoin CRASHED, I'm scared and angry", ""})
	want := []string{"bitcoin crashed im scared and angry", "i love bitcoin"}
	if len(got) != len(want) {
		t.Fatalf("CleanAll = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CleanAll[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCleanAllEmptyBatch(t *testing.T) {
	n := newNormalizer(t, Options{})
	if got := n.CleanAll(nil); len(got) != 0 {
		t.Errorf("CleanAll(nil) = %v", got)
	}
}

func TestCleanAllPreservesOrderOldestFirst(t *testing.T) {
	n := newNormalizer(t, Options{})
	// Export order is newest-first; cleaned order must be oldest-first.
	got := n.CleanAll([]string{"third", "second", "first"})
	if strings.Join(got, ",") != "first,second,third" {
		t.Errorf("order: %v", got)
	}
}
