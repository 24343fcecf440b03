// Package textnorm cleans raw comment bodies into the restricted
// alphabet the lexicon scorers consume.
package textnorm

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Options configures a Normalizer.
type Options struct {
	// Encoding names the legacy single-byte encoding of the export.
	// Supported: "latin-1"/"iso-8859-1", "windows-1252". Undecodable
	// bytes are replaced, never fatal.
	Encoding string

	// StripMarkup removes HTML tags from bodies that contain them.
	StripMarkup bool

	// CollapseAllWhitespace replaces the literal single double-space
	// removal with a general whitespace collapse. This is a deliberate
	// behaviour change and defaults to off.
	CollapseAllWhitespace bool
}

// Normalizer applies the deterministic, order-preserving cleaning
// transform to comment bodies.
type Normalizer struct {
	decoder *encoding.Decoder
	opts    Options
}

var spaceRuns = regexp.MustCompile(` {2,}`)

// New builds a Normalizer. The only fatal condition is an encoding
// name this package does not support.
func New(opts Options) (*Normalizer, error) {
	cm, err := resolveCharmap(opts.Encoding)
	if err != nil {
		return nil, err
	}
	return &Normalizer{decoder: cm.NewDecoder(), opts: opts}, nil
}

func resolveCharmap(name string) (*charmap.Charmap, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "latin-1", "latin1", "iso-8859-1", "iso8859-1":
		return charmap.ISO8859_1, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("unsupported input encoding %q", name)
	}
}

// Clean transforms one body. Steps, in order: legacy-encoding decode
// (best-effort replacement for unmappable bytes), optional markup
// strip, lowercase, drop every rune outside [a-z' ] with apostrophes
// elided so contractions join ("i'm" -> "im"), then remove exactly one
// double-space run (or collapse all whitespace when configured).
func (n *Normalizer) Clean(body string) string {
	s, err := n.decoder.String(body)
	if err != nil {
		// Single-byte decoders substitute rather than fail; keep the
		// undecoded text if one ever does error.
		s = body
	}

	if n.opts.StripMarkup && strings.ContainsRune(s, '<') {
		s = stripMarkup(s)
	}

	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r == ' ':
			b.WriteRune(r)
		case r == '\'':
			// elided: "i'm" becomes "im", never "i m"
		}
	}
	s = b.String()

	if n.opts.CollapseAllWhitespace {
		s = spaceRuns.ReplaceAllString(s, " ")
	} else {
		s = strings.Replace(s, "  ", "", 1)
	}
	return s
}

// CleanAll cleans a batch, drops bodies that clean to the empty
// string, and reverses the result so the earliest comment comes first.
// The input is expected newest-first, as comment exports are.
func (n *Normalizer) CleanAll(bodies []string) []string {
	cleaned := make([]string, 0, len(bodies))
	for _, body := range bodies {
		c := n.Clean(body)
		if c == "" {
			continue
		}
		cleaned = append(cleaned, c)
	}
	for i, j := 0, len(cleaned)-1; i < j; i, j = i+1, j-1 {
		cleaned[i], cleaned[j] = cleaned[j], cleaned[i]
	}
	return cleaned
}

func stripMarkup(s string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return doc.Text()
}
