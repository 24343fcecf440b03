package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/seenimoa/moodgraph/pkg/models"
)

func sampleData() Data {
	agg := models.NewEmotionCounts()
	agg[models.EmotionJoy] = 4
	agg[models.EmotionFear] = 2
	agg[models.PolarityPositive] = 5
	agg[models.PolarityNegative] = 3

	return Data{
		CommentCount: 4,
		Aggregate:    agg,
		Percentages: map[string]float64{
			models.EmotionJoy:       28.6,
			models.EmotionFear:      14.3,
			models.PolarityPositive: 35.7,
			models.PolarityNegative: 21.4,
		},
		TrendMethod:  "vader",
		TrendCurve:   []float64{-1, -0.5, 0, 0.5, 1},
		Emotion:      models.EmotionJoy,
		EmotionCurve: []float64{0, 0.5, 1},
		EmotionCurves: map[string]models.TrendCurve{
			models.EmotionJoy:  {0, 0.5, 1},
			models.EmotionFear: {1, 0.5, 0},
		},
		Entropy: []models.EntropyRecord{
			{Sentence: "I love this but I hate the fees", Entropy: 1},
			{Sentence: "great day", Entropy: 0},
		},
		TopMixed: []models.EntropyRecord{
			{Sentence: "I love this but I hate the fees", Entropy: 1},
			{Sentence: "great day", Entropy: 0},
		},
	}
}

func TestBuildPagesOrder(t *testing.T) {
	pages := BuildPages(sampleData(), DefaultConfig())

	want := []string{
		"Emotion Counts",
		"Emotion Share",
		"Sentiment Trend",
		"Single Emotion Trend",
		"All Emotion Trends",
		"Mixed Messages",
	}
	if len(pages) != len(want) {
		t.Fatalf("got %d pages, want %d", len(pages), len(want))
	}
	for i, title := range want {
		if pages[i].Title != title {
			t.Errorf("page %d: got title %q, want %q", i, pages[i].Title, title)
		}
		if !strings.Contains(string(pages[i].SVG), "<svg") {
			t.Errorf("page %d (%s): no SVG content", i, title)
		}
	}
}

func TestBuildPagesEntropyDualChart(t *testing.T) {
	pages := BuildPages(sampleData(), DefaultConfig())

	last := pages[len(pages)-1]
	if !strings.Contains(string(last.Extra), "<svg") {
		t.Error("entropy page should carry a second chart")
	}
	// Zero-entropy sentences are not mixed; only the conflicted one shows.
	if strings.Contains(string(last.Extra), "great day") {
		t.Error("one-sided sentence should not appear among mixed messages")
	}
	if !strings.Contains(string(last.Extra), "I love this but I hate the fees") {
		t.Error("conflicted sentence missing from mixed messages chart")
	}
}

func TestBuildPagesEmptyData(t *testing.T) {
	pages := BuildPages(Data{}, DefaultConfig())

	if len(pages) != 6 {
		t.Fatalf("got %d pages, want 6", len(pages))
	}
	for i, p := range pages {
		if !strings.Contains(string(p.SVG), "No data") {
			t.Errorf("page %d (%s): expected placeholder chart", i, p.Title)
		}
	}
}

func TestBuildPagesSeriesLegend(t *testing.T) {
	pages := BuildPages(sampleData(), DefaultConfig())

	overlay := string(pages[4].SVG)
	for _, label := range []string{models.EmotionJoy, models.EmotionFear} {
		if !strings.Contains(overlay, ">"+label+"<") {
			t.Errorf("overlay legend missing %q", label)
		}
	}
}

func TestGenerateHTMLFallback(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Title = "Test Report"
	cfg.OutputPath = filepath.Join(dir, "out.pdf")
	cfg.Engine = EngineNone

	pages := BuildPages(sampleData(), cfg)
	if err := Generate(pages, cfg); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// With no PDF engine the document lands next to the requested
	// path with an .html extension.
	raw, err := os.ReadFile(filepath.Join(dir, "out.html"))
	if err != nil {
		t.Fatalf("reading fallback output: %v", err)
	}
	html := string(raw)
	if !strings.Contains(html, "Test Report") {
		t.Error("document title missing from output")
	}
	if got := strings.Count(html, `class="page"`); got != 6 {
		t.Errorf("got %d page sections, want 6", got)
	}
	if !strings.Contains(html, "<svg") {
		t.Error("charts missing from output")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 40); got != "short" {
		t.Errorf("got %q", got)
	}
	long := strings.Repeat("x", 60)
	got := truncate(long, 40)
	if len([]rune(got)) != 40 {
		t.Errorf("truncated length = %d runes, want 40", len([]rune(got)))
	}
}
