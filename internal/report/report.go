package report

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/seenimoa/moodgraph/pkg/models"
)

// Config controls document generation.
type Config struct {
	Title       string
	Subtitle    string
	OutputPath  string
	PageSize    string // e.g. "A4"
	Orientation string // "portrait" or "landscape"
	Engine      PDFEngine
	ChartCfg    ChartConfig
	TopMixed    int // sentences shown on the entropy page
}

// DefaultConfig returns sensible defaults for document generation.
func DefaultConfig() Config {
	return Config{
		Title:       "Comment Sentiment Report",
		OutputPath:  "moodgraph-report.pdf",
		PageSize:    "A4",
		Orientation: "portrait",
		ChartCfg:    DefaultChartConfig(),
		TopMixed:    10,
	}
}

// Page is one independently renderable page of the output document.
// It captures the chart markup, not the underlying data; building a
// page is a pure function of the Data it was derived from.
type Page struct {
	Title   string
	SVG     template.HTML
	Extra   template.HTML // optional second chart (entropy page)
	Caption string
}

// Data is everything the renderer consumes. All values are computed
// upstream; the renderer adds only layout.
type Data struct {
	CommentCount int

	Aggregate   models.EmotionCounts
	Percentages map[string]float64

	TrendMethod string
	TrendCurve  models.TrendCurve

	Emotion       string
	EmotionCurve  models.TrendCurve
	EmotionCurves map[string]models.TrendCurve

	Entropy  []models.EntropyRecord
	TopMixed []models.EntropyRecord
}

// BuildPages assembles the fixed page sequence: emotion counts,
// emotion percentages, overall trend, single-emotion trend,
// multi-emotion overlay, entropy. Empty inputs yield placeholder
// charts rather than dropped pages, so the document shape is stable.
func BuildPages(d Data, cfg Config) []Page {
	chartCfg := cfg.ChartCfg
	if chartCfg.Width == 0 {
		chartCfg = DefaultChartConfig()
	}

	pages := make([]Page, 0, 6)

	// Page 1: emotion count bar chart.
	c := chartCfg
	c.Title = "Emotion Counts"
	pages = append(pages, Page{
		Title:   "Emotion Counts",
		SVG:     template.HTML(BarChart(countBars(d.Aggregate), c)),
		Caption: fmt.Sprintf("Category matches across %d comments.", d.CommentCount),
	})

	// Page 2: emotion percentage horizontal bar chart.
	c = chartCfg
	c.Title = "Emotion Share"
	pages = append(pages, Page{
		Title:   "Emotion Share",
		SVG:     template.HTML(HorizontalBarChart(percentageBars(d.Percentages), "%", c)),
		Caption: "Each category's share of all emotion matches.",
	})

	// Page 3: overall smoothed sentiment trend.
	c = chartCfg
	c.Title = fmt.Sprintf("Sentiment Trend (%s)", d.TrendMethod)
	pages = append(pages, Page{
		Title: "Sentiment Trend",
		SVG: template.HTML(LineChart(
			curveSeries(d.TrendMethod, d.TrendCurve), true, c)),
		Caption: "Discrete-cosine low-pass trend, rescaled to [-1, 1]; oldest comments left.",
	})

	// Page 4: single-emotion smoothed trend.
	c = chartCfg
	c.Title = fmt.Sprintf("Emotion Trend: %s", d.Emotion)
	pages = append(pages, Page{
		Title: "Single Emotion Trend",
		SVG: template.HTML(LineChart(
			curveSeries(d.Emotion, d.EmotionCurve), true, c)),
		Caption: fmt.Sprintf("Smoothed per-comment %q match counts.", d.Emotion),
	})

	// Page 5: multi-emotion overlay.
	c = chartCfg
	c.Title = "All Emotion Trends"
	pages = append(pages, Page{
		Title:   "All Emotion Trends",
		SVG:     template.HTML(LineChart(emotionOverlay(d.EmotionCurves), true, c)),
		Caption: "Smoothed trends for every category, overlaid.",
	})

	// Page 6: entropy, dual form.
	c = chartCfg
	c.Title = "Sentence Entropy"
	half := c
	half.Height = chartCfg.Height * 2 / 3
	topCfg := half
	topCfg.Title = "Most Mixed Sentences"
	pages = append(pages, Page{
		Title:   "Mixed Messages",
		SVG:     template.HTML(LineChart(entropySeries(d.Entropy), false, half)),
		Extra:   template.HTML(HorizontalBarChart(topMixedBars(d.TopMixed, cfg.TopMixed), "", topCfg)),
		Caption: "Per-sentence mixed-message entropy (0 = one-sided, 1 = evenly conflicted).",
	})

	return pages
}

// Generate renders the pages into the single output document. The
// whole document is assembled in memory and written in one step, so a
// failing page never leaves a half-written artifact behind.
func Generate(pages []Page, cfg Config) error {
	tmpl, err := template.New("document").Parse(documentTemplate)
	if err != nil {
		return fmt.Errorf("parsing document template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, struct {
		Title       string
		Subtitle    string
		GeneratedAt string
		Pages       []Page
	}{
		Title:       cfg.Title,
		Subtitle:    cfg.Subtitle,
		GeneratedAt: time.Now().UTC().Format("2006-01-02 15:04 UTC"),
		Pages:       pages,
	})
	if err != nil {
		return fmt.Errorf("rendering document: %w", err)
	}

	return writeDocument(buf.String(), cfg)
}

// ── chart data adapters ──

func countBars(agg models.EmotionCounts) []BarItem {
	if agg.Total() == 0 {
		return nil
	}
	items := make([]BarItem, 0, 10)
	for _, label := range models.EmotionLabels() {
		items = append(items, BarItem{Label: label, Value: float64(agg[label])})
	}
	return items
}

func percentageBars(pct map[string]float64) []BarItem {
	total := 0.0
	for _, v := range pct {
		total += v
	}
	if total == 0 {
		return nil
	}
	items := make([]BarItem, 0, 10)
	for _, label := range models.EmotionLabels() {
		items = append(items, BarItem{Label: label, Value: pct[label]})
	}
	return items
}

func curveSeries(name string, curve models.TrendCurve) []LineSeries {
	if len(curve) == 0 {
		return nil
	}
	return []LineSeries{{Name: name, Values: curve}}
}

func emotionOverlay(curves map[string]models.TrendCurve) []LineSeries {
	series := make([]LineSeries, 0, len(curves))
	for _, label := range models.EmotionLabels() {
		if curve, ok := curves[label]; ok && len(curve) > 0 {
			series = append(series, LineSeries{Name: label, Values: curve})
		}
	}
	return series
}

func entropySeries(records []models.EntropyRecord) []LineSeries {
	if len(records) == 0 {
		return nil
	}
	values := make([]float64, len(records))
	for i, r := range records {
		values[i] = r.Entropy
	}
	return []LineSeries{{Name: "entropy", Values: values}}
}

func topMixedBars(records []models.EntropyRecord, n int) []BarItem {
	if n <= 0 {
		n = 10
	}
	items := make([]BarItem, 0, n)
	for _, r := range records {
		if len(items) == n {
			break
		}
		if r.Entropy == 0 {
			continue // one-sided sentences are not mixed messages
		}
		items = append(items, BarItem{Label: truncate(r.Sentence, 40), Value: r.Entropy})
	}
	return items
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
