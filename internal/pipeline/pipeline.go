// Package pipeline wires the analysis stages into one run: load
// comments, filter, normalize, score, classify, smooth, and detect
// mixed messages. Each stage lives in its own package; this one only
// sequences them and carries the results.
package pipeline

import (
	"context"
	"fmt"

	"github.com/seenimoa/moodgraph/internal/analysis/emotion"
	"github.com/seenimoa/moodgraph/internal/analysis/entropy"
	"github.com/seenimoa/moodgraph/internal/analysis/sentiment"
	"github.com/seenimoa/moodgraph/internal/analysis/trend"
	"github.com/seenimoa/moodgraph/internal/comments"
	"github.com/seenimoa/moodgraph/internal/config"
	"github.com/seenimoa/moodgraph/internal/report"
	"github.com/seenimoa/moodgraph/internal/textnorm"
	"github.com/seenimoa/moodgraph/pkg/models"
)

// Capabilities bundles the pluggable stages. Tests swap individual
// entries for stubs; production runs use DefaultCapabilities.
type Capabilities struct {
	Scorers    []sentiment.Scorer
	Classifier emotion.Classifier
	Smooth     trend.SmoothFunc
	Entropy    *entropy.Detector
}

// DefaultCapabilities builds the standard stage set for cfg.
func DefaultCapabilities(cfg *config.Config) (Capabilities, error) {
	scorers, err := sentiment.ForMethods(cfg.Analysis.Methods)
	if err != nil {
		return Capabilities{}, err
	}
	return Capabilities{
		Scorers:    scorers,
		Classifier: emotion.NewLexicon(),
		Smooth:     trend.Smooth,
		Entropy:    entropy.NewDetector(),
	}, nil
}

// Result carries everything a run produced. When Empty is true the
// input survived filtering with zero usable comments and the trend,
// emotion, and entropy fields are left zero-valued.
type Result struct {
	Records []models.CommentRecord // after filtering, newest first
	Cleaned []string               // normalized bodies, oldest first
	Empty   bool

	Scores    map[string]models.SentimentSeries
	ScoreErrs []models.ScoreError

	PerComment  []models.EmotionCounts
	Aggregate   models.EmotionCounts
	Percentages map[string]float64

	TrendCurves   map[string]models.TrendCurve
	EmotionCurves map[string]models.TrendCurve

	Entropy  []models.EntropyRecord
	TopMixed []models.EntropyRecord
}

// Run executes the full pipeline for cfg. Loading and scoring honor
// ctx; everything else is CPU-bound and runs to completion.
func Run(ctx context.Context, cfg *config.Config, caps Capabilities) (*Result, error) {
	records, err := load(ctx, cfg)
	if err != nil {
		return nil, err
	}

	day, hasDay := cfg.FilterDay()
	opts := comments.FilterOptions{
		MaxRows:      cfg.Filter.MaxRows,
		Placeholders: cfg.Filter.Placeholders,
	}
	if hasDay {
		opts.Day = day
	}
	records = comments.Filter(records, opts)

	norm, err := textnorm.New(textnorm.Options{
		Encoding:              cfg.Input.Encoding,
		StripMarkup:           true,
		CollapseAllWhitespace: cfg.Analysis.CollapseAllWhitespace,
	})
	if err != nil {
		return nil, err
	}
	cleaned := norm.CleanAll(comments.Bodies(records))

	res := &Result{Records: records, Cleaned: cleaned}
	if len(cleaned) == 0 {
		res.Empty = true
		res.Aggregate = models.NewEmotionCounts()
		res.Percentages = map[string]float64{}
		return res, nil
	}

	if cfg.Analysis.Parallel {
		res.Scores, res.ScoreErrs = sentiment.ScoreBatchParallel(ctx, cleaned, caps.Scorers, cfg.Analysis.Workers)
	} else {
		res.Scores, res.ScoreErrs = sentiment.ScoreBatch(cleaned, caps.Scorers)
	}

	res.PerComment = emotion.ClassifyBatch(cleaned, caps.Classifier)
	res.Aggregate = emotion.Aggregate(res.PerComment)
	res.Percentages = emotion.Percentages(res.Aggregate)

	res.TrendCurves = make(map[string]models.TrendCurve, len(res.Scores))
	for method, series := range res.Scores {
		curve, err := caps.Smooth(series, cfg.Analysis.LowPassSize, cfg.Analysis.CurvePoints)
		if err != nil {
			return nil, fmt.Errorf("smoothing %s series: %w", method, err)
		}
		res.TrendCurves[method] = curve
	}

	columns := emotion.Columns(res.PerComment)
	res.EmotionCurves = make(map[string]models.TrendCurve, len(columns))
	for label, column := range columns {
		curve, err := caps.Smooth(column, cfg.Analysis.LowPassSize, cfg.Analysis.CurvePoints)
		if err != nil {
			return nil, fmt.Errorf("smoothing %s emotion series: %w", label, err)
		}
		res.EmotionCurves[label] = curve
	}

	// Entropy works on the raw bodies: normalization strips the
	// sentence punctuation the splitter needs. Reversed so sentences
	// run oldest first, matching the trend curves.
	res.Entropy = caps.Entropy.Detect(reverseBodies(records))
	res.TopMixed = entropy.TopMixed(res.Entropy, cfg.Report.TopMixed)

	return res, nil
}

// ReportData shapes a Result for the renderer.
func (r *Result) ReportData(cfg *config.Config) report.Data {
	return report.Data{
		CommentCount:  len(r.Cleaned),
		Aggregate:     r.Aggregate,
		Percentages:   r.Percentages,
		TrendMethod:   cfg.Analysis.TrendMethod,
		TrendCurve:    r.TrendCurves[cfg.Analysis.TrendMethod],
		Emotion:       cfg.Analysis.Emotion,
		EmotionCurve:  r.EmotionCurves[cfg.Analysis.Emotion],
		EmotionCurves: r.EmotionCurves,
		Entropy:       r.Entropy,
		TopMixed:      r.TopMixed,
	}
}

func load(ctx context.Context, cfg *config.Config) ([]models.CommentRecord, error) {
	switch cfg.Input.Source {
	case "feed":
		return comments.LoadFeed(ctx, cfg.Input.FeedURL)
	case "", "csv":
		return comments.LoadCSVFile(cfg.Input.Path)
	default:
		return nil, fmt.Errorf("unknown input source %q", cfg.Input.Source)
	}
}

func reverseBodies(records []models.CommentRecord) []string {
	bodies := make([]string, len(records))
	for i, r := range records {
		bodies[len(records)-1-i] = r.Body
	}
	return bodies
}
