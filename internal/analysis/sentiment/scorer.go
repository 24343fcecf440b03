// Package sentiment provides the per-comment numeric scoring methods.
// Each method is a lexicon-based Scorer; batches preserve index
// alignment so position i of every series belongs to comment i.
package sentiment

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/seenimoa/moodgraph/pkg/models"
)

// Scorer is an injectable scoring capability: one numeric sentiment
// value per text.
type Scorer interface {
	Name() string
	Score(text string) (float64, error)
}

// ForMethods resolves method names to scorer instances.
func ForMethods(names []string) ([]Scorer, error) {
	scorers := make([]Scorer, 0, len(names))
	for _, name := range names {
		switch name {
		case "vader":
			scorers = append(scorers, NewVADER())
		case "afinn":
			scorers = append(scorers, NewAFINN())
		case "bing":
			scorers = append(scorers, NewBing())
		default:
			return nil, fmt.Errorf("unknown scoring method %q", name)
		}
	}
	return scorers, nil
}

// ScoreBatch scores every comment with every scorer, serially. The
// returned series are keyed by method name and aligned with the input:
// len(series) == len(comments) for each method. A scorer failure on
// one comment is recorded and leaves a zero in its slot; the batch
// continues.
func ScoreBatch(comments []string, scorers []Scorer) (map[string]models.SentimentSeries, []models.ScoreError) {
	series := make(map[string]models.SentimentSeries, len(scorers))
	var errs []models.ScoreError

	for _, sc := range scorers {
		values := make(models.SentimentSeries, len(comments))
		for i, text := range comments {
			v, err := sc.Score(text)
			if err != nil {
				errs = append(errs, models.ScoreError{Index: i, Scorer: sc.Name(), Err: err})
				continue
			}
			values[i] = v
		}
		series[sc.Name()] = values
	}
	return series, errs
}

// ScoreBatchParallel scores comments with a bounded worker pool.
// Scoring is pure per comment, so workers write disjoint slots of
// pre-sized slices and alignment is preserved by construction.
func ScoreBatchParallel(ctx context.Context, comments []string, scorers []Scorer, workers int) (map[string]models.SentimentSeries, []models.ScoreError) {
	if workers < 1 {
		workers = 1
	}

	series := make(map[string]models.SentimentSeries, len(scorers))
	for _, sc := range scorers {
		series[sc.Name()] = make(models.SentimentSeries, len(comments))
	}

	var (
		mu   sync.Mutex
		errs []models.ScoreError
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, sc := range scorers {
		values := series[sc.Name()]
		for i, text := range comments {
			if ctx.Err() != nil {
				break
			}
			g.Go(func() error {
				v, err := sc.Score(text)
				if err != nil {
					mu.Lock()
					errs = append(errs, models.ScoreError{Index: i, Scorer: sc.Name(), Err: err})
					mu.Unlock()
					return nil // one bad comment does not abort the batch
				}
				values[i] = v
				return nil
			})
		}
	}
	_ = g.Wait()

	sort.Slice(errs, func(a, b int) bool {
		if errs[a].Scorer != errs[b].Scorer {
			return errs[a].Scorer < errs[b].Scorer
		}
		return errs[a].Index < errs[b].Index
	})
	return series, errs
}
