package score

import (
	"context"
	"sort"

	"github.com/numlab/distmatch/internal/model"
	"github.com/numlab/distmatch/internal/worker"
)

// Scorer compares the input bag against every group of a property index.
type Scorer struct {
	workers int
}

// NewScorer creates a scorer fanning comparisons out over the given number of
// workers.
func NewScorer(workers int) *Scorer {
	if workers <= 0 {
		workers = 1
	}
	return &Scorer{workers: workers}
}

type scoreJob struct {
	pair   model.Pair
	values []float64
}

// ScoreAll computes the KS statistic between the sorted input bag and every
// group in the index. The index and bag are shared read-only across workers;
// results come back unordered and are left for Rank to order.
func (s *Scorer) ScoreAll(ctx context.Context, sortedBag []float64, idx model.PropertyIndex) []model.ScoreResult {
	pool := worker.New(s.workers, func(_ context.Context, job scoreJob) model.ScoreResult {
		return model.ScoreResult{
			Score:    KS(sortedBag, job.values),
			Type:     job.pair.Type,
			Property: job.pair.Property,
			Values:   job.values,
		}
	})
	pool.Start(ctx)

	go func() {
		for pair, values := range idx {
			pool.Submit(ctx, scoreJob{pair: pair, values: values})
		}
		pool.Close()
	}()

	return pool.Wait()
}

// Rank orders results ascending by score; ties break on (type, property)
// lexical order so repeated runs print identically.
func Rank(results []model.ScoreResult) {
	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Score != b.Score {
			return a.Score < b.Score
		}
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		return a.Property < b.Property
	})
}
