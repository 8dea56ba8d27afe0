package matching

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

type RankOptions struct {
	Workers  int
	MinScore float64
	Limit    int
}

// Rank scores jobs against prefs and orders them by descending score,
// keeping input order among ties. MinScore applies only when prefs is set.
func (s *Scorer) Rank(ctx context.Context, jobs []Job, prefs *UserPreferences, opts RankOptions) ([]JobMatchScore, error) {
	if len(jobs) == 0 {
		return []JobMatchScore{}, nil
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	scored := make([]JobMatchScore, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			scored[i] = s.Score(jobs[i], prefs)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := scored[:0]
	for _, it := range scored {
		if prefs != nil && it.Score < opts.MinScore {
			continue
		}
		out = append(out, it)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}

func Rank(ctx context.Context, jobs []Job, prefs *UserPreferences, opts RankOptions) ([]JobMatchScore, error) {
	return defaultScorer.Rank(ctx, jobs, prefs, opts)
}
