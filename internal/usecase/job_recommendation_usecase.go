package usecase

import (
	"context"
	"log"
	"time"

	"jobmatch/internal/domain/matching"
	"jobmatch/internal/domain/user"
	"jobmatch/internal/repository"

	"github.com/google/uuid"
)

const (
	defaultRecommendationLimit = 20
	maxRecommendationLimit     = 50
	defaultCandidatePoolSize   = 200
	recommendationLockTTL      = 30 * time.Second
)

type JobRecommendationParams struct {
	Limit    int
	Offset   int
	MinScore float64
}

type JobRecommendationUsecase interface {
	ResolveParams(params JobRecommendationParams) (JobRecommendationParams, error)
	GetRecommendations(ctx context.Context, userID uuid.UUID, params JobRecommendationParams) ([]matching.JobMatchScore, error)
}

type JobRecommendationOptions struct {
	Workers           int
	DefaultLimit      int
	CandidatePoolSize int
	CacheTTL          time.Duration
}

type JobRecommendation struct {
	jobs   repository.JobRepository
	prefs  user.PreferencesRepository
	scorer *matching.Scorer
	cache  RecommendationCache
	opts   JobRecommendationOptions
	logger *log.Logger
}

func NewJobRecommendationUsecase(
	jobs repository.JobRepository,
	prefs user.PreferencesRepository,
	scorer *matching.Scorer,
	cache RecommendationCache,
	opts JobRecommendationOptions,
	logger *log.Logger,
) *JobRecommendation {
	if scorer == nil {
		scorer = matching.DefaultScorer()
	}
	if opts.DefaultLimit <= 0 || opts.DefaultLimit > maxRecommendationLimit {
		opts.DefaultLimit = defaultRecommendationLimit
	}
	if opts.CandidatePoolSize <= 0 {
		opts.CandidatePoolSize = defaultCandidatePoolSize
	}
	return &JobRecommendation{jobs: jobs, prefs: prefs, scorer: scorer, cache: cache, opts: opts, logger: logger}
}

// ResolveParams validates params and returns them with the default and
// maximum page size applied.
func (u *JobRecommendation) ResolveParams(params JobRecommendationParams) (JobRecommendationParams, error) {
	if params.Limit < 0 || params.Offset < 0 || params.MinScore < 0 || params.MinScore > matching.MaxScore {
		return JobRecommendationParams{}, ErrInvalidInput
	}
	if params.Limit == 0 {
		params.Limit = u.opts.DefaultLimit
	}
	if params.Limit > maxRecommendationLimit {
		params.Limit = maxRecommendationLimit
	}
	return params, nil
}

func (u *JobRecommendation) GetRecommendations(ctx context.Context, userID uuid.UUID, params JobRecommendationParams) ([]matching.JobMatchScore, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	params, err := u.ResolveParams(params)
	if err != nil {
		return nil, err
	}

	prefs, err := loadPreferences(ctx, u.prefs, userID)
	if err != nil {
		return nil, ErrInternal
	}

	cacheKey := RecommendationCacheKey(userID, prefs, u.scorer.Weights(), params)
	lockKey := RecommendationLockKey(cacheKey)

	if u.cache != nil {
		var cached []matching.JobMatchScore
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			u.logf("[Recommendations] Cache HIT: %s", cacheKey)
			return cached, nil
		}
		u.logf("[Recommendations] Cache MISS: %s", cacheKey)

		ok, err := u.cache.SetIfNotExists(ctx, lockKey, "1", recommendationLockTTL)
		if err == nil && ok {
			u.logf("[Recommendations] Lock acquired: %s", lockKey)
			defer func() {
				_ = u.cache.Delete(context.Background(), lockKey)
			}()
		} else if err == nil {
			// Another request is computing the same page; reuse it if it landed.
			hit, err2 := u.cache.GetJSON(ctx, cacheKey, &cached)
			if err2 == nil && hit {
				u.logf("[Recommendations] Cache HIT: %s", cacheKey)
				return cached, nil
			}
			u.logf("[Recommendations] Lock wait fallback: %s", lockKey)
		}
	}

	candidates, err := u.jobs.ListJobs(ctx, u.opts.CandidatePoolSize, 0)
	if err != nil {
		return nil, ErrInternal
	}
	if len(candidates) == 0 {
		return nil, ErrNoJobsFound
	}

	mjobs := make([]matching.Job, 0, len(candidates))
	for _, j := range candidates {
		if j.ID == uuid.Nil {
			continue
		}
		mjobs = append(mjobs, j.ToMatching())
	}

	ranked, err := u.scorer.Rank(ctx, mjobs, prefs, matching.RankOptions{
		Workers:  u.opts.Workers,
		MinScore: params.MinScore,
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, ErrInternal
	}

	out := paginate(ranked, params.Offset, params.Limit)
	if len(out) == 0 {
		return nil, ErrNoJobsFound
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, out, u.opts.CacheTTL); err == nil {
			u.logf("[Recommendations] Cache SET: %s", cacheKey)
		}
	}

	return out, nil
}

func paginate(items []matching.JobMatchScore, offset, limit int) []matching.JobMatchScore {
	if offset >= len(items) {
		return []matching.JobMatchScore{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

func (u *JobRecommendation) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf(format, args...)
	}
}
