package usecase

import (
	"context"
	"errors"

	"jobmatch/internal/domain/matching"
	"jobmatch/internal/domain/user"
	"jobmatch/internal/repository"

	"github.com/google/uuid"
)

type MatchingUsecase interface {
	CalculateMatch(ctx context.Context, userID, jobID uuid.UUID) (matching.JobMatchScore, error)
}

type Matching struct {
	jobs   repository.JobRepository
	prefs  user.PreferencesRepository
	scorer *matching.Scorer
}

func NewMatchingUsecase(jobs repository.JobRepository, prefs user.PreferencesRepository, scorer *matching.Scorer) *Matching {
	if scorer == nil {
		scorer = matching.DefaultScorer()
	}
	return &Matching{jobs: jobs, prefs: prefs, scorer: scorer}
}

// CalculateMatch scores one job for the user. A user without stored
// preferences gets the neutral score rather than an error.
func (u *Matching) CalculateMatch(ctx context.Context, userID, jobID uuid.UUID) (matching.JobMatchScore, error) {
	if userID == uuid.Nil {
		return matching.JobMatchScore{}, ErrUnauthorized
	}
	if jobID == uuid.Nil {
		return matching.JobMatchScore{}, ErrJobNotFound
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return matching.JobMatchScore{}, ErrJobNotFound
		}
		return matching.JobMatchScore{}, ErrInternal
	}

	prefs, err := loadPreferences(ctx, u.prefs, userID)
	if err != nil {
		return matching.JobMatchScore{}, ErrInternal
	}

	return u.scorer.Score(j.ToMatching(), prefs), nil
}

func loadPreferences(ctx context.Context, repo user.PreferencesRepository, userID uuid.UUID) (*matching.UserPreferences, error) {
	if repo == nil {
		return nil, nil
	}
	p, err := repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrPreferencesNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return p.ToMatching(), nil
}
