package usecase

import (
	"context"
	"testing"

	"jobmatch/internal/domain/job"
	"jobmatch/internal/domain/matching"
	"jobmatch/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singaporeJob() job.Job {
	return job.Job{
		ID:           uuid.New(),
		Title:        "Software Engineer",
		Company:      "Acme",
		Location:     "Singapore",
		Remote:       true,
		JobTypes:     []string{"Full-time"},
		SalaryMin:    floatPtr(5000),
		SalaryMax:    floatPtr(8000),
		SalaryPeriod: strPtr("month"),
	}
}

func TestMatching_CalculateMatch_FullScore(t *testing.T) {
	j := singaporeJob()
	userID := uuid.New()
	prefs := newMockPrefsRepo()
	prefs.byUser[userID] = user.Preferences{
		UserID:     userID,
		JobTitles:  []string{"Software Engineer"},
		City:       strPtr("Singapore"),
		RemoteWork: boolPtr(true),
		MinimumPay: floatPtr(4000),
		PayPeriod:  strPtr("month"),
	}

	uc := NewMatchingUsecase(&mockJobRepo{items: []job.Job{j}}, prefs, nil)
	res, err := uc.CalculateMatch(context.Background(), userID, j.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(matching.MaxScore), res.Score)
	assert.Len(t, res.MatchReasons, 5)
	assert.Equal(t, j.ID, res.Job.ID)
}

func TestMatching_CalculateMatch_NoPreferencesGivesNeutral(t *testing.T) {
	j := singaporeJob()
	uc := NewMatchingUsecase(&mockJobRepo{items: []job.Job{j}}, newMockPrefsRepo(), nil)

	res, err := uc.CalculateMatch(context.Background(), uuid.New(), j.ID)
	require.NoError(t, err)
	assert.Equal(t, matching.NeutralScore, res.Score)
	assert.NotNil(t, res.MatchReasons)
	assert.Empty(t, res.MatchReasons)
}

func TestMatching_CalculateMatch_Errors(t *testing.T) {
	j := singaporeJob()
	ctx := context.Background()

	uc := NewMatchingUsecase(&mockJobRepo{items: []job.Job{j}}, newMockPrefsRepo(), nil)

	_, err := uc.CalculateMatch(ctx, uuid.Nil, j.ID)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = uc.CalculateMatch(ctx, uuid.New(), uuid.Nil)
	assert.ErrorIs(t, err, ErrJobNotFound)

	_, err = uc.CalculateMatch(ctx, uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrJobNotFound)

	broken := NewMatchingUsecase(&mockJobRepo{err: errBoom}, newMockPrefsRepo(), nil)
	_, err = broken.CalculateMatch(ctx, uuid.New(), j.ID)
	assert.ErrorIs(t, err, ErrInternal)

	prefs := newMockPrefsRepo()
	prefs.findErr = errBoom
	brokenPrefs := NewMatchingUsecase(&mockJobRepo{items: []job.Job{j}}, prefs, nil)
	_, err = brokenPrefs.CalculateMatch(ctx, uuid.New(), j.ID)
	assert.ErrorIs(t, err, ErrInternal)
}
