package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"jobmatch/internal/domain/matching"

	"github.com/google/uuid"
)

const (
	recommendationKeyPrefix  = "recs:"
	recommendationLockPrefix = "recs:lock:"
)

type recommendationCacheKeyInput struct {
	JobTitles  []string         `json:"job_titles"`
	City       string           `json:"city"`
	Country    string           `json:"country"`
	RemoteWork *bool            `json:"remote_work"`
	MinimumPay *float64         `json:"minimum_pay"`
	PayPeriod  string           `json:"pay_period"`
	HasPrefs   bool             `json:"has_prefs"`
	Weights    matching.Weights `json:"weights"`
	Limit      int              `json:"limit"`
	Offset     int              `json:"offset"`
	MinScore   float64          `json:"min_score"`
}

func normalizeKeyValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// RecommendationCacheKey hashes everything that can change the ranked page
// for a user. Two preference records that normalize identically share a key.
func RecommendationCacheKey(userID uuid.UUID, prefs *matching.UserPreferences, w matching.Weights, params JobRecommendationParams) string {
	in := recommendationCacheKeyInput{
		Weights:  w,
		Limit:    params.Limit,
		Offset:   params.Offset,
		MinScore: params.MinScore,
	}
	if prefs != nil {
		in.HasPrefs = true
		titles := make([]string, 0, len(prefs.JobTitles))
		for _, t := range prefs.JobTitles {
			t = normalizeKeyValue(t)
			if t == "" {
				continue
			}
			titles = append(titles, t)
		}
		in.JobTitles = titles
		in.City = normalizeKeyValue(derefString(prefs.City))
		in.Country = normalizeKeyValue(derefString(prefs.Country))
		in.RemoteWork = prefs.RemoteWork
		in.MinimumPay = prefs.MinimumPay
		if prefs.PayPeriod != nil {
			in.PayPeriod = normalizeKeyValue(string(*prefs.PayPeriod))
		}
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return recommendationKeyPrefix + userID.String() + ":" + hex.EncodeToString(sum[:])
}

func RecommendationLockKey(cacheKey string) string {
	return recommendationLockPrefix + strings.TrimPrefix(cacheKey, recommendationKeyPrefix)
}

// RecommendationUserPattern matches every cached page of one user.
func RecommendationUserPattern(userID uuid.UUID) string {
	return recommendationKeyPrefix + userID.String() + ":*"
}
