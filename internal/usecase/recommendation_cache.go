package usecase

import (
	"context"
	"time"
)

type RecommendationCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPattern(ctx context.Context, pattern string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}

// RecommendationNotifier pushes a refresh hint to a user's open sockets.
type RecommendationNotifier interface {
	NotifyRecommendationsUpdated(userID string)
}
