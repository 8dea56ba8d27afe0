package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrPreferencesNotFound = errors.New("preferences not found")

type PreferencesRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (Preferences, error)
	Upsert(ctx context.Context, p Preferences) error
}
