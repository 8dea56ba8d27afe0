package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"jobmatch/internal/domain/user"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type PreferencesInput struct {
	JobTitles  []string `validate:"max=20,dive,max=120"`
	City       *string  `validate:"omitempty,max=120"`
	Country    *string  `validate:"omitempty,max=120"`
	RemoteWork *bool
	MinimumPay *float64 `validate:"omitempty,gte=0"`
	PayPeriod  *string  `validate:"omitempty,oneof=hour day week month year"`
}

type PreferencesUsecase interface {
	Get(ctx context.Context, userID uuid.UUID) (user.Preferences, error)
	Update(ctx context.Context, userID uuid.UUID, in PreferencesInput) (user.Preferences, error)
}

type Preferences struct {
	prefs    user.PreferencesRepository
	cache    RecommendationCache
	notifier RecommendationNotifier
	validate *validator.Validate
	logger   *log.Logger
}

func NewPreferencesUsecase(prefs user.PreferencesRepository, cache RecommendationCache, notifier RecommendationNotifier, logger *log.Logger) *Preferences {
	return &Preferences{
		prefs:    prefs,
		cache:    cache,
		notifier: notifier,
		validate: validator.New(),
		logger:   logger,
	}
}

// Get returns the stored preferences, or an empty record for a user that
// never saved any.
func (u *Preferences) Get(ctx context.Context, userID uuid.UUID) (user.Preferences, error) {
	if userID == uuid.Nil {
		return user.Preferences{}, ErrUnauthorized
	}
	p, err := u.prefs.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrPreferencesNotFound) {
			return user.Preferences{UserID: userID, JobTitles: []string{}}, nil
		}
		return user.Preferences{}, ErrInternal
	}
	return p, nil
}

func (u *Preferences) Update(ctx context.Context, userID uuid.UUID, in PreferencesInput) (user.Preferences, error) {
	if userID == uuid.Nil {
		return user.Preferences{}, ErrUnauthorized
	}

	in = normalizePreferencesInput(in)
	if err := u.validate.Struct(in); err != nil {
		return user.Preferences{}, fmt.Errorf("%w: %s", ErrInvalidInput, describeValidationError(err))
	}

	p := user.Preferences{
		UserID:     userID,
		JobTitles:  in.JobTitles,
		City:       in.City,
		Country:    in.Country,
		RemoteWork: in.RemoteWork,
		MinimumPay: in.MinimumPay,
		PayPeriod:  in.PayPeriod,
	}
	if err := u.prefs.Upsert(ctx, p); err != nil {
		return user.Preferences{}, ErrInternal
	}

	if u.cache != nil {
		if err := u.cache.DeleteByPattern(ctx, RecommendationUserPattern(userID)); err != nil && u.logger != nil {
			u.logger.Printf("[Preferences] cache invalidation failed user_id=%s err=%v", userID, err)
		}
	}
	if u.notifier != nil {
		u.notifier.NotifyRecommendationsUpdated(userID.String())
	}

	saved, err := u.prefs.FindByUserID(ctx, userID)
	if err != nil {
		return user.Preferences{}, ErrInternal
	}
	return saved, nil
}

// normalizePreferencesInput trims every string, drops blank titles and turns
// blank optional strings into nil.
func normalizePreferencesInput(in PreferencesInput) PreferencesInput {
	titles := make([]string, 0, len(in.JobTitles))
	for _, t := range in.JobTitles {
		t = strings.Join(strings.Fields(t), " ")
		if t == "" {
			continue
		}
		titles = append(titles, t)
	}
	in.JobTitles = titles
	in.City = trimOptional(in.City)
	in.Country = trimOptional(in.Country)
	in.PayPeriod = trimOptional(in.PayPeriod)
	if in.PayPeriod != nil {
		v := strings.ToLower(*in.PayPeriod)
		in.PayPeriod = &v
	}
	return in
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func describeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		ve := verrs[0]
		return fmt.Sprintf("%s failed %s", ve.Namespace(), ve.Tag())
	}
	return "invalid preferences"
}
