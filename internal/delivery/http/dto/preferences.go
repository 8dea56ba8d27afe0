package dto

import (
	"time"

	"jobmatch/internal/domain/user"
	"jobmatch/internal/usecase"

	"github.com/google/uuid"
)

type UpdatePreferencesRequest struct {
	JobTitles  []string `json:"job_titles"`
	City       *string  `json:"city"`
	Country    *string  `json:"country"`
	RemoteWork *bool    `json:"remote_work"`
	MinimumPay *float64 `json:"minimum_pay"`
	PayPeriod  *string  `json:"pay_period"`
}

func (r UpdatePreferencesRequest) ToInput() usecase.PreferencesInput {
	return usecase.PreferencesInput{
		JobTitles:  r.JobTitles,
		City:       r.City,
		Country:    r.Country,
		RemoteWork: r.RemoteWork,
		MinimumPay: r.MinimumPay,
		PayPeriod:  r.PayPeriod,
	}
}

type PreferencesResponse struct {
	UserID     uuid.UUID  `json:"user_id"`
	JobTitles  []string   `json:"job_titles"`
	City       *string    `json:"city"`
	Country    *string    `json:"country"`
	RemoteWork *bool      `json:"remote_work"`
	MinimumPay *float64   `json:"minimum_pay"`
	PayPeriod  *string    `json:"pay_period"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

func NewPreferencesResponse(p user.Preferences) PreferencesResponse {
	out := PreferencesResponse{
		UserID:     p.UserID,
		JobTitles:  p.JobTitles,
		City:       p.City,
		Country:    p.Country,
		RemoteWork: p.RemoteWork,
		MinimumPay: p.MinimumPay,
		PayPeriod:  p.PayPeriod,
	}
	if out.JobTitles == nil {
		out.JobTitles = []string{}
	}
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		out.UpdatedAt = &t
	}
	return out
}
