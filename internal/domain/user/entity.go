package user

import (
	"strings"
	"time"

	"jobmatch/internal/domain/matching"

	"github.com/google/uuid"
)

type Preferences struct {
	UserID     uuid.UUID
	JobTitles  []string
	City       *string
	Country    *string
	RemoteWork *bool
	MinimumPay *float64
	PayPeriod  *string
	UpdatedAt  time.Time
}

// ToMatching maps stored preferences onto the scorer's optional fields.
// Blank strings and empty title lists are treated as unset.
func (p Preferences) ToMatching() *matching.UserPreferences {
	out := &matching.UserPreferences{
		City:       nonBlank(p.City),
		Country:    nonBlank(p.Country),
		RemoteWork: p.RemoteWork,
		MinimumPay: p.MinimumPay,
	}
	for _, t := range p.JobTitles {
		if strings.TrimSpace(t) == "" {
			continue
		}
		out.JobTitles = append(out.JobTitles, t)
	}
	if pp := nonBlank(p.PayPeriod); pp != nil {
		period := matching.PayPeriod(*pp)
		out.PayPeriod = &period
	}
	return out
}

func nonBlank(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
