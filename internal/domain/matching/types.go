package matching

import (
	"time"

	"github.com/google/uuid"
)

type PayPeriod string

const (
	PayPeriodHour  PayPeriod = "hour"
	PayPeriodDay   PayPeriod = "day"
	PayPeriodWeek  PayPeriod = "week"
	PayPeriodMonth PayPeriod = "month"
	PayPeriodYear  PayPeriod = "year"
)

var PayPeriods = []PayPeriod{PayPeriodHour, PayPeriodDay, PayPeriodWeek, PayPeriodMonth, PayPeriodYear}

type Salary struct {
	Min      float64   `json:"min"`
	Max      float64   `json:"max"`
	Period   PayPeriod `json:"period"`
	Currency string    `json:"currency"`
}

// Job is the scorer's read-only view of a posting. Only Title, Location,
// Remote, JobType and Salary are consulted.
type Job struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	Remote      bool       `json:"remote"`
	JobType     []string   `json:"jobType"`
	Salary      *Salary    `json:"salary,omitempty"`
	Description string     `json:"description,omitempty"`
	Benefits    []string   `json:"benefits,omitempty"`
	PostedDate  *time.Time `json:"postedDate,omitempty"`
}

// UserPreferences uses nil for every unset field. A nil *UserPreferences
// means the user has no preferences on file.
type UserPreferences struct {
	JobTitles  []string   `json:"job_titles,omitempty"`
	City       *string    `json:"city,omitempty"`
	Country    *string    `json:"country,omitempty"`
	RemoteWork *bool      `json:"remote_work,omitempty"`
	MinimumPay *float64   `json:"minimum_pay,omitempty"`
	PayPeriod  *PayPeriod `json:"pay_period,omitempty"`
}

type JobMatchScore struct {
	Job          Job      `json:"job"`
	Score        float64  `json:"score"`
	MatchReasons []string `json:"matchReasons"`
}

func (p PayPeriod) Valid() bool {
	n := normalizePeriod(p)
	for _, it := range PayPeriods {
		if n == it {
			return true
		}
	}
	return false
}
