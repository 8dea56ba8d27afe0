package job

import (
	"strings"
	"time"

	"jobmatch/internal/domain/matching"

	"github.com/google/uuid"
)

type Job struct {
	ID             uuid.UUID
	CompanyID      *uuid.UUID
	Title          string
	Company        string
	Location       string
	Description    *string
	Remote         bool
	JobTypes       []string
	Benefits       []string
	SalaryMin      *float64
	SalaryMax      *float64
	SalaryPeriod   *string
	SalaryCurrency *string
	PostedAt       *time.Time
	CreatedAt      time.Time
}

// ToMatching builds the scorer's view of the posting. A salary is only
// attached when min, max and period are all known.
func (j Job) ToMatching() matching.Job {
	out := matching.Job{
		ID:         j.ID,
		Title:      j.Title,
		Company:    j.Company,
		Location:   j.Location,
		Remote:     j.Remote,
		JobType:    append([]string(nil), j.JobTypes...),
		Benefits:   append([]string(nil), j.Benefits...),
		PostedDate: j.PostedAt,
	}
	if j.Description != nil {
		out.Description = *j.Description
	}
	if j.SalaryMin != nil && j.SalaryMax != nil && j.SalaryPeriod != nil && strings.TrimSpace(*j.SalaryPeriod) != "" {
		sal := &matching.Salary{
			Min:    *j.SalaryMin,
			Max:    *j.SalaryMax,
			Period: matching.PayPeriod(strings.TrimSpace(*j.SalaryPeriod)),
		}
		if j.SalaryCurrency != nil {
			sal.Currency = *j.SalaryCurrency
		}
		out.Salary = sal
	}
	return out
}
