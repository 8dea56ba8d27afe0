package dto

import (
	"jobmatch/internal/domain/matching"

	"github.com/google/uuid"
)

type JobRecommendationSalary struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Period   string  `json:"period"`
	Currency string  `json:"currency,omitempty"`
}

type JobRecommendationResponse struct {
	JobID        uuid.UUID                `json:"job_id"`
	Title        string                   `json:"title"`
	CompanyName  string                   `json:"company_name"`
	Location     string                   `json:"location"`
	Remote       bool                     `json:"remote"`
	JobType      []string                 `json:"job_type"`
	Salary       *JobRecommendationSalary `json:"salary,omitempty"`
	Score        float64                  `json:"score"`
	MatchReasons []string                 `json:"match_reasons"`
}

func NewJobRecommendationResponses(items []matching.JobMatchScore) []JobRecommendationResponse {
	out := make([]JobRecommendationResponse, 0, len(items))
	for _, it := range items {
		r := JobRecommendationResponse{
			JobID:        it.Job.ID,
			Title:        it.Job.Title,
			CompanyName:  it.Job.Company,
			Location:     it.Job.Location,
			Remote:       it.Job.Remote,
			JobType:      it.Job.JobType,
			Score:        it.Score,
			MatchReasons: it.MatchReasons,
		}
		if r.JobType == nil {
			r.JobType = []string{}
		}
		if r.MatchReasons == nil {
			r.MatchReasons = []string{}
		}
		if s := it.Job.Salary; s != nil {
			r.Salary = &JobRecommendationSalary{Min: s.Min, Max: s.Max, Period: string(s.Period), Currency: s.Currency}
		}
		out = append(out, r)
	}
	return out
}
