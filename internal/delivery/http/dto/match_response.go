package dto

import (
	"jobmatch/internal/domain/matching"

	"github.com/google/uuid"
)

type MatchResponse struct {
	JobID        uuid.UUID `json:"job_id"`
	Score        float64   `json:"score"`
	MatchReasons []string  `json:"match_reasons"`
}

func NewMatchResponse(res matching.JobMatchScore) MatchResponse {
	reasons := res.MatchReasons
	if reasons == nil {
		reasons = []string{}
	}
	return MatchResponse{JobID: res.Job.ID, Score: res.Score, MatchReasons: reasons}
}
