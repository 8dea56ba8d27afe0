package matching

import (
	"errors"
	"fmt"
	"math"
)

// NeutralScore is returned only when no preferences exist. The weighted path
// sums whole-number weights and can never land on it.
const NeutralScore = 0.5

const (
	MinScore = 0
	MaxScore = 100
)

const (
	WeightTitleExact    = 30
	WeightTitlePartial  = 15
	WeightLocation      = 25
	WeightRemote        = 15
	WeightSalaryFull    = 20
	WeightSalaryPartial = 10
	WeightJobType       = 10
)

var ErrInvalidWeights = errors.New("invalid matching weights")

type Weights struct {
	TitleExact    float64 `yaml:"title_exact" json:"title_exact"`
	TitlePartial  float64 `yaml:"title_partial" json:"title_partial"`
	Location      float64 `yaml:"location" json:"location"`
	Remote        float64 `yaml:"remote" json:"remote"`
	SalaryFull    float64 `yaml:"salary_full" json:"salary_full"`
	SalaryPartial float64 `yaml:"salary_partial" json:"salary_partial"`
	JobType       float64 `yaml:"job_type" json:"job_type"`
}

func DefaultWeights() Weights {
	return Weights{
		TitleExact:    WeightTitleExact,
		TitlePartial:  WeightTitlePartial,
		Location:      WeightLocation,
		Remote:        WeightRemote,
		SalaryFull:    WeightSalaryFull,
		SalaryPartial: WeightSalaryPartial,
		JobType:       WeightJobType,
	}
}

// Max is the score of a job that satisfies every criterion at full weight.
func (w Weights) Max() float64 {
	return w.TitleExact + w.Location + w.Remote + w.SalaryFull + w.JobType
}

func (w Weights) Validate() error {
	named := []struct {
		name string
		v    float64
	}{
		{"title_exact", w.TitleExact},
		{"title_partial", w.TitlePartial},
		{"location", w.Location},
		{"remote", w.Remote},
		{"salary_full", w.SalaryFull},
		{"salary_partial", w.SalaryPartial},
		{"job_type", w.JobType},
	}
	for _, it := range named {
		if it.v <= 0 {
			return fmt.Errorf("%w: %s must be > 0, got %v", ErrInvalidWeights, it.name, it.v)
		}
		if it.v != math.Trunc(it.v) {
			return fmt.Errorf("%w: %s must be a whole number, got %v", ErrInvalidWeights, it.name, it.v)
		}
	}
	if w.TitlePartial >= w.TitleExact {
		return fmt.Errorf("%w: title_partial (%v) must be below title_exact (%v)", ErrInvalidWeights, w.TitlePartial, w.TitleExact)
	}
	if w.SalaryPartial >= w.SalaryFull {
		return fmt.Errorf("%w: salary_partial (%v) must be below salary_full (%v)", ErrInvalidWeights, w.SalaryPartial, w.SalaryFull)
	}
	if w.Max() != MaxScore {
		return fmt.Errorf("%w: full weights must sum to %d, got %v", ErrInvalidWeights, MaxScore, w.Max())
	}
	return nil
}
