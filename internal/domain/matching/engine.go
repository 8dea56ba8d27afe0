package matching

import (
	"fmt"
	"strings"
)

const (
	reasonTitleExact    = "Job title matches your preferred title %q"
	reasonTitlePartial  = "Job title is similar to your preferred title %q"
	reasonLocation      = "Location matches your preferred area"
	reasonRemote        = "Remote work available"
	reasonSalaryFull    = "Salary meets your minimum pay"
	reasonSalaryPartial = "Salary range partially meets your minimum pay"
	reasonJobType       = "Job type: %s"
)

type Scorer struct {
	weights Weights
}

var defaultScorer = &Scorer{weights: DefaultWeights()}

func NewScorer(w Weights) (*Scorer, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &Scorer{weights: w}, nil
}

func DefaultScorer() *Scorer {
	return defaultScorer
}

// Weights returns the scorer's weights. A nil or zero-value Scorer scores
// with DefaultWeights.
func (s *Scorer) Weights() Weights {
	if s == nil || s.weights == (Weights{}) {
		return DefaultWeights()
	}
	return s.weights
}

// Score rates job against prefs with the default weights.
func Score(job Job, prefs *UserPreferences) JobMatchScore {
	return defaultScorer.Score(job, prefs)
}

// Score never fails. A nil prefs yields NeutralScore with no reasons; any
// non-nil prefs, even an empty one, yields a value in [MinScore, MaxScore].
func (s *Scorer) Score(job Job, prefs *UserPreferences) JobMatchScore {
	if prefs == nil {
		return JobMatchScore{Job: job, Score: NeutralScore, MatchReasons: []string{}}
	}
	w := s.Weights()

	total := 0.0
	reasons := make([]string, 0, 5)
	add := func(weight float64, reason string) {
		total += weight
		reasons = append(reasons, reason)
	}

	if exact, title, ok := matchTitle(job.Title, prefs.JobTitles); ok {
		if exact {
			add(w.TitleExact, fmt.Sprintf(reasonTitleExact, title))
		} else {
			add(w.TitlePartial, fmt.Sprintf(reasonTitlePartial, title))
		}
	}

	if matchLocation(job.Location, prefs.City, prefs.Country) {
		add(w.Location, reasonLocation)
	}

	if prefs.RemoteWork != nil && *prefs.RemoteWork && job.Remote {
		add(w.Remote, reasonRemote)
	}

	switch matchSalary(job.Salary, prefs.MinimumPay, prefs.PayPeriod) {
	case salaryFull:
		add(w.SalaryFull, reasonSalaryFull)
	case salaryPartial:
		add(w.SalaryPartial, reasonSalaryPartial)
	}

	if types := jobTypeLabels(job.JobType); len(types) > 0 {
		add(w.JobType, fmt.Sprintf(reasonJobType, strings.Join(types, ", ")))
	}

	return JobMatchScore{Job: job, Score: clampScore(total), MatchReasons: reasons}
}

// matchTitle reports the best match among preferred titles and the title
// that earned it. An exact match ends the search.
func matchTitle(jobTitle string, preferred []string) (exact bool, title string, ok bool) {
	jt := normalizeText(jobTitle)
	if jt == "" {
		return false, "", false
	}

	partial := ""
	for _, raw := range preferred {
		pt := normalizeText(raw)
		if pt == "" {
			continue
		}
		if pt == jt {
			return true, strings.TrimSpace(raw), true
		}
		if partial == "" && (containsNormalized(jt, pt) || containsNormalized(pt, jt)) {
			partial = strings.TrimSpace(raw)
		}
	}
	if partial != "" {
		return false, partial, true
	}
	return false, "", false
}

func matchLocation(jobLocation string, city, country *string) bool {
	loc := normalizeText(jobLocation)
	if loc == "" {
		return false
	}
	for _, term := range []*string{city, country} {
		if term == nil {
			continue
		}
		if containsNormalized(loc, normalizeText(*term)) {
			return true
		}
	}
	return false
}

type salaryOutcome int

const (
	salaryNone salaryOutcome = iota
	salaryPartial
	salaryFull
)

func matchSalary(sal *Salary, minimumPay *float64, period *PayPeriod) salaryOutcome {
	if sal == nil || minimumPay == nil || period == nil {
		return salaryNone
	}
	want := normalizePeriod(*period)
	if want == "" || normalizePeriod(sal.Period) != want {
		return salaryNone
	}
	if sal.Max >= *minimumPay {
		return salaryFull
	}
	if sal.Min >= *minimumPay {
		return salaryPartial
	}
	return salaryNone
}

func jobTypeLabels(in []string) []string {
	out := make([]string, 0, len(in))
	for _, t := range in {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		out = append(out, t)
	}
	return out
}

func clampScore(v float64) float64 {
	if v < MinScore {
		return MinScore
	}
	if v > MaxScore {
		return MaxScore
	}
	return v
}
