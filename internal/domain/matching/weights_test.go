package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWeights_Valid(t *testing.T) {
	w := DefaultWeights()
	require.NoError(t, w.Validate())
	assert.Equal(t, float64(MaxScore), w.Max())
}

func TestWeights_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(w *Weights)
	}{
		{"zero weight", func(w *Weights) { w.Remote = 0 }},
		{"negative weight", func(w *Weights) { w.JobType = -10; w.Location = 45 }},
		{"fractional weight", func(w *Weights) { w.TitlePartial = 12.5 }},
		{"title partial not below exact", func(w *Weights) { w.TitlePartial = 30 }},
		{"salary partial not below full", func(w *Weights) { w.SalaryPartial = 25 }},
		{"sum below 100", func(w *Weights) { w.Location = 20 }},
		{"sum above 100", func(w *Weights) { w.JobType = 11 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := DefaultWeights()
			tc.mutate(&w)
			assert.ErrorIs(t, w.Validate(), ErrInvalidWeights)
		})
	}
}
