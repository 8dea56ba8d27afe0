package config

import (
	"fmt"
	"os"
	"strings"

	"jobmatch/internal/domain/matching"

	"gopkg.in/yaml.v3"
)

type weightsFile struct {
	Weights matching.Weights `yaml:"weights"`
}

// LoadWeights reads a YAML file of the form
//
//	weights:
//	  title_exact: 30
//	  location: 25
//
// Keys that are not present keep their default value. An empty path returns
// the defaults.
func LoadWeights(path string) (matching.Weights, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return matching.DefaultWeights(), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return matching.Weights{}, fmt.Errorf("read weights file %s: %w", path, err)
	}
	return ParseWeights(b)
}

func ParseWeights(b []byte) (matching.Weights, error) {
	wf := weightsFile{Weights: matching.DefaultWeights()}
	if err := yaml.Unmarshal(b, &wf); err != nil {
		return matching.Weights{}, fmt.Errorf("parse weights: %w", err)
	}
	if err := wf.Weights.Validate(); err != nil {
		return matching.Weights{}, err
	}
	return wf.Weights, nil
}

// NewScorer builds the scorer for cfg, falling back to the default weights
// when no weights file is configured.
func NewScorer(cfg MatchingConfig) (*matching.Scorer, error) {
	w, err := LoadWeights(cfg.WeightsFile)
	if err != nil {
		return nil, err
	}
	return matching.NewScorer(w)
}
