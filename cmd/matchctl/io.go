package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"jobmatch/internal/config"
	"jobmatch/internal/domain/matching"
)

func readJSONFile(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// loadPreferences returns nil when path is empty or the file holds a JSON
// null, so the scorer takes the no-preferences path.
func loadPreferences(path string) (*matching.UserPreferences, error) {
	if path == "" {
		return nil, nil
	}
	var p *matching.UserPreferences
	if err := readJSONFile(path, &p); err != nil {
		return nil, err
	}
	return p, nil
}

func loadScorer(weightsPath string) (*matching.Scorer, error) {
	w, err := config.LoadWeights(weightsPath)
	if err != nil {
		return nil, err
	}
	return matching.NewScorer(w)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
