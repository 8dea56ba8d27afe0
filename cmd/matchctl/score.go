package main

import (
	"jobmatch/internal/domain/matching"

	"github.com/spf13/cobra"
)

type scoreOptions struct {
	jobPath     string
	prefsPath   string
	weightsPath string
}

func newScoreCmd() *cobra.Command {
	var opts scoreOptions

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score one job posting against user preferences",
		Long:  "Reads a job posting and optional user preferences as JSON and prints the match score with its reasons. Without --prefs the neutral score is returned.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScore(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.jobPath, "job", "j", "", "Path to job JSON file (required)")
	cmd.Flags().StringVarP(&opts.prefsPath, "prefs", "p", "", "Path to preferences JSON file")
	cmd.Flags().StringVarP(&opts.weightsPath, "weights", "w", "", "Path to weights YAML file")
	_ = cmd.MarkFlagRequired("job")

	return cmd
}

func runScore(cmd *cobra.Command, opts scoreOptions) error {
	scorer, err := loadScorer(opts.weightsPath)
	if err != nil {
		return err
	}

	var job matching.Job
	if err := readJSONFile(opts.jobPath, &job); err != nil {
		return err
	}
	prefs, err := loadPreferences(opts.prefsPath)
	if err != nil {
		return err
	}

	return writeJSON(cmd.OutOrStdout(), scorer.Score(job, prefs))
}
