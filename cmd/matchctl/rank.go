package main

import (
	"fmt"

	"jobmatch/internal/domain/matching"

	"github.com/spf13/cobra"
)

type rankOptions struct {
	jobsPath    string
	prefsPath   string
	weightsPath string
	minScore    float64
	limit       int
	workers     int
}

func newRankCmd() *cobra.Command {
	var opts rankOptions

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank a batch of job postings",
		Long:  "Scores every job in a JSON array against the preferences and prints them ordered by descending score. Ties keep their input order.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRank(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.jobsPath, "jobs", "j", "", "Path to JSON array of jobs (required)")
	cmd.Flags().StringVarP(&opts.prefsPath, "prefs", "p", "", "Path to preferences JSON file")
	cmd.Flags().StringVarP(&opts.weightsPath, "weights", "w", "", "Path to weights YAML file")
	cmd.Flags().Float64Var(&opts.minScore, "min-score", 0, "Drop jobs scoring below this value")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "Maximum number of results (0 = all)")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "Parallel scoring workers (0 = NumCPU)")
	_ = cmd.MarkFlagRequired("jobs")

	return cmd
}

func runRank(cmd *cobra.Command, opts rankOptions) error {
	if opts.limit < 0 {
		return fmt.Errorf("--limit must not be negative")
	}
	if opts.minScore < matching.MinScore || opts.minScore > matching.MaxScore {
		return fmt.Errorf("--min-score must be between %d and %d", matching.MinScore, matching.MaxScore)
	}

	scorer, err := loadScorer(opts.weightsPath)
	if err != nil {
		return err
	}

	var jobs []matching.Job
	if err := readJSONFile(opts.jobsPath, &jobs); err != nil {
		return err
	}
	prefs, err := loadPreferences(opts.prefsPath)
	if err != nil {
		return err
	}

	ranked, err := scorer.Rank(cmd.Context(), jobs, prefs, matching.RankOptions{
		Workers:  opts.workers,
		MinScore: opts.minScore,
		Limit:    opts.limit,
	})
	if err != nil {
		return err
	}

	return writeJSON(cmd.OutOrStdout(), ranked)
}
