package main

import (
	"fmt"

	"jobmatch/internal/config"

	"github.com/spf13/cobra"
)

func newWeightsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weights",
		Short: "Inspect scoring weights",
	}
	cmd.AddCommand(newWeightsValidateCmd())
	cmd.AddCommand(newWeightsShowCmd())
	return cmd
}

func newWeightsValidateCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a weights YAML file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, err := config.LoadWeights(path)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "weights OK (max score %.0f)\n", w.Max())
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "", "Path to weights YAML file (required)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newWeightsShowCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective weights",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, err := config.LoadWeights(path)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), w)
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "", "Path to weights YAML file (defaults when empty)")
	return cmd
}
