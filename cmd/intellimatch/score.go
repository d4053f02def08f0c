package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/meher4567/intellimatch/internal/explain"
	"github.com/meher4567/intellimatch/internal/observability"
	"github.com/meher4567/intellimatch/internal/scoring"
	"github.com/meher4567/intellimatch/internal/taxonomy"
	"github.com/meher4567/intellimatch/internal/types"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one candidate against a job requirement",
	Long:  "Computes the per-dimension score breakdown, knockout evaluation, composite score and explanation for a single (candidate, job) pair.",
	RunE:  runScore,
}

var (
	scoreTaxonomy  string
	scoreJob       string
	scoreCandidate string
	scoreOutput    string
	scoreVerbose   bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreTaxonomy, "taxonomy", "t", "", "Path to taxonomy JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to JobRequirement JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreCandidate, "candidate", "c", "", "Path to Candidate JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a formatted breakdown to stdout")

	for _, flag := range []string{"taxonomy", "job", "candidate"} {
		if err := scoreCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	tax, err := taxonomy.LoadFile(scoreTaxonomy)
	if err != nil {
		return fmt.Errorf("failed to load taxonomy: %w", err)
	}

	job, err := loadJob(scoreJob)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(scoreCandidate)
	if err != nil {
		return fmt.Errorf("failed to read candidate file %s: %w", scoreCandidate, err)
	}
	var candidate types.Candidate
	if err := json.Unmarshal(data, &candidate); err != nil {
		return fmt.Errorf("failed to unmarshal candidate JSON: %w", err)
	}
	if level, ok := types.ParseEducationLevel(string(candidate.EducationLevel)); ok {
		candidate.EducationLevel = level
	}

	scorer, err := scoring.New(tax, scoring.DefaultParams())
	if err != nil {
		return err
	}

	breakdown, err := scorer.Score(&candidate, job)
	if err != nil {
		return fmt.Errorf("failed to score candidate %s: %w", candidate.ID, err)
	}
	composite := scoring.Composite(breakdown, job.Weights)
	explanation := explain.New(scorer).Explain(breakdown, job, &candidate)

	if scoreVerbose {
		observability.NewPrinter(os.Stdout).PrintBreakdown(candidate.ID, breakdown, composite)
	}

	out := struct {
		CandidateID    string               `json:"candidate_id"`
		JobID          string               `json:"job_id"`
		CompositeScore float64              `json:"composite_score"`
		Breakdown      types.ScoreBreakdown `json:"breakdown"`
		Explanation    types.Explanation    `json:"explanation"`
	}{
		CandidateID:    candidate.ID,
		JobID:          job.ID,
		CompositeScore: composite,
		Breakdown:      breakdown,
		Explanation:    explanation,
	}
	return writeJSON(scoreOutput, out)
}
