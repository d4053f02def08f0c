package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/meher4567/intellimatch/internal/config"
	"github.com/meher4567/intellimatch/internal/observability"
	"github.com/meher4567/intellimatch/internal/ranking"
	"github.com/meher4567/intellimatch/internal/schemas"
	"github.com/meher4567/intellimatch/internal/scoring"
	"github.com/meher4567/intellimatch/internal/taxonomy"
	"github.com/spf13/cobra"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank a batch of candidates against a job requirement",
	Long:  "Scores every candidate independently, orders them by composite score with deterministic tie-breaking, assigns tiers, and writes a RankResult JSON including per-candidate failures.",
	RunE:  runRank,
}

var (
	rankTaxonomy   string
	rankJob        string
	rankCandidates string
	rankOutput     string
	rankConfigPath string
	rankVerbose    bool
)

func init() {
	rankCmd.Flags().StringVarP(&rankTaxonomy, "taxonomy", "t", "", "Path to taxonomy JSON file (required)")
	rankCmd.Flags().StringVarP(&rankJob, "job", "j", "", "Path to JobRequirement JSON file (required)")
	rankCmd.Flags().StringVarP(&rankCandidates, "candidates", "c", "", "Path to candidate batch JSON file (required)")
	rankCmd.Flags().StringVarP(&rankOutput, "out", "o", "", "Path to output RankResult JSON file (required)")
	rankCmd.Flags().StringVar(&rankConfigPath, "config", "", "Path to config JSON file")
	rankCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print a formatted ranking table to stdout")

	for _, flag := range []string{"taxonomy", "job", "candidates", "out"} {
		if err := rankCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	rootCmd.AddCommand(rankCmd)
}

func runRank(_ *cobra.Command, _ []string) error {
	// 1. Resolve configuration
	cfg := config.Config{}
	if rankConfigPath != "" {
		loaded, err := config.LoadConfig(rankConfigPath)
		if err != nil {
			return err
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = *loaded
	}
	cfg = cfg.MergeWithDefaults(config.Config{})

	// 2. Load taxonomy, job and candidates
	tax, err := taxonomy.LoadFile(rankTaxonomy)
	if err != nil {
		return fmt.Errorf("failed to load taxonomy: %w", err)
	}
	job, err := loadJob(rankJob)
	if err != nil {
		return err
	}
	candidates, err := loadCandidates(rankCandidates)
	if err != nil {
		return err
	}

	// 3. Build the scoring pipeline
	scorer, err := scoring.New(tax, scoring.Params{IdealCeilingFactor: cfg.IdealCeilingFactor})
	if err != nil {
		return err
	}
	thresholds := ranking.DefaultThresholds()
	if cfg.Tiers != nil {
		thresholds = ranking.Thresholds{S: cfg.Tiers.S, A: cfg.Tiers.A, B: cfg.Tiers.B, C: cfg.Tiers.C, D: cfg.Tiers.D}
	}
	ranker, err := ranking.New(scorer, thresholds)
	if err != nil {
		return err
	}

	// 4. Rank
	runID := uuid.New()
	result, err := ranker.Rank(context.Background(), candidates, job)
	if err != nil {
		return fmt.Errorf("failed to rank candidates: %w", err)
	}

	// 5. Write and schema-validate output
	if err := writeJSON(rankOutput, result); err != nil {
		return err
	}
	if schemaPath := schemas.ResolveSchemaPath("schemas/rank_result.schema.json"); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, rankOutput); err != nil {
			// Output validation is a safety check, not a requirement
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Output validation failed: %v\n", err)
		}
	}

	if rankVerbose || cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintRankResult(result)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Run %s: ranked %d candidates (%d failures) to %s\n",
		runID, len(result.Matches), len(result.Failures), rankOutput)

	return nil
}
