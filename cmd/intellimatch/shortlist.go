package main

import (
	"context"
	"fmt"
	"os"

	"github.com/meher4567/intellimatch/internal/embedding"
	"github.com/meher4567/intellimatch/internal/index"
	"github.com/spf13/cobra"
)

var shortlistCmd = &cobra.Command{
	Use:   "shortlist",
	Short: "Select the top-k semantically closest candidates for a job",
	Long:  "Builds an in-memory cosine similarity index over candidate embeddings and returns the k candidates closest to the job embedding. Use this as a cheap pre-filter before running the full scoring pipeline on large pools.",
	RunE:  runShortlist,
}

var (
	shortlistJob        string
	shortlistCandidates string
	shortlistOutput     string
	shortlistK          int
)

func init() {
	shortlistCmd.Flags().StringVarP(&shortlistJob, "job", "j", "", "Path to JobRequirement JSON file (required)")
	shortlistCmd.Flags().StringVarP(&shortlistCandidates, "candidates", "c", "", "Path to candidate batch JSON file (required)")
	shortlistCmd.Flags().StringVarP(&shortlistOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	shortlistCmd.Flags().IntVarP(&shortlistK, "top", "k", 10, "Number of candidates to keep")

	for _, flag := range []string{"job", "candidates"} {
		if err := shortlistCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	rootCmd.AddCommand(shortlistCmd)
}

type shortlistOut struct {
	JobID string      `json:"job_id"`
	Hits  []index.Hit `json:"hits"`
}

func runShortlist(_ *cobra.Command, _ []string) error {
	job, err := loadJob(shortlistJob)
	if err != nil {
		return err
	}
	candidates, err := loadCandidates(shortlistCandidates)
	if err != nil {
		return err
	}

	// Embed the job description on the fly if the input file carries no
	// precomputed vector. The hashing provider keeps this offline and
	// deterministic; callers wanting Gemini vectors precompute them.
	query := job.Embedding
	dimension := len(query)
	if dimension == 0 {
		for _, c := range candidates {
			if len(c.Embedding) > 0 {
				dimension = len(c.Embedding)
				break
			}
		}
		if dimension == 0 {
			return fmt.Errorf("no embeddings found in job or candidates")
		}
		provider := embedding.NewHashingProvider(dimension)
		query, err = provider.Embed(context.Background(), job.Description)
		if err != nil {
			return fmt.Errorf("failed to embed job description: %w", err)
		}
	}

	ix, err := index.New(dimension)
	if err != nil {
		return err
	}
	skipped := 0
	for _, c := range candidates {
		if len(c.Embedding) == 0 {
			skipped++
			continue
		}
		if err := ix.Add(c.ID, c.Embedding); err != nil {
			return fmt.Errorf("failed to index candidate %s: %w", c.ID, err)
		}
	}
	if skipped > 0 {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: %d candidates without embeddings were skipped\n", skipped)
	}

	hits, err := ix.TopK(query, shortlistK)
	if err != nil {
		return err
	}
	return writeJSON(shortlistOutput, shortlistOut{JobID: job.ID, Hits: hits})
}
