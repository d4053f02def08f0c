package main

import (
	"context"
	"fmt"
	"os"

	"github.com/meher4567/intellimatch/internal/embedding"
	"github.com/spf13/cobra"
)

var embedCmd = &cobra.Command{
	Use:   "embed",
	Short: "Precompute embeddings for a candidate batch",
	Long:  "Embeds each candidate's resume text with Gemini and writes the batch back with the embedding field populated. With --offline a deterministic hashing embedder is used instead, which is useful for fixtures and air-gapped runs.",
	RunE:  runEmbed,
}

var (
	embedCandidates string
	embedOutput     string
	embedAPIKey     string
	embedModel      string
	embedDim        int
	embedOffline    bool
)

func init() {
	embedCmd.Flags().StringVarP(&embedCandidates, "candidates", "c", "", "Path to candidate batch JSON file (required)")
	embedCmd.Flags().StringVarP(&embedOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	embedCmd.Flags().StringVar(&embedAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	embedCmd.Flags().StringVar(&embedModel, "model", "", "Embedding model name (default text-embedding-004)")
	embedCmd.Flags().IntVar(&embedDim, "dim", 768, "Embedding dimension")
	embedCmd.Flags().BoolVar(&embedOffline, "offline", false, "Use the deterministic hashing embedder instead of Gemini")

	if err := embedCmd.MarkFlagRequired("candidates"); err != nil {
		panic(fmt.Sprintf("failed to mark candidates flag as required: %v", err))
	}

	rootCmd.AddCommand(embedCmd)
}

func runEmbed(_ *cobra.Command, _ []string) error {
	candidates, err := loadCandidates(embedCandidates)
	if err != nil {
		return err
	}

	ctx := context.Background()
	var provider embedding.Provider
	if embedOffline {
		provider = embedding.NewHashingProvider(embedDim)
	} else {
		apiKey := embedAPIKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		if apiKey == "" {
			return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
		}
		gemini, err := embedding.NewGeminiProvider(ctx, apiKey, embedModel, embedDim)
		if err != nil {
			return fmt.Errorf("failed to create embedding provider: %w", err)
		}
		defer func() { _ = gemini.Close() }()
		provider = gemini
	}

	texts := make([]string, len(candidates))
	for i, c := range candidates {
		texts[i] = c.ResumeText
	}
	vectors, err := provider.EmbedBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to embed candidates: %w", err)
	}
	for i := range candidates {
		candidates[i].Embedding = vectors[i]
	}

	return writeJSON(embedOutput, candidatesFile{Candidates: candidates})
}
