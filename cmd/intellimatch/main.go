// Package main provides the intellimatch CLI for screening candidate
// resumes against job postings.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "intellimatch",
	Short: "Resume screening and ranking engine",
	Long:  "IntelliMatch validates extracted skill tokens against a curated taxonomy, scores candidates against job requirements across semantic, skill, experience and education signals, and produces ranked, explainable matches.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
