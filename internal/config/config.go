// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// TierThresholds mirrors ranking.Thresholds for configuration files.
type TierThresholds struct {
	S float64 `json:"s,omitempty"`
	A float64 `json:"a,omitempty"`
	B float64 `json:"b,omitempty"`
	C float64 `json:"c,omitempty"`
	D float64 `json:"d,omitempty"`
}

// Config is the CLI configuration loadable from a JSON file. All fields are
// optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Taxonomy string `json:"taxonomy,omitempty"` // Path to taxonomy JSON file

	// Scoring
	IdealCeilingFactor float64         `json:"ideal_ceiling_factor,omitempty"` // Experience ideal ceiling as multiple of the minimum
	Tiers              *TierThresholds `json:"tiers,omitempty"`                // Tier cutoffs; nil uses S90/A80/B70/C60/D50
	ExtraStopWords     []string        `json:"extra_stop_words,omitempty"`     // Additional validator stop-list entries

	// Embeddings
	APIKey         string `json:"api_key,omitempty"`         // Gemini API key
	EmbeddingModel string `json:"embedding_model,omitempty"` // Embedding model name
	EmbeddingDim   int    `json:"embedding_dim,omitempty"`   // Declared embedding dimensionality

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Required fields
// are handled by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.IdealCeilingFactor != 0 && c.IdealCeilingFactor <= 1 {
		return fmt.Errorf("config error: 'ideal_ceiling_factor' must exceed 1")
	}
	if c.EmbeddingDim < 0 {
		return fmt.Errorf("config error: 'embedding_dim' must be non-negative")
	}
	if c.Taxonomy != "" {
		if _, err := os.Stat(c.Taxonomy); os.IsNotExist(err) {
			return fmt.Errorf("config error: taxonomy file not found: %s", c.Taxonomy)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. CLI flags always win for booleans, so they are not merged.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Taxonomy == "" {
		result.Taxonomy = defaults.Taxonomy
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.EmbeddingDim == 0 {
		if defaults.EmbeddingDim > 0 {
			result.EmbeddingDim = defaults.EmbeddingDim
		} else {
			result.EmbeddingDim = 768 // text-embedding-004 output size
		}
	}
	if result.IdealCeilingFactor == 0 {
		if defaults.IdealCeilingFactor > 1 {
			result.IdealCeilingFactor = defaults.IdealCeilingFactor
		} else {
			result.IdealCeilingFactor = 1.5
		}
	}
	if result.Tiers == nil {
		result.Tiers = defaults.Tiers
	}
	if len(result.ExtraStopWords) == 0 {
		result.ExtraStopWords = defaults.ExtraStopWords
	}

	return result
}
