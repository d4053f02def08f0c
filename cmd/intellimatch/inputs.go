package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/meher4567/intellimatch/internal/types"
)

// tokensFile is the on-disk shape of an extracted-token batch, as produced
// by the upstream tokenization/NER collaborator.
type tokensFile struct {
	Tokens []types.ExtractedToken `json:"tokens"`
}

// candidatesFile is the on-disk shape of a candidate batch.
type candidatesFile struct {
	Candidates []types.Candidate `json:"candidates"`
}

// loadJob reads and constructs a job requirement, so malformed weight
// vectors fail here instead of inside the scoring loop.
func loadJob(path string) (*types.JobRequirement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", path, err)
	}
	var job types.JobRequirement
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job JSON: %w", err)
	}
	return types.NewJobRequirement(job)
}

// loadCandidates reads a candidate batch, normalizing freeform education
// strings to the recognized levels where possible. Unknown levels are left
// as-is; the scorer reports them as per-candidate input errors without
// aborting the batch.
func loadCandidates(path string) ([]types.Candidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidates file %s: %w", path, err)
	}
	var batch candidatesFile
	if err := json.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("failed to unmarshal candidates JSON: %w", err)
	}
	for i := range batch.Candidates {
		if level, ok := types.ParseEducationLevel(string(batch.Candidates[i].EducationLevel)); ok {
			batch.Candidates[i].EducationLevel = level
		}
	}
	return batch.Candidates, nil
}

// loadTokens reads an extracted-token batch.
func loadTokens(path string) ([]types.ExtractedToken, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tokens file %s: %w", path, err)
	}
	var batch tokensFile
	if err := json.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tokens JSON: %w", err)
	}
	return batch.Tokens, nil
}

// writeJSON marshals v with indentation and writes it to path, creating the
// output directory if needed. An empty path writes to stdout.
func writeJSON(path string, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output JSON: %w", err)
	}
	if path == "" {
		_, err = fmt.Println(string(out))
		return err
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
