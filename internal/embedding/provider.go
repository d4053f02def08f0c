// Package embedding wraps pretrained text encoders behind a stable contract.
// The scoring core treats providers as pure functions: identical input yields
// identical output, and all vectors have the configured fixed dimension.
package embedding

import "context"

// Provider maps arbitrary text to fixed-length dense vectors.
type Provider interface {
	// Embed encodes a single text.
	Embed(ctx context.Context, text string) ([]float32, error)
	// EmbedBatch encodes several texts in one call, for providers that
	// batch requests for throughput. Output order matches input order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	// Dimension returns the fixed output vector length.
	Dimension() int
}
