package embedding

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
)

// HashingProvider is a deterministic, in-process Provider. Each word hashes
// into a bucket of the output vector and the result is L2-normalized. It has
// none of the semantics of a trained encoder, but it is stable across runs
// and machines, which makes it suitable for tests and offline batch runs
// where no API key is available.
type HashingProvider struct {
	dimension int
}

// NewHashingProvider creates a hashing provider of the given dimension.
func NewHashingProvider(dimension int) *HashingProvider {
	if dimension <= 0 {
		dimension = 64
	}
	return &HashingProvider{dimension: dimension}
}

// Embed encodes text by hashed word counts.
func (p *HashingProvider) Embed(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, p.dimension)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		_, _ = h.Write([]byte(word))
		bucket := int(h.Sum32()) % p.dimension
		if bucket < 0 {
			bucket += p.dimension
		}
		vec[bucket]++
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm > 0 {
		scale := float32(1 / math.Sqrt(norm))
		for i := range vec {
			vec[i] *= scale
		}
	}
	return vec, nil
}

// EmbedBatch encodes each text independently.
func (p *HashingProvider) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vec, err := p.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		vectors[i] = vec
	}
	return vectors, nil
}

// Dimension returns the configured vector length.
func (p *HashingProvider) Dimension() int {
	return p.dimension
}
