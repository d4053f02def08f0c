// Package index provides an in-memory nearest-neighbor structure over a
// batch of candidate vectors, supporting top-k cosine-similarity queries
// against a job vector.
package index

import (
	"fmt"
	"math"
	"sort"

	"github.com/meher4567/intellimatch/internal/types"
)

// Hit is one top-k result.
type Hit struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"` // cosine similarity in [-1,1]
}

// Index holds a fixed-dimension batch of vectors keyed by candidate ID.
// Build it, then query; it is not safe for concurrent mutation, but TopK
// on a fully built index is read-only and safe to share.
type Index struct {
	dimension int
	ids       []string
	vectors   [][]float32
	seen      map[string]bool
}

// New creates an empty index for vectors of the given dimension.
func New(dimension int) (*Index, error) {
	if dimension <= 0 {
		return nil, &types.ConfigError{Message: fmt.Sprintf("index dimension must be positive, got %d", dimension)}
	}
	return &Index{
		dimension: dimension,
		seen:      make(map[string]bool),
	}, nil
}

// Add inserts a vector under an ID. Dimension mismatches and duplicate IDs
// are per-call input errors.
func (ix *Index) Add(id string, vector []float32) error {
	if id == "" {
		return &types.InputError{Field: "id", Message: "must not be empty"}
	}
	if len(vector) != ix.dimension {
		return &types.InputError{
			Field:   "vector",
			Message: fmt.Sprintf("dimension %d does not match index dimension %d", len(vector), ix.dimension),
		}
	}
	if ix.seen[id] {
		return &types.InputError{Field: "id", Message: fmt.Sprintf("duplicate id %q", id)}
	}
	ix.seen[id] = true
	ix.ids = append(ix.ids, id)
	ix.vectors = append(ix.vectors, vector)
	return nil
}

// Len returns the number of indexed vectors.
func (ix *Index) Len() int {
	return len(ix.ids)
}

// TopK returns the k most cosine-similar entries to the query, ordered by
// score descending with ID ascending as the tie-break, so repeated queries
// are reproducible. k larger than the index returns everything; k <= 0
// returns an empty slice.
func (ix *Index) TopK(query []float32, k int) ([]Hit, error) {
	if len(query) != ix.dimension {
		return nil, &types.InputError{
			Field:   "query",
			Message: fmt.Sprintf("dimension %d does not match index dimension %d", len(query), ix.dimension),
		}
	}
	if k <= 0 {
		return []Hit{}, nil
	}

	hits := make([]Hit, len(ix.ids))
	for i, vec := range ix.vectors {
		hits[i] = Hit{ID: ix.ids[i], Score: Cosine(query, vec)}
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].ID < hits[j].ID
	})

	if k > len(hits) {
		k = len(hits)
	}
	return hits[:k], nil
}

// Cosine returns the cosine similarity of two vectors. A zero-magnitude
// vector has no direction, so its similarity to anything is defined as 0
// rather than NaN. Vectors of unequal length score 0.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
