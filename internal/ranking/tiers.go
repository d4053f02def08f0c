package ranking

import (
	"fmt"

	"github.com/meher4567/intellimatch/internal/types"
)

// Thresholds holds the minimum composite score for each tier above F.
// They are configuration, not constants: cutoffs can be tuned per deployment
// without code changes.
type Thresholds struct {
	S float64 `json:"s"`
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
	D float64 `json:"d"`
}

// DefaultThresholds returns the standard S/A/B/C/D cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{S: 90, A: 80, B: 70, C: 60, D: 50}
}

// Validate rejects threshold sets that are out of range or not strictly
// descending, at construction time rather than at ranking time.
func (t Thresholds) Validate() error {
	cutoffs := []float64{t.S, t.A, t.B, t.C, t.D}
	for i, c := range cutoffs {
		if c < 0 || c > 100 {
			return &types.ConfigError{Message: fmt.Sprintf("tier threshold %g out of [0,100]", c)}
		}
		if i > 0 && c >= cutoffs[i-1] {
			return &types.ConfigError{
				Message: fmt.Sprintf("tier thresholds must be strictly descending, got %g before %g", cutoffs[i-1], c),
			}
		}
	}
	return nil
}

// TierFor assigns the discrete tier for a composite score.
func (t Thresholds) TierFor(score float64) types.Tier {
	switch {
	case score >= t.S:
		return types.TierS
	case score >= t.A:
		return types.TierA
	case score >= t.B:
		return types.TierB
	case score >= t.C:
		return types.TierC
	case score >= t.D:
		return types.TierD
	default:
		return types.TierF
	}
}
