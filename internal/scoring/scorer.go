// Package scoring computes per-dimension match signals between a candidate
// and a job requirement set and aggregates them into a knockout-gated
// composite score.
package scoring

import (
	"fmt"

	"github.com/meher4567/intellimatch/internal/taxonomy"
	"github.com/meher4567/intellimatch/internal/types"
)

// defaultIdealCeilingFactor places the "ideal" experience ceiling at 1.5x
// the job's minimum: full credit at or above it, linear ramp below. The
// factor is tunable; there is no labeled data behind the default.
const defaultIdealCeilingFactor = 1.5

// Params tunes the scorer. Zero values take defaults via New.
type Params struct {
	// IdealCeilingFactor is the multiple of a job's minimum experience at
	// which the experience sub-score saturates at 100. Must exceed 1.
	IdealCeilingFactor float64
}

// DefaultParams returns the standard tuning.
func DefaultParams() Params {
	return Params{IdealCeilingFactor: defaultIdealCeilingFactor}
}

// Scorer scores candidates against jobs. It only reads the shared taxonomy
// and its params, so one instance serves any number of concurrent calls.
type Scorer struct {
	tax    *taxonomy.Taxonomy
	params Params
}

// New creates a scorer. A ceiling factor at or below 1 would make the
// experience ramp degenerate, so it is rejected at construction.
func New(tax *taxonomy.Taxonomy, params Params) (*Scorer, error) {
	if tax == nil {
		return nil, &types.ConfigError{Message: "taxonomy is required"}
	}
	if params.IdealCeilingFactor == 0 {
		params.IdealCeilingFactor = defaultIdealCeilingFactor
	}
	if params.IdealCeilingFactor <= 1 {
		return nil, &types.ConfigError{
			Message: fmt.Sprintf("ideal ceiling factor must exceed 1, got %g", params.IdealCeilingFactor),
		}
	}
	return &Scorer{tax: tax, params: params}, nil
}

// Score computes the per-dimension breakdown for one (candidate, job) pair.
// It never mutates its inputs and returns a fresh breakdown on every call.
// Bad candidate data yields an InputError; a failed knockout is a normal,
// successfully computed outcome, not an error.
func (s *Scorer) Score(candidate *types.Candidate, job *types.JobRequirement) (types.ScoreBreakdown, error) {
	if err := validateCandidate(candidate, job); err != nil {
		return types.ScoreBreakdown{}, err
	}

	match := s.MatchRequiredSkills(candidate, job)

	breakdown := types.ScoreBreakdown{
		Semantic:   semanticScore(candidate.Embedding, job.Embedding),
		Skills:     match.CoverageScore,
		Experience: experienceScore(candidate.ExperienceYears, job.MinExperienceYears, s.params.IdealCeilingFactor),
		Education:  educationScore(candidate.EducationLevel, job.EducationRequirement),
	}

	for _, missing := range match.MissingMandatory {
		breakdown.KnockoutFailed = true
		breakdown.KnockoutReasons = append(breakdown.KnockoutReasons,
			fmt.Sprintf("missing mandatory skill: %s", missing))
	}

	return breakdown, nil
}

// Composite collapses a breakdown into the single [0,100] score under the
// job's weights. A failed knockout forces 0 regardless of the weighted sum.
func Composite(breakdown types.ScoreBreakdown, weights types.Weights) float64 {
	if breakdown.KnockoutFailed {
		return 0
	}
	score := weights.Semantic*breakdown.Semantic +
		weights.Skills*breakdown.Skills +
		weights.Experience*breakdown.Experience +
		weights.Education*breakdown.Education
	return clamp(score)
}

// validateCandidate rejects malformed candidate input before any scoring.
func validateCandidate(candidate *types.Candidate, job *types.JobRequirement) error {
	if candidate == nil {
		return &types.InputError{Field: "candidate", Message: "must not be nil"}
	}
	if candidate.ID == "" {
		return &types.InputError{Field: "candidate.id", Message: "must not be empty"}
	}
	if candidate.ExperienceYears < 0 {
		return &types.InputError{
			Field:   "candidate.experience_years",
			Message: fmt.Sprintf("must be non-negative, got %g", candidate.ExperienceYears),
		}
	}
	if !candidate.EducationLevel.Valid() {
		return &types.InputError{
			Field:   "candidate.education_level",
			Message: fmt.Sprintf("unknown education level %q", candidate.EducationLevel),
		}
	}
	if len(candidate.Embedding) > 0 && len(job.Embedding) > 0 && len(candidate.Embedding) != len(job.Embedding) {
		return &types.InputError{
			Field:   "candidate.embedding",
			Message: fmt.Sprintf("dimension %d does not match job embedding dimension %d", len(candidate.Embedding), len(job.Embedding)),
		}
	}
	return nil
}

// clamp bounds a score to [0,100].
func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
