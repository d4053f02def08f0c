package types

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// weightSumEpsilon is the tolerance for the weight-sum invariant.
const weightSumEpsilon = 1e-6

// RequiredSkill is one skill line of a job posting. Mandatory skills are
// knockout criteria: a candidate missing one scores zero regardless of the
// weighted sub-scores.
type RequiredSkill struct {
	SkillName  string `json:"skill_name" validate:"required"`
	Importance int    `json:"importance" validate:"min=1,max=5"`
	Mandatory  bool   `json:"mandatory"`
}

// Weights distributes the composite score across the four scoring dimensions.
// The weights must sum to 1.0 within epsilon; NewJobRequirement enforces this
// at construction so scoring calls never have to re-check it.
type Weights struct {
	Semantic   float64 `json:"semantic" validate:"min=0,max=1"`
	Skills     float64 `json:"skills" validate:"min=0,max=1"`
	Experience float64 `json:"experience" validate:"min=0,max=1"`
	Education  float64 `json:"education" validate:"min=0,max=1"`
}

// Sum returns the total of all four weights.
func (w Weights) Sum() float64 {
	return w.Semantic + w.Skills + w.Experience + w.Education
}

// JobRequirement is one job posting's requirement set. Construct with
// NewJobRequirement so that invalid weight vectors and malformed skill lines
// are rejected up front rather than at scoring time.
type JobRequirement struct {
	ID                   string          `json:"id" validate:"required"`
	Description          string          `json:"description,omitempty"`
	RequiredSkills       []RequiredSkill `json:"required_skills" validate:"dive"`
	MinExperienceYears   float64         `json:"min_experience_years" validate:"min=0"`
	EducationRequirement EducationLevel  `json:"education_requirement,omitempty"`
	Embedding            []float32       `json:"embedding,omitempty"`
	Weights              Weights         `json:"weights"`
}

// NewJobRequirement validates and returns a job requirement. All violations
// are ConfigError: they indicate a bad posting definition, not bad candidate
// input.
func NewJobRequirement(job JobRequirement) (*JobRequirement, error) {
	validate := validator.New()
	if err := validate.Struct(&job); err != nil {
		return nil, &ConfigError{Message: "invalid job requirement", Cause: err}
	}
	if job.EducationRequirement != "" && !job.EducationRequirement.Valid() {
		return nil, &ConfigError{
			Message: fmt.Sprintf("unknown education requirement %q", job.EducationRequirement),
		}
	}
	if diff := math.Abs(job.Weights.Sum() - 1.0); diff > weightSumEpsilon {
		return nil, &ConfigError{
			Message: fmt.Sprintf("weights must sum to 1.0, got %.6f", job.Weights.Sum()),
		}
	}
	return &job, nil
}
