package scoring

import (
	"testing"

	"github.com/meher4567/intellimatch/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExperienceScore_Ramp(t *testing.T) {
	// min=4, ideal=6 with the default 1.5x factor
	cases := []struct {
		years float64
		want  float64
	}{
		{0, 0},
		{3.9, 0},
		{4, 0},
		{5, 50},
		{6, 100},
		{20, 100},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, experienceScore(tc.years, 4, 1.5), 1e-9, "years=%g", tc.years)
	}
}

func TestExperienceScore_NoMinimumIsFullCredit(t *testing.T) {
	assert.InDelta(t, 100, experienceScore(0, 0, 1.5), 1e-9)
	assert.InDelta(t, 100, experienceScore(7, 0, 1.5), 1e-9)
}

func TestEducationScore(t *testing.T) {
	cases := []struct {
		name      string
		candidate types.EducationLevel
		required  types.EducationLevel
		want      float64
	}{
		{"no requirement", types.EducationNone, "", 100},
		{"requirement none", types.EducationNone, types.EducationNone, 100},
		{"meets exactly", types.EducationBachelor, types.EducationBachelor, 100},
		{"exceeds", types.EducationPhD, types.EducationBachelor, 100},
		{"associate vs bachelor", types.EducationAssociate, types.EducationBachelor, 100.0 * 40 / 60},
		{"bachelor vs master", types.EducationBachelor, types.EducationMaster, 75},
		{"none vs phd", types.EducationNone, types.EducationPhD, 0},
		{"master vs phd", types.EducationMaster, types.EducationPhD, 80},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, educationScore(tc.candidate, tc.required), 1e-9)
		})
	}
}

func TestSemanticScore_Rescaling(t *testing.T) {
	// Identical vectors: cosine 1 -> 100.
	assert.InDelta(t, 100, semanticScore([]float32{1, 2, 3}, []float32{1, 2, 3}), 1e-6)
	// Opposite vectors: cosine -1 -> 0.
	assert.InDelta(t, 0, semanticScore([]float32{1, 0}, []float32{-1, 0}), 1e-6)
	// Orthogonal: cosine 0 -> 50.
	assert.InDelta(t, 50, semanticScore([]float32{1, 0}, []float32{0, 1}), 1e-6)
	// Missing or degenerate vectors are neutral, never NaN.
	assert.InDelta(t, 50, semanticScore(nil, []float32{1, 0}), 1e-9)
	assert.InDelta(t, 50, semanticScore([]float32{0, 0}, []float32{1, 0}), 1e-9)
}

func TestMatchRequiredSkills_WeightedCoverage(t *testing.T) {
	scorer := testScorer(t)
	job, err := types.NewJobRequirement(types.JobRequirement{
		ID: "job-cov",
		RequiredSkills: []types.RequiredSkill{
			{SkillName: "Python", Importance: 5, Mandatory: true},
			{SkillName: "Docker", Importance: 3},
			{SkillName: "Kubernetes", Importance: 2},
		},
		Weights: types.Weights{Semantic: 0.25, Skills: 0.25, Experience: 0.25, Education: 0.25},
	})
	require.NoError(t, err)

	candidate := &types.Candidate{ID: "c", ValidatedSkills: skillSet("Python", "k8s")}
	match := scorer.MatchRequiredSkills(candidate, job)

	// Matched importance 5+2 of total 10.
	assert.InDelta(t, 70, match.CoverageScore, 1e-9)
	assert.Equal(t, []string{"Python", "Kubernetes"}, match.Matched)
	assert.Equal(t, []string{"Docker"}, match.Missing)
	assert.Empty(t, match.MissingMandatory)
}

func TestMatchRequiredSkills_MissingListsMandatoryFirst(t *testing.T) {
	scorer := testScorer(t)
	job, err := types.NewJobRequirement(types.JobRequirement{
		ID: "job-miss",
		RequiredSkills: []types.RequiredSkill{
			{SkillName: "Docker", Importance: 2},
			{SkillName: "Python", Importance: 5, Mandatory: true},
			{SkillName: "PostgreSQL", Importance: 3},
		},
		Weights: types.Weights{Semantic: 0.25, Skills: 0.25, Experience: 0.25, Education: 0.25},
	})
	require.NoError(t, err)

	match := scorer.MatchRequiredSkills(&types.Candidate{ID: "c"}, job)
	assert.Zero(t, match.CoverageScore)
	assert.Equal(t, []string{"Python"}, match.MissingMandatory)
	assert.Equal(t, []string{"Python", "Docker", "PostgreSQL"}, match.Missing)
}

func TestMatchRequiredSkills_NoRequirementsIsVacuouslyFull(t *testing.T) {
	scorer := testScorer(t)
	job, err := types.NewJobRequirement(types.JobRequirement{
		ID:      "job-empty",
		Weights: types.Weights{Semantic: 0.25, Skills: 0.25, Experience: 0.25, Education: 0.25},
	})
	require.NoError(t, err)

	match := scorer.MatchRequiredSkills(&types.Candidate{ID: "c"}, job)
	assert.InDelta(t, 100, match.CoverageScore, 1e-9)
	assert.Empty(t, match.Missing)
}
