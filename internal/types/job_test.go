package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validJob() JobRequirement {
	return JobRequirement{
		ID: "job-1",
		RequiredSkills: []RequiredSkill{
			{SkillName: "Python", Importance: 5, Mandatory: true},
			{SkillName: "Docker", Importance: 3},
		},
		MinExperienceYears:   3,
		EducationRequirement: EducationBachelor,
		Weights:              Weights{Semantic: 0.3, Skills: 0.4, Experience: 0.2, Education: 0.1},
	}
}

func TestNewJobRequirement_Valid(t *testing.T) {
	job, err := NewJobRequirement(validJob())
	require.NoError(t, err)
	assert.Equal(t, "job-1", job.ID)
	assert.InDelta(t, 1.0, job.Weights.Sum(), 1e-9)
}

func TestNewJobRequirement_WeightsMustSumToOne(t *testing.T) {
	job := validJob()
	job.Weights = Weights{Semantic: 0.3, Skills: 0.3, Experience: 0.2, Education: 0.1}

	_, err := NewJobRequirement(job)
	require.Error(t, err)
	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "sum to 1.0")
}

func TestNewJobRequirement_WeightSumTolerance(t *testing.T) {
	job := validJob()
	// Float rounding within epsilon must not be rejected.
	job.Weights = Weights{Semantic: 0.1, Skills: 0.2, Experience: 0.3, Education: 0.4}
	_, err := NewJobRequirement(job)
	assert.NoError(t, err)
}

func TestNewJobRequirement_ValidatorTags(t *testing.T) {
	job := validJob()
	job.ID = ""
	_, err := NewJobRequirement(job)
	assert.Error(t, err)

	job = validJob()
	job.RequiredSkills[0].Importance = 9
	_, err = NewJobRequirement(job)
	assert.Error(t, err)

	job = validJob()
	job.RequiredSkills[0].SkillName = ""
	_, err = NewJobRequirement(job)
	assert.Error(t, err)

	job = validJob()
	job.MinExperienceYears = -1
	_, err = NewJobRequirement(job)
	assert.Error(t, err)

	job = validJob()
	job.Weights.Semantic = 1.2
	_, err = NewJobRequirement(job)
	assert.Error(t, err)
}

func TestNewJobRequirement_UnknownEducation(t *testing.T) {
	job := validJob()
	job.EducationRequirement = "diploma"
	_, err := NewJobRequirement(job)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "education")
}

func TestNewJobRequirement_EmptyEducationMeansNoRequirement(t *testing.T) {
	job := validJob()
	job.EducationRequirement = ""
	_, err := NewJobRequirement(job)
	assert.NoError(t, err)
}
