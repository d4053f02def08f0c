package explain

import (
	"testing"

	"github.com/meher4567/intellimatch/internal/scoring"
	"github.com/meher4567/intellimatch/internal/taxonomy"
	"github.com/meher4567/intellimatch/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testExplainer(t *testing.T) *Explainer {
	t.Helper()
	tax, err := taxonomy.New([]taxonomy.Skill{
		{CanonicalName: "Python", Category: taxonomy.CategoryLanguage, Aliases: []string{"py"}},
		{CanonicalName: "Docker", Category: taxonomy.CategoryDevOps},
	})
	require.NoError(t, err)
	scorer, err := scoring.New(tax, scoring.DefaultParams())
	require.NoError(t, err)
	return New(scorer)
}

func testJob(t *testing.T) *types.JobRequirement {
	t.Helper()
	job, err := types.NewJobRequirement(types.JobRequirement{
		ID: "job-1",
		RequiredSkills: []types.RequiredSkill{
			{SkillName: "Python", Importance: 5, Mandatory: true},
			{SkillName: "Docker", Importance: 3},
		},
		MinExperienceYears: 2,
		Weights:            types.Weights{Semantic: 0.3, Skills: 0.4, Experience: 0.2, Education: 0.1},
	})
	require.NoError(t, err)
	return job
}

func TestExplain_FactorPointsSumToComposite(t *testing.T) {
	e := testExplainer(t)
	job := testJob(t)
	breakdown := types.ScoreBreakdown{Semantic: 50, Skills: 100, Experience: 100, Education: 60}

	explanation := e.Explain(breakdown, job, &types.Candidate{
		ID:              "c",
		ValidatedSkills: []types.ValidatedSkill{{CanonicalName: "Python"}, {CanonicalName: "Docker"}},
	})

	require.Len(t, explanation.TopFactors, 4)
	sum := 0.0
	percent := 0.0
	for _, f := range explanation.TopFactors {
		sum += f.Points
		percent += f.PercentOfTotal
	}
	assert.InDelta(t, scoring.Composite(breakdown, job.Weights), sum, 1e-9)
	assert.InDelta(t, 100, percent, 1e-9)

	// 0.3*50=15, 0.4*100=40, 0.2*100=20, 0.1*60=6: skills, experience,
	// semantic, education.
	assert.Equal(t, "skill coverage", explanation.TopFactors[0].Name)
	assert.Equal(t, "experience fit", explanation.TopFactors[1].Name)
	assert.Equal(t, "semantic similarity", explanation.TopFactors[2].Name)
	assert.Equal(t, "education fit", explanation.TopFactors[3].Name)
	assert.InDelta(t, 40, explanation.TopFactors[0].Points, 1e-9)
}

func TestExplain_StrongMatch(t *testing.T) {
	e := testExplainer(t)
	job := testJob(t)
	breakdown := types.ScoreBreakdown{Semantic: 90, Skills: 100, Experience: 100, Education: 100}

	explanation := e.Explain(breakdown, job, &types.Candidate{
		ID:              "c",
		ValidatedSkills: []types.ValidatedSkill{{CanonicalName: "py"}, {CanonicalName: "Docker"}},
	})

	assert.Contains(t, explanation.SummaryText, "Strong match (97/100)")
	assert.Contains(t, explanation.SummaryText, "skill coverage")
	assert.Equal(t, "recommend interview", explanation.Recommendation)
	// Alias-aware matching: "py" counts as Python.
	assert.Equal(t, []string{"Python", "Docker"}, explanation.MatchedSkills)
	assert.Empty(t, explanation.MissingSkills)
}

func TestExplain_GoodAndWeakBands(t *testing.T) {
	e := testExplainer(t)
	job := testJob(t)
	candidate := &types.Candidate{
		ID:              "c",
		ValidatedSkills: []types.ValidatedSkill{{CanonicalName: "Python"}, {CanonicalName: "Docker"}},
	}

	good := e.Explain(types.ScoreBreakdown{Semantic: 50, Skills: 80, Experience: 50, Education: 80}, job, candidate)
	assert.Contains(t, good.SummaryText, "Good match")
	assert.Equal(t, "consider for phone screen", good.Recommendation)

	weak := e.Explain(types.ScoreBreakdown{Semantic: 40, Skills: 30, Experience: 0, Education: 0}, job, candidate)
	assert.Contains(t, weak.SummaryText, "Weak match")
	assert.Equal(t, "not recommended for this role", weak.Recommendation)
}

func TestExplain_KnockoutNarration(t *testing.T) {
	e := testExplainer(t)
	job := testJob(t)
	breakdown := types.ScoreBreakdown{
		Semantic:        80,
		Skills:          37.5,
		Experience:      100,
		Education:       100,
		KnockoutFailed:  true,
		KnockoutReasons: []string{"missing mandatory skill: Python"},
	}

	explanation := e.Explain(breakdown, job, &types.Candidate{
		ID:              "c",
		ValidatedSkills: []types.ValidatedSkill{{CanonicalName: "Docker"}},
	})

	assert.Contains(t, explanation.SummaryText, "Fails 1 mandatory requirement(s)")
	assert.Contains(t, explanation.SummaryText, "Python")
	assert.Equal(t, "does not meet mandatory requirements", explanation.Recommendation)
	assert.Equal(t, []string{"Docker"}, explanation.MatchedSkills)
	assert.Equal(t, []string{"Python"}, explanation.MissingSkills)
}

func TestExplain_ZeroScoreAvoidsDivisionByZero(t *testing.T) {
	e := testExplainer(t)
	job := testJob(t)

	explanation := e.Explain(types.ScoreBreakdown{}, job, &types.Candidate{ID: "c"})
	require.Len(t, explanation.TopFactors, 4)
	for _, f := range explanation.TopFactors {
		assert.Zero(t, f.Points)
		assert.Zero(t, f.PercentOfTotal)
	}
	assert.NotNil(t, explanation.MatchedSkills)
	assert.Equal(t, []string{"Python", "Docker"}, explanation.MissingSkills)
}
