// Package explain turns an already-computed score breakdown into a ranked
// list of contributing factors, matched/missing skill lists, and a short
// natural-language summary. It is pure presentation: it narrates the numbers
// the aggregator produced and never recomputes or alters them, so
// explanation and ranking cannot disagree.
package explain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/meher4567/intellimatch/internal/scoring"
	"github.com/meher4567/intellimatch/internal/types"
)

// Factor display names, in canonical dimension order. The order doubles as
// the deterministic tie-break when two factors contribute equal points.
const (
	factorSemantic   = "semantic similarity"
	factorSkills     = "skill coverage"
	factorExperience = "experience fit"
	factorEducation  = "education fit"
)

// Composite score bands for summary and recommendation templates.
const (
	bandStrong = 80.0
	bandGood   = 60.0
)

// Explainer narrates score breakdowns. It shares the scorer's taxonomy so
// the matched/missing skill lists use the same alias-aware comparison that
// produced the skills sub-score.
type Explainer struct {
	scorer *scoring.Scorer
}

// New creates an explainer over the given scorer.
func New(scorer *scoring.Scorer) *Explainer {
	return &Explainer{scorer: scorer}
}

// Explain builds the explanation for one scored (candidate, job) pair.
func (e *Explainer) Explain(breakdown types.ScoreBreakdown, job *types.JobRequirement, candidate *types.Candidate) types.Explanation {
	composite := scoring.Composite(breakdown, job.Weights)
	factors := contributions(breakdown, job.Weights)
	match := e.scorer.MatchRequiredSkills(candidate, job)

	return types.Explanation{
		SummaryText:    summarize(breakdown, composite, factors),
		TopFactors:     factors,
		MatchedSkills:  emptyNotNil(match.Matched),
		MissingSkills:  emptyNotNil(match.Missing),
		Recommendation: recommend(breakdown, composite),
	}
}

// contributions computes each dimension's point contribution
// (weight x sub-score) and ranks them descending. Points sum to the weighted
// composite; percentages are of that sum, 0 when the composite is 0 so no
// division by zero can occur.
func contributions(breakdown types.ScoreBreakdown, weights types.Weights) []types.Factor {
	factors := []types.Factor{
		{Name: factorSemantic, Points: weights.Semantic * breakdown.Semantic},
		{Name: factorSkills, Points: weights.Skills * breakdown.Skills},
		{Name: factorExperience, Points: weights.Experience * breakdown.Experience},
		{Name: factorEducation, Points: weights.Education * breakdown.Education},
	}

	total := 0.0
	for _, f := range factors {
		total += f.Points
	}
	for i := range factors {
		if total > 0 {
			factors[i].PercentOfTotal = factors[i].Points / total * 100
		}
	}

	sort.SliceStable(factors, func(i, j int) bool {
		return factors[i].Points > factors[j].Points
	})
	return factors
}

// summarize picks a template by composite-score band and names the top one
// or two contributing factors.
func summarize(breakdown types.ScoreBreakdown, composite float64, factors []types.Factor) string {
	if breakdown.KnockoutFailed {
		return fmt.Sprintf("Fails %d mandatory requirement(s): %s.",
			len(breakdown.KnockoutReasons), strings.Join(breakdown.KnockoutReasons, "; "))
	}

	topNames := []string{factors[0].Name}
	if len(factors) > 1 && factors[1].Points > 0 {
		topNames = append(topNames, factors[1].Name)
	}
	driver := strings.Join(topNames, " and ")

	switch {
	case composite >= bandStrong:
		return fmt.Sprintf("Strong match (%.0f/100), driven by %s.", composite, driver)
	case composite >= bandGood:
		return fmt.Sprintf("Good match (%.0f/100), strongest in %s.", composite, driver)
	default:
		return fmt.Sprintf("Weak match (%.0f/100); best signal is %s.", composite, driver)
	}
}

// recommend derives the recommendation from the score band and knockout
// status.
func recommend(breakdown types.ScoreBreakdown, composite float64) string {
	switch {
	case breakdown.KnockoutFailed:
		return "does not meet mandatory requirements"
	case composite >= bandStrong:
		return "recommend interview"
	case composite >= bandGood:
		return "consider for phone screen"
	default:
		return "not recommended for this role"
	}
}

// emptyNotNil keeps JSON output as [] rather than null.
func emptyNotNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
