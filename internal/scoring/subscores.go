package scoring

import (
	"github.com/meher4567/intellimatch/internal/index"
	"github.com/meher4567/intellimatch/internal/types"
)

// educationPoints is the tier table for education credit. A candidate
// meeting or exceeding the job's requirement gets full credit; below it,
// credit is proportional to the tier points.
var educationPoints = map[types.EducationLevel]float64{
	types.EducationNone:      0,
	types.EducationAssociate: 40,
	types.EducationBachelor:  60,
	types.EducationMaster:    80,
	types.EducationPhD:       100,
}

// semanticScore rescales cosine similarity from [-1,1] to [0,100]. Missing
// embeddings on either side yield the neutral 50 (cosine 0), never an
// undefined value.
func semanticScore(candidateVec, jobVec []float32) float64 {
	cos := index.Cosine(candidateVec, jobVec)
	return clamp((cos + 1) / 2 * 100)
}

// experienceScore is a piecewise function of the candidate's years against
// the job's minimum: 0 below the minimum, a linear ramp up to 100 at the
// ideal ceiling (factor x minimum), capped at 100 above it. A job with no
// minimum requirement gives everyone full credit.
func experienceScore(years, minYears, ceilingFactor float64) float64 {
	if minYears <= 0 {
		return 100
	}
	if years < minYears {
		return 0
	}
	ideal := minYears * ceilingFactor
	if years >= ideal {
		return 100
	}
	return clamp((years - minYears) / (ideal - minYears) * 100)
}

// educationScore compares the candidate's level to the job's requirement
// using the tier table. No requirement means full credit for everyone.
func educationScore(candidate types.EducationLevel, required types.EducationLevel) float64 {
	if required == "" || required == types.EducationNone {
		return 100
	}
	if candidate.Rank() >= required.Rank() {
		return 100
	}
	requiredPoints := educationPoints[required]
	if requiredPoints == 0 {
		return 100
	}
	return clamp(educationPoints[candidate] / requiredPoints * 100)
}
