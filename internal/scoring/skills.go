package scoring

import (
	"github.com/meher4567/intellimatch/internal/types"
)

// SkillMatch is the outcome of comparing a job's required skills against a
// candidate's validated skills. The explainer reuses it so the narrated
// matched/missing lists can never disagree with the scored ones.
type SkillMatch struct {
	// CoverageScore is importance-weighted coverage scaled to [0,100].
	CoverageScore float64
	// Matched holds canonical names of required skills the candidate has,
	// in the job's requirement order.
	Matched []string
	// Missing holds canonical names of required skills the candidate
	// lacks, mandatory ones first, each group in requirement order.
	Missing []string
	// MissingMandatory is the subset of Missing that are knockout criteria.
	MissingMandatory []string
}

// MatchRequiredSkills performs alias-aware comparison of the job's required
// skills against the candidate's validated skill set, using the same
// taxonomy canonicalization the validator applied. A job with zero required
// skills is vacuously satisfied: coverage is 100, never a division by zero.
func (s *Scorer) MatchRequiredSkills(candidate *types.Candidate, job *types.JobRequirement) SkillMatch {
	if len(job.RequiredSkills) == 0 {
		return SkillMatch{CoverageScore: 100}
	}

	have := make(map[string]bool, len(candidate.ValidatedSkills))
	for _, vs := range candidate.ValidatedSkills {
		have[s.tax.Canonicalize(vs.CanonicalName)] = true
	}

	var match SkillMatch
	var missingOptional []string
	totalImportance := 0
	matchedImportance := 0

	for _, req := range job.RequiredSkills {
		canonical := s.tax.Canonicalize(req.SkillName)
		totalImportance += req.Importance
		if have[canonical] {
			matchedImportance += req.Importance
			match.Matched = append(match.Matched, canonical)
			continue
		}
		if req.Mandatory {
			match.MissingMandatory = append(match.MissingMandatory, canonical)
		} else {
			missingOptional = append(missingOptional, canonical)
		}
	}

	match.Missing = append(append([]string{}, match.MissingMandatory...), missingOptional...)

	if totalImportance > 0 {
		match.CoverageScore = clamp(float64(matchedImportance) / float64(totalImportance) * 100)
	} else {
		match.CoverageScore = 100
	}
	return match
}
