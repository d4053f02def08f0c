package types

// Tier is a discrete triage bucket derived from thresholding the composite
// score.
type Tier string

// Tiers, best to worst.
const (
	TierS Tier = "S"
	TierA Tier = "A"
	TierB Tier = "B"
	TierC Tier = "C"
	TierD Tier = "D"
	TierF Tier = "F"
)

// ScoreBreakdown holds the per-dimension sub-scores for one (candidate, job)
// pair. Each sub-score is in [0,100]. When a knockout fires the sub-scores
// stay populated so the caller can see why the candidate failed, not just
// a blank zero.
type ScoreBreakdown struct {
	Semantic        float64  `json:"semantic"`
	Skills          float64  `json:"skills"`
	Experience      float64  `json:"experience"`
	Education       float64  `json:"education"`
	KnockoutFailed  bool     `json:"knockout_failed"`
	KnockoutReasons []string `json:"knockout_reasons,omitempty"`
}

// Factor is one scoring dimension's contribution to the composite score.
// Points is weight × sub-score, so factors sum to the composite.
type Factor struct {
	Name           string  `json:"factor_name"`
	Points         float64 `json:"points"`
	PercentOfTotal float64 `json:"percent_of_total"`
}

// Explanation narrates an already-computed score. It is produced strictly
// downstream of the numeric breakdown and never alters it.
type Explanation struct {
	SummaryText    string   `json:"summary_text"`
	TopFactors     []Factor `json:"top_factors"`
	MatchedSkills  []string `json:"matched_skills"`
	MissingSkills  []string `json:"missing_skills"`
	Recommendation string   `json:"recommendation"`
}

// RankedMatch is one candidate's final standing against a job.
type RankedMatch struct {
	CandidateID    string         `json:"candidate_id"`
	CompositeScore float64        `json:"composite_score"`
	Tier           Tier           `json:"tier"`
	Breakdown      ScoreBreakdown `json:"breakdown"`
	Explanation    Explanation    `json:"explanation"`
}
