// Package types provides type definitions for structured data used throughout the intellimatch system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ExtractedToken is a raw skill mention produced by the upstream tokenization/NER
// collaborator. Nothing in it is trusted as canonical; every token must pass
// through the skill validator before it participates in scoring.
type ExtractedToken struct {
	RawText    string `json:"raw_text"`
	SourceSpan int    `json:"source_span"` // byte offset into the extracted resume text
}

// ValidatedSkill is a skill that survived taxonomy validation.
type ValidatedSkill struct {
	CanonicalName string  `json:"canonical_name"`
	Category      string  `json:"category"`
	RawText       string  `json:"raw_text"`
	Confidence    float64 `json:"confidence"` // 1.0 exact/alias match, 0.8 base-skill match
}

// Candidate is one parsed resume, ready for scoring. Candidates are immutable
// once scoring begins: the scorer and ranker only read them, which is what
// makes concurrent scoring across jobs safe without locking.
type Candidate struct {
	ID              string           `json:"id"`
	ResumeText      string           `json:"resume_text,omitempty"`
	ValidatedSkills []ValidatedSkill `json:"validated_skills"`
	ExperienceYears float64          `json:"experience_years"`
	EducationLevel  EducationLevel   `json:"education_level"`
	Embedding       []float32        `json:"embedding,omitempty"`
}
