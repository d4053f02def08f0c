// Package skills validates raw extracted skill tokens against the taxonomy,
// turning noisy NER output into a deduplicated set of canonical skills with
// provenance.
package skills

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/meher4567/intellimatch/internal/taxonomy"
	"github.com/meher4567/intellimatch/internal/types"
)

// Match confidences. An exact or alias hit is certain; a base-skill hit
// ("python 3.9" matching "Python") is slightly discounted because the
// version suffix was guessed away.
const (
	confidenceExact = 1.0
	confidenceBase  = 0.8
)

// minTokenLength is the shortest normalized token considered for base-skill
// matching. Exact taxonomy hits bypass this so single-letter entries like
// "C" and "R" still resolve.
const minTokenLength = 2

// versionSuffix matches trailing version-ish tokens: "3.9", "v2", "2.x", "11+".
var versionSuffix = regexp.MustCompile(`^v?\d+(\.\d+)*(\.x)?\+?$`)

// Validator validates extracted tokens against a fixed taxonomy and stop-list.
// It holds no mutable state, so one instance is safe for concurrent use.
type Validator struct {
	tax  *taxonomy.Taxonomy
	stop map[string]bool
}

// Option configures a Validator.
type Option func(*Validator)

// WithExtraStopWords extends the built-in stop-list, for deployments whose
// postings use their own noise vocabulary.
func WithExtraStopWords(words []string) Option {
	return func(v *Validator) {
		merged := make(map[string]bool, len(v.stop)+len(words))
		for w := range v.stop {
			merged[w] = true
		}
		for _, w := range words {
			if n := taxonomy.Normalize(w); n != "" {
				merged[n] = true
			}
		}
		v.stop = merged
	}
}

// NewValidator creates a validator over the given taxonomy.
func NewValidator(tax *taxonomy.Taxonomy, opts ...Option) *Validator {
	v := &Validator{
		tax:  tax,
		stop: defaultStopWords,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate resolves raw tokens into validated canonical skills.
//
// For each token: normalize, then try an exact canonical/alias match, then a
// base-skill match with trailing version suffixes stripped. Tokens on the
// stop-list or failing the length/alphabetic heuristic never reach the
// base-skill fallback. Duplicate canonical names keep the highest-confidence
// occurrence; on a tie the first-seen occurrence wins, so the output is
// deterministic for a given input order. An empty token list yields an empty
// result, not an error.
func (v *Validator) Validate(tokens []types.ExtractedToken) []types.ValidatedSkill {
	validated := make([]types.ValidatedSkill, 0, len(tokens))
	byCanonical := make(map[string]int) // canonical name -> index into validated

	for _, token := range tokens {
		skill, confidence, ok := v.resolve(token.RawText)
		if !ok {
			continue
		}

		entry := types.ValidatedSkill{
			CanonicalName: skill.CanonicalName,
			Category:      string(skill.Category),
			RawText:       token.RawText,
			Confidence:    confidence,
		}

		if idx, seen := byCanonical[skill.CanonicalName]; seen {
			if entry.Confidence > validated[idx].Confidence {
				validated[idx] = entry
			}
			continue
		}
		byCanonical[skill.CanonicalName] = len(validated)
		validated = append(validated, entry)
	}

	return validated
}

// resolve attempts to match one raw token against the taxonomy.
func (v *Validator) resolve(raw string) (*taxonomy.Skill, float64, bool) {
	normalized := taxonomy.Normalize(raw)
	if normalized == "" {
		return nil, 0, false
	}

	if skill, ok := v.tax.Lookup(normalized); ok {
		return skill, confidenceExact, true
	}

	if v.stop[normalized] || !plausibleSkillToken(normalized) {
		return nil, 0, false
	}

	words := stripVersionSuffixes(strings.Fields(normalized))
	if len(words) == 0 {
		return nil, 0, false
	}
	if skill, _, ok := v.tax.LookupPrefix(words); ok {
		// Either a version suffix was stripped or the prefix walk found a
		// shorter known skill inside a longer phrase; both are base matches.
		return skill, confidenceBase, true
	}

	return nil, 0, false
}

// stripVersionSuffixes drops trailing version/numeric tokens.
func stripVersionSuffixes(words []string) []string {
	for len(words) > 0 && versionSuffix.MatchString(words[len(words)-1]) {
		words = words[:len(words)-1]
	}
	return words
}

// plausibleSkillToken rejects tokens too short or too numeric to be a skill
// mention worth a fuzzy lookup.
func plausibleSkillToken(normalized string) bool {
	if len([]rune(normalized)) < minTokenLength {
		return false
	}
	letters := 0
	for _, r := range normalized {
		if unicode.IsLetter(r) {
			letters++
		}
	}
	return letters*2 >= len([]rune(normalized))
}
