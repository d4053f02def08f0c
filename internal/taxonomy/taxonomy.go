// Package taxonomy provides the curated skill reference data that gates all
// skill validation and matching.
package taxonomy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/meher4567/intellimatch/internal/types"
)

// Category classifies a canonical skill.
type Category string

// Recognized skill categories.
const (
	CategoryLanguage  Category = "language"
	CategoryFramework Category = "framework"
	CategoryDatabase  Category = "database"
	CategoryCloud     Category = "cloud"
	CategoryDevOps    Category = "devops"
	CategoryData      Category = "data"
	CategoryTool      Category = "tool"
	CategorySoft      Category = "soft"
)

// Skill is one canonical taxonomy entry. Aliases resolve to the canonical
// name during lookup.
type Skill struct {
	CanonicalName string   `json:"canonical_name"`
	Category      Category `json:"category"`
	Aliases       []string `json:"aliases,omitempty"`
}

// Taxonomy is the loaded-once, immutable skill reference. It is shared by
// reference across all concurrent scoring calls; nothing mutates it after
// New returns.
type Taxonomy struct {
	byKey  map[string]*Skill // normalized canonical name or alias -> entry
	skills []Skill
}

// New builds a taxonomy from a list of skills. Duplicate canonical names, or
// aliases that collide with another entry, are construction-time errors so
// that lookup is always unambiguous.
func New(skills []Skill) (*Taxonomy, error) {
	t := &Taxonomy{
		byKey:  make(map[string]*Skill, len(skills)*2),
		skills: make([]Skill, len(skills)),
	}
	copy(t.skills, skills)

	for i := range t.skills {
		entry := &t.skills[i]
		key := Normalize(entry.CanonicalName)
		if key == "" {
			return nil, &types.ConfigError{Message: fmt.Sprintf("taxonomy entry %d has an empty canonical name", i)}
		}
		if existing, ok := t.byKey[key]; ok {
			return nil, &types.ConfigError{
				Message: fmt.Sprintf("duplicate canonical name %q (conflicts with %q)", entry.CanonicalName, existing.CanonicalName),
			}
		}
		t.byKey[key] = entry

		for _, alias := range entry.Aliases {
			aliasKey := Normalize(alias)
			if aliasKey == "" || aliasKey == key {
				continue
			}
			if existing, ok := t.byKey[aliasKey]; ok {
				if existing == entry {
					continue
				}
				return nil, &types.ConfigError{
					Message: fmt.Sprintf("alias %q of %q conflicts with %q", alias, entry.CanonicalName, existing.CanonicalName),
				}
			}
			t.byKey[aliasKey] = entry
		}
	}

	return t, nil
}

// Lookup resolves a normalized string against canonical names and aliases.
func (t *Taxonomy) Lookup(normalized string) (*Skill, bool) {
	s, ok := t.byKey[normalized]
	return s, ok
}

// LookupPrefix resolves the longest token prefix of words that names a skill.
// This is the base-skill relation: "python 3.9" resolves to "Python" by
// dropping trailing tokens until a lookup hits. Returns the matched entry and
// how many leading tokens it consumed.
func (t *Taxonomy) LookupPrefix(words []string) (*Skill, int, bool) {
	for n := len(words); n > 0; n-- {
		if s, ok := t.byKey[strings.Join(words[:n], " ")]; ok {
			return s, n, true
		}
	}
	return nil, 0, false
}

// Canonicalize maps any skill spelling (canonical, alias, or versioned
// variant) to its canonical name. Unknown skills fall back to their
// normalized form so that job postings can still require skills the
// taxonomy has not catalogued yet.
func (t *Taxonomy) Canonicalize(name string) string {
	normalized := Normalize(name)
	if normalized == "" {
		return ""
	}
	if s, ok := t.byKey[normalized]; ok {
		return s.CanonicalName
	}
	if s, _, ok := t.LookupPrefix(strings.Fields(normalized)); ok {
		return s.CanonicalName
	}
	return normalized
}

// Len returns the number of canonical entries.
func (t *Taxonomy) Len() int {
	return len(t.skills)
}

// Skills returns the canonical entries sorted by name. The slice is a copy;
// the taxonomy itself stays immutable.
func (t *Taxonomy) Skills() []Skill {
	out := make([]Skill, len(t.skills))
	copy(out, t.skills)
	sort.Slice(out, func(i, j int) bool { return out[i].CanonicalName < out[j].CanonicalName })
	return out
}
