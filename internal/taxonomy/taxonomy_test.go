package taxonomy

import (
	"testing"

	"github.com/meher4567/intellimatch/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSkills() []Skill {
	return []Skill{
		{CanonicalName: "Python", Category: CategoryLanguage, Aliases: []string{"py"}},
		{CanonicalName: "JavaScript", Category: CategoryLanguage, Aliases: []string{"js", "ecmascript"}},
		{CanonicalName: "C", Category: CategoryLanguage},
		{CanonicalName: "C++", Category: CategoryLanguage, Aliases: []string{"cpp"}},
		{CanonicalName: "PostgreSQL", Category: CategoryDatabase, Aliases: []string{"postgres"}},
		{CanonicalName: "Amazon Web Services", Category: CategoryCloud, Aliases: []string{"aws"}},
	}
}

func TestNew_BasicLookup(t *testing.T) {
	tax, err := New(testSkills())
	require.NoError(t, err)
	assert.Equal(t, 6, tax.Len())

	skill, ok := tax.Lookup("python")
	require.True(t, ok)
	assert.Equal(t, "Python", skill.CanonicalName)
	assert.Equal(t, CategoryLanguage, skill.Category)
}

func TestNew_AliasResolvesToCanonicalEntry(t *testing.T) {
	tax, err := New(testSkills())
	require.NoError(t, err)

	byAlias, ok := tax.Lookup("postgres")
	require.True(t, ok)
	byName, ok := tax.Lookup("postgresql")
	require.True(t, ok)
	assert.Same(t, byName, byAlias)
}

func TestNew_DuplicateCanonicalName(t *testing.T) {
	_, err := New([]Skill{
		{CanonicalName: "Python", Category: CategoryLanguage},
		{CanonicalName: "python", Category: CategoryLanguage},
	})
	require.Error(t, err)
	var cfgErr *types.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "duplicate canonical name")
}

func TestNew_AliasConflict(t *testing.T) {
	_, err := New([]Skill{
		{CanonicalName: "Python", Category: CategoryLanguage},
		{CanonicalName: "Puppet", Category: CategoryDevOps, Aliases: []string{"python"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conflicts with")
}

func TestNew_EmptyCanonicalName(t *testing.T) {
	_, err := New([]Skill{{CanonicalName: "   ", Category: CategoryTool}})
	require.Error(t, err)
	var cfgErr *types.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestLookupPrefix_LongestMatchWins(t *testing.T) {
	tax, err := New(testSkills())
	require.NoError(t, err)

	skill, consumed, ok := tax.LookupPrefix([]string{"amazon", "web", "services"})
	require.True(t, ok)
	assert.Equal(t, "Amazon Web Services", skill.CanonicalName)
	assert.Equal(t, 3, consumed)

	skill, consumed, ok = tax.LookupPrefix([]string{"python", "scripting"})
	require.True(t, ok)
	assert.Equal(t, "Python", skill.CanonicalName)
	assert.Equal(t, 1, consumed)

	_, _, ok = tax.LookupPrefix([]string{"cobol"})
	assert.False(t, ok)
}

func TestCanonicalize(t *testing.T) {
	tax, err := New(testSkills())
	require.NoError(t, err)

	assert.Equal(t, "Python", tax.Canonicalize("PYTHON"))
	assert.Equal(t, "Python", tax.Canonicalize("py"))
	assert.Equal(t, "Python", tax.Canonicalize("Python 3.9"))
	assert.Equal(t, "C++", tax.Canonicalize("cpp"))
	// Unknown skills fall back to their normalized form.
	assert.Equal(t, "cobol", tax.Canonicalize("COBOL"))
	assert.Equal(t, "", tax.Canonicalize("   "))
}

func TestSkills_SortedCopy(t *testing.T) {
	tax, err := New(testSkills())
	require.NoError(t, err)

	out := tax.Skills()
	require.Len(t, out, 6)
	for i := 1; i < len(out); i++ {
		assert.Less(t, out[i-1].CanonicalName, out[i].CanonicalName)
	}

	// Mutating the copy must not affect lookups.
	out[0].CanonicalName = "mutated"
	_, ok := tax.Lookup("amazon web services")
	assert.True(t, ok)
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Python  ", "python"},
		{"C++", "c++"},
		{"C#", "c#"},
		{"Node.js", "node.js"},
		{"CI/CD", "ci/cd"},
		{"React,  Redux", "react redux"},
		{"machine-learning", "machine learning"},
		{"Java.", "java"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Normalize(tc.in), "input %q", tc.in)
	}
}
