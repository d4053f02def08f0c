package taxonomy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/meher4567/intellimatch/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ValidDocument(t *testing.T) {
	data := []byte(`{
		"skills": [
			{"canonical_name": "Go", "category": "language", "aliases": ["golang"]},
			{"canonical_name": "Docker", "category": "devops"}
		]
	}`)

	tax, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, 2, tax.Len())

	skill, ok := tax.Lookup("golang")
	require.True(t, ok)
	assert.Equal(t, "Go", skill.CanonicalName)
}

func TestParse_MalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{"skills": [`))
	require.Error(t, err)
	var cfgErr *types.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestParse_EmptyTaxonomy(t *testing.T) {
	_, err := Parse([]byte(`{"skills": []}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no skills")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"skills":[{"canonical_name":"Python","category":"language"}]}`), 0644))

	tax, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, tax.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
