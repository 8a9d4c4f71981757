package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDictFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skills.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultDictionary_HasEntries(t *testing.T) {
	dict := DefaultDictionary()
	assert.NotEmpty(t, dict.Entries)

	names := make(map[string]bool)
	for _, entry := range dict.Entries {
		names[entry.Name] = true
	}
	assert.True(t, names["javascript"])
	assert.True(t, names["go"])
	assert.True(t, names["kubernetes"])
}

func TestLoadDictionary_Valid(t *testing.T) {
	path := writeDictFile(t, `{
		"skills": [
			{"name": "Elixir"},
			{"name": "Terraform", "aliases": ["TF"]}
		]
	}`)

	dict, err := LoadDictionary(path)
	require.NoError(t, err)
	require.Len(t, dict.Entries, 2)
	assert.Equal(t, "elixir", dict.Entries[0].Name)
	assert.Equal(t, "terraform", dict.Entries[1].Name)
	assert.Equal(t, []string{"tf"}, dict.Entries[1].Aliases)
}

func TestLoadDictionary_DeduplicatesEntries(t *testing.T) {
	path := writeDictFile(t, `{
		"skills": [
			{"name": "Python"},
			{"name": "python"}
		]
	}`)

	dict, err := LoadDictionary(path)
	require.NoError(t, err)
	assert.Len(t, dict.Entries, 1)
}

func TestLoadDictionary_RejectsMissingSkills(t *testing.T) {
	path := writeDictFile(t, `{"entries": []}`)

	_, err := LoadDictionary(path)
	assert.Error(t, err)
}

func TestLoadDictionary_RejectsEmptySkillName(t *testing.T) {
	path := writeDictFile(t, `{"skills": [{"name": ""}]}`)

	_, err := LoadDictionary(path)
	assert.Error(t, err)
}

func TestLoadDictionary_MissingFile(t *testing.T) {
	_, err := LoadDictionary(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
