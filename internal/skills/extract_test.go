package skills

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkinnnnn/givemejobs-match/internal/types"
)

func TestExtract_FindsSkillsInRequirements(t *testing.T) {
	extractor := NewDictionaryExtractor(nil)
	job := &types.JobPosting{
		Description: "Backend engineer role",
		Requirements: []string{
			"JavaScript and React required",
			"Node.js backend experience",
		},
	}

	found, err := extractor.Extract(context.Background(), job)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"javascript", "react", "node.js"}, found)
}

func TestExtract_MatchesAliases(t *testing.T) {
	extractor := NewDictionaryExtractor(nil)
	job := &types.JobPosting{
		Description: "We use Golang, k8s and Postgres in production",
	}

	found, err := extractor.Extract(context.Background(), job)
	require.NoError(t, err)
	assert.Contains(t, found, "go")
	assert.Contains(t, found, "kubernetes")
	assert.Contains(t, found, "postgresql")
}

func TestExtract_CaseInsensitive(t *testing.T) {
	extractor := NewDictionaryExtractor(nil)
	job := &types.JobPosting{Description: "PYTHON and DOCKER expertise"}

	found, err := extractor.Extract(context.Background(), job)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"python", "docker"}, found)
}

func TestExtract_ShortNamesNeedWordBoundaries(t *testing.T) {
	extractor := NewDictionaryExtractor(nil)
	// "go" inside "good" and "category" must not match.
	job := &types.JobPosting{Description: "A good opportunity in this category"}

	found, err := extractor.Extract(context.Background(), job)
	require.NoError(t, err)
	assert.NotContains(t, found, "go")
}

func TestExtract_EmptyPostingYieldsNoRequirements(t *testing.T) {
	extractor := NewDictionaryExtractor(nil)
	job := &types.JobPosting{}

	found, err := extractor.Extract(context.Background(), job)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestExtract_NoDuplicatesWhenAliasAndNameBothPresent(t *testing.T) {
	extractor := NewDictionaryExtractor(nil)
	job := &types.JobPosting{Description: "Go (golang) developer"}

	found, err := extractor.Extract(context.Background(), job)
	require.NoError(t, err)

	count := 0
	for _, s := range found {
		if s == "go" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestExtract_Deterministic(t *testing.T) {
	extractor := NewDictionaryExtractor(nil)
	job := &types.JobPosting{
		Description:  "Python, Django and PostgreSQL",
		Requirements: []string{"Docker and Kubernetes"},
	}

	first, err := extractor.Extract(context.Background(), job)
	require.NoError(t, err)
	second, err := extractor.Extract(context.Background(), job)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestContainsTerm_PunctuationBoundaries(t *testing.T) {
	assert.True(t, containsTerm("experience with go, java and c++", "go"))
	assert.True(t, containsTerm("experience with go, java and c++", "c++"))
	assert.False(t, containsTerm("googling things", "go"))
}
