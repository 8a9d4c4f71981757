package cache

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkinnnnn/givemejobs-match/internal/types"
)

func scoreFor(profileID, jobID uuid.UUID) *types.MatchScore {
	return &types.MatchScore{ProfileID: profileID, JobID: jobID, OverallScore: 80}
}

func TestMemoryCache_SetAndGet(t *testing.T) {
	c := NewMemoryCache()
	profileID, jobID := uuid.New(), uuid.New()
	key := Key(profileID, jobID)

	c.Set(key, scoreFor(profileID, jobID), 0)

	got, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, 80.0, got.OverallScore)
}

func TestMemoryCache_MissingKey(t *testing.T) {
	c := NewMemoryCache()
	_, ok := c.Get(Key(uuid.New(), uuid.New()))
	assert.False(t, ok)
}

func TestMemoryCache_RepeatedGetsReturnEqualScore(t *testing.T) {
	c := NewMemoryCache()
	profileID, jobID := uuid.New(), uuid.New()
	key := Key(profileID, jobID)
	c.Set(key, scoreFor(profileID, jobID), 0)

	first, ok1 := c.Get(key)
	second, ok2 := c.Get(key)
	third, ok3 := c.Get(key)

	require.True(t, ok1 && ok2 && ok3)
	assert.Equal(t, first, second)
	assert.Equal(t, second, third)
}

func TestMemoryCache_MutatingReturnedScoreDoesNotCorruptCache(t *testing.T) {
	c := NewMemoryCache()
	profileID, jobID := uuid.New(), uuid.New()
	key := Key(profileID, jobID)

	stored := scoreFor(profileID, jobID)
	stored.MatchingSkills = []string{"go", "postgresql"}
	c.Set(key, stored, 0)
	stored.OverallScore = 0
	stored.MatchingSkills[0] = "cobol"

	first, ok := c.Get(key)
	require.True(t, ok)
	first.OverallScore = 12
	first.MatchingSkills[1] = "fortran"

	second, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, 80.0, second.OverallScore)
	assert.Equal(t, []string{"go", "postgresql"}, second.MatchingSkills)
}

func TestMemoryCache_TTLExpiry(t *testing.T) {
	c := NewMemoryCache()
	key := Key(uuid.New(), uuid.New())
	c.Set(key, &types.MatchScore{}, time.Millisecond)

	time.Sleep(10 * time.Millisecond)

	_, ok := c.Get(key)
	assert.False(t, ok)
}

func TestMemoryCache_InvalidateByProfileID(t *testing.T) {
	c := NewMemoryCache()
	profileID := uuid.New()
	job1, job2 := uuid.New(), uuid.New()
	other := Key(uuid.New(), uuid.New())

	c.Set(Key(profileID, job1), &types.MatchScore{}, 0)
	c.Set(Key(profileID, job2), &types.MatchScore{}, 0)
	c.Set(other, &types.MatchScore{}, 0)

	removed := c.Invalidate(profileID.String())

	assert.Equal(t, 2, removed)
	_, ok := c.Get(other)
	assert.True(t, ok)
}

func TestMemoryCache_InvalidateByJobID(t *testing.T) {
	c := NewMemoryCache()
	jobID := uuid.New()
	c.Set(Key(uuid.New(), jobID), &types.MatchScore{}, 0)
	c.Set(Key(uuid.New(), jobID), &types.MatchScore{}, 0)

	removed := c.Invalidate(jobID.String())

	assert.Equal(t, 2, removed)
	assert.Equal(t, 0, c.Len())
}

func TestMemoryCache_InvalidateEmptyFragmentIsNoop(t *testing.T) {
	c := NewMemoryCache()
	c.Set(Key(uuid.New(), uuid.New()), &types.MatchScore{}, 0)

	assert.Equal(t, 0, c.Invalidate(""))
	assert.Equal(t, 1, c.Len())
}
