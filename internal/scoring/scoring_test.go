package scoring

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/vkinnnnn/givemejobs-match/internal/types"
)

var testNow = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// profileWithYears builds a profile whose single experience entry spans the
// given number of whole years ending at testNow.
func profileWithYears(years int) *types.Profile {
	start := testNow.AddDate(-years, 0, 0)
	return &types.Profile{
		ID: uuid.New(),
		Experience: []types.ExperienceEntry{
			{Title: "Engineer", Company: "Acme", StartDate: start.Format("2006-01"), Current: true},
		},
	}
}

func TestScoreSkills_FullOverlapHighProficiency(t *testing.T) {
	profile := &types.Profile{
		Skills: []types.Skill{
			{Name: "JavaScript", ProficiencyLevel: 5, YearsOfExperience: 5},
			{Name: "React", ProficiencyLevel: 5, YearsOfExperience: 4},
			{Name: "Node.js", ProficiencyLevel: 4, YearsOfExperience: 3},
		},
	}
	requirements := []string{"javascript", "react", "node.js"}

	score, matching, missing := scoreSkills(profile, requirements)

	assert.GreaterOrEqual(t, score, 90.0)
	assert.ElementsMatch(t, requirements, matching)
	assert.Empty(t, missing)
}

func TestScoreSkills_AliasSpellingsMatchCanonicalRequirements(t *testing.T) {
	profile := &types.Profile{
		Skills: []types.Skill{
			{Name: "NodeJS", ProficiencyLevel: 5, YearsOfExperience: 6},
			{Name: "Golang", ProficiencyLevel: 5, YearsOfExperience: 4},
		},
	}
	requirements := []string{"node.js", "go"}

	score, matching, missing := scoreSkills(profile, requirements)

	assert.GreaterOrEqual(t, score, 90.0)
	assert.ElementsMatch(t, requirements, matching)
	assert.Empty(t, missing)
}

func TestScoreSkills_PartialOverlap(t *testing.T) {
	profile := &types.Profile{
		Skills: []types.Skill{
			{Name: "Python", ProficiencyLevel: 3},
			{Name: "Django", ProficiencyLevel: 3},
		},
	}
	requirements := []string{"python", "django", "kubernetes", "terraform"}

	score, matching, missing := scoreSkills(profile, requirements)

	assert.GreaterOrEqual(t, score, 30.0)
	assert.Less(t, score, 80.0)
	assert.ElementsMatch(t, []string{"python", "django"}, matching)
	assert.ElementsMatch(t, []string{"kubernetes", "terraform"}, missing)
}

func TestScoreSkills_NoRequirements(t *testing.T) {
	profile := &types.Profile{Skills: []types.Skill{{Name: "Go", ProficiencyLevel: 4}}}

	score, matching, missing := scoreSkills(profile, nil)

	assert.Equal(t, 100.0, score)
	assert.Empty(t, matching)
	assert.Empty(t, missing)
}

func TestScoreSkills_NoOverlap(t *testing.T) {
	profile := &types.Profile{Skills: []types.Skill{{Name: "PHP", ProficiencyLevel: 5}}}

	score, matching, missing := scoreSkills(profile, []string{"rust", "kotlin"})

	assert.Equal(t, 0.0, score)
	assert.Empty(t, matching)
	assert.ElementsMatch(t, []string{"rust", "kotlin"}, missing)
}

func TestScoreSkills_HigherProficiencyScoresHigher(t *testing.T) {
	requirements := []string{"go", "postgresql"}
	expert := &types.Profile{Skills: []types.Skill{
		{Name: "Go", ProficiencyLevel: 5},
		{Name: "PostgreSQL", ProficiencyLevel: 5},
	}}
	novice := &types.Profile{Skills: []types.Skill{
		{Name: "Go", ProficiencyLevel: 1},
		{Name: "PostgreSQL", ProficiencyLevel: 1},
	}}

	expertScore, _, _ := scoreSkills(expert, requirements)
	noviceScore, _, _ := scoreSkills(novice, requirements)

	assert.Greater(t, expertScore, noviceScore)
}

func TestScoreExperience_SeniorCandidateOnEntryLevelJob(t *testing.T) {
	job := &types.JobPosting{ExperienceLevel: types.ExperienceLevelEntry}

	result := scoreExperience(profileWithYears(15), job, DefaultConfig(), testNow)

	assert.Less(t, result.Score, 100.0)
	assert.GreaterOrEqual(t, result.Score, 50.0)
	assert.True(t, result.Overqualified)
}

func TestScoreExperience_WithinBand(t *testing.T) {
	job := &types.JobPosting{ExperienceLevel: types.ExperienceLevelMid}

	result := scoreExperience(profileWithYears(3), job, DefaultConfig(), testNow)

	assert.GreaterOrEqual(t, result.Score, 90.0)
	assert.False(t, result.Overqualified)
	assert.False(t, result.Underqualified)
}

func TestScoreExperience_SeniorBandNeverOverqualifies(t *testing.T) {
	job := &types.JobPosting{ExperienceLevel: types.ExperienceLevelSenior}

	result := scoreExperience(profileWithYears(25), job, DefaultConfig(), testNow)

	assert.GreaterOrEqual(t, result.Score, 90.0)
	assert.False(t, result.Overqualified)
}

func TestScoreExperience_Underqualified(t *testing.T) {
	job := &types.JobPosting{ExperienceLevel: types.ExperienceLevelSenior}

	result := scoreExperience(profileWithYears(1), job, DefaultConfig(), testNow)

	assert.Less(t, result.Score, 30.0)
	assert.True(t, result.Underqualified)
}

func TestScoreExperience_ShortfallDecaysMonotonically(t *testing.T) {
	job := &types.JobPosting{ExperienceLevel: types.ExperienceLevelSenior}
	cfg := DefaultConfig()

	four := scoreExperience(profileWithYears(4), job, cfg, testNow)
	two := scoreExperience(profileWithYears(2), job, cfg, testNow)
	zero := scoreExperience(&types.Profile{}, job, cfg, testNow)

	assert.Greater(t, four.Score, two.Score)
	assert.Greater(t, two.Score, zero.Score)
	assert.Equal(t, 0.0, zero.Score)
}

func TestScoreExperience_UnknownLevelIsNeutral(t *testing.T) {
	cfg := DefaultConfig()
	result := scoreExperience(profileWithYears(5), &types.JobPosting{}, cfg, testNow)

	assert.Equal(t, cfg.NeutralExperience, result.Score)
}

func TestScoreLocation_RemoteJobAlwaysMatches(t *testing.T) {
	job := &types.JobPosting{RemoteType: types.RemoteModeRemote}
	profile := &types.Profile{Preferences: types.Preferences{
		RemotePreference: types.RemoteModeOnsite,
		Locations:        []string{"Tokyo"},
	}}

	assert.Equal(t, 100.0, scoreLocation(profile, job, DefaultConfig()))
}

func TestScoreLocation_PreferenceMatchesJobMode(t *testing.T) {
	job := &types.JobPosting{RemoteType: types.RemoteModeHybrid, Location: "Austin, TX"}
	profile := &types.Profile{Preferences: types.Preferences{RemotePreference: types.RemoteModeHybrid}}

	assert.Equal(t, 100.0, scoreLocation(profile, job, DefaultConfig()))
}

func TestScoreLocation_PreferredCity(t *testing.T) {
	job := &types.JobPosting{RemoteType: types.RemoteModeOnsite, Location: "Berlin, Germany"}
	profile := &types.Profile{Preferences: types.Preferences{
		RemotePreference: types.RemoteModeHybrid,
		Locations:        []string{"berlin"},
	}}

	score := scoreLocation(profile, job, DefaultConfig())
	assert.GreaterOrEqual(t, score, 80.0)
}

func TestScoreLocation_MismatchIsPartialCredit(t *testing.T) {
	job := &types.JobPosting{RemoteType: types.RemoteModeOnsite, Location: "Dallas, TX"}
	profile := &types.Profile{Preferences: types.Preferences{
		RemotePreference: types.RemoteModeHybrid,
		Locations:        []string{"Seattle"},
	}}

	score := scoreLocation(profile, job, DefaultConfig())
	assert.Greater(t, score, 50.0)
	assert.Less(t, score, 100.0)
}

func TestScoreLocation_NoPreferenceDataIsNeutral(t *testing.T) {
	cfg := DefaultConfig()
	job := &types.JobPosting{RemoteType: types.RemoteModeOnsite, Location: "Dallas, TX"}

	assert.Equal(t, cfg.NeutralLocation, scoreLocation(&types.Profile{}, job, cfg))
}

func TestScoreSalary_NoJobSalaryIsNeutral(t *testing.T) {
	cfg := DefaultConfig()
	profile := &types.Profile{Preferences: types.Preferences{SalaryMin: 90000, SalaryMax: 120000}}

	assert.Equal(t, cfg.NeutralSalary, scoreSalary(profile, &types.JobPosting{}, cfg))
}

func TestScoreSalary_JobPaysAboveAsk(t *testing.T) {
	profile := &types.Profile{Preferences: types.Preferences{SalaryMin: 90000, SalaryMax: 120000}}
	job := &types.JobPosting{SalaryMin: 130000, SalaryMax: 160000}

	assert.Equal(t, 100.0, scoreSalary(profile, job, DefaultConfig()))
}

func TestScoreSalary_OverlappingRanges(t *testing.T) {
	profile := &types.Profile{Preferences: types.Preferences{SalaryMin: 100000, SalaryMax: 150000}}
	job := &types.JobPosting{SalaryMin: 110000, SalaryMax: 140000}

	score := scoreSalary(profile, job, DefaultConfig())
	assert.GreaterOrEqual(t, score, 70.0)
}

func TestScoreSalary_WellBelowMinimum(t *testing.T) {
	profile := &types.Profile{Preferences: types.Preferences{SalaryMin: 120000, SalaryMax: 150000}}
	job := &types.JobPosting{SalaryMin: 50000, SalaryMax: 70000}

	score := scoreSalary(profile, job, DefaultConfig())
	assert.Less(t, score, 50.0)
}

func TestScoreSalary_ShortfallScalesWithGap(t *testing.T) {
	profile := &types.Profile{Preferences: types.Preferences{SalaryMin: 120000, SalaryMax: 150000}}
	cfg := DefaultConfig()

	small := scoreSalary(profile, &types.JobPosting{SalaryMax: 110000}, cfg)
	large := scoreSalary(profile, &types.JobPosting{SalaryMax: 60000}, cfg)

	assert.Greater(t, small, large)
}

func TestScoreCulture_IndustryOverlap(t *testing.T) {
	profile := &types.Profile{Preferences: types.Preferences{Industries: []string{"Technology", "Finance"}}}
	job := &types.JobPosting{Industry: "technology"}

	score := scoreCulture(profile, job, nil, DefaultConfig())
	assert.GreaterOrEqual(t, score, 70.0)
}

func TestScoreCulture_CareerGoalTitleAlignment(t *testing.T) {
	profile := &types.Profile{CareerGoal: &types.CareerGoal{TargetRole: "backend engineer"}}
	job := &types.JobPosting{Title: "Senior Backend Engineer"}

	score := scoreCulture(profile, job, nil, DefaultConfig())
	assert.GreaterOrEqual(t, score, 70.0)
}

func TestScoreCulture_CareerGoalSkillOverlap(t *testing.T) {
	profile := &types.Profile{CareerGoal: &types.CareerGoal{
		TargetRole:     "data scientist",
		RequiredSkills: []string{"Machine Learning"},
	}}
	job := &types.JobPosting{Title: "Quant Analyst"}

	score := scoreCulture(profile, job, []string{"python", "machine learning"}, DefaultConfig())
	assert.GreaterOrEqual(t, score, 70.0)
}

func TestScoreCulture_NoSignalIsNeutral(t *testing.T) {
	cfg := DefaultConfig()
	score := scoreCulture(&types.Profile{}, &types.JobPosting{Title: "Analyst"}, nil, cfg)

	assert.Equal(t, cfg.NeutralCulture, score)
}
