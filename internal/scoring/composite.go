package scoring

import (
	"math"
	"time"

	"github.com/vkinnnnn/givemejobs-match/internal/types"
)

// Compute scores one (profile, job) pair against the extracted requirement
// set. The result is a pure function of the inputs; no hidden state.
func Compute(profile *types.Profile, job *types.JobPosting, requirements []string, cfg *Config) *types.MatchScore {
	return ComputeAt(profile, job, requirements, cfg, time.Now())
}

// ComputeAt is Compute with an explicit reference time for experience-years
// calculations, so callers and tests get reproducible results.
func ComputeAt(profile *types.Profile, job *types.JobPosting, requirements []string, cfg *Config, now time.Time) *types.MatchScore {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	skill, matching, missing := scoreSkills(profile, requirements)
	experience := scoreExperience(profile, job, cfg, now)
	location := scoreLocation(profile, job, cfg)
	salary := scoreSalary(profile, job, cfg)
	culture := scoreCulture(profile, job, requirements, cfg)

	// Sub-scores are rounded to whole points so recomputation at a slightly
	// later instant cannot produce a drifting breakdown.
	breakdown := types.Breakdown{
		SkillMatch:      roundScore(skill),
		ExperienceMatch: roundScore(experience.Score),
		LocationMatch:   roundScore(location),
		SalaryMatch:     roundScore(salary),
		CultureFit:      roundScore(culture),
	}

	w := cfg.Weights
	overall := w.Skill*breakdown.SkillMatch +
		w.Experience*breakdown.ExperienceMatch +
		w.Location*breakdown.LocationMatch +
		w.Salary*breakdown.SalaryMatch +
		w.Culture*breakdown.CultureFit

	return &types.MatchScore{
		ProfileID:      profile.ID,
		JobID:          job.ID,
		OverallScore:   roundScore(overall),
		Breakdown:      breakdown,
		MatchingSkills: matching,
		MissingSkills:  missing,
		Recommendations: buildRecommendations(recommendationInput{
			Job:              job,
			MissingSkills:    missing,
			Experience:       experience,
			SalaryShortfall:  salaryShortfall(profile, job),
			LocationMismatch: locationMismatch(profile, job, breakdown.LocationMatch),
		}),
	}
}

// locationMismatch reports whether the candidate stated a location or remote
// preference that the posting fails to satisfy. Profiles with no preference
// data never mismatch.
func locationMismatch(profile *types.Profile, job *types.JobPosting, locationScore float64) bool {
	if job.RemoteType == types.RemoteModeRemote {
		return false
	}
	prefs := profile.Preferences
	if len(prefs.Locations) == 0 && prefs.RemotePreference == "" {
		return false
	}
	return locationScore < 70
}

// salaryShortfall reports whether the posting pays below the candidate's
// stated minimum.
func salaryShortfall(profile *types.Profile, job *types.JobPosting) bool {
	userMin := profile.Preferences.SalaryMin
	if userMin <= 0 || !job.HasSalary() {
		return false
	}
	jobMax := job.SalaryMax
	if jobMax == 0 {
		jobMax = job.SalaryMin
	}
	return jobMax < userMin
}

func roundScore(v float64) float64 {
	return types.ClampScore(math.Round(v))
}
