package scoring

import (
	"math"
	"strings"
	"time"

	"github.com/vkinnnnn/givemejobs-match/internal/parsing"
	"github.com/vkinnnnn/givemejobs-match/internal/types"
)

// scoreSkills computes the skill sub-score plus the matching and missing
// skill sets. With no extractable requirements there is nothing to miss, so
// the score is 100.
func scoreSkills(profile *types.Profile, requirements []string) (float64, []string, []string) {
	if len(requirements) == 0 {
		return 100, []string{}, []string{}
	}

	profileSkills := profile.SkillNames()

	matching := make([]string, 0, len(requirements))
	missing := make([]string, 0)
	proficiencySum := 0
	for _, req := range requirements {
		if parsing.ContainsSkill(profileSkills, req) {
			matching = append(matching, req)
			if skill, ok := profile.SkillByName(req); ok {
				proficiencySum += skill.ProficiencyLevel
			}
		} else {
			missing = append(missing, req)
		}
	}

	if len(matching) == 0 {
		return 0, matching, missing
	}

	base := float64(len(matching)) / float64(len(requirements)) * 100

	// Higher average proficiency of the matched skills pushes the score
	// toward 100; proficiency 5 across the board yields the full base.
	avgProficiency := float64(proficiencySum) / float64(len(matching))
	score := base * (0.7 + 0.06*avgProficiency)

	return types.ClampScore(score), matching, missing
}

// experienceResult carries the experience sub-score plus the qualification
// flags consumed by the recommendation generator.
type experienceResult struct {
	Score          float64
	Overqualified  bool
	Underqualified bool
}

// scoreExperience computes the experience sub-score from the job's required
// years band and the candidate's total years.
func scoreExperience(profile *types.Profile, job *types.JobPosting, cfg *Config, now time.Time) experienceResult {
	band, ok := bandForLevel(job.ExperienceLevel)
	if !ok {
		return experienceResult{Score: cfg.NeutralExperience}
	}

	years := profile.TotalExperienceYears(now)

	// Under-qualified: sub-linear decay toward 0 as the shortfall grows.
	if years < band.Min {
		ratio := years / band.Min
		return experienceResult{
			Score:          types.ClampScore(90 * math.Pow(ratio, 1.5)),
			Underqualified: true,
		}
	}

	// Open-ended band (senior) never overqualifies.
	if band.Max == 0 {
		return experienceResult{Score: 95}
	}

	// Within the band or moderately above its ceiling.
	overqualifiedAt := band.Max * 2
	if years <= overqualifiedAt {
		return experienceResult{Score: 95}
	}

	// Overqualified: gentle decline, never punitive.
	score := 90 - (years-overqualifiedAt)*2
	if score < 60 {
		score = 60
	}
	return experienceResult{Score: score, Overqualified: true}
}

// scoreLocation computes the location sub-score. Remote jobs match any
// preference outright.
func scoreLocation(profile *types.Profile, job *types.JobPosting, cfg *Config) float64 {
	if job.RemoteType == types.RemoteModeRemote {
		return 100
	}

	prefs := profile.Preferences
	if len(prefs.Locations) == 0 && prefs.RemotePreference == "" {
		return cfg.NeutralLocation
	}

	if prefs.RemotePreference == job.RemoteType {
		return 100
	}

	jobLocation := strings.ToLower(strings.TrimSpace(job.Location))
	if jobLocation != "" {
		for _, loc := range prefs.Locations {
			if strings.Contains(jobLocation, strings.ToLower(strings.TrimSpace(loc))) {
				return 85
			}
		}
	}

	if prefs.RemotePreference == types.RemoteModeAny {
		return 80
	}

	// Hybrid/onsite preference mismatch: partial credit, not a failure.
	return 65
}

// scoreSalary computes the salary sub-score. A posting without salary bounds
// scores the neutral default; a posting paying at or above the candidate's
// stated maximum scores 100; overlap scores at least 70; a material shortfall
// below the candidate's minimum scales down with its size.
func scoreSalary(profile *types.Profile, job *types.JobPosting, cfg *Config) float64 {
	if !job.HasSalary() {
		return cfg.NeutralSalary
	}

	userMin := float64(profile.Preferences.SalaryMin)
	userMax := float64(profile.Preferences.SalaryMax)
	if userMin == 0 && userMax == 0 {
		// No stated expectation: salary alone cannot mismatch.
		return 75
	}
	if userMax == 0 {
		userMax = userMin
	}

	jobMax := float64(job.SalaryMax)
	if jobMax == 0 {
		jobMax = float64(job.SalaryMin)
	}

	if jobMax >= userMax {
		return 100
	}

	if jobMax >= userMin {
		if userMax == userMin {
			return 85
		}
		overlap := (jobMax - userMin) / (userMax - userMin)
		return types.ClampScore(70 + 25*overlap)
	}

	// Job pays below the candidate's minimum: scale with the shortfall.
	if userMin <= 0 {
		return 45
	}
	return types.ClampScore(45 * jobMax / userMin)
}

// scoreCulture computes the culture-fit sub-score from industry overlap and
// career-goal alignment. No signal yields the neutral default.
func scoreCulture(profile *types.Profile, job *types.JobPosting, requirements []string, cfg *Config) float64 {
	score := cfg.NeutralCulture

	jobIndustry := strings.ToLower(strings.TrimSpace(job.Industry))
	if jobIndustry != "" {
		for _, industry := range profile.Preferences.Industries {
			if strings.ToLower(strings.TrimSpace(industry)) == jobIndustry {
				score += 35
				break
			}
		}
	}

	if goal := profile.CareerGoal; goal != nil {
		if goalAlignsWithJob(goal, job, requirements) {
			score += 25
		}
	}

	return types.ClampScore(score)
}

// goalAlignsWithJob reports whether the career goal's target role matches the
// job title or industry, or its required skills overlap the extracted
// requirements.
func goalAlignsWithJob(goal *types.CareerGoal, job *types.JobPosting, requirements []string) bool {
	target := strings.ToLower(strings.TrimSpace(goal.TargetRole))
	if target != "" {
		title := strings.ToLower(job.Title)
		industry := strings.ToLower(job.Industry)
		if title != "" && (strings.Contains(title, target) || strings.Contains(target, title)) {
			return true
		}
		if industry != "" && strings.Contains(industry, target) {
			return true
		}
	}

	for _, skill := range goal.RequiredSkills {
		if parsing.ContainsSkill(requirements, skill) {
			return true
		}
	}
	return false
}
