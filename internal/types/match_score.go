package types

import (
	"math"

	"github.com/google/uuid"
)

// Breakdown holds the five factor sub-scores, each in the 0-100 range.
type Breakdown struct {
	SkillMatch      float64 `json:"skill_match"`
	ExperienceMatch float64 `json:"experience_match"`
	LocationMatch   float64 `json:"location_match"`
	SalaryMatch     float64 `json:"salary_match"`
	CultureFit      float64 `json:"culture_fit"`
}

// MatchScore is the immutable result of scoring one (profile, job) pair.
// It is a pure function of the two input records: recomputing with unchanged
// inputs yields an identical value.
type MatchScore struct {
	ProfileID       uuid.UUID `json:"profile_id"`
	JobID           uuid.UUID `json:"job_id"`
	OverallScore    float64   `json:"overall_score"`
	Breakdown       Breakdown `json:"breakdown"`
	MatchingSkills  []string  `json:"matching_skills"`
	MissingSkills   []string  `json:"missing_skills"`
	Recommendations []string  `json:"recommendations"`
}

// ClampScore bounds a score to the 0-100 range and maps NaN to zero.
func ClampScore(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
