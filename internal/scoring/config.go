// Package scoring computes multi-factor compatibility scores between candidate
// profiles and job postings.
package scoring

import "github.com/vkinnnnn/givemejobs-match/internal/types"

// Weights holds the factor weights used to combine the five sub-scores into
// the overall score. Weights must sum to 1.0.
type Weights struct {
	Skill      float64 `json:"skill"`
	Experience float64 `json:"experience"`
	Location   float64 `json:"location"`
	Salary     float64 `json:"salary"`
	Culture    float64 `json:"culture"`
}

// Config holds the tunable scoring parameters: factor weights and the neutral
// defaults used when a factor has no signal. Keeping these in one place lets
// them be substituted in tests without touching sub-scorer logic.
type Config struct {
	Weights Weights `json:"weights"`

	// Neutral defaults returned when a factor has no usable input.
	NeutralSalary     float64 `json:"neutral_salary"`
	NeutralLocation   float64 `json:"neutral_location"`
	NeutralCulture    float64 `json:"neutral_culture"`
	NeutralExperience float64 `json:"neutral_experience"`

	// SemanticBlend is the share of the ranking score taken by semantic
	// similarity when it is available; the rest comes from the traditional
	// composite.
	SemanticBlend float64 `json:"semantic_blend"`
}

// DefaultConfig returns the production scoring configuration.
func DefaultConfig() *Config {
	return &Config{
		Weights: Weights{
			Skill:      0.35,
			Experience: 0.25,
			Location:   0.15,
			Salary:     0.10,
			Culture:    0.15,
		},
		NeutralSalary:     50,
		NeutralLocation:   60,
		NeutralCulture:    50,
		NeutralExperience: 70,
		SemanticBlend:     0.6,
	}
}

// experienceBand holds the years-of-experience range implied by a job's
// experience level. A zero Max means the band is open-ended.
type experienceBand struct {
	Min float64
	Max float64
}

// bandForLevel maps a job's experience level to its years band:
// entry 0-2, mid 2-5, senior 5+.
func bandForLevel(level string) (experienceBand, bool) {
	switch level {
	case types.ExperienceLevelEntry:
		return experienceBand{Min: 0, Max: 2}, true
	case types.ExperienceLevelMid:
		return experienceBand{Min: 2, Max: 5}, true
	case types.ExperienceLevelSenior:
		return experienceBand{Min: 5, Max: 0}, true
	default:
		return experienceBand{}, false
	}
}
