package scoring

import (
	"fmt"
	"strings"

	"github.com/vkinnnnn/givemejobs-match/internal/types"
)

// maxSkillRecommendations caps how many individual skill-gap suggestions a
// single match produces.
const maxSkillRecommendations = 5

// recommendationInput collects the detected conditions the generator turns
// into suggestions.
type recommendationInput struct {
	Job              *types.JobPosting
	MissingSkills    []string
	Experience       experienceResult
	SalaryShortfall  bool
	LocationMismatch bool
}

// buildRecommendations produces one suggestion per detected condition,
// ordered by severity: skill gaps first, then experience, then
// compensation and location.
func buildRecommendations(in recommendationInput) []string {
	recs := make([]string, 0, len(in.MissingSkills)+3)

	count := len(in.MissingSkills)
	if count > maxSkillRecommendations {
		count = maxSkillRecommendations
	}
	for i := 0; i < count; i++ {
		recs = append(recs, fmt.Sprintf(
			"Consider learning or gaining hands-on experience in %s.", in.MissingSkills[i]))
	}
	if len(in.MissingSkills) > maxSkillRecommendations {
		rest := in.MissingSkills[maxSkillRecommendations:]
		recs = append(recs, fmt.Sprintf(
			"Additional skills to explore: %s.", strings.Join(rest, ", ")))
	}

	if in.Experience.Overqualified {
		level := in.Job.ExperienceLevel
		if level == "" {
			level = "this"
		}
		recs = append(recs, fmt.Sprintf(
			"You appear overqualified for a %s position; emphasize mentoring and leadership to stand out.", level))
	} else if in.Experience.Underqualified {
		recs = append(recs, fmt.Sprintf(
			"This role typically expects more experience; highlight projects that show %s-level impact.", in.Job.ExperienceLevel))
	}

	if in.SalaryShortfall {
		recs = append(recs,
			"The posted compensation is below your stated minimum; expect a gap if you pursue this role.")
	}

	if in.LocationMismatch {
		recs = append(recs,
			"The work arrangement differs from your location preference; confirm relocation or commute options.")
	}

	return recs
}
