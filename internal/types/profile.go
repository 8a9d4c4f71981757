// Package types provides type definitions for structured data used throughout the matching engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/vkinnnnn/givemejobs-match/internal/parsing"
)

// Remote work mode constants shared by profile preferences and job postings.
const (
	RemoteModeRemote = "remote"
	RemoteModeHybrid = "hybrid"
	RemoteModeOnsite = "onsite"
	RemoteModeAny    = "any"
)

// Skill represents a single skill on a candidate profile.
type Skill struct {
	Name              string  `json:"name" validate:"required"`
	ProficiencyLevel  int     `json:"proficiency_level" validate:"min=1,max=5"`
	YearsOfExperience float64 `json:"years_of_experience" validate:"min=0"`
}

// ExperienceEntry represents one position in a candidate's work history.
// Dates use the "YYYY-MM" format; EndDate is empty for current positions.
type ExperienceEntry struct {
	Title     string `json:"title"`
	Company   string `json:"company"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date,omitempty"`
	Current   bool   `json:"current,omitempty"`
}

// Preferences holds a candidate's job search preferences.
type Preferences struct {
	Locations        []string `json:"locations,omitempty"`
	RemotePreference string   `json:"remote_preference,omitempty" validate:"omitempty,oneof=remote hybrid onsite any"`
	SalaryMin        int      `json:"salary_min,omitempty" validate:"min=0"`
	SalaryMax        int      `json:"salary_max,omitempty" validate:"min=0"`
	Industries       []string `json:"industries,omitempty"`
}

// CareerGoal represents a candidate's target role and the skills they plan to build.
type CareerGoal struct {
	TargetRole     string   `json:"target_role"`
	RequiredSkills []string `json:"required_skills,omitempty"`
}

// Profile represents a candidate profile as consumed by the scoring pipeline.
// Profiles are read-only at scoring time.
type Profile struct {
	ID          uuid.UUID         `json:"id" validate:"required"`
	Skills      []Skill           `json:"skills" validate:"dive"`
	Experience  []ExperienceEntry `json:"experience,omitempty"`
	Preferences Preferences       `json:"preferences"`
	CareerGoal  *CareerGoal       `json:"career_goal,omitempty"`
}

// TotalExperienceYears computes the candidate's total years of work experience
// from their experience entries. Entries with unparseable start dates are
// skipped. Current positions count up to now. Overlapping positions are merged
// so concurrent roles count calendar time once.
func (p *Profile) TotalExperienceYears(now time.Time) float64 {
	type span struct {
		start, end time.Time
	}
	spans := make([]span, 0, len(p.Experience))
	for _, entry := range p.Experience {
		start, err := time.Parse("2006-01", entry.StartDate)
		if err != nil {
			continue
		}

		end := now
		if !entry.Current && entry.EndDate != "" {
			parsed, err := time.Parse("2006-01", entry.EndDate)
			if err == nil {
				end = parsed
			}
		}

		if end.Before(start) {
			continue
		}
		spans = append(spans, span{start: start, end: end})
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start.Before(spans[j].start) })

	total := 0.0
	for i := 0; i < len(spans); {
		current := spans[i]
		j := i + 1
		for j < len(spans) && !spans[j].start.After(current.end) {
			if spans[j].end.After(current.end) {
				current.end = spans[j].end
			}
			j++
		}
		total += current.end.Sub(current.start).Hours() / (24 * 365.25)
		i = j
	}
	return total
}

// SkillNames returns the candidate's skill names in canonical form (alias
// spellings folded, lower-cased, trimmed), deduplicated, preserving first-seen
// order.
func (p *Profile) SkillNames() []string {
	return parsing.CanonicalSkillSet(skillNamesRaw(p.Skills))
}

func skillNamesRaw(skills []Skill) []string {
	names := make([]string, 0, len(skills))
	for _, skill := range skills {
		names = append(names, skill.Name)
	}
	return names
}

// SkillByName looks up a skill by name, folding alias spellings on both sides
// so "go" finds a skill recorded as "Golang".
func (p *Profile) SkillByName(name string) (Skill, bool) {
	name = parsing.CanonicalSkillName(name)
	for _, skill := range p.Skills {
		if parsing.CanonicalSkillName(skill.Name) == name {
			return skill, true
		}
	}
	return Skill{}, false
}
