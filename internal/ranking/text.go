package ranking

import (
	"strings"

	"github.com/vkinnnnn/givemejobs-match/internal/types"
)

// ProfileText flattens a profile into the text embedded for semantic search.
func ProfileText(profile *types.Profile) string {
	if profile == nil {
		return ""
	}
	var b strings.Builder
	if len(profile.Skills) > 0 {
		names := make([]string, 0, len(profile.Skills))
		for _, s := range profile.Skills {
			names = append(names, s.Name)
		}
		b.WriteString("Skills: ")
		b.WriteString(strings.Join(names, ", "))
		b.WriteString(". ")
	}
	for _, exp := range profile.Experience {
		b.WriteString(exp.Title)
		if exp.Company != "" {
			b.WriteString(" at ")
			b.WriteString(exp.Company)
		}
		b.WriteString(". ")
	}
	if profile.CareerGoal != nil && profile.CareerGoal.TargetRole != "" {
		b.WriteString("Seeking a ")
		b.WriteString(profile.CareerGoal.TargetRole)
		b.WriteString(" role.")
	}
	return strings.TrimSpace(b.String())
}

// JobText flattens a job posting into the text embedded for semantic search.
func JobText(job *types.JobPosting) string {
	if job == nil {
		return ""
	}
	parts := make([]string, 0, 4)
	if job.Title != "" {
		parts = append(parts, job.Title)
	}
	if job.Description != "" {
		parts = append(parts, job.Description)
	}
	if len(job.Requirements) > 0 {
		parts = append(parts, strings.Join(job.Requirements, ". "))
	}
	if job.Industry != "" {
		parts = append(parts, "Industry: "+job.Industry)
	}
	return strings.Join(parts, " ")
}
