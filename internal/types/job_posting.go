package types

import (
	"strings"

	"github.com/google/uuid"
)

// Experience level constants for job postings.
const (
	ExperienceLevelEntry  = "entry-level"
	ExperienceLevelMid    = "mid-level"
	ExperienceLevelSenior = "senior"
)

// JobPosting represents a job posting as consumed by the scoring pipeline.
// Postings are read-only at scoring time.
type JobPosting struct {
	ID              uuid.UUID `json:"id" validate:"required"`
	Title           string    `json:"title" validate:"required"`
	Company         string    `json:"company"`
	Location        string    `json:"location,omitempty"`
	RemoteType      string    `json:"remote_type" validate:"omitempty,oneof=remote hybrid onsite"`
	JobType         string    `json:"job_type,omitempty"`
	SalaryMin       int       `json:"salary_min,omitempty" validate:"min=0"`
	SalaryMax       int       `json:"salary_max,omitempty" validate:"min=0"`
	Description     string    `json:"description,omitempty"`
	Requirements    []string  `json:"requirements,omitempty"`
	Industry        string    `json:"industry,omitempty"`
	ExperienceLevel string    `json:"experience_level,omitempty" validate:"omitempty,oneof=entry-level mid-level senior"`
}

// RequirementText concatenates the posting's description and requirement lines
// into a single lower-cased blob for requirement extraction.
func (j *JobPosting) RequirementText() string {
	var sb strings.Builder
	sb.WriteString(j.Description)
	for _, req := range j.Requirements {
		sb.WriteString("\n")
		sb.WriteString(req)
	}
	return strings.ToLower(sb.String())
}

// HasSalary reports whether the posting provides any salary information.
func (j *JobPosting) HasSalary() bool {
	return j.SalaryMin > 0 || j.SalaryMax > 0
}
