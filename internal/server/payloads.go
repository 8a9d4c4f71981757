package server

import (
	"github.com/google/uuid"

	"github.com/vkinnnnn/givemejobs-match/internal/types"
)

// profilePayload is the profile request body. The record ID comes from the
// URL path, never the body.
type profilePayload struct {
	Skills      []types.Skill           `json:"skills"`
	Experience  []types.ExperienceEntry `json:"experience,omitempty"`
	Preferences types.Preferences       `json:"preferences"`
	CareerGoal  *types.CareerGoal       `json:"career_goal,omitempty"`
}

func (p *profilePayload) toProfile(id uuid.UUID) *types.Profile {
	return &types.Profile{
		ID:          id,
		Skills:      p.Skills,
		Experience:  p.Experience,
		Preferences: p.Preferences,
		CareerGoal:  p.CareerGoal,
	}
}

// jobPayload is the job posting request body.
type jobPayload struct {
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Location        string   `json:"location,omitempty"`
	RemoteType      string   `json:"remote_type,omitempty"`
	JobType         string   `json:"job_type,omitempty"`
	SalaryMin       int      `json:"salary_min,omitempty"`
	SalaryMax       int      `json:"salary_max,omitempty"`
	Description     string   `json:"description,omitempty"`
	Requirements    []string `json:"requirements,omitempty"`
	Industry        string   `json:"industry,omitempty"`
	ExperienceLevel string   `json:"experience_level,omitempty"`
}

func (j *jobPayload) toJob(id uuid.UUID) *types.JobPosting {
	return &types.JobPosting{
		ID:              id,
		Title:           j.Title,
		Company:         j.Company,
		Location:        j.Location,
		RemoteType:      j.RemoteType,
		JobType:         j.JobType,
		SalaryMin:       j.SalaryMin,
		SalaryMax:       j.SalaryMax,
		Description:     j.Description,
		Requirements:    j.Requirements,
		Industry:        j.Industry,
		ExperienceLevel: j.ExperienceLevel,
	}
}
