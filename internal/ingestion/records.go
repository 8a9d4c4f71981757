package ingestion

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/vkinnnnn/givemejobs-match/internal/types"
)

// JobFromHTML builds a job posting record from raw page HTML plus the
// metadata the caller already knows. The page text becomes the description
// and its bullet items become requirement lines.
func JobFromHTML(id uuid.UUID, title, company, html string) (*types.JobPosting, error) {
	description, err := ExtractJobText(html)
	if err != nil {
		return nil, err
	}
	requirements, err := ExtractRequirementLines(html)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}
	return &types.JobPosting{
		ID:           id,
		Title:        title,
		Company:      company,
		Description:  description,
		Requirements: requirements,
	}, nil
}

// LoadProfileFile reads a candidate profile from a JSON file, assigning a
// fresh ID when the file omits one.
func LoadProfileFile(path string) (*types.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}

	var profile types.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	return &profile, nil
}

// LoadJobFile reads a job posting from a JSON file, assigning a fresh ID
// when the file omits one.
func LoadJobFile(path string) (*types.JobPosting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", path, err)
	}

	var job types.JobPosting
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job JSON: %w", err)
	}
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	return &job, nil
}
