package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/vkinnnnn/givemejobs-match/internal/types"
)

// GetProfile retrieves a candidate profile by ID. Returns (nil, nil) when the
// profile does not exist.
func (db *DB) GetProfile(ctx context.Context, id uuid.UUID) (*types.Profile, error) {
	var p types.Profile
	var skillsJSON, experienceJSON, preferencesJSON []byte
	var goalJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, skills, experience, preferences, career_goal
		 FROM candidate_profiles WHERE id = $1`,
		id,
	).Scan(&p.ID, &skillsJSON, &experienceJSON, &preferencesJSON, &goalJSON)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if err := json.Unmarshal(skillsJSON, &p.Skills); err != nil {
		return nil, fmt.Errorf("failed to decode profile skills: %w", err)
	}
	if err := json.Unmarshal(experienceJSON, &p.Experience); err != nil {
		return nil, fmt.Errorf("failed to decode profile experience: %w", err)
	}
	if err := json.Unmarshal(preferencesJSON, &p.Preferences); err != nil {
		return nil, fmt.Errorf("failed to decode profile preferences: %w", err)
	}
	if len(goalJSON) > 0 {
		var goal types.CareerGoal
		if err := json.Unmarshal(goalJSON, &goal); err != nil {
			return nil, fmt.Errorf("failed to decode career goal: %w", err)
		}
		p.CareerGoal = &goal
	}

	return &p, nil
}

// UpsertProfile creates or replaces a candidate profile.
func (db *DB) UpsertProfile(ctx context.Context, profile *types.Profile) error {
	skillsJSON, err := json.Marshal(profile.Skills)
	if err != nil {
		return fmt.Errorf("failed to marshal profile skills: %w", err)
	}
	experienceJSON, err := json.Marshal(profile.Experience)
	if err != nil {
		return fmt.Errorf("failed to marshal profile experience: %w", err)
	}
	preferencesJSON, err := json.Marshal(profile.Preferences)
	if err != nil {
		return fmt.Errorf("failed to marshal profile preferences: %w", err)
	}
	var goalJSON []byte
	if profile.CareerGoal != nil {
		goalJSON, err = json.Marshal(profile.CareerGoal)
		if err != nil {
			return fmt.Errorf("failed to marshal career goal: %w", err)
		}
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO candidate_profiles (id, skills, experience, preferences, career_goal)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE SET
		     skills = $2, experience = $3, preferences = $4, career_goal = $5,
		     updated_at = NOW()`,
		profile.ID, skillsJSON, experienceJSON, preferencesJSON, goalJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

// DeleteProfile removes a candidate profile.
func (db *DB) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM candidate_profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile not found: %s", id)
	}
	return nil
}
