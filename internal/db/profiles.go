package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UpsertProfile creates or replaces a candidate's scoring profile
func (db *DB) UpsertProfile(ctx context.Context, profile *Profile) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO profiles (user_id, skills, years_of_experience, location, updated_at)
		 VALUES ($1, $2, $3, $4, NOW())
		 ON CONFLICT (user_id) DO UPDATE
		 SET skills = $2, years_of_experience = $3, location = $4, updated_at = NOW()`,
		profile.UserID, profile.Skills, profile.YearsOfExperience, profile.Location,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

// GetProfile retrieves a candidate's profile. Returns nil when not found.
func (db *DB) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	var profile Profile
	err := db.pool.QueryRow(ctx,
		`SELECT user_id, skills, years_of_experience, location, updated_at
		 FROM profiles WHERE user_id = $1`,
		userID,
	).Scan(&profile.UserID, &profile.Skills, &profile.YearsOfExperience, &profile.Location, &profile.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}
