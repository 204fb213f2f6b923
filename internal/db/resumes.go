package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateResume stores a resume and returns its generated ID
func (db *DB) CreateResume(ctx context.Context, resume *Resume) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, name, summary, skills, experience)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		resume.UserID, resume.Name, resume.Summary, resume.Skills, resume.Experience,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return id, nil
}

// GetResume retrieves a resume by ID. Returns nil when not found.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*Resume, error) {
	var resume Resume
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, name, summary, skills, experience, created_at, updated_at
		 FROM resumes WHERE id = $1`,
		id,
	).Scan(&resume.ID, &resume.UserID, &resume.Name, &resume.Summary,
		&resume.Skills, &resume.Experience, &resume.CreatedAt, &resume.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return &resume, nil
}

// ListResumes lists a user's resumes, newest first
func (db *DB) ListResumes(ctx context.Context, userID uuid.UUID) ([]Resume, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, name, summary, skills, experience, created_at, updated_at
		 FROM resumes WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var resumes []Resume
	for rows.Next() {
		var resume Resume
		if err := rows.Scan(&resume.ID, &resume.UserID, &resume.Name, &resume.Summary,
			&resume.Skills, &resume.Experience, &resume.CreatedAt, &resume.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		resumes = append(resumes, resume)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate resumes: %w", err)
	}
	return resumes, nil
}

// UpdateResume replaces the stored sections of a resume
func (db *DB) UpdateResume(ctx context.Context, resume *Resume) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE resumes
		 SET name = $1, summary = $2, skills = $3, experience = $4, updated_at = NOW()
		 WHERE id = $5`,
		resume.Name, resume.Summary, resume.Skills, resume.Experience, resume.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update resume: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("resume not found: %s", resume.ID)
	}
	return nil
}

// DeleteResume removes a resume by ID
func (db *DB) DeleteResume(ctx context.Context, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("resume not found: %s", id)
	}
	return nil
}
