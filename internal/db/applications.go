package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/job-pilot/internal/analytics"
)

// validStatuses are the allowed application status values, in funnel order.
var validStatuses = map[string]bool{
	analytics.StatusSaved:        true,
	analytics.StatusApplied:      true,
	analytics.StatusInterviewing: true,
	analytics.StatusOffered:      true,
	analytics.StatusRejected:     true,
	analytics.StatusAccepted:     true,
}

// ValidStatus reports whether s is a known application status.
func ValidStatus(s string) bool {
	return validStatuses[s]
}

// CreateApplication stores a tracked application and returns its generated ID
func (db *DB) CreateApplication(ctx context.Context, app *Application) (uuid.UUID, error) {
	if !ValidStatus(app.Status) {
		return uuid.Nil, fmt.Errorf("invalid application status: %q", app.Status)
	}

	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO applications (user_id, job_title, company, location, job_url, status, match_score, applied_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		app.UserID, app.JobTitle, app.Company, app.Location, app.JobURL,
		app.Status, app.MatchScore, app.AppliedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create application: %w", err)
	}
	return id, nil
}

// GetApplication retrieves a tracked application by ID. Returns nil when not found.
func (db *DB) GetApplication(ctx context.Context, id uuid.UUID) (*Application, error) {
	var app Application
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, job_title, company, location, job_url, status, match_score, applied_at, created_at, updated_at
		 FROM applications WHERE id = $1`,
		id,
	).Scan(&app.ID, &app.UserID, &app.JobTitle, &app.Company, &app.Location, &app.JobURL,
		&app.Status, &app.MatchScore, &app.AppliedAt, &app.CreatedAt, &app.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return &app, nil
}

// ListApplications lists a user's applications with optional status filter
// and pagination, newest first. Also returns the total matching count.
func (db *DB) ListApplications(ctx context.Context, userID uuid.UUID, opts ListApplicationsOptions) ([]Application, int, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM applications WHERE user_id = $1`
	countArgs := []any{userID}
	if opts.Status != nil {
		countQuery += ` AND status = $2`
		countArgs = append(countArgs, *opts.Status)
	}
	if err := db.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count applications: %w", err)
	}

	query := `SELECT id, user_id, job_title, company, location, job_url, status, match_score, applied_at, created_at, updated_at
		 FROM applications WHERE user_id = $1`
	args := []any{userID}
	if opts.Status != nil {
		query += ` AND status = $2`
		args = append(args, *opts.Status)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT %d OFFSET %d`, limit, opts.Offset)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var apps []Application
	for rows.Next() {
		var app Application
		if err := rows.Scan(&app.ID, &app.UserID, &app.JobTitle, &app.Company, &app.Location, &app.JobURL,
			&app.Status, &app.MatchScore, &app.AppliedAt, &app.CreatedAt, &app.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate applications: %w", err)
	}
	return apps, total, nil
}

// UpdateApplicationStatus moves an application to a new status. Transitioning
// into "applied" stamps applied_at when it was not set before.
func (db *DB) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status string) error {
	if !ValidStatus(status) {
		return fmt.Errorf("invalid application status: %q", status)
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE applications
		 SET status = $1,
		     applied_at = CASE WHEN $1 = 'applied' AND applied_at IS NULL THEN NOW() ELSE applied_at END,
		     updated_at = NOW()
		 WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("application not found: %s", id)
	}
	return nil
}

// DeleteApplication removes a tracked application
func (db *DB) DeleteApplication(ctx context.Context, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("application not found: %s", id)
	}
	return nil
}

// ApplicationStats aggregates a user's applications into the raw analytics
// inputs: totals by status, average match score and recent activity.
func (db *DB) ApplicationStats(ctx context.Context, userID uuid.UUID) (analytics.Stats, error) {
	stats := analytics.Stats{ByStatus: map[string]int{}}

	rows, err := db.pool.Query(ctx,
		`SELECT status, COUNT(*) FROM applications
		 WHERE user_id = $1 GROUP BY status`,
		userID,
	)
	if err != nil {
		return stats, fmt.Errorf("failed to aggregate application statuses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return stats, fmt.Errorf("failed to scan status count: %w", err)
		}
		stats.ByStatus[status] = count
		stats.Total += count
	}
	if err := rows.Err(); err != nil {
		return stats, fmt.Errorf("failed to iterate status counts: %w", err)
	}

	err = db.pool.QueryRow(ctx,
		`SELECT COALESCE(AVG(match_score), 0),
		        COUNT(*) FILTER (WHERE applied_at >= NOW() - INTERVAL '30 days')
		 FROM applications WHERE user_id = $1`,
		userID,
	).Scan(&stats.AverageMatchScore, &stats.AppliedLast30Days)
	if err != nil {
		return stats, fmt.Errorf("failed to aggregate application metrics: %w", err)
	}

	return stats, nil
}
