package db

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Profile represents a candidate's stored scoring profile
type Profile struct {
	UserID            uuid.UUID `json:"user_id"`
	Skills            []string  `json:"skills"`
	YearsOfExperience int       `json:"years_of_experience"`
	Location          string    `json:"location"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Resume represents a stored resume with its three sections
type Resume struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Name       string    `json:"name"`
	Summary    string    `json:"summary"`
	Skills     string    `json:"skills"`
	Experience string    `json:"experience"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Application represents a tracked job application
type Application struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	JobTitle   string     `json:"job_title"`
	Company    string     `json:"company"`
	Location   string     `json:"location"`
	JobURL     string     `json:"job_url,omitempty"`
	Status     string     `json:"status"`
	MatchScore *int       `json:"match_score,omitempty"`
	AppliedAt  *time.Time `json:"applied_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// ListApplicationsOptions holds filters and pagination for listing applications
type ListApplicationsOptions struct {
	Status *string
	Limit  int
	Offset int
}
