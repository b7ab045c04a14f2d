package domain

import "time"

// User is an account that authenticates against the job board.
// Only users with IsCompany set may publish jobs.
type User struct {
	ID           int64
	Name         string
	Email        string
	IsCompany    bool
	PasswordHash string
	CreatedAt    time.Time
}
