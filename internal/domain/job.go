package domain

import "time"

// Job is a vacancy published by a company user.
type Job struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	SalaryFrom  int64
	SalaryTo    int64
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnedBy reports whether the job was authored by userID.
func (j *Job) OwnedBy(userID int64) bool {
	return j != nil && j.UserID == userID
}
