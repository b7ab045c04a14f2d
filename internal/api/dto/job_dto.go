package dto

import "github.com/jobhub/job-board/internal/domain"

// JobRequest is the body of POST /job and PUT /job/{job_id}.
type JobRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	SalaryFrom  int64  `json:"salary_from"`
	SalaryTo    int64  `json:"salary_to"`
	IsActive    bool   `json:"is_active"`
}

// JobResponse is the public representation of a job.
type JobResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	SalaryFrom  int64  `json:"salary_from"`
	SalaryTo    int64  `json:"salary_to"`
	IsActive    bool   `json:"is_active"`
}

// RemoveJobReport is returned by DELETE /job/{job_id}.
type RemoveJobReport struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// NewJobResponse maps a stored job.
func NewJobResponse(job *domain.Job) JobResponse {
	return JobResponse{
		ID:          job.ID,
		UserID:      job.UserID,
		Title:       job.Title,
		Description: job.Description,
		SalaryFrom:  job.SalaryFrom,
		SalaryTo:    job.SalaryTo,
		IsActive:    job.IsActive,
	}
}
