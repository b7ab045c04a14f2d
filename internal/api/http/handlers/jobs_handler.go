package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jobhub/job-board/internal/api/dto"
	"github.com/jobhub/job-board/internal/auth"
	"github.com/jobhub/job-board/internal/service"
	apperrors "github.com/jobhub/job-board/pkg/util/errorutil"
)

// JobsHandler exposes the /job endpoints.
type JobsHandler struct {
	service *service.JobService
}

// NewJobsHandler constructs handler.
func NewJobsHandler(jobService *service.JobService) *JobsHandler {
	return &JobsHandler{service: jobService}
}

// CreateJob POST /job.
func (h *JobsHandler) CreateJob(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthenticated()
	}
	input, err := parseJobRequest(c)
	if err != nil {
		return err
	}

	job, err := h.service.CreateJob(c.UserContext(), user, input)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewJobResponse(job))
}

// ListJobs GET /job/jobs. No authentication is applied.
func (h *JobsHandler) ListJobs(c *fiber.Ctx) error {
	jobs, err := h.service.ListJobs(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		items = append(items, dto.NewJobResponse(&jobs[i]))
	}
	return c.JSON(items)
}

// EditJob PUT /job/:job_id.
func (h *JobsHandler) EditJob(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthenticated()
	}
	jobID, err := parseJobID(c)
	if err != nil {
		return err
	}
	input, err := parseJobRequest(c)
	if err != nil {
		return err
	}

	job, err := h.service.EditJob(c.UserContext(), user, jobID, input)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewJobResponse(job))
}

// DeleteJob DELETE /job/:job_id.
func (h *JobsHandler) DeleteJob(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthenticated()
	}
	jobID, err := parseJobID(c)
	if err != nil {
		return err
	}

	report, err := h.service.DeleteJob(c.UserContext(), user, jobID)
	if err != nil {
		return err
	}
	return c.JSON(dto.RemoveJobReport{ID: report.ID, Message: report.Message})
}

func parseJobID(c *fiber.Ctx) (int64, error) {
	raw := c.Params("job_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("job_id must be a positive integer", map[string]any{"job_id": raw})
	}
	return id, nil
}

func parseJobRequest(c *fiber.Ctx) (service.JobInput, error) {
	var req dto.JobRequest
	if err := c.BodyParser(&req); err != nil {
		return service.JobInput{}, apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Title) == "" {
		return service.JobInput{}, apperrors.NewValidationError("title required", nil)
	}
	if req.SalaryFrom < 0 || req.SalaryTo < 0 {
		return service.JobInput{}, apperrors.NewValidationError("salary must not be negative", nil)
	}
	if req.SalaryTo > 0 && req.SalaryFrom > req.SalaryTo {
		return service.JobInput{}, apperrors.NewValidationError("salary_from must not exceed salary_to", map[string]any{
			"salary_from": req.SalaryFrom,
			"salary_to":   req.SalaryTo,
		})
	}
	return service.JobInput{
		Title:       req.Title,
		Description: req.Description,
		SalaryFrom:  req.SalaryFrom,
		SalaryTo:    req.SalaryTo,
		IsActive:    req.IsActive,
	}, nil
}
