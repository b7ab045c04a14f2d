package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/jobhub/job-board/internal/domain"
	"github.com/jobhub/job-board/internal/events"
	"github.com/jobhub/job-board/internal/repository"
	apperrors "github.com/jobhub/job-board/pkg/util/errorutil"
)

// JobService applies the per-route authorization rules around the job repository.
type JobService struct {
	jobs       repository.JobRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// JobInput carries the client-editable job fields.
type JobInput struct {
	Title       string
	Description string
	SalaryFrom  int64
	SalaryTo    int64
	IsActive    bool
}

// DeleteReport describes a removed job.
type DeleteReport struct {
	ID      int64
	Message string
}

// NewJobService constructs the service. dispatcher may be nil.
func NewJobService(jobs repository.JobRepository, dispatcher events.Dispatcher, logger *zap.Logger) *JobService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JobService{jobs: jobs, dispatcher: dispatcher, logger: logger}
}

// CreateJob stores a job owned by user. Only companies may publish.
func (s *JobService) CreateJob(ctx context.Context, user *domain.User, input JobInput) (*domain.Job, error) {
	if !user.IsCompany {
		return nil, apperrors.NewForbiddenAction(http.StatusMethodNotAllowed,
			fmt.Sprintf("user %s is not a company and cannot create jobs", user.Name))
	}

	job, err := s.jobs.Add(ctx, &domain.Job{
		UserID:      user.ID,
		Title:       input.Title,
		Description: input.Description,
		SalaryFrom:  input.SalaryFrom,
		SalaryTo:    input.SalaryTo,
		IsActive:    input.IsActive,
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publishEvent(ctx, events.EventJobCreated, user.ID, job)
	return job, nil
}

// ListJobs returns every stored job.
func (s *JobService) ListJobs(ctx context.Context) ([]domain.Job, error) {
	jobs, err := s.jobs.GetAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return jobs, nil
}

// EditJob overwrites a job's mutable fields. Only the author may edit.
func (s *JobService) EditJob(ctx context.Context, user *domain.User, jobID int64, input JobInput) (*domain.Job, error) {
	existing, err := s.getJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !existing.OwnedBy(user.ID) {
		return nil, apperrors.NewForbiddenAction(http.StatusMethodNotAllowed,
			fmt.Sprintf("user %s is not the author of job %d and cannot edit it", user.Name, jobID))
	}

	updated, err := s.jobs.Update(ctx, &domain.Job{
		ID:          jobID,
		UserID:      existing.UserID,
		Title:       input.Title,
		Description: input.Description,
		SalaryFrom:  input.SalaryFrom,
		SalaryTo:    input.SalaryTo,
		IsActive:    input.IsActive,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, jobNotFound(jobID)
		}
		return nil, apperrors.MapError(err)
	}
	s.publishEvent(ctx, events.EventJobUpdated, user.ID, updated)
	return updated, nil
}

// DeleteJob removes a job. The caller must be a company and the author.
func (s *JobService) DeleteJob(ctx context.Context, user *domain.User, jobID int64) (*DeleteReport, error) {
	existing, err := s.getJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !user.IsCompany || !existing.OwnedBy(user.ID) {
		return nil, apperrors.NewForbiddenAction(http.StatusBadRequest,
			fmt.Sprintf("job %d was not deleted: it was not found or user %s is not its author", jobID, user.Name))
	}

	removed, err := s.jobs.DeleteByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, jobNotFound(jobID)
		}
		return nil, apperrors.MapError(err)
	}
	s.publishEvent(ctx, events.EventJobDeleted, user.ID, existing)
	return &DeleteReport{ID: removed, Message: fmt.Sprintf("Вакансия %d удалена", removed)}, nil
}

func (s *JobService) getJob(ctx context.Context, jobID int64) (*domain.Job, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, jobNotFound(jobID)
		}
		return nil, apperrors.MapError(err)
	}
	return job, nil
}

func jobNotFound(jobID int64) error {
	return apperrors.NewNotFound("job", map[string]any{"job_id": jobID})
}

func (s *JobService) publishEvent(ctx context.Context, eventType events.EventType, actorID int64, job *domain.Job) {
	if s.dispatcher == nil || job == nil {
		return
	}
	err := s.dispatcher.Publish(ctx, events.Event{
		Type:        eventType,
		JobID:       job.ID,
		ActorUserID: actorID,
		Payload: events.JobPayload{
			Title:      job.Title,
			SalaryFrom: job.SalaryFrom,
			SalaryTo:   job.SalaryTo,
			IsActive:   job.IsActive,
		},
	})
	if err != nil {
		s.logger.Warn("job event handlers failed",
			zap.String("event_type", string(eventType)),
			zap.Int64("job_id", job.ID),
			zap.Error(err),
		)
	}
}
