package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/jobhub/job-board/internal/events"
)

// NotificationService reports job lifecycle events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	events.SubscribeAll(n.dispatcher, events.JobEventTypes, n.handleJobEvent)
}

func (n *NotificationService) handleJobEvent(_ context.Context, event events.Event) error {
	n.logger.Info("job event",
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)),
		zap.Time("occurred_at", event.Timestamp),
		zap.Int64("job_id", event.JobID),
		zap.Int64("actor_user_id", event.ActorUserID),
		zap.Any("payload", event.Payload))
	return nil
}
