package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jobhub/job-board/internal/events"
	"github.com/jobhub/job-board/internal/testing/memstore"
)

func TestNotificationService_LogsJobEvents(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	dispatcher := events.NewInMemoryDispatcher()
	NewNotificationService(dispatcher, zap.New(core)).RegisterHandlers()

	svc := NewJobService(memstore.NewJobs(), dispatcher, nil)
	job, err := svc.CreateJob(context.Background(), companyA, backendInput())
	require.NoError(t, err)

	entries := logs.FilterMessage("job event").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "job_created", fields["event_type"])
	assert.Equal(t, job.ID, fields["job_id"])
}

func TestJobService_LogsFailingEventHandlers(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	dispatcher := events.NewInMemoryDispatcher()
	dispatcher.Subscribe(events.EventJobCreated, func(context.Context, events.Event) error {
		return errors.New("mailer offline")
	})

	svc := NewJobService(memstore.NewJobs(), dispatcher, zap.New(core))
	job, err := svc.CreateJob(context.Background(), companyA, backendInput())
	require.NoError(t, err)
	require.NotNil(t, job)

	entries := logs.FilterMessage("job event handlers failed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "job_created", fields["event_type"])
	assert.Equal(t, job.ID, fields["job_id"])
	assert.Contains(t, fields["error"], "mailer offline")
}
