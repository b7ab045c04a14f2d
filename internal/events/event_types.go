package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventJobCreated EventType = "job_created"
	EventJobUpdated EventType = "job_updated"
	EventJobDeleted EventType = "job_deleted"
)

// Event represents a job lifecycle change emitted by services.
type Event struct {
	ID          string      `json:"id"`
	Type        EventType   `json:"type"`
	JobID       int64       `json:"job_id"`
	ActorUserID int64       `json:"actor_user_id"`
	Timestamp   time.Time   `json:"timestamp"`
	Payload     interface{} `json:"payload,omitempty"`
}

// JobPayload snapshots the job fields at the time of the event.
type JobPayload struct {
	Title      string `json:"title"`
	SalaryFrom int64  `json:"salary_from"`
	SalaryTo   int64  `json:"salary_to"`
	IsActive   bool   `json:"is_active"`
}
