package ports

import (
	"context"
	"errors"
)

// ErrQueueEmpty is returned by Dequeue when no notification became available
// within the wait window.
var ErrQueueEmpty = errors.New("notification queue is empty")

// Notification is a queued mail job. Job names the mail kind, Payload carries
// the template context serialized by the producer.
type Notification struct {
	Job     string `json:"job"`
	Payload []byte `json:"payload"`
}

// NotificationQueue is the broker between command handlers and the mail
// dispatcher. Producers enqueue after their transaction commits; the
// dispatcher drains the queue in the background.
type NotificationQueue interface {
	// Enqueue serializes payload and pushes a notification job onto the
	// queue. The payload must be JSON-serializable.
	Enqueue(ctx context.Context, job string, payload any) error

	// Dequeue pops the oldest notification, blocking up to the
	// implementation's wait window. Returns ErrQueueEmpty when nothing
	// arrived in time.
	Dequeue(ctx context.Context) (Notification, error)
}
