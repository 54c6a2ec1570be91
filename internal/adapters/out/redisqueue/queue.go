// Package redisqueue implements the notification queue on top of a Redis list.
// Producers LPUSH serialized jobs; the dispatcher drains the list with a
// blocking BRPOP, so jobs come out in the order they went in.
package redisqueue

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"parcels/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// DefaultKey is the Redis list holding pending notification jobs.
const DefaultKey = "parcels:notifications"

// defaultWait bounds how long Dequeue blocks waiting for a job.
const defaultWait = 5 * time.Second

// envelope is the wire format of a queued job.
type envelope struct {
	Job        string          `json:"job"`
	Payload    json.RawMessage `json:"payload"`
	EnqueuedAt time.Time       `json:"enqueued_at"`
}

// RedisNotificationQueue implements ports.NotificationQueue using a Redis list.
type RedisNotificationQueue struct {
	client *redis.Client
	key    string
	wait   time.Duration
}

// NewRedisNotificationQueue creates a queue backed by the given Redis client,
// using DefaultKey as the list name.
func NewRedisNotificationQueue(client *redis.Client) *RedisNotificationQueue {
	return &RedisNotificationQueue{
		client: client,
		key:    DefaultKey,
		wait:   defaultWait,
	}
}

// Enqueue serializes the payload and pushes the job onto the list.
func (q *RedisNotificationQueue) Enqueue(ctx context.Context, job string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	body, err := json.Marshal(envelope{
		Job:        job,
		Payload:    raw,
		EnqueuedAt: time.Now(),
	})
	if err != nil {
		return err
	}

	return q.client.LPush(ctx, q.key, body).Err()
}

// Dequeue pops the oldest job, blocking up to the wait window.
// Returns ports.ErrQueueEmpty when the window elapses without a job.
func (q *RedisNotificationQueue) Dequeue(ctx context.Context) (ports.Notification, error) {
	result, err := q.client.BRPop(ctx, q.wait, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ports.Notification{}, ports.ErrQueueEmpty
		}
		return ports.Notification{}, err
	}

	// BRPop returns [key, value].
	var env envelope
	if err = json.Unmarshal([]byte(result[1]), &env); err != nil {
		return ports.Notification{}, err
	}

	return ports.Notification{
		Job:     env.Job,
		Payload: env.Payload,
	}, nil
}
