package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"parcels/internal/adapters/out/mail"
	"parcels/internal/core/domain/services"
	"parcels/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// NotificationDispatchJob drains the notification queue and sends the mails.
// Runs every second so queued notices leave shortly after the command that
// produced them commits.
type NotificationDispatchJob struct {
	queue  ports.NotificationQueue
	mailer ports.Mailer
	cron   *cron.Cron
	logger *slog.Logger
}

// NewNotificationDispatchJob creates the mail dispatcher.
func NewNotificationDispatchJob(
	queue ports.NotificationQueue,
	mailer ports.Mailer,
	logger *slog.Logger,
) *NotificationDispatchJob {
	return &NotificationDispatchJob{
		queue:  queue,
		mailer: mailer,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "notification_dispatch_job"),
	}
}

// Start begins the dispatch job to run every second.
func (j *NotificationDispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()

		notification, err := j.queue.Dequeue(ctx)
		if err != nil {
			// An empty queue is the normal idle state.
			if !errors.Is(err, ports.ErrQueueEmpty) {
				j.logger.ErrorContext(ctx, "Failed to dequeue notification", "error", err)
			}
			return
		}

		if err = j.dispatch(ctx, notification); err != nil {
			// The notification is dropped: a malformed payload will never
			// send, and retrying SMTP forever would jam the queue.
			j.logger.ErrorContext(ctx, "Failed to dispatch notification",
				"job", notification.Job, "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification dispatch job started (running every second)")
	return nil
}

// Stop stops the dispatch job.
func (j *NotificationDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification dispatch job stopped")
}

func (j *NotificationDispatchJob) dispatch(ctx context.Context, notification ports.Notification) error {
	switch notification.Job {
	case services.JobNewDeliveryMail:
		var notice services.NewDeliveryNotice
		if err := json.Unmarshal(notification.Payload, &notice); err != nil {
			return err
		}

		subject, body, err := mail.NewDeliveryMail(notice)
		if err != nil {
			return err
		}

		return j.mailer.Send(ctx, notice.DeliverymanEmail, notice.Deliveryman, subject, body)

	case services.JobDeliveryCanceledMail:
		var notice services.DeliveryCanceledNotice
		if err := json.Unmarshal(notification.Payload, &notice); err != nil {
			return err
		}

		subject, body, err := mail.DeliveryCanceledMail(notice)
		if err != nil {
			return err
		}

		return j.mailer.Send(ctx, notice.DeliverymanEmail, notice.Deliveryman, subject, body)

	default:
		return fmt.Errorf("unknown notification job %q", notification.Job)
	}
}
