// Package jobs provides scheduled background tasks for the parcel service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the delivery workflow.
//
// # Available Jobs
//
// 1. NotificationDispatchJob - Runs every second to drain the notification
// queue and mail deliverymen about new and canceled deliveries
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(queue, mailer, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The dispatch job uses the cron expression "* * * * * *", running every
// second. Combined with the queue's blocking pop this keeps mail latency low
// without busy-polling Redis.
//
// # Error Handling
//
// - An empty queue is the normal idle state and is not logged
// - Malformed payloads and SMTP failures are logged and the notification is
//   dropped rather than requeued, so one poisoned job cannot jam the queue
// - Failed job starts will stop any already running jobs
package jobs
