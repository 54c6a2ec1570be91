package cmd

import (
	"log/slog"

	httpserver "parcels/internal/adapters/in/http"
	"parcels/internal/adapters/out/mail"
	"parcels/internal/adapters/out/postgres"
	"parcels/internal/adapters/out/redisqueue"
	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/services"
	"parcels/internal/core/ports"
	"parcels/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	queue      ports.NotificationQueue
	mailer     ports.Mailer
	trigger    services.NotificationTrigger
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, redisClient *redis.Client, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		queue:      redisqueue.NewRedisNotificationQueue(redisClient),
		mailer: mail.NewSMTPMailer(
			config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword,
			config.MailFrom, config.MailFromName),
		trigger: services.NewNotificationTrigger(),
		logger:  logger,
	}
}

func (c *CompositionRoot) CreateCreateRecipientCommandHandler() commands.CreateRecipientCommandHandler {
	return commands.NewCreateRecipientCommandHandler(c.recipientUoWFactory())
}

func (c *CompositionRoot) CreateUpdateRecipientCommandHandler() commands.UpdateRecipientCommandHandler {
	return commands.NewUpdateRecipientCommandHandler(c.recipientUoWFactory())
}

func (c *CompositionRoot) CreateRemoveRecipientCommandHandler() commands.RemoveRecipientCommandHandler {
	return commands.NewRemoveRecipientCommandHandler(c.recipientUoWFactory())
}

func (c *CompositionRoot) CreateCreateDeliverymanCommandHandler() commands.CreateDeliverymanCommandHandler {
	return commands.NewCreateDeliverymanCommandHandler(c.deliverymanUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDeliverymanCommandHandler() commands.UpdateDeliverymanCommandHandler {
	return commands.NewUpdateDeliverymanCommandHandler(c.deliverymanUoWFactory())
}

func (c *CompositionRoot) CreateRemoveDeliverymanCommandHandler() commands.RemoveDeliverymanCommandHandler {
	return commands.NewRemoveDeliverymanCommandHandler(c.deliverymanUoWFactory())
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	return commands.NewCreateDeliveryCommandHandler(c.deliveryUoWFactory(), c.trigger, c.queue, c.logger)
}

func (c *CompositionRoot) CreateUpdateDeliveryCommandHandler() commands.UpdateDeliveryCommandHandler {
	return commands.NewUpdateDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateCancelDeliveryCommandHandler() commands.CancelDeliveryCommandHandler {
	return commands.NewCancelDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateRemoveDeliveryCommandHandler() commands.RemoveDeliveryCommandHandler {
	return commands.NewRemoveDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateWithdrawDeliveryCommandHandler() commands.WithdrawDeliveryCommandHandler {
	return commands.NewWithdrawDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateRegisterProblemCommandHandler() commands.RegisterProblemCommandHandler {
	return commands.NewRegisterProblemCommandHandler(c.problemUoWFactory())
}

func (c *CompositionRoot) CreateCancelDeliveryByProblemCommandHandler() commands.CancelDeliveryByProblemCommandHandler {
	return commands.NewCancelDeliveryByProblemCommandHandler(c.problemUoWFactory(), c.trigger, c.queue, c.logger)
}

func (c *CompositionRoot) CreateStoreFileCommandHandler() commands.StoreFileCommandHandler {
	return commands.NewStoreFileCommandHandler(c.fileUoWFactory())
}

func (c *CompositionRoot) CreateGetAllRecipientsQueryHandler() queries.GetAllRecipientsQueryHandler {
	return queries.NewGetAllRecipientsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRecipientQueryHandler() queries.GetRecipientQueryHandler {
	return queries.NewGetRecipientQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllDeliverymenQueryHandler() queries.GetAllDeliverymenQueryHandler {
	return queries.NewGetAllDeliverymenQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliverymanQueryHandler() queries.GetDeliverymanQueryHandler {
	return queries.NewGetDeliverymanQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllDeliveriesQueryHandler() queries.GetAllDeliveriesQueryHandler {
	return queries.NewGetAllDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliverymanDeliveriesQueryHandler() queries.GetDeliverymanDeliveriesQueryHandler {
	return queries.NewGetDeliverymanDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllProblemsQueryHandler() queries.GetAllProblemsQueryHandler {
	return queries.NewGetAllProblemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProblemsByDeliveryQueryHandler() queries.GetProblemsByDeliveryQueryHandler {
	return queries.NewGetProblemsByDeliveryQueryHandler(c.gormDB)
}

// CreateServerHandlers assembles every handler the HTTP server routes to.
func (c *CompositionRoot) CreateServerHandlers() httpserver.Handlers {
	return httpserver.Handlers{
		CreateRecipient:   c.CreateCreateRecipientCommandHandler(),
		UpdateRecipient:   c.CreateUpdateRecipientCommandHandler(),
		RemoveRecipient:   c.CreateRemoveRecipientCommandHandler(),
		CreateDeliveryman: c.CreateCreateDeliverymanCommandHandler(),
		UpdateDeliveryman: c.CreateUpdateDeliverymanCommandHandler(),
		RemoveDeliveryman: c.CreateRemoveDeliverymanCommandHandler(),
		CreateDelivery:    c.CreateCreateDeliveryCommandHandler(),
		UpdateDelivery:    c.CreateUpdateDeliveryCommandHandler(),
		CancelDelivery:    c.CreateCancelDeliveryCommandHandler(),
		RemoveDelivery:    c.CreateRemoveDeliveryCommandHandler(),
		WithdrawDelivery:  c.CreateWithdrawDeliveryCommandHandler(),
		CompleteDelivery:  c.CreateCompleteDeliveryCommandHandler(),
		RegisterProblem:   c.CreateRegisterProblemCommandHandler(),
		CancelByProblem:   c.CreateCancelDeliveryByProblemCommandHandler(),
		StoreFile:         c.CreateStoreFileCommandHandler(),

		GetAllRecipients:       c.CreateGetAllRecipientsQueryHandler(),
		GetRecipient:           c.CreateGetRecipientQueryHandler(),
		GetAllDeliverymen:      c.CreateGetAllDeliverymenQueryHandler(),
		GetDeliveryman:         c.CreateGetDeliverymanQueryHandler(),
		GetAllDeliveries:       c.CreateGetAllDeliveriesQueryHandler(),
		GetDeliverymanWorkload: c.CreateGetDeliverymanDeliveriesQueryHandler(),
		GetAllProblems:         c.CreateGetAllProblemsQueryHandler(),
		GetProblemsByDelivery:  c.CreateGetProblemsByDeliveryQueryHandler(),
	}
}

// CreateJobManager wires the background jobs against the queue and mailer.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.queue, c.mailer, c.logger)
}

func (c *CompositionRoot) recipientUoWFactory() commands.RecipientUoWFactory {
	return FuncRecipientUoWFactory(func() commands.RecipientUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliverymanUoWFactory() commands.DeliverymanUoWFactory {
	return FuncDeliverymanUoWFactory(func() commands.DeliverymanUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) problemUoWFactory() commands.ProblemUoWFactory {
	return FuncProblemUoWFactory(func() commands.ProblemUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fileUoWFactory() commands.FileUoWFactory {
	return FuncFileUoWFactory(func() commands.FileUoW {
		return c.uowFactory.Create()
	})
}

type FuncRecipientUoWFactory func() commands.RecipientUoW

func (f FuncRecipientUoWFactory) Create() commands.RecipientUoW {
	return f()
}

type FuncDeliverymanUoWFactory func() commands.DeliverymanUoW

func (f FuncDeliverymanUoWFactory) Create() commands.DeliverymanUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncProblemUoWFactory func() commands.ProblemUoW

func (f FuncProblemUoWFactory) Create() commands.ProblemUoW {
	return f()
}

type FuncFileUoWFactory func() commands.FileUoW

func (f FuncFileUoWFactory) Create() commands.FileUoW {
	return f()
}
