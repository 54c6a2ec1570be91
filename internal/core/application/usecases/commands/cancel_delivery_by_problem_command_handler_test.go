package commands_test

import (
	"testing"
	"time"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/delivery"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/problem"
	"parcels/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelDeliveryByProblemCommandHandler_Handle_EnqueuesOneNotification(t *testing.T) {
	ctx := t.Context()
	r, dm := deliveryParticipants(t)
	d, err := delivery.NewDelivery(kernel.NewUUID(), r.ID(), dm.ID(), "Mechanical keyboard", time.Now())
	require.NoError(t, err)
	p, err := problem.NewDeliveryProblem(kernel.NewUUID(), d.ID(), "Package was damaged in transit", time.Now())
	require.NoError(t, err)
	cmd, _ := commands.NewCancelDeliveryByProblemCommand(p.ID())

	problemRepo := new(MockProblemRepository)
	deliveryRepo := new(MockDeliveryRepository)
	deliverymanRepo := new(MockDeliverymanRepository)
	recipientRepo := new(MockRecipientRepository)
	queue := new(MockNotificationQueue)
	uow := new(MockProblemUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProblemRepository").Return(problemRepo).Once(),
		problemRepo.On("Get", mock.Anything, p.ID()).Return(p, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once(),
		uow.On("DeliverymanRepository").Return(deliverymanRepo).Once(),
		deliverymanRepo.On("Get", mock.Anything, dm.ID()).Return(dm, nil).Once(),
		uow.On("RecipientRepository").Return(recipientRepo).Once(),
		recipientRepo.On("Get", mock.Anything, r.ID()).Return(r, nil).Once(),
		deliveryRepo.On("Update", mock.Anything, d).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		queue.On("Enqueue", mock.Anything, services.JobDeliveryCanceledMail,
			mock.AnythingOfType("services.DeliveryCanceledNotice")).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProblemUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelDeliveryByProblemCommandHandler(factory, services.NewNotificationTrigger(), queue, discardLogger())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, d.CanceledAt())
	queue.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelDeliveryByProblemCommandHandler_Handle_AlreadyCanceled(t *testing.T) {
	ctx := t.Context()
	r, dm := deliveryParticipants(t)
	d, err := delivery.NewDelivery(kernel.NewUUID(), r.ID(), dm.ID(), "Mechanical keyboard", time.Now())
	require.NoError(t, err)
	require.NoError(t, d.Cancel(time.Now()))
	p, err := problem.NewDeliveryProblem(kernel.NewUUID(), d.ID(), "Package was damaged in transit", time.Now())
	require.NoError(t, err)
	cmd, _ := commands.NewCancelDeliveryByProblemCommand(p.ID())

	problemRepo := new(MockProblemRepository)
	deliveryRepo := new(MockDeliveryRepository)
	deliverymanRepo := new(MockDeliverymanRepository)
	recipientRepo := new(MockRecipientRepository)
	queue := new(MockNotificationQueue)
	uow := new(MockProblemUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProblemRepository").Return(problemRepo).Once(),
		problemRepo.On("Get", mock.Anything, p.ID()).Return(p, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once(),
		uow.On("DeliverymanRepository").Return(deliverymanRepo).Once(),
		deliverymanRepo.On("Get", mock.Anything, dm.ID()).Return(dm, nil).Once(),
		uow.On("RecipientRepository").Return(recipientRepo).Once(),
		recipientRepo.On("Get", mock.Anything, r.ID()).Return(r, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProblemUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelDeliveryByProblemCommandHandler(factory, services.NewNotificationTrigger(), queue, discardLogger())
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, delivery.ErrAlreadyCanceled)
	queue.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything, mock.Anything)
}
