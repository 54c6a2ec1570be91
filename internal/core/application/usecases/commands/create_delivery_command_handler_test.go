package commands_test

import (
	"errors"
	"testing"
	"time"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/deliveryman"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/recipient"
	"parcels/internal/core/domain/services"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func deliveryParticipants(t *testing.T) (*recipient.Recipient, *deliveryman.Deliveryman) {
	t.Helper()

	now := time.Now()

	r, err := recipient.NewRecipient(kernel.NewUUID(), "Jane Doe", testAddress(t), now)
	require.NoError(t, err)

	email, err := kernel.NewEmail("john@fastfeet.com")
	require.NoError(t, err)
	dm, err := deliveryman.NewDeliveryman(kernel.NewUUID(), "John Smith", email, now)
	require.NoError(t, err)

	return r, dm
}

func TestCreateDeliveryCommandHandler_Handle_EnqueuesOneNotification(t *testing.T) {
	ctx := t.Context()
	r, dm := deliveryParticipants(t)
	cmd, _ := commands.NewCreateDeliveryCommand(kernel.NewUUID(), r.ID(), dm.ID(), "Mechanical keyboard")

	deliveryRepo := new(MockDeliveryRepository)
	recipientRepo := new(MockRecipientRepository)
	deliverymanRepo := new(MockDeliverymanRepository)
	queue := new(MockNotificationQueue)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RecipientRepository").Return(recipientRepo).Once(),
		recipientRepo.On("Get", mock.Anything, r.ID()).Return(r, nil).Once(),
		uow.On("DeliverymanRepository").Return(deliverymanRepo).Once(),
		deliverymanRepo.On("Get", mock.Anything, dm.ID()).Return(dm, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Add", mock.Anything, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		queue.On("Enqueue", mock.Anything, services.JobNewDeliveryMail,
			mock.AnythingOfType("services.NewDeliveryNotice")).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory, services.NewNotificationTrigger(), queue, discardLogger())
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	deliveryRepo.AssertExpectations(t)
	queue.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateDeliveryCommandHandler_Handle_EnqueueFailureDoesNotFailCommand(t *testing.T) {
	ctx := t.Context()
	r, dm := deliveryParticipants(t)
	cmd, _ := commands.NewCreateDeliveryCommand(kernel.NewUUID(), r.ID(), dm.ID(), "Mechanical keyboard")

	deliveryRepo := new(MockDeliveryRepository)
	recipientRepo := new(MockRecipientRepository)
	deliverymanRepo := new(MockDeliverymanRepository)
	queue := new(MockNotificationQueue)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RecipientRepository").Return(recipientRepo).Once(),
		recipientRepo.On("Get", mock.Anything, r.ID()).Return(r, nil).Once(),
		uow.On("DeliverymanRepository").Return(deliverymanRepo).Once(),
		deliverymanRepo.On("Get", mock.Anything, dm.ID()).Return(dm, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Add", mock.Anything, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		queue.On("Enqueue", mock.Anything, services.JobNewDeliveryMail, mock.Anything).
			Return(errors.New("redis is down")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory, services.NewNotificationTrigger(), queue, discardLogger())
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	queue.AssertExpectations(t)
}

func TestCreateDeliveryCommandHandler_Handle_RemovedRecipientIsRejected(t *testing.T) {
	ctx := t.Context()
	r, dm := deliveryParticipants(t)
	require.NoError(t, r.Remove(time.Now(), false))
	cmd, _ := commands.NewCreateDeliveryCommand(kernel.NewUUID(), r.ID(), dm.ID(), "Mechanical keyboard")

	recipientRepo := new(MockRecipientRepository)
	queue := new(MockNotificationQueue)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RecipientRepository").Return(recipientRepo).Once(),
		recipientRepo.On("Get", mock.Anything, r.ID()).Return(r, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory, services.NewNotificationTrigger(), queue, discardLogger())
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	queue.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
