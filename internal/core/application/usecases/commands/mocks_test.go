package commands_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/delivery"
	"parcels/internal/core/domain/model/deliveryman"
	"parcels/internal/core/domain/model/file"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/problem"
	"parcels/internal/core/domain/model/recipient"
	"parcels/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) CountWithdrawnOnDay(ctx context.Context, deliverymanID kernel.UUID, day time.Time) (int, error) {
	args := m.Called(ctx, deliverymanID, day)
	return args.Int(0), args.Error(1)
}

func (m *MockDeliveryRepository) HasOpenForDeliveryman(ctx context.Context, deliverymanID kernel.UUID) (bool, error) {
	args := m.Called(ctx, deliverymanID)
	return args.Bool(0), args.Error(1)
}

func (m *MockDeliveryRepository) HasOpenForRecipient(ctx context.Context, recipientID kernel.UUID) (bool, error) {
	args := m.Called(ctx, recipientID)
	return args.Bool(0), args.Error(1)
}

type MockDeliverymanRepository struct{ mock.Mock }

func (m *MockDeliverymanRepository) Add(ctx context.Context, dm *deliveryman.Deliveryman) error {
	args := m.Called(ctx, dm)
	return args.Error(0)
}

func (m *MockDeliverymanRepository) Update(ctx context.Context, dm *deliveryman.Deliveryman) error {
	args := m.Called(ctx, dm)
	return args.Error(0)
}

func (m *MockDeliverymanRepository) Get(ctx context.Context, id kernel.UUID) (*deliveryman.Deliveryman, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deliveryman.Deliveryman), args.Error(1)
}

func (m *MockDeliverymanRepository) GetByEmail(ctx context.Context, email kernel.Email) (*deliveryman.Deliveryman, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deliveryman.Deliveryman), args.Error(1)
}

type MockRecipientRepository struct{ mock.Mock }

func (m *MockRecipientRepository) Add(ctx context.Context, r *recipient.Recipient) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRecipientRepository) Update(ctx context.Context, r *recipient.Recipient) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRecipientRepository) Get(ctx context.Context, id kernel.UUID) (*recipient.Recipient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipient.Recipient), args.Error(1)
}

func (m *MockRecipientRepository) GetByName(ctx context.Context, name string) (*recipient.Recipient, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipient.Recipient), args.Error(1)
}

type MockProblemRepository struct{ mock.Mock }

func (m *MockProblemRepository) Add(ctx context.Context, p *problem.DeliveryProblem) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProblemRepository) Get(ctx context.Context, id kernel.UUID) (*problem.DeliveryProblem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*problem.DeliveryProblem), args.Error(1)
}

type MockFileRepository struct{ mock.Mock }

func (m *MockFileRepository) Add(ctx context.Context, f *file.StoredFile) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFileRepository) Get(ctx context.Context, id kernel.UUID) (*file.StoredFile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*file.StoredFile), args.Error(1)
}

type MockRecipientUoW struct{ mock.Mock }

func (m *MockRecipientUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRecipientUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRecipientUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRecipientUoW) RecipientRepository() ports.RecipientRepository {
	args := m.Called()
	return args.Get(0).(ports.RecipientRepository)
}

func (m *MockRecipientUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

type MockRecipientUoWFactory struct{ mock.Mock }

func (m *MockRecipientUoWFactory) Create() commands.RecipientUoW {
	args := m.Called()
	return args.Get(0).(commands.RecipientUoW)
}

type MockDeliverymanUoW struct{ mock.Mock }

func (m *MockDeliverymanUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliverymanUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliverymanUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliverymanUoW) DeliverymanRepository() ports.DeliverymanRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliverymanRepository)
}

func (m *MockDeliverymanUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockDeliverymanUoW) FileRepository() ports.FileRepository {
	args := m.Called()
	return args.Get(0).(ports.FileRepository)
}

type MockDeliverymanUoWFactory struct{ mock.Mock }

func (m *MockDeliverymanUoWFactory) Create() commands.DeliverymanUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliverymanUoW)
}

type MockDeliveryUoW struct{ mock.Mock }

func (m *MockDeliveryUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockDeliveryUoW) DeliverymanRepository() ports.DeliverymanRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliverymanRepository)
}

func (m *MockDeliveryUoW) RecipientRepository() ports.RecipientRepository {
	args := m.Called()
	return args.Get(0).(ports.RecipientRepository)
}

func (m *MockDeliveryUoW) FileRepository() ports.FileRepository {
	args := m.Called()
	return args.Get(0).(ports.FileRepository)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockProblemUoW struct{ mock.Mock }

func (m *MockProblemUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProblemUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProblemUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProblemUoW) ProblemRepository() ports.ProblemRepository {
	args := m.Called()
	return args.Get(0).(ports.ProblemRepository)
}

func (m *MockProblemUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockProblemUoW) DeliverymanRepository() ports.DeliverymanRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliverymanRepository)
}

func (m *MockProblemUoW) RecipientRepository() ports.RecipientRepository {
	args := m.Called()
	return args.Get(0).(ports.RecipientRepository)
}

type MockProblemUoWFactory struct{ mock.Mock }

func (m *MockProblemUoWFactory) Create() commands.ProblemUoW {
	args := m.Called()
	return args.Get(0).(commands.ProblemUoW)
}

type MockFileUoW struct{ mock.Mock }

func (m *MockFileUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFileUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFileUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFileUoW) FileRepository() ports.FileRepository {
	args := m.Called()
	return args.Get(0).(ports.FileRepository)
}

type MockFileUoWFactory struct{ mock.Mock }

func (m *MockFileUoWFactory) Create() commands.FileUoW {
	args := m.Called()
	return args.Get(0).(commands.FileUoW)
}

type MockNotificationQueue struct{ mock.Mock }

func (m *MockNotificationQueue) Enqueue(ctx context.Context, job string, payload any) error {
	args := m.Called(ctx, job, payload)
	return args.Error(0)
}

func (m *MockNotificationQueue) Dequeue(ctx context.Context) (ports.Notification, error) {
	args := m.Called(ctx)
	return args.Get(0).(ports.Notification), args.Error(1)
}
