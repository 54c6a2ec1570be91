package queries_test

import (
	"context"
	"testing"
	"time"

	"parcels/internal/adapters/out/postgres/deliverymanrepo"
	"parcels/internal/adapters/out/postgres/deliveryrepo"
	"parcels/internal/adapters/out/postgres/filerepo"
	"parcels/internal/adapters/out/postgres/recipientrepo"
	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/model/delivery"
	"parcels/internal/core/domain/model/deliveryman"
	"parcels/internal/core/domain/model/file"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/recipient"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAllDeliveriesQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAllDeliveriesQueryHandler

	recipientID   kernel.UUID
	deliverymanID kernel.UUID
}

func (suite *GetAllDeliveriesQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&recipientrepo.RecipientDTO{},
		&deliverymanrepo.DeliverymanDTO{},
		&deliveryrepo.DeliveryDTO{},
		&filerepo.FileDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetAllDeliveriesQueryHandler(db)
}

func (suite *GetAllDeliveriesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAllDeliveriesQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE deliveries, recipients, deliverymen, files").Error
	suite.Require().NoError(err)

	suite.recipientID = suite.addRecipient("Alice Johnson")
	suite.deliverymanID = suite.addDeliveryman("Bob Smith", "bob.smith@fastfeet.test")
}

func (suite *GetAllDeliveriesQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetAllDeliveriesQuery("")

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAllDeliveriesQueryHandlerTestSuite) TestHandle_WithDeliveries_ReturnsEnrichedRowsNewestFirst() {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	suite.addOpenDelivery("Mechanical keyboard", base)
	suite.addOpenDelivery("Coffee grinder", base.Add(time.Hour))

	query := queries.NewGetAllDeliveriesQuery("")

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal("Coffee grinder", result[0].Product)
	suite.Equal("Mechanical keyboard", result[1].Product)

	first := result[0]
	suite.Equal(suite.recipientID, first.RecipientID)
	suite.Equal("Alice Johnson", first.RecipientName)
	suite.Equal("Springfield", first.City)
	suite.Equal("SP", first.State)
	suite.Equal(suite.deliverymanID, first.DeliverymanID)
	suite.Equal("Bob Smith", first.DeliverymanName)
	suite.Equal("bob.smith@fastfeet.test", first.DeliverymanEmail)
	suite.Equal(delivery.Open.String(), first.Status)
	suite.Nil(first.SignatureURL)
	suite.Nil(first.StartDate)
	suite.Nil(first.EndDate)
	suite.Nil(first.CanceledAt)
}

func (suite *GetAllDeliveriesQueryHandlerTestSuite) TestHandle_LifecycleStates_DeriveStatusFromTimestamps() {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	withdrawn := base.Add(time.Hour)
	delivered := base.Add(3 * time.Hour)
	canceled := base.Add(2 * time.Hour)

	signatureID, signatureURL := suite.addSignature()

	suite.addOpenDelivery("Open package", base)
	suite.addDeliveryInState("Withdrawn package", base, nil, &withdrawn, nil, nil)
	suite.addDeliveryInState("Delivered package", base, &signatureID, &withdrawn, &delivered, nil)
	suite.addDeliveryInState("Canceled package", base, nil, nil, nil, &canceled)

	query := queries.NewGetAllDeliveriesQuery("")

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 4)

	byProduct := make(map[string]queries.GetAllDeliveriesQueryResponse)
	for _, r := range result {
		byProduct[r.Product] = r
	}

	suite.Equal(delivery.Open.String(), byProduct["Open package"].Status)
	suite.Equal(delivery.Withdrawn.String(), byProduct["Withdrawn package"].Status)
	suite.Equal(delivery.Delivered.String(), byProduct["Delivered package"].Status)
	suite.Equal(delivery.Canceled.String(), byProduct["Canceled package"].Status)

	suite.Require().NotNil(byProduct["Delivered package"].SignatureURL)
	suite.Equal(signatureURL, *byProduct["Delivered package"].SignatureURL)
	suite.Require().NotNil(byProduct["Withdrawn package"].StartDate)
	suite.True(withdrawn.Equal(*byProduct["Withdrawn package"].StartDate))
	suite.Require().NotNil(byProduct["Canceled package"].CanceledAt)
	suite.True(canceled.Equal(*byProduct["Canceled package"].CanceledAt))
}

func (suite *GetAllDeliveriesQueryHandlerTestSuite) TestHandle_ProductFilter_MatchesSubstringCaseInsensitive() {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	suite.addOpenDelivery("Mechanical Keyboard", base)
	suite.addOpenDelivery("Coffee grinder", base.Add(time.Minute))
	suite.addOpenDelivery("Keyboard stand", base.Add(2*time.Minute))

	query := queries.NewGetAllDeliveriesQuery("keyboard")

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("Keyboard stand", result[0].Product)
	suite.Equal("Mechanical Keyboard", result[1].Product)
}

func (suite *GetAllDeliveriesQueryHandlerTestSuite) TestHandle_RemovedDeliveries_AreExcluded() {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	removedAt := base.Add(time.Hour)

	suite.addOpenDelivery("Visible package", base)
	d, err := delivery.RestoreDelivery(
		kernel.NewUUID(), suite.recipientID, suite.deliverymanID,
		"Removed package", nil, nil, nil, nil, &removedAt, base)
	suite.Require().NoError(err)
	suite.saveDelivery(d)

	query := queries.NewGetAllDeliveriesQuery("")

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Visible package", result[0].Product)
}

func (suite *GetAllDeliveriesQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAllDeliveriesQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetAllDeliveriesQuery constructor")
}

func (suite *GetAllDeliveriesQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	suite.addOpenDelivery("Any package", time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))

	query := queries.NewGetAllDeliveriesQuery("")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *GetAllDeliveriesQueryHandlerTestSuite) addRecipient(name string) kernel.UUID {
	address, err := kernel.NewAddress("Elm Street", 42, "", "Springfield", "SP", "12345-000")
	suite.Require().NoError(err)

	r, err := recipient.NewRecipient(kernel.NewUUID(), name, address, time.Now().UTC())
	suite.Require().NoError(err)

	repo := recipientrepo.NewGormRecipientRepository(suite.db, &noopAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), r))

	return r.ID()
}

func (suite *GetAllDeliveriesQueryHandlerTestSuite) addDeliveryman(name, emailAddr string) kernel.UUID {
	email, err := kernel.NewEmail(emailAddr)
	suite.Require().NoError(err)

	dm, err := deliveryman.NewDeliveryman(kernel.NewUUID(), name, email, time.Now().UTC())
	suite.Require().NoError(err)

	repo := deliverymanrepo.NewGormDeliverymanRepository(suite.db, &noopAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), dm))

	return dm.ID()
}

func (suite *GetAllDeliveriesQueryHandlerTestSuite) addSignature() (kernel.UUID, string) {
	id := kernel.NewUUID()
	url := "http://localhost:3333/files/" + id.String() + "-signature.png"

	f, err := file.NewStoredFile(id, "signature.png", id.String()+"-signature.png", url, time.Now().UTC())
	suite.Require().NoError(err)

	repo := filerepo.NewGormFileRepository(suite.db, &noopAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), f))

	return id, url
}

func (suite *GetAllDeliveriesQueryHandlerTestSuite) addOpenDelivery(product string, createdAt time.Time) {
	d, err := delivery.NewDelivery(kernel.NewUUID(), suite.recipientID, suite.deliverymanID, product, createdAt)
	suite.Require().NoError(err)
	suite.saveDelivery(d)
}

func (suite *GetAllDeliveriesQueryHandlerTestSuite) addDeliveryInState(
	product string,
	createdAt time.Time,
	signatureID *kernel.UUID,
	startDate, endDate, canceledAt *time.Time,
) {
	d, err := delivery.RestoreDelivery(
		kernel.NewUUID(), suite.recipientID, suite.deliverymanID,
		product, signatureID, startDate, endDate, canceledAt, nil, createdAt)
	suite.Require().NoError(err)
	suite.saveDelivery(d)
}

func (suite *GetAllDeliveriesQueryHandlerTestSuite) saveDelivery(d *delivery.Delivery) {
	repo := deliveryrepo.NewGormDeliveryRepository(suite.db, &noopAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), d))
}

func TestGetAllDeliveriesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAllDeliveriesQueryHandlerTestSuite))
}

// noopAggregateTracker satisfies the repositories' tracker dependency; query
// tests have no transaction to track aggregates for.
type noopAggregateTracker struct{}

func (t *noopAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}
