package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "mescolis/internal/adapters/out/postgres"
	"mescolis/internal/adapters/out/postgres/lockerrepo"
	"mescolis/internal/core/domain/model/kernel"
	"mescolis/internal/core/domain/model/locker"
	"mescolis/internal/core/domain/model/payment"
	"mescolis/internal/core/domain/model/shipment"
	"mescolis/internal/core/domain/model/user"
	"mescolis/internal/core/ports"
	"mescolis/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	paymentrepo "mescolis/internal/adapters/out/postgres/paymentrepo"
	shipmentrepo "mescolis/internal/adapters/out/postgres/shipmentrepo"
	userrepo "mescolis/internal/adapters/out/postgres/userrepo"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes the PostgreSQL container and database connection,
// and runs migrations to prepare the schema.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	// TranslateError is required so unique violations surface as
	// gorm.ErrDuplicatedKey, the same way the application opens the database.
	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&userrepo.UserDTO{},
		&shipmentrepo.AddressDTO{},
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.TrackingEventDTO{},
		&lockerrepo.SmartLockerDTO{},
		&lockerrepo.CompartmentDTO{},
		&lockerrepo.ReservationDTO{},
		&paymentrepo.PaymentDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(`TRUNCATE TABLE
		users, addresses, shipments, tracking_events,
		smart_lockers, locker_compartments, locker_reservations, payments`).Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up the PostgreSQL container.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates isolated instances
// that each expose the full repository set.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.UserRepository())
	suite.NotNil(uow1.ShipmentRepository())
	suite.NotNil(uow1.LockerRepository())
	suite.NotNil(uow1.PaymentRepository())
	suite.NotNil(uow2.UserRepository())
}

// TestUnitOfWork_TransactionLifecycle verifies begin, commit and rollback.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid
// transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_UserRoundTrip verifies an aggregate written inside a
// transaction survives commit and restores faithfully.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_UserRoundTrip() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testUser := createTestUser(suite.T(), "alice@example.com")

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.UserRepository().Add(ctx, testUser)
	suite.Require().NoError(err)

	retrieved, err := uow.UserRepository().Get(ctx, testUser.ID())
	suite.Require().NoError(err)
	suite.Equal(testUser.Email(), retrieved.Email())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err = newUow.UserRepository().GetByEmail(ctx, "alice@example.com")
	suite.Require().NoError(err)
	suite.True(testUser.ID().IsEqual(retrieved.ID()))
	suite.True(retrieved.IsActive())
}

// TestUnitOfWork_ShipmentRoundTrip verifies a shipment with addresses and
// its tracking timeline persists and restores through the repository.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ShipmentRoundTrip() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testUser := createTestUser(suite.T(), "bob@example.com")
	testShipment := createTestShipment(suite.T(), testUser.ID())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.UserRepository().Add(ctx, testUser)
	suite.Require().NoError(err)
	err = uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)
	suite.NotZero(testShipment.ID(), "Repository should assign the generated id")

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err := newUow.ShipmentRepository().GetByTrackingNumber(ctx, testShipment.TrackingNumber())
	suite.Require().NoError(err)
	suite.Equal(testShipment.TrackingNumber(), retrieved.TrackingNumber())
	suite.Equal(shipment.LabelCreated, retrieved.Status())
	suite.Equal("Toronto", retrieved.FromAddress().City())
	suite.Len(retrieved.Events(), 1, "Creation event should be persisted")
}

// TestUnitOfWork_DuplicateTrackingNumber verifies the unique index on
// tracking numbers surfaces as the dedicated sentinel error.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DuplicateTrackingNumber() {
	ctx := context.Background()

	testUser := createTestUser(suite.T(), "carol@example.com")
	first := createTestShipment(suite.T(), testUser.ID())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.UserRepository().Add(ctx, testUser))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, first))
	suite.Require().NoError(uow.Commit(ctx))

	// Restore a second aggregate carrying the same tracking number.
	duplicate, err := shipment.RestoreShipment(
		0,
		first.TrackingNumber(),
		first.OwnerID(),
		first.FromAddress(),
		first.ToAddress(),
		first.ShipmentType(),
		first.PackageDimensions(),
		first.CarrierName(),
		first.ServiceName(),
		first.QuotedPrice(),
		nil,
		"CAD",
		shipment.LabelCreated,
		first.LabelURL(),
		nil,
		nil,
		first.CreatedAt(),
		nil,
		nil,
		first.EstimatedDelivery(),
		nil,
		nil,
	)
	suite.Require().NoError(err)

	dupUow := suite.factory.Create()
	suite.Require().NoError(dupUow.Begin(ctx))
	err = dupUow.ShipmentRepository().Add(ctx, duplicate)
	suite.Require().ErrorIs(err, errs.ErrDuplicateTrackingNumber)
	suite.Require().NoError(dupUow.Rollback(ctx))
}

// TestUnitOfWork_ReservationWorkflow walks the full compartment handout:
// locked selection, availability flip, counter decrement and reservation
// persistence in one transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ReservationWorkflow() {
	ctx := context.Background()
	lockerID := suite.seedLocker("YUL-001", 2)

	testUser := createTestUser(suite.T(), "dave@example.com")
	seedUow := suite.factory.Create()
	suite.Require().NoError(seedUow.Begin(ctx))
	suite.Require().NoError(seedUow.UserRepository().Add(ctx, testUser))
	suite.Require().NoError(seedUow.Commit(ctx))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	repo := uow.LockerRepository()

	compartment, err := repo.SelectAvailableCompartment(ctx, lockerID, locker.Medium)
	suite.Require().NoError(err)

	err = repo.MarkCompartmentUnavailable(ctx, compartment.ID())
	suite.Require().NoError(err)

	reservation, err := locker.NewReservation(
		compartment.ID(), testUser.ID(), nil, locker.DefaultHoldHours, time.Now())
	suite.Require().NoError(err)

	err = repo.AddReservation(ctx, reservation)
	suite.Require().NoError(err)
	suite.NotZero(reservation.ID())

	err = repo.AdjustAvailableCompartments(ctx, lockerID, -1)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Commit(ctx))

	// Verify the committed state.
	verifyUow := suite.factory.Create()
	adjusted, err := verifyUow.LockerRepository().GetLocker(ctx, lockerID)
	suite.Require().NoError(err)
	suite.Equal(1, adjusted.AvailableCompartments())

	persisted, err := verifyUow.LockerRepository().GetReservation(ctx, reservation.ID())
	suite.Require().NoError(err)
	suite.Equal(locker.Reserved, persisted.Status())
	suite.Len(persisted.PickupPin(), 6)
}

// TestUnitOfWork_CompartmentTakenByConcurrentReservation verifies the
// compare-and-set on compartment availability rejects the second taker.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CompartmentTakenByConcurrentReservation() {
	ctx := context.Background()
	lockerID := suite.seedLocker("YUL-002", 1)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	compartment, err := uow.LockerRepository().SelectAvailableCompartment(ctx, lockerID, locker.Medium)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.LockerRepository().MarkCompartmentUnavailable(ctx, compartment.ID()))

	// A second flip on the same compartment must fail the guard.
	err = uow.LockerRepository().MarkCompartmentUnavailable(ctx, compartment.ID())
	suite.Require().ErrorIs(err, errs.ErrCompartmentTaken)

	suite.Require().NoError(uow.Rollback(ctx))
}

// TestUnitOfWork_CounterNeverOverdrawn verifies the bounded counter update
// refuses to push availability below zero.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CounterNeverOverdrawn() {
	ctx := context.Background()
	lockerID := suite.seedLocker("YUL-003", 1)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.LockerRepository().AdjustAvailableCompartments(ctx, lockerID, -1))

	err := uow.LockerRepository().AdjustAvailableCompartments(ctx, lockerID, -1)
	suite.Require().ErrorIs(err, locker.ErrNoCapacity)

	suite.Require().NoError(uow.Rollback(ctx))
}

// TestUnitOfWork_TransactionRollback verifies rollback discards changes
// across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testUser := createTestUser(suite.T(), "erin@example.com")
	testShipment := createTestShipment(suite.T(), testUser.ID())

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.UserRepository().Add(ctx, testUser))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, testShipment))
	suite.Require().NoError(uow.Rollback(ctx))

	newUow := suite.factory.Create()

	_, err := newUow.UserRepository().Get(ctx, testUser.ID())
	suite.Require().Error(err, "User should not exist after rollback")

	_, err = newUow.ShipmentRepository().GetByTrackingNumber(ctx, testShipment.TrackingNumber())
	suite.Require().Error(err, "Shipment should not exist after rollback")
}

// TestUnitOfWork_PaymentReconciliation verifies a payment can be recorded
// Pending and then settled in a later transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PaymentReconciliation() {
	ctx := context.Background()

	testUser := createTestUser(suite.T(), "frank@example.com")
	pending, err := payment.NewPayment(
		testUser.ID(), "pi_test_123", decimal.NewFromFloat(19.99), "CAD",
		payment.Shipment, "Shipping label", time.Now())
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.UserRepository().Add(ctx, testUser))
	suite.Require().NoError(uow.PaymentRepository().Add(ctx, pending))
	suite.Require().NoError(uow.Commit(ctx))

	settleUow := suite.factory.Create()
	suite.Require().NoError(settleUow.Begin(ctx))

	record, err := settleUow.PaymentRepository().GetByIntentID(ctx, "pi_test_123")
	suite.Require().NoError(err)
	suite.Equal(payment.Pending, record.Status())

	record.ApplyIntentStatus("succeeded", time.Now())
	suite.Require().NoError(settleUow.PaymentRepository().Update(ctx, record))
	suite.Require().NoError(settleUow.Commit(ctx))

	verifyUow := suite.factory.Create()
	settled, err := verifyUow.PaymentRepository().Get(ctx, record.ID())
	suite.Require().NoError(err)
	suite.Equal(payment.Succeeded, settled.Status())
	suite.NotNil(settled.CompletedAt())
}

// seedLocker inserts a locker with the given number of medium compartments,
// all available, and returns its id.
func (suite *UnitOfWorkIntegrationTestSuite) seedLocker(code string, compartments int) int64 {
	dto := lockerrepo.SmartLockerDTO{
		LockerCode:            code,
		LocationName:          "Test Site " + code,
		Address:               "100 Rue Principale",
		City:                  "Montreal",
		Province:              "QC",
		PostalCode:            "H2X 1Y4",
		Latitude:              45.5019,
		Longitude:             -73.5674,
		Status:                int(locker.Active),
		TotalCompartments:     compartments,
		AvailableCompartments: compartments,
		InstalledAt:           time.Now().UTC(),
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)

	for i := 0; i < compartments; i++ {
		compartment := lockerrepo.CompartmentDTO{
			LockerID:          dto.ID,
			CompartmentNumber: string(rune('A' + i)),
			Size:              int(locker.Medium),
			IsAvailable:       true,
			IsOperational:     true,
		}
		suite.Require().NoError(suite.db.Create(&compartment).Error)
	}

	return dto.ID
}

func createTestUser(t *testing.T, email string) *user.User {
	t.Helper()
	testUser, err := user.NewUser(
		kernel.NewUUID(), email, "$2a$10$abcdefghijklmnopqrstuv",
		"Test", "User", "", "", user.Consumer, "en", time.Now())
	if err != nil {
		t.Fatal(err)
	}
	return testUser
}

func createTestShipment(t *testing.T, ownerID kernel.UUID) *shipment.Shipment {
	t.Helper()

	from, err := shipment.NewAddress(
		"100 King St W", "", "Toronto", "ON", "M5X 1A9", "CA", "", "", "", false)
	if err != nil {
		t.Fatal(err)
	}
	to, err := shipment.NewAddress(
		"200 Rue Sainte-Catherine", "", "Montreal", "QC", "H2X 1Y4", "CA", "", "", "", true)
	if err != nil {
		t.Fatal(err)
	}

	created, err := shipment.NewShipment(
		ownerID, from, to, shipment.Package,
		shipment.Dimensions{
			WeightKg: decimal.NewFromInt(2),
			LengthCm: decimal.NewFromInt(30),
			WidthCm:  decimal.NewFromInt(20),
			HeightCm: decimal.NewFromInt(10),
		},
		"Purolator", "Purolator Express", decimal.NewFromFloat(15.56),
		nil, nil, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	return created
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
