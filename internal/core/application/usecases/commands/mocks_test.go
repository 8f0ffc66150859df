package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"mescolis/internal/core/application/usecases/commands"
	"mescolis/internal/core/domain/model/kernel"
	"mescolis/internal/core/domain/model/locker"
	"mescolis/internal/core/domain/model/payment"
	"mescolis/internal/core/domain/model/shipment"
	"mescolis/internal/core/domain/model/user"
	"mescolis/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testPasswordHash = "$2a$10$abcdefghijklmnopqrstuv"

func newActiveUser(t *testing.T, email string) *user.User {
	t.Helper()
	aggregate, err := user.NewUser(
		kernel.NewUUID(), email, testPasswordHash,
		"Test", "User", "", "", user.Consumer, "en", time.Now())
	require.NoError(t, err)
	return aggregate
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}
func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockShipmentRepository) Update(_ context.Context, _ *shipment.Shipment) error { return nil }
func (m *MockShipmentRepository) Get(_ context.Context, _ int64) (*shipment.Shipment, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockShipmentRepository) GetByTrackingNumber(_ context.Context, _ string) (*shipment.Shipment, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockShipmentRepository) GetForOwner(_ context.Context, _ int64, _ kernel.UUID) (*shipment.Shipment, error) {
	return nil, errors.New("not implemented in mock")
}

type MockLockerRepository struct{ mock.Mock }

func (m *MockLockerRepository) GetLocker(ctx context.Context, id int64) (*locker.SmartLocker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*locker.SmartLocker), args.Error(1)
}
func (m *MockLockerRepository) GetCompartment(ctx context.Context, id int64) (*locker.Compartment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*locker.Compartment), args.Error(1)
}
func (m *MockLockerRepository) SelectAvailableCompartment(
	ctx context.Context, lockerID int64, size locker.CompartmentSize,
) (*locker.Compartment, error) {
	args := m.Called(ctx, lockerID, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*locker.Compartment), args.Error(1)
}
func (m *MockLockerRepository) MarkCompartmentUnavailable(ctx context.Context, compartmentID int64) error {
	args := m.Called(ctx, compartmentID)
	return args.Error(0)
}
func (m *MockLockerRepository) MarkCompartmentAvailable(ctx context.Context, compartmentID int64) error {
	args := m.Called(ctx, compartmentID)
	return args.Error(0)
}
func (m *MockLockerRepository) AdjustAvailableCompartments(ctx context.Context, lockerID int64, delta int) error {
	args := m.Called(ctx, lockerID, delta)
	return args.Error(0)
}
func (m *MockLockerRepository) AddReservation(ctx context.Context, aggregate *locker.Reservation) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockLockerRepository) UpdateReservation(ctx context.Context, aggregate *locker.Reservation) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockLockerRepository) GetReservation(_ context.Context, _ int64) (*locker.Reservation, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockLockerRepository) FindExpiredReservations(
	ctx context.Context, before time.Time,
) ([]*locker.Reservation, error) {
	args := m.Called(ctx, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*locker.Reservation), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockPaymentRepository) Update(ctx context.Context, aggregate *payment.Payment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockPaymentRepository) Get(_ context.Context, _ int64) (*payment.Payment, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockPaymentRepository) GetByIntentID(ctx context.Context, intentID string) (*payment.Payment, error) {
	args := m.Called(ctx, intentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

type MockUserUoW struct{ mock.Mock }

func (m *MockUserUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUserUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUserUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUserUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

type MockShipmentUoW struct{ mock.Mock }

func (m *MockShipmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockShipmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockShipmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockShipmentUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockLockerUoW struct{ mock.Mock }

func (m *MockLockerUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockLockerUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockLockerUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockLockerUoW) LockerRepository() ports.LockerRepository {
	args := m.Called()
	return args.Get(0).(ports.LockerRepository)
}

type MockLockerUoWFactory struct{ mock.Mock }

func (m *MockLockerUoWFactory) Create() commands.LockerUoW {
	args := m.Called()
	return args.Get(0).(commands.LockerUoW)
}

type MockPaymentUoW struct{ mock.Mock }

func (m *MockPaymentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPaymentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPaymentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPaymentUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}
func (m *MockPaymentUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockPaymentUoWFactory struct{ mock.Mock }

func (m *MockPaymentUoWFactory) Create() commands.PaymentUoW {
	args := m.Called()
	return args.Get(0).(commands.PaymentUoW)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}
func (m *MockPasswordHasher) Compare(hash, password string) bool {
	args := m.Called(hash, password)
	return args.Bool(0)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(aggregate *user.User) (string, time.Time, error) {
	args := m.Called(aggregate)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
func (m *MockTokenIssuer) Verify(_ string) (*ports.TokenClaims, error) {
	return nil, errors.New("not implemented in mock")
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) CreateCustomer(ctx context.Context, email, name string) (string, error) {
	args := m.Called(ctx, email, name)
	return args.String(0), args.Error(1)
}
func (m *MockPaymentGateway) CreateIntent(
	ctx context.Context, req ports.CreateIntentRequest,
) (*ports.PaymentIntent, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.PaymentIntent), args.Error(1)
}
func (m *MockPaymentGateway) GetIntent(ctx context.Context, intentID string) (*ports.PaymentIntent, error) {
	args := m.Called(ctx, intentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.PaymentIntent), args.Error(1)
}
