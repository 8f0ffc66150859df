package cmd

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"mescolis/internal/adapters/in/http"
	"mescolis/internal/adapters/out/auth"
	"mescolis/internal/adapters/out/postgres"
	"mescolis/internal/adapters/out/stripegw"
	"mescolis/internal/core/application/usecases/commands"
	"mescolis/internal/core/application/usecases/queries"
	"mescolis/internal/core/domain/model/kernel"
	"mescolis/internal/core/domain/model/user"
	"mescolis/internal/core/domain/services"
	"mescolis/internal/core/ports"
	"mescolis/internal/jobs"
	"mescolis/internal/pkg/errs"
)

// tokenLifetime is how long issued access tokens stay valid.
const tokenLifetime = 7 * 24 * time.Hour

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	hasher     ports.PasswordHasher
	issuer     ports.TokenIssuer
	gateway    ports.PaymentGateway
	calculator services.RateCalculator
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		hasher:     auth.NewBcryptPasswordHasher(),
		issuer:     auth.NewJWTTokenIssuer(config.JWTSecret, config.JWTIssuer, config.JWTAudience, tokenLifetime),
		gateway:    stripegw.NewStripeGateway(config.StripeSecretKey),
		calculator: services.NewRateCalculator(),
		logger:     logger,
	}
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) lockerUoWFactory() commands.LockerUoWFactory {
	return FuncLockerUoWFactory(func() commands.LockerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) paymentUoWFactory() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.userUoWFactory(), c.hasher, c.gateway, c.issuer)
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.userUoWFactory(), c.hasher, c.issuer)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateReserveCompartmentCommandHandler() commands.ReserveCompartmentCommandHandler {
	return commands.NewReserveCompartmentCommandHandler(c.lockerUoWFactory())
}

func (c *CompositionRoot) CreateExpireReservationsCommandHandler() commands.ExpireReservationsCommandHandler {
	return commands.NewExpireReservationsCommandHandler(c.lockerUoWFactory())
}

func (c *CompositionRoot) CreateCreatePaymentIntentCommandHandler() commands.CreatePaymentIntentCommandHandler {
	return commands.NewCreatePaymentIntentCommandHandler(c.paymentUoWFactory(), c.gateway)
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	return commands.NewConfirmPaymentCommandHandler(c.paymentUoWFactory(), c.gateway)
}

func (c *CompositionRoot) CreateToggleUserStatusCommandHandler() commands.ToggleUserStatusCommandHandler {
	return commands.NewToggleUserStatusCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateGetQuotesQueryHandler() queries.GetQuotesQueryHandler {
	return queries.NewGetQuotesQueryHandler(c.gormDB, c.calculator, c.logger)
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListShipmentsQueryHandler() queries.ListShipmentsQueryHandler {
	return queries.NewListShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackShipmentQueryHandler() queries.TrackShipmentQueryHandler {
	return queries.NewTrackShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListLockersQueryHandler() queries.ListLockersQueryHandler {
	return queries.NewListLockersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFindNearbyLockersQueryHandler() queries.FindNearbyLockersQueryHandler {
	return queries.NewFindNearbyLockersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListReservationsQueryHandler() queries.ListReservationsQueryHandler {
	return queries.NewListReservationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAdminDashboardQueryHandler() queries.AdminDashboardQueryHandler {
	return queries.NewAdminDashboardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAdminListUsersQueryHandler() queries.AdminListUsersQueryHandler {
	return queries.NewAdminListUsersQueryHandler(c.gormDB)
}

// CreateServer wires all handlers into the HTTP server.
func (c *CompositionRoot) CreateServer() *http.Server {
	registerHandler := c.CreateRegisterUserCommandHandler()
	loginHandler := c.CreateLoginCommandHandler()
	createShipmentHandler := c.CreateCreateShipmentCommandHandler()
	reserveHandler := c.CreateReserveCompartmentCommandHandler()
	createIntentHandler := c.CreateCreatePaymentIntentCommandHandler()
	confirmHandler := c.CreateConfirmPaymentCommandHandler()
	toggleHandler := c.CreateToggleUserStatusCommandHandler()

	return http.NewServer(
		&registerHandler,
		&loginHandler,
		&createShipmentHandler,
		&reserveHandler,
		&createIntentHandler,
		&confirmHandler,
		&toggleHandler,
		c.CreateGetQuotesQueryHandler(),
		c.CreateGetShipmentQueryHandler(),
		c.CreateListShipmentsQueryHandler(),
		c.CreateTrackShipmentQueryHandler(),
		c.CreateListLockersQueryHandler(),
		c.CreateFindNearbyLockersQueryHandler(),
		c.CreateListReservationsQueryHandler(),
		c.CreateAdminDashboardQueryHandler(),
		c.CreateAdminListUsersQueryHandler(),
		http.NewAuthMiddleware(c.issuer),
	)
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateExpireReservationsCommandHandler(), c.logger)
}

// EnsureAdminAccount seeds the administrator account on first start. An
// existing account with the configured email is left untouched.
func (c *CompositionRoot) EnsureAdminAccount(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	uow := c.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	_, err := uow.UserRepository().GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	hash, err := c.hasher.Hash(password)
	if err != nil {
		return err
	}

	admin, err := user.RestoreUser(
		kernel.NewUUID(),
		email,
		hash,
		"Platform",
		"Administrator",
		"",
		"",
		user.Business,
		http.AdminRole,
		"",
		"en",
		true,
		time.Now().UTC(),
		nil,
	)
	if err != nil {
		return err
	}

	if err := uow.UserRepository().Add(ctx, admin); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncLockerUoWFactory func() commands.LockerUoW

func (f FuncLockerUoWFactory) Create() commands.LockerUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}
