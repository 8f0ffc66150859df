package commands

import (
	"context"
	"errors"
	"fmt"

	"mescolis/internal/core/domain/model/kernel"
	"mescolis/internal/core/domain/model/user"
	"mescolis/internal/core/ports"
	"mescolis/internal/pkg/errs"
)

// ErrEmailAlreadyRegistered is returned when registering with an email that
// belongs to an existing account.
var ErrEmailAlreadyRegistered = errors.New("email is already registered")

// RegisterUserCommandHandler opens new accounts: hashes the password,
// registers a customer with the payment processor, persists the user and
// issues the first access token.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	gateway    ports.PaymentGateway
	issuer     ports.TokenIssuer
}

// NewRegisterUserCommandHandler creates a handler for account registration.
func NewRegisterUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	gateway ports.PaymentGateway,
	issuer ports.TokenIssuer,
) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		gateway:    gateway,
		issuer:     issuer,
	}
}

// Handle processes the registration command.
// The account role is derived from the account type; self-registration never
// yields an administrator. The payment customer is created before the user
// is persisted so the account always carries its customer identifier.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*AuthResponse, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	aggregate, err := user.NewUser(
		kernel.NewUUID(),
		cmd.Email(),
		hash,
		cmd.FirstName(),
		cmd.LastName(),
		cmd.CompanyName(),
		cmd.Phone(),
		cmd.AccountType(),
		cmd.PreferredLanguage(),
		timeNow(),
	)
	if err != nil {
		return nil, err
	}

	customerID, err := h.gateway.CreateCustomer(
		ctx, aggregate.Email(), fmt.Sprintf("%s %s", aggregate.FirstName(), aggregate.LastName()))
	if err != nil {
		return nil, err
	}
	if err = aggregate.AttachPaymentCustomer(customerID); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	if _, err = userRepo.GetByEmail(ctx, aggregate.Email()); err == nil {
		return nil, ErrEmailAlreadyRegistered
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	if err = userRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	token, expiresAt, err := h.issuer.Issue(aggregate)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		Token:       token,
		Email:       aggregate.Email(),
		FirstName:   aggregate.FirstName(),
		LastName:    aggregate.LastName(),
		Role:        aggregate.Role(),
		AccountType: aggregate.AccountType().String(),
		ExpiresAt:   expiresAt,
	}, nil
}
