package commands

import (
	"context"
	"errors"

	"mescolis/internal/core/ports"
	"mescolis/internal/pkg/errs"
)

var (
	// ErrInvalidCredentials is returned for an unknown email or a wrong
	// password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountDeactivated is returned when the account exists and the
	// password matches, but an administrator disabled the account.
	ErrAccountDeactivated = errors.New("account is deactivated")
)

// LoginCommandHandler authenticates accounts and issues access tokens.
type LoginCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	issuer     ports.TokenIssuer
}

// NewLoginCommandHandler creates a handler for authentication.
func NewLoginCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		issuer:     issuer,
	}
}

// Handle processes the login command.
// Records the login time on success. The password check runs even though a
// deactivated account cannot log in, so deactivation is only revealed to
// callers holding valid credentials.
func (h *LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (*AuthResponse, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	aggregate, err := userRepo.GetByEmail(ctx, cmd.Email())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !h.hasher.Compare(aggregate.PasswordHash(), cmd.Password()) {
		return nil, ErrInvalidCredentials
	}

	if !aggregate.IsActive() {
		return nil, ErrAccountDeactivated
	}

	aggregate.RecordLogin(timeNow())
	if err = userRepo.Update(ctx, aggregate); err != nil {
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
