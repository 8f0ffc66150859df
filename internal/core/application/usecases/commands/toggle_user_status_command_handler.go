package commands

import (
	"context"
)

// ToggleUserStatusCommandHandler flips an account between active and
// deactivated. A deactivated account keeps its data but cannot log in.
type ToggleUserStatusCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewToggleUserStatusCommandHandler creates a handler for account toggling.
func NewToggleUserStatusCommandHandler(uowFactory UserUoWFactory) ToggleUserStatusCommandHandler {
	return ToggleUserStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the toggle command and returns the new active state.
func (h *ToggleUserStatusCommandHandler) Handle(ctx context.Context, cmd ToggleUserStatusCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	aggregate, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return false, err
	}

	active := aggregate.ToggleActive()

	if err = userRepo.Update(ctx, aggregate); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return active, nil
}
