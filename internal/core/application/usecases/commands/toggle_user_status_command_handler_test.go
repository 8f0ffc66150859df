package commands_test

import (
	"testing"

	"mescolis/internal/core/application/usecases/commands"
	"mescolis/internal/core/domain/model/kernel"
	"mescolis/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestToggleUserStatusCommandHandler_Handle_Deactivate(t *testing.T) {
	ctx := t.Context()
	aggregate := newActiveUser(t, "alice@example.com")
	cmd, err := commands.NewToggleUserStatusCommand(aggregate.ID())
	require.NoError(t, err)

	repo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewToggleUserStatusCommandHandler(factory)
	active, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, active)
	assert.False(t, aggregate.IsActive())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestToggleUserStatusCommandHandler_Handle_Reactivate(t *testing.T) {
	ctx := t.Context()
	aggregate := newActiveUser(t, "alice@example.com")
	require.False(t, aggregate.ToggleActive())

	cmd, err := commands.NewToggleUserStatusCommand(aggregate.ID())
	require.NoError(t, err)

	repo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewToggleUserStatusCommandHandler(factory)
	active, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, active)
	assert.True(t, aggregate.IsActive())
	uow.AssertExpectations(t)
}

func TestToggleUserStatusCommandHandler_Handle_UserNotFound(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd, err := commands.NewToggleUserStatusCommand(userID)
	require.NoError(t, err)

	repo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("Get", ctx, userID).
			Return(nil, errs.NewObjectNotFoundError("user", userID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewToggleUserStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}

func TestToggleUserStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ToggleUserStatusCommand{} // not constructed properly

	h := commands.NewToggleUserStatusCommandHandler(new(MockUserUoWFactory))
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrToggleUserStatusCommandIsNotConstructed)
}
