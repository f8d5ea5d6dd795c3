package commands_test

import (
	"errors"
	"testing"

	"jobboard/internal/core/application/usecases/commands"
	"jobboard/internal/core/domain/model/account"
	"jobboard/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterUserCommand(
		kernel.NewUUID(), "jdoe", "jdoe@example.com", "", "secret", account.RoleJobseeker,
	)

	repo := new(MockUserRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("ExistsByUsername", mock.Anything, "jdoe").Return(false, nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*account.AppUser")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterUserCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_StoresHashNotPassword(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterUserCommand(
		kernel.NewUUID(), "jdoe", "jdoe@example.com", "", "secret", account.RoleJobseeker,
	)

	repo := new(MockUserRepository)
	uow := new(MockUnitOfWork)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(repo).Once()
	repo.On("ExistsByUsername", mock.Anything, "jdoe").Return(false, nil).Once()
	repo.On("Add", mock.Anything, mock.MatchedBy(func(u *account.AppUser) bool {
		return u.PasswordHash() != "secret" && u.CheckPassword("secret") == nil
	})).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterUserCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_UsernameTaken(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterUserCommand(
		kernel.NewUUID(), "jdoe", "jdoe@example.com", "", "secret", account.RoleJobseeker,
	)

	repo := new(MockUserRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("ExistsByUsername", mock.Anything, "jdoe").Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterUserCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrUsernameIsTaken)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RegisterUserCommand{} // not constructed properly
	factory := new(MockUserUoWFactory)
	h := commands.NewRegisterUserCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestRegisterUserCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterUserCommand(
		kernel.NewUUID(), "jdoe", "jdoe@example.com", "", "secret", account.RoleJobseeker,
	)

	uow := new(MockUnitOfWork)
	factory := new(MockUserUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewRegisterUserCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
