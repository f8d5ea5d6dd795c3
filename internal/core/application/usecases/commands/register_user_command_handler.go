package commands

import (
	"context"
	"errors"

	"jobboard/internal/core/domain/model/account"
)

// ErrUsernameIsTaken indicates a registration attempt with an existing username.
var ErrUsernameIsTaken = errors.New("username is already taken")

// RegisterUserCommandHandler handles the business logic for account registration.
// Hashes the password, enforces username uniqueness and persists the account.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for account registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
// Returns ErrUsernameIsTaken when the username is already in use.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hash, err := account.HashPassword(cmd.Password())
	if err != nil {
		return err
	}

	user, err := account.NewAppUser(cmd.UserID(), cmd.Username(), cmd.Email(), cmd.Phone(), hash, cmd.Role())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	taken, err := userRepo.ExistsByUsername(ctx, cmd.Username())
	if err != nil {
		return err
	}
	if taken {
		return ErrUsernameIsTaken
	}

	if err = userRepo.Add(ctx, user); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
