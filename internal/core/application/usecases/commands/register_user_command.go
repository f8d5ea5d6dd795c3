package commands

import (
	"errors"

	"jobboard/internal/core/domain/model/account"
	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrPasswordIsRequired = errors.New("password is required")
)

// RegisterUserCommand represents a request to create a new account.
// The plaintext password is hashed by the handler; only the hash is persisted.
//
// Example:
//
//	userID := kernel.NewUUID()
//	cmd, err := NewRegisterUserCommand(userID, "jdoe", "jdoe@example.com", "", "secret", account.RoleJobseeker)
//	if err != nil {
//	    return fmt.Errorf("invalid registration data: %w", err)
//	}
//
//	handler := NewRegisterUserCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register user: %w", err)
//	}
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	username string
	email    string
	phone    string
	password string
	role     account.Role

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a new account.
// Validates the identifier, username, email, password and role.
func NewRegisterUserCommand(
	userID kernel.UUID,
	username string,
	email string,
	phone string,
	password string,
	role account.Role,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setUsername(username),
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	cmd.phone = phone
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the identifier for the new account.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Username returns the requested username.
func (c RegisterUserCommand) Username() string {
	return c.username
}

// Email returns the contact email.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Phone returns the optional contact phone number.
func (c RegisterUserCommand) Phone() string {
	return c.phone
}

// Password returns the plaintext password to hash.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// Role returns the requested account role.
func (c RegisterUserCommand) Role() account.Role {
	return c.role
}

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setUsername(username string) error {
	if username == "" {
		return account.ErrUsernameIsRequired
	}

	c.username = username
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if email == "" {
		return account.ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}

func (c *RegisterUserCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
