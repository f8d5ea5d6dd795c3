// Package account holds the AppUser identity aggregate and its role model.
// Password hashing is delegated to golang.org/x/crypto/bcrypt; the aggregate
// only ever stores the resulting hash.
package account

import (
	"errors"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/guard"

	"golang.org/x/crypto/bcrypt"
)

// Domain errors for account operations.
var (
	ErrUsernameIsRequired     = errs.NewValueIsRequiredError("username")
	ErrEmailIsRequired        = errs.NewValueIsRequiredError("email")
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("password hash")
	ErrAppUserNotConstructed  = errors.New("AppUser must be created via NewAppUser or RestoreAppUser")
	ErrPasswordMismatch       = errors.New("password does not match")
)

// AppUser is the identity aggregate behind every jobseeker and company profile.
type AppUser struct {
	id           kernel.UUID
	username     string
	email        string
	phone        string
	passwordHash string
	role         Role

	guard guard.ConstructorGuard
}

// NewAppUser creates an account with an already-hashed password.
// Use HashPassword to produce the hash.
func NewAppUser(id kernel.UUID, username, email, phone, passwordHash string, role Role) (*AppUser, error) {
	u := &AppUser{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	u.phone = phone
	return u, nil
}

// RestoreAppUser reconstructs an account aggregate from persistent storage.
func RestoreAppUser(id kernel.UUID, username, email, phone, passwordHash string, role Role) (*AppUser, error) {
	return NewAppUser(id, username, email, phone, passwordHash, role)
}

// Validate checks that the AppUser was built through a constructor.
func (u *AppUser) Validate() error {
	if u == nil {
		return ErrAppUserNotConstructed
	}
	return u.guard.Validate(ErrAppUserNotConstructed)
}

// ID returns the account identifier.
func (u *AppUser) ID() kernel.UUID {
	return u.id
}

// Username returns the account username.
func (u *AppUser) Username() string {
	return u.username
}

// Email returns the account email.
func (u *AppUser) Email() string {
	return u.email
}

// Phone returns the account phone number.
func (u *AppUser) Phone() string {
	return u.phone
}

// PasswordHash returns the stored bcrypt hash.
func (u *AppUser) PasswordHash() string {
	return u.passwordHash
}

// Role returns the account role.
func (u *AppUser) Role() Role {
	return u.role
}

// CheckPassword compares a plaintext password against the stored hash.
// Returns ErrPasswordMismatch when they do not match.
func (u *AppUser) CheckPassword(password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}

// ChangePassword replaces the stored hash with the hash of the new password.
func (u *AppUser) ChangePassword(newPassword string) error {
	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	u.passwordHash = hash
	return nil
}

// HashPassword produces a bcrypt hash at the default cost.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errs.NewValueIsRequiredError("password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (u *AppUser) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	u.id = id
	return nil
}

func (u *AppUser) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}

	u.username = username
	return nil
}

func (u *AppUser) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	u.email = email
	return nil
}

func (u *AppUser) setPasswordHash(hash string) error {
	if hash == "" {
		return ErrPasswordHashIsRequired
	}

	u.passwordHash = hash
	return nil
}

func (u *AppUser) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	u.role = role
	return nil
}
