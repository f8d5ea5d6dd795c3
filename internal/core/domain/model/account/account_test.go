package account_test

import (
	"testing"

	"jobboard/internal/core/domain/model/account"
	"jobboard/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createValidAppUser(t *testing.T, password string) *account.AppUser {
	t.Helper()
	hash, err := account.HashPassword(password)
	require.NoError(t, err)

	u, err := account.NewAppUser(kernel.NewUUID(), "alice", "alice@example.com", "+49123456", hash, account.RoleJobseeker)
	require.NoError(t, err)
	require.NotNil(t, u)
	return u
}

func TestNewAppUser(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create user with valid parameters", func(t *testing.T) {
		u, err := account.NewAppUser(validID, "bob", "bob@example.com", "", "hash", account.RoleCompany)

		require.NoError(t, err)
		assert.NotNil(t, u)
		require.NoError(t, u.Validate())
		assert.True(t, u.ID().IsEqual(validID))
		assert.Equal(t, "bob", u.Username())
		assert.Equal(t, "bob@example.com", u.Email())
		assert.Equal(t, account.RoleCompany, u.Role())
	})

	t.Run("should return error for empty username", func(t *testing.T) {
		u, err := account.NewAppUser(validID, "", "bob@example.com", "", "hash", account.RoleCompany)

		require.Error(t, err)
		assert.Nil(t, u)
		assert.Contains(t, err.Error(), "username")
	})

	t.Run("should return error for empty email", func(t *testing.T) {
		u, err := account.NewAppUser(validID, "bob", "", "", "hash", account.RoleCompany)

		require.Error(t, err)
		assert.Nil(t, u)
		assert.Contains(t, err.Error(), "email")
	})

	t.Run("should return error for empty password hash", func(t *testing.T) {
		u, err := account.NewAppUser(validID, "bob", "bob@example.com", "", "", account.RoleCompany)

		require.Error(t, err)
		assert.Nil(t, u)
		assert.Contains(t, err.Error(), "password hash")
	})

	t.Run("should return error for invalid role", func(t *testing.T) {
		u, err := account.NewAppUser(validID, "bob", "bob@example.com", "", "hash", account.Role("GUEST"))

		require.Error(t, err)
		assert.Nil(t, u)
		assert.Contains(t, err.Error(), "role")
	})
}

func TestAppUser_Passwords(t *testing.T) {
	t.Run("should verify the original password", func(t *testing.T) {
		u := createValidAppUser(t, "s3cret")

		require.NoError(t, u.CheckPassword("s3cret"))
	})

	t.Run("should reject a wrong password", func(t *testing.T) {
		u := createValidAppUser(t, "s3cret")

		err := u.CheckPassword("wrong")

		require.Error(t, err)
		assert.Equal(t, account.ErrPasswordMismatch, err)
	})

	t.Run("should change password", func(t *testing.T) {
		u := createValidAppUser(t, "old")

		require.NoError(t, u.ChangePassword("new"))

		require.NoError(t, u.CheckPassword("new"))
		require.Error(t, u.CheckPassword("old"))
	})

	t.Run("should reject empty password on hashing", func(t *testing.T) {
		_, err := account.HashPassword("")

		require.Error(t, err)
	})
}

func TestRole(t *testing.T) {
	t.Run("should validate declared roles", func(t *testing.T) {
		require.NoError(t, account.RoleAdmin.Validate())
		require.NoError(t, account.RoleJobseeker.Validate())
		require.NoError(t, account.RoleCompany.Validate())
		require.Error(t, account.Role("GUEST").Validate())
	})

	t.Run("should treat only jobseeker and company as safe", func(t *testing.T) {
		assert.False(t, account.RoleAdmin.IsSafe())
		assert.True(t, account.RoleJobseeker.IsSafe())
		assert.True(t, account.RoleCompany.IsSafe())
	})

	t.Run("should parse case-insensitively", func(t *testing.T) {
		r, err := account.RoleFromString("jobseeker")

		require.NoError(t, err)
		assert.Equal(t, account.RoleJobseeker, r)
	})
}

func TestAppUser_Validate(t *testing.T) {
	t.Run("should return error for zero value user", func(t *testing.T) {
		var u account.AppUser

		err := u.Validate()

		require.Error(t, err)
		assert.Equal(t, account.ErrAppUserNotConstructed, err)
	})

	t.Run("should return error for nil user", func(t *testing.T) {
		var u *account.AppUser

		err := u.Validate()

		require.Error(t, err)
		assert.Equal(t, account.ErrAppUserNotConstructed, err)
	})
}
