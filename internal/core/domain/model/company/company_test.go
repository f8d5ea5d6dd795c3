package company_test

import (
	"testing"
	"time"

	"jobboard/internal/core/domain/model/company"
	"jobboard/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompany(t *testing.T) {
	validID := kernel.NewUUID()
	validAppUserID := kernel.NewUUID()

	t.Run("should create company with valid parameters", func(t *testing.T) {
		c, err := company.NewCompany(validID, validAppUserID, "We ship software", "Berlin")

		require.NoError(t, err)
		assert.NotNil(t, c)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(validID))
		assert.True(t, c.AppUserID().IsEqual(validAppUserID))
		assert.Equal(t, "We ship software", c.SelfDescription())
		assert.Equal(t, "Berlin", c.Location())
		assert.False(t, c.RegisterDate().IsZero())
	})

	t.Run("should return error for invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		c, err := company.NewCompany(invalidID, validAppUserID, "", "")

		require.Error(t, err)
		assert.Nil(t, c)
		assert.Contains(t, err.Error(), kernel.ErrUUIDIsNotConstructed.Error())
	})

	t.Run("should return error for invalid app user UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		c, err := company.NewCompany(validID, invalidID, "", "")

		require.Error(t, err)
		assert.Nil(t, c)
	})
}

func TestRestoreCompany(t *testing.T) {
	t.Run("should restore company with stored register date", func(t *testing.T) {
		registerDate := time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)

		c, err := company.RestoreCompany(kernel.NewUUID(), kernel.NewUUID(), "Desc", "Hamburg", registerDate)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, registerDate, c.RegisterDate())
	})
}

func TestCompany_Edit(t *testing.T) {
	t.Run("should replace editable attributes", func(t *testing.T) {
		c, err := company.NewCompany(kernel.NewUUID(), kernel.NewUUID(), "Old", "Berlin")
		require.NoError(t, err)

		c.Edit("New description", "Munich")

		assert.Equal(t, "New description", c.SelfDescription())
		assert.Equal(t, "Munich", c.Location())
	})
}

func TestCompany_Validate(t *testing.T) {
	t.Run("should return error for zero value company", func(t *testing.T) {
		var c company.Company

		err := c.Validate()

		require.Error(t, err)
		assert.Equal(t, company.ErrCompanyIsNotConstructed, err)
	})

	t.Run("should return error for nil company", func(t *testing.T) {
		var c *company.Company

		err := c.Validate()

		require.Error(t, err)
		assert.Equal(t, company.ErrCompanyIsNotConstructed, err)
	})
}
