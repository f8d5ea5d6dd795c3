package seed

import (
	"testing"

	"jobboard/internal/core/domain/model/account"
	"jobboard/internal/core/domain/model/company"
	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/core/domain/model/vacancy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanyCatalog(t *testing.T) {
	catalog := companyCatalog()
	require.NotEmpty(t, catalog)

	t.Run("should contain only constructible aggregates", func(t *testing.T) {
		for _, entry := range catalog {
			user, err := account.NewAppUser(
				mustUUID(entry.userID), entry.username, entry.email, entry.phone,
				"$2a$10$fakehashfakehashfakehashfakehash", account.RoleCompany,
			)
			require.NoError(t, err, "user %s", entry.username)

			c, err := company.NewCompany(
				mustUUID(entry.companyID), user.ID(), entry.selfDescription, entry.location,
			)
			require.NoError(t, err, "company %s", entry.username)

			require.NotEmpty(t, entry.vacancies, "company %s", entry.username)
			for _, ve := range entry.vacancies {
				_, err := vacancy.NewVacancy(
					mustUUID(ve.id), c.ID(), ve.title, ve.description,
					ve.candidateDescription, ve.position, ve.salaryMin, ve.salaryMax,
					ve.workMode, ve.livingConditions,
				)
				require.NoError(t, err, "vacancy %s / %s", entry.username, ve.title)
			}
		}
	})

	t.Run("should use unique identifiers throughout", func(t *testing.T) {
		seen := map[string]bool{adminUserID: true}
		record := func(id string) {
			assert.False(t, seen[id], "duplicate identifier %s", id)
			seen[id] = true
		}

		for _, entry := range catalog {
			record(entry.userID)
			record(entry.companyID)
			for _, ve := range entry.vacancies {
				record(ve.id)
			}
		}
	})

	t.Run("should parse the admin identity", func(t *testing.T) {
		id, err := kernel.UUIDFromString(adminUserID)
		require.NoError(t, err)
		require.NoError(t, id.Validate())
	})
}
