package queries_test

import (
	"testing"

	"jobboard/internal/core/application/usecases/queries"
	"jobboard/internal/core/domain/model/jobseeker"
	"jobboard/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRecentJobseekersQuery(t *testing.T) {
	t.Run("should default zero limit", func(t *testing.T) {
		q, err := queries.NewGetRecentJobseekersQuery(0)

		require.NoError(t, err)
		assert.Equal(t, queries.DefaultRecentLimit, q.Limit())
	})

	t.Run("should keep explicit limit", func(t *testing.T) {
		q, err := queries.NewGetRecentJobseekersQuery(25)

		require.NoError(t, err)
		assert.Equal(t, 25, q.Limit())
	})

	t.Run("should reject negative limit", func(t *testing.T) {
		_, err := queries.NewGetRecentJobseekersQuery(-1)

		require.Error(t, err)
	})

	t.Run("should reject zero value query", func(t *testing.T) {
		var q queries.GetRecentJobseekersQuery

		err := q.Validate()

		require.Error(t, err)
		assert.Equal(t, queries.ErrGetRecentJobseekersQueryIsNotConstructed, err)
	})
}

func TestGetRecentVacanciesQuery(t *testing.T) {
	t.Run("should default zero limit", func(t *testing.T) {
		q, err := queries.NewGetRecentVacanciesQuery(0)

		require.NoError(t, err)
		assert.Equal(t, queries.DefaultRecentLimit, q.Limit())
	})

	t.Run("should reject negative limit", func(t *testing.T) {
		_, err := queries.NewGetRecentVacanciesQuery(-3)

		require.Error(t, err)
	})
}

func TestGetRecentJobseekersQueryHandler_Handle(t *testing.T) {
	t.Run("should pass limit through to the repository", func(t *testing.T) {
		ctx := t.Context()
		stored := []*jobseeker.Jobseeker{newStoredJobseeker(t, "Backend Developer")}

		repo := &MockJobseekerRepository{}
		repo.On("GetRecent", ctx, 5).Return(stored, nil)

		handler := queries.NewGetRecentJobseekersQueryHandler(repo)
		query, err := queries.NewGetRecentJobseekersQuery(5)
		require.NoError(t, err)

		result, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, stored, result)
		repo.AssertExpectations(t)
	})

	t.Run("should reject zero value query", func(t *testing.T) {
		handler := queries.NewGetRecentJobseekersQueryHandler(&MockJobseekerRepository{})

		result, err := handler.Handle(t.Context(), queries.GetRecentJobseekersQuery{})

		require.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestIdentifierQueries(t *testing.T) {
	validID := kernel.NewUUID()
	var invalidID kernel.UUID

	t.Run("GetJobseekerByUserID", func(t *testing.T) {
		q, err := queries.NewGetJobseekerByUserIDQuery(validID)
		require.NoError(t, err)
		assert.Equal(t, validID, q.AppUserID())

		_, err = queries.NewGetJobseekerByUserIDQuery(invalidID)
		require.Error(t, err)
	})

	t.Run("GetCompanyByUserID", func(t *testing.T) {
		q, err := queries.NewGetCompanyByUserIDQuery(validID)
		require.NoError(t, err)
		assert.Equal(t, validID, q.AppUserID())

		_, err = queries.NewGetCompanyByUserIDQuery(invalidID)
		require.Error(t, err)
	})

	t.Run("GetVacanciesByCompany", func(t *testing.T) {
		q, err := queries.NewGetVacanciesByCompanyQuery(validID)
		require.NoError(t, err)
		assert.Equal(t, validID, q.CompanyID())

		_, err = queries.NewGetVacanciesByCompanyQuery(invalidID)
		require.Error(t, err)
	})

	t.Run("GetApplicationsForVacancy", func(t *testing.T) {
		q, err := queries.NewGetApplicationsForVacancyQuery(validID)
		require.NoError(t, err)
		assert.Equal(t, validID, q.VacancyID())

		_, err = queries.NewGetApplicationsForVacancyQuery(invalidID)
		require.Error(t, err)
	})

	t.Run("GetOffersForJobseeker", func(t *testing.T) {
		q, err := queries.NewGetOffersForJobseekerQuery(validID)
		require.NoError(t, err)
		assert.Equal(t, validID, q.JobseekerID())

		_, err = queries.NewGetOffersForJobseekerQuery(invalidID)
		require.Error(t, err)
	})
}
