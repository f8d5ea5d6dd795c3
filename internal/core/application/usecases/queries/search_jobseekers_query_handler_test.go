package queries_test

import (
	"errors"
	"testing"

	"jobboard/internal/core/application/usecases/queries"
	"jobboard/internal/core/domain/model/jobseeker"
	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStoredJobseeker(t *testing.T, profession string) *jobseeker.Jobseeker {
	t.Helper()

	js, err := jobseeker.NewJobseeker(
		kernel.NewUUID(), kernel.NewUUID(), profession, 4,
		jobseeker.DegreeBachelor, "Berlin", jobseeker.Biography{},
	)
	require.NoError(t, err)
	return js
}

func TestSearchJobseekersQueryHandler_Handle(t *testing.T) {
	t.Run("should forward filters and preserve relevance order", func(t *testing.T) {
		ctx := t.Context()

		first := newStoredJobseeker(t, "Backend Developer")
		second := newStoredJobseeker(t, "Platform Engineer")
		third := newStoredJobseeker(t, "SRE")

		index := &MockJobseekerIndex{}
		index.On("Search", ctx, ports.JobseekerSearchQuery{
			Profession:    "developer",
			ExperienceMin: 2,
			ExperienceMax: 8,
			Education:     "BACHELOR",
			Location:      "Berlin",
			Page:          1,
			PageSize:      20,
		}).Return([]string{
			first.AppUserID().String(),
			second.AppUserID().String(),
			third.AppUserID().String(),
		}, nil)

		repo := &MockJobseekerRepository{}
		repo.On("GetByAppUserIDs", ctx, mock.MatchedBy(func(ids []kernel.UUID) bool {
			return len(ids) == 3
		})).Return([]*jobseeker.Jobseeker{third, first, second}, nil)

		handler := queries.NewSearchJobseekersQueryHandler(repo, index)
		query, err := queries.NewSearchJobseekersQuery("developer", 2, 8, "BACHELOR", "Berlin", 1, 20)
		require.NoError(t, err)

		result, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		require.Len(t, result, 3)
		assert.Equal(t, first.ID(), result[0].ID())
		assert.Equal(t, second.ID(), result[1].ID())
		assert.Equal(t, third.ID(), result[2].ID())
		index.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("should drop hits missing from the primary store", func(t *testing.T) {
		ctx := t.Context()

		kept := newStoredJobseeker(t, "Backend Developer")
		drifted := kernel.NewUUID()

		index := &MockJobseekerIndex{}
		index.On("Search", ctx, mock.Anything).
			Return([]string{drifted.String(), kept.AppUserID().String()}, nil)

		repo := &MockJobseekerRepository{}
		repo.On("GetByAppUserIDs", ctx, mock.Anything).
			Return([]*jobseeker.Jobseeker{kept}, nil)

		handler := queries.NewSearchJobseekersQueryHandler(repo, index)
		query, err := queries.NewSearchJobseekersQuery("developer", 0, 0, "", "", 0, 0)
		require.NoError(t, err)

		result, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, kept.ID(), result[0].ID())
	})

	t.Run("should return empty result for empty hit page", func(t *testing.T) {
		ctx := t.Context()

		index := &MockJobseekerIndex{}
		index.On("Search", ctx, mock.Anything).Return([]string{}, nil)

		repo := &MockJobseekerRepository{}

		handler := queries.NewSearchJobseekersQueryHandler(repo, index)
		query, err := queries.NewSearchJobseekersQuery("nobody", 0, 0, "", "", 0, 0)
		require.NoError(t, err)

		result, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		assert.Empty(t, result)
		repo.AssertNotCalled(t, "GetByAppUserIDs", mock.Anything, mock.Anything)
	})

	t.Run("should propagate search engine failure", func(t *testing.T) {
		ctx := t.Context()
		engineErr := ports.NewSearchFailedError("jobseekers search failed", errors.New("es down"))

		index := &MockJobseekerIndex{}
		index.On("Search", ctx, mock.Anything).Return(nil, engineErr)

		repo := &MockJobseekerRepository{}

		handler := queries.NewSearchJobseekersQueryHandler(repo, index)
		query, err := queries.NewSearchJobseekersQuery("developer", 0, 0, "", "", 0, 0)
		require.NoError(t, err)

		result, err := handler.Handle(ctx, query)

		require.Error(t, err)
		assert.Nil(t, result)
		var searchErr *ports.SearchFailedError
		require.ErrorAs(t, err, &searchErr)
		repo.AssertNotCalled(t, "GetByAppUserIDs", mock.Anything, mock.Anything)
	})

	t.Run("should reject zero value query", func(t *testing.T) {
		handler := queries.NewSearchJobseekersQueryHandler(&MockJobseekerRepository{}, &MockJobseekerIndex{})

		result, err := handler.Handle(t.Context(), queries.SearchJobseekersQuery{})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, queries.ErrSearchJobseekersQueryIsNotConstructed, err)
	})
}

func TestSearchJobseekersQuery(t *testing.T) {
	t.Run("should reject inverted experience range", func(t *testing.T) {
		_, err := queries.NewSearchJobseekersQuery("", 10, 5, "", "", 0, 0)

		require.ErrorIs(t, err, queries.ErrExperienceRangeIsInvalid)
	})

	t.Run("should treat zero experienceMax as unbounded", func(t *testing.T) {
		q, err := queries.NewSearchJobseekersQuery("", 10, 0, "", "", 0, 0)

		require.NoError(t, err)
		assert.InDelta(t, 10.0, q.ExperienceMin(), 0.0001)
		assert.InDelta(t, 0.0, q.ExperienceMax(), 0.0001)
	})

	t.Run("should reject negative pagination", func(t *testing.T) {
		_, err := queries.NewSearchJobseekersQuery("", 0, 0, "", "", -1, 0)
		require.Error(t, err)

		_, err = queries.NewSearchJobseekersQuery("", 0, 0, "", "", 0, -5)
		require.Error(t, err)
	})

	t.Run("should reject experience outside allowed bounds", func(t *testing.T) {
		_, err := queries.NewSearchJobseekersQuery("", -1, 0, "", "", 0, 0)
		require.Error(t, err)

		_, err = queries.NewSearchJobseekersQuery("", 0, jobseeker.ExperienceMax+1, "", "", 0, 0)
		require.Error(t, err)
	})
}
