package commands_test

import (
	"errors"
	"testing"

	"jobboard/internal/core/application/usecases/commands"
	"jobboard/internal/core/domain/model/jobseeker"
	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/core/domain/model/vacancy"
	"jobboard/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedJobseekers(t *testing.T, count int) []*jobseeker.Jobseeker {
	t.Helper()
	result := make([]*jobseeker.Jobseeker, 0, count)
	for range count {
		js, err := jobseeker.NewJobseeker(
			kernel.NewUUID(), kernel.NewUUID(), "Backend Developer", 5,
			jobseeker.DegreeBachelor, "Berlin", jobseeker.Biography{},
		)
		require.NoError(t, err)
		result = append(result, js)
	}
	return result
}

func storedVacancies(t *testing.T, count int) []*vacancy.Vacancy {
	t.Helper()
	result := make([]*vacancy.Vacancy, 0, count)
	for range count {
		v, err := vacancy.NewVacancy(
			kernel.NewUUID(), kernel.NewUUID(), "Go Developer", "", "",
			"Backend Developer", 50000, 90000, vacancy.WorkModeRemote, "",
		)
		require.NoError(t, err)
		result = append(result, v)
	}
	return result
}

func TestReindexAllCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	jobseekers := storedJobseekers(t, 3)
	vacancies := storedVacancies(t, 2)

	jobseekerRepo := new(MockJobseekerRepository)
	vacancyRepo := new(MockVacancyRepository)
	uow := new(MockUnitOfWork)
	jobseekerIndex := new(MockJobseekerIndex)
	vacancyIndex := new(MockVacancyIndex)

	mock.InOrder(
		jobseekerIndex.On("EnsureIndexExists", ctx).Return(nil).Once(),
		uow.On("JobseekerRepository").Return(jobseekerRepo).Once(),
		jobseekerRepo.On("GetAll", ctx).Return(jobseekers, nil).Once(),
		jobseekerIndex.On("UpsertBulk", ctx, mock.MatchedBy(func(docs []ports.JobseekerDocument) bool {
			return len(docs) == 3 && docs[0].ID == jobseekers[0].AppUserID().String()
		})).Return(nil).Once(),
		vacancyIndex.On("EnsureIndexExists", ctx).Return(nil).Once(),
		uow.On("VacancyRepository").Return(vacancyRepo).Once(),
		vacancyRepo.On("GetAll", ctx).Return(vacancies, nil).Once(),
		vacancyIndex.On("UpsertBulk", ctx, mock.MatchedBy(func(docs []ports.VacancyDocument) bool {
			return len(docs) == 2 && docs[0].ID == vacancies[0].ID().String()
		})).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReindexAllCommandHandler(factory, jobseekerIndex, vacancyIndex)
	report, err := h.Handle(ctx, commands.NewReindexAllCommand())

	require.NoError(t, err)
	assert.Equal(t, 3, report.Jobseekers)
	assert.Equal(t, 2, report.Vacancies)
	jobseekerIndex.AssertExpectations(t)
	vacancyIndex.AssertExpectations(t)
}

func TestReindexAllCommandHandler_Handle_EmptyStoreSkipsBulk(t *testing.T) {
	ctx := t.Context()

	jobseekerRepo := new(MockJobseekerRepository)
	vacancyRepo := new(MockVacancyRepository)
	uow := new(MockUnitOfWork)
	jobseekerIndex := new(MockJobseekerIndex)
	vacancyIndex := new(MockVacancyIndex)

	jobseekerIndex.On("EnsureIndexExists", ctx).Return(nil).Once()
	uow.On("JobseekerRepository").Return(jobseekerRepo).Once()
	jobseekerRepo.On("GetAll", ctx).Return([]*jobseeker.Jobseeker{}, nil).Once()
	vacancyIndex.On("EnsureIndexExists", ctx).Return(nil).Once()
	uow.On("VacancyRepository").Return(vacancyRepo).Once()
	vacancyRepo.On("GetAll", ctx).Return([]*vacancy.Vacancy{}, nil).Once()

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReindexAllCommandHandler(factory, jobseekerIndex, vacancyIndex)
	report, err := h.Handle(ctx, commands.NewReindexAllCommand())

	require.NoError(t, err)
	assert.Equal(t, 0, report.Jobseekers)
	assert.Equal(t, 0, report.Vacancies)
	jobseekerIndex.AssertNotCalled(t, "UpsertBulk", mock.Anything, mock.Anything)
	vacancyIndex.AssertNotCalled(t, "UpsertBulk", mock.Anything, mock.Anything)
}

func TestReindexAllCommandHandler_Handle_EnsureError(t *testing.T) {
	ctx := t.Context()

	uow := new(MockUnitOfWork)
	jobseekerIndex := new(MockJobseekerIndex)
	vacancyIndex := new(MockVacancyIndex)
	jobseekerIndex.On("EnsureIndexExists", ctx).Return(errors.New("engine down")).Once()

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReindexAllCommandHandler(factory, jobseekerIndex, vacancyIndex)
	_, err := h.Handle(ctx, commands.NewReindexAllCommand())

	require.Error(t, err)
	vacancyIndex.AssertNotCalled(t, "EnsureIndexExists", mock.Anything)
}

func TestReindexAllCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	h := commands.NewReindexAllCommandHandler(
		new(MockCatalogUoWFactory), new(MockJobseekerIndex), new(MockVacancyIndex),
	)
	_, err := h.Handle(ctx, commands.ReindexAllCommand{})
	require.ErrorIs(t, err, commands.ErrReindexAllCommandIsNotConstructed)
}
