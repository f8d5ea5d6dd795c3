package queries_test

import (
	"context"

	"jobboard/internal/core/domain/model/jobseeker"
	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/core/domain/model/vacancy"
	"jobboard/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockJobseekerRepository struct{ mock.Mock }

func (m *MockJobseekerRepository) Add(ctx context.Context, js *jobseeker.Jobseeker) error {
	args := m.Called(ctx, js)
	return args.Error(0)
}
func (m *MockJobseekerRepository) Update(ctx context.Context, js *jobseeker.Jobseeker) error {
	args := m.Called(ctx, js)
	return args.Error(0)
}
func (m *MockJobseekerRepository) Get(ctx context.Context, id kernel.UUID) (*jobseeker.Jobseeker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jobseeker.Jobseeker), args.Error(1)
}
func (m *MockJobseekerRepository) GetByAppUserID(ctx context.Context, appUserID kernel.UUID) (*jobseeker.Jobseeker, error) {
	args := m.Called(ctx, appUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jobseeker.Jobseeker), args.Error(1)
}
func (m *MockJobseekerRepository) GetByAppUserIDs(ctx context.Context, appUserIDs []kernel.UUID) ([]*jobseeker.Jobseeker, error) {
	args := m.Called(ctx, appUserIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*jobseeker.Jobseeker), args.Error(1)
}
func (m *MockJobseekerRepository) GetRecent(ctx context.Context, limit int) ([]*jobseeker.Jobseeker, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*jobseeker.Jobseeker), args.Error(1)
}
func (m *MockJobseekerRepository) GetAll(ctx context.Context) ([]*jobseeker.Jobseeker, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*jobseeker.Jobseeker), args.Error(1)
}

type MockVacancyRepository struct{ mock.Mock }

func (m *MockVacancyRepository) Add(ctx context.Context, v *vacancy.Vacancy) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVacancyRepository) Update(ctx context.Context, v *vacancy.Vacancy) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVacancyRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockVacancyRepository) Get(ctx context.Context, id kernel.UUID) (*vacancy.Vacancy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vacancy.Vacancy), args.Error(1)
}
func (m *MockVacancyRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*vacancy.Vacancy, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*vacancy.Vacancy), args.Error(1)
}
func (m *MockVacancyRepository) GetByCompanyID(ctx context.Context, companyID kernel.UUID) ([]*vacancy.Vacancy, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*vacancy.Vacancy), args.Error(1)
}
func (m *MockVacancyRepository) GetRecent(ctx context.Context, limit int) ([]*vacancy.Vacancy, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*vacancy.Vacancy), args.Error(1)
}
func (m *MockVacancyRepository) GetAll(ctx context.Context) ([]*vacancy.Vacancy, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*vacancy.Vacancy), args.Error(1)
}

type MockJobseekerIndex struct{ mock.Mock }

func (m *MockJobseekerIndex) EnsureIndexExists(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockJobseekerIndex) Upsert(ctx context.Context, doc ports.JobseekerDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}
func (m *MockJobseekerIndex) UpsertBulk(ctx context.Context, docs []ports.JobseekerDocument) error {
	args := m.Called(ctx, docs)
	return args.Error(0)
}
func (m *MockJobseekerIndex) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockJobseekerIndex) RemoveAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockJobseekerIndex) Search(ctx context.Context, query ports.JobseekerSearchQuery) ([]string, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockVacancyIndex struct{ mock.Mock }

func (m *MockVacancyIndex) EnsureIndexExists(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockVacancyIndex) Upsert(ctx context.Context, doc ports.VacancyDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}
func (m *MockVacancyIndex) UpsertBulk(ctx context.Context, docs []ports.VacancyDocument) error {
	args := m.Called(ctx, docs)
	return args.Error(0)
}
func (m *MockVacancyIndex) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockVacancyIndex) RemoveAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockVacancyIndex) Search(ctx context.Context, query ports.VacancySearchQuery) ([]string, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
