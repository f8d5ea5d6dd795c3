package commands_test

import (
	"context"

	"jobboard/internal/core/application/usecases/commands"
	"jobboard/internal/core/domain/model/account"
	"jobboard/internal/core/domain/model/company"
	"jobboard/internal/core/domain/model/engagement"
	"jobboard/internal/core/domain/model/jobseeker"
	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/core/domain/model/vacancy"
	"jobboard/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Shared mocks for every command handler test in this package.

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *account.AppUser) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserRepository) Update(ctx context.Context, u *account.AppUser) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*account.AppUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.AppUser), args.Error(1)
}
func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*account.AppUser, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.AppUser), args.Error(1)
}
func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

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

type MockCompanyRepository struct{ mock.Mock }

func (m *MockCompanyRepository) Add(ctx context.Context, c *company.Company) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCompanyRepository) Update(ctx context.Context, c *company.Company) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCompanyRepository) Get(ctx context.Context, id kernel.UUID) (*company.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*company.Company), args.Error(1)
}
func (m *MockCompanyRepository) GetByAppUserID(ctx context.Context, appUserID kernel.UUID) (*company.Company, error) {
	args := m.Called(ctx, appUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*company.Company), args.Error(1)
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

type MockJobApplicationRepository struct{ mock.Mock }

func (m *MockJobApplicationRepository) Add(ctx context.Context, a *engagement.JobApplication) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockJobApplicationRepository) Update(ctx context.Context, a *engagement.JobApplication) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockJobApplicationRepository) Get(ctx context.Context, id kernel.UUID) (*engagement.JobApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*engagement.JobApplication), args.Error(1)
}
func (m *MockJobApplicationRepository) GetByVacancyID(ctx context.Context, vacancyID kernel.UUID) ([]*engagement.JobApplication, error) {
	args := m.Called(ctx, vacancyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*engagement.JobApplication), args.Error(1)
}
func (m *MockJobApplicationRepository) GetByJobseekerID(ctx context.Context, jobseekerID kernel.UUID) ([]*engagement.JobApplication, error) {
	args := m.Called(ctx, jobseekerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*engagement.JobApplication), args.Error(1)
}

type MockOfferRepository struct{ mock.Mock }

func (m *MockOfferRepository) Add(ctx context.Context, o *engagement.Offer) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOfferRepository) Update(ctx context.Context, o *engagement.Offer) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOfferRepository) Get(ctx context.Context, id kernel.UUID) (*engagement.Offer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*engagement.Offer), args.Error(1)
}
func (m *MockOfferRepository) GetByJobseekerID(ctx context.Context, jobseekerID kernel.UUID) ([]*engagement.Offer, error) {
	args := m.Called(ctx, jobseekerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*engagement.Offer), args.Error(1)
}
func (m *MockOfferRepository) GetByVacancyID(ctx context.Context, vacancyID kernel.UUID) ([]*engagement.Offer, error) {
	args := m.Called(ctx, vacancyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*engagement.Offer), args.Error(1)
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

// MockUnitOfWork satisfies every composite unit-of-work interface in the
// commands package.
type MockUnitOfWork struct{ mock.Mock }

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUnitOfWork) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}
func (m *MockUnitOfWork) JobseekerRepository() ports.JobseekerRepository {
	args := m.Called()
	return args.Get(0).(ports.JobseekerRepository)
}
func (m *MockUnitOfWork) CompanyRepository() ports.CompanyRepository {
	args := m.Called()
	return args.Get(0).(ports.CompanyRepository)
}
func (m *MockUnitOfWork) VacancyRepository() ports.VacancyRepository {
	args := m.Called()
	return args.Get(0).(ports.VacancyRepository)
}
func (m *MockUnitOfWork) JobApplicationRepository() ports.JobApplicationRepository {
	args := m.Called()
	return args.Get(0).(ports.JobApplicationRepository)
}
func (m *MockUnitOfWork) OfferRepository() ports.OfferRepository {
	args := m.Called()
	return args.Get(0).(ports.OfferRepository)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

type MockJobseekerUoWFactory struct{ mock.Mock }

func (m *MockJobseekerUoWFactory) Create() commands.JobseekerUoW {
	args := m.Called()
	return args.Get(0).(commands.JobseekerUoW)
}

type MockCompanyUoWFactory struct{ mock.Mock }

func (m *MockCompanyUoWFactory) Create() commands.CompanyUoW {
	args := m.Called()
	return args.Get(0).(commands.CompanyUoW)
}

type MockVacancyUoWFactory struct{ mock.Mock }

func (m *MockVacancyUoWFactory) Create() commands.VacancyUoW {
	args := m.Called()
	return args.Get(0).(commands.VacancyUoW)
}

type MockEngagementUoWFactory struct{ mock.Mock }

func (m *MockEngagementUoWFactory) Create() commands.EngagementUoW {
	args := m.Called()
	return args.Get(0).(commands.EngagementUoW)
}

type MockDirectoryUoWFactory struct{ mock.Mock }

func (m *MockDirectoryUoWFactory) Create() commands.DirectoryUoW {
	args := m.Called()
	return args.Get(0).(commands.DirectoryUoW)
}

type MockRosterUoWFactory struct{ mock.Mock }

func (m *MockRosterUoWFactory) Create() commands.RosterUoW {
	args := m.Called()
	return args.Get(0).(commands.RosterUoW)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}
