// Package postgres provides the GORM-based Unit of Work over the primary
// store. A unit of work opens one transaction, hands out repositories
// bound to it and tracks every aggregate written through them. The search
// index never joins this transaction: index writes run only after Commit,
// and a failed index write does not undo committed rows.
package postgres

import (
	"context"

	"jobboard/internal/adapters/out/postgres/companyrepo"
	"jobboard/internal/adapters/out/postgres/engagementrepo"
	"jobboard/internal/adapters/out/postgres/jobseekerrepo"
	"jobboard/internal/adapters/out/postgres/userrepo"
	"jobboard/internal/adapters/out/postgres/vacancyrepo"
	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using a shared GORM
// connection. Each business operation gets a fresh instance with its own
// transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across repositories.
// Repositories obtained from it run inside the active transaction; without
// an active transaction they run directly on the shared connection.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts a new database transaction. Calling Begin with an active
// transaction is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes the current transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the current transaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// UserRepository returns a UserRepository bound to the current transaction.
func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn(), uow)
}

// JobseekerRepository returns a JobseekerRepository bound to the current transaction.
func (uow *GormUnitOfWork) JobseekerRepository() ports.JobseekerRepository {
	return jobseekerrepo.NewGormJobseekerRepository(uow.conn(), uow)
}

// CompanyRepository returns a CompanyRepository bound to the current transaction.
func (uow *GormUnitOfWork) CompanyRepository() ports.CompanyRepository {
	return companyrepo.NewGormCompanyRepository(uow.conn(), uow)
}

// VacancyRepository returns a VacancyRepository bound to the current transaction.
func (uow *GormUnitOfWork) VacancyRepository() ports.VacancyRepository {
	return vacancyrepo.NewGormVacancyRepository(uow.conn(), uow)
}

// JobApplicationRepository returns a JobApplicationRepository bound to the current transaction.
func (uow *GormUnitOfWork) JobApplicationRepository() ports.JobApplicationRepository {
	return engagementrepo.NewGormJobApplicationRepository(uow.conn(), uow)
}

// OfferRepository returns an OfferRepository bound to the current transaction.
func (uow *GormUnitOfWork) OfferRepository() ports.OfferRepository {
	return engagementrepo.NewGormOfferRepository(uow.conn(), uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Repository implementations call this on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// Migrate creates or updates the schema for every persisted aggregate.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userrepo.AppUserDTO{},
		&jobseekerrepo.JobseekerDTO{},
		&companyrepo.CompanyDTO{},
		&vacancyrepo.VacancyDTO{},
		&engagementrepo.JobApplicationDTO{},
		&engagementrepo.OfferDTO{},
	)
}
