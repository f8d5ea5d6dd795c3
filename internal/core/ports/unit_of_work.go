package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary over the primary
// store. It provides transaction control and hands out repositories bound
// to the current transaction. The search index is never part of this
// boundary: index writes happen only after a successful commit, and an
// index failure does not roll the committed data back.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// UserRepository returns a UserRepository bound to the current transaction.
	UserRepository() UserRepository

	// JobseekerRepository returns a JobseekerRepository bound to the current transaction.
	JobseekerRepository() JobseekerRepository

	// CompanyRepository returns a CompanyRepository bound to the current transaction.
	CompanyRepository() CompanyRepository

	// VacancyRepository returns a VacancyRepository bound to the current transaction.
	VacancyRepository() VacancyRepository

	// JobApplicationRepository returns a JobApplicationRepository bound to the current transaction.
	JobApplicationRepository() JobApplicationRepository

	// OfferRepository returns an OfferRepository bound to the current transaction.
	OfferRepository() OfferRepository
}
