// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management
// and persistence. Handlers that touch the search index write it only after
// the primary-store transaction has committed.
package commands

import (
	"context"

	"jobboard/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// UserRepoFactory provides access to the account repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// JobseekerRepoFactory provides access to the jobseeker repository within a transaction.
	JobseekerRepoFactory interface {
		JobseekerRepository() ports.JobseekerRepository
	}

	// CompanyRepoFactory provides access to the company repository within a transaction.
	CompanyRepoFactory interface {
		CompanyRepository() ports.CompanyRepository
	}

	// VacancyRepoFactory provides access to the vacancy repository within a transaction.
	VacancyRepoFactory interface {
		VacancyRepository() ports.VacancyRepository
	}

	// EngagementRepoFactory provides access to the application and offer
	// repositories within a transaction.
	EngagementRepoFactory interface {
		JobApplicationRepository() ports.JobApplicationRepository
		OfferRepository() ports.OfferRepository
	}

	// UserUoW manages transactions for account-only operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new account unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// JobseekerUoW manages transactions for jobseeker profile operations.
	JobseekerUoW interface {
		TxManager
		JobseekerRepoFactory
	}

	// JobseekerUoWFactory creates new jobseeker unit of work instances.
	JobseekerUoWFactory interface {
		Create() JobseekerUoW
	}

	// CompanyUoW manages transactions for company profile operations.
	CompanyUoW interface {
		TxManager
		CompanyRepoFactory
	}

	// CompanyUoWFactory creates new company unit of work instances.
	CompanyUoWFactory interface {
		Create() CompanyUoW
	}

	// VacancyUoW manages transactions for vacancy operations.
	VacancyUoW interface {
		TxManager
		VacancyRepoFactory
	}

	// VacancyUoWFactory creates new vacancy unit of work instances.
	VacancyUoWFactory interface {
		Create() VacancyUoW
	}

	// EngagementUoW manages transactions for job applications and offers.
	EngagementUoW interface {
		TxManager
		EngagementRepoFactory
	}

	// EngagementUoWFactory creates new engagement unit of work instances.
	EngagementUoWFactory interface {
		Create() EngagementUoW
	}

	// DirectoryUoW manages transactions that create accounts, companies and
	// vacancies together. Used by the bulk company import: all primary-store
	// writes share one transaction, index writes follow after commit.
	DirectoryUoW interface {
		TxManager
		UserRepoFactory
		CompanyRepoFactory
		VacancyRepoFactory
	}

	// DirectoryUoWFactory creates new directory unit of work instances.
	DirectoryUoWFactory interface {
		Create() DirectoryUoW
	}

	// RosterUoW manages transactions that create accounts and jobseeker
	// profiles together. Used by the bulk jobseeker import: all primary-store
	// writes share one transaction, index writes follow after commit.
	RosterUoW interface {
		TxManager
		UserRepoFactory
		JobseekerRepoFactory
	}

	// RosterUoWFactory creates new roster unit of work instances.
	RosterUoWFactory interface {
		Create() RosterUoW
	}

	// CatalogUoW provides read access to both searchable aggregates.
	// Used by the reindex routine, which reads outside any transaction.
	CatalogUoW interface {
		JobseekerRepoFactory
		VacancyRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}
)
