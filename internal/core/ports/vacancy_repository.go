package ports

import (
	"context"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/core/domain/model/vacancy"
)

// VacancyRepository defines the persistence contract for vacancy aggregates.
type VacancyRepository interface {
	// Add persists a new vacancy aggregate to storage.
	Add(ctx context.Context, aggregate *vacancy.Vacancy) error

	// Update persists changes to an existing vacancy aggregate.
	Update(ctx context.Context, aggregate *vacancy.Vacancy) error

	// Delete removes a vacancy from storage.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a vacancy aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*vacancy.Vacancy, error)

	// GetByIDs retrieves all vacancies whose ID is in the given set, in no
	// particular order. Missing IDs are skipped: a key known to the search
	// index but absent from the primary store is treated as index drift and
	// silently dropped.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*vacancy.Vacancy, error)

	// GetByCompanyID retrieves all vacancies published by the given company.
	GetByCompanyID(ctx context.Context, companyID kernel.UUID) ([]*vacancy.Vacancy, error)

	// GetRecent retrieves the most recently published vacancies, newest first.
	GetRecent(ctx context.Context, limit int) ([]*vacancy.Vacancy, error)

	// GetAll retrieves every vacancy. Used for full reindexing.
	GetAll(ctx context.Context) ([]*vacancy.Vacancy, error)
}
