// Package ports defines the contracts between the application core and
// infrastructure: repositories over the primary store, the unit of work,
// and the search index adapters with their document and query shapes.
package ports

import (
	"context"

	"jobboard/internal/core/domain/model/jobseeker"
	"jobboard/internal/core/domain/model/kernel"
)

// JobseekerRepository defines the persistence contract for jobseeker aggregates.
type JobseekerRepository interface {
	// Add persists a new jobseeker aggregate to storage.
	Add(ctx context.Context, aggregate *jobseeker.Jobseeker) error

	// Update persists changes to an existing jobseeker aggregate.
	Update(ctx context.Context, aggregate *jobseeker.Jobseeker) error

	// Get retrieves a jobseeker aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*jobseeker.Jobseeker, error)

	// GetByAppUserID retrieves the jobseeker profile owned by the given account.
	GetByAppUserID(ctx context.Context, appUserID kernel.UUID) (*jobseeker.Jobseeker, error)

	// GetByAppUserIDs retrieves all jobseekers whose owning account ID is in
	// the given set, in no particular order. Missing IDs are skipped, not
	// reported: a key known to the search index but absent from the primary
	// store is treated as index drift and silently dropped.
	GetByAppUserIDs(ctx context.Context, appUserIDs []kernel.UUID) ([]*jobseeker.Jobseeker, error)

	// GetRecent retrieves the most recently registered jobseekers, newest first.
	GetRecent(ctx context.Context, limit int) ([]*jobseeker.Jobseeker, error)

	// GetAll retrieves every jobseeker. Used for full reindexing.
	GetAll(ctx context.Context) ([]*jobseeker.Jobseeker, error)
}
