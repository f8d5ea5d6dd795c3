package ports

import (
	"context"

	"jobboard/internal/core/domain/model/engagement"
	"jobboard/internal/core/domain/model/kernel"
)

// JobApplicationRepository defines the persistence contract for job applications.
type JobApplicationRepository interface {
	// Add persists a new job application to storage.
	Add(ctx context.Context, aggregate *engagement.JobApplication) error

	// Update persists changes to an existing job application.
	Update(ctx context.Context, aggregate *engagement.JobApplication) error

	// Get retrieves a job application by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*engagement.JobApplication, error)

	// GetByVacancyID retrieves all applications submitted to a vacancy.
	GetByVacancyID(ctx context.Context, vacancyID kernel.UUID) ([]*engagement.JobApplication, error)

	// GetByJobseekerID retrieves all applications submitted by a jobseeker.
	GetByJobseekerID(ctx context.Context, jobseekerID kernel.UUID) ([]*engagement.JobApplication, error)
}

// OfferRepository defines the persistence contract for offers.
type OfferRepository interface {
	// Add persists a new offer to storage.
	Add(ctx context.Context, aggregate *engagement.Offer) error

	// Update persists changes to an existing offer.
	Update(ctx context.Context, aggregate *engagement.Offer) error

	// Get retrieves an offer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*engagement.Offer, error)

	// GetByJobseekerID retrieves all offers sent to a jobseeker.
	GetByJobseekerID(ctx context.Context, jobseekerID kernel.UUID) ([]*engagement.Offer, error)

	// GetByVacancyID retrieves all offers sent for a vacancy.
	GetByVacancyID(ctx context.Context, vacancyID kernel.UUID) ([]*engagement.Offer, error)
}
