package queries

import (
	"context"

	"jobboard/internal/core/domain/model/jobseeker"
	"jobboard/internal/core/ports"
)

// GetJobseekerByUserIDQueryHandler resolves an account to its jobseeker profile.
type GetJobseekerByUserIDQueryHandler struct {
	jobseekerRepo ports.JobseekerRepository
}

// NewGetJobseekerByUserIDQueryHandler creates a handler for profile lookups.
func NewGetJobseekerByUserIDQueryHandler(jobseekerRepo ports.JobseekerRepository) GetJobseekerByUserIDQueryHandler {
	return GetJobseekerByUserIDQueryHandler{jobseekerRepo: jobseekerRepo}
}

// Handle returns the profile owned by the account.
func (h GetJobseekerByUserIDQueryHandler) Handle(
	ctx context.Context,
	query GetJobseekerByUserIDQuery,
) (*jobseeker.Jobseeker, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.jobseekerRepo.GetByAppUserID(ctx, query.AppUserID())
}
