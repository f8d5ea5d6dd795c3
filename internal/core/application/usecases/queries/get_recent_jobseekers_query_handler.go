package queries

import (
	"context"

	"jobboard/internal/core/domain/model/jobseeker"
	"jobboard/internal/core/ports"
)

// GetRecentJobseekersQueryHandler lists the newest jobseeker profiles.
type GetRecentJobseekersQueryHandler struct {
	jobseekerRepo ports.JobseekerRepository
}

// NewGetRecentJobseekersQueryHandler creates a handler for recent-profile listings.
func NewGetRecentJobseekersQueryHandler(jobseekerRepo ports.JobseekerRepository) GetRecentJobseekersQueryHandler {
	return GetRecentJobseekersQueryHandler{jobseekerRepo: jobseekerRepo}
}

// Handle returns the newest profiles, most recently registered first.
func (h GetRecentJobseekersQueryHandler) Handle(
	ctx context.Context,
	query GetRecentJobseekersQuery,
) ([]*jobseeker.Jobseeker, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.jobseekerRepo.GetRecent(ctx, query.Limit())
}
