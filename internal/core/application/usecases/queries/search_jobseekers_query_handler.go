package queries

import (
	"context"

	"jobboard/internal/core/domain/model/jobseeker"
	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/core/ports"
)

// SearchJobseekersQueryHandler runs a ranked jobseeker search.
// The index answers with account IDs in relevance order; the profiles are
// then hydrated from the primary store with the relevance order preserved.
type SearchJobseekersQueryHandler struct {
	jobseekerRepo ports.JobseekerRepository
	index         ports.JobseekerIndex
}

// NewSearchJobseekersQueryHandler creates a handler for jobseeker searches.
func NewSearchJobseekersQueryHandler(
	jobseekerRepo ports.JobseekerRepository,
	index ports.JobseekerIndex,
) SearchJobseekersQueryHandler {
	return SearchJobseekersQueryHandler{
		jobseekerRepo: jobseekerRepo,
		index:         index,
	}
}

// Handle executes the search and returns full profiles in relevance order.
// Profiles the index still lists but the store no longer has are dropped.
func (h SearchJobseekersQueryHandler) Handle(
	ctx context.Context,
	query SearchJobseekersQuery,
) ([]*jobseeker.Jobseeker, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	keys, err := h.index.Search(ctx, ports.JobseekerSearchQuery{
		Profession:    query.Profession(),
		ExperienceMin: query.ExperienceMin(),
		ExperienceMax: query.ExperienceMax(),
		Education:     query.Education(),
		Location:      query.Location(),
		Page:          query.Page(),
		PageSize:      query.PageSize(),
	})
	if err != nil {
		return nil, err
	}

	return hydrateRanked(
		keys,
		func(ids []kernel.UUID) ([]*jobseeker.Jobseeker, error) {
			return h.jobseekerRepo.GetByAppUserIDs(ctx, ids)
		},
		func(js *jobseeker.Jobseeker) string { return js.AppUserID().String() },
	)
}
