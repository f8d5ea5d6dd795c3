package queries

import (
	"errors"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/guard"
)

var ErrGetOffersForJobseekerQueryIsNotConstructed = errors.New(
	"GetOffersForJobseekerQuery must be created via NewGetOffersForJobseekerQuery constructor",
)

// GetOffersForJobseekerQuery retrieves all offers sent to one jobseeker.
type GetOffersForJobseekerQuery struct { //nolint:recvcheck //using for validation
	jobseekerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOffersForJobseekerQuery creates a query for a jobseeker's offers.
func NewGetOffersForJobseekerQuery(jobseekerID kernel.UUID) (GetOffersForJobseekerQuery, error) {
	if err := jobseekerID.Validate(); err != nil {
		return GetOffersForJobseekerQuery{}, err
	}

	return GetOffersForJobseekerQuery{
		jobseekerID: jobseekerID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOffersForJobseekerQuery) Validate() error {
	return q.guard.Validate(ErrGetOffersForJobseekerQueryIsNotConstructed)
}

// JobseekerID returns the jobseeker identifier.
func (q GetOffersForJobseekerQuery) JobseekerID() kernel.UUID {
	return q.jobseekerID
}
