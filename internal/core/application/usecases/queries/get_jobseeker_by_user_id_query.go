package queries

import (
	"errors"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/guard"
)

var ErrGetJobseekerByUserIDQueryIsNotConstructed = errors.New(
	"GetJobseekerByUserIDQuery must be created via NewGetJobseekerByUserIDQuery constructor",
)

// GetJobseekerByUserIDQuery retrieves the jobseeker profile of an account.
type GetJobseekerByUserIDQuery struct { //nolint:recvcheck //using for validation
	appUserID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetJobseekerByUserIDQuery creates a query for an account's jobseeker profile.
func NewGetJobseekerByUserIDQuery(appUserID kernel.UUID) (GetJobseekerByUserIDQuery, error) {
	if err := appUserID.Validate(); err != nil {
		return GetJobseekerByUserIDQuery{}, err
	}

	return GetJobseekerByUserIDQuery{
		appUserID: appUserID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetJobseekerByUserIDQuery) Validate() error {
	return q.guard.Validate(ErrGetJobseekerByUserIDQueryIsNotConstructed)
}

// AppUserID returns the owning account identifier.
func (q GetJobseekerByUserIDQuery) AppUserID() kernel.UUID {
	return q.appUserID
}
