package queries

import (
	"errors"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/guard"
)

var ErrGetCompanyByUserIDQueryIsNotConstructed = errors.New(
	"GetCompanyByUserIDQuery must be created via NewGetCompanyByUserIDQuery constructor",
)

// GetCompanyByUserIDQuery retrieves the company profile of an account.
type GetCompanyByUserIDQuery struct { //nolint:recvcheck //using for validation
	appUserID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCompanyByUserIDQuery creates a query for an account's company profile.
func NewGetCompanyByUserIDQuery(appUserID kernel.UUID) (GetCompanyByUserIDQuery, error) {
	if err := appUserID.Validate(); err != nil {
		return GetCompanyByUserIDQuery{}, err
	}

	return GetCompanyByUserIDQuery{
		appUserID: appUserID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCompanyByUserIDQuery) Validate() error {
	return q.guard.Validate(ErrGetCompanyByUserIDQueryIsNotConstructed)
}

// AppUserID returns the owning account identifier.
func (q GetCompanyByUserIDQuery) AppUserID() kernel.UUID {
	return q.appUserID
}
