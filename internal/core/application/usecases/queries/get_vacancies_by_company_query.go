package queries

import (
	"errors"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/guard"
)

var ErrGetVacanciesByCompanyQueryIsNotConstructed = errors.New(
	"GetVacanciesByCompanyQuery must be created via NewGetVacanciesByCompanyQuery constructor",
)

// GetVacanciesByCompanyQuery retrieves all vacancies of one company.
type GetVacanciesByCompanyQuery struct { //nolint:recvcheck //using for validation
	companyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetVacanciesByCompanyQuery creates a query for a company's vacancies.
func NewGetVacanciesByCompanyQuery(companyID kernel.UUID) (GetVacanciesByCompanyQuery, error) {
	if err := companyID.Validate(); err != nil {
		return GetVacanciesByCompanyQuery{}, err
	}

	return GetVacanciesByCompanyQuery{
		companyID: companyID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVacanciesByCompanyQuery) Validate() error {
	return q.guard.Validate(ErrGetVacanciesByCompanyQueryIsNotConstructed)
}

// CompanyID returns the publishing company identifier.
func (q GetVacanciesByCompanyQuery) CompanyID() kernel.UUID {
	return q.companyID
}
