package queries

import (
	"errors"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/guard"
)

var ErrGetApplicationsForVacancyQueryIsNotConstructed = errors.New(
	"GetApplicationsForVacancyQuery must be created via NewGetApplicationsForVacancyQuery constructor",
)

// GetApplicationsForVacancyQuery retrieves all applications to one vacancy.
type GetApplicationsForVacancyQuery struct { //nolint:recvcheck //using for validation
	vacancyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetApplicationsForVacancyQuery creates a query for a vacancy's applications.
func NewGetApplicationsForVacancyQuery(vacancyID kernel.UUID) (GetApplicationsForVacancyQuery, error) {
	if err := vacancyID.Validate(); err != nil {
		return GetApplicationsForVacancyQuery{}, err
	}

	return GetApplicationsForVacancyQuery{
		vacancyID: vacancyID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetApplicationsForVacancyQuery) Validate() error {
	return q.guard.Validate(ErrGetApplicationsForVacancyQueryIsNotConstructed)
}

// VacancyID returns the vacancy identifier.
func (q GetApplicationsForVacancyQuery) VacancyID() kernel.UUID {
	return q.vacancyID
}
