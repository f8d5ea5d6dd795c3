package queries

import (
	"context"

	"jobboard/internal/core/domain/model/vacancy"
	"jobboard/internal/core/ports"
)

// GetVacanciesByCompanyQueryHandler lists one company's vacancies.
type GetVacanciesByCompanyQueryHandler struct {
	vacancyRepo ports.VacancyRepository
}

// NewGetVacanciesByCompanyQueryHandler creates a handler for company vacancy listings.
func NewGetVacanciesByCompanyQueryHandler(vacancyRepo ports.VacancyRepository) GetVacanciesByCompanyQueryHandler {
	return GetVacanciesByCompanyQueryHandler{vacancyRepo: vacancyRepo}
}

// Handle returns the company's vacancies, most recently published first.
func (h GetVacanciesByCompanyQueryHandler) Handle(
	ctx context.Context,
	query GetVacanciesByCompanyQuery,
) ([]*vacancy.Vacancy, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.vacancyRepo.GetByCompanyID(ctx, query.CompanyID())
}
