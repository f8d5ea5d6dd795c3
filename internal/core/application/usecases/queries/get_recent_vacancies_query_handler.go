package queries

import (
	"context"

	"jobboard/internal/core/domain/model/vacancy"
	"jobboard/internal/core/ports"
)

// GetRecentVacanciesQueryHandler lists the newest vacancies.
type GetRecentVacanciesQueryHandler struct {
	vacancyRepo ports.VacancyRepository
}

// NewGetRecentVacanciesQueryHandler creates a handler for recent-vacancy listings.
func NewGetRecentVacanciesQueryHandler(vacancyRepo ports.VacancyRepository) GetRecentVacanciesQueryHandler {
	return GetRecentVacanciesQueryHandler{vacancyRepo: vacancyRepo}
}

// Handle returns the newest vacancies, most recently published first.
func (h GetRecentVacanciesQueryHandler) Handle(
	ctx context.Context,
	query GetRecentVacanciesQuery,
) ([]*vacancy.Vacancy, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.vacancyRepo.GetRecent(ctx, query.Limit())
}
