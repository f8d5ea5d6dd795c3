package queries

import (
	"context"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/core/domain/model/vacancy"
	"jobboard/internal/core/ports"
)

// SearchVacanciesQueryHandler runs a ranked vacancy search.
// The index answers with vacancy IDs in relevance order; the vacancies are
// then hydrated from the primary store with the relevance order preserved.
type SearchVacanciesQueryHandler struct {
	vacancyRepo ports.VacancyRepository
	index       ports.VacancyIndex
}

// NewSearchVacanciesQueryHandler creates a handler for vacancy searches.
func NewSearchVacanciesQueryHandler(
	vacancyRepo ports.VacancyRepository,
	index ports.VacancyIndex,
) SearchVacanciesQueryHandler {
	return SearchVacanciesQueryHandler{
		vacancyRepo: vacancyRepo,
		index:       index,
	}
}

// Handle executes the search and returns full vacancies in relevance order.
// Vacancies the index still lists but the store no longer has are dropped.
func (h SearchVacanciesQueryHandler) Handle(
	ctx context.Context,
	query SearchVacanciesQuery,
) ([]*vacancy.Vacancy, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	keys, err := h.index.Search(ctx, ports.VacancySearchQuery{
		Position:           query.Position(),
		GeneralDescription: query.GeneralDescription(),
		SalaryMin:          query.SalaryMin(),
		SalaryMax:          query.SalaryMax(),
		WorkMode:           query.WorkMode(),
		Page:               query.Page(),
		PageSize:           query.PageSize(),
	})
	if err != nil {
		return nil, err
	}

	return hydrateRanked(
		keys,
		func(ids []kernel.UUID) ([]*vacancy.Vacancy, error) {
			return h.vacancyRepo.GetByIDs(ctx, ids)
		},
		func(v *vacancy.Vacancy) string { return v.ID().String() },
	)
}
