package queries

import (
	"errors"

	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/guard"
)

var ErrGetRecentVacanciesQueryIsNotConstructed = errors.New(
	"GetRecentVacanciesQuery must be created via NewGetRecentVacanciesQuery constructor",
)

// GetRecentVacanciesQuery retrieves the newest vacancies.
type GetRecentVacanciesQuery struct { //nolint:recvcheck //using for validation
	limit int

	guard guard.ConstructorGuard
}

// NewGetRecentVacanciesQuery creates a query for the newest vacancies.
// A limit of zero falls back to DefaultRecentLimit.
func NewGetRecentVacanciesQuery(limit int) (GetRecentVacanciesQuery, error) {
	if limit < 0 {
		return GetRecentVacanciesQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 0, "unbounded")
	}
	if limit == 0 {
		limit = DefaultRecentLimit
	}

	return GetRecentVacanciesQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRecentVacanciesQuery) Validate() error {
	return q.guard.Validate(ErrGetRecentVacanciesQueryIsNotConstructed)
}

// Limit returns how many vacancies to list.
func (q GetRecentVacanciesQuery) Limit() int {
	return q.limit
}
