package queries

import (
	"errors"

	"jobboard/internal/core/domain/model/vacancy"
	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/guard"
)

var (
	ErrSearchVacanciesQueryIsNotConstructed = errors.New(
		"SearchVacanciesQuery must be created via NewSearchVacanciesQuery constructor",
	)
	ErrSalaryFilterIsInvalid = errors.New("salary filter is invalid: min must not exceed max")
)

// SearchVacanciesQuery carries the filters for a ranked vacancy search.
// The general description filter matches against both the title and the
// description, with title matches ranked higher.
type SearchVacanciesQuery struct { //nolint:recvcheck //using for validation
	position           string
	generalDescription string
	salaryMin          float64
	salaryMax          float64
	workMode           string
	page               int
	pageSize           int

	guard guard.ConstructorGuard
}

// NewSearchVacanciesQuery creates a vacancy search query.
// A salaryMax of zero means unbounded; negative values and inverted ranges
// are rejected.
func NewSearchVacanciesQuery(
	position string,
	generalDescription string,
	salaryMin float64,
	salaryMax float64,
	workMode string,
	page int,
	pageSize int,
) (SearchVacanciesQuery, error) {
	q := SearchVacanciesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setSalaryRange(salaryMin, salaryMax),
		q.setPagination(page, pageSize),
	); err != nil {
		return SearchVacanciesQuery{}, err
	}

	q.position = position
	q.generalDescription = generalDescription
	q.workMode = workMode
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchVacanciesQuery) Validate() error {
	return q.guard.Validate(ErrSearchVacanciesQueryIsNotConstructed)
}

// Position returns the position filter.
func (q SearchVacanciesQuery) Position() string {
	return q.position
}

// GeneralDescription returns the free-text filter over title and description.
func (q SearchVacanciesQuery) GeneralDescription() string {
	return q.generalDescription
}

// SalaryMin returns the lower salary bound.
func (q SearchVacanciesQuery) SalaryMin() float64 {
	return q.salaryMin
}

// SalaryMax returns the upper salary bound, zero meaning unbounded.
func (q SearchVacanciesQuery) SalaryMax() float64 {
	return q.salaryMax
}

// WorkMode returns the work mode filter.
func (q SearchVacanciesQuery) WorkMode() string {
	return q.workMode
}

// Page returns the requested page number.
func (q SearchVacanciesQuery) Page() int {
	return q.page
}

// PageSize returns the requested page size.
func (q SearchVacanciesQuery) PageSize() int {
	return q.pageSize
}

func (q *SearchVacanciesQuery) setSalaryRange(salaryMin, salaryMax float64) error {
	if salaryMin < 0 || salaryMin > vacancy.SalaryCap {
		return errs.NewValueIsOutOfRangeError("salaryMin", salaryMin, 0, vacancy.SalaryCap)
	}
	if salaryMax < 0 || salaryMax > vacancy.SalaryCap {
		return errs.NewValueIsOutOfRangeError("salaryMax", salaryMax, 0, vacancy.SalaryCap)
	}
	if salaryMax > 0 && salaryMin > salaryMax {
		return ErrSalaryFilterIsInvalid
	}

	q.salaryMin = salaryMin
	q.salaryMax = salaryMax
	return nil
}

func (q *SearchVacanciesQuery) setPagination(page, pageSize int) error {
	if page < 0 {
		return errs.NewValueIsOutOfRangeError("page", page, 0, "unbounded")
	}
	if pageSize < 0 {
		return errs.NewValueIsOutOfRangeError("pageSize", pageSize, 0, "unbounded")
	}

	q.page = page
	q.pageSize = pageSize
	return nil
}
