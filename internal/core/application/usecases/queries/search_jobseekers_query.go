package queries

import (
	"errors"

	"jobboard/internal/core/domain/model/jobseeker"
	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/guard"
)

var (
	ErrSearchJobseekersQueryIsNotConstructed = errors.New(
		"SearchJobseekersQuery must be created via NewSearchJobseekersQuery constructor",
	)
	ErrExperienceRangeIsInvalid = errors.New("experience range is invalid: min must not exceed max")
)

// SearchJobseekersQuery carries the filters for a ranked jobseeker search.
// Zero values mean "not filtered"; pagination defaults are applied by the
// search adapter.
//
// Example:
//
//	query, err := NewSearchJobseekersQuery("backend developer", 3, 0, "", "Berlin", 1, 20)
//	if err != nil {
//	    return fmt.Errorf("invalid search filters: %w", err)
//	}
//
//	handler := NewSearchJobseekersQueryHandler(repo, index)
//	jobseekers, err := handler.Handle(ctx, query)
type SearchJobseekersQuery struct { //nolint:recvcheck //using for validation
	profession    string
	experienceMin float64
	experienceMax float64
	education     string
	location      string
	page          int
	pageSize      int

	guard guard.ConstructorGuard
}

// NewSearchJobseekersQuery creates a jobseeker search query.
// An experienceMax of zero means unbounded; negative values and inverted
// ranges are rejected.
func NewSearchJobseekersQuery(
	profession string,
	experienceMin float64,
	experienceMax float64,
	education string,
	location string,
	page int,
	pageSize int,
) (SearchJobseekersQuery, error) {
	q := SearchJobseekersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setExperienceRange(experienceMin, experienceMax),
		q.setPagination(page, pageSize),
	); err != nil {
		return SearchJobseekersQuery{}, err
	}

	q.profession = profession
	q.education = education
	q.location = location
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchJobseekersQuery) Validate() error {
	return q.guard.Validate(ErrSearchJobseekersQueryIsNotConstructed)
}

// Profession returns the profession filter.
func (q SearchJobseekersQuery) Profession() string {
	return q.profession
}

// ExperienceMin returns the lower experience bound.
func (q SearchJobseekersQuery) ExperienceMin() float64 {
	return q.experienceMin
}

// ExperienceMax returns the upper experience bound, zero meaning unbounded.
func (q SearchJobseekersQuery) ExperienceMax() float64 {
	return q.experienceMax
}

// Education returns the education filter.
func (q SearchJobseekersQuery) Education() string {
	return q.education
}

// Location returns the location filter.
func (q SearchJobseekersQuery) Location() string {
	return q.location
}

// Page returns the requested page number.
func (q SearchJobseekersQuery) Page() int {
	return q.page
}

// PageSize returns the requested page size.
func (q SearchJobseekersQuery) PageSize() int {
	return q.pageSize
}

func (q *SearchJobseekersQuery) setExperienceRange(experienceMin, experienceMax float64) error {
	if experienceMin < 0 || experienceMin > jobseeker.ExperienceMax {
		return errs.NewValueIsOutOfRangeError(
			"experienceMin", experienceMin, 0, jobseeker.ExperienceMax,
		)
	}
	if experienceMax < 0 || experienceMax > jobseeker.ExperienceMax {
		return errs.NewValueIsOutOfRangeError(
			"experienceMax", experienceMax, 0, jobseeker.ExperienceMax,
		)
	}
	if experienceMax > 0 && experienceMin > experienceMax {
		return ErrExperienceRangeIsInvalid
	}

	q.experienceMin = experienceMin
	q.experienceMax = experienceMax
	return nil
}

func (q *SearchJobseekersQuery) setPagination(page, pageSize int) error {
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
