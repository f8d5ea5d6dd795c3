package ports

import (
	"jobboard/internal/core/domain/model/jobseeker"
	"jobboard/internal/core/domain/model/vacancy"
)

// Pagination defaults shared by both search queries.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// JobseekerSearchQuery carries the filters for a jobseeker search.
// Zero values mean "not filtered"; Normalize fills in the documented
// defaults before the query reaches the search engine.
type JobseekerSearchQuery struct {
	Profession    string
	ExperienceMin float64
	ExperienceMax float64
	Education     string
	Location      string
	Page          int
	PageSize      int
}

// Normalize returns a copy with defaults applied: page 1, page size 10
// and the full experience range when no bounds were given.
func (q JobseekerSearchQuery) Normalize() JobseekerSearchQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.ExperienceMin < jobseeker.ExperienceMin {
		q.ExperienceMin = jobseeker.ExperienceMin
	}
	if q.ExperienceMax <= 0 {
		q.ExperienceMax = jobseeker.ExperienceMax
	}
	return q
}

// HasExperienceFilter reports whether the experience range narrows the
// default bounds. When it does not, no range clause is sent at all.
func (q JobseekerSearchQuery) HasExperienceFilter() bool {
	return q.ExperienceMin > jobseeker.ExperienceMin || q.ExperienceMax < jobseeker.ExperienceMax
}

// From returns the zero-based offset of the first hit for the current page.
func (q JobseekerSearchQuery) From() int {
	return (q.Page - 1) * q.PageSize
}

// VacancySearchQuery carries the filters for a vacancy search.
type VacancySearchQuery struct {
	Position           string
	GeneralDescription string
	SalaryMin          float64
	SalaryMax          float64
	WorkMode           string
	Page               int
	PageSize           int
}

// Normalize returns a copy with defaults applied: page 1, page size 10
// and the widest salary range when no bounds were given.
func (q VacancySearchQuery) Normalize() VacancySearchQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.SalaryMin < 1 {
		q.SalaryMin = 1
	}
	if q.SalaryMax <= 0 {
		q.SalaryMax = vacancy.SalaryCap
	}
	return q
}

// From returns the zero-based offset of the first hit for the current page.
func (q VacancySearchQuery) From() int {
	return (q.Page - 1) * q.PageSize
}
