package ports

import (
	"jobboard/internal/core/domain/model/jobseeker"
	"jobboard/internal/core/domain/model/vacancy"
)

// JobseekerDocument is the searchable projection of a jobseeker profile.
// The document is keyed by the owning account ID, not the jobseeker's own
// ID, so search hits resolve directly to user accounts.
type JobseekerDocument struct {
	ID         string  `json:"id"`
	Profession string  `json:"profession"`
	Education  string  `json:"education"`
	Location   string  `json:"location"`
	Experience float64 `json:"experience"`
}

// NewJobseekerDocument projects a jobseeker aggregate into its search document.
func NewJobseekerDocument(js *jobseeker.Jobseeker) JobseekerDocument {
	return JobseekerDocument{
		ID:         js.AppUserID().String(),
		Profession: js.Profession(),
		Education:  js.Education().String(),
		Location:   js.Location(),
		Experience: js.Experience(),
	}
}

// VacancyDocument is the searchable projection of a vacancy, keyed by the
// vacancy's own ID.
type VacancyDocument struct {
	ID          string  `json:"id"`
	Position    string  `json:"position"`
	MinSalary   float64 `json:"minSalary"`
	MaxSalary   float64 `json:"maxSalary"`
	WorkMode    string  `json:"workMode"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
}

// NewVacancyDocument projects a vacancy aggregate into its search document.
func NewVacancyDocument(v *vacancy.Vacancy) VacancyDocument {
	return VacancyDocument{
		ID:          v.ID().String(),
		Position:    v.Position(),
		MinSalary:   v.SalaryMin(),
		MaxSalary:   v.SalaryMax(),
		WorkMode:    v.WorkMode().String(),
		Title:       v.Title(),
		Description: v.Description(),
	}
}
