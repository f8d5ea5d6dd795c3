package http

import (
	"net/http"

	"jobboard/internal/core/application/usecases/commands"
	"jobboard/internal/core/domain/model/jobseeker"
	"jobboard/internal/core/domain/model/vacancy"

	"github.com/labstack/echo/v4"
)

// Reindex handles POST /api/admin/reindex - rebuilds both search indexes
// from the primary store and reports how many documents were written.
func (s *Server) Reindex(c echo.Context) error {
	report, err := s.reindexAllHandler.Handle(c.Request().Context(), commands.NewReindexAllCommand())
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, ReindexResponse{
		Jobseekers: report.Jobseekers,
		Vacancies:  report.Vacancies,
	})
}

// ClearIndex handles DELETE /api/admin/index - removes every document from
// both search indexes and reports how many were deleted.
func (s *Server) ClearIndex(c echo.Context) error {
	report, err := s.clearIndexHandler.Handle(c.Request().Context(), commands.NewClearIndexCommand())
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, ClearIndexResponse{
		Jobseekers: report.Jobseekers,
		Vacancies:  report.Vacancies,
	})
}

// BulkCompanies handles POST /api/admin/bulk-companies - imports company
// accounts with their vacancies in one transaction.
func (s *Server) BulkCompanies(c echo.Context) error {
	var req []BulkCompanyPayload
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	entries := make([]commands.BulkCompanyEntry, len(req))
	for i, payload := range req {
		vacancies := make([]commands.BulkVacancyEntry, len(payload.Vacancies))
		for j, vp := range payload.Vacancies {
			workMode, err := vacancy.WorkModeFromString(vp.WorkMode)
			if err != nil {
				return badRequest(c, err)
			}
			vacancies[j] = commands.BulkVacancyEntry{
				Title:                vp.Title,
				Description:          vp.Description,
				CandidateDescription: vp.CandidateDescription,
				Position:             vp.Position,
				SalaryMin:            vp.SalaryMin,
				SalaryMax:            vp.SalaryMax,
				WorkMode:             workMode,
				LivingConditions:     vp.LivingConditions,
			}
		}
		entries[i] = commands.BulkCompanyEntry{
			Username:        payload.Username,
			Email:           payload.Email,
			Phone:           payload.Phone,
			Password:        payload.Password,
			SelfDescription: payload.SelfDescription,
			Location:        payload.Location,
			Vacancies:       vacancies,
		}
	}

	cmd, err := commands.NewBulkCompaniesCommand(entries)
	if err != nil {
		return badRequest(c, err)
	}

	if err = s.bulkCompaniesHandler.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, map[string]int{"imported": len(entries)})
}

// BulkJobseekers handles POST /api/admin/bulk-jobseekers - imports jobseeker
// accounts with their profiles in one transaction.
func (s *Server) BulkJobseekers(c echo.Context) error {
	var req []BulkJobseekerPayload
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	entries := make([]commands.BulkJobseekerEntry, len(req))
	for i, payload := range req {
		education, err := jobseeker.DegreeFromString(payload.Profile.Education)
		if err != nil {
			return badRequest(c, err)
		}
		entries[i] = commands.BulkJobseekerEntry{
			Username:   payload.Username,
			Email:      payload.Email,
			Phone:      payload.Phone,
			Password:   payload.Password,
			Profession: payload.Profile.Profession,
			Experience: payload.Profile.Experience,
			Education:  education,
			Location:   payload.Profile.Location,
			Biography:  toBiography(payload.Profile.Biography),
		}
	}

	cmd, err := commands.NewBulkJobseekersCommand(entries)
	if err != nil {
		return badRequest(c, err)
	}

	if err = s.bulkJobseekersHandler.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, map[string]int{"imported": len(entries)})
}
