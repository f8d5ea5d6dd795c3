package http

import (
	"net/http"

	"jobboard/internal/core/application/usecases/commands"
	"jobboard/internal/core/application/usecases/queries"
	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/core/domain/model/vacancy"

	"github.com/labstack/echo/v4"
)

// CreateVacancy handles POST /api/vacancies - publishes a vacancy and syncs
// its search document.
func (s *Server) CreateVacancy(c echo.Context) error {
	var req VacancyPayload
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	companyID, err := kernel.UUIDFromString(req.CompanyID)
	if err != nil {
		return badRequest(c, err)
	}
	workMode, err := vacancy.WorkModeFromString(req.WorkMode)
	if err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewCreateVacancyCommand(
		kernel.NewUUID(), companyID, req.Title, req.Description,
		req.CandidateDescription, req.Position, req.SalaryMin, req.SalaryMax,
		workMode, req.LivingConditions,
	)
	if err != nil {
		return badRequest(c, err)
	}

	if err = s.createVacancyHandler.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	return c.NoContent(http.StatusCreated)
}

// EditVacancy handles PUT /api/vacancies/:id - replaces the vacancy's
// editable attributes and syncs its search document.
func (s *Server) EditVacancy(c echo.Context) error {
	vacancyID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, err)
	}

	var req VacancyPayload
	if err = c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	workMode, err := vacancy.WorkModeFromString(req.WorkMode)
	if err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewEditVacancyCommand(
		vacancyID, req.Title, req.Description, req.CandidateDescription,
		req.Position, req.SalaryMin, req.SalaryMax, workMode, req.LivingConditions,
	)
	if err != nil {
		return badRequest(c, err)
	}

	if err = s.editVacancyHandler.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	return c.NoContent(http.StatusOK)
}

// DeleteVacancy handles DELETE /api/vacancies/:id - removes the vacancy and
// its search document.
func (s *Server) DeleteVacancy(c echo.Context) error {
	vacancyID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewDeleteVacancyCommand(vacancyID)
	if err != nil {
		return badRequest(c, err)
	}

	if err = s.deleteVacancyHandler.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	return c.NoContent(http.StatusOK)
}

// GetRecentVacancies handles GET /api/vacancies/recent - lists the newest
// vacancies, newest first.
func (s *Server) GetRecentVacancies(c echo.Context) error {
	limit, err := intQueryParam(c, "limit", 0)
	if err != nil {
		return badRequest(c, err)
	}

	query, err := queries.NewGetRecentVacanciesQuery(limit)
	if err != nil {
		return badRequest(c, err)
	}

	vacancies, err := s.recentVacanciesHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, toVacancyResponses(vacancies))
}

// SearchVacancies handles GET /api/vacancies/search - runs a ranked search
// and returns full vacancies in relevance order.
func (s *Server) SearchVacancies(c echo.Context) error {
	salaryMin, err := floatQueryParam(c, "salaryMin", 0)
	if err != nil {
		return badRequest(c, err)
	}
	salaryMax, err := floatQueryParam(c, "salaryMax", 0)
	if err != nil {
		return badRequest(c, err)
	}
	page, err := intQueryParam(c, "page", 0)
	if err != nil {
		return badRequest(c, err)
	}
	pageSize, err := intQueryParam(c, "pageSize", 0)
	if err != nil {
		return badRequest(c, err)
	}

	query, err := queries.NewSearchVacanciesQuery(
		c.QueryParam("position"), c.QueryParam("description"),
		salaryMin, salaryMax, c.QueryParam("workMode"), page, pageSize,
	)
	if err != nil {
		return badRequest(c, err)
	}

	vacancies, err := s.searchVacanciesHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, toVacancyResponses(vacancies))
}
