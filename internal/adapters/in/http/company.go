package http

import (
	"net/http"

	"jobboard/internal/core/application/usecases/commands"
	"jobboard/internal/core/application/usecases/queries"
	"jobboard/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateCompany handles POST /api/companies - creates a company profile for
// the authenticated account.
func (s *Server) CreateCompany(c echo.Context) error {
	var req CompanyPayload
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	appUserID, err := kernel.UUIDFromString(ClaimsFrom(c).UserID)
	if err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewCreateCompanyProfileCommand(
		kernel.NewUUID(), appUserID, req.SelfDescription, req.Location,
	)
	if err != nil {
		return badRequest(c, err)
	}

	if err = s.createCompanyHandler.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	return c.NoContent(http.StatusCreated)
}

// EditCompany handles PUT /api/companies/:id - replaces the editable
// company attributes.
func (s *Server) EditCompany(c echo.Context) error {
	companyID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, err)
	}

	var req CompanyPayload
	if err = c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewEditCompanyCommand(companyID, req.SelfDescription, req.Location)
	if err != nil {
		return badRequest(c, err)
	}

	if err = s.editCompanyHandler.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	return c.NoContent(http.StatusOK)
}

// GetOwnCompany handles GET /api/companies/me - returns the company owned by
// the authenticated account.
func (s *Server) GetOwnCompany(c echo.Context) error {
	appUserID, err := kernel.UUIDFromString(ClaimsFrom(c).UserID)
	if err != nil {
		return badRequest(c, err)
	}

	query, err := queries.NewGetCompanyByUserIDQuery(appUserID)
	if err != nil {
		return badRequest(c, err)
	}

	company, err := s.companyByUserHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, toCompanyResponse(company))
}

// GetVacanciesByCompany handles GET /api/companies/:id/vacancies.
func (s *Server) GetVacanciesByCompany(c echo.Context) error {
	companyID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, err)
	}

	query, err := queries.NewGetVacanciesByCompanyQuery(companyID)
	if err != nil {
		return badRequest(c, err)
	}

	vacancies, err := s.vacanciesByCompanyHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, toVacancyResponses(vacancies))
}
