package http

import (
	"errors"
	"net/http"

	"jobboard/internal/core/application/usecases/commands"
	"jobboard/internal/core/application/usecases/queries"
	"jobboard/internal/core/domain/model/engagement"
	"jobboard/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateApplication handles POST /api/applications - submits a job application.
func (s *Server) CreateApplication(c echo.Context) error {
	var req ApplicationRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	vacancyID, err := kernel.UUIDFromString(req.VacancyID)
	if err != nil {
		return badRequest(c, err)
	}
	jobseekerID, err := kernel.UUIDFromString(req.JobseekerID)
	if err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewCreateJobApplicationCommand(kernel.NewUUID(), vacancyID, jobseekerID)
	if err != nil {
		return badRequest(c, err)
	}

	if err = s.createApplicationHandler.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	return c.NoContent(http.StatusCreated)
}

// UpdateApplicationStatus handles PUT /api/applications/:id/status - the
// company's accept or reject decision.
func (s *Server) UpdateApplicationStatus(c echo.Context) error {
	applicationID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, err)
	}

	var req ApplicationStatusRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	status, err := engagement.StatusFromString(req.Status)
	if err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewUpdateJobApplicationStatusCommand(applicationID, status, req.CompanyResponse)
	if err != nil {
		return badRequest(c, err)
	}

	if err = s.updateApplicationStatusHandler.Handle(c.Request().Context(), cmd); err != nil {
		if errors.Is(err, engagement.ErrAlreadyResolved) {
			return c.JSON(http.StatusConflict, Error{
				Code:    http.StatusConflict,
				Message: err.Error(),
			})
		}
		return fail(c, err)
	}

	return c.NoContent(http.StatusOK)
}

// CreateOffer handles POST /api/offers - a company invites a jobseeker.
func (s *Server) CreateOffer(c echo.Context) error {
	var req OfferRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	vacancyID, err := kernel.UUIDFromString(req.VacancyID)
	if err != nil {
		return badRequest(c, err)
	}
	jobseekerID, err := kernel.UUIDFromString(req.JobseekerID)
	if err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewCreateOfferCommand(kernel.NewUUID(), vacancyID, jobseekerID, req.CompanyMessage)
	if err != nil {
		return badRequest(c, err)
	}

	if err = s.createOfferHandler.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	return c.NoContent(http.StatusCreated)
}

// SetOfferReaction handles PUT /api/offers/:id/reaction - the jobseeker's
// accept or reject decision.
func (s *Server) SetOfferReaction(c echo.Context) error {
	offerID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, err)
	}

	var req OfferReactionRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	status, err := engagement.StatusFromString(req.Status)
	if err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewSetOfferReactionCommand(offerID, status, req.JobseekerResponse)
	if err != nil {
		return badRequest(c, err)
	}

	if err = s.setOfferReactionHandler.Handle(c.Request().Context(), cmd); err != nil {
		if errors.Is(err, engagement.ErrAlreadyResolved) {
			return c.JSON(http.StatusConflict, Error{
				Code:    http.StatusConflict,
				Message: err.Error(),
			})
		}
		return fail(c, err)
	}

	return c.NoContent(http.StatusOK)
}

// GetApplicationsForVacancy handles GET /api/vacancies/:id/applications.
func (s *Server) GetApplicationsForVacancy(c echo.Context) error {
	vacancyID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, err)
	}

	query, err := queries.NewGetApplicationsForVacancyQuery(vacancyID)
	if err != nil {
		return badRequest(c, err)
	}

	applications, err := s.applicationsForVacancyHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return fail(c, err)
	}

	response := make([]ApplicationResponse, len(applications))
	for i, a := range applications {
		response[i] = toApplicationResponse(a)
	}
	return c.JSON(http.StatusOK, response)
}

// GetOffersForJobseeker handles GET /api/jobseekers/:id/offers.
func (s *Server) GetOffersForJobseeker(c echo.Context) error {
	jobseekerID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, err)
	}

	query, err := queries.NewGetOffersForJobseekerQuery(jobseekerID)
	if err != nil {
		return badRequest(c, err)
	}

	offers, err := s.offersForJobseekerHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return fail(c, err)
	}

	response := make([]OfferResponse, len(offers))
	for i, o := range offers {
		response[i] = toOfferResponse(o)
	}
	return c.JSON(http.StatusOK, response)
}
