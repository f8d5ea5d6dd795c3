package http

import (
	"net/http"
	"strconv"

	"jobboard/internal/core/application/usecases/commands"
	"jobboard/internal/core/application/usecases/queries"
	"jobboard/internal/core/domain/model/jobseeker"
	"jobboard/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateJobseeker handles POST /api/jobseekers - creates a profile for the
// authenticated account.
func (s *Server) CreateJobseeker(c echo.Context) error {
	var req JobseekerPayload
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	appUserID, err := kernel.UUIDFromString(ClaimsFrom(c).UserID)
	if err != nil {
		return badRequest(c, err)
	}
	education, err := jobseeker.DegreeFromString(req.Education)
	if err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewCreateJobseekerProfileCommand(
		kernel.NewUUID(), appUserID, req.Profession, req.Experience,
		education, req.Location, toBiography(req.Biography),
	)
	if err != nil {
		return badRequest(c, err)
	}

	if err = s.createJobseekerHandler.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	return c.NoContent(http.StatusCreated)
}

// EditJobseeker handles PUT /api/jobseekers/:id - replaces the editable
// profile attributes.
func (s *Server) EditJobseeker(c echo.Context) error {
	jobseekerID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, err)
	}

	var req JobseekerPayload
	if err = c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	education, err := jobseeker.DegreeFromString(req.Education)
	if err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewEditJobseekerCommand(
		jobseekerID, req.Profession, req.Experience, education,
		req.Location, toBiography(req.Biography), req.IsEmployed,
	)
	if err != nil {
		return badRequest(c, err)
	}

	if err = s.editJobseekerHandler.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	return c.NoContent(http.StatusOK)
}

// GetOwnJobseeker handles GET /api/jobseekers/me - returns the profile owned
// by the authenticated account.
func (s *Server) GetOwnJobseeker(c echo.Context) error {
	appUserID, err := kernel.UUIDFromString(ClaimsFrom(c).UserID)
	if err != nil {
		return badRequest(c, err)
	}

	query, err := queries.NewGetJobseekerByUserIDQuery(appUserID)
	if err != nil {
		return badRequest(c, err)
	}

	js, err := s.jobseekerByUserHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, toJobseekerResponse(js))
}

// GetRecentJobseekers handles GET /api/jobseekers/recent - lists the newest
// profiles, newest first.
func (s *Server) GetRecentJobseekers(c echo.Context) error {
	limit, err := intQueryParam(c, "limit", 0)
	if err != nil {
		return badRequest(c, err)
	}

	query, err := queries.NewGetRecentJobseekersQuery(limit)
	if err != nil {
		return badRequest(c, err)
	}

	jobseekers, err := s.recentJobseekersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, toJobseekerResponses(jobseekers))
}

// SearchJobseekers handles GET /api/jobseekers/search - runs a ranked search
// and returns full profiles in relevance order.
func (s *Server) SearchJobseekers(c echo.Context) error {
	experienceMin, err := floatQueryParam(c, "experienceMin", 0)
	if err != nil {
		return badRequest(c, err)
	}
	experienceMax, err := floatQueryParam(c, "experienceMax", 0)
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

	query, err := queries.NewSearchJobseekersQuery(
		c.QueryParam("profession"), experienceMin, experienceMax,
		c.QueryParam("education"), c.QueryParam("location"), page, pageSize,
	)
	if err != nil {
		return badRequest(c, err)
	}

	jobseekers, err := s.searchJobseekersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, toJobseekerResponses(jobseekers))
}

func intQueryParam(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

func floatQueryParam(c echo.Context, name string, fallback float64) (float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(raw, 64)
}
