// Package http exposes the application use cases over a REST API.
// Handlers are thin glue: they bind the request, build a command or query,
// dispatch it and translate domain errors into status codes.
package http

import (
	"errors"
	"net/http"

	"jobboard/internal/core/application/usecases/commands"
	"jobboard/internal/core/application/usecases/queries"
	"jobboard/internal/core/ports"
	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/token"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerUserHandler            commands.RegisterUserCommandHandler
	createJobseekerHandler         commands.CreateJobseekerProfileCommandHandler
	editJobseekerHandler           commands.EditJobseekerCommandHandler
	createCompanyHandler           commands.CreateCompanyProfileCommandHandler
	editCompanyHandler             commands.EditCompanyCommandHandler
	createVacancyHandler           commands.CreateVacancyCommandHandler
	editVacancyHandler             commands.EditVacancyCommandHandler
	deleteVacancyHandler           commands.DeleteVacancyCommandHandler
	createApplicationHandler       commands.CreateJobApplicationCommandHandler
	updateApplicationStatusHandler commands.UpdateJobApplicationStatusCommandHandler
	createOfferHandler             commands.CreateOfferCommandHandler
	setOfferReactionHandler        commands.SetOfferReactionCommandHandler
	bulkCompaniesHandler           commands.BulkCompaniesCommandHandler
	bulkJobseekersHandler          commands.BulkJobseekersCommandHandler
	reindexAllHandler              commands.ReindexAllCommandHandler
	clearIndexHandler              commands.ClearIndexCommandHandler

	// Query handlers
	searchJobseekersHandler       queries.SearchJobseekersQueryHandler
	searchVacanciesHandler        queries.SearchVacanciesQueryHandler
	recentJobseekersHandler       queries.GetRecentJobseekersQueryHandler
	recentVacanciesHandler        queries.GetRecentVacanciesQueryHandler
	jobseekerByUserHandler        queries.GetJobseekerByUserIDQueryHandler
	companyByUserHandler          queries.GetCompanyByUserIDQueryHandler
	vacanciesByCompanyHandler     queries.GetVacanciesByCompanyQueryHandler
	applicationsForVacancyHandler queries.GetApplicationsForVacancyQueryHandler
	offersForJobseekerHandler     queries.GetOffersForJobseekerQueryHandler

	// Auth collaborators
	userRepo ports.UserRepository
	tokens   *token.Service
}

// Handlers bundles the use-case handlers the server dispatches to.
type Handlers struct {
	RegisterUser            commands.RegisterUserCommandHandler
	CreateJobseeker         commands.CreateJobseekerProfileCommandHandler
	EditJobseeker           commands.EditJobseekerCommandHandler
	CreateCompany           commands.CreateCompanyProfileCommandHandler
	EditCompany             commands.EditCompanyCommandHandler
	CreateVacancy           commands.CreateVacancyCommandHandler
	EditVacancy             commands.EditVacancyCommandHandler
	DeleteVacancy           commands.DeleteVacancyCommandHandler
	CreateApplication       commands.CreateJobApplicationCommandHandler
	UpdateApplicationStatus commands.UpdateJobApplicationStatusCommandHandler
	CreateOffer             commands.CreateOfferCommandHandler
	SetOfferReaction        commands.SetOfferReactionCommandHandler
	BulkCompanies           commands.BulkCompaniesCommandHandler
	BulkJobseekers          commands.BulkJobseekersCommandHandler
	ReindexAll              commands.ReindexAllCommandHandler
	ClearIndex              commands.ClearIndexCommandHandler

	SearchJobseekers       queries.SearchJobseekersQueryHandler
	SearchVacancies        queries.SearchVacanciesQueryHandler
	RecentJobseekers       queries.GetRecentJobseekersQueryHandler
	RecentVacancies        queries.GetRecentVacanciesQueryHandler
	JobseekerByUser        queries.GetJobseekerByUserIDQueryHandler
	CompanyByUser          queries.GetCompanyByUserIDQueryHandler
	VacanciesByCompany     queries.GetVacanciesByCompanyQueryHandler
	ApplicationsForVacancy queries.GetApplicationsForVacancyQueryHandler
	OffersForJobseeker     queries.GetOffersForJobseekerQueryHandler
}

// NewServer creates the HTTP server over the given handlers, account
// repository and token service.
func NewServer(h Handlers, userRepo ports.UserRepository, tokens *token.Service) *Server {
	return &Server{
		registerUserHandler:            h.RegisterUser,
		createJobseekerHandler:         h.CreateJobseeker,
		editJobseekerHandler:           h.EditJobseeker,
		createCompanyHandler:           h.CreateCompany,
		editCompanyHandler:             h.EditCompany,
		createVacancyHandler:           h.CreateVacancy,
		editVacancyHandler:             h.EditVacancy,
		deleteVacancyHandler:           h.DeleteVacancy,
		createApplicationHandler:       h.CreateApplication,
		updateApplicationStatusHandler: h.UpdateApplicationStatus,
		createOfferHandler:             h.CreateOffer,
		setOfferReactionHandler:        h.SetOfferReaction,
		bulkCompaniesHandler:           h.BulkCompanies,
		bulkJobseekersHandler:          h.BulkJobseekers,
		reindexAllHandler:              h.ReindexAll,
		clearIndexHandler:              h.ClearIndex,
		searchJobseekersHandler:        h.SearchJobseekers,
		searchVacanciesHandler:         h.SearchVacancies,
		recentJobseekersHandler:        h.RecentJobseekers,
		recentVacanciesHandler:         h.RecentVacancies,
		jobseekerByUserHandler:         h.JobseekerByUser,
		companyByUserHandler:           h.CompanyByUser,
		vacanciesByCompanyHandler:      h.VacanciesByCompany,
		applicationsForVacancyHandler:  h.ApplicationsForVacancy,
		offersForJobseekerHandler:      h.OffersForJobseeker,
		userRepo:                       userRepo,
		tokens:                         tokens,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api")

	api.POST("/auth/register", s.Register)
	api.POST("/auth/login", s.Login)

	authenticated := api.Group("", Auth(s.tokens))
	admin := api.Group("/admin", Auth(s.tokens), RequireAdmin())

	api.GET("/jobseekers/recent", s.GetRecentJobseekers)
	api.GET("/jobseekers/search", s.SearchJobseekers)
	api.GET("/jobseekers/:id/offers", s.GetOffersForJobseeker)
	authenticated.GET("/jobseekers/me", s.GetOwnJobseeker)
	authenticated.POST("/jobseekers", s.CreateJobseeker)
	authenticated.PUT("/jobseekers/:id", s.EditJobseeker)

	authenticated.GET("/companies/me", s.GetOwnCompany)
	authenticated.POST("/companies", s.CreateCompany)
	authenticated.PUT("/companies/:id", s.EditCompany)
	api.GET("/companies/:id/vacancies", s.GetVacanciesByCompany)

	api.GET("/vacancies/recent", s.GetRecentVacancies)
	api.GET("/vacancies/search", s.SearchVacancies)
	api.GET("/vacancies/:id/applications", s.GetApplicationsForVacancy)
	authenticated.POST("/vacancies", s.CreateVacancy)
	authenticated.PUT("/vacancies/:id", s.EditVacancy)
	authenticated.DELETE("/vacancies/:id", s.DeleteVacancy)

	authenticated.POST("/applications", s.CreateApplication)
	authenticated.PUT("/applications/:id/status", s.UpdateApplicationStatus)
	authenticated.POST("/offers", s.CreateOffer)
	authenticated.PUT("/offers/:id/reaction", s.SetOfferReaction)

	admin.POST("/reindex", s.Reindex)
	admin.DELETE("/index", s.ClearIndex)
	admin.POST("/bulk-companies", s.BulkCompanies)
	admin.POST("/bulk-jobseekers", s.BulkJobseekers)
}

func badRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// fail maps a use-case error onto a response. Not-found lookups become 404,
// username conflicts 409; everything else, including index-sync failures
// after a committed write, surfaces as a generic 500.
func fail(c echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError

	switch {
	case errors.As(err, &notFound):
		return c.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: notFound.Error(),
		})
	case errors.Is(err, commands.ErrUsernameIsTaken):
		return c.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, ports.ErrIndexSyncFailed):
		return c.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "saved, but search index sync failed",
		})
	default:
		return c.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "An unexpected error occurred.",
		})
	}
}
