package cmd

import (
	"log/slog"
	"time"

	httpin "jobboard/internal/adapters/in/http"
	"jobboard/internal/adapters/out/elastic"
	"jobboard/internal/adapters/out/postgres"
	"jobboard/internal/core/application/usecases/commands"
	"jobboard/internal/core/application/usecases/queries"
	"jobboard/internal/core/ports"
	"jobboard/internal/jobs"
	"jobboard/internal/pkg/token"
	"jobboard/internal/seed"

	"gorm.io/gorm"
)

const tokenTTL = 24 * time.Hour

type CompositionRoot struct {
	config         Config
	gormDB         *gorm.DB
	uowFactory     postgres.GormUnitOfWorkFactory
	jobseekerIndex *elastic.JobseekerIndex
	vacancyIndex   *elastic.VacancyIndex
	tokens         *token.Service
	logger         *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	jobseekerIndex *elastic.JobseekerIndex,
	vacancyIndex *elastic.VacancyIndex,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:         config,
		gormDB:         gormDB,
		uowFactory:     *postgres.NewGormUnitOfWorkFactory(gormDB),
		jobseekerIndex: jobseekerIndex,
		vacancyIndex:   vacancyIndex,
		tokens:         token.NewService(config.JWTSecret, tokenTTL),
		logger:         logger,
	}
}

// sharedRepositories returns repositories bound to the shared connection,
// outside any transaction. Used by query handlers and the login flow.
func (c *CompositionRoot) sharedRepositories() ports.UnitOfWork {
	return c.uowFactory.Create()
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateJobseekerProfileCommandHandler() commands.CreateJobseekerProfileCommandHandler {
	var f commands.JobseekerUoWFactory = FuncJobseekerUoWFactory(func() commands.JobseekerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateJobseekerProfileCommandHandler(f, c.jobseekerIndex)
}

func (c *CompositionRoot) CreateEditJobseekerCommandHandler() commands.EditJobseekerCommandHandler {
	var f commands.JobseekerUoWFactory = FuncJobseekerUoWFactory(func() commands.JobseekerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEditJobseekerCommandHandler(f, c.jobseekerIndex)
}

func (c *CompositionRoot) CreateCreateCompanyProfileCommandHandler() commands.CreateCompanyProfileCommandHandler {
	var f commands.CompanyUoWFactory = FuncCompanyUoWFactory(func() commands.CompanyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCompanyProfileCommandHandler(f)
}

func (c *CompositionRoot) CreateEditCompanyCommandHandler() commands.EditCompanyCommandHandler {
	var f commands.CompanyUoWFactory = FuncCompanyUoWFactory(func() commands.CompanyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEditCompanyCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateVacancyCommandHandler() commands.CreateVacancyCommandHandler {
	var f commands.VacancyUoWFactory = FuncVacancyUoWFactory(func() commands.VacancyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateVacancyCommandHandler(f, c.vacancyIndex)
}

func (c *CompositionRoot) CreateEditVacancyCommandHandler() commands.EditVacancyCommandHandler {
	var f commands.VacancyUoWFactory = FuncVacancyUoWFactory(func() commands.VacancyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEditVacancyCommandHandler(f, c.vacancyIndex)
}

func (c *CompositionRoot) CreateDeleteVacancyCommandHandler() commands.DeleteVacancyCommandHandler {
	var f commands.VacancyUoWFactory = FuncVacancyUoWFactory(func() commands.VacancyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteVacancyCommandHandler(f, c.vacancyIndex)
}

func (c *CompositionRoot) CreateCreateJobApplicationCommandHandler() commands.CreateJobApplicationCommandHandler {
	var f commands.EngagementUoWFactory = FuncEngagementUoWFactory(func() commands.EngagementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateJobApplicationCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateJobApplicationStatusCommandHandler() commands.UpdateJobApplicationStatusCommandHandler {
	var f commands.EngagementUoWFactory = FuncEngagementUoWFactory(func() commands.EngagementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateJobApplicationStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOfferCommandHandler() commands.CreateOfferCommandHandler {
	var f commands.EngagementUoWFactory = FuncEngagementUoWFactory(func() commands.EngagementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOfferCommandHandler(f)
}

func (c *CompositionRoot) CreateSetOfferReactionCommandHandler() commands.SetOfferReactionCommandHandler {
	var f commands.EngagementUoWFactory = FuncEngagementUoWFactory(func() commands.EngagementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetOfferReactionCommandHandler(f)
}

func (c *CompositionRoot) CreateBulkCompaniesCommandHandler() commands.BulkCompaniesCommandHandler {
	var f commands.DirectoryUoWFactory = FuncDirectoryUoWFactory(func() commands.DirectoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBulkCompaniesCommandHandler(f, c.vacancyIndex)
}

func (c *CompositionRoot) CreateBulkJobseekersCommandHandler() commands.BulkJobseekersCommandHandler {
	var f commands.RosterUoWFactory = FuncRosterUoWFactory(func() commands.RosterUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBulkJobseekersCommandHandler(f, c.jobseekerIndex)
}

func (c *CompositionRoot) CreateReindexAllCommandHandler() commands.ReindexAllCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReindexAllCommandHandler(f, c.jobseekerIndex, c.vacancyIndex)
}

func (c *CompositionRoot) CreateClearIndexCommandHandler() commands.ClearIndexCommandHandler {
	return commands.NewClearIndexCommandHandler(c.jobseekerIndex, c.vacancyIndex)
}

func (c *CompositionRoot) CreateSearchJobseekersQueryHandler() queries.SearchJobseekersQueryHandler {
	return queries.NewSearchJobseekersQueryHandler(c.sharedRepositories().JobseekerRepository(), c.jobseekerIndex)
}

func (c *CompositionRoot) CreateSearchVacanciesQueryHandler() queries.SearchVacanciesQueryHandler {
	return queries.NewSearchVacanciesQueryHandler(c.sharedRepositories().VacancyRepository(), c.vacancyIndex)
}

func (c *CompositionRoot) CreateGetRecentJobseekersQueryHandler() queries.GetRecentJobseekersQueryHandler {
	return queries.NewGetRecentJobseekersQueryHandler(c.sharedRepositories().JobseekerRepository())
}

func (c *CompositionRoot) CreateGetRecentVacanciesQueryHandler() queries.GetRecentVacanciesQueryHandler {
	return queries.NewGetRecentVacanciesQueryHandler(c.sharedRepositories().VacancyRepository())
}

func (c *CompositionRoot) CreateGetJobseekerByUserIDQueryHandler() queries.GetJobseekerByUserIDQueryHandler {
	return queries.NewGetJobseekerByUserIDQueryHandler(c.sharedRepositories().JobseekerRepository())
}

func (c *CompositionRoot) CreateGetCompanyByUserIDQueryHandler() queries.GetCompanyByUserIDQueryHandler {
	return queries.NewGetCompanyByUserIDQueryHandler(c.sharedRepositories().CompanyRepository())
}

func (c *CompositionRoot) CreateGetVacanciesByCompanyQueryHandler() queries.GetVacanciesByCompanyQueryHandler {
	return queries.NewGetVacanciesByCompanyQueryHandler(c.sharedRepositories().VacancyRepository())
}

func (c *CompositionRoot) CreateGetApplicationsForVacancyQueryHandler() queries.GetApplicationsForVacancyQueryHandler {
	return queries.NewGetApplicationsForVacancyQueryHandler(c.sharedRepositories().JobApplicationRepository())
}

func (c *CompositionRoot) CreateGetOffersForJobseekerQueryHandler() queries.GetOffersForJobseekerQueryHandler {
	return queries.NewGetOffersForJobseekerQueryHandler(c.sharedRepositories().OfferRepository())
}

// CreateHTTPServer wires every use case into the REST server.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	handlers := httpin.Handlers{
		RegisterUser:            c.CreateRegisterUserCommandHandler(),
		CreateJobseeker:         c.CreateCreateJobseekerProfileCommandHandler(),
		EditJobseeker:           c.CreateEditJobseekerCommandHandler(),
		CreateCompany:           c.CreateCreateCompanyProfileCommandHandler(),
		EditCompany:             c.CreateEditCompanyCommandHandler(),
		CreateVacancy:           c.CreateCreateVacancyCommandHandler(),
		EditVacancy:             c.CreateEditVacancyCommandHandler(),
		DeleteVacancy:           c.CreateDeleteVacancyCommandHandler(),
		CreateApplication:       c.CreateCreateJobApplicationCommandHandler(),
		UpdateApplicationStatus: c.CreateUpdateJobApplicationStatusCommandHandler(),
		CreateOffer:             c.CreateCreateOfferCommandHandler(),
		SetOfferReaction:        c.CreateSetOfferReactionCommandHandler(),
		BulkCompanies:           c.CreateBulkCompaniesCommandHandler(),
		BulkJobseekers:          c.CreateBulkJobseekersCommandHandler(),
		ReindexAll:              c.CreateReindexAllCommandHandler(),
		ClearIndex:              c.CreateClearIndexCommandHandler(),

		SearchJobseekers:       c.CreateSearchJobseekersQueryHandler(),
		SearchVacancies:        c.CreateSearchVacanciesQueryHandler(),
		RecentJobseekers:       c.CreateGetRecentJobseekersQueryHandler(),
		RecentVacancies:        c.CreateGetRecentVacanciesQueryHandler(),
		JobseekerByUser:        c.CreateGetJobseekerByUserIDQueryHandler(),
		CompanyByUser:          c.CreateGetCompanyByUserIDQueryHandler(),
		VacanciesByCompany:     c.CreateGetVacanciesByCompanyQueryHandler(),
		ApplicationsForVacancy: c.CreateGetApplicationsForVacancyQueryHandler(),
		OffersForJobseeker:     c.CreateGetOffersForJobseekerQueryHandler(),
	}

	return httpin.NewServer(handlers, c.sharedRepositories().UserRepository(), c.tokens)
}

// CreateJobManager wires the scheduled reindex job.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateReindexAllCommandHandler(), c.config.ReindexSchedule, c.logger)
}

// CreateSeedLoader wires the startup seed loader.
func (c *CompositionRoot) CreateSeedLoader() *seed.Loader {
	var f commands.DirectoryUoWFactory = FuncDirectoryUoWFactory(func() commands.DirectoryUoW {
		return c.uowFactory.Create()
	})
	return seed.NewLoader(f, c.logger)
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncJobseekerUoWFactory func() commands.JobseekerUoW

func (f FuncJobseekerUoWFactory) Create() commands.JobseekerUoW {
	return f()
}

type FuncCompanyUoWFactory func() commands.CompanyUoW

func (f FuncCompanyUoWFactory) Create() commands.CompanyUoW {
	return f()
}

type FuncVacancyUoWFactory func() commands.VacancyUoW

func (f FuncVacancyUoWFactory) Create() commands.VacancyUoW {
	return f()
}

type FuncEngagementUoWFactory func() commands.EngagementUoW

func (f FuncEngagementUoWFactory) Create() commands.EngagementUoW {
	return f()
}

type FuncDirectoryUoWFactory func() commands.DirectoryUoW

func (f FuncDirectoryUoWFactory) Create() commands.DirectoryUoW {
	return f()
}

type FuncRosterUoWFactory func() commands.RosterUoW

func (f FuncRosterUoWFactory) Create() commands.RosterUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}
