package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"jobboard/cmd"
	"jobboard/internal/adapters/out/elastic"
	"jobboard/internal/adapters/out/postgres"
	"jobboard/internal/core/application/usecases/commands"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db := openDatabase(configs)
	if err := postgres.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	jobseekerIndex, vacancyIndex := buildIndexes(configs)

	app := cmd.NewCompositionRoot(configs, db, jobseekerIndex, vacancyIndex, logger)

	ctx := context.Background()
	if err := jobseekerIndex.EnsureIndexExists(ctx); err != nil {
		log.Fatalf("Failed to create jobseeker index: %v", err)
	}
	if err := vacancyIndex.EnsureIndexExists(ctx); err != nil {
		log.Fatalf("Failed to create vacancy index: %v", err)
	}

	if err := app.CreateSeedLoader().Run(ctx, configs.AdminPassword); err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	// Rebuild the indexes from the primary store so a previous crash or
	// failed sync does not leave stale search results. Not fatal: the
	// scheduled reindex job retries on its own.
	reindexHandler := app.CreateReindexAllCommandHandler()
	if report, err := reindexHandler.Handle(ctx, commands.NewReindexAllCommand()); err != nil {
		logger.ErrorContext(ctx, "Startup reindex failed", "error", err)
	} else {
		logger.InfoContext(ctx, "Startup reindex finished",
			"jobseekers", report.Jobseekers,
			"vacancies", report.Vacancies,
		)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		ElasticURL:      goDotEnvVariable("ELASTIC_URL"),
		ElasticUsername: goDotEnvVariable("ELASTIC_USERNAME"),
		ElasticPassword: goDotEnvVariable("ELASTIC_PASSWORD"),
		JWTSecret:       goDotEnvVariable("JWT_SECRET"),
		AdminPassword:   goDotEnvVariable("ADMIN_PASSWORD"),
		ReindexSchedule: goDotEnvVariable("REINDEX_SCHEDULE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		configs.DBHost, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBPort, configs.DBSslMode,
	)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func buildIndexes(configs cmd.Config) (*elastic.JobseekerIndex, *elastic.VacancyIndex) {
	es, err := elastic.NewClient(elastic.Config{
		Addresses: []string{configs.ElasticURL},
		Username:  configs.ElasticUsername,
		Password:  configs.ElasticPassword,
	})
	if err != nil {
		log.Fatalf("Failed to connect to search engine: %v", err)
	}

	jobseekerIndex, err := elastic.NewJobseekerIndex(es)
	if err != nil {
		log.Fatalf("Failed to build jobseeker index adapter: %v", err)
	}
	vacancyIndex, err := elastic.NewVacancyIndex(es)
	if err != nil {
		log.Fatalf("Failed to build vacancy index adapter: %v", err)
	}
	return jobseekerIndex, vacancyIndex
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
