// Package seed loads the initial data set: the admin account and a starter
// catalog of companies with open vacancies. Loading is idempotent; accounts
// that already exist are left untouched, so the loader is safe to run on
// every startup.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"jobboard/internal/core/application/usecases/commands"
	"jobboard/internal/core/domain/model/account"
	"jobboard/internal/core/domain/model/company"
	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/core/domain/model/vacancy"
)

// Loader writes the seed data set through the unit of work.
type Loader struct {
	uowFactory commands.DirectoryUoWFactory
	logger     *slog.Logger
}

// NewLoader creates a seed loader.
func NewLoader(uowFactory commands.DirectoryUoWFactory, logger *slog.Logger) *Loader {
	return &Loader{
		uowFactory: uowFactory,
		logger:     logger.With("component", "seed"),
	}
}

// Run seeds the admin account and the company catalog. All writes of one
// run share a single transaction; a failure mid-batch rolls everything back.
func (l *Loader) Run(ctx context.Context, adminPassword string) error {
	uow := l.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	created, err := l.ensureAdmin(ctx, uow, adminPassword)
	if err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}

	seeded, err := l.seedCompanies(ctx, uow)
	if err != nil {
		return fmt.Errorf("failed to seed company catalog: %w", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	l.logger.InfoContext(ctx, "Seed data loaded", "adminCreated", created, "companiesSeeded", seeded)
	return nil
}

func (l *Loader) ensureAdmin(ctx context.Context, uow commands.DirectoryUoW, adminPassword string) (bool, error) {
	userRepo := uow.UserRepository()

	exists, err := userRepo.ExistsByUsername(ctx, adminUsername)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	hash, err := account.HashPassword(adminPassword)
	if err != nil {
		return false, err
	}

	admin, err := account.NewAppUser(
		mustUUID(adminUserID), adminUsername, adminEmail, adminPhone, hash, account.RoleAdmin,
	)
	if err != nil {
		return false, err
	}

	if err = userRepo.Add(ctx, admin); err != nil {
		return false, err
	}
	return true, nil
}

func (l *Loader) seedCompanies(ctx context.Context, uow commands.DirectoryUoW) (int, error) {
	userRepo := uow.UserRepository()
	companyRepo := uow.CompanyRepository()
	vacancyRepo := uow.VacancyRepository()

	seeded := 0
	for _, entry := range companyCatalog() {
		exists, err := userRepo.ExistsByUsername(ctx, entry.username)
		if err != nil {
			return seeded, err
		}
		if exists {
			continue
		}

		hash, err := account.HashPassword(entry.password)
		if err != nil {
			return seeded, err
		}

		user, err := account.NewAppUser(
			mustUUID(entry.userID), entry.username, entry.email, entry.phone, hash, account.RoleCompany,
		)
		if err != nil {
			return seeded, err
		}
		if err = userRepo.Add(ctx, user); err != nil {
			return seeded, err
		}

		c, err := company.NewCompany(
			mustUUID(entry.companyID), user.ID(), entry.selfDescription, entry.location,
		)
		if err != nil {
			return seeded, err
		}
		if err = companyRepo.Add(ctx, c); err != nil {
			return seeded, err
		}

		for _, ve := range entry.vacancies {
			v, err := vacancy.NewVacancy(
				mustUUID(ve.id), c.ID(), ve.title, ve.description,
				ve.candidateDescription, ve.position, ve.salaryMin, ve.salaryMax,
				ve.workMode, ve.livingConditions,
			)
			if err != nil {
				return seeded, err
			}
			if err = vacancyRepo.Add(ctx, v); err != nil {
				return seeded, err
			}
		}

		seeded++
	}
	return seeded, nil
}

// mustUUID parses the fixed identifiers baked into the seed catalog.
// A malformed literal is a programming error, not a runtime condition.
func mustUUID(s string) kernel.UUID {
	id, err := kernel.UUIDFromString(s)
	if err != nil {
		panic(fmt.Sprintf("seed: invalid uuid literal %q: %v", s, err))
	}
	return id
}
