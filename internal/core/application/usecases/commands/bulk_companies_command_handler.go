package commands

import (
	"context"

	"jobboard/internal/core/domain/model/account"
	"jobboard/internal/core/domain/model/company"
	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/core/domain/model/vacancy"
	"jobboard/internal/core/ports"
)

// BulkCompaniesCommandHandler handles batch imports of company accounts.
// Every account, profile and vacancy row is written in a single transaction:
// either the whole batch lands in the primary store or none of it does.
// The vacancy search documents are bulk-upserted per company only after the
// transaction has committed, so a failed index write leaves the committed
// batch in place and surfaces as an index-sync error.
type BulkCompaniesCommandHandler struct {
	uowFactory DirectoryUoWFactory
	index      ports.VacancyIndex
}

// NewBulkCompaniesCommandHandler creates a handler for bulk company imports.
func NewBulkCompaniesCommandHandler(
	uowFactory DirectoryUoWFactory,
	index ports.VacancyIndex,
) BulkCompaniesCommandHandler {
	return BulkCompaniesCommandHandler{
		uowFactory: uowFactory,
		index:      index,
	}
}

// Handle processes the bulk import command.
func (h *BulkCompaniesCommandHandler) Handle(ctx context.Context, cmd BulkCompaniesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	companyRepo := uow.CompanyRepository()
	vacancyRepo := uow.VacancyRepository()

	documentBatches := make([][]ports.VacancyDocument, 0, len(cmd.Entries()))

	for _, entry := range cmd.Entries() {
		hash, err := account.HashPassword(entry.Password)
		if err != nil {
			return err
		}

		user, err := account.NewAppUser(
			kernel.NewUUID(), entry.Username, entry.Email, entry.Phone, hash, account.RoleCompany,
		)
		if err != nil {
			return err
		}
		if err = userRepo.Add(ctx, user); err != nil {
			return err
		}

		c, err := company.NewCompany(kernel.NewUUID(), user.ID(), entry.SelfDescription, entry.Location)
		if err != nil {
			return err
		}
		if err = companyRepo.Add(ctx, c); err != nil {
			return err
		}

		documents := make([]ports.VacancyDocument, 0, len(entry.Vacancies))
		for _, ve := range entry.Vacancies {
			v, vErr := vacancy.NewVacancy(
				kernel.NewUUID(),
				c.ID(),
				ve.Title,
				ve.Description,
				ve.CandidateDescription,
				ve.Position,
				ve.SalaryMin,
				ve.SalaryMax,
				ve.WorkMode,
				ve.LivingConditions,
			)
			if vErr != nil {
				return vErr
			}
			if vErr = vacancyRepo.Add(ctx, v); vErr != nil {
				return vErr
			}
			documents = append(documents, ports.NewVacancyDocument(v))
		}
		documentBatches = append(documentBatches, documents)
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	for _, documents := range documentBatches {
		if len(documents) == 0 {
			continue
		}
		if err := h.index.UpsertBulk(ctx, documents); err != nil {
			return err
		}
	}

	return nil
}
