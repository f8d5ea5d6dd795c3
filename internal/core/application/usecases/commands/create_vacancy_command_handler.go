package commands

import (
	"context"

	"jobboard/internal/core/domain/model/vacancy"
	"jobboard/internal/core/ports"
)

// CreateVacancyCommandHandler handles vacancy publication.
// The vacancy is committed to the primary store first; the search document
// is written afterwards.
type CreateVacancyCommandHandler struct {
	uowFactory VacancyUoWFactory
	index      ports.VacancyIndex
}

// NewCreateVacancyCommandHandler creates a handler for vacancy publication.
func NewCreateVacancyCommandHandler(
	uowFactory VacancyUoWFactory,
	index ports.VacancyIndex,
) CreateVacancyCommandHandler {
	return CreateVacancyCommandHandler{
		uowFactory: uowFactory,
		index:      index,
	}
}

// Handle processes the vacancy publication command.
func (h *CreateVacancyCommandHandler) Handle(ctx context.Context, cmd CreateVacancyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	v, err := vacancy.NewVacancy(
		cmd.VacancyID(),
		cmd.CompanyID(),
		cmd.Title(),
		cmd.Description(),
		cmd.CandidateDescription(),
		cmd.Position(),
		cmd.SalaryMin(),
		cmd.SalaryMax(),
		cmd.WorkMode(),
		cmd.LivingConditions(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.VacancyRepository().Add(ctx, v); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.index.Upsert(ctx, ports.NewVacancyDocument(v))
}
