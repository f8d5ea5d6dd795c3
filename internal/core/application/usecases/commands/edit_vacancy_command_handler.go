package commands

import (
	"context"

	"jobboard/internal/core/ports"
)

// EditVacancyCommandHandler handles vacancy updates.
// Commits the primary store first, then refreshes the search document.
type EditVacancyCommandHandler struct {
	uowFactory VacancyUoWFactory
	index      ports.VacancyIndex
}

// NewEditVacancyCommandHandler creates a handler for vacancy updates.
func NewEditVacancyCommandHandler(
	uowFactory VacancyUoWFactory,
	index ports.VacancyIndex,
) EditVacancyCommandHandler {
	return EditVacancyCommandHandler{
		uowFactory: uowFactory,
		index:      index,
	}
}

// Handle processes the vacancy update command.
func (h *EditVacancyCommandHandler) Handle(ctx context.Context, cmd EditVacancyCommand) error {
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

	vacancyRepo := uow.VacancyRepository()
	v, err := vacancyRepo.Get(ctx, cmd.VacancyID())
	if err != nil {
		return err
	}

	if err = v.Edit(
		cmd.Title(),
		cmd.Description(),
		cmd.CandidateDescription(),
		cmd.Position(),
		cmd.SalaryMin(),
		cmd.SalaryMax(),
		cmd.WorkMode(),
		cmd.LivingConditions(),
	); err != nil {
		return err
	}

	if err = vacancyRepo.Update(ctx, v); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.index.Upsert(ctx, ports.NewVacancyDocument(v))
}
