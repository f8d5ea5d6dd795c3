package commands

import (
	"context"

	"jobboard/internal/core/ports"
)

// DeleteVacancyCommandHandler handles vacancy removal.
// Deletes the row first, then the search document. A failed document
// delete surfaces as an index-sync error while the row stays deleted;
// the next reindex or a repeated delete clears the leftover document.
type DeleteVacancyCommandHandler struct {
	uowFactory VacancyUoWFactory
	index      ports.VacancyIndex
}

// NewDeleteVacancyCommandHandler creates a handler for vacancy removal.
func NewDeleteVacancyCommandHandler(
	uowFactory VacancyUoWFactory,
	index ports.VacancyIndex,
) DeleteVacancyCommandHandler {
	return DeleteVacancyCommandHandler{
		uowFactory: uowFactory,
		index:      index,
	}
}

// Handle processes the vacancy removal command.
func (h *DeleteVacancyCommandHandler) Handle(ctx context.Context, cmd DeleteVacancyCommand) error {
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

	if err := uow.VacancyRepository().Delete(ctx, cmd.VacancyID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return h.index.Delete(ctx, cmd.VacancyID().String())
}
