package commands

import (
	"context"
)

// EditCompanyCommandHandler handles company profile updates.
type EditCompanyCommandHandler struct {
	uowFactory CompanyUoWFactory
}

// NewEditCompanyCommandHandler creates a handler for company profile updates.
func NewEditCompanyCommandHandler(uowFactory CompanyUoWFactory) EditCompanyCommandHandler {
	return EditCompanyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the company profile update command.
func (h *EditCompanyCommandHandler) Handle(ctx context.Context, cmd EditCompanyCommand) error {
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

	companyRepo := uow.CompanyRepository()
	c, err := companyRepo.Get(ctx, cmd.CompanyID())
	if err != nil {
		return err
	}

	c.Edit(cmd.SelfDescription(), cmd.Location())

	if err = companyRepo.Update(ctx, c); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
