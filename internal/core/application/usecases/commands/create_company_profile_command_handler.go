package commands

import (
	"context"

	"jobboard/internal/core/domain/model/company"
)

// CreateCompanyProfileCommandHandler handles company profile creation.
type CreateCompanyProfileCommandHandler struct {
	uowFactory CompanyUoWFactory
}

// NewCreateCompanyProfileCommandHandler creates a handler for company profile creation.
func NewCreateCompanyProfileCommandHandler(uowFactory CompanyUoWFactory) CreateCompanyProfileCommandHandler {
	return CreateCompanyProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the company profile creation command.
func (h *CreateCompanyProfileCommandHandler) Handle(ctx context.Context, cmd CreateCompanyProfileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := company.NewCompany(cmd.CompanyID(), cmd.AppUserID(), cmd.SelfDescription(), cmd.Location())
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

	if err = uow.CompanyRepository().Add(ctx, c); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
