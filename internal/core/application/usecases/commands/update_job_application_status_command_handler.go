package commands

import (
	"context"
)

// UpdateJobApplicationStatusCommandHandler handles application resolution.
type UpdateJobApplicationStatusCommandHandler struct {
	uowFactory EngagementUoWFactory
}

// NewUpdateJobApplicationStatusCommandHandler creates a handler for application resolution.
func NewUpdateJobApplicationStatusCommandHandler(
	uowFactory EngagementUoWFactory,
) UpdateJobApplicationStatusCommandHandler {
	return UpdateJobApplicationStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the application resolution command.
// Returns engagement.ErrAlreadyResolved when the application is not pending.
func (h *UpdateJobApplicationStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateJobApplicationStatusCommand,
) error {
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

	applicationRepo := uow.JobApplicationRepository()
	application, err := applicationRepo.Get(ctx, cmd.ApplicationID())
	if err != nil {
		return err
	}

	if err = application.Resolve(cmd.Status(), cmd.CompanyResponse()); err != nil {
		return err
	}

	if err = applicationRepo.Update(ctx, application); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
