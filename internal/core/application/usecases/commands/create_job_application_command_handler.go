package commands

import (
	"context"

	"jobboard/internal/core/domain/model/engagement"
)

// CreateJobApplicationCommandHandler handles application submission.
// New applications start in pending status.
type CreateJobApplicationCommandHandler struct {
	uowFactory EngagementUoWFactory
}

// NewCreateJobApplicationCommandHandler creates a handler for application submission.
func NewCreateJobApplicationCommandHandler(uowFactory EngagementUoWFactory) CreateJobApplicationCommandHandler {
	return CreateJobApplicationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the application submission command.
func (h *CreateJobApplicationCommandHandler) Handle(ctx context.Context, cmd CreateJobApplicationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	application, err := engagement.NewJobApplication(cmd.ApplicationID(), cmd.VacancyID(), cmd.JobseekerID())
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

	if err = uow.JobApplicationRepository().Add(ctx, application); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
