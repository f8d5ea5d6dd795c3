package commands

import (
	"context"

	"jobboard/internal/core/ports"
)

// EditJobseekerCommandHandler handles jobseeker profile updates.
// Follows the same write order as profile creation: commit the primary
// store, then refresh the search document.
type EditJobseekerCommandHandler struct {
	uowFactory JobseekerUoWFactory
	index      ports.JobseekerIndex
}

// NewEditJobseekerCommandHandler creates a handler for profile updates.
func NewEditJobseekerCommandHandler(
	uowFactory JobseekerUoWFactory,
	index ports.JobseekerIndex,
) EditJobseekerCommandHandler {
	return EditJobseekerCommandHandler{
		uowFactory: uowFactory,
		index:      index,
	}
}

// Handle processes the profile update command.
func (h *EditJobseekerCommandHandler) Handle(ctx context.Context, cmd EditJobseekerCommand) error {
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

	jobseekerRepo := uow.JobseekerRepository()
	js, err := jobseekerRepo.Get(ctx, cmd.JobseekerID())
	if err != nil {
		return err
	}

	if err = js.Edit(
		cmd.Profession(),
		cmd.Experience(),
		cmd.Education(),
		cmd.Location(),
		cmd.Biography(),
		cmd.IsEmployed(),
	); err != nil {
		return err
	}

	if err = jobseekerRepo.Update(ctx, js); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.index.Upsert(ctx, ports.NewJobseekerDocument(js))
}
