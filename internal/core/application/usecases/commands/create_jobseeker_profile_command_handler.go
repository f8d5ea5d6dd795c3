package commands

import (
	"context"

	"jobboard/internal/core/domain/model/jobseeker"
	"jobboard/internal/core/ports"
)

// CreateJobseekerProfileCommandHandler handles jobseeker profile creation.
// The profile is committed to the primary store first; the search document
// is written afterwards. A failed index write surfaces as an index-sync
// error while the committed profile stays in place.
type CreateJobseekerProfileCommandHandler struct {
	uowFactory JobseekerUoWFactory
	index      ports.JobseekerIndex
}

// NewCreateJobseekerProfileCommandHandler creates a handler for profile creation.
func NewCreateJobseekerProfileCommandHandler(
	uowFactory JobseekerUoWFactory,
	index ports.JobseekerIndex,
) CreateJobseekerProfileCommandHandler {
	return CreateJobseekerProfileCommandHandler{
		uowFactory: uowFactory,
		index:      index,
	}
}

// Handle processes the profile creation command.
func (h *CreateJobseekerProfileCommandHandler) Handle(ctx context.Context, cmd CreateJobseekerProfileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	js, err := jobseeker.NewJobseeker(
		cmd.JobseekerID(),
		cmd.AppUserID(),
		cmd.Profession(),
		cmd.Experience(),
		cmd.Education(),
		cmd.Location(),
		cmd.Biography(),
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

	if err = uow.JobseekerRepository().Add(ctx, js); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.index.Upsert(ctx, ports.NewJobseekerDocument(js))
}
