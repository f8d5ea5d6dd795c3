package commands

import (
	"context"

	"jobboard/internal/core/domain/model/account"
	"jobboard/internal/core/domain/model/jobseeker"
	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/core/ports"
)

// BulkJobseekersCommandHandler handles batch imports of jobseeker accounts.
// Every account and profile row is written in a single transaction: either
// the whole batch lands in the primary store or none of it does. The profile
// search documents are bulk-upserted only after the transaction has
// committed, so a failed index write leaves the committed batch in place and
// surfaces as an index-sync error.
type BulkJobseekersCommandHandler struct {
	uowFactory RosterUoWFactory
	index      ports.JobseekerIndex
}

// NewBulkJobseekersCommandHandler creates a handler for bulk jobseeker imports.
func NewBulkJobseekersCommandHandler(
	uowFactory RosterUoWFactory,
	index ports.JobseekerIndex,
) BulkJobseekersCommandHandler {
	return BulkJobseekersCommandHandler{
		uowFactory: uowFactory,
		index:      index,
	}
}

// Handle processes the bulk import command.
func (h *BulkJobseekersCommandHandler) Handle(ctx context.Context, cmd BulkJobseekersCommand) error {
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
	jobseekerRepo := uow.JobseekerRepository()

	documents := make([]ports.JobseekerDocument, 0, len(cmd.Entries()))

	for _, entry := range cmd.Entries() {
		hash, err := account.HashPassword(entry.Password)
		if err != nil {
			return err
		}

		user, err := account.NewAppUser(
			kernel.NewUUID(), entry.Username, entry.Email, entry.Phone, hash, account.RoleJobseeker,
		)
		if err != nil {
			return err
		}
		if err = userRepo.Add(ctx, user); err != nil {
			return err
		}

		js, err := jobseeker.NewJobseeker(
			kernel.NewUUID(),
			user.ID(),
			entry.Profession,
			entry.Experience,
			entry.Education,
			entry.Location,
			entry.Biography,
		)
		if err != nil {
			return err
		}
		if err = jobseekerRepo.Add(ctx, js); err != nil {
			return err
		}
		documents = append(documents, ports.NewJobseekerDocument(js))
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return h.index.UpsertBulk(ctx, documents)
}
