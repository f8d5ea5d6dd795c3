package commands

import (
	"context"

	"jobboard/internal/core/domain/model/engagement"
)

// CreateOfferCommandHandler handles offer creation.
// New offers start in pending status awaiting the jobseeker's reaction.
type CreateOfferCommandHandler struct {
	uowFactory EngagementUoWFactory
}

// NewCreateOfferCommandHandler creates a handler for offer creation.
func NewCreateOfferCommandHandler(uowFactory EngagementUoWFactory) CreateOfferCommandHandler {
	return CreateOfferCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the offer creation command.
func (h *CreateOfferCommandHandler) Handle(ctx context.Context, cmd CreateOfferCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	offer, err := engagement.NewOffer(cmd.OfferID(), cmd.VacancyID(), cmd.JobseekerID(), cmd.CompanyMessage())
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

	if err = uow.OfferRepository().Add(ctx, offer); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
