package commands

import (
	"context"
)

// SetOfferReactionCommandHandler handles jobseeker reactions to offers.
type SetOfferReactionCommandHandler struct {
	uowFactory EngagementUoWFactory
}

// NewSetOfferReactionCommandHandler creates a handler for offer reactions.
func NewSetOfferReactionCommandHandler(uowFactory EngagementUoWFactory) SetOfferReactionCommandHandler {
	return SetOfferReactionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the offer reaction command.
// Returns engagement.ErrAlreadyResolved when the offer is not pending.
func (h *SetOfferReactionCommandHandler) Handle(ctx context.Context, cmd SetOfferReactionCommand) error {
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

	offerRepo := uow.OfferRepository()
	offer, err := offerRepo.Get(ctx, cmd.OfferID())
	if err != nil {
		return err
	}

	if err = offer.React(cmd.Status(), cmd.JobseekerResponse()); err != nil {
		return err
	}

	if err = offerRepo.Update(ctx, offer); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
