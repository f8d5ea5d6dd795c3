package queries

import (
	"context"

	"jobboard/internal/core/domain/model/engagement"
	"jobboard/internal/core/ports"
)

// GetOffersForJobseekerQueryHandler lists the offers sent to one jobseeker.
type GetOffersForJobseekerQueryHandler struct {
	offerRepo ports.OfferRepository
}

// NewGetOffersForJobseekerQueryHandler creates a handler for offer listings.
func NewGetOffersForJobseekerQueryHandler(offerRepo ports.OfferRepository) GetOffersForJobseekerQueryHandler {
	return GetOffersForJobseekerQueryHandler{offerRepo: offerRepo}
}

// Handle returns the jobseeker's offers, newest first.
func (h GetOffersForJobseekerQueryHandler) Handle(
	ctx context.Context,
	query GetOffersForJobseekerQuery,
) ([]*engagement.Offer, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.offerRepo.GetByJobseekerID(ctx, query.JobseekerID())
}
