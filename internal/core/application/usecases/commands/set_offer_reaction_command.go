package commands

import (
	"errors"

	"jobboard/internal/core/domain/model/engagement"
	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/guard"
)

var ErrSetOfferReactionCommandIsNotConstructed = errors.New(
	"SetOfferReactionCommand must be created via NewSetOfferReactionCommand constructor",
)

// SetOfferReactionCommand represents a jobseeker reacting to a pending offer.
type SetOfferReactionCommand struct { //nolint:recvcheck //using for validation
	offerID           kernel.UUID
	status            engagement.Status
	jobseekerResponse string

	guard guard.ConstructorGuard
}

// NewSetOfferReactionCommand creates a command to react to an offer.
func NewSetOfferReactionCommand(
	offerID kernel.UUID,
	status engagement.Status,
	jobseekerResponse string,
) (SetOfferReactionCommand, error) {
	cmd := SetOfferReactionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOfferID(offerID),
		cmd.setStatus(status),
	); err != nil {
		return SetOfferReactionCommand{}, err
	}

	cmd.jobseekerResponse = jobseekerResponse
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetOfferReactionCommand) Validate() error {
	return c.guard.Validate(ErrSetOfferReactionCommandIsNotConstructed)
}

// OfferID returns the identifier of the offer to react to.
func (c SetOfferReactionCommand) OfferID() kernel.UUID {
	return c.offerID
}

// Status returns the reaction status.
func (c SetOfferReactionCommand) Status() engagement.Status {
	return c.status
}

// JobseekerResponse returns the jobseeker's message to the company.
func (c SetOfferReactionCommand) JobseekerResponse() string {
	return c.jobseekerResponse
}

func (c *SetOfferReactionCommand) setOfferID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.offerID = id
	return nil
}

func (c *SetOfferReactionCommand) setStatus(status engagement.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
