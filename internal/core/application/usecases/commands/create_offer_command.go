package commands

import (
	"errors"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/guard"
)

var ErrCreateOfferCommandIsNotConstructed = errors.New(
	"CreateOfferCommand must be created via NewCreateOfferCommand constructor",
)

// CreateOfferCommand represents a company inviting a jobseeker to a vacancy.
type CreateOfferCommand struct { //nolint:recvcheck //using for validation
	offerID        kernel.UUID
	vacancyID      kernel.UUID
	jobseekerID    kernel.UUID
	companyMessage string

	guard guard.ConstructorGuard
}

// NewCreateOfferCommand creates a command to send an offer.
func NewCreateOfferCommand(
	offerID kernel.UUID,
	vacancyID kernel.UUID,
	jobseekerID kernel.UUID,
	companyMessage string,
) (CreateOfferCommand, error) {
	cmd := CreateOfferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOfferID(offerID),
		cmd.setVacancyID(vacancyID),
		cmd.setJobseekerID(jobseekerID),
	); err != nil {
		return CreateOfferCommand{}, err
	}

	cmd.companyMessage = companyMessage
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOfferCommand) Validate() error {
	return c.guard.Validate(ErrCreateOfferCommandIsNotConstructed)
}

// OfferID returns the identifier for the new offer.
func (c CreateOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}

// VacancyID returns the vacancy the offer is for.
func (c CreateOfferCommand) VacancyID() kernel.UUID {
	return c.vacancyID
}

// JobseekerID returns the invited jobseeker identifier.
func (c CreateOfferCommand) JobseekerID() kernel.UUID {
	return c.jobseekerID
}

// CompanyMessage returns the company's invitation message.
func (c CreateOfferCommand) CompanyMessage() string {
	return c.companyMessage
}

func (c *CreateOfferCommand) setOfferID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.offerID = id
	return nil
}

func (c *CreateOfferCommand) setVacancyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.vacancyID = id
	return nil
}

func (c *CreateOfferCommand) setJobseekerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.jobseekerID = id
	return nil
}
