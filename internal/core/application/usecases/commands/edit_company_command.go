package commands

import (
	"errors"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/guard"
)

var ErrEditCompanyCommandIsNotConstructed = errors.New(
	"EditCompanyCommand must be created via NewEditCompanyCommand constructor",
)

// EditCompanyCommand represents a request to update a company profile.
type EditCompanyCommand struct { //nolint:recvcheck //using for validation
	companyID       kernel.UUID
	selfDescription string
	location        string

	guard guard.ConstructorGuard
}

// NewEditCompanyCommand creates a command to update a company profile.
func NewEditCompanyCommand(companyID kernel.UUID, selfDescription, location string) (EditCompanyCommand, error) {
	cmd := EditCompanyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCompanyID(companyID); err != nil {
		return EditCompanyCommand{}, err
	}

	cmd.selfDescription = selfDescription
	cmd.location = location
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditCompanyCommand) Validate() error {
	return c.guard.Validate(ErrEditCompanyCommandIsNotConstructed)
}

// CompanyID returns the identifier of the profile to update.
func (c EditCompanyCommand) CompanyID() kernel.UUID {
	return c.companyID
}

// SelfDescription returns the new self description.
func (c EditCompanyCommand) SelfDescription() string {
	return c.selfDescription
}

// Location returns the new location.
func (c EditCompanyCommand) Location() string {
	return c.location
}

func (c *EditCompanyCommand) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.companyID = id
	return nil
}
