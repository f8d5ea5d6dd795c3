package commands

import (
	"errors"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/guard"
)

var ErrCreateCompanyProfileCommandIsNotConstructed = errors.New(
	"CreateCompanyProfileCommand must be created via NewCreateCompanyProfileCommand constructor",
)

// CreateCompanyProfileCommand represents a request to create a company
// profile for an existing account. Companies are not indexed for search;
// only their vacancies are.
type CreateCompanyProfileCommand struct { //nolint:recvcheck //using for validation
	companyID       kernel.UUID
	appUserID       kernel.UUID
	selfDescription string
	location        string

	guard guard.ConstructorGuard
}

// NewCreateCompanyProfileCommand creates a command to register a company profile.
func NewCreateCompanyProfileCommand(
	companyID kernel.UUID,
	appUserID kernel.UUID,
	selfDescription string,
	location string,
) (CreateCompanyProfileCommand, error) {
	cmd := CreateCompanyProfileCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCompanyID(companyID),
		cmd.setAppUserID(appUserID),
	); err != nil {
		return CreateCompanyProfileCommand{}, err
	}

	cmd.selfDescription = selfDescription
	cmd.location = location
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCompanyProfileCommand) Validate() error {
	return c.guard.Validate(ErrCreateCompanyProfileCommandIsNotConstructed)
}

// CompanyID returns the identifier for the new profile.
func (c CreateCompanyProfileCommand) CompanyID() kernel.UUID {
	return c.companyID
}

// AppUserID returns the identifier of the owning account.
func (c CreateCompanyProfileCommand) AppUserID() kernel.UUID {
	return c.appUserID
}

// SelfDescription returns the company's self description.
func (c CreateCompanyProfileCommand) SelfDescription() string {
	return c.selfDescription
}

// Location returns the company location.
func (c CreateCompanyProfileCommand) Location() string {
	return c.location
}

func (c *CreateCompanyProfileCommand) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.companyID = id
	return nil
}

func (c *CreateCompanyProfileCommand) setAppUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.appUserID = id
	return nil
}
