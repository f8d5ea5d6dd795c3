package commands

import (
	"errors"

	"jobboard/internal/core/domain/model/engagement"
	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/guard"
)

var ErrUpdateJobApplicationStatusCommandIsNotConstructed = errors.New(
	"UpdateJobApplicationStatusCommand must be created via NewUpdateJobApplicationStatusCommand constructor",
)

// UpdateJobApplicationStatusCommand represents a company resolving an application.
type UpdateJobApplicationStatusCommand struct { //nolint:recvcheck //using for validation
	applicationID   kernel.UUID
	status          engagement.Status
	companyResponse string

	guard guard.ConstructorGuard
}

// NewUpdateJobApplicationStatusCommand creates a command to resolve an application.
// The target status must be a valid resolution; the pending-only transition
// rule is enforced by the aggregate.
func NewUpdateJobApplicationStatusCommand(
	applicationID kernel.UUID,
	status engagement.Status,
	companyResponse string,
) (UpdateJobApplicationStatusCommand, error) {
	cmd := UpdateJobApplicationStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setApplicationID(applicationID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateJobApplicationStatusCommand{}, err
	}

	cmd.companyResponse = companyResponse
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateJobApplicationStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateJobApplicationStatusCommandIsNotConstructed)
}

// ApplicationID returns the identifier of the application to resolve.
func (c UpdateJobApplicationStatusCommand) ApplicationID() kernel.UUID {
	return c.applicationID
}

// Status returns the resolution status.
func (c UpdateJobApplicationStatusCommand) Status() engagement.Status {
	return c.status
}

// CompanyResponse returns the company's message to the applicant.
func (c UpdateJobApplicationStatusCommand) CompanyResponse() string {
	return c.companyResponse
}

func (c *UpdateJobApplicationStatusCommand) setApplicationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.applicationID = id
	return nil
}

func (c *UpdateJobApplicationStatusCommand) setStatus(status engagement.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
