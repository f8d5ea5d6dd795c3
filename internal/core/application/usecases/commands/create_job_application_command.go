package commands

import (
	"errors"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/guard"
)

var ErrCreateJobApplicationCommandIsNotConstructed = errors.New(
	"CreateJobApplicationCommand must be created via NewCreateJobApplicationCommand constructor",
)

// CreateJobApplicationCommand represents a jobseeker applying to a vacancy.
type CreateJobApplicationCommand struct { //nolint:recvcheck //using for validation
	applicationID kernel.UUID
	vacancyID     kernel.UUID
	jobseekerID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateJobApplicationCommand creates a command to submit an application.
func NewCreateJobApplicationCommand(
	applicationID kernel.UUID,
	vacancyID kernel.UUID,
	jobseekerID kernel.UUID,
) (CreateJobApplicationCommand, error) {
	cmd := CreateJobApplicationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setApplicationID(applicationID),
		cmd.setVacancyID(vacancyID),
		cmd.setJobseekerID(jobseekerID),
	); err != nil {
		return CreateJobApplicationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateJobApplicationCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobApplicationCommandIsNotConstructed)
}

// ApplicationID returns the identifier for the new application.
func (c CreateJobApplicationCommand) ApplicationID() kernel.UUID {
	return c.applicationID
}

// VacancyID returns the target vacancy identifier.
func (c CreateJobApplicationCommand) VacancyID() kernel.UUID {
	return c.vacancyID
}

// JobseekerID returns the applying jobseeker identifier.
func (c CreateJobApplicationCommand) JobseekerID() kernel.UUID {
	return c.jobseekerID
}

func (c *CreateJobApplicationCommand) setApplicationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.applicationID = id
	return nil
}

func (c *CreateJobApplicationCommand) setVacancyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.vacancyID = id
	return nil
}

func (c *CreateJobApplicationCommand) setJobseekerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.jobseekerID = id
	return nil
}
