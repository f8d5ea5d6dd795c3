package commands

import (
	"errors"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/guard"
)

var ErrDeleteVacancyCommandIsNotConstructed = errors.New(
	"DeleteVacancyCommand must be created via NewDeleteVacancyCommand constructor",
)

// DeleteVacancyCommand represents a request to take down a vacancy.
type DeleteVacancyCommand struct { //nolint:recvcheck //using for validation
	vacancyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteVacancyCommand creates a command to delete a vacancy.
func NewDeleteVacancyCommand(vacancyID kernel.UUID) (DeleteVacancyCommand, error) {
	cmd := DeleteVacancyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setVacancyID(vacancyID); err != nil {
		return DeleteVacancyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteVacancyCommand) Validate() error {
	return c.guard.Validate(ErrDeleteVacancyCommandIsNotConstructed)
}

// VacancyID returns the identifier of the vacancy to delete.
func (c DeleteVacancyCommand) VacancyID() kernel.UUID {
	return c.vacancyID
}

func (c *DeleteVacancyCommand) setVacancyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.vacancyID = id
	return nil
}
