package commands

import (
	"errors"

	"jobboard/internal/pkg/guard"
)

var ErrClearIndexCommandIsNotConstructed = errors.New(
	"ClearIndexCommand must be created via NewClearIndexCommand constructor",
)

// ClearIndexCommand represents a request to wipe both search indexes.
// The primary store is untouched; a subsequent reindex restores the
// documents from it.
type ClearIndexCommand struct {
	guard guard.ConstructorGuard
}

// NewClearIndexCommand creates a command to wipe the search indexes.
func NewClearIndexCommand() ClearIndexCommand {
	return ClearIndexCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c ClearIndexCommand) Validate() error {
	return c.guard.Validate(ErrClearIndexCommandIsNotConstructed)
}

// ClearIndexReport summarizes how many documents were removed per index.
type ClearIndexReport struct {
	Jobseekers int64
	Vacancies  int64
}
