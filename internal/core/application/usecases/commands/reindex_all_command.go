package commands

import (
	"errors"

	"jobboard/internal/pkg/guard"
)

var ErrReindexAllCommandIsNotConstructed = errors.New(
	"ReindexAllCommand must be created via NewReindexAllCommand constructor",
)

// ReindexAllCommand represents a request to rebuild both search indexes
// from the primary store. Parameterless; the routine is idempotent and
// safe to run under live traffic.
type ReindexAllCommand struct {
	guard guard.ConstructorGuard
}

// NewReindexAllCommand creates a command to rebuild the search indexes.
func NewReindexAllCommand() ReindexAllCommand {
	return ReindexAllCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c ReindexAllCommand) Validate() error {
	return c.guard.Validate(ErrReindexAllCommandIsNotConstructed)
}

// ReindexAllReport summarizes a completed reindex run.
type ReindexAllReport struct {
	Jobseekers int
	Vacancies  int
}
