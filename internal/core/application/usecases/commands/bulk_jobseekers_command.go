package commands

import (
	"errors"

	"jobboard/internal/core/domain/model/jobseeker"
	"jobboard/internal/pkg/guard"
)

var (
	ErrBulkJobseekersCommandIsNotConstructed = errors.New(
		"BulkJobseekersCommand must be created via NewBulkJobseekersCommand constructor",
	)
	ErrNoJobseekersToImport = errors.New("at least one jobseeker entry is required")
)

// BulkJobseekerEntry describes one jobseeker account inside a bulk import,
// together with the profile it carries.
type BulkJobseekerEntry struct {
	Username   string
	Email      string
	Phone      string
	Password   string
	Profession string
	Experience float64
	Education  jobseeker.Degree
	Location   string
	Biography  jobseeker.Biography
}

// BulkJobseekersCommand represents a batch import of jobseeker accounts with
// their profiles. All primary-store writes share one transaction; the profile
// search documents are bulk-upserted after commit.
type BulkJobseekersCommand struct { //nolint:recvcheck //using for validation
	entries []BulkJobseekerEntry

	guard guard.ConstructorGuard
}

// NewBulkJobseekersCommand creates a command to import jobseekers in bulk.
// Field-level validation happens through the domain constructors in the
// handler; the command only requires a non-empty batch.
func NewBulkJobseekersCommand(entries []BulkJobseekerEntry) (BulkJobseekersCommand, error) {
	if len(entries) == 0 {
		return BulkJobseekersCommand{}, ErrNoJobseekersToImport
	}

	return BulkJobseekersCommand{
		entries: entries,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c BulkJobseekersCommand) Validate() error {
	return c.guard.Validate(ErrBulkJobseekersCommandIsNotConstructed)
}

// Entries returns the jobseeker entries to import.
func (c BulkJobseekersCommand) Entries() []BulkJobseekerEntry {
	return c.entries
}
