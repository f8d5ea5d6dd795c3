package commands

import (
	"errors"

	"jobboard/internal/core/domain/model/vacancy"
	"jobboard/internal/pkg/guard"
)

var (
	ErrBulkCompaniesCommandIsNotConstructed = errors.New(
		"BulkCompaniesCommand must be created via NewBulkCompaniesCommand constructor",
	)
	ErrNoCompaniesToImport = errors.New("at least one company entry is required")
)

// BulkVacancyEntry describes one vacancy inside a bulk company import.
type BulkVacancyEntry struct {
	Title                string
	Description          string
	CandidateDescription string
	Position             string
	SalaryMin            float64
	SalaryMax            float64
	WorkMode             vacancy.WorkMode
	LivingConditions     string
}

// BulkCompanyEntry describes one company account inside a bulk import,
// together with the vacancies it publishes.
type BulkCompanyEntry struct {
	Username        string
	Email           string
	Phone           string
	Password        string
	SelfDescription string
	Location        string
	Vacancies       []BulkVacancyEntry
}

// BulkCompaniesCommand represents a batch import of company accounts with
// their vacancies. All primary-store writes share one transaction; the
// vacancy search documents are written per company after commit.
type BulkCompaniesCommand struct { //nolint:recvcheck //using for validation
	entries []BulkCompanyEntry

	guard guard.ConstructorGuard
}

// NewBulkCompaniesCommand creates a command to import companies in bulk.
// Field-level validation happens through the domain constructors in the
// handler; the command only requires a non-empty batch.
func NewBulkCompaniesCommand(entries []BulkCompanyEntry) (BulkCompaniesCommand, error) {
	if len(entries) == 0 {
		return BulkCompaniesCommand{}, ErrNoCompaniesToImport
	}

	return BulkCompaniesCommand{
		entries: entries,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c BulkCompaniesCommand) Validate() error {
	return c.guard.Validate(ErrBulkCompaniesCommandIsNotConstructed)
}

// Entries returns the company entries to import.
func (c BulkCompaniesCommand) Entries() []BulkCompanyEntry {
	return c.entries
}
