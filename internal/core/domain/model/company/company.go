// Package company holds the company profile aggregate.
// A company extends an AppUser account and owns the vacancies it publishes;
// vacancies themselves are a separate aggregate referencing the company by ID.
package company

import (
	"errors"
	"time"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/guard"
)

// ErrCompanyIsNotConstructed is returned when using an improperly initialized Company.
var ErrCompanyIsNotConstructed = errors.New("Company must be created via NewCompany or RestoreCompany")

// Company is the aggregate root for a company profile.
type Company struct {
	id              kernel.UUID
	appUserID       kernel.UUID
	selfDescription string
	location        string
	registerDate    time.Time

	guard guard.ConstructorGuard
}

// NewCompany creates a fresh company profile for the given account.
// The registration date is set to the current UTC date.
func NewCompany(id kernel.UUID, appUserID kernel.UUID, selfDescription, location string) (*Company, error) {
	c := &Company{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setAppUserID(appUserID),
	); err != nil {
		return nil, err
	}

	c.selfDescription = selfDescription
	c.location = location
	c.registerDate = time.Now().UTC().Truncate(24 * time.Hour)
	return c, nil
}

// RestoreCompany reconstructs a company aggregate from persistent storage.
func RestoreCompany(
	id kernel.UUID,
	appUserID kernel.UUID,
	selfDescription string,
	location string,
	registerDate time.Time,
) (*Company, error) {
	c := &Company{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setAppUserID(appUserID),
	); err != nil {
		return nil, err
	}

	c.selfDescription = selfDescription
	c.location = location
	c.registerDate = registerDate
	return c, nil
}

// Validate checks that the Company was built through a constructor.
func (c *Company) Validate() error {
	if c == nil {
		return ErrCompanyIsNotConstructed
	}
	return c.guard.Validate(ErrCompanyIsNotConstructed)
}

// ID returns the company identifier.
func (c *Company) ID() kernel.UUID {
	return c.id
}

// AppUserID returns the identifier of the owning account.
func (c *Company) AppUserID() kernel.UUID {
	return c.appUserID
}

// SelfDescription returns the company's self description.
func (c *Company) SelfDescription() string {
	return c.selfDescription
}

// Location returns the company location.
func (c *Company) Location() string {
	return c.location
}

// RegisterDate returns when the company profile was registered.
func (c *Company) RegisterDate() time.Time {
	return c.registerDate
}

// Edit replaces the editable profile attributes.
func (c *Company) Edit(selfDescription, location string) {
	c.selfDescription = selfDescription
	c.location = location
}

func (c *Company) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

func (c *Company) setAppUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.appUserID = id
	return nil
}
