package account

import (
	"fmt"
	"strings"

	"jobboard/internal/pkg/errs"
)

// Role classifies an account. ADMIN is assigned only by seeding; JOBSEEKER
// and COMPANY are the safe roles users may take during registration.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleJobseeker Role = "JOBSEEKER"
	RoleCompany   Role = "COMPANY"
)

// Validate checks that the Role is one of the declared values.
func (r Role) Validate() error {
	switch r {
	case RoleAdmin, RoleJobseeker, RoleCompany:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
	}
}

// IsSafe reports whether users may assign this role to themselves.
func (r Role) IsSafe() bool {
	return r == RoleJobseeker || r == RoleCompany
}

// RoleFromString parses a role name case-insensitively.
func RoleFromString(s string) (Role, error) {
	role := Role(strings.ToUpper(s))
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}
