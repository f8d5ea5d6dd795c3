// Package engagement holds the aggregates that connect jobseekers and
// companies: job applications initiated by jobseekers and offers initiated
// by companies. Neither aggregate is projected into the search index.
package engagement

import (
	"fmt"
	"strings"

	"jobboard/internal/pkg/errs"
)

// Status tracks the lifecycle of an application or offer.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
	StatusRejected Status = "REJECTED"
)

// Validate checks that the Status is one of the declared values.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
}

// StatusFromString parses a status name case-insensitively.
func StatusFromString(v string) (Status, error) {
	s := Status(strings.ToUpper(v))
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}
