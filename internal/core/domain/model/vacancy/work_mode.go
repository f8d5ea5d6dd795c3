package vacancy

import (
	"fmt"
	"strings"

	"jobboard/internal/pkg/errs"
)

// WorkMode represents how the advertised position is worked.
// It is stored in the search index as its canonical upper-case string,
// which is what the keyword-exact work-mode filter matches against.
type WorkMode int

const (
	// WorkModeUnknown is the zero value and is invalid.
	WorkModeUnknown WorkMode = iota
	WorkModeOffice
	WorkModeRemote
	WorkModeOther
)

func workModeStrings() map[WorkMode]string {
	return map[WorkMode]string{
		WorkModeUnknown: "UNKNOWN",
		WorkModeOffice:  "OFFICE",
		WorkModeRemote:  "REMOTE",
		WorkModeOther:   "OTHER",
	}
}

func validWorkModeStrings() map[WorkMode]string {
	//nolint:exhaustive // WorkModeUnknown is intentionally excluded as it's invalid
	return map[WorkMode]string{
		WorkModeOffice: "OFFICE",
		WorkModeRemote: "REMOTE",
		WorkModeOther:  "OTHER",
	}
}

// Validate checks that the WorkMode is one of the declared valid values.
func (m WorkMode) Validate() error {
	if _, ok := validWorkModeStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("workMode", fmt.Errorf("%d is not a valid work mode", m))
	}
	return nil
}

// String returns the canonical upper-case name of the work mode.
func (m WorkMode) String() string {
	if s, ok := workModeStrings()[m]; ok {
		return s
	}
	return "UNKNOWN"
}

// WorkModeFromString parses a work mode from its name, case-insensitively.
func WorkModeFromString(s string) (WorkMode, error) {
	upper := strings.ToUpper(s)
	for mode, name := range validWorkModeStrings() {
		if name == upper {
			return mode, nil
		}
	}
	return WorkModeUnknown, errs.NewValueIsInvalidErrorWithCause("workMode", fmt.Errorf("%q is not a valid work mode", s))
}
