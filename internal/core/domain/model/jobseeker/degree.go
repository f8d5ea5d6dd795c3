package jobseeker

import (
	"fmt"
	"strings"

	"jobboard/internal/pkg/errs"
)

// Degree represents the education level of a jobseeker.
// It is stored in the search index as its canonical upper-case string,
// which is what the keyword-exact education filter matches against.
type Degree int

const (
	// DegreeNone means no formal education is declared. It is a valid value.
	DegreeNone Degree = iota
	DegreePrimary
	DegreeSecondary
	DegreeHighSchool
	DegreeAssociate
	DegreeBachelor
	DegreeMaster
	DegreeDoctorate
	DegreeProfessional
	DegreeVocational
	DegreeOther
)

func degreeStrings() map[Degree]string {
	return map[Degree]string{
		DegreeNone:         "NONE",
		DegreePrimary:      "PRIMARY",
		DegreeSecondary:    "SECONDARY",
		DegreeHighSchool:   "HIGH_SCHOOL",
		DegreeAssociate:    "ASSOCIATE",
		DegreeBachelor:     "BACHELOR",
		DegreeMaster:       "MASTER",
		DegreeDoctorate:    "DOCTORATE",
		DegreeProfessional: "PROFESSIONAL",
		DegreeVocational:   "VOCATIONAL",
		DegreeOther:        "OTHER",
	}
}

// Validate checks that the Degree is one of the declared values.
func (d Degree) Validate() error {
	if _, ok := degreeStrings()[d]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("education", fmt.Errorf("%d is not a valid degree", d))
	}
	return nil
}

// String returns the canonical upper-case name of the degree.
func (d Degree) String() string {
	if s, ok := degreeStrings()[d]; ok {
		return s
	}
	return "NONE"
}

// DegreeFromString parses a degree from its name, case-insensitively.
// An empty string maps to DegreeNone.
func DegreeFromString(s string) (Degree, error) {
	if s == "" {
		return DegreeNone, nil
	}
	upper := strings.ToUpper(s)
	for degree, name := range degreeStrings() {
		if name == upper {
			return degree, nil
		}
	}
	return DegreeNone, errs.NewValueIsInvalidErrorWithCause("education", fmt.Errorf("%q is not a valid degree", s))
}
