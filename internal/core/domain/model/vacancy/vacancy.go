package vacancy

import (
	"errors"
	"time"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/guard"
)

// SalaryCap bounds the accepted salary values.
// It matches the default upper bound of the salary range filter, so a
// vacancy with no explicit maximum still falls inside an unfiltered search.
const SalaryCap = 100_000_000_000

// Domain errors for vacancy operations.
var (
	ErrTitleIsRequired         = errs.NewValueIsRequiredError("title")
	ErrPositionIsRequired      = errs.NewValueIsRequiredError("position")
	ErrSalaryRangeIsInvalid    = errors.New("salary range is invalid: min must not exceed max")
	ErrVacancyIsNotConstructed = errors.New("Vacancy must be created via NewVacancy or RestoreVacancy")
)

// Vacancy is the aggregate root for a published job opening.
// The searchable subset of its attributes (position, salary range, work
// mode, title, description) is projected into the search index keyed by
// the vacancy ID.
type Vacancy struct {
	id                   kernel.UUID
	companyID            kernel.UUID
	title                string
	description          string
	candidateDescription string
	position             string
	salaryMin            float64
	salaryMax            float64
	workMode             WorkMode
	livingConditions     string
	publishDate          time.Time
	editDate             time.Time

	guard guard.ConstructorGuard
}

// NewVacancy creates a fresh vacancy for the given company.
// The publish date is set to the current UTC time.
func NewVacancy(
	id kernel.UUID,
	companyID kernel.UUID,
	title string,
	description string,
	candidateDescription string,
	position string,
	salaryMin float64,
	salaryMax float64,
	workMode WorkMode,
	livingConditions string,
) (*Vacancy, error) {
	v := &Vacancy{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setCompanyID(companyID),
		v.setTitle(title),
		v.setPosition(position),
		v.setSalaryRange(salaryMin, salaryMax),
		v.setWorkMode(workMode),
	); err != nil {
		return nil, err
	}

	v.description = description
	v.candidateDescription = candidateDescription
	v.livingConditions = livingConditions
	v.publishDate = time.Now().UTC()
	v.editDate = v.publishDate
	return v, nil
}

// RestoreVacancy reconstructs a vacancy aggregate from persistent storage.
func RestoreVacancy(
	id kernel.UUID,
	companyID kernel.UUID,
	title string,
	description string,
	candidateDescription string,
	position string,
	salaryMin float64,
	salaryMax float64,
	workMode WorkMode,
	livingConditions string,
	publishDate time.Time,
	editDate time.Time,
) (*Vacancy, error) {
	v := &Vacancy{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setCompanyID(companyID),
		v.setTitle(title),
		v.setPosition(position),
		v.setSalaryRange(salaryMin, salaryMax),
		v.setWorkMode(workMode),
	); err != nil {
		return nil, err
	}

	v.description = description
	v.candidateDescription = candidateDescription
	v.livingConditions = livingConditions
	v.publishDate = publishDate
	v.editDate = editDate
	return v, nil
}

// Validate checks that the Vacancy was built through a constructor.
func (v *Vacancy) Validate() error {
	if v == nil {
		return ErrVacancyIsNotConstructed
	}
	return v.guard.Validate(ErrVacancyIsNotConstructed)
}

// ID returns the vacancy identifier. Its string form is the key of the
// vacancy's search document.
func (v *Vacancy) ID() kernel.UUID {
	return v.id
}

// CompanyID returns the identifier of the publishing company.
func (v *Vacancy) CompanyID() kernel.UUID {
	return v.companyID
}

// Title returns the vacancy title.
func (v *Vacancy) Title() string {
	return v.title
}

// Description returns the vacancy description.
func (v *Vacancy) Description() string {
	return v.description
}

// CandidateDescription returns the description of the desired candidate.
func (v *Vacancy) CandidateDescription() string {
	return v.candidateDescription
}

// Position returns the advertised position name.
func (v *Vacancy) Position() string {
	return v.position
}

// SalaryMin returns the lower bound of the advertised salary.
func (v *Vacancy) SalaryMin() float64 {
	return v.salaryMin
}

// SalaryMax returns the upper bound of the advertised salary.
func (v *Vacancy) SalaryMax() float64 {
	return v.salaryMax
}

// WorkMode returns the advertised work mode.
func (v *Vacancy) WorkMode() WorkMode {
	return v.workMode
}

// LivingConditions returns the free-form living conditions text.
func (v *Vacancy) LivingConditions() string {
	return v.livingConditions
}

// PublishDate returns when the vacancy was first published.
func (v *Vacancy) PublishDate() time.Time {
	return v.publishDate
}

// EditDate returns when the vacancy was last edited.
func (v *Vacancy) EditDate() time.Time {
	return v.editDate
}

// Edit replaces the editable attributes in one validated step and stamps
// the edit date. The publish date and owning company are immutable.
func (v *Vacancy) Edit(
	title string,
	description string,
	candidateDescription string,
	position string,
	salaryMin float64,
	salaryMax float64,
	workMode WorkMode,
	livingConditions string,
) error {
	if err := errors.Join(
		v.setTitle(title),
		v.setPosition(position),
		v.setSalaryRange(salaryMin, salaryMax),
		v.setWorkMode(workMode),
	); err != nil {
		return err
	}

	v.description = description
	v.candidateDescription = candidateDescription
	v.livingConditions = livingConditions
	v.editDate = time.Now().UTC()
	return nil
}

func (v *Vacancy) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	v.id = id
	return nil
}

func (v *Vacancy) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	v.companyID = id
	return nil
}

func (v *Vacancy) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}

	v.title = title
	return nil
}

func (v *Vacancy) setPosition(position string) error {
	if position == "" {
		return ErrPositionIsRequired
	}

	v.position = position
	return nil
}

func (v *Vacancy) setSalaryRange(salaryMin, salaryMax float64) error {
	if salaryMin < 0 || salaryMin > SalaryCap {
		return errs.NewValueIsOutOfRangeError("salaryMin", salaryMin, 0, SalaryCap)
	}
	if salaryMax < 0 || salaryMax > SalaryCap {
		return errs.NewValueIsOutOfRangeError("salaryMax", salaryMax, 0, SalaryCap)
	}
	if salaryMin > salaryMax {
		return ErrSalaryRangeIsInvalid
	}

	v.salaryMin = salaryMin
	v.salaryMax = salaryMax
	return nil
}

func (v *Vacancy) setWorkMode(mode WorkMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}

	v.workMode = mode
	return nil
}
