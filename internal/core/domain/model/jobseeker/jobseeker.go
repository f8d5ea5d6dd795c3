package jobseeker

import (
	"errors"
	"time"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/guard"
)

const (
	// ExperienceMin is the lowest accepted years-of-experience value.
	ExperienceMin = 0
	// ExperienceMax is the highest accepted years-of-experience value.
	ExperienceMax = 100
)

// Domain errors for jobseeker operations.
var (
	ErrProfessionIsRequired      = errs.NewValueIsRequiredError("profession")
	ErrLocationIsRequired        = errs.NewValueIsRequiredError("location")
	ErrJobseekerIsNotConstructed = errors.New("Jobseeker must be created via NewJobseeker or RestoreJobseeker")
)

// Biography groups the free-form descriptive fields of a jobseeker profile.
// None of these fields enter the search index; they are stored only in the
// primary store and shown on the full profile page.
type Biography struct {
	PreviousWorkplace string
	PreviousPosition  string
	QuitReason        string
	FamilyConditions  string
	LivingConditions  string
	Preferences       string
	SelfDescription   string
}

// Jobseeker is the aggregate root for a jobseeker profile.
// It extends an AppUser account with profession data. The searchable subset
// of its attributes (profession, experience, education, location) is
// projected into the search index keyed by the owning AppUser ID.
type Jobseeker struct {
	id           kernel.UUID
	appUserID    kernel.UUID
	profession   string
	experience   float64
	education    Degree
	location     string
	biography    Biography
	isEmployed   bool
	registerDate time.Time

	guard guard.ConstructorGuard
}

// NewJobseeker creates a fresh jobseeker profile for the given account.
// The registration date is set to the current UTC time.
func NewJobseeker(
	id kernel.UUID,
	appUserID kernel.UUID,
	profession string,
	experience float64,
	education Degree,
	location string,
	biography Biography,
) (*Jobseeker, error) {
	js := &Jobseeker{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		js.setID(id),
		js.setAppUserID(appUserID),
		js.setProfession(profession),
		js.setExperience(experience),
		js.setEducation(education),
		js.setLocation(location),
	); err != nil {
		return nil, err
	}

	js.biography = biography
	js.registerDate = time.Now().UTC()
	return js, nil
}

// RestoreJobseeker reconstructs a jobseeker aggregate from persistent storage.
func RestoreJobseeker(
	id kernel.UUID,
	appUserID kernel.UUID,
	profession string,
	experience float64,
	education Degree,
	location string,
	biography Biography,
	isEmployed bool,
	registerDate time.Time,
) (*Jobseeker, error) {
	js := &Jobseeker{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		js.setID(id),
		js.setAppUserID(appUserID),
		js.setProfession(profession),
		js.setExperience(experience),
		js.setEducation(education),
		js.setLocation(location),
	); err != nil {
		return nil, err
	}

	js.biography = biography
	js.isEmployed = isEmployed
	js.registerDate = registerDate
	return js, nil
}

// Validate checks that the Jobseeker was built through a constructor.
func (j *Jobseeker) Validate() error {
	if j == nil {
		return ErrJobseekerIsNotConstructed
	}
	return j.guard.Validate(ErrJobseekerIsNotConstructed)
}

// ID returns the jobseeker's own identifier.
func (j *Jobseeker) ID() kernel.UUID {
	return j.id
}

// AppUserID returns the identifier of the owning account.
// Its string form is the key of the jobseeker's search document.
func (j *Jobseeker) AppUserID() kernel.UUID {
	return j.appUserID
}

// Profession returns the declared profession.
func (j *Jobseeker) Profession() string {
	return j.profession
}

// Experience returns the declared years of experience.
func (j *Jobseeker) Experience() float64 {
	return j.experience
}

// Education returns the declared education degree.
func (j *Jobseeker) Education() Degree {
	return j.education
}

// Location returns the declared location.
func (j *Jobseeker) Location() string {
	return j.location
}

// Biography returns the non-searchable descriptive fields.
func (j *Jobseeker) Biography() Biography {
	return j.biography
}

// IsEmployed reports whether the jobseeker is marked as employed.
func (j *Jobseeker) IsEmployed() bool {
	return j.isEmployed
}

// RegisterDate returns when the profile was registered.
func (j *Jobseeker) RegisterDate() time.Time {
	return j.registerDate
}

// Edit replaces the editable profile attributes in one validated step.
// The register date and owning account are immutable.
func (j *Jobseeker) Edit(
	profession string,
	experience float64,
	education Degree,
	location string,
	biography Biography,
	isEmployed bool,
) error {
	if err := errors.Join(
		j.setProfession(profession),
		j.setExperience(experience),
		j.setEducation(education),
		j.setLocation(location),
	); err != nil {
		return err
	}

	j.biography = biography
	j.isEmployed = isEmployed
	return nil
}

func (j *Jobseeker) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	j.id = id
	return nil
}

func (j *Jobseeker) setAppUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	j.appUserID = id
	return nil
}

func (j *Jobseeker) setProfession(profession string) error {
	if profession == "" {
		return ErrProfessionIsRequired
	}

	j.profession = profession
	return nil
}

func (j *Jobseeker) setExperience(experience float64) error {
	if experience < ExperienceMin || experience > ExperienceMax {
		return errs.NewValueIsOutOfRangeError("experience", experience, ExperienceMin, ExperienceMax)
	}

	j.experience = experience
	return nil
}

func (j *Jobseeker) setEducation(education Degree) error {
	if err := education.Validate(); err != nil {
		return err
	}

	j.education = education
	return nil
}

func (j *Jobseeker) setLocation(location string) error {
	if location == "" {
		return ErrLocationIsRequired
	}

	j.location = location
	return nil
}
