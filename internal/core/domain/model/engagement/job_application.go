package engagement

import (
	"errors"
	"time"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/guard"
)

// Domain errors for engagement operations.
var (
	ErrJobApplicationIsNotConstructed = errors.New("JobApplication must be created via NewJobApplication or RestoreJobApplication")
	ErrAlreadyResolved                = errors.New("engagement has already been resolved")
)

// JobApplication is a jobseeker's application to a vacancy.
// It starts in PENDING status and is resolved once by the company.
type JobApplication struct {
	id              kernel.UUID
	vacancyID       kernel.UUID
	jobseekerID     kernel.UUID
	status          Status
	companyResponse string
	creationDate    time.Time

	guard guard.ConstructorGuard
}

// NewJobApplication creates a pending application.
func NewJobApplication(id, vacancyID, jobseekerID kernel.UUID) (*JobApplication, error) {
	a := &JobApplication{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		vacancyID.Validate(),
		jobseekerID.Validate(),
	); err != nil {
		return nil, err
	}

	a.id = id
	a.vacancyID = vacancyID
	a.jobseekerID = jobseekerID
	a.status = StatusPending
	a.creationDate = time.Now().UTC()
	return a, nil
}

// RestoreJobApplication reconstructs an application from persistent storage.
func RestoreJobApplication(
	id kernel.UUID,
	vacancyID kernel.UUID,
	jobseekerID kernel.UUID,
	status Status,
	companyResponse string,
	creationDate time.Time,
) (*JobApplication, error) {
	a := &JobApplication{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		vacancyID.Validate(),
		jobseekerID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	a.id = id
	a.vacancyID = vacancyID
	a.jobseekerID = jobseekerID
	a.status = status
	a.companyResponse = companyResponse
	a.creationDate = creationDate
	return a, nil
}

// Validate checks that the JobApplication was built through a constructor.
func (a *JobApplication) Validate() error {
	if a == nil {
		return ErrJobApplicationIsNotConstructed
	}
	return a.guard.Validate(ErrJobApplicationIsNotConstructed)
}

func (a *JobApplication) ID() kernel.UUID          { return a.id }
func (a *JobApplication) VacancyID() kernel.UUID   { return a.vacancyID }
func (a *JobApplication) JobseekerID() kernel.UUID { return a.jobseekerID }
func (a *JobApplication) Status() Status           { return a.status }
func (a *JobApplication) CompanyResponse() string  { return a.companyResponse }
func (a *JobApplication) CreationDate() time.Time  { return a.creationDate }

// Resolve moves a pending application to ACCEPTED or REJECTED and records
// the company's response text. Resolving twice is an error.
func (a *JobApplication) Resolve(status Status, companyResponse string) error {
	if a.status != StatusPending {
		return ErrAlreadyResolved
	}
	if err := status.Validate(); err != nil {
		return err
	}
	if status == StatusPending {
		return ErrAlreadyResolved
	}

	a.status = status
	a.companyResponse = companyResponse
	return nil
}
