package engagement

import (
	"errors"
	"time"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/guard"
)

// ErrOfferIsNotConstructed is returned when using an improperly initialized Offer.
var ErrOfferIsNotConstructed = errors.New("Offer must be created via NewOffer or RestoreOffer")

// Offer is a company's invitation sent to a jobseeker for a vacancy.
// It starts in PENDING status and is resolved once by the jobseeker.
type Offer struct {
	id                kernel.UUID
	vacancyID         kernel.UUID
	jobseekerID       kernel.UUID
	status            Status
	companyMessage    string
	jobseekerResponse string
	creationDate      time.Time

	guard guard.ConstructorGuard
}

// NewOffer creates a pending offer with the company's message.
func NewOffer(id, vacancyID, jobseekerID kernel.UUID, companyMessage string) (*Offer, error) {
	o := &Offer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		vacancyID.Validate(),
		jobseekerID.Validate(),
	); err != nil {
		return nil, err
	}

	o.id = id
	o.vacancyID = vacancyID
	o.jobseekerID = jobseekerID
	o.status = StatusPending
	o.companyMessage = companyMessage
	o.creationDate = time.Now().UTC()
	return o, nil
}

// RestoreOffer reconstructs an offer from persistent storage.
func RestoreOffer(
	id kernel.UUID,
	vacancyID kernel.UUID,
	jobseekerID kernel.UUID,
	status Status,
	companyMessage string,
	jobseekerResponse string,
	creationDate time.Time,
) (*Offer, error) {
	o := &Offer{
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

	o.id = id
	o.vacancyID = vacancyID
	o.jobseekerID = jobseekerID
	o.status = status
	o.companyMessage = companyMessage
	o.jobseekerResponse = jobseekerResponse
	o.creationDate = creationDate
	return o, nil
}

// Validate checks that the Offer was built through a constructor.
func (o *Offer) Validate() error {
	if o == nil {
		return ErrOfferIsNotConstructed
	}
	return o.guard.Validate(ErrOfferIsNotConstructed)
}

func (o *Offer) ID() kernel.UUID           { return o.id }
func (o *Offer) VacancyID() kernel.UUID    { return o.vacancyID }
func (o *Offer) JobseekerID() kernel.UUID  { return o.jobseekerID }
func (o *Offer) Status() Status            { return o.status }
func (o *Offer) CompanyMessage() string    { return o.companyMessage }
func (o *Offer) JobseekerResponse() string { return o.jobseekerResponse }
func (o *Offer) CreationDate() time.Time   { return o.creationDate }

// React moves a pending offer to ACCEPTED or REJECTED and records the
// jobseeker's response text. Reacting twice is an error.
func (o *Offer) React(status Status, jobseekerResponse string) error {
	if o.status != StatusPending {
		return ErrAlreadyResolved
	}
	if err := status.Validate(); err != nil {
		return err
	}
	if status == StatusPending {
		return ErrAlreadyResolved
	}

	o.status = status
	o.jobseekerResponse = jobseekerResponse
	return nil
}
