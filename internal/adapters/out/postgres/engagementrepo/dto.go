// Package engagementrepo persists job applications and offers with GORM.
package engagementrepo

import (
	"time"

	"jobboard/internal/core/domain/model/engagement"
	"jobboard/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobApplicationDTO represents the database structure for persisting applications.
type JobApplicationDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	VacancyID       uuid.UUID `gorm:"type:uuid;not null;index"`
	JobseekerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Status          string    `gorm:"type:varchar(32);not null"`
	CompanyResponse string    `gorm:"type:text"`
	CreationDate    time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "job_applications".
func (JobApplicationDTO) TableName() string {
	return "job_applications"
}

// OfferDTO represents the database structure for persisting offers.
type OfferDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	VacancyID         uuid.UUID `gorm:"type:uuid;not null;index"`
	JobseekerID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Status            string    `gorm:"type:varchar(32);not null"`
	CompanyMessage    string    `gorm:"type:text"`
	JobseekerResponse string    `gorm:"type:text"`
	CreationDate      time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "offers".
func (OfferDTO) TableName() string {
	return "offers"
}

func applicationFromDomain(a *engagement.JobApplication) JobApplicationDTO {
	return JobApplicationDTO{
		ID:              a.ID().Bytes(),
		VacancyID:       a.VacancyID().Bytes(),
		JobseekerID:     a.JobseekerID().Bytes(),
		Status:          string(a.Status()),
		CompanyResponse: a.CompanyResponse(),
		CreationDate:    a.CreationDate(),
	}
}

func applicationToDomain(dto JobApplicationDTO) (*engagement.JobApplication, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vacancyID, err := kernel.UUIDFromBytes(dto.VacancyID[:])
	if err != nil {
		return nil, err
	}

	jobseekerID, err := kernel.UUIDFromBytes(dto.JobseekerID[:])
	if err != nil {
		return nil, err
	}

	return engagement.RestoreJobApplication(
		id,
		vacancyID,
		jobseekerID,
		engagement.Status(dto.Status),
		dto.CompanyResponse,
		dto.CreationDate,
	)
}

func offerFromDomain(o *engagement.Offer) OfferDTO {
	return OfferDTO{
		ID:                o.ID().Bytes(),
		VacancyID:         o.VacancyID().Bytes(),
		JobseekerID:       o.JobseekerID().Bytes(),
		Status:            string(o.Status()),
		CompanyMessage:    o.CompanyMessage(),
		JobseekerResponse: o.JobseekerResponse(),
		CreationDate:      o.CreationDate(),
	}
}

func offerToDomain(dto OfferDTO) (*engagement.Offer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vacancyID, err := kernel.UUIDFromBytes(dto.VacancyID[:])
	if err != nil {
		return nil, err
	}

	jobseekerID, err := kernel.UUIDFromBytes(dto.JobseekerID[:])
	if err != nil {
		return nil, err
	}

	return engagement.RestoreOffer(
		id,
		vacancyID,
		jobseekerID,
		engagement.Status(dto.Status),
		dto.CompanyMessage,
		dto.JobseekerResponse,
		dto.CreationDate,
	)
}
