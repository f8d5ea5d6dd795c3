// Package jobseekerrepo persists jobseeker aggregates with GORM.
// The biography fields live flattened in the jobseekers table; only the
// searchable subset of columns is ever projected into the search index.
package jobseekerrepo

import (
	"time"

	"jobboard/internal/core/domain/model/jobseeker"
	"jobboard/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobseekerDTO represents the database structure for persisting jobseekers.
type JobseekerDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	AppUserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Profession        string    `gorm:"type:varchar(255);not null"`
	Experience        float64   `gorm:"not null"`
	Education         int       `gorm:"type:int;not null"`
	Location          string    `gorm:"type:varchar(255);not null"`
	PreviousWorkplace string    `gorm:"type:text"`
	PreviousPosition  string    `gorm:"type:text"`
	QuitReason        string    `gorm:"type:text"`
	FamilyConditions  string    `gorm:"type:text"`
	LivingConditions  string    `gorm:"type:text"`
	Preferences       string    `gorm:"type:text"`
	SelfDescription   string    `gorm:"type:text"`
	IsEmployed        bool      `gorm:"not null"`
	RegisterDate      time.Time `gorm:"not null;index"`
}

// TableName overrides GORM's default naming to use "jobseekers".
func (JobseekerDTO) TableName() string {
	return "jobseekers"
}

func fromDomain(js *jobseeker.Jobseeker) JobseekerDTO {
	bio := js.Biography()
	return JobseekerDTO{
		ID:                js.ID().Bytes(),
		AppUserID:         js.AppUserID().Bytes(),
		Profession:        js.Profession(),
		Experience:        js.Experience(),
		Education:         int(js.Education()),
		Location:          js.Location(),
		PreviousWorkplace: bio.PreviousWorkplace,
		PreviousPosition:  bio.PreviousPosition,
		QuitReason:        bio.QuitReason,
		FamilyConditions:  bio.FamilyConditions,
		LivingConditions:  bio.LivingConditions,
		Preferences:       bio.Preferences,
		SelfDescription:   bio.SelfDescription,
		IsEmployed:        js.IsEmployed(),
		RegisterDate:      js.RegisterDate(),
	}
}

func toDomain(dto JobseekerDTO) (*jobseeker.Jobseeker, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	appUserID, err := kernel.UUIDFromBytes(dto.AppUserID[:])
	if err != nil {
		return nil, err
	}

	bio := jobseeker.Biography{
		PreviousWorkplace: dto.PreviousWorkplace,
		PreviousPosition:  dto.PreviousPosition,
		QuitReason:        dto.QuitReason,
		FamilyConditions:  dto.FamilyConditions,
		LivingConditions:  dto.LivingConditions,
		Preferences:       dto.Preferences,
		SelfDescription:   dto.SelfDescription,
	}

	return jobseeker.RestoreJobseeker(
		id,
		appUserID,
		dto.Profession,
		dto.Experience,
		jobseeker.Degree(dto.Education),
		dto.Location,
		bio,
		dto.IsEmployed,
		dto.RegisterDate,
	)
}
