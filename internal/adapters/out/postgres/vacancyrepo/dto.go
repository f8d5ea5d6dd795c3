// Package vacancyrepo persists vacancy aggregates with GORM.
package vacancyrepo

import (
	"time"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/core/domain/model/vacancy"

	"github.com/google/uuid"
)

// VacancyDTO represents the database structure for persisting vacancies.
type VacancyDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID            uuid.UUID `gorm:"type:uuid;not null;index"`
	Title                string    `gorm:"type:varchar(255);not null"`
	Description          string    `gorm:"type:text"`
	CandidateDescription string    `gorm:"type:text"`
	Position             string    `gorm:"type:varchar(255);not null"`
	SalaryMin            float64   `gorm:"not null"`
	SalaryMax            float64   `gorm:"not null"`
	WorkMode             int       `gorm:"type:int;not null"`
	LivingConditions     string    `gorm:"type:text"`
	PublishDate          time.Time `gorm:"not null;index"`
	EditDate             time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "vacancies".
func (VacancyDTO) TableName() string {
	return "vacancies"
}

func fromDomain(v *vacancy.Vacancy) VacancyDTO {
	return VacancyDTO{
		ID:                   v.ID().Bytes(),
		CompanyID:            v.CompanyID().Bytes(),
		Title:                v.Title(),
		Description:          v.Description(),
		CandidateDescription: v.CandidateDescription(),
		Position:             v.Position(),
		SalaryMin:            v.SalaryMin(),
		SalaryMax:            v.SalaryMax(),
		WorkMode:             int(v.WorkMode()),
		LivingConditions:     v.LivingConditions(),
		PublishDate:          v.PublishDate(),
		EditDate:             v.EditDate(),
	}
}

func toDomain(dto VacancyDTO) (*vacancy.Vacancy, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}

	return vacancy.RestoreVacancy(
		id,
		companyID,
		dto.Title,
		dto.Description,
		dto.CandidateDescription,
		dto.Position,
		dto.SalaryMin,
		dto.SalaryMax,
		vacancy.WorkMode(dto.WorkMode),
		dto.LivingConditions,
		dto.PublishDate,
		dto.EditDate,
	)
}
