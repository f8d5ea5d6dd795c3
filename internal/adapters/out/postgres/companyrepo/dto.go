// Package companyrepo persists company aggregates with GORM.
package companyrepo

import (
	"time"

	"jobboard/internal/core/domain/model/company"
	"jobboard/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CompanyDTO represents the database structure for persisting companies.
type CompanyDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	AppUserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	SelfDescription string    `gorm:"type:text"`
	Location        string    `gorm:"type:varchar(255)"`
	RegisterDate    time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "companies".
func (CompanyDTO) TableName() string {
	return "companies"
}

func fromDomain(c *company.Company) CompanyDTO {
	return CompanyDTO{
		ID:              c.ID().Bytes(),
		AppUserID:       c.AppUserID().Bytes(),
		SelfDescription: c.SelfDescription(),
		Location:        c.Location(),
		RegisterDate:    c.RegisterDate(),
	}
}

func toDomain(dto CompanyDTO) (*company.Company, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	appUserID, err := kernel.UUIDFromBytes(dto.AppUserID[:])
	if err != nil {
		return nil, err
	}

	return company.RestoreCompany(id, appUserID, dto.SelfDescription, dto.Location, dto.RegisterDate)
}
