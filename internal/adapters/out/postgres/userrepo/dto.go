// Package userrepo persists account aggregates with GORM.
package userrepo

import (
	"jobboard/internal/core/domain/model/account"
	"jobboard/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AppUserDTO represents the database structure for persisting accounts.
type AppUserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Email        string    `gorm:"type:varchar(255);not null"`
	Phone        string    `gorm:"type:varchar(64)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(32);not null"`
}

// TableName overrides GORM's default naming to use "app_users".
func (AppUserDTO) TableName() string {
	return "app_users"
}

func fromDomain(u *account.AppUser) AppUserDTO {
	return AppUserDTO{
		ID:           u.ID().Bytes(),
		Username:     u.Username(),
		Email:        u.Email(),
		Phone:        u.Phone(),
		PasswordHash: u.PasswordHash(),
		Role:         string(u.Role()),
	}
}

func toDomain(dto AppUserDTO) (*account.AppUser, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreAppUser(id, dto.Username, dto.Email, dto.Phone, dto.PasswordHash, account.Role(dto.Role))
}
