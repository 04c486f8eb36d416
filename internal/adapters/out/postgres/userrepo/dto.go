package userrepo

import (
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"

	"github.com/google/uuid"
)

type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"size:16;not null"`
	Verified     bool      `gorm:"not null;default:false"`
}

func (UserDTO) TableName() string {
	return "users"
}

type VerificationDTO struct {
	Code   string    `gorm:"primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
}

func (VerificationDTO) TableName() string {
	return "verifications"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:           u.ID().Bytes(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		Verified:     u.Verified(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}
	return user.RestoreUser(id, dto.Email, dto.PasswordHash, role, dto.Verified)
}
