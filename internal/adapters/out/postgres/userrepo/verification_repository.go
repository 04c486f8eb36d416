package userrepo

import (
	"context"
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormVerificationRepository struct {
	db *gorm.DB
}

func NewGormVerificationRepository(db *gorm.DB) *GormVerificationRepository {
	return &GormVerificationRepository{db: db}
}

// Save stores v and drops the user's previous code.
func (r *GormVerificationRepository) Save(ctx context.Context, v user.Verification) error {
	if err := v.UserID().Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("user_id = ?", v.UserID().Bytes()).Delete(&VerificationDTO{}).Error; err != nil {
		return err
	}

	dto := VerificationDTO{Code: v.Code(), UserID: v.UserID().Bytes()}
	return db.Create(&dto).Error
}

func (r *GormVerificationRepository) GetByCode(ctx context.Context, code string) (user.Verification, error) {
	var dto VerificationDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.Verification{}, errs.NewObjectNotFoundError("verification code", code)
		}
		return user.Verification{}, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return user.Verification{}, err
	}
	return user.RestoreVerification(dto.Code, userID)
}

func (r *GormVerificationRepository) DeleteByUser(ctx context.Context, userID kernel.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID.Bytes()).Delete(&VerificationDTO{}).Error
}
