package repository

import (
	"context"
	"errors"

	"sepsis-screening-server/internal/domain/entity"
	domainRepo "sepsis-screening-server/internal/domain/repository"

	"gorm.io/gorm"
)

type allowedHospitalRepository struct{}

func NewAllowedHospitalRepository() domainRepo.AllowedHospitalRepository {
	return &allowedHospitalRepository{}
}

func (r *allowedHospitalRepository) FindByHospitalID(ctx context.Context, db *gorm.DB, hospitalID string) (*entity.AllowedHospital, error) {
	var hospital entity.AllowedHospital
	err := db.WithContext(ctx).Where("hospital_id = ?", hospitalID).First(&hospital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hospital, nil
}
