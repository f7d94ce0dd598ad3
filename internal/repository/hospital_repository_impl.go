package repository

import (
	"context"
	"errors"

	"sepsis-screening-server/internal/domain/entity"
	domainRepo "sepsis-screening-server/internal/domain/repository"

	"gorm.io/gorm"
)

type hospitalRepository struct{}

func NewHospitalRepository() domainRepo.HospitalRepository {
	return &hospitalRepository{}
}

func (r *hospitalRepository) FindByHospitalID(ctx context.Context, db *gorm.DB, hospitalID string) (*entity.Hospital, error) {
	var hospital entity.Hospital
	err := db.WithContext(ctx).Where("hospital_id = ?", hospitalID).First(&hospital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hospital, nil
}
