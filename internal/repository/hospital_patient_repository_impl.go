package repository

import (
	"context"
	"errors"

	"sepsis-screening-server/internal/domain/entity"
	domainRepo "sepsis-screening-server/internal/domain/repository"

	"gorm.io/gorm"
)

type hospitalPatientRepository struct{}

func NewHospitalPatientRepository() domainRepo.HospitalPatientRepository {
	return &hospitalPatientRepository{}
}

func (r *hospitalPatientRepository) Create(ctx context.Context, db *gorm.DB, patient *entity.HospitalPatient) error {
	return db.WithContext(ctx).Create(patient).Error
}

func (r *hospitalPatientRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID string) (*entity.HospitalPatient, error) {
	var patient entity.HospitalPatient
	err := db.WithContext(ctx).Where("patient_id = ?", patientID).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}
