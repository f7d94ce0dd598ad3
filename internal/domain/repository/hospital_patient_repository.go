package repository

import (
	"context"

	"sepsis-screening-server/internal/domain/entity"

	"gorm.io/gorm"
)

type HospitalPatientRepository interface {
	Create(ctx context.Context, db *gorm.DB, patient *entity.HospitalPatient) error
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID string) (*entity.HospitalPatient, error)
}
