package repository

import (
	"context"

	"sepsis-screening-server/internal/domain/entity"
	domainRepo "sepsis-screening-server/internal/domain/repository"

	"gorm.io/gorm"
)

type patientReportRepository struct{}

func NewPatientReportRepository() domainRepo.PatientReportRepository {
	return &patientReportRepository{}
}

func (r *patientReportRepository) Create(ctx context.Context, db *gorm.DB, report *entity.PatientReport) error {
	return db.WithContext(ctx).Create(report).Error
}

func (r *patientReportRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID string) ([]entity.PatientReport, error) {
	reports := make([]entity.PatientReport, 0)
	err := db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("timestamp DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}
