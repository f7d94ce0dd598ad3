package repository

import (
	"context"

	"sepsis-screening-server/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientReportRepository interface {
	Create(ctx context.Context, db *gorm.DB, report *entity.PatientReport) error
	// FindByPatientID returns reports newest first.
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID string) ([]entity.PatientReport, error)
}
