package repository

import (
	"context"

	"sepsis-screening-server/internal/domain/entity"

	"gorm.io/gorm"
)

type HospitalReportRepository interface {
	Create(ctx context.Context, db *gorm.DB, report *entity.HospitalReport) error
	// FindByHospitalID returns reports newest first.
	FindByHospitalID(ctx context.Context, db *gorm.DB, hospitalID string) ([]entity.HospitalReport, error)
}
