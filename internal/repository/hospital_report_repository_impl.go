package repository

import (
	"context"

	"sepsis-screening-server/internal/domain/entity"
	domainRepo "sepsis-screening-server/internal/domain/repository"

	"gorm.io/gorm"
)

type hospitalReportRepository struct{}

func NewHospitalReportRepository() domainRepo.HospitalReportRepository {
	return &hospitalReportRepository{}
}

func (r *hospitalReportRepository) Create(ctx context.Context, db *gorm.DB, report *entity.HospitalReport) error {
	return db.WithContext(ctx).Create(report).Error
}

func (r *hospitalReportRepository) FindByHospitalID(ctx context.Context, db *gorm.DB, hospitalID string) ([]entity.HospitalReport, error) {
	reports := make([]entity.HospitalReport, 0)
	err := db.WithContext(ctx).
		Where("hospital_id = ?", hospitalID).
		Order("timestamp DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}
