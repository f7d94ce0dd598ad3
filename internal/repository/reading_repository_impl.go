package repository

import (
	"context"
	"time"

	"sepsis-screening-server/internal/domain/entity"
	domainRepo "sepsis-screening-server/internal/domain/repository"

	"gorm.io/gorm"
)

type readingRepository struct{}

func NewReadingRepository() domainRepo.ReadingRepository {
	return &readingRepository{}
}

func (r *readingRepository) Create(ctx context.Context, db *gorm.DB, reading *entity.Reading) error {
	return db.WithContext(ctx).Create(reading).Error
}

func (r *readingRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID string) ([]entity.Reading, error) {
	readings := make([]entity.Reading, 0)
	err := db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("timestamp DESC").
		Find(&readings).Error
	if err != nil {
		return nil, err
	}
	return readings, nil
}

func (r *readingRepository) DeleteOlderThan(ctx context.Context, db *gorm.DB, cutoff time.Time) (int64, error) {
	result := db.WithContext(ctx).
		Where("timestamp < ?", cutoff).
		Delete(&entity.Reading{})
	return result.RowsAffected, result.Error
}
