package repository

import (
	"context"
	"time"

	"sepsis-screening-server/internal/domain/entity"

	"gorm.io/gorm"
)

type ReadingRepository interface {
	Create(ctx context.Context, db *gorm.DB, reading *entity.Reading) error
	// FindByPatientID returns readings newest first.
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID string) ([]entity.Reading, error)
	// DeleteOlderThan removes readings with a timestamp before cutoff and
	// reports how many rows were deleted.
	DeleteOlderThan(ctx context.Context, db *gorm.DB, cutoff time.Time) (int64, error)
}
