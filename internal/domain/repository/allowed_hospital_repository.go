package repository

import (
	"context"

	"sepsis-screening-server/internal/domain/entity"

	"gorm.io/gorm"
)

type AllowedHospitalRepository interface {
	FindByHospitalID(ctx context.Context, db *gorm.DB, hospitalID string) (*entity.AllowedHospital, error)
}
