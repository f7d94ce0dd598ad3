package repository

import (
	"context"

	"sepsis-screening-server/internal/domain/entity"

	"gorm.io/gorm"
)

// HospitalRepository reads the administrative hospital records. Rows are
// maintained out of band; nothing here mutates them.
type HospitalRepository interface {
	FindByHospitalID(ctx context.Context, db *gorm.DB, hospitalID string) (*entity.Hospital, error)
}
