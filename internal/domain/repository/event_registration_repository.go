package repository

import (
	"context"

	"sepsis-screening-server/internal/domain/entity"

	"gorm.io/gorm"
)

type EventRegistrationRepository interface {
	Create(ctx context.Context, db *gorm.DB, registration *entity.EventRegistration) error
}
