package repository

import (
	"context"

	"sepsis-screening-server/internal/domain/entity"
	domainRepo "sepsis-screening-server/internal/domain/repository"

	"gorm.io/gorm"
)

type eventRegistrationRepository struct{}

func NewEventRegistrationRepository() domainRepo.EventRegistrationRepository {
	return &eventRegistrationRepository{}
}

func (r *eventRegistrationRepository) Create(ctx context.Context, db *gorm.DB, registration *entity.EventRegistration) error {
	return db.WithContext(ctx).Create(registration).Error
}
