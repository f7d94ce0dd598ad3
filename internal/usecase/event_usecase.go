package usecase

import (
	"context"

	"sepsis-screening-server/internal/delivery/dto"
	"sepsis-screening-server/internal/domain/entity"
	"sepsis-screening-server/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type EventUsecase interface {
	Register(ctx context.Context, req *dto.EventRegistrationRequest) (*entity.EventRegistration, error)
}

type eventUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	eventRepo repository.EventRegistrationRepository
}

func NewEventUsecase(db *gorm.DB, log *logrus.Logger, eventRepo repository.EventRegistrationRepository) EventUsecase {
	return &eventUsecase{
		db:        db,
		log:       log,
		eventRepo: eventRepo,
	}
}

func (u *eventUsecase) Register(ctx context.Context, req *dto.EventRegistrationRequest) (*entity.EventRegistration, error) {
	registration := &entity.EventRegistration{
		FullName:      req.FullName,
		Email:         req.Email,
		ContactNumber: req.ContactNumber,
		EventName:     req.EventName,
		EventPrice:    req.EventPrice,
	}

	if err := u.eventRepo.Create(ctx, u.db, registration); err != nil {
		u.log.Warnf("Failed to create event registration: %+v", err)
		return nil, err
	}

	return registration, nil
}
