package usecase

import (
	"context"

	"sepsis-screening-server/internal/delivery/dto"
	"sepsis-screening-server/internal/domain/entity"
	"sepsis-screening-server/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ReadingUsecase interface {
	Save(ctx context.Context, req *dto.ReadingRequest) (*entity.Reading, error)
	ListByPatient(ctx context.Context, patientID string) ([]entity.Reading, error)
}

type readingUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	readingRepo repository.ReadingRepository
}

func NewReadingUsecase(db *gorm.DB, log *logrus.Logger, readingRepo repository.ReadingRepository) ReadingUsecase {
	return &readingUsecase{
		db:          db,
		log:         log,
		readingRepo: readingRepo,
	}
}

func (u *readingUsecase) Save(ctx context.Context, req *dto.ReadingRequest) (*entity.Reading, error) {
	reading := &entity.Reading{
		PatientID:   req.PatientID,
		HeartRate:   req.HeartRate,
		Temperature: req.Temperature,
		SpO2:        req.SpO2,
	}

	if err := u.readingRepo.Create(ctx, u.db, reading); err != nil {
		u.log.Warnf("Failed to create reading: %+v", err)
		return nil, err
	}

	return reading, nil
}

func (u *readingUsecase) ListByPatient(ctx context.Context, patientID string) ([]entity.Reading, error) {
	readings, err := u.readingRepo.FindByPatientID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to list readings: %+v", err)
		return nil, err
	}
	return readings, nil
}
