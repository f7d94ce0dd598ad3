package usecase

import (
	"context"
	"errors"

	"sepsis-screening-server/internal/converter"
	"sepsis-screening-server/internal/delivery/dto"
	"sepsis-screening-server/internal/domain/entity"
	"sepsis-screening-server/internal/domain/repository"
	"sepsis-screening-server/pkg/identifier"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrHospitalNotAllowed = errors.New("hospital id not on the allow-list")
	ErrPatientNotFound    = errors.New("patient not found")
)

// AllowListCache is a read-through cache in front of the allowed-hospital
// lookup. Get returns (nil, nil) on a miss; failures are tolerated by the
// caller and fall back to the repository.
type AllowListCache interface {
	Get(ctx context.Context, hospitalID string) (*entity.AllowedHospital, error)
	Set(ctx context.Context, hospital *entity.AllowedHospital) error
}

type HospitalUsecase interface {
	Login(ctx context.Context, hospitalID string) (*dto.HospitalLoginResponse, error)
	SubmitReport(ctx context.Context, req *dto.HospitalReportRequest) (*entity.HospitalReport, error)
	Reports(ctx context.Context, hospitalID string) ([]entity.HospitalReport, error)
	CheckPatient(ctx context.Context, patientID string) (*entity.HospitalPatient, error)
	RegisterPatient(ctx context.Context, req *dto.HospitalPatientRegisterRequest) (*dto.HospitalPatientRegisterResponse, error)
}

type hospitalUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	allowRepo    repository.AllowedHospitalRepository
	hospitalRepo repository.HospitalRepository
	reportRepo   repository.HospitalReportRepository
	patientRepo  repository.HospitalPatientRepository
	cache        AllowListCache
}

func NewHospitalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	allowRepo repository.AllowedHospitalRepository,
	hospitalRepo repository.HospitalRepository,
	reportRepo repository.HospitalReportRepository,
	patientRepo repository.HospitalPatientRepository,
	cache AllowListCache,
) HospitalUsecase {
	return &hospitalUsecase{
		db:           db,
		log:          log,
		allowRepo:    allowRepo,
		hospitalRepo: hospitalRepo,
		reportRepo:   reportRepo,
		patientRepo:  patientRepo,
		cache:        cache,
	}
}

func (u *hospitalUsecase) Login(ctx context.Context, hospitalID string) (*dto.HospitalLoginResponse, error) {
	hospital, err := u.cache.Get(ctx, hospitalID)
	if err != nil {
		// A broken cache must not block logins.
		u.log.Warnf("Allow-list cache lookup failed: %+v", err)
		hospital = nil
	}

	if hospital == nil {
		hospital, err = u.allowRepo.FindByHospitalID(ctx, u.db, hospitalID)
		if err != nil {
			u.log.Warnf("Failed to look up allowed hospital: %+v", err)
			return nil, err
		}
		if hospital == nil {
			return nil, ErrHospitalNotAllowed
		}
		if err := u.cache.Set(ctx, hospital); err != nil {
			u.log.Warnf("Failed to cache allowed hospital: %+v", err)
		}
	}

	if !hospital.IsActive() {
		return nil, ErrHospitalNotAllowed
	}

	// The administrative record is optional; login succeeds without it.
	detail, err := u.hospitalRepo.FindByHospitalID(ctx, u.db, hospitalID)
	if err != nil {
		u.log.Warnf("Failed to load hospital record: %+v", err)
		detail = nil
	}

	return converter.AllowedHospitalToLoginResponse(hospital, detail), nil
}

func (u *hospitalUsecase) SubmitReport(ctx context.Context, req *dto.HospitalReportRequest) (*entity.HospitalReport, error) {
	report := &entity.HospitalReport{
		HospitalID: req.HospitalID,
		PatientID:  req.PatientID,
		WardNumber: req.WardNumber,
		BedNumber:  req.BedNumber,
		RespRate:   req.RespRate,
		SysBP:      req.SysBP,
		GCS:        req.GCS,
		QsofaScore: *req.QsofaScore,
		RiskStatus: req.RiskStatus,
	}

	if err := u.reportRepo.Create(ctx, u.db, report); err != nil {
		u.log.Warnf("Failed to create hospital report: %+v", err)
		return nil, err
	}

	return report, nil
}

func (u *hospitalUsecase) Reports(ctx context.Context, hospitalID string) ([]entity.HospitalReport, error) {
	reports, err := u.reportRepo.FindByHospitalID(ctx, u.db, hospitalID)
	if err != nil {
		u.log.Warnf("Failed to load hospital reports: %+v", err)
		return nil, err
	}
	return reports, nil
}

func (u *hospitalUsecase) CheckPatient(ctx context.Context, patientID string) (*entity.HospitalPatient, error) {
	patient, err := u.patientRepo.FindByPatientID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find hospital patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return patient, nil
}

func (u *hospitalUsecase) RegisterPatient(ctx context.Context, req *dto.HospitalPatientRegisterRequest) (*dto.HospitalPatientRegisterResponse, error) {
	var patientID string
	for attempt := 0; attempt < patientIDAttempts; attempt++ {
		patientID = identifier.NewPatientID()

		patient := &entity.HospitalPatient{
			FullName:    req.FullName,
			PhoneNumber: req.PhoneNumber,
			PatientID:   patientID,
			Age:         req.Age,
			Gender:      req.Gender,
			History:     req.History,
		}

		err := u.patientRepo.Create(ctx, u.db, patient)
		if err == nil {
			return &dto.HospitalPatientRegisterResponse{
				Message:   "Registered",
				PatientID: patientID,
				Patient:   patient,
			}, nil
		}
		if isDuplicateKeyError(err, "uni_hospital_patients_phone_number") {
			return nil, ErrPhoneAlreadyRegistered
		}
		if isDuplicateKeyError(err, "uni_hospital_patients_patient_id") {
			u.log.Warnf("Patient ID collision on %s, regenerating", patientID)
			continue
		}
		u.log.Warnf("Failed to create hospital patient: %+v", err)
		return nil, err
	}

	u.log.Errorf("Exhausted %d patient ID generation attempts", patientIDAttempts)
	return nil, ErrPatientIDExhausted
}
