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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrPhoneAlreadyRegistered = errors.New("phone number already registered")
	ErrInvalidCredentials     = errors.New("invalid patient id or password")
	ErrPatientIDExhausted     = errors.New("could not allocate a unique patient id")
)

// patientIDAttempts bounds regeneration when a generated ID collides with
// an existing row.
const patientIDAttempts = 3

type PatientUsecase interface {
	Register(ctx context.Context, req *dto.PersonalRegisterRequest) (*dto.PersonalRegisterResponse, error)
	Login(ctx context.Context, req *dto.PersonalLoginRequest) (*dto.LoginResponse, error)
	SubmitReport(ctx context.Context, req *dto.PatientReportRequest) (*entity.PatientReport, error)
	History(ctx context.Context, patientID string) ([]entity.PatientReport, error)
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	reportRepo  repository.PatientReportRepository
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	reportRepo repository.PatientReportRepository,
) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
		reportRepo:  reportRepo,
	}
}

func (u *patientUsecase) Register(ctx context.Context, req *dto.PersonalRegisterRequest) (*dto.PersonalRegisterResponse, error) {
	// Use the provided password or generate a one-time credential. The
	// plain value is returned to the caller exactly once; only the hash
	// is stored.
	password := req.Password
	if password == "" {
		password = identifier.NewPassword()
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	var patientID string
	for attempt := 0; attempt < patientIDAttempts; attempt++ {
		patientID = identifier.NewPatientID()

		patient := &entity.Patient{
			FullName:    req.FullName,
			PhoneNumber: req.PhoneNumber,
			PatientID:   patientID,
			Password:    string(hashed),
		}

		err = u.patientRepo.Create(ctx, u.db, patient)
		if err == nil {
			return &dto.PersonalRegisterResponse{
				Message:   "Registration successful",
				PatientID: patientID,
				Password:  password,
			}, nil
		}
		if isDuplicateKeyError(err, "uni_patients_phone_number") {
			return nil, ErrPhoneAlreadyRegistered
		}
		if isDuplicateKeyError(err, "uni_patients_patient_id") {
			u.log.Warnf("Patient ID collision on %s, regenerating", patientID)
			continue
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	u.log.Errorf("Exhausted %d patient ID generation attempts", patientIDAttempts)
	return nil, ErrPatientIDExhausted
}

func (u *patientUsecase) Login(ctx context.Context, req *dto.PersonalLoginRequest) (*dto.LoginResponse, error) {
	patient, err := u.patientRepo.FindByPatientID(ctx, u.db, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(patient.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &dto.LoginResponse{
		Message: "Login successful",
		User:    converter.PatientToUserInfo(patient),
	}, nil
}

func (u *patientUsecase) SubmitReport(ctx context.Context, req *dto.PatientReportRequest) (*entity.PatientReport, error) {
	report := &entity.PatientReport{
		PatientID:  req.PatientID,
		RespRate:   req.RespRate,
		SysBP:      req.SysBP,
		GCS:        req.GCS,
		QsofaScore: *req.QsofaScore,
		RiskStatus: req.RiskStatus,
	}

	if err := u.reportRepo.Create(ctx, u.db, report); err != nil {
		u.log.Warnf("Failed to create patient report: %+v", err)
		return nil, err
	}

	return report, nil
}

func (u *patientUsecase) History(ctx context.Context, patientID string) ([]entity.PatientReport, error) {
	reports, err := u.reportRepo.FindByPatientID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to load patient history: %+v", err)
		return nil, err
	}
	return reports, nil
}
