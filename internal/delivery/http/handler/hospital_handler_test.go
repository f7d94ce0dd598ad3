package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sepsis-screening-server/internal/delivery/dto"
	"sepsis-screening-server/internal/domain/entity"
	"sepsis-screening-server/internal/usecase"
	"sepsis-screening-server/pkg/response"
	"sepsis-screening-server/pkg/validator"
)

type stubHospitalUsecase struct {
	loginResp    *dto.HospitalLoginResponse
	loginErr     error
	report       *entity.HospitalReport
	reportErr    error
	reports      []entity.HospitalReport
	reportsErr   error
	patient      *entity.HospitalPatient
	patientErr   error
	registerResp *dto.HospitalPatientRegisterResponse
	registerErr  error
}

func (s *stubHospitalUsecase) Login(ctx context.Context, hospitalID string) (*dto.HospitalLoginResponse, error) {
	return s.loginResp, s.loginErr
}

func (s *stubHospitalUsecase) SubmitReport(ctx context.Context, req *dto.HospitalReportRequest) (*entity.HospitalReport, error) {
	return s.report, s.reportErr
}

func (s *stubHospitalUsecase) Reports(ctx context.Context, hospitalID string) ([]entity.HospitalReport, error) {
	return s.reports, s.reportsErr
}

func (s *stubHospitalUsecase) CheckPatient(ctx context.Context, patientID string) (*entity.HospitalPatient, error) {
	return s.patient, s.patientErr
}

func (s *stubHospitalUsecase) RegisterPatient(ctx context.Context, req *dto.HospitalPatientRegisterRequest) (*dto.HospitalPatientRegisterResponse, error) {
	return s.registerResp, s.registerErr
}

func newHospitalHandlerForTest(stub *stubHospitalUsecase) *HospitalHandler {
	return NewHospitalHandler(stub, validator.NewValidator())
}

func TestHospitalLoginHandler_MissingID(t *testing.T) {
	h := newHospitalHandlerForTest(&stubHospitalUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/api/hospital/login", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var body response.ErrorBody
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Message != "Hospital ID required" {
		t.Errorf("unexpected message %q", body.Message)
	}
}

func TestHospitalLoginHandler_AccessDenied(t *testing.T) {
	h := newHospitalHandlerForTest(&stubHospitalUsecase{
		loginErr: usecase.ErrHospitalNotAllowed,
	})

	req := httptest.NewRequest(http.MethodPost, "/api/hospital/login",
		strings.NewReader(`{"hospitalId":"HOSP999"}`))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unknown hospital must be 401, got %d", rec.Code)
	}

	var body response.ErrorBody
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Message != "Invalid Hospital ID. Access Denied." {
		t.Errorf("unexpected message %q", body.Message)
	}
}

func TestHospitalLoginHandler_Success(t *testing.T) {
	h := newHospitalHandlerForTest(&stubHospitalUsecase{
		loginResp: &dto.HospitalLoginResponse{
			Message:    "Login successful",
			HospitalID: "HOSP001",
			Name:       "City General",
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/hospital/login",
		strings.NewReader(`{"hospitalId":"HOSP001"}`))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body dto.HospitalLoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Name != "City General" {
		t.Errorf("expected stored hospital name, got %q", body.Name)
	}
}

func TestHospitalCheckPatientHandler_NotFound(t *testing.T) {
	h := newHospitalHandlerForTest(&stubHospitalUsecase{
		patientErr: usecase.ErrPatientNotFound,
	})

	req := httptest.NewRequest(http.MethodPost, "/api/hospital/patient/check",
		strings.NewReader(`{"patientId":"PAT-00000"}`))
	rec := httptest.NewRecorder()

	h.CheckPatient(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var body response.ErrorBody
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Message != "Patient not found. Please register as new." {
		t.Errorf("unexpected message %q", body.Message)
	}
}

func TestHospitalCheckPatientHandler_Found(t *testing.T) {
	h := newHospitalHandlerForTest(&stubHospitalUsecase{
		patient: &entity.HospitalPatient{PatientID: "PAT-12345", FullName: "Jane Doe"},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/hospital/patient/check",
		strings.NewReader(`{"patientId":"PAT-12345"}`))
	rec := httptest.NewRecorder()

	h.CheckPatient(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body dto.HospitalPatientCheckResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Message != "Patient found" || body.Patient == nil || body.Patient.FullName != "Jane Doe" {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestHospitalRegisterPatientHandler_MissingFields(t *testing.T) {
	h := newHospitalHandlerForTest(&stubHospitalUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/api/hospital/patient/register",
		strings.NewReader(`{"fullName":"Jane Doe","age":40}`))
	rec := httptest.NewRecorder()

	h.RegisterPatient(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var body response.ErrorBody
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Message != "Missing required fields (Name, Age, Gender, or Contact Number)." {
		t.Errorf("unexpected message %q", body.Message)
	}
}

func TestHospitalRegisterPatientHandler_DuplicatePhone(t *testing.T) {
	h := newHospitalHandlerForTest(&stubHospitalUsecase{
		registerErr: usecase.ErrPhoneAlreadyRegistered,
	})

	req := httptest.NewRequest(http.MethodPost, "/api/hospital/patient/register",
		strings.NewReader(`{"fullName":"Jane Doe","age":40,"gender":"Female","phoneNumber":"555-0100"}`))
	rec := httptest.NewRecorder()

	h.RegisterPatient(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var body response.ErrorBody
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Message != "Phone number already registered. Please use 'Existing Patient' login." {
		t.Errorf("unexpected message %q", body.Message)
	}
}

func TestHospitalRegisterPatientHandler_Created(t *testing.T) {
	h := newHospitalHandlerForTest(&stubHospitalUsecase{
		registerResp: &dto.HospitalPatientRegisterResponse{
			Message:   "Registered",
			PatientID: "PAT-54321",
			Patient:   &entity.HospitalPatient{PatientID: "PAT-54321", FullName: "Jane Doe", Age: 40},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/hospital/patient/register",
		strings.NewReader(`{"fullName":"Jane Doe","age":40,"gender":"Female","phoneNumber":"555-0100"}`))
	rec := httptest.NewRecorder()

	h.RegisterPatient(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	var body dto.HospitalPatientRegisterResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Message != "Registered" || body.PatientID != "PAT-54321" {
		t.Errorf("unexpected body: %+v", body)
	}
}
