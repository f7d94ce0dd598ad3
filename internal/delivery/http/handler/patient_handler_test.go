package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sepsis-screening-server/internal/delivery/dto"
	"sepsis-screening-server/internal/domain/entity"
	"sepsis-screening-server/internal/usecase"
	"sepsis-screening-server/pkg/response"
	"sepsis-screening-server/pkg/validator"

	"github.com/gorilla/mux"
)

type stubPatientUsecase struct {
	registerResp *dto.PersonalRegisterResponse
	registerErr  error
	loginResp    *dto.LoginResponse
	loginErr     error
	report       *entity.PatientReport
	reportErr    error
	history      []entity.PatientReport
	historyErr   error
}

func (s *stubPatientUsecase) Register(ctx context.Context, req *dto.PersonalRegisterRequest) (*dto.PersonalRegisterResponse, error) {
	return s.registerResp, s.registerErr
}

func (s *stubPatientUsecase) Login(ctx context.Context, req *dto.PersonalLoginRequest) (*dto.LoginResponse, error) {
	return s.loginResp, s.loginErr
}

func (s *stubPatientUsecase) SubmitReport(ctx context.Context, req *dto.PatientReportRequest) (*entity.PatientReport, error) {
	return s.report, s.reportErr
}

func (s *stubPatientUsecase) History(ctx context.Context, patientID string) ([]entity.PatientReport, error) {
	return s.history, s.historyErr
}

func newPatientHandlerForTest(stub *stubPatientUsecase) *PatientHandler {
	return NewPatientHandler(stub, validator.NewValidator())
}

func TestPatientRegisterHandler_Created(t *testing.T) {
	h := newPatientHandlerForTest(&stubPatientUsecase{
		registerResp: &dto.PersonalRegisterResponse{
			Message:   "Registration successful",
			PatientID: "PAT-54321",
			Password:  "a1b2c3d4",
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/personal/register",
		strings.NewReader(`{"fullName":"Jane Doe","phoneNumber":"555-0100"}`))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	var body dto.PersonalRegisterResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.PatientID != "PAT-54321" || body.Password != "a1b2c3d4" {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestPatientRegisterHandler_DuplicatePhone(t *testing.T) {
	h := newPatientHandlerForTest(&stubPatientUsecase{
		registerErr: usecase.ErrPhoneAlreadyRegistered,
	})

	req := httptest.NewRequest(http.MethodPost, "/api/personal/register",
		strings.NewReader(`{"fullName":"Jane Doe","phoneNumber":"555-0100"}`))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var body response.ErrorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Message != "Phone number already registered." {
		t.Errorf("unexpected message %q", body.Message)
	}
}

func TestPatientRegisterHandler_MissingFields(t *testing.T) {
	h := newPatientHandlerForTest(&stubPatientUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/api/personal/register",
		strings.NewReader(`{"fullName":"Jane Doe"}`))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing phone number, got %d", rec.Code)
	}
}

func TestPatientLoginHandler_InvalidCredentials(t *testing.T) {
	h := newPatientHandlerForTest(&stubPatientUsecase{
		loginErr: usecase.ErrInvalidCredentials,
	})

	req := httptest.NewRequest(http.MethodPost, "/api/personal/login",
		strings.NewReader(`{"patientId":"PAT-12345","password":"nope"}`))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var body response.ErrorBody
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Message != "Invalid Patient ID or Password" {
		t.Errorf("unexpected message %q", body.Message)
	}
}

func TestPatientLoginHandler_Success(t *testing.T) {
	h := newPatientHandlerForTest(&stubPatientUsecase{
		loginResp: &dto.LoginResponse{
			Message: "Login successful",
			User:    dto.UserInfo{ID: "PAT-12345", Name: "Jane Doe", Role: "patient"},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/personal/login",
		strings.NewReader(`{"patientId":"PAT-12345","password":"secret99"}`))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body dto.LoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.User.Role != "patient" || body.User.Name != "Jane Doe" {
		t.Errorf("unexpected user payload: %+v", body.User)
	}
}

func TestPatientHistoryHandler_NewestFirst(t *testing.T) {
	t1 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	h := newPatientHandlerForTest(&stubPatientUsecase{
		history: []entity.PatientReport{
			{PatientID: "PAT-12345", Timestamp: t2},
			{PatientID: "PAT-12345", Timestamp: t1},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/patient/history/PAT-12345", nil)
	req = mux.SetURLVars(req, map[string]string{"patientId": "PAT-12345"})
	rec := httptest.NewRecorder()

	h.History(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body []entity.PatientReport
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if len(body) != 2 || !body[0].Timestamp.After(body[1].Timestamp) {
		t.Errorf("expected newest-first history, got %+v", body)
	}
}

func TestPatientHistoryHandler_EmptyArray(t *testing.T) {
	h := newPatientHandlerForTest(&stubPatientUsecase{
		history: make([]entity.PatientReport, 0),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/patient/history/PAT-99999", nil)
	req = mux.SetURLVars(req, map[string]string{"patientId": "PAT-99999"})
	rec := httptest.NewRecorder()

	h.History(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("zero matches must be 200, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("expected empty JSON array, got %q", got)
	}
}

func TestPatientReportHandler_Created(t *testing.T) {
	h := newPatientHandlerForTest(&stubPatientUsecase{
		report: &entity.PatientReport{PatientID: "PAT-12345", QsofaScore: 2, RiskStatus: "HIGH"},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/patient/report",
		strings.NewReader(`{"patientId":"PAT-12345","respRate":24,"sysBp":95,"gcs":14,"qsofaScore":2,"riskStatus":"HIGH"}`))
	rec := httptest.NewRecorder()

	h.SubmitReport(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestPatientReportHandler_QsofaZeroIsValid(t *testing.T) {
	h := newPatientHandlerForTest(&stubPatientUsecase{
		report: &entity.PatientReport{PatientID: "PAT-12345"},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/patient/report",
		strings.NewReader(`{"patientId":"PAT-12345","respRate":16,"sysBp":120,"gcs":15,"qsofaScore":0,"riskStatus":"LOW"}`))
	rec := httptest.NewRecorder()

	h.SubmitReport(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("a zero qSOFA score is valid, got %d (%s)", rec.Code, rec.Body.String())
	}
}
