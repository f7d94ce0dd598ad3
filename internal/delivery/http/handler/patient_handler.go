package handler

import (
	"encoding/json"
	"net/http"

	"sepsis-screening-server/internal/delivery/dto"
	"sepsis-screening-server/internal/usecase"
	"sepsis-screening-server/pkg/response"
	"sepsis-screening-server/pkg/validator"

	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

// Register handles POST /api/personal/register.
func (h *PatientHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.PersonalRegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.patientUsecase.Register(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPhoneAlreadyRegistered:
			response.Error(w, http.StatusBadRequest, "Phone number already registered.")
		default:
			response.InternalServerError(w, "Failed to register patient")
		}
		return
	}

	response.JSON(w, http.StatusCreated, result)
}

// Login handles POST /api/personal/login.
func (h *PatientHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.PersonalLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.patientUsecase.Login(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidCredentials:
			response.Error(w, http.StatusBadRequest, "Invalid Patient ID or Password")
		default:
			response.InternalServerError(w, "Failed to login")
		}
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// SubmitReport handles POST /api/patient/report.
func (h *PatientHandler) SubmitReport(w http.ResponseWriter, r *http.Request) {
	var req dto.PatientReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	report, err := h.patientUsecase.SubmitReport(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to save report")
		return
	}

	response.JSON(w, http.StatusCreated, report)
}

// History handles GET /api/patient/history/{patientId}. A patient with no
// reports gets an empty array, not an error.
func (h *PatientHandler) History(w http.ResponseWriter, r *http.Request) {
	patientID := mux.Vars(r)["patientId"]

	reports, err := h.patientUsecase.History(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to load history")
		return
	}

	response.JSON(w, http.StatusOK, reports)
}
