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

type HospitalHandler struct {
	hospitalUsecase usecase.HospitalUsecase
	validator       *validator.CustomValidator
}

func NewHospitalHandler(hospitalUsecase usecase.HospitalUsecase, validator *validator.CustomValidator) *HospitalHandler {
	return &HospitalHandler{
		hospitalUsecase: hospitalUsecase,
		validator:       validator,
	}
}

// Login handles POST /api/hospital/login. An unknown or inactive hospital
// ID yields 401, not 404: the miss means "not authorized", not "absent".
func (h *HospitalHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.HospitalLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.HospitalID == "" {
		response.Error(w, http.StatusBadRequest, "Hospital ID required")
		return
	}

	result, err := h.hospitalUsecase.Login(r.Context(), req.HospitalID)
	if err != nil {
		switch err {
		case usecase.ErrHospitalNotAllowed:
			response.Unauthorized(w, "Invalid Hospital ID. Access Denied.")
		default:
			response.InternalServerError(w, "Failed to login")
		}
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// SubmitReport handles POST /api/hospital/report.
func (h *HospitalHandler) SubmitReport(w http.ResponseWriter, r *http.Request) {
	var req dto.HospitalReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	report, err := h.hospitalUsecase.SubmitReport(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to save report")
		return
	}

	response.JSON(w, http.StatusCreated, report)
}

// Reports handles GET /api/hospital/reports/{hospitalId}.
func (h *HospitalHandler) Reports(w http.ResponseWriter, r *http.Request) {
	hospitalID := mux.Vars(r)["hospitalId"]

	reports, err := h.hospitalUsecase.Reports(r.Context(), hospitalID)
	if err != nil {
		response.InternalServerError(w, "Failed to load reports")
		return
	}

	response.JSON(w, http.StatusOK, reports)
}

// CheckPatient handles POST /api/hospital/patient/check.
func (h *HospitalHandler) CheckPatient(w http.ResponseWriter, r *http.Request) {
	var req dto.HospitalPatientCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.hospitalUsecase.CheckPatient(r.Context(), req.PatientID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found. Please register as new.")
		default:
			response.InternalServerError(w, "Failed to check patient")
		}
		return
	}

	response.JSON(w, http.StatusOK, dto.HospitalPatientCheckResponse{
		Message: "Patient found",
		Patient: patient,
	})
}

// RegisterPatient handles POST /api/hospital/patient/register.
func (h *HospitalHandler) RegisterPatient(w http.ResponseWriter, r *http.Request) {
	var req dto.HospitalPatientRegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Missing required fields (Name, Age, Gender, or Contact Number).")
		return
	}

	result, err := h.hospitalUsecase.RegisterPatient(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPhoneAlreadyRegistered:
			response.Error(w, http.StatusBadRequest, "Phone number already registered. Please use 'Existing Patient' login.")
		default:
			response.InternalServerError(w, "Failed to register patient")
		}
		return
	}

	response.JSON(w, http.StatusCreated, result)
}
