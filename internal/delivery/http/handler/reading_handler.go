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

type ReadingHandler struct {
	readingUsecase usecase.ReadingUsecase
	validator      *validator.CustomValidator
}

func NewReadingHandler(readingUsecase usecase.ReadingUsecase, validator *validator.CustomValidator) *ReadingHandler {
	return &ReadingHandler{
		readingUsecase: readingUsecase,
		validator:      validator,
	}
}

// Save handles POST /api/readings.
func (h *ReadingHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req dto.ReadingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	reading, err := h.readingUsecase.Save(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to save reading")
		return
	}

	response.JSON(w, http.StatusCreated, reading)
}

// ListByPatient handles GET /api/readings/{patientId}.
func (h *ReadingHandler) ListByPatient(w http.ResponseWriter, r *http.Request) {
	patientID := mux.Vars(r)["patientId"]

	readings, err := h.readingUsecase.ListByPatient(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to load readings")
		return
	}

	response.JSON(w, http.StatusOK, readings)
}
