package handler

import (
	"encoding/json"
	"net/http"

	"sepsis-screening-server/internal/delivery/dto"
	"sepsis-screening-server/internal/usecase"
	"sepsis-screening-server/pkg/response"
	"sepsis-screening-server/pkg/validator"
)

type EventHandler struct {
	eventUsecase usecase.EventUsecase
	validator    *validator.CustomValidator
}

func NewEventHandler(eventUsecase usecase.EventUsecase, validator *validator.CustomValidator) *EventHandler {
	return &EventHandler{
		eventUsecase: eventUsecase,
		validator:    validator,
	}
}

// Register handles POST /api/register-event.
func (h *EventHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.EventRegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	registration, err := h.eventUsecase.Register(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to register for event")
		return
	}

	response.JSON(w, http.StatusCreated, registration)
}
