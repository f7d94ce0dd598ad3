package dto

type EventRegistrationRequest struct {
	FullName      string `json:"fullName" validate:"required,min=2"`
	Email         string `json:"email" validate:"required,email"`
	ContactNumber string `json:"contactNumber" validate:"required,min=7,max=20"`
	EventName     string `json:"eventName" validate:"required"`
	EventPrice    string `json:"eventPrice" validate:"required"`
}
