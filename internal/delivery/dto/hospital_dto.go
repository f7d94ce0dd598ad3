package dto

import "sepsis-screening-server/internal/domain/entity"

// Request DTOs

type HospitalLoginRequest struct {
	HospitalID string `json:"hospitalId"`
}

type HospitalReportRequest struct {
	HospitalID string `json:"hospitalId" validate:"required"`
	PatientID  string `json:"patientId" validate:"omitempty"`
	WardNumber string `json:"wardNumber" validate:"omitempty"`
	BedNumber  string `json:"bedNumber" validate:"omitempty"`
	RespRate   int    `json:"respRate" validate:"required,gt=0"`
	SysBP      int    `json:"sysBp" validate:"required,gt=0"`
	GCS        int    `json:"gcs" validate:"required,gte=3,lte=15"`
	QsofaScore *int   `json:"qsofaScore" validate:"required,gte=0,lte=3"`
	RiskStatus string `json:"riskStatus" validate:"required"`
}

type HospitalPatientCheckRequest struct {
	PatientID string `json:"patientId" validate:"required"`
}

type HospitalPatientRegisterRequest struct {
	FullName    string `json:"fullName" validate:"required,min=2"`
	Age         int    `json:"age" validate:"required,gt=0,lte=130"`
	Gender      string `json:"gender" validate:"required,oneof=Male Female Other"`
	PhoneNumber string `json:"phoneNumber" validate:"required,min=7,max=20"`
	History     string `json:"history" validate:"omitempty"`
}

// Response DTOs

type HospitalLoginResponse struct {
	Message    string `json:"message"`
	HospitalID string `json:"hospitalId"`
	Name       string `json:"name"`
	Location   string `json:"location,omitempty"`
}

type HospitalPatientCheckResponse struct {
	Message string                  `json:"message"`
	Patient *entity.HospitalPatient `json:"patient"`
}

type HospitalPatientRegisterResponse struct {
	Message   string                  `json:"message"`
	PatientID string                  `json:"patientId"`
	Patient   *entity.HospitalPatient `json:"patient"`
}
