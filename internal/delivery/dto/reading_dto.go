package dto

type ReadingRequest struct {
	PatientID   string  `json:"patientId" validate:"required"`
	HeartRate   float64 `json:"heartRate" validate:"omitempty,gte=0"`
	Temperature float64 `json:"temperature" validate:"omitempty,gte=0"`
	SpO2        float64 `json:"spo2" validate:"omitempty,gte=0,lte=100"`
}
