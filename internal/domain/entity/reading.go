package entity

import (
	"time"

	"github.com/google/uuid"
)

// Reading is a generic sensor measurement tied to a patient correlation key.
type Reading struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID   string    `gorm:"type:varchar(16);index;not null" json:"patientId"`
	HeartRate   float64   `json:"heartRate,omitempty"`
	Temperature float64   `json:"temperature,omitempty"`
	SpO2        float64   `gorm:"column:spo2" json:"spo2,omitempty"`
	Timestamp   time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
}

func (Reading) TableName() string {
	return "readings"
}
