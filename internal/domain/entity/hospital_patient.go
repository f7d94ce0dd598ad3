package entity

import (
	"time"

	"github.com/google/uuid"
)

// HospitalPatient is a patient registered at a hospital desk. Both the
// phone number and the generated patient ID are unique.
type HospitalPatient struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FullName     string    `gorm:"type:varchar(255);not null" json:"fullName"`
	PhoneNumber  string    `gorm:"type:varchar(20);uniqueIndex:uni_hospital_patients_phone_number;not null" json:"phoneNumber"`
	PatientID    string    `gorm:"type:varchar(16);uniqueIndex:uni_hospital_patients_patient_id;not null" json:"patientId"`
	Age          int       `gorm:"not null" json:"age"`
	Gender       string    `gorm:"type:varchar(10);not null" json:"gender"`
	History      string    `gorm:"type:text" json:"history,omitempty"`
	RegisteredAt time.Time `gorm:"autoCreateTime" json:"registeredAt"`
}

func (HospitalPatient) TableName() string {
	return "hospital_patients"
}

// Gender values accepted at registration.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)
