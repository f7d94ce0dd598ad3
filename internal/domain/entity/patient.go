package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient is a self-registered user of the personal screening flow.
// Password holds a bcrypt hash, never the plain credential.
type Patient struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FullName    string    `gorm:"type:varchar(255);not null" json:"fullName"`
	PhoneNumber string    `gorm:"type:varchar(20);uniqueIndex:uni_patients_phone_number;not null" json:"phoneNumber"`
	PatientID   string    `gorm:"type:varchar(16);uniqueIndex:uni_patients_patient_id;not null" json:"patientId"`
	Password    string    `gorm:"type:text" json:"-"`
	Age         *int      `json:"age,omitempty"`
	Gender      string    `gorm:"type:varchar(10)" json:"gender,omitempty"`
	History     string    `gorm:"type:text" json:"history,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Patient) TableName() string {
	return "patients"
}
