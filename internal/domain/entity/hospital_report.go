package entity

import (
	"time"

	"github.com/google/uuid"
)

// HospitalReport is a bedside screening submitted by hospital staff.
// HospitalID correlates to the allow-list by value only.
type HospitalReport struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	HospitalID string    `gorm:"type:varchar(32);index;not null" json:"hospitalId"`
	PatientID  string    `gorm:"type:varchar(16)" json:"patientId,omitempty"`
	WardNumber string    `gorm:"type:varchar(16)" json:"wardNumber,omitempty"`
	BedNumber  string    `gorm:"type:varchar(16)" json:"bedNumber,omitempty"`
	RespRate   int       `gorm:"not null" json:"respRate"`
	SysBP      int       `gorm:"column:sys_bp;not null" json:"sysBp"`
	GCS        int       `gorm:"column:gcs;not null" json:"gcs"`
	QsofaScore int       `gorm:"not null" json:"qsofaScore"`
	RiskStatus string    `gorm:"type:varchar(32);not null" json:"riskStatus"`
	Timestamp  time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
}

func (HospitalReport) TableName() string {
	return "hospital_reports"
}
