package entity

import (
	"time"

	"github.com/google/uuid"
)

// PatientReport is one self-screening submission. The qSOFA score and the
// risk status are computed client-side and stored verbatim. PatientID is a
// free-text correlation key; there is no foreign key to patients.
type PatientReport struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID  string    `gorm:"type:varchar(16);index;not null" json:"patientId"`
	RespRate   int       `gorm:"not null" json:"respRate"`
	SysBP      int       `gorm:"column:sys_bp;not null" json:"sysBp"`
	GCS        int       `gorm:"column:gcs;not null" json:"gcs"`
	QsofaScore int       `gorm:"not null" json:"qsofaScore"`
	RiskStatus string    `gorm:"type:varchar(32);not null" json:"riskStatus"`
	Timestamp  time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
}

func (PatientReport) TableName() string {
	return "patient_reports"
}
