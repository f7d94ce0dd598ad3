package entity

import "github.com/google/uuid"

// Hospital is the administrative record of a facility. Rows are created
// out of band; no route mutates them.
type Hospital struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	HospitalID string    `gorm:"type:varchar(32);uniqueIndex:uni_hospitals_hospital_id;not null" json:"hospitalId"`
	Name       string    `gorm:"type:varchar(255)" json:"name,omitempty"`
	Location   string    `gorm:"type:varchar(255)" json:"location,omitempty"`
}

func (Hospital) TableName() string {
	return "hospitals"
}
