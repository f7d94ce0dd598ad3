package entity

import (
	"time"

	"github.com/google/uuid"
)

// AllowedHospital is the allow-list of hospitals permitted to use the
// hospital-side endpoints. Rows are seeded by migration and treated as
// read-only at runtime.
type AllowedHospital struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	HospitalID string    `gorm:"type:varchar(32);uniqueIndex:uni_allowed_hospitals_hospital_id;not null" json:"hospitalId"`
	Name       string    `gorm:"type:varchar(255);not null;default:'General Hospital'" json:"name"`
	Active     *bool     `gorm:"not null;default:true" json:"active"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (AllowedHospital) TableName() string {
	return "allowed_hospitals"
}

// IsActive treats a missing flag as active, matching the seeded default.
func (h *AllowedHospital) IsActive() bool {
	return h.Active == nil || *h.Active
}
