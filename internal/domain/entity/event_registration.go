package entity

import (
	"time"

	"github.com/google/uuid"
)

// EventRegistration is an awareness-event signup submitted from the
// public site.
type EventRegistration struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FullName      string    `gorm:"type:varchar(255);not null" json:"fullName"`
	Email         string    `gorm:"type:varchar(255);not null" json:"email"`
	ContactNumber string    `gorm:"type:varchar(20);not null" json:"contactNumber"`
	EventName     string    `gorm:"type:varchar(255);not null" json:"eventName"`
	EventPrice    string    `gorm:"type:varchar(32);not null" json:"eventPrice"`
	Timestamp     time.Time `gorm:"autoCreateTime" json:"timestamp"`
}

func (EventRegistration) TableName() string {
	return "event_registrations"
}
