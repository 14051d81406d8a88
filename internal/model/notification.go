package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an in-app message for a user, created by the worker when an
// order changes status.
type Notification struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID         uuid.UUID `gorm:"type:uuid;index;not null"`
	Title          string    `gorm:"not null"`
	Message        string    `gorm:"not null"`
	Type           string    `gorm:"type:varchar(30);not null"`
	Read           bool      `gorm:"not null;default:false"`
	RelatedOrderID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time
}

func (Notification) TableName() string { return "notifications" }
