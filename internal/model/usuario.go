package model

import (
	"time"

	"github.com/google/uuid"
)

// Usuario is the authentication account. One Usuario owns exactly one Profile
// (same ID). Accounts start unconfirmed and are activated via the email
// confirmation token flow.
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Confirmado   bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Usuario) TableName() string { return "usuarios" }
