package model

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryProof is a photo-backed confirmation attached to a delivered order.
// Modeled for the store schema; no UI surface consumes it yet.
type DeliveryProof struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderID     uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	PhotoURL    string    `gorm:"not null"`
	Latitude    *float64
	Longitude   *float64
	Notes       *string
	DeliveredAt time.Time `gorm:"not null"`
	CreatedAt   time.Time
}

func (DeliveryProof) TableName() string { return "delivery_proofs" }
