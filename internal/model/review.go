package model

import (
	"time"

	"github.com/google/uuid"
)

// Review is a 1-5 rating left by a customer on a delivered order.
// One review per order.
type Review struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null"`
	ProviderID uuid.UUID `gorm:"type:uuid;index;not null"`
	Rating     int       `gorm:"not null"`
	Comment    *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Customer *Profile `gorm:"foreignKey:CustomerID"`
}

func (Review) TableName() string { return "reviews" }
