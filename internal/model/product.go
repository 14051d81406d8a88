package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog item sold by a Provider. Unit is a free-form label
// ("bidon 20L", "pack x6"). Stock is never negative.
type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProviderID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Name        string    `gorm:"not null"`
	Description *string
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Unit        string          `gorm:"not null;default:'bidon'"`
	Stock       int             `gorm:"not null;default:0"`
	ImageURL    *string
	Active      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Provider *Provider `gorm:"foreignKey:ProviderID"`
}

func (Product) TableName() string { return "products" }
