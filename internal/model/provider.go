package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Provider is a water-delivery business owned by a proveedor Profile.
// Zones is always a list (possibly singleton); the scalar-vs-list drift of the
// legacy data is normalized at this boundary.
type Provider struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID           uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	BusinessName     string    `gorm:"index;not null"`
	CUIT             string    `gorm:"column:cuit;uniqueIndex;not null"`
	Description      *string
	Address          string         `gorm:"not null"`
	Zones            pq.StringArray `gorm:"type:text[]"`
	Latitude         *float64
	Longitude        *float64
	AvailabilityDays pq.StringArray `gorm:"type:text[]"`
	Rating           float64        `gorm:"not null;default:0"`
	TotalReviews     int            `gorm:"not null;default:0"`
	Verified         bool           `gorm:"not null;default:false"`
	ShowPrices       bool           `gorm:"not null;default:true"`
	ShowCatalog      bool           `gorm:"not null;default:true"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Profile  *Profile  `gorm:"foreignKey:UserID"`
	Products []Product `gorm:"foreignKey:ProviderID"`
}

func (Provider) TableName() string { return "providers" }
