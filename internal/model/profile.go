package model

import (
	"time"

	"github.com/google/uuid"
)

// Account types. A Profile's UserType decides which portal the account may
// log into and which dashboard it is routed to.
const (
	UserTypeCliente   = "cliente"
	UserTypeProveedor = "proveedor"
)

// Profile is the public identity record attached 1:1 to a Usuario.
// Its ID equals the owning Usuario's ID.
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName  string    `gorm:"not null"`
	Phone     *string
	UserType  string `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Profile) TableName() string { return "profiles" }
