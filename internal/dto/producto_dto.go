package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CrearProductoRequest requires every catalog field; negative prices and
// stock are rejected up front.
type CrearProductoRequest struct {
	Name        string          `json:"name"        validate:"required,min=2,max=120"`
	Description string          `json:"description" validate:"required"`
	Price       decimal.Decimal `json:"price"       validate:"required,gt=0"`
	Unit        string          `json:"unit"        validate:"required"`
	Stock       int             `json:"stock"       validate:"min=0"`
	ImageURL    *string         `json:"image_url"`
}

type ActualizarProductoRequest struct {
	Name        *string          `json:"name"        validate:"omitempty,min=2,max=120"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"       validate:"omitempty,gt=0"`
	Unit        *string          `json:"unit"`
	Stock       *int             `json:"stock"       validate:"omitempty,min=0"`
	ImageURL    *string          `json:"image_url"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID          string          `json:"id"`
	ProviderID  string          `json:"provider_id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit"`
	Stock       int             `json:"stock"`
	ImageURL    *string         `json:"image_url"`
	Active      bool            `json:"active"`
}
