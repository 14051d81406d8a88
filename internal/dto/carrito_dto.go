package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AgregarItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
}

// ActualizarCantidadRequest adjusts a line by a signed delta. The resulting
// quantity is clamped to [0, stock]; zero removes the line.
type ActualizarCantidadRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type LineaCarritoResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Stock     int             `json:"stock"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type CarritoResponse struct {
	ProviderID    string                 `json:"provider_id"`
	Items         []LineaCarritoResponse `json:"items"`
	Total         decimal.Decimal        `json:"total"`
	CantidadItems int                    `json:"cantidad_items"`
}
