package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearResenaRequest struct {
	OrderID string  `json:"order_id" validate:"required,uuid"`
	Rating  int     `json:"rating"   validate:"required,min=1,max=5"`
	Comment *string `json:"comment"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ResenaResponse struct {
	ID           string    `json:"id"`
	Rating       int       `json:"rating"`
	Comment      *string   `json:"comment"`
	CustomerName *string   `json:"customer_name"`
	CreatedAt    time.Time `json:"created_at"`
}
