package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CambiarEstadoRequest moves an order along its lifecycle. The proof fields
// only apply when the new status is delivered; a photo-backed delivery proof
// is stored alongside the transition when a photo URL is sent.
type CambiarEstadoRequest struct {
	Status        string  `json:"status" validate:"required,oneof=confirmed in_transit delivered cancelled"`
	ProofPhotoURL *string `json:"proof_photo_url" validate:"omitempty,url"`
	ProofNotes    *string `json:"proof_notes"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PedidoItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type PedidoResponse struct {
	ID              string          `json:"id"`
	OrderNumber     string          `json:"order_number"`
	Status          string          `json:"status"`
	// CustomerName is nil when the profile join is absent in the fetched row.
	CustomerName    *string         `json:"customer_name"`
	DeliveryAddress string          `json:"delivery_address"`
	ScheduledDate   *time.Time      `json:"scheduled_date"`
	IsImmediate     bool            `json:"is_immediate"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	PaymentStatus   string          `json:"payment_status"`
	PaymentMethod   *string         `json:"payment_method"`
	Notes           *string         `json:"notes"`
	CreatedAt       time.Time       `json:"created_at"`
	Items           []PedidoItemResponse `json:"items"`
}

// EstadisticasResponse is the provider dashboard stats block, recomputed from
// store queries on every load. TotalVentas comes from an unbounded aggregate,
// not from the recent-orders page.
type EstadisticasResponse struct {
	TotalVentas       decimal.Decimal `json:"total_ventas"`
	PedidosPendientes int64           `json:"pedidos_pendientes"`
	PedidosEntregados int64           `json:"pedidos_entregados"`
	ProductosActivos  int64           `json:"productos_activos"`
	Rating            float64         `json:"rating"`
}

// PanelResponse bundles one full dashboard load: recent orders, own products
// and the stats block.
type PanelResponse struct {
	Pedidos      []PedidoResponse     `json:"pedidos"`
	Productos    []ProductoResponse   `json:"productos"`
	Estadisticas EstadisticasResponse `json:"estadisticas"`
}
