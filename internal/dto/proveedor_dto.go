package dto

import "github.com/shopspring/decimal"

// Sort orders accepted by the provider search.
const (
	SortRating    = "rating"
	SortReviews   = "reviews"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)

// ProveedorFilter maps 1:1 to the customer dashboard search controls.
type ProveedorFilter struct {
	Search       string `form:"search"`
	Zone         string `form:"zone"`
	VerifiedOnly bool   `form:"verified_only"`
	SortBy       string `form:"sort,default=rating" validate:"omitempty,oneof=rating reviews price-asc price-desc"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProveedorResponse struct {
	ID               string           `json:"id"`
	BusinessName     string           `json:"business_name"`
	Description      *string          `json:"description"`
	Address          string           `json:"address"`
	Zones            []string         `json:"zones"`
	AvailabilityDays []string         `json:"availability_days"`
	Rating           float64          `json:"rating"`
	TotalReviews     int              `json:"total_reviews"`
	Verified         bool             `json:"verified"`
	ShowPrices       bool             `json:"show_prices"`
	ShowCatalog      bool             `json:"show_catalog"`
	// MinActivePrice is the lowest price among active products; nil when the
	// provider has no active product.
	MinActivePrice *decimal.Decimal `json:"min_active_price"`
}

type ProveedorListResponse struct {
	Data  []ProveedorResponse `json:"data"`
	Total int                 `json:"total"`
	// Zonas is the sorted distinct zone list across all fetched providers,
	// used to populate the zone filter dropdown.
	Zonas []string `json:"zonas"`
}

type ProveedorDetalleResponse struct {
	Proveedor ProveedorResponse  `json:"proveedor"`
	Productos []ProductoResponse `json:"productos"`
	Resenas   []ResenaResponse   `json:"resenas"`
}
