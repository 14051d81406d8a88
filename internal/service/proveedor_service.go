package service

import (
	"context"
	"sort"
	"strings"

	"github.com/panteragalgo/awa-app/internal/dto"
	"github.com/panteragalgo/awa-app/internal/model"
	"github.com/panteragalgo/awa-app/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProveedorService serves the customer-facing provider search and detail views.
type ProveedorService interface {
	Buscar(ctx context.Context, filter dto.ProveedorFilter) (*dto.ProveedorListResponse, error)
	Detalle(ctx context.Context, id uuid.UUID) (*dto.ProveedorDetalleResponse, error)
}

type proveedorService struct {
	repo        repository.ProviderRepository
	productRepo repository.ProductRepository
	reviewRepo  repository.ReviewRepository
}

func NewProveedorService(
	repo repository.ProviderRepository,
	productRepo repository.ProductRepository,
	reviewRepo repository.ReviewRepository,
) ProveedorService {
	return &proveedorService{repo: repo, productRepo: productRepo, reviewRepo: reviewRepo}
}

func (s *proveedorService) Buscar(ctx context.Context, filter dto.ProveedorFilter) (*dto.ProveedorListResponse, error) {
	providers, err := s.repo.ListVerified(ctx)
	if err != nil {
		return nil, err
	}

	zonas := ZonasDisponibles(providers)
	result := FiltrarYOrdenar(providers, filter)

	data := make([]dto.ProveedorResponse, len(result))
	for i := range result {
		data[i] = proveedorToResponse(&result[i])
	}
	return &dto.ProveedorListResponse{Data: data, Total: len(data), Zonas: zonas}, nil
}

func (s *proveedorService) Detalle(ctx context.Context, id uuid.UUID) (*dto.ProveedorDetalleResponse, error) {
	provider, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.ListByProviderID(ctx, id, true)
	if err != nil {
		return nil, err
	}
	productos := make([]dto.ProductoResponse, len(products))
	for i := range products {
		productos[i] = productoToResponse(&products[i])
	}

	reviews, err := s.reviewRepo.ListByProviderID(ctx, id)
	if err != nil {
		return nil, err
	}
	resenas := make([]dto.ResenaResponse, len(reviews))
	for i := range reviews {
		resenas[i] = resenaToResponse(&reviews[i])
	}

	return &dto.ProveedorDetalleResponse{
		Proveedor: proveedorToResponse(provider),
		Productos: productos,
		Resenas:   resenas,
	}, nil
}

// ── Pure search transform ─────────────────────────────────────────────────────
// FiltrarYOrdenar is side-effect free and never mutates its input: filters
// compose by AND, and the chosen sort is applied to a fresh slice. Applying it
// twice with the same filter yields the same result.

func FiltrarYOrdenar(providers []model.Provider, filter dto.ProveedorFilter) []model.Provider {
	result := make([]model.Provider, 0, len(providers))

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	for _, p := range providers {
		if search != "" && !strings.Contains(strings.ToLower(p.BusinessName), search) {
			continue
		}
		if filter.Zone != "" && !tieneZona(&p, filter.Zone) {
			continue
		}
		if filter.VerifiedOnly && !p.Verified {
			continue
		}
		result = append(result, p)
	}

	switch filter.SortBy {
	case dto.SortReviews:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].TotalReviews > result[j].TotalReviews
		})
	case dto.SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return menorPrecio(&result[i], &result[j], true)
		})
	case dto.SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return menorPrecio(&result[i], &result[j], false)
		})
	default: // rating
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Rating > result[j].Rating
		})
	}

	return result
}

// tieneZona reports whether the provider covers the given zone. Zones is
// always a list; a legacy scalar arrives as a singleton.
func tieneZona(p *model.Provider, zone string) bool {
	for _, z := range p.Zones {
		if z == zone {
			return true
		}
	}
	return false
}

// MinPrecioActivo returns the lowest price among the provider's active
// products. ok is false when no product is active — such providers sort last
// under either price ordering.
func MinPrecioActivo(p *model.Provider) (decimal.Decimal, bool) {
	min := decimal.Zero
	found := false
	for _, prod := range p.Products {
		if !prod.Active {
			continue
		}
		if !found || prod.Price.LessThan(min) {
			min = prod.Price
			found = true
		}
	}
	return min, found
}

// menorPrecio orders a before b under the requested price direction, treating
// "no active products" as an infinite price.
func menorPrecio(a, b *model.Provider, asc bool) bool {
	pa, okA := MinPrecioActivo(a)
	pb, okB := MinPrecioActivo(b)
	switch {
	case !okA && !okB:
		return false
	case !okA:
		return false // a is infinite: never first
	case !okB:
		return true // b is infinite: a first
	}
	if asc {
		return pa.LessThan(pb)
	}
	return pa.GreaterThan(pb)
}

// ZonasDisponibles returns the sorted distinct zone list across providers,
// used to populate the zone filter dropdown.
func ZonasDisponibles(providers []model.Provider) []string {
	seen := make(map[string]bool)
	var zonas []string
	for _, p := range providers {
		for _, z := range p.Zones {
			if z != "" && !seen[z] {
				seen[z] = true
				zonas = append(zonas, z)
			}
		}
	}
	sort.Strings(zonas)
	return zonas
}

// ── DTO mapping ───────────────────────────────────────────────────────────────

func proveedorToResponse(p *model.Provider) dto.ProveedorResponse {
	resp := dto.ProveedorResponse{
		ID:               p.ID.String(),
		BusinessName:     p.BusinessName,
		Description:      p.Description,
		Address:          p.Address,
		Zones:            p.Zones,
		AvailabilityDays: p.AvailabilityDays,
		Rating:           p.Rating,
		TotalReviews:     p.TotalReviews,
		Verified:         p.Verified,
		ShowPrices:       p.ShowPrices,
		ShowCatalog:      p.ShowCatalog,
	}
	if min, ok := MinPrecioActivo(p); ok && p.ShowPrices {
		resp.MinActivePrice = &min
	}
	return resp
}

func resenaToResponse(r *model.Review) dto.ResenaResponse {
	resp := dto.ResenaResponse{
		ID:        r.ID.String(),
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
	// The customer join may be absent in partially joined rows.
	if r.Customer != nil {
		name := r.Customer.FullName
		resp.CustomerName = &name
	}
	return resp
}
