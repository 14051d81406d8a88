package service_test

import (
	"context"
	"testing"

	"github.com/panteragalgo/awa-app/internal/dto"
	"github.com/panteragalgo/awa-app/internal/model"
	"github.com/panteragalgo/awa-app/internal/service"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func proveedor(name string, zones []string, rating float64, reviews int, verified bool, precios ...float64) model.Provider {
	p := model.Provider{
		BusinessName: name,
		Zones:        pq.StringArray(zones),
		Rating:       rating,
		TotalReviews: reviews,
		Verified:     verified,
		ShowPrices:   true,
	}
	for _, precio := range precios {
		p.Products = append(p.Products, model.Product{
			Price:  decimal.NewFromFloat(precio),
			Active: true,
		})
	}
	return p
}

func TestFiltrarYOrdenar_BusquedaPorNombre(t *testing.T) {
	providers := []model.Provider{
		proveedor("Agua Pura del Sur", []string{"Palermo"}, 4.5, 10, true, 3500),
		proveedor("Manantial Norte", []string{"Belgrano"}, 4.0, 5, true, 2800),
	}

	result := service.FiltrarYOrdenar(providers, dto.ProveedorFilter{Search: "agua pura"})
	require.Len(t, result, 1)
	assert.Equal(t, "Agua Pura del Sur", result[0].BusinessName)

	// Whitespace and case never change the match.
	result = service.FiltrarYOrdenar(providers, dto.ProveedorFilter{Search: "  AGUA PURA  "})
	require.Len(t, result, 1)
}

func TestFiltrarYOrdenar_PorZona(t *testing.T) {
	providers := []model.Provider{
		proveedor("A", []string{"Palermo", "Recoleta"}, 4, 1, true),
		proveedor("B", []string{"Belgrano"}, 4, 1, true),
		proveedor("C", nil, 4, 1, true),
	}

	result := service.FiltrarYOrdenar(providers, dto.ProveedorFilter{Zone: "Palermo"})
	require.Len(t, result, 1)
	assert.Equal(t, "A", result[0].BusinessName)

	// Empty zone filter means no zone restriction.
	result = service.FiltrarYOrdenar(providers, dto.ProveedorFilter{})
	assert.Len(t, result, 3)
}

func TestFiltrarYOrdenar_Idempotente(t *testing.T) {
	providers := []model.Provider{
		proveedor("A", []string{"Palermo"}, 3, 1, true, 1000),
		proveedor("B", []string{"Palermo"}, 5, 1, true, 2000),
		proveedor("C", []string{"Palermo"}, 4, 1, true, 1500),
	}
	filter := dto.ProveedorFilter{Zone: "Palermo", SortBy: dto.SortPriceAsc}

	una := service.FiltrarYOrdenar(providers, filter)
	otra := service.FiltrarYOrdenar(una, filter)
	assert.Equal(t, una, otra)
}

func TestFiltrarYOrdenar_PrecioAscInfinitoAlFinal(t *testing.T) {
	sinActivos := proveedor("Sin Catalogo", nil, 5, 99, true)
	sinActivos.Products = []model.Product{{Price: decimal.NewFromInt(100), Active: false}}

	providers := []model.Provider{
		sinActivos,
		proveedor("Caro", nil, 3, 1, true, 5000),
		proveedor("Barato", nil, 3, 1, true, 1200),
	}

	asc := service.FiltrarYOrdenar(providers, dto.ProveedorFilter{SortBy: dto.SortPriceAsc})
	require.Len(t, asc, 3)
	assert.Equal(t, "Barato", asc[0].BusinessName)
	assert.Equal(t, "Caro", asc[1].BusinessName)
	assert.Equal(t, "Sin Catalogo", asc[2].BusinessName)

	// Without active products the provider is priced +∞: last in both directions.
	desc := service.FiltrarYOrdenar(providers, dto.ProveedorFilter{SortBy: dto.SortPriceDesc})
	assert.Equal(t, "Caro", desc[0].BusinessName)
	assert.Equal(t, "Barato", desc[1].BusinessName)
	assert.Equal(t, "Sin Catalogo", desc[2].BusinessName)
}

func TestFiltrarYOrdenar_RatingYReviews(t *testing.T) {
	providers := []model.Provider{
		proveedor("Regular", nil, 3.2, 40, true),
		proveedor("Top", nil, 4.9, 3, true),
	}

	porRating := service.FiltrarYOrdenar(providers, dto.ProveedorFilter{SortBy: dto.SortRating})
	assert.Equal(t, "Top", porRating[0].BusinessName)

	porReviews := service.FiltrarYOrdenar(providers, dto.ProveedorFilter{SortBy: dto.SortReviews})
	assert.Equal(t, "Regular", porReviews[0].BusinessName)
}

func TestMinPrecioActivo_IgnoraInactivos(t *testing.T) {
	p := proveedor("X", nil, 0, 0, true, 3000, 1800)
	p.Products = append(p.Products, model.Product{Price: decimal.NewFromInt(100), Active: false})

	min, ok := service.MinPrecioActivo(&p)
	require.True(t, ok)
	assert.Equal(t, "1800", min.String())

	vacio := proveedor("Y", nil, 0, 0, true)
	_, ok = service.MinPrecioActivo(&vacio)
	assert.False(t, ok)
}

func TestZonasDisponibles_DistintasYOrdenadas(t *testing.T) {
	providers := []model.Provider{
		proveedor("A", []string{"Palermo", "Recoleta"}, 0, 0, true),
		proveedor("B", []string{"Belgrano", "Palermo", ""}, 0, 0, true),
	}
	zonas := service.ZonasDisponibles(providers)
	assert.Equal(t, []string{"Belgrano", "Palermo", "Recoleta"}, zonas)
}

func TestBuscar_EscenarioCompleto(t *testing.T) {
	providerRepo := newStubProviderRepo()
	productRepo := newStubProductRepo()
	reviewRepo := newStubReviewRepo()

	aguaPura := proveedor("Agua Pura del Sur", []string{"Palermo"}, 4.5, 12, true, 3500)
	otro := proveedor("Manantial Norte", []string{"Belgrano"}, 4.8, 30, true, 2800)
	noVerificado := proveedor("Clandestino", []string{"Palermo"}, 5, 1, false, 100)
	require.NoError(t, providerRepo.Create(context.Background(), nil, &aguaPura))
	require.NoError(t, providerRepo.Create(context.Background(), nil, &otro))
	require.NoError(t, providerRepo.Create(context.Background(), nil, &noVerificado))

	svc := service.NewProveedorService(providerRepo, productRepo, reviewRepo)

	// Unverified providers never reach the directory.
	resp, err := svc.Buscar(context.Background(), dto.ProveedorFilter{Search: "Agua Pura"})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Agua Pura del Sur", resp.Data[0].BusinessName)
	assert.Equal(t, []string{"Belgrano", "Palermo"}, resp.Zonas)

	resp, err = svc.Buscar(context.Background(), dto.ProveedorFilter{SortBy: dto.SortPriceAsc})
	require.NoError(t, err)
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, "Manantial Norte", resp.Data[0].BusinessName)
	require.NotNil(t, resp.Data[0].MinActivePrice)
	assert.Equal(t, "2800", resp.Data[0].MinActivePrice.String())
}

func TestBuscar_OcultaPreciosSiShowPricesFalse(t *testing.T) {
	providerRepo := newStubProviderRepo()
	p := proveedor("Reservado", nil, 4, 1, true, 3500)
	p.ShowPrices = false
	require.NoError(t, providerRepo.Create(context.Background(), nil, &p))

	svc := service.NewProveedorService(providerRepo, newStubProductRepo(), newStubReviewRepo())
	resp, err := svc.Buscar(context.Background(), dto.ProveedorFilter{})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Nil(t, resp.Data[0].MinActivePrice)
}
