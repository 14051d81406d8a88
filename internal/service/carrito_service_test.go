package service_test

import (
	"context"
	"testing"

	"github.com/panteragalgo/awa-app/internal/model"
	"github.com/panteragalgo/awa-app/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProducto(repo *stubProductRepo, providerID uuid.UUID, name string, precio float64, stock int) *model.Product {
	p := &model.Product{
		ProviderID: providerID,
		Name:       name,
		Price:      decimal.NewFromFloat(precio),
		Unit:       "bidon 20L",
		Stock:      stock,
		Active:     true,
	}
	_ = repo.Create(context.Background(), p)
	return p
}

func TestCarrito_AgregarYTotal(t *testing.T) {
	repo := newStubProductRepo()
	providerID := uuid.New()
	userID := uuid.New()
	bidon := seedProducto(repo, providerID, "Bidón 20L", 3500, 10)
	pack := seedProducto(repo, providerID, "Pack x6", 2200, 5)

	svc := service.NewCarritoService(repo)

	_, err := svc.Agregar(context.Background(), userID, providerID, bidon.ID)
	require.NoError(t, err)
	_, err = svc.Agregar(context.Background(), userID, providerID, bidon.ID)
	require.NoError(t, err)
	resp, err := svc.Agregar(context.Background(), userID, providerID, pack.ID)
	require.NoError(t, err)

	// 2 × 3500 + 1 × 2200 = 9200, recomputed on every read
	assert.Equal(t, "9200", resp.Total.String())
	assert.Equal(t, 3, resp.CantidadItems)
	require.Len(t, resp.Items, 2)
}

func TestCarrito_ClampAlStock(t *testing.T) {
	repo := newStubProductRepo()
	providerID := uuid.New()
	userID := uuid.New()
	p := seedProducto(repo, providerID, "Bidón 12L", 2800, 2)

	svc := service.NewCarritoService(repo)
	_, err := svc.Agregar(context.Background(), userID, providerID, p.ID)
	require.NoError(t, err)

	// Una suba de 10 queda limitada al stock disponible.
	resp, err := svc.ActualizarCantidad(context.Background(), userID, providerID, p.ID, 10)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 2, resp.Items[0].Quantity)

	// Una baja por debajo de cero elimina la línea.
	resp, err = svc.ActualizarCantidad(context.Background(), userID, providerID, p.ID, -5)
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Equal(t, "0", resp.Total.String())
}

func TestCarrito_CantidadCeroEliminaLinea(t *testing.T) {
	repo := newStubProductRepo()
	providerID := uuid.New()
	userID := uuid.New()
	p := seedProducto(repo, providerID, "Bidón 20L", 3500, 10)

	svc := service.NewCarritoService(repo)
	_, err := svc.Agregar(context.Background(), userID, providerID, p.ID)
	require.NoError(t, err)

	resp, err := svc.ActualizarCantidad(context.Background(), userID, providerID, p.ID, -1)
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 0, resp.CantidadItems)
}

func TestCarrito_RechazaProductoDeOtroProveedor(t *testing.T) {
	repo := newStubProductRepo()
	providerID := uuid.New()
	otroProvider := uuid.New()
	userID := uuid.New()
	ajeno := seedProducto(repo, otroProvider, "Ajeno", 1000, 5)

	svc := service.NewCarritoService(repo)
	_, err := svc.Agregar(context.Background(), userID, providerID, ajeno.ID)
	assert.ErrorContains(t, err, "no pertenece")
}

func TestCarrito_RechazaInactivoYSinStock(t *testing.T) {
	repo := newStubProductRepo()
	providerID := uuid.New()
	userID := uuid.New()

	inactivo := seedProducto(repo, providerID, "Inactivo", 1000, 5)
	inactivo.Active = false
	agotado := seedProducto(repo, providerID, "Agotado", 1000, 0)

	svc := service.NewCarritoService(repo)
	_, err := svc.Agregar(context.Background(), userID, providerID, inactivo.ID)
	assert.ErrorContains(t, err, "no está disponible")

	_, err = svc.Agregar(context.Background(), userID, providerID, agotado.ID)
	assert.ErrorContains(t, err, "sin stock")
}

func TestCarrito_UnCarritoPorProveedor(t *testing.T) {
	repo := newStubProductRepo()
	userID := uuid.New()
	provA := uuid.New()
	provB := uuid.New()
	pa := seedProducto(repo, provA, "A", 1000, 5)
	pb := seedProducto(repo, provB, "B", 2000, 5)

	svc := service.NewCarritoService(repo)
	_, err := svc.Agregar(context.Background(), userID, provA, pa.ID)
	require.NoError(t, err)
	_, err = svc.Agregar(context.Background(), userID, provB, pb.ID)
	require.NoError(t, err)

	respA, err := svc.Obtener(context.Background(), userID, provA)
	require.NoError(t, err)
	respB, err := svc.Obtener(context.Background(), userID, provB)
	require.NoError(t, err)
	assert.Equal(t, "1000", respA.Total.String())
	assert.Equal(t, "2000", respB.Total.String())

	// Vaciar solo afecta al carrito de ese proveedor.
	svc.Vaciar(context.Background(), userID, provA)
	respA, _ = svc.Obtener(context.Background(), userID, provA)
	respB, _ = svc.Obtener(context.Background(), userID, provB)
	assert.Empty(t, respA.Items)
	assert.Len(t, respB.Items, 1)
}
