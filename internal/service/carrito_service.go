package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/panteragalgo/awa-app/internal/dto"
	"github.com/panteragalgo/awa-app/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CarritoService holds one in-memory cart per (customer, provider) visit.
// Quantities are clamped to [1, stock] while a line exists; reaching zero
// removes the line. Totals are recomputed from line state on every read —
// there is no cached running total to desync. Carts do not survive a restart.
type CarritoService interface {
	Agregar(ctx context.Context, userID, providerID, productID uuid.UUID) (*dto.CarritoResponse, error)
	ActualizarCantidad(ctx context.Context, userID, providerID, productID uuid.UUID, delta int) (*dto.CarritoResponse, error)
	Obtener(ctx context.Context, userID, providerID uuid.UUID) (*dto.CarritoResponse, error)
	Vaciar(ctx context.Context, userID, providerID uuid.UUID)
}

// lineaCarrito snapshots the product at the moment it entered the cart;
// stock bounds every later quantity change.
type lineaCarrito struct {
	productID uuid.UUID
	name      string
	unit      string
	unitPrice decimal.Decimal
	stock     int
	cantidad  int
}

type carritoService struct {
	productRepo repository.ProductRepository

	mu      sync.Mutex
	carritos map[string]map[uuid.UUID]*lineaCarrito // (user|provider) → product → line
}

func NewCarritoService(productRepo repository.ProductRepository) CarritoService {
	return &carritoService{
		productRepo: productRepo,
		carritos:    make(map[string]map[uuid.UUID]*lineaCarrito),
	}
}

func carritoKey(userID, providerID uuid.UUID) string {
	return userID.String() + "|" + providerID.String()
}

func (s *carritoService) Agregar(ctx context.Context, userID, providerID, productID uuid.UUID) (*dto.CarritoResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, errors.New("producto no encontrado")
	}
	if product.ProviderID != providerID {
		return nil, errors.New("el producto no pertenece a este proveedor")
	}
	if !product.Active {
		return nil, errors.New("el producto no está disponible")
	}
	if product.Stock <= 0 {
		return nil, errors.New("producto sin stock")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := carritoKey(userID, providerID)
	cart, ok := s.carritos[key]
	if !ok {
		cart = make(map[uuid.UUID]*lineaCarrito)
		s.carritos[key] = cart
	}

	if linea, ok := cart[productID]; ok {
		// Increment, clamped at current stock.
		if linea.cantidad < linea.stock {
			linea.cantidad++
		}
	} else {
		cart[productID] = &lineaCarrito{
			productID: productID,
			name:      product.Name,
			unit:      product.Unit,
			unitPrice: product.Price,
			stock:     product.Stock,
			cantidad:  1,
		}
	}

	return s.respuesta(providerID, cart), nil
}

func (s *carritoService) ActualizarCantidad(ctx context.Context, userID, providerID, productID uuid.UUID, delta int) (*dto.CarritoResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := carritoKey(userID, providerID)
	cart, ok := s.carritos[key]
	if !ok {
		return nil, errors.New("carrito vacío")
	}
	linea, ok := cart[productID]
	if !ok {
		return nil, errors.New("el producto no está en el carrito")
	}

	// Clamp to [0, stock]; zero removes the line entirely.
	nueva := linea.cantidad + delta
	if nueva < 0 {
		nueva = 0
	}
	if nueva > linea.stock {
		nueva = linea.stock
	}
	if nueva == 0 {
		delete(cart, productID)
	} else {
		linea.cantidad = nueva
	}

	return s.respuesta(providerID, cart), nil
}

func (s *carritoService) Obtener(_ context.Context, userID, providerID uuid.UUID) (*dto.CarritoResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carritos[carritoKey(userID, providerID)]
	return s.respuesta(providerID, cart), nil
}

func (s *carritoService) Vaciar(_ context.Context, userID, providerID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carritos, carritoKey(userID, providerID))
}

// respuesta recomputes total and item count from the lines. Caller holds mu.
func (s *carritoService) respuesta(providerID uuid.UUID, cart map[uuid.UUID]*lineaCarrito) *dto.CarritoResponse {
	resp := &dto.CarritoResponse{
		ProviderID: providerID.String(),
		Items:      make([]dto.LineaCarritoResponse, 0, len(cart)),
		Total:      decimal.Zero,
	}
	for _, linea := range cart {
		subtotal := linea.unitPrice.Mul(decimal.NewFromInt(int64(linea.cantidad)))
		resp.Items = append(resp.Items, dto.LineaCarritoResponse{
			ProductID: linea.productID.String(),
			Name:      linea.name,
			Unit:      linea.unit,
			UnitPrice: linea.unitPrice,
			Quantity:  linea.cantidad,
			Stock:     linea.stock,
			Subtotal:  subtotal,
		})
		resp.Total = resp.Total.Add(subtotal)
		resp.CantidadItems += linea.cantidad
	}
	sort.Slice(resp.Items, func(i, j int) bool { return resp.Items[i].Name < resp.Items[j].Name })
	return resp
}
