package service

import (
	"context"
	"errors"

	"github.com/panteragalgo/awa-app/internal/dto"
	"github.com/panteragalgo/awa-app/internal/model"
	"github.com/panteragalgo/awa-app/internal/repository"

	"github.com/google/uuid"
)

var ErrProductoAjeno = errors.New("el producto no pertenece a este proveedor")

// ProductoService maneja el catálogo del proveedor autenticado. Toda
// operación de escritura valida la pertenencia del producto antes de tocar
// la base.
type ProductoService interface {
	Crear(ctx context.Context, providerID uuid.UUID, req *dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	Listar(ctx context.Context, providerID uuid.UUID) ([]dto.ProductoResponse, error)
	Actualizar(ctx context.Context, providerID, productID uuid.UUID, req *dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	ToggleActivo(ctx context.Context, providerID, productID uuid.UUID) (*dto.ProductoResponse, error)
}

type productoService struct {
	productRepo repository.ProductRepository
}

func NewProductoService(productRepo repository.ProductRepository) ProductoService {
	return &productoService{productRepo: productRepo}
}

func (s *productoService) Crear(ctx context.Context, providerID uuid.UUID, req *dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	product := &model.Product{
		ProviderID:  providerID,
		Name:        req.Name,
		Description: &req.Description,
		Price:       req.Price,
		Unit:        req.Unit,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
		Active:      true, // los productos nuevos nacen activos
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	resp := productoToResponse(product)
	return &resp, nil
}

func (s *productoService) Listar(ctx context.Context, providerID uuid.UUID) ([]dto.ProductoResponse, error) {
	products, err := s.productRepo.ListByProviderID(ctx, providerID, false)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoResponse, len(products))
	for i := range products {
		out[i] = productoToResponse(&products[i])
	}
	return out, nil
}

func (s *productoService) Actualizar(ctx context.Context, providerID, productID uuid.UUID, req *dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	product, err := s.fetchOwned(ctx, providerID, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Unit != nil {
		product.Unit = *req.Unit
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.ImageURL != nil {
		product.ImageURL = req.ImageURL
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	resp := productoToResponse(product)
	return &resp, nil
}

func (s *productoService) ToggleActivo(ctx context.Context, providerID, productID uuid.UUID) (*dto.ProductoResponse, error) {
	product, err := s.fetchOwned(ctx, providerID, productID)
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.ToggleActivo(ctx, productID); err != nil {
		return nil, err
	}
	product.Active = !product.Active
	resp := productoToResponse(product)
	return &resp, nil
}

func (s *productoService) fetchOwned(ctx context.Context, providerID, productID uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, errors.New("producto no encontrado")
	}
	if product.ProviderID != providerID {
		return nil, ErrProductoAjeno
	}
	return product, nil
}

func productoToResponse(p *model.Product) dto.ProductoResponse {
	return dto.ProductoResponse{
		ID:          p.ID.String(),
		ProviderID:  p.ProviderID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Unit:        p.Unit,
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
		Active:      p.Active,
	}
}
