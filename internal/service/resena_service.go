package service

import (
	"context"
	"errors"

	"github.com/panteragalgo/awa-app/internal/dto"
	"github.com/panteragalgo/awa-app/internal/model"
	"github.com/panteragalgo/awa-app/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPedidoNoEntregado = errors.New("solo se pueden calificar pedidos entregados")
	ErrResenaDuplicada   = errors.New("este pedido ya tiene una reseña")
)

// ResenaService maneja las reseñas de clientes sobre pedidos entregados.
// El promedio del proveedor se actualiza de forma incremental al crear cada
// reseña, sin recalcular sobre el histórico completo.
type ResenaService interface {
	ListarPorProveedor(ctx context.Context, providerID uuid.UUID) ([]dto.ResenaResponse, error)
	Crear(ctx context.Context, customerID uuid.UUID, req *dto.CrearResenaRequest) (*dto.ResenaResponse, error)
}

type resenaService struct {
	reviewRepo   repository.ReviewRepository
	orderRepo    repository.OrderRepository
	providerRepo repository.ProviderRepository
}

func NewResenaService(
	reviewRepo repository.ReviewRepository,
	orderRepo repository.OrderRepository,
	providerRepo repository.ProviderRepository,
) ResenaService {
	return &resenaService{
		reviewRepo:   reviewRepo,
		orderRepo:    orderRepo,
		providerRepo: providerRepo,
	}
}

func (s *resenaService) ListarPorProveedor(ctx context.Context, providerID uuid.UUID) ([]dto.ResenaResponse, error) {
	reviews, err := s.reviewRepo.ListByProviderID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ResenaResponse, len(reviews))
	for i := range reviews {
		out[i] = resenaToResponse(&reviews[i])
	}
	return out, nil
}

func (s *resenaService) Crear(ctx context.Context, customerID uuid.UUID, req *dto.CrearResenaRequest) (*dto.ResenaResponse, error) {
	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		return nil, errors.New("order_id inválido")
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, errors.New("pedido no encontrado")
	}
	if order.CustomerID != customerID {
		return nil, errors.New("el pedido no pertenece a este cliente")
	}
	if order.Status != model.OrderDelivered {
		return nil, ErrPedidoNoEntregado
	}

	exists, err := s.reviewRepo.ExistsByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrResenaDuplicada
	}

	provider, err := s.providerRepo.FindByID(ctx, order.ProviderID)
	if err != nil {
		return nil, err
	}

	review := &model.Review{
		OrderID:    orderID,
		CustomerID: customerID,
		ProviderID: order.ProviderID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	// El alta de la reseña y el nuevo promedio se confirman juntos.
	txErr := runTx(ctx, s.reviewRepo.DB(), func(tx *gorm.DB) error {
		if err := s.reviewRepo.Create(ctx, tx, review); err != nil {
			return err
		}
		provider.Rating = NuevoPromedio(provider.Rating, provider.TotalReviews, req.Rating)
		provider.TotalReviews++
		return s.providerRepo.Update(ctx, tx, provider)
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := resenaToResponse(review)
	return &resp, nil
}

// NuevoPromedio folds one rating into a running average of n reviews.
func NuevoPromedio(promedio float64, n int, rating int) float64 {
	return (promedio*float64(n) + float64(rating)) / float64(n+1)
}
