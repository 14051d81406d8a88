package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/panteragalgo/awa-app/internal/dto"
	"github.com/panteragalgo/awa-app/internal/model"
	"github.com/panteragalgo/awa-app/internal/repository"
	"github.com/panteragalgo/awa-app/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// recentOrdersLimit bounds the dashboard's recent-orders page. Aggregate
// stats never depend on this page — they come from unbounded queries.
const recentOrdersLimit = 10

// transiciones holds the only legal status edges. Cancellation is possible
// from pending and confirmed; delivered and cancelled are terminal.
var transiciones = map[string][]string{
	model.OrderPending:   {model.OrderConfirmed, model.OrderCancelled},
	model.OrderConfirmed: {model.OrderInTransit, model.OrderCancelled},
	model.OrderInTransit: {model.OrderDelivered},
}

// TransicionValida reports whether an order may move from one status to
// another.
func TransicionValida(desde, hasta string) bool {
	for _, t := range transiciones[desde] {
		if t == hasta {
			return true
		}
	}
	return false
}

// JobEnqueuer dispatches the side effects of a status change to the worker
// pool: in-app notification, and the PDF receipt when delivered.
type JobEnqueuer interface {
	EnqueueRecibo(ctx context.Context, payload worker.ReciboJobPayload) error
	EnqueueNotificacion(ctx context.Context, payload worker.NotificacionJobPayload) error
}

// PedidoService drives the provider dashboard: recent orders, status
// transitions and aggregate stats. The consistency model is
// re-fetch-after-write: a transition updates one field and the caller
// reloads the panel; a failed write leaves everything unchanged.
type PedidoService interface {
	Panel(ctx context.Context, providerID uuid.UUID) (*dto.PanelResponse, error)
	CambiarEstado(ctx context.Context, providerID, orderID uuid.UUID, req *dto.CambiarEstadoRequest) error
	Estadisticas(ctx context.Context, providerID uuid.UUID) (*dto.EstadisticasResponse, error)
}

type pedidoService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	providerRepo repository.ProviderRepository
	usuarioRepo  repository.UsuarioRepository
	proofRepo    repository.DeliveryProofRepository
	jobs         JobEnqueuer
}

func NewPedidoService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	providerRepo repository.ProviderRepository,
	usuarioRepo repository.UsuarioRepository,
	proofRepo repository.DeliveryProofRepository,
	jobs JobEnqueuer,
) PedidoService {
	return &pedidoService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		providerRepo: providerRepo,
		usuarioRepo:  usuarioRepo,
		proofRepo:    proofRepo,
		jobs:         jobs,
	}
}

func (s *pedidoService) Panel(ctx context.Context, providerID uuid.UUID) (*dto.PanelResponse, error) {
	orders, err := s.orderRepo.ListRecentByProviderID(ctx, providerID, recentOrdersLimit)
	if err != nil {
		return nil, err
	}
	pedidos := make([]dto.PedidoResponse, len(orders))
	for i := range orders {
		pedidos[i] = pedidoToResponse(&orders[i])
	}

	products, err := s.productRepo.ListByProviderID(ctx, providerID, false)
	if err != nil {
		return nil, err
	}
	productos := make([]dto.ProductoResponse, len(products))
	for i := range products {
		productos[i] = productoToResponse(&products[i])
	}

	stats, err := s.Estadisticas(ctx, providerID)
	if err != nil {
		return nil, err
	}

	return &dto.PanelResponse{
		Pedidos:      pedidos,
		Productos:    productos,
		Estadisticas: *stats,
	}, nil
}

func (s *pedidoService) CambiarEstado(ctx context.Context, providerID, orderID uuid.UUID, req *dto.CambiarEstadoRequest) error {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return errors.New("pedido no encontrado")
	}
	if order.ProviderID != providerID {
		return errors.New("el pedido no pertenece a este proveedor")
	}
	if !TransicionValida(order.Status, req.Status) {
		return fmt.Errorf("transición inválida: %s → %s", order.Status, req.Status)
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, req.Status); err != nil {
		// Write failed: state unchanged, no side effects dispatched.
		return err
	}

	if req.Status == model.OrderDelivered && req.ProofPhotoURL != nil {
		proof := &model.DeliveryProof{
			OrderID:     orderID,
			PhotoURL:    *req.ProofPhotoURL,
			Notes:       req.ProofNotes,
			DeliveredAt: time.Now(),
		}
		if err := s.proofRepo.Create(ctx, proof); err != nil {
			log.Warn().Err(err).Str("order", order.OrderNumber).Msg("no se pudo guardar la prueba de entrega")
		}
	}

	s.dispatchSideEffects(ctx, order, req.Status)
	return nil
}

func (s *pedidoService) Estadisticas(ctx context.Context, providerID uuid.UUID) (*dto.EstadisticasResponse, error) {
	totalVentas, err := s.orderRepo.SumTotalAmount(ctx, providerID)
	if err != nil {
		return nil, err
	}
	pendientes, err := s.orderRepo.CountByStatus(ctx, providerID, model.OrderPending)
	if err != nil {
		return nil, err
	}
	entregados, err := s.orderRepo.CountByStatus(ctx, providerID, model.OrderDelivered)
	if err != nil {
		return nil, err
	}
	activos, err := s.productRepo.CountActivos(ctx, providerID)
	if err != nil {
		return nil, err
	}

	// Rating is the provider's stored average, not recomputed here.
	rating := 0.0
	if provider, err := s.providerRepo.FindByID(ctx, providerID); err == nil {
		rating = provider.Rating
	}

	return &dto.EstadisticasResponse{
		TotalVentas:       totalVentas,
		PedidosPendientes: pendientes,
		PedidosEntregados: entregados,
		ProductosActivos:  activos,
		Rating:            rating,
	}, nil
}

// dispatchSideEffects enqueues the notification for the customer and, on
// delivered, the PDF receipt. Failures are swallowed: the status change
// already committed and the jobs are best-effort.
func (s *pedidoService) dispatchSideEffects(ctx context.Context, order *model.Order, nuevoEstado string) {
	if s.jobs == nil {
		return
	}

	titulos := map[string]string{
		model.OrderConfirmed: "Pedido confirmado",
		model.OrderInTransit: "Pedido en camino",
		model.OrderDelivered: "Pedido entregado",
		model.OrderCancelled: "Pedido cancelado",
	}
	_ = s.jobs.EnqueueNotificacion(ctx, worker.NotificacionJobPayload{
		UserID:  order.CustomerID.String(),
		OrderID: order.ID.String(),
		Title:   titulos[nuevoEstado],
		Message: fmt.Sprintf("Tu pedido %s ahora está %s", order.OrderNumber, nuevoEstado),
		Type:    "order_status",
	})

	if nuevoEstado != model.OrderDelivered {
		return
	}

	businessName := ""
	if provider, err := s.providerRepo.FindByID(ctx, order.ProviderID); err == nil {
		businessName = provider.BusinessName
	}
	customerEmail := ""
	if u, err := s.usuarioRepo.FindByID(ctx, order.CustomerID); err == nil {
		customerEmail = u.Email
	}
	_ = s.jobs.EnqueueRecibo(ctx, worker.ReciboJobPayload{
		OrderID:       order.ID.String(),
		BusinessName:  businessName,
		CustomerEmail: customerEmail,
	})
}

// ── DTO mapping ───────────────────────────────────────────────────────────────

func pedidoToResponse(o *model.Order) dto.PedidoResponse {
	resp := dto.PedidoResponse{
		ID:              o.ID.String(),
		OrderNumber:     o.OrderNumber,
		Status:          o.Status,
		DeliveryAddress: o.DeliveryAddress,
		ScheduledDate:   o.ScheduledDate,
		IsImmediate:     o.IsImmediate,
		TotalAmount:     o.TotalAmount,
		PaymentStatus:   o.PaymentStatus,
		PaymentMethod:   o.PaymentMethod,
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt,
		Items:           make([]dto.PedidoItemResponse, 0, len(o.Items)),
	}
	// The customer join may be absent in partially joined rows.
	if o.Customer != nil {
		name := o.Customer.FullName
		resp.CustomerName = &name
	}
	for _, item := range o.Items {
		productName := ""
		if item.Product != nil {
			productName = item.Product.Name
		}
		resp.Items = append(resp.Items, dto.PedidoItemResponse{
			ProductID:   item.ProductID.String(),
			ProductName: productName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
		})
	}
	return resp
}
