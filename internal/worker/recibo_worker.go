package worker

// recibo_worker.go
// Processes receipt jobs from QueueRecibo: when an order reaches delivered,
// generates the PDF receipt and emails it to the customer.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/panteragalgo/awa-app/internal/infra"
	"github.com/panteragalgo/awa-app/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ReciboJobPayload is the job envelope sent to QueueRecibo.
type ReciboJobPayload struct {
	OrderID       string `json:"order_id"`
	BusinessName  string `json:"business_name"`
	CustomerEmail string `json:"customer_email"`
}

// ReciboWorker generates the order receipt PDF and sends it by email.
type ReciboWorker struct {
	orderRepo   repository.OrderRepository
	mailer      *infra.Mailer
	storagePath string
}

func NewReciboWorker(orderRepo repository.OrderRepository, mailer *infra.Mailer, storagePath string) *ReciboWorker {
	return &ReciboWorker{orderRepo: orderRepo, mailer: mailer, storagePath: storagePath}
}

func (w *ReciboWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload ReciboJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("recibo_worker: invalid payload: %w", err)
	}

	orderID, err := uuid.Parse(payload.OrderID)
	if err != nil {
		return fmt.Errorf("recibo_worker: invalid order_id: %w", err)
	}

	order, err := w.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("recibo_worker: order %s not found: %w", payload.OrderID, err)
	}

	pdfPath, err := infra.GenerateReciboPDF(order, payload.BusinessName, w.storagePath)
	if err != nil {
		return err
	}

	if payload.CustomerEmail == "" {
		log.Warn().Str("order", order.OrderNumber).Msg("recibo_worker: no customer email, PDF generated only")
		return nil
	}

	subject := fmt.Sprintf("Tu pedido %s fue entregado 💧", order.OrderNumber)
	body := fmt.Sprintf("<p>¡Gracias por tu pedido! Adjuntamos el recibo de <b>%s</b>.</p>", payload.BusinessName)
	if err := w.mailer.SendHTML(payload.CustomerEmail, subject, body, pdfPath); err != nil {
		return fmt.Errorf("recibo_worker: send to %s: %w", payload.CustomerEmail, err)
	}
	log.Info().Str("order", order.OrderNumber).Str("to", payload.CustomerEmail).Msg("recibo_worker: recibo sent")
	return nil
}
