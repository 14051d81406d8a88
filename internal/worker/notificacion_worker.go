package worker

// notificacion_worker.go
// Processes in-app notification jobs from QueueNotificacion: an order status
// change produces a Notification record for the customer.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/panteragalgo/awa-app/internal/model"
	"github.com/panteragalgo/awa-app/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// NotificacionJobPayload is the job envelope sent to QueueNotificacion.
type NotificacionJobPayload struct {
	UserID  string `json:"user_id"`
	OrderID string `json:"order_id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

type NotificacionWorker struct {
	repo repository.NotificationRepository
}

func NewNotificacionWorker(repo repository.NotificationRepository) *NotificacionWorker {
	return &NotificacionWorker{repo: repo}
}

func (w *NotificacionWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload NotificacionJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("notificacion_worker: invalid payload: %w", err)
	}

	userID, err := uuid.Parse(payload.UserID)
	if err != nil {
		return fmt.Errorf("notificacion_worker: invalid user_id: %w", err)
	}

	n := &model.Notification{
		UserID:  userID,
		Title:   payload.Title,
		Message: payload.Message,
		Type:    payload.Type,
	}
	if payload.OrderID != "" {
		if orderID, err := uuid.Parse(payload.OrderID); err == nil {
			n.RelatedOrderID = &orderID
		}
	}

	if err := w.repo.Create(ctx, n); err != nil {
		return fmt.Errorf("notificacion_worker: create: %w", err)
	}
	log.Info().Str("user_id", payload.UserID).Str("type", payload.Type).Msg("notificacion_worker: created")
	return nil
}
