package repository

import (
	"context"

	"github.com/panteragalgo/awa-app/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, o *model.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	// ListRecentByProviderID returns the provider's most recent orders with
	// customer and item joins preloaded. limit bounds the page size.
	ListRecentByProviderID(ctx context.Context, providerID uuid.UUID, limit int) ([]model.Order, error)
	// UpdateStatus issues a single-field status update. The caller re-fetches
	// afterwards; there is no optimistic in-memory patch.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	CountByStatus(ctx context.Context, providerID uuid.UUID, status string) (int64, error)
	// SumTotalAmount aggregates total_amount over ALL of the provider's
	// non-cancelled orders, unbounded — the stats block must not depend on
	// the recent page.
	SumTotalAmount(ctx context.Context, providerID uuid.UUID) (decimal.Decimal, error)
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) OrderRepository { return &orderRepo{db: db} }

func (r *orderRepo) Create(ctx context.Context, o *model.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *orderRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items.Product").
		First(&o, id).Error
	return &o, err
}

func (r *orderRepo) ListRecentByProviderID(ctx context.Context, providerID uuid.UUID, limit int) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Preload("Customer").
		Preload("Items.Product").
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).Model(&model.Order{}).Where("id = ?", id).
		Update("status", status).Error
}

func (r *orderRepo) CountByStatus(ctx context.Context, providerID uuid.UUID, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("provider_id = ? AND status = ?", providerID, status).
		Count(&count).Error
	return count, err
}

func (r *orderRepo) SumTotalAmount(ctx context.Context, providerID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select("SUM(total_amount)").
		Where("provider_id = ? AND status <> ?", providerID, model.OrderCancelled).
		Scan(&total).Error
	if err != nil || !total.Valid {
		return decimal.Zero, err
	}
	return total.Decimal, nil
}
