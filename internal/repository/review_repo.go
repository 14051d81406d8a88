package repository

import (
	"context"

	"github.com/panteragalgo/awa-app/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(ctx context.Context, tx *gorm.DB, rv *model.Review) error
	// ListByProviderID returns the provider's reviews newest first, with the
	// customer profile preloaded when the join exists.
	ListByProviderID(ctx context.Context, providerID uuid.UUID) ([]model.Review, error)
	ExistsByOrderID(ctx context.Context, orderID uuid.UUID) (bool, error)
	// DB exposes the underlying handle for multi-repo transactions.
	DB() *gorm.DB
}

type reviewRepo struct{ db *gorm.DB }

func NewReviewRepository(db *gorm.DB) ReviewRepository { return &reviewRepo{db: db} }

func (r *reviewRepo) DB() *gorm.DB { return r.db }

func (r *reviewRepo) Create(ctx context.Context, tx *gorm.DB, rv *model.Review) error {
	return tx.WithContext(ctx).Create(rv).Error
}

func (r *reviewRepo) ListByProviderID(ctx context.Context, providerID uuid.UUID) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Preload("Customer").
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepo) ExistsByOrderID(ctx context.Context, orderID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Review{}).
		Where("order_id = ?", orderID).
		Count(&count).Error
	return count > 0, err
}
