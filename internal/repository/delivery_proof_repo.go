package repository

import (
	"context"

	"github.com/panteragalgo/awa-app/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeliveryProofRepository interface {
	Create(ctx context.Context, p *model.DeliveryProof) error
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*model.DeliveryProof, error)
}

type deliveryProofRepo struct{ db *gorm.DB }

func NewDeliveryProofRepository(db *gorm.DB) DeliveryProofRepository {
	return &deliveryProofRepo{db: db}
}

func (r *deliveryProofRepo) Create(ctx context.Context, p *model.DeliveryProof) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *deliveryProofRepo) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*model.DeliveryProof, error) {
	var p model.DeliveryProof
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&p).Error
	return &p, err
}
