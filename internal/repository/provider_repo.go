package repository

import (
	"context"

	"github.com/panteragalgo/awa-app/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProviderRepository interface {
	Create(ctx context.Context, tx *gorm.DB, p *model.Provider) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Provider, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Provider, error)
	// ListVerified returns all verified providers with their products
	// preloaded; filtering and ordering happen in memory afterwards.
	ListVerified(ctx context.Context) ([]model.Provider, error)
	// Update writes through tx: the rating fold must commit together with
	// the review that produced it.
	Update(ctx context.Context, tx *gorm.DB, p *model.Provider) error
}

type providerRepo struct{ db *gorm.DB }

func NewProviderRepository(db *gorm.DB) ProviderRepository { return &providerRepo{db: db} }

func (r *providerRepo) Create(ctx context.Context, tx *gorm.DB, p *model.Provider) error {
	return tx.WithContext(ctx).Create(p).Error
}

func (r *providerRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Provider, error) {
	var p model.Provider
	err := r.db.WithContext(ctx).Preload("Products").First(&p, id).Error
	return &p, err
}

func (r *providerRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Provider, error) {
	var p model.Provider
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error
	return &p, err
}

func (r *providerRepo) ListVerified(ctx context.Context) ([]model.Provider, error) {
	var providers []model.Provider
	err := r.db.WithContext(ctx).
		Where("verified = true").
		Preload("Products").
		Order("business_name ASC").
		Find(&providers).Error
	return providers, err
}

func (r *providerRepo) Update(ctx context.Context, tx *gorm.DB, p *model.Provider) error {
	return tx.WithContext(ctx).Save(p).Error
}
