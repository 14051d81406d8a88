package repository

import (
	"context"

	"github.com/panteragalgo/awa-app/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	// ListByProviderID returns the provider's products ordered by name;
	// soloActivos limits the result to active catalog entries.
	ListByProviderID(ctx context.Context, providerID uuid.UUID, soloActivos bool) ([]model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	// ToggleActivo flips the active flag in a single-field update.
	ToggleActivo(ctx context.Context, id uuid.UUID) error
	CountActivos(ctx context.Context, providerID uuid.UUID) (int64, error)
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *productRepo) ListByProviderID(ctx context.Context, providerID uuid.UUID, soloActivos bool) ([]model.Product, error) {
	var products []model.Product
	q := r.db.WithContext(ctx).Where("provider_id = ?", providerID)
	if soloActivos {
		q = q.Where("active = true")
	}
	err := q.Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productRepo) ToggleActivo(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).
		Update("active", gorm.Expr("NOT active")).Error
}

func (r *productRepo) CountActivos(ctx context.Context, providerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("provider_id = ? AND active = true", providerID).
		Count(&count).Error
	return count, err
}
