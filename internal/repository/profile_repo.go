package repository

import (
	"context"

	"github.com/panteragalgo/awa-app/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	Create(ctx context.Context, tx *gorm.DB, p *model.Profile) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error)
	Update(ctx context.Context, p *model.Profile) error
}

type profileRepo struct{ db *gorm.DB }

func NewProfileRepository(db *gorm.DB) ProfileRepository { return &profileRepo{db: db} }

func (r *profileRepo) Create(ctx context.Context, tx *gorm.DB, p *model.Profile) error {
	return tx.WithContext(ctx).Create(p).Error
}

func (r *profileRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	var p model.Profile
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *profileRepo) Update(ctx context.Context, p *model.Profile) error {
	return r.db.WithContext(ctx).Save(p).Error
}
