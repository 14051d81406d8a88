package repository

import (
	"context"

	"github.com/panteragalgo/awa-app/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UsuarioRepository is the data access contract for auth accounts.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type UsuarioRepository interface {
	// Create writes through tx so the caller can group it with the profile
	// and provider inserts of the same registration.
	Create(ctx context.Context, tx *gorm.DB, u *model.Usuario) error
	FindByEmail(ctx context.Context, email string) (*model.Usuario, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Usuario, error)
	Confirmar(ctx context.Context, id uuid.UUID) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) Create(ctx context.Context, tx *gorm.DB, u *model.Usuario) error {
	return tx.WithContext(ctx).Create(u).Error
}

func (r *usuarioRepo) FindByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	return &u, err
}

func (r *usuarioRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).First(&u, id).Error
	return &u, err
}

func (r *usuarioRepo) Confirmar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Usuario{}).Where("id = ?", id).Update("confirmado", true).Error
}

func (r *usuarioRepo) DB() *gorm.DB { return r.db }
