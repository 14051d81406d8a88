package service_test

import (
	"context"
	"errors"
	"time"

	"github.com/panteragalgo/awa-app/internal/model"
	"github.com/panteragalgo/awa-app/internal/repository"
	"github.com/panteragalgo/awa-app/internal/service"
	"github.com/panteragalgo/awa-app/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubUsuarioRepo is an in-memory UsuarioRepository for testing.
type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
	byEmail  map[string]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{
		usuarios: make(map[uuid.UUID]*model.Usuario),
		byEmail:  make(map[string]*model.Usuario),
	}
}

func (r *stubUsuarioRepo) Create(_ context.Context, _ *gorm.DB, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}

func (r *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (r *stubUsuarioRepo) Confirmar(_ context.Context, id uuid.UUID) error {
	u, ok := r.usuarios[id]
	if !ok {
		return errors.New("not found")
	}
	u.Confirmado = true
	return nil
}

func (r *stubUsuarioRepo) DB() *gorm.DB { return nil }

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

type stubProfileRepo struct {
	profiles map[uuid.UUID]*model.Profile
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{profiles: make(map[uuid.UUID]*model.Profile)}
}

func (r *stubProfileRepo) Create(_ context.Context, _ *gorm.DB, p *model.Profile) error {
	r.profiles[p.ID] = p
	return nil
}

func (r *stubProfileRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return p, nil
}

func (r *stubProfileRepo) Update(_ context.Context, p *model.Profile) error {
	r.profiles[p.ID] = p
	return nil
}

var _ repository.ProfileRepository = (*stubProfileRepo)(nil)

type stubProviderRepo struct {
	providers map[uuid.UUID]*model.Provider
}

func newStubProviderRepo() *stubProviderRepo {
	return &stubProviderRepo{providers: make(map[uuid.UUID]*model.Provider)}
}

func (r *stubProviderRepo) Create(_ context.Context, _ *gorm.DB, p *model.Provider) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.providers[p.ID] = p
	return nil
}

func (r *stubProviderRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Provider, error) {
	p, ok := r.providers[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return p, nil
}

func (r *stubProviderRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*model.Provider, error) {
	for _, p := range r.providers {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubProviderRepo) ListVerified(_ context.Context) ([]model.Provider, error) {
	var out []model.Provider
	for _, p := range r.providers {
		if p.Verified {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProviderRepo) Update(_ context.Context, _ *gorm.DB, p *model.Provider) error {
	r.providers[p.ID] = p
	return nil
}

var _ repository.ProviderRepository = (*stubProviderRepo)(nil)

type stubProductRepo struct {
	products map[uuid.UUID]*model.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return p, nil
}

func (r *stubProductRepo) ListByProviderID(_ context.Context, providerID uuid.UUID, soloActivos bool) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		if p.ProviderID != providerID {
			continue
		}
		if soloActivos && !p.Active {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) ToggleActivo(_ context.Context, id uuid.UUID) error {
	p, ok := r.products[id]
	if !ok {
		return errors.New("not found")
	}
	p.Active = !p.Active
	return nil
}

func (r *stubProductRepo) CountActivos(_ context.Context, providerID uuid.UUID) (int64, error) {
	var count int64
	for _, p := range r.products {
		if p.ProviderID == providerID && p.Active {
			count++
		}
	}
	return count, nil
}

var _ repository.ProductRepository = (*stubProductRepo)(nil)

type stubOrderRepo struct {
	orders map[uuid.UUID]*model.Order
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[uuid.UUID]*model.Order)}
}

func (r *stubOrderRepo) Create(_ context.Context, o *model.Order) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	r.orders[o.ID] = o
	return nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return o, nil
}

func (r *stubOrderRepo) ListRecentByProviderID(_ context.Context, providerID uuid.UUID, limit int) ([]model.Order, error) {
	var out []model.Order
	for _, o := range r.orders {
		if o.ProviderID == providerID {
			out = append(out, *o)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	o, ok := r.orders[id]
	if !ok {
		return errors.New("not found")
	}
	o.Status = status
	return nil
}

func (r *stubOrderRepo) CountByStatus(_ context.Context, providerID uuid.UUID, status string) (int64, error) {
	var count int64
	for _, o := range r.orders {
		if o.ProviderID == providerID && o.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *stubOrderRepo) SumTotalAmount(_ context.Context, providerID uuid.UUID) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, o := range r.orders {
		if o.ProviderID == providerID && o.Status != model.OrderCancelled {
			total = total.Add(o.TotalAmount)
		}
	}
	return total, nil
}

var _ repository.OrderRepository = (*stubOrderRepo)(nil)

type stubReviewRepo struct {
	reviews map[uuid.UUID]*model.Review
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{reviews: make(map[uuid.UUID]*model.Review)}
}

func (r *stubReviewRepo) Create(_ context.Context, _ *gorm.DB, rv *model.Review) error {
	if rv.ID == uuid.Nil {
		rv.ID = uuid.New()
	}
	r.reviews[rv.ID] = rv
	return nil
}

func (r *stubReviewRepo) ListByProviderID(_ context.Context, providerID uuid.UUID) ([]model.Review, error) {
	var out []model.Review
	for _, rv := range r.reviews {
		if rv.ProviderID == providerID {
			out = append(out, *rv)
		}
	}
	return out, nil
}

func (r *stubReviewRepo) ExistsByOrderID(_ context.Context, orderID uuid.UUID) (bool, error) {
	for _, rv := range r.reviews {
		if rv.OrderID == orderID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubReviewRepo) DB() *gorm.DB { return nil }

var _ repository.ReviewRepository = (*stubReviewRepo)(nil)

type stubDeliveryProofRepo struct {
	proofs map[uuid.UUID]*model.DeliveryProof
}

func newStubDeliveryProofRepo() *stubDeliveryProofRepo {
	return &stubDeliveryProofRepo{proofs: make(map[uuid.UUID]*model.DeliveryProof)}
}

func (r *stubDeliveryProofRepo) Create(_ context.Context, p *model.DeliveryProof) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.proofs[p.OrderID] = p
	return nil
}

func (r *stubDeliveryProofRepo) FindByOrderID(_ context.Context, orderID uuid.UUID) (*model.DeliveryProof, error) {
	p, ok := r.proofs[orderID]
	if !ok {
		return nil, errors.New("not found")
	}
	return p, nil
}

var _ repository.DeliveryProofRepository = (*stubDeliveryProofRepo)(nil)

// stubTokenStore holds confirmation tokens in a map; TTL is ignored.
type stubTokenStore struct {
	tokens map[string]string
}

func newStubTokenStore() *stubTokenStore {
	return &stubTokenStore{tokens: make(map[string]string)}
}

func (s *stubTokenStore) SaveConfirmToken(_ context.Context, token, userID string, _ time.Duration) error {
	s.tokens[token] = userID
	return nil
}

func (s *stubTokenStore) GetConfirmToken(_ context.Context, token string) (string, error) {
	userID, ok := s.tokens[token]
	if !ok {
		return "", errors.New("not found")
	}
	return userID, nil
}

func (s *stubTokenStore) DeleteConfirmToken(_ context.Context, token string) error {
	delete(s.tokens, token)
	return nil
}

var _ service.TokenStore = (*stubTokenStore)(nil)

// stubJobs captures enqueued jobs for assertion. It satisfies both the email
// and the order side-effect enqueuer contracts.
type stubJobs struct {
	emails         []worker.EmailJobPayload
	recibos        []worker.ReciboJobPayload
	notificaciones []worker.NotificacionJobPayload
}

func (s *stubJobs) EnqueueEmail(_ context.Context, p worker.EmailJobPayload) error {
	s.emails = append(s.emails, p)
	return nil
}

func (s *stubJobs) EnqueueRecibo(_ context.Context, p worker.ReciboJobPayload) error {
	s.recibos = append(s.recibos, p)
	return nil
}

func (s *stubJobs) EnqueueNotificacion(_ context.Context, p worker.NotificacionJobPayload) error {
	s.notificaciones = append(s.notificaciones, p)
	return nil
}

var (
	_ service.EmailEnqueuer = (*stubJobs)(nil)
	_ service.JobEnqueuer   = (*stubJobs)(nil)
)
