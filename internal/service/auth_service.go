package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/panteragalgo/awa-app/internal/config"
	"github.com/panteragalgo/awa-app/internal/dto"
	"github.com/panteragalgo/awa-app/internal/emailtpl"
	"github.com/panteragalgo/awa-app/internal/model"
	"github.com/panteragalgo/awa-app/internal/repository"
	"github.com/panteragalgo/awa-app/internal/worker"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const confirmTokenTTL = 48 * time.Hour

// AuthService is the single account flow for both portals: the portal is a
// parameter, not a separate implementation.
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error)
	Confirmar(ctx context.Context, token string) error
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)
	Me(ctx context.Context, userID uuid.UUID) (*dto.PerfilResponse, error)
}

// TokenStore keeps pending email-confirmation tokens (Redis in production).
type TokenStore interface {
	SaveConfirmToken(ctx context.Context, token, userID string, ttl time.Duration) error
	GetConfirmToken(ctx context.Context, token string) (string, error)
	DeleteConfirmToken(ctx context.Context, token string) error
}

// EmailEnqueuer dispatches templated email jobs to the worker pool.
type EmailEnqueuer interface {
	EnqueueEmail(ctx context.Context, payload worker.EmailJobPayload) error
}

type authService struct {
	usuarioRepo  repository.UsuarioRepository
	profileRepo  repository.ProfileRepository
	providerRepo repository.ProviderRepository
	tokens       TokenStore
	emails       EmailEnqueuer
	cfg          *config.Config
}

func NewAuthService(
	usuarioRepo repository.UsuarioRepository,
	profileRepo repository.ProfileRepository,
	providerRepo repository.ProviderRepository,
	tokens TokenStore,
	emails EmailEnqueuer,
	cfg *config.Config,
) AuthService {
	return &authService{
		usuarioRepo:  usuarioRepo,
		profileRepo:  profileRepo,
		providerRepo: providerRepo,
		tokens:       tokens,
		emails:       emails,
		cfg:          cfg,
	}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.usuarioRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.New("credenciales inválidas")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("credenciales inválidas")
	}
	if !user.Confirmado {
		return nil, errors.New("confirmá tu email antes de ingresar")
	}

	profile, err := s.profileRepo.FindByID(ctx, user.ID)
	if err != nil {
		return nil, errors.New("perfil no encontrado")
	}

	// Cross-portal login: reject without issuing any token, so no session
	// ever exists in a mismatched state.
	if profile.UserType != req.Portal {
		return nil, fmt.Errorf("esta cuenta es de tipo %s; usá el portal correcto", profile.UserType)
	}

	return s.buildLoginResponse(ctx, user, profile)
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	// Local pre-submission checks, same presentation as any other failure.
	if req.Password != req.ConfirmPassword {
		return nil, errors.New("las contraseñas no coinciden")
	}
	if !req.AcceptTerms {
		return nil, errors.New("debés aceptar los términos y condiciones")
	}
	if req.UserType == model.UserTypeProveedor {
		if req.BusinessName == nil || *req.BusinessName == "" {
			return nil, errors.New("el nombre del negocio es obligatorio para proveedores")
		}
		if req.CUIT == nil || *req.CUIT == "" {
			return nil, errors.New("el CUIT es obligatorio para proveedores")
		}
	}

	if _, err := s.usuarioRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, errors.New("ya existe una cuenta con ese email")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}

	user := &model.Usuario{Email: req.Email, PasswordHash: string(hash)}
	txErr := runTx(ctx, s.usuarioRepo.DB(), func(tx *gorm.DB) error {
		if err := s.usuarioRepo.Create(ctx, tx, user); err != nil {
			return err
		}
		profile := &model.Profile{
			ID:       user.ID,
			FullName: req.FullName,
			Phone:    req.Phone,
			UserType: req.UserType,
		}
		if err := s.profileRepo.Create(ctx, tx, profile); err != nil {
			return err
		}
		if req.UserType == model.UserTypeProveedor {
			provider := &model.Provider{
				UserID:       user.ID,
				BusinessName: *req.BusinessName,
				CUIT:         *req.CUIT,
			}
			if err := s.providerRepo.Create(ctx, tx, provider); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	// Confirmation token + welcome email. A failure here is logged by the
	// worker path; the account stays pending and can request a resend.
	token := uuid.NewString()
	if err := s.tokens.SaveConfirmToken(ctx, token, user.ID.String(), confirmTokenTTL); err != nil {
		return nil, err
	}

	tpl := emailtpl.ClienteBienvenida
	if req.UserType == model.UserTypeProveedor {
		tpl = emailtpl.ProveedorBienvenida
	}
	_ = s.emails.EnqueueEmail(ctx, worker.EmailJobPayload{
		ToEmail:  req.Email,
		Template: tpl,
		Data: emailtpl.Data{
			Nombre:          req.FullName,
			ConfirmationURL: s.confirmationURL(token),
			UserType:        req.UserType,
		},
	})

	return &dto.RegisterResponse{
		Email:   req.Email,
		Message: "Revisá tu email para confirmar tu cuenta",
	}, nil
}

func (s *authService) Confirmar(ctx context.Context, token string) error {
	userIDStr, err := s.tokens.GetConfirmToken(ctx, token)
	if err != nil {
		return errors.New("token de confirmación inválido o vencido")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return errors.New("token de confirmación inválido o vencido")
	}

	if err := s.usuarioRepo.Confirmar(ctx, userID); err != nil {
		return err
	}
	_ = s.tokens.DeleteConfirmToken(ctx, token)

	user, err := s.usuarioRepo.FindByID(ctx, userID)
	if err != nil {
		return nil // account is confirmed; the courtesy email is best-effort
	}
	profile, err := s.profileRepo.FindByID(ctx, userID)
	if err != nil {
		return nil
	}
	_ = s.emails.EnqueueEmail(ctx, worker.EmailJobPayload{
		ToEmail:  user.Email,
		Template: emailtpl.CuentaActivada,
		Data: emailtpl.Data{
			Nombre:   profile.FullName,
			LoginURL: s.cfg.PublicBaseURL + "/auth/login",
			UserType: profile.UserType,
		},
	})
	return nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("refresh token inválido o expirado")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("claims inválidos")
	}
	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return nil, errors.New("token mal formado")
	}
	uid, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, errors.New("token mal formado")
	}

	user, err := s.usuarioRepo.FindByID(ctx, uid)
	if err != nil || !user.Confirmado {
		return nil, errors.New("usuario no encontrado o pendiente de confirmación")
	}
	profile, err := s.profileRepo.FindByID(ctx, uid)
	if err != nil {
		return nil, errors.New("perfil no encontrado")
	}

	return s.buildLoginResponse(ctx, user, profile)
}

func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*dto.PerfilResponse, error) {
	user, err := s.usuarioRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.New("usuario no encontrado")
	}
	profile, err := s.profileRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.New("perfil no encontrado")
	}
	resp := perfilToResponse(user, profile)
	return &resp, nil
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func (s *authService) buildLoginResponse(ctx context.Context, user *model.Usuario, profile *model.Profile) (*dto.LoginResponse, error) {
	var providerID *string
	if profile.UserType == model.UserTypeProveedor {
		if provider, err := s.providerRepo.FindByUserID(ctx, user.ID); err == nil {
			id := provider.ID.String()
			providerID = &id
		}
	}

	accessToken, err := s.generateToken(user, profile, providerID, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.generateToken(user, profile, providerID, time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    s.cfg.JWTExpirationHours * 3600,
		User:         perfilToResponse(user, profile),
	}, nil
}

func (s *authService) generateToken(user *model.Usuario, profile *model.Profile, providerID *string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   user.ID.String(),
		"email":     user.Email,
		"user_type": profile.UserType,
		"exp":       time.Now().Add(duration).Unix(),
		"iat":       time.Now().Unix(),
	}
	if providerID != nil {
		claims["provider_id"] = *providerID
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// confirmationURL prefers the explicit redirect override; otherwise the link
// is derived from the public base URL.
func (s *authService) confirmationURL(token string) string {
	base := s.cfg.PublicBaseURL + "/auth/confirm"
	if s.cfg.EmailRedirectURL != "" {
		base = s.cfg.EmailRedirectURL
	}
	return base + "?token=" + token
}

func perfilToResponse(user *model.Usuario, profile *model.Profile) dto.PerfilResponse {
	return dto.PerfilResponse{
		ID:       user.ID.String(),
		Email:    user.Email,
		FullName: profile.FullName,
		Phone:    profile.Phone,
		UserType: profile.UserType,
	}
}
