package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// LoginRequest carries credentials plus the portal the user is logging into.
// A cliente account logging into the proveedor portal (or vice versa) is
// rejected without issuing a session.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Portal   string `json:"portal"   validate:"required,oneof=cliente proveedor"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RegisterRequest collects role-conditional fields: clientes need name and
// phone; proveedores additionally need business name and CUIT. The conditional
// requirements are enforced in the service, not here.
type RegisterRequest struct {
	Email           string  `json:"email"            validate:"required,email"`
	Password        string  `json:"password"         validate:"required,min=6"`
	ConfirmPassword string  `json:"confirm_password" validate:"required"`
	UserType        string  `json:"user_type"        validate:"required,oneof=cliente proveedor"`
	FullName        string  `json:"full_name"        validate:"required,min=2,max=120"`
	Phone           *string `json:"phone"`
	BusinessName    *string `json:"business_name"`
	CUIT            *string `json:"cuit"`
	AcceptTerms     bool    `json:"accept_terms"`
}

type ConfirmRequest struct {
	Token string `json:"token" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PerfilResponse struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	FullName string  `json:"full_name"`
	Phone    *string `json:"phone"`
	UserType string  `json:"user_type"`
}

type LoginResponse struct {
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	TokenType    string         `json:"token_type"`
	ExpiresIn    int            `json:"expires_in"` // seconds
	User         PerfilResponse `json:"user"`
}

// RegisterResponse carries the "revisá tu email" outcome; no session exists
// until the account is confirmed.
type RegisterResponse struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}
