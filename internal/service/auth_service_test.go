package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/panteragalgo/awa-app/internal/config"
	"github.com/panteragalgo/awa-app/internal/dto"
	"github.com/panteragalgo/awa-app/internal/emailtpl"
	"github.com/panteragalgo/awa-app/internal/model"
	"github.com/panteragalgo/awa-app/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildAuthSvc() (service.AuthService, *stubUsuarioRepo, *stubProviderRepo, *stubTokenStore, *stubJobs) {
	usuarioRepo := newStubUsuarioRepo()
	profileRepo := newStubProfileRepo()
	providerRepo := newStubProviderRepo()
	tokens := newStubTokenStore()
	jobs := &stubJobs{}
	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		JWTRefreshHours:    24,
		PublicBaseURL:      "http://localhost:3000",
	}
	svc := service.NewAuthService(usuarioRepo, profileRepo, providerRepo, tokens, jobs, cfg)
	return svc, usuarioRepo, providerRepo, tokens, jobs
}

func registrar(t *testing.T, svc service.AuthService, email, userType string) {
	t.Helper()
	req := dto.RegisterRequest{
		Email:           email,
		Password:        "secreto123",
		ConfirmPassword: "secreto123",
		UserType:        userType,
		FullName:        "Cuenta de Prueba",
		AcceptTerms:     true,
	}
	if userType == model.UserTypeProveedor {
		nombre := "Agua Pura del Sur"
		cuit := "30-71234567-8"
		req.BusinessName = &nombre
		req.CUIT = &cuit
	}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
}

func confirmar(t *testing.T, svc service.AuthService, tokens *stubTokenStore) {
	t.Helper()
	for token := range tokens.tokens {
		require.NoError(t, svc.Confirmar(context.Background(), token))
		return
	}
	t.Fatal("no hay token de confirmación pendiente")
}

func TestRegister_ClienteYConfirmacion(t *testing.T) {
	svc, usuarioRepo, _, tokens, jobs := buildAuthSvc()

	registrar(t, svc, "cliente@test.com", model.UserTypeCliente)

	// La cuenta nace sin confirmar y con el email de bienvenida encolado.
	user, err := usuarioRepo.FindByEmail(context.Background(), "cliente@test.com")
	require.NoError(t, err)
	assert.False(t, user.Confirmado)
	require.Len(t, jobs.emails, 1)
	assert.Equal(t, emailtpl.ClienteBienvenida, jobs.emails[0].Template)
	assert.Contains(t, jobs.emails[0].Data.ConfirmationURL, "token=")

	// Login antes de confirmar: rechazado.
	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Email: "cliente@test.com", Password: "secreto123", Portal: "cliente",
	})
	assert.ErrorContains(t, err, "confirmá tu email")

	confirmar(t, svc, tokens)
	user, _ = usuarioRepo.FindByEmail(context.Background(), "cliente@test.com")
	assert.True(t, user.Confirmado)
	assert.Empty(t, tokens.tokens) // token consumido

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "cliente@test.com", Password: "secreto123", Portal: "cliente",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, model.UserTypeCliente, resp.User.UserType)
}

func TestRegister_ProveedorCreaProvider(t *testing.T) {
	svc, usuarioRepo, providerRepo, _, jobs := buildAuthSvc()

	registrar(t, svc, "prov@test.com", model.UserTypeProveedor)

	user, err := usuarioRepo.FindByEmail(context.Background(), "prov@test.com")
	require.NoError(t, err)
	provider, err := providerRepo.FindByUserID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Agua Pura del Sur", provider.BusinessName)
	assert.False(t, provider.Verified)

	require.Len(t, jobs.emails, 1)
	assert.Equal(t, emailtpl.ProveedorBienvenida, jobs.emails[0].Template)
}

func TestRegister_Validaciones(t *testing.T) {
	svc, _, _, _, _ := buildAuthSvc()

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email: "x@test.com", Password: "abc123", ConfirmPassword: "otra",
		UserType: "cliente", FullName: "X", AcceptTerms: true,
	})
	assert.ErrorContains(t, err, "no coinciden")

	_, err = svc.Register(context.Background(), dto.RegisterRequest{
		Email: "x@test.com", Password: "abc123", ConfirmPassword: "abc123",
		UserType: "cliente", FullName: "X",
	})
	assert.ErrorContains(t, err, "términos")

	// Proveedor sin nombre de negocio ni CUIT.
	_, err = svc.Register(context.Background(), dto.RegisterRequest{
		Email: "x@test.com", Password: "abc123", ConfirmPassword: "abc123",
		UserType: "proveedor", FullName: "X", AcceptTerms: true,
	})
	assert.ErrorContains(t, err, "nombre del negocio")
}

func TestRegister_EmailDuplicado(t *testing.T) {
	svc, _, _, tokens, _ := buildAuthSvc()
	registrar(t, svc, "dup@test.com", model.UserTypeCliente)
	confirmar(t, svc, tokens)

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email: "dup@test.com", Password: "abc123", ConfirmPassword: "abc123",
		UserType: "cliente", FullName: "Otro", AcceptTerms: true,
	})
	assert.ErrorContains(t, err, "ya existe una cuenta")
}

func TestLogin_PortalCruzadoSinSesion(t *testing.T) {
	svc, _, _, tokens, _ := buildAuthSvc()
	registrar(t, svc, "cliente@test.com", model.UserTypeCliente)
	confirmar(t, svc, tokens)

	// Una cuenta cliente en el portal proveedor: sin token de ningún tipo.
	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "cliente@test.com", Password: "secreto123", Portal: "proveedor",
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "cliente")
	assert.Nil(t, resp)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	svc, _, _, tokens, _ := buildAuthSvc()
	registrar(t, svc, "cliente@test.com", model.UserTypeCliente)
	confirmar(t, svc, tokens)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "cliente@test.com", Password: "equivocada", Portal: "cliente",
	})
	assert.ErrorContains(t, err, "credenciales inválidas")

	// Cuenta inexistente: mismo mensaje, sin filtrar si el email existe.
	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Email: "nadie@test.com", Password: "secreto123", Portal: "cliente",
	})
	assert.ErrorContains(t, err, "credenciales inválidas")
}

func TestConfirmar_TokenInvalido(t *testing.T) {
	svc, _, _, _, _ := buildAuthSvc()
	err := svc.Confirmar(context.Background(), "token-inexistente")
	assert.ErrorContains(t, err, "inválido o vencido")
}

func TestRefresh_EmiteNuevoPar(t *testing.T) {
	svc, _, _, tokens, _ := buildAuthSvc()
	registrar(t, svc, "cliente@test.com", model.UserTypeCliente)
	confirmar(t, svc, tokens)

	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "cliente@test.com", Password: "secreto123", Portal: "cliente",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, login.User.ID, refreshed.User.ID)

	_, err = svc.Refresh(context.Background(), "no-es-un-jwt")
	assert.Error(t, err)
}

func TestLinkDeConfirmacion_RespetaRedirectConfigurado(t *testing.T) {
	usuarioRepo := newStubUsuarioRepo()
	profileRepo := newStubProfileRepo()
	providerRepo := newStubProviderRepo()
	tokens := newStubTokenStore()
	jobs := &stubJobs{}
	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		JWTRefreshHours:    24,
		PublicBaseURL:      "http://localhost:3000",
		EmailRedirectURL:   "https://app.awa.com.ar/confirmar",
	}
	svc := service.NewAuthService(usuarioRepo, profileRepo, providerRepo, tokens, jobs, cfg)

	registrar(t, svc, "cliente@test.com", model.UserTypeCliente)

	require.Len(t, jobs.emails, 1)
	url := jobs.emails[0].Data.ConfirmationURL
	assert.True(t, strings.HasPrefix(url, "https://app.awa.com.ar/confirmar?token="), url)
}

func TestLinkDeConfirmacion_DerivaDeLaBaseSinOverride(t *testing.T) {
	svc, _, _, _, jobs := buildAuthSvc()
	registrar(t, svc, "cliente@test.com", model.UserTypeCliente)

	require.Len(t, jobs.emails, 1)
	url := jobs.emails[0].Data.ConfirmationURL
	assert.True(t, strings.HasPrefix(url, "http://localhost:3000/auth/confirm?token="), url)
}
