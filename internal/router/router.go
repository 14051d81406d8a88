package router

import (
	"time"

	"github.com/panteragalgo/awa-app/internal/config"
	"github.com/panteragalgo/awa-app/internal/handler"
	"github.com/panteragalgo/awa-app/internal/infra"
	"github.com/panteragalgo/awa-app/internal/middleware"
	"github.com/panteragalgo/awa-app/internal/model"
	"github.com/panteragalgo/awa-app/internal/repository"
	"github.com/panteragalgo/awa-app/internal/service"
	"github.com/panteragalgo/awa-app/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	corsOrigin := "" // dev: any origin
	if cfg.Env == "production" {
		corsOrigin = cfg.PublicBaseURL
	}
	r.Use(middleware.CORS(corsOrigin))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	tokenStore := infra.NewRedisTokenStore(rdb)

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	providerRepo := repository.NewProviderRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	proofRepo := repository.NewDeliveryProofRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, profileRepo, providerRepo, tokenStore, dispatcher, cfg)
	proveedorSvc := service.NewProveedorService(providerRepo, productRepo, reviewRepo)
	carritoSvc := service.NewCarritoService(productRepo)
	productoSvc := service.NewProductoService(productRepo)
	pedidoSvc := service.NewPedidoService(orderRepo, productRepo, providerRepo, usuarioRepo, proofRepo, dispatcher)
	resenaSvc := service.NewResenaService(reviewRepo, orderRepo, providerRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	proveedoresH := handler.NewProveedoresHandler(proveedorSvc, resenaSvc)
	carritoH := handler.NewCarritoHandler(carritoSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc)
	resenasH := handler.NewResenasHandler(resenaSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/register", authH.Register)
		auth.POST("/confirm", authH.Confirm)
		auth.POST("/refresh", authH.Refresh)
	}

	// Provider directory — browsable without a session
	r.GET("/v1/proveedores", proveedoresH.Buscar)
	r.GET("/v1/proveedores/:id", proveedoresH.Detalle)
	r.GET("/v1/proveedores/:id/resenas", proveedoresH.Resenas)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		v1.GET("/me", authH.Me)

		// Customer portal: one cart per provider, reviews on delivered orders
		cliente := v1.Group("", middleware.RequireUserType(model.UserTypeCliente))
		{
			carrito := cliente.Group("/carrito/:providerId")
			{
				carrito.GET("", carritoH.Obtener)
				carrito.POST("/items", carritoH.Agregar)
				carrito.PATCH("/items/:productId", carritoH.ActualizarCantidad)
				carrito.DELETE("", carritoH.Vaciar)
			}
			cliente.POST("/resenas", resenasH.Crear)
		}

		// Provider portal: dashboard, own catalog, order lifecycle
		panel := v1.Group("/panel", middleware.RequireUserType(model.UserTypeProveedor))
		{
			panel.GET("", pedidosH.Panel)
			panel.GET("/estadisticas", pedidosH.Estadisticas)
			panel.PATCH("/pedidos/:id/estado", pedidosH.CambiarEstado)

			panel.GET("/productos", productosH.Listar)
			panel.POST("/productos", productosH.Crear)
			panel.PUT("/productos/:id", productosH.Actualizar)
			panel.PATCH("/productos/:id/toggle", productosH.ToggleActivo)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
