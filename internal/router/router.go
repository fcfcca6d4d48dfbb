package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"sallepos/internal/config"
	"sallepos/internal/handler"
	"sallepos/internal/infra"
	"sallepos/internal/middleware"
	"sallepos/internal/model"
	"sallepos/internal/repository"
	"sallepos/internal/service"
	"sallepos/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine plus the
// receipt worker for the pool started in main.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*gin.Engine, *worker.ReciboWorker) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	mailer := infra.NewMailer(cfg)

	// ── Repositories ─────────────────────────────────────────────────────────
	ttl := cfg.SessionTimeout()
	empleadoRepo := repository.NewEmpleadoRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	cierreRepo := repository.NewCierreRepository(db)
	descuentoRepo := repository.NewDescuentoRepository(db)
	configuracionRepo := repository.NewConfiguracionRepository(db)
	auditoriaRepo := repository.NewAuditoriaRepository(db)
	sesionRepo := repository.NewSesionRepository(rdb, ttl)
	ordenRepo := repository.NewOrdenRepository(rdb, ttl)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(empleadoRepo, sesionRepo)
	cajaSvc := service.NewCajaService(sesionRepo, ventaRepo, cierreRepo)
	ordenSvc := service.NewOrdenService(ordenRepo, clienteRepo, auditoriaRepo)
	pagoSvc := service.NewPagoService(ordenRepo, sesionRepo, ventaRepo, clienteRepo, descuentoRepo, auditoriaRepo, dispatcher)
	clienteSvc := service.NewClienteService(clienteRepo)
	descuentoSvc := service.NewDescuentoService(descuentoRepo, clienteRepo)
	productoSvc := service.NewProductoService(productoRepo, categoriaRepo)
	categoriaSvc := service.NewCategoriaService(categoriaRepo, productoRepo)
	empleadoSvc := service.NewEmpleadoService(empleadoRepo)
	configuracionSvc := service.NewConfiguracionService(configuracionRepo)
	reporteSvc := service.NewReporteService(ventaRepo, cfg.PDFStoragePath)
	reciboSvc := service.NewReciboService(ventaRepo, configuracionRepo, cfg.PDFStoragePath)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	cajaH := handler.NewCajaHandler(cajaSvc)
	ordenesH := handler.NewOrdenesHandler(ordenSvc)
	pagosH := handler.NewPagosHandler(pagoSvc)
	clientesH := handler.NewClientesHandler(clienteSvc, descuentoSvc)
	descuentosH := handler.NewDescuentosHandler(descuentoSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	categoriasH := handler.NewCategoriasHandler(categoriaSvc)
	empleadosH := handler.NewEmpleadosHandler(empleadoSvc)
	configuracionH := handler.NewConfiguracionHandler(configuracionSvc)
	reportesH := handler.NewReportesHandler(reporteSvc)
	recibosH := handler.NewRecibosHandler(reciboSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.POST("/api/login", middleware.LoginRateLimiter(), authH.Login)

	// Session-protected terminal endpoints
	sessionMW := middleware.SessionAuth(sesionRepo)
	api := r.Group("/api", sessionMW)
	{
		api.POST("/cerrar-sesion", authH.Logout)

		api.POST("/set-caja", cajaH.AbrirCaja)
		api.GET("/get-caja", cajaH.CajaActual)
		api.GET("/resumen-caja", cajaH.ResumenCaja)
		api.POST("/cerrar-caja", cajaH.CerrarCaja)

		api.POST("/ordenes", ordenesH.Crear)
		api.GET("/ordenes", ordenesH.Listar)
		api.GET("/ordenes-todas", ordenesH.ListarTodas)
		api.GET("/ordenes/:id", ordenesH.Obtener)
		api.DELETE("/ordenes/:id", ordenesH.Cancelar)

		api.POST("/procesar-pago", pagosH.ProcesarPago)
		api.POST("/procesar-pago-puntos", pagosH.ProcesarPagoPuntos)
		api.GET("/recibos/:id", recibosH.Descargar)

		api.GET("/productos", productosH.Listar)
		api.GET("/productos/:id", productosH.Obtener)
		api.GET("/categorias", categoriasH.Listar)

		api.POST("/clientes", clientesH.Crear)
		api.GET("/clientes", clientesH.Listar)
		api.GET("/clientes/:id", clientesH.Obtener)
		api.GET("/clientes/:id/descuento", clientesH.DescuentoActivo)

		api.GET("/configuracion-ticket", configuracionH.Obtener)
	}

	// Manager endpoints
	gerente := r.Group("/gerente/api", sessionMW, middleware.RequireRol(model.RolGerente, model.RolAdministrador))
	{
		gerente.GET("/cierres-caja", cajaH.Cierres)
		gerente.GET("/reportes-financieros", reportesH.ReporteFinanciero)
		gerente.GET("/ventas-empleado", reportesH.VentasPorEmpleado)
		gerente.GET("/ventas-empleado/pdf", reportesH.VentasPorEmpleadoPDF)
		gerente.GET("/ventas-recientes", reportesH.VentasRecientes)

		gerente.POST("/descuentos", descuentosH.Crear)
		gerente.GET("/descuentos", descuentosH.Listar)
		gerente.DELETE("/descuentos/:id", descuentosH.Desactivar)

		// Precio y disponibilidad pueden ajustarse durante el turno;
		// altas y bajas del catálogo siguen siendo de administrador.
		gerente.PUT("/productos/:id", productosH.Actualizar)
	}

	// Admin endpoints
	admin := r.Group("/admin/api", sessionMW, middleware.RequireRol(model.RolAdministrador))
	{
		admin.POST("/empleados", empleadosH.Crear)
		admin.GET("/empleados", empleadosH.Listar)
		admin.PUT("/empleados/:id", empleadosH.Actualizar)
		admin.DELETE("/empleados/:id", empleadosH.Eliminar)

		admin.POST("/productos", productosH.Crear)
		admin.PUT("/productos/:id", productosH.Actualizar)
		admin.DELETE("/productos/:id", productosH.Eliminar)

		admin.POST("/categorias", categoriasH.Crear)
		admin.PUT("/categorias/:id", categoriasH.Actualizar)
		admin.DELETE("/categorias/:id", categoriasH.Eliminar)

		admin.PUT("/clientes/:id", clientesH.Actualizar)
		admin.DELETE("/clientes/:id", clientesH.Eliminar)

		admin.PUT("/configuracion-ticket", configuracionH.Guardar)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	reciboWorker := worker.NewReciboWorker(ventaRepo, configuracionRepo, mailer, cfg.PDFStoragePath)
	return r, reciboWorker
}
