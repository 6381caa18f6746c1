package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hraei-ti/inventario-api/internal/application/auth"
	"github.com/hraei-ti/inventario-api/internal/application/generation"
	"github.com/hraei-ti/inventario-api/internal/application/usecase"
	"github.com/hraei-ti/inventario-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	EquipmentUC   *usecase.EquipmentUseCase
	StationUC     *usecase.StationUseCase
	LocationUC    *usecase.LocationUseCase
	ResponsableUC *usecase.ResponsableUseCase
	DepartmentUC  *usecase.DepartmentUseCase
	CatalogUC     *usecase.CatalogUseCase
	ResguardoUC   *usecase.ResguardoUseCase
	MovementUC    *usecase.MovementUseCase
	AuthUC        *auth.AuthUseCase
	GenerationSvc *generation.Service
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público, el resto protegido.
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin), authHandler.Register)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)
	authGroup.Get("/users", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin), authHandler.ListUsers)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Los roles admin y tecnico pueden escribir; consulta es solo lectura.
	canWrite := RequireRole(entity.RoleAdmin, entity.RoleTecnico)

	// Equipos (protegido)
	equipos := protected.Group("/equipos")
	equipmentHandler := NewEquipmentHandler(deps.EquipmentUC)
	equipos.Post("/", canWrite, equipmentHandler.Create)
	equipos.Get("/", equipmentHandler.List)
	equipos.Get("/:id", equipmentHandler.GetByID)
	equipos.Put("/:id", canWrite, equipmentHandler.Update)
	equipos.Delete("/:id", canWrite, equipmentHandler.Delete)

	// Estaciones de trabajo (protegido)
	estaciones := protected.Group("/estaciones")
	stationHandler := NewStationHandler(deps.StationUC)
	estaciones.Post("/", canWrite, stationHandler.Create)
	estaciones.Get("/", stationHandler.List)
	estaciones.Get("/:id", stationHandler.GetByID)
	estaciones.Put("/:id", canWrite, stationHandler.Update)
	estaciones.Delete("/:id", canWrite, stationHandler.Delete)

	// Ubicaciones (protegido)
	ubicaciones := protected.Group("/ubicaciones")
	locationHandler := NewLocationHandler(deps.LocationUC)
	ubicaciones.Post("/", canWrite, locationHandler.Create)
	ubicaciones.Get("/", locationHandler.List)
	ubicaciones.Get("/:id", locationHandler.GetByID)
	ubicaciones.Put("/:id", canWrite, locationHandler.Update)
	ubicaciones.Delete("/:id", canWrite, locationHandler.Delete)

	// Responsables (protegido)
	responsables := protected.Group("/responsables")
	responsableHandler := NewResponsableHandler(deps.ResponsableUC)
	responsables.Post("/", canWrite, responsableHandler.Create)
	responsables.Get("/", responsableHandler.List)
	responsables.Get("/:id", responsableHandler.GetByID)
	responsables.Put("/:id", canWrite, responsableHandler.Update)
	responsables.Delete("/:id", canWrite, responsableHandler.Delete)

	// Direcciones administrativas (protegido)
	direcciones := protected.Group("/direcciones")
	departmentHandler := NewDepartmentHandler(deps.DepartmentUC)
	direcciones.Post("/", canWrite, departmentHandler.Create)
	direcciones.Get("/", departmentHandler.List)
	direcciones.Get("/:id", departmentHandler.GetByID)
	direcciones.Put("/:id", canWrite, departmentHandler.Update)
	direcciones.Delete("/:id", RequireRole(entity.RoleAdmin), departmentHandler.Delete)

	// Catálogos (protegido, solo lectura)
	catalogos := protected.Group("/catalogos")
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalogos.Get("/tipos", catalogHandler.ListTypes)
	catalogos.Get("/estados", catalogHandler.ListStatuses)

	// Resguardos (protegido)
	resguardos := protected.Group("/resguardos")
	resguardoHandler := NewResguardoHandler(deps.ResguardoUC)
	resguardos.Post("/", canWrite, resguardoHandler.Create)
	resguardos.Get("/", resguardoHandler.List)
	resguardos.Get("/:id", resguardoHandler.GetByID)
	resguardos.Put("/:id/firma", canWrite, resguardoHandler.Sign)

	// Bitácora de movimientos (protegido, solo lectura)
	movimientos := protected.Group("/movimientos")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movimientos.Get("/", movementHandler.List)

	// Generación de documentos de resguardo (protegido)
	generationHandler := NewGenerationHandler(deps.GenerationSvc)
	protected.Post("/generate-resguardo-word", generationHandler.GenerateWord)
	protected.Post("/generate-resguardo-html", generationHandler.GenerateHTML)
	protected.Post("/generate-resguardo-pdf", generationHandler.GeneratePDF)
	protected.Post("/generate-resguardo-texto", generationHandler.GenerateTexto)
}
