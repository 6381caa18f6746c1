package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	_ "github.com/hraei-ti/inventario-api/docs"
	"github.com/hraei-ti/inventario-api/internal/application/auth"
	"github.com/hraei-ti/inventario-api/internal/application/generation"
	"github.com/hraei-ti/inventario-api/internal/application/usecase"
	"github.com/hraei-ti/inventario-api/internal/domain/resguardo"
	infradocx "github.com/hraei-ti/inventario-api/internal/infrastructure/docx"
	infrapdf "github.com/hraei-ti/inventario-api/internal/infrastructure/pdf"
	"github.com/hraei-ti/inventario-api/internal/infrastructure/postgres"
	httpRouter "github.com/hraei-ti/inventario-api/internal/interfaces/http"
	"github.com/hraei-ti/inventario-api/pkg/config"
	"github.com/hraei-ti/inventario-api/pkg/logger"
	"github.com/hraei-ti/inventario-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	equipmentRepo := postgres.NewEquipmentRepository(pool)
	stationRepo := postgres.NewStationRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	responsableRepo := postgres.NewResponsableRepository(pool)
	departmentRepo := postgres.NewDepartmentRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	resguardoRepo := postgres.NewResguardoRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	equipmentUC := usecase.NewEquipmentUseCase(equipmentRepo, catalogRepo, movementRepo)
	stationUC := usecase.NewStationUseCase(stationRepo, catalogRepo, txRunner)
	locationUC := usecase.NewLocationUseCase(locationRepo)
	responsableUC := usecase.NewResponsableUseCase(responsableRepo)
	departmentUC := usecase.NewDepartmentUseCase(departmentRepo)
	catalogUC := usecase.NewCatalogUseCase(catalogRepo)
	resguardoUC := usecase.NewResguardoUseCase(resguardoRepo)
	movementUC := usecase.NewMovementUseCase(movementRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Membrete institucional inyectado a los generadores de documentos.
	inst := resguardo.Institucion{
		Direccion:       cfg.Hospital.Address,
		Telefono:        cfg.Hospital.Phone,
		Ciudad:          cfg.Hospital.City,
		FirmanteEntrega: cfg.Hospital.DeliverySigner,
		ChecklistLaptop: cfg.Hospital.LaptopChecklist,
	}
	m := metrics.New(cfg.App.Name)
	generationSvc := generation.NewService(
		inst, time.Now,
		infrapdf.NewMarotoResguardoGenerator(inst, time.Now),
		infradocx.NewTemplateFiller(cfg.Hospital.TemplatePath),
		resguardoRepo, movementRepo, m, log,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Métricas por petición. Se usa la ruta registrada, no el path crudo,
	// para acotar la cardinalidad de las etiquetas.
	app.Use(func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		m.ObserveHTTP(c.Method(), c.Route().Path, c.Response().StatusCode(), time.Since(start))
		return err
	})

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario TI Hospital API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	metricsHandler := fasthttpadaptor.NewFastHTTPHandler(m.Handler())
	app.Get("/metrics", func(c *fiber.Ctx) error {
		metricsHandler(c.Context())
		return nil
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		EquipmentUC:   equipmentUC,
		StationUC:     stationUC,
		LocationUC:    locationUC,
		ResponsableUC: responsableUC,
		DepartmentUC:  departmentUC,
		CatalogUC:     catalogUC,
		ResguardoUC:   resguardoUC,
		MovementUC:    movementUC,
		AuthUC:        authUC,
		GenerationSvc: generationSvc,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
