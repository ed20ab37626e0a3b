package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/tiyende-api/internal/application/analytics"
	"github.com/jhoicas/tiyende-api/internal/application/auth"
	"github.com/jhoicas/tiyende-api/internal/application/usecase"
	"github.com/jhoicas/tiyende-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/tiyende-api/internal/infrastructure/pdf"
	"github.com/jhoicas/tiyende-api/internal/infrastructure/seed"
	httpRouter "github.com/jhoicas/tiyende-api/internal/interfaces/http"
	"github.com/jhoicas/tiyende-api/pkg/config"
	"github.com/jhoicas/tiyende-api/pkg/logger"
)

func main() {
	cfg, err := config.Load(os.Args[1:]...)
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Store en memoria: el estado se pierde al reiniciar; el seed repuebla los datos de ejemplo.
	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store)
	vendorRepo := memory.NewVendorRepository(store)
	routeRepo := memory.NewRouteRepository(store)
	ticketRepo := memory.NewTicketRepository(store)
	settingRepo := memory.NewSettingRepository(store)
	activityRepo := memory.NewActivityRepository(store)

	if cfg.Seed.Enabled {
		fixture, err := seed.LoadFile(cfg.Seed.File)
		if err != nil {
			log.Fatal().Err(err).Msg("leer fixture de seed")
		}
		res, err := seed.Apply(fixture, seed.Repos{
			Users:         userRepo,
			Vendors:       vendorRepo,
			Routes:        routeRepo,
			Tickets:       ticketRepo,
			Settings:      settingRepo,
			Activities:    activityRepo,
			AdminPassword: cfg.Seed.AdminPassword,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("cargar datos de ejemplo")
		}
		log.Info().
			Int("users", res.Users).
			Int("vendors", res.Vendors).
			Int("routes", res.Routes).
			Int("tickets", res.Tickets).
			Int("settings", res.Settings).
			Str("file", cfg.Seed.File).
			Msg("datos de ejemplo cargados")
	}

	userUC := usecase.NewUserUseCase(userRepo)
	vendorUC := usecase.NewVendorUseCase(vendorRepo, routeRepo)
	routeUC := usecase.NewRouteUseCase(routeRepo, vendorRepo)
	ticketUC := usecase.NewTicketUseCase(ticketRepo, routeRepo, vendorRepo, cfg.Ticket.ReferencePrefix)
	settingUC := usecase.NewSettingUseCase(settingRepo)
	activityUC := usecase.NewActivityUseCase(activityRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(ticketRepo, vendorRepo, routeRepo, activityRepo)

	// PDF: ticket imprimible con QR del código de reserva
	pdfGenerator := infrapdf.NewMarotoTicketGenerator()
	ticketPDFUC := usecase.NewTicketPDFUseCase(ticketRepo, routeRepo, vendorRepo, settingRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, activityRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
	}))
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Tiyende API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		VendorUC:    vendorUC,
		RouteUC:     routeUC,
		TicketUC:    ticketUC,
		TicketPDF:   ticketPDFUC,
		SettingUC:   settingUC,
		ActivityUC:  activityUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
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
