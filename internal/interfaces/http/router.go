package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/tiyende-api/internal/application/analytics"
	"github.com/jhoicas/tiyende-api/internal/application/auth"
	"github.com/jhoicas/tiyende-api/internal/application/usecase"
	"github.com/jhoicas/tiyende-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	VendorUC    *usecase.VendorUseCase
	RouteUC     *usecase.RouteUseCase
	TicketUC    *usecase.TicketUseCase
	TicketPDF   *usecase.TicketPDFUseCase
	SettingUC   *usecase.SettingUseCase
	ActivityUC  *usecase.ActivityUseCase
	DashboardUC *appanalytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (Bearer Token vigente)
	protected := api.Group("", AuthMiddleware(deps.JWTSecret), RequireSession(deps.AuthUC))
	adminOnly := RequireRole(entity.RoleAdmin)

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)

	// Users (solo admin)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
	users.Patch("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Vendors
	vendors := protected.Group("/vendors")
	vendorHandler := NewVendorHandler(deps.VendorUC)
	vendors.Get("/", vendorHandler.List)
	vendors.Post("/", vendorHandler.Create)
	vendors.Get("/:id", vendorHandler.GetByID)
	vendors.Patch("/:id", vendorHandler.Update)
	vendors.Delete("/:id", vendorHandler.Delete)
	vendors.Get("/:id/routes", vendorHandler.ListRoutes)

	// Routes
	routes := protected.Group("/routes")
	routeHandler := NewRouteHandler(deps.RouteUC)
	routes.Get("/", routeHandler.List)
	routes.Post("/", routeHandler.Create)
	routes.Get("/:id", routeHandler.GetByID)
	routes.Patch("/:id", routeHandler.Update)
	routes.Delete("/:id", routeHandler.Delete)

	// Tickets
	tickets := protected.Group("/tickets")
	ticketHandler := NewTicketHandler(deps.TicketUC, deps.TicketPDF)
	tickets.Get("/", ticketHandler.List)
	tickets.Post("/", ticketHandler.Create)
	tickets.Get("/reference/:ref?", ticketHandler.GetByReference)
	tickets.Get("/:id", ticketHandler.GetByID)
	tickets.Patch("/:id", ticketHandler.Update)
	tickets.Get("/:id/pdf", ticketHandler.DownloadPDF)

	// Settings (escritura solo admin)
	settings := protected.Group("/settings")
	settingHandler := NewSettingHandler(deps.SettingUC)
	settings.Get("/", settingHandler.List)
	settings.Get("/:name", settingHandler.Get)
	settings.Post("/:name", adminOnly, settingHandler.Upsert)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.GetStats)

	// Activities
	activities := protected.Group("/activities")
	activityHandler := NewActivityHandler(deps.ActivityUC)
	activities.Get("/", activityHandler.List)
	activities.Post("/", activityHandler.Create)
}
