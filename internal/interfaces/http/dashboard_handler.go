package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/tiyende-api/internal/application/analytics"
)

// DashboardHandler maneja el endpoint de estadísticas del panel.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats devuelve el snapshot del panel.
// GET /api/dashboard
//
// Respuesta: DashboardStatsDTO (totalBookings, totalRevenue, activeVendors,
// activeRoutes, recentBookings[5], recentActivities[5]).
// Es una lectura pura; dos llamadas sin mutaciones intermedias devuelven lo mismo.
//
// @Summary      Estadísticas del panel
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	return c.JSON(h.uc.Snapshot())
}
