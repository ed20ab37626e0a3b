// Package analytics contiene el agregador del Dashboard: un resumen de solo
// lectura calculado sobre el estado actual del store.
package analytics

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tiyende-api/internal/application/dto"
	"github.com/jhoicas/tiyende-api/internal/application/usecase"
	"github.com/jhoicas/tiyende-api/internal/domain/entity"
	"github.com/jhoicas/tiyende-api/internal/domain/repository"
)

const (
	dashboardRecentBookings   = 5
	dashboardRecentActivities = 5
)

// DashboardUseCase genera el resumen del back-office. No modifica el store.
type DashboardUseCase struct {
	tickets    repository.TicketRepository
	vendors    repository.VendorRepository
	routes     repository.RouteRepository
	activities repository.ActivityRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	tickets repository.TicketRepository,
	vendors repository.VendorRepository,
	routes repository.RouteRepository,
	activities repository.ActivityRepository,
) *DashboardUseCase {
	return &DashboardUseCase{tickets: tickets, vendors: vendors, routes: routes, activities: activities}
}

// Snapshot calcula:
//   - TotalBookings: cantidad de tickets.
//   - TotalRevenue: suma de Amount de tickets con status paid.
//   - ActiveVendors / ActiveRoutes: cantidad con status active.
//   - RecentBookings: 5 tickets más recientes por BookingDate (empate: id mayor primero).
//   - RecentActivities: Recent(5) del log.
func (uc *DashboardUseCase) Snapshot() *dto.DashboardStatsDTO {
	tickets := uc.tickets.List()

	revenue := decimal.Zero
	for _, t := range tickets {
		if t.Status == entity.TicketPaid {
			revenue = revenue.Add(t.Amount)
		}
	}

	activeVendors := 0
	for _, v := range uc.vendors.List() {
		if v.Status == entity.VendorActive {
			activeVendors++
		}
	}
	activeRoutes := 0
	for _, r := range uc.routes.List() {
		if r.Status == entity.RouteActive {
			activeRoutes++
		}
	}

	recent := slices.Clone(tickets)
	slices.SortStableFunc(recent, func(a, b *entity.Ticket) int {
		if c := b.BookingDate.Compare(a.BookingDate); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	if len(recent) > dashboardRecentBookings {
		recent = recent[:dashboardRecentBookings]
	}

	return &dto.DashboardStatsDTO{
		TotalBookings:    len(tickets),
		TotalRevenue:     revenue,
		ActiveVendors:    activeVendors,
		ActiveRoutes:     activeRoutes,
		RecentBookings:   usecase.ToTicketList(recent),
		RecentActivities: usecase.ToActivityList(uc.activities.Recent(dashboardRecentActivities)),
	}
}
