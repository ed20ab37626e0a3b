package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO respuesta de GET /api/dashboard.
type DashboardStatsDTO struct {
	TotalBookings    int                `json:"totalBookings"`
	TotalRevenue     decimal.Decimal    `json:"totalRevenue"` // suma de amount de tickets pagados
	ActiveVendors    int                `json:"activeVendors"`
	ActiveRoutes     int                `json:"activeRoutes"`
	RecentBookings   []TicketResponse   `json:"recentBookings"`   // 5 más recientes por bookingDate
	RecentActivities []ActivityResponse `json:"recentActivities"` // 5 más recientes
}
