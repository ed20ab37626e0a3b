package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tiyende-api/internal/application/analytics"
	"github.com/jhoicas/tiyende-api/internal/domain/entity"
	"github.com/jhoicas/tiyende-api/internal/infrastructure/memory"
)

type stepClock struct{ now time.Time }

func (c *stepClock) Now() time.Time {
	c.now = c.now.Add(time.Minute)
	return c.now
}

func newDashboard(s *memory.Store) *analytics.DashboardUseCase {
	return analytics.NewDashboardUseCase(
		memory.NewTicketRepository(s),
		memory.NewVendorRepository(s),
		memory.NewRouteRepository(s),
		memory.NewActivityRepository(s),
	)
}

func ticket(ref string, status string, amount int64) entity.InsertTicket {
	return entity.InsertTicket{
		BookingReference: ref,
		RouteID:          1,
		VendorID:         1,
		CustomerName:     "John Doe",
		CustomerPhone:    "+260 97 1234567",
		SeatNumber:       1,
		Status:           status,
		Amount:           decimal.NewFromInt(amount),
	}
}

func TestSnapshot_IngresosSoloTicketsPagados(t *testing.T) {
	s := memory.NewStore()
	tickets := memory.NewTicketRepository(s)
	for _, in := range []entity.InsertTicket{
		ticket("TIY-1", entity.TicketPaid, 350),
		ticket("TIY-2", entity.TicketPaid, 100),
		ticket("TIY-3", entity.TicketPending, 200),
		ticket("TIY-4", entity.TicketRefunded, 500),
	} {
		_, err := tickets.Create(in)
		require.NoError(t, err)
	}

	snap := newDashboard(s).Snapshot()
	assert.Equal(t, 4, snap.TotalBookings)
	assert.True(t, decimal.NewFromInt(450).Equal(snap.TotalRevenue), "revenue = %s", snap.TotalRevenue)
}

func TestSnapshot_ActivosYRecientes(t *testing.T) {
	clock := &stepClock{now: time.Date(2023, 6, 14, 8, 0, 0, 0, time.UTC)}
	s := memory.NewStore(memory.WithClock(clock.Now))
	vendors := memory.NewVendorRepository(s)
	routes := memory.NewRouteRepository(s)
	tickets := memory.NewTicketRepository(s)

	v1 := vendors.Create(entity.InsertVendor{Name: "Mazhandu Bus"})
	vendors.Create(entity.InsertVendor{Name: "Power Tools Bus", Status: entity.VendorPending})
	routes.Create(entity.InsertRoute{VendorID: v1.ID, Departure: "Lusaka", Destination: "Ndola"})
	routes.Create(entity.InsertRoute{VendorID: v1.ID, Departure: "Lusaka", Destination: "Mongu", Status: entity.RouteSuspended})
	for i := range 7 {
		_, err := tickets.Create(ticket("TIY-"+string(rune('A'+i)), entity.TicketPending, 100))
		require.NoError(t, err)
	}

	snap := newDashboard(s).Snapshot()
	assert.Equal(t, 1, snap.ActiveVendors)
	assert.Equal(t, 1, snap.ActiveRoutes)

	require.Len(t, snap.RecentBookings, 5)
	assert.Equal(t, "TIY-G", snap.RecentBookings[0].BookingReference)
	assert.Equal(t, "TIY-C", snap.RecentBookings[4].BookingReference)

	require.Len(t, snap.RecentActivities, 5)
	assert.Equal(t, "Ticket created", snap.RecentActivities[0].Action)
}

func TestSnapshot_EsLecturaPura(t *testing.T) {
	s := memory.NewStore(memory.WithClock(func() time.Time { return time.Unix(1686800000, 0) }))
	memory.NewVendorRepository(s).Create(entity.InsertVendor{Name: "Mazhandu Bus"})
	_, err := memory.NewTicketRepository(s).Create(ticket("TIY-8294", entity.TicketPaid, 350))
	require.NoError(t, err)

	d := newDashboard(s)
	before := s.Activities().Len()
	first := d.Snapshot()
	second := d.Snapshot()
	assert.Equal(t, first, second)
	assert.Equal(t, before, s.Activities().Len())
}

func TestSnapshot_StoreVacio(t *testing.T) {
	snap := newDashboard(memory.NewStore()).Snapshot()
	assert.Zero(t, snap.TotalBookings)
	assert.True(t, snap.TotalRevenue.IsZero())
	assert.NotNil(t, snap.RecentBookings)
	assert.Empty(t, snap.RecentBookings)
	assert.Empty(t, snap.RecentActivities)
}
