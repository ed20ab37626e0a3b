// Package pdf implementa el ticket imprimible de una reserva.
//
// Layout A5:
//
//	┌──────────────────────────────────────────────┐
//	│  Sistema + contacto        │  Ref. + estado  │
//	│  ──────────────────────────────────────────  │
//	│  Vendor / Ruta / Horario                      │
//	│  Pasajero / Asiento / Fecha de viaje          │
//	│  Importe / Pago                               │
//	│  ──────────────────────────────────────────  │
//	│  QR (referencia)  │  leyenda                  │
//	└──────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/tiyende-api/internal/application/usecase"
)

var _ usecase.TicketPDFGenerator = (*MarotoTicketGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 102, Blue: 68}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoTicketGenerator implementa usecase.TicketPDFGenerator usando Maroto v2.
type MarotoTicketGenerator struct{}

// NewMarotoTicketGenerator construye el generador.
func NewMarotoTicketGenerator() *MarotoTicketGenerator { return &MarotoTicketGenerator{} }

// GenerateTicketPDF genera el PDF y devuelve sus bytes.
func (g *MarotoTicketGenerator) GenerateTicketPDF(_ context.Context, doc usecase.TicketDocument) ([]byte, error) {
	if doc.Ticket == nil {
		return nil, fmt.Errorf("pdf: ticket nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ticket "+doc.Ticket.BookingReference, true).
		WithAuthor(doc.SystemName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tripRow(doc))
	m.AddRows(passengerRow(doc))
	m.AddRows(paymentRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(qrRow(doc))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

func headerRow(doc usecase.TicketDocument) core.Row {
	t := doc.Ticket
	return row.New(18).Add(
		col.New(7).Add(
			text.New(doc.SystemName, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(doc.Contact, "-"), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("BOARDING TICKET", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(t.BookingReference, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6,
			}),
			text.New(strings.ToUpper(t.Status), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// Las fuentes core (helvetica) sólo cubren Latin-1: nada de flechas ni rayas largas.
func tripRow(doc usecase.TicketDocument) core.Row {
	vendor, label, schedule := "-", "-", "-"
	if doc.Vendor != nil {
		vendor = doc.Vendor.Name
	}
	if doc.Route != nil {
		label = doc.Route.Departure + " to " + doc.Route.Destination
		schedule = doc.Route.DepartureTime + " - " + doc.Route.EstimatedArrival
	}
	return row.New(20).Add(
		col.New(12).Add(
			text.New("TRIP", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 11, Top: 6}),
			text.New(fmt.Sprintf("Operator: %s   |   Schedule: %s", vendor, schedule), props.Text{
				Size: 8, Top: 13, Color: colorGray,
			}),
		),
	)
}

func passengerRow(doc usecase.TicketDocument) core.Row {
	t := doc.Ticket
	return row.New(18).Add(
		col.New(6).Add(
			text.New("PASSENGER", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(t.CustomerName, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(t.CustomerPhone, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
		col.New(3).Add(
			text.New("SEAT", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Center, Color: colorPrimary, Top: 1}),
			text.New(fmt.Sprintf("%d", t.SeatNumber), props.Text{Style: fontstyle.Bold, Size: 14, Align: align.Center, Top: 6}),
		),
		col.New(3).Add(
			text.New("TRAVEL DATE", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New(t.TravelDate.Format("02/01/2006"), props.Text{Size: 10, Align: align.Right, Top: 6}),
		),
	)
}

func paymentRow(doc usecase.TicketDocument) core.Row {
	t := doc.Ticket
	method := "-"
	if t.PaymentMethod != nil && *t.PaymentMethod != "" {
		method = *t.PaymentMethod
	}
	return row.New(12).Add(
		col.New(6).Add(
			text.New("Payment: "+method, props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
		col.New(6).Add(
			text.New("Amount: "+t.Amount.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2,
			}),
		),
	)
}

func qrRow(doc usecase.TicketDocument) core.Row {
	return row.New(40).Add(
		col.New(4).Add(code.NewQr(doc.Ticket.BookingReference, props.Rect{
			Percent: 95,
			Center:  true,
		})),
		col.New(8).Add(
			text.New("Present this code when boarding.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("Booked on "+doc.Ticket.BookingDate.Format("02/01/2006 15:04"), props.Text{
				Size: 7, Top: 12, Left: 3, Color: colorGray,
			}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
