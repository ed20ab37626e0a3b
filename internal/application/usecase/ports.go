package usecase

import (
	"context"

	"github.com/jhoicas/tiyende-api/internal/domain/entity"
)

// TicketPDFGenerator genera la versión imprimible de un ticket.
// La implementa infrastructure/pdf (Maroto).
type TicketPDFGenerator interface {
	GenerateTicketPDF(ctx context.Context, doc TicketDocument) ([]byte, error)
}

// TicketDocument datos que necesita el generador. Route y Vendor pueden ser nil
// si fueron borrados después de emitir el ticket.
type TicketDocument struct {
	Ticket     *entity.Ticket
	Route      *entity.Route
	Vendor     *entity.Vendor
	SystemName string
	Contact    string
}
