package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/tiyende-api/internal/domain"
	"github.com/jhoicas/tiyende-api/internal/domain/repository"
)

const (
	settingSystemName   = "system_name"
	settingContactPhone = "contact_phone"
	defaultSystemName   = "Tiyende Bus Reservation"
)

// TicketPDFUseCase arma el ticket imprimible (con QR del código de reserva).
type TicketPDFUseCase struct {
	tickets   repository.TicketRepository
	routes    repository.RouteRepository
	vendors   repository.VendorRepository
	settings  repository.SettingRepository
	generator TicketPDFGenerator
}

// NewTicketPDFUseCase construye el caso de uso.
func NewTicketPDFUseCase(
	tickets repository.TicketRepository,
	routes repository.RouteRepository,
	vendors repository.VendorRepository,
	settings repository.SettingRepository,
	generator TicketPDFGenerator,
) *TicketPDFUseCase {
	return &TicketPDFUseCase{
		tickets:   tickets,
		routes:    routes,
		vendors:   vendors,
		settings:  settings,
		generator: generator,
	}
}

// Download genera el PDF del ticket.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si el ticket no existe.
//   - domain.ErrConflict         si el ticket está cancelado o reembolsado.
func (uc *TicketPDFUseCase) Download(ctx context.Context, ticketID int64) ([]byte, string, error) {
	t, ok := uc.tickets.GetByID(ticketID)
	if !ok {
		return nil, "", domain.ErrNotFound
	}
	if !t.HoldsSeat() {
		return nil, "", fmt.Errorf("%w: ticket %s en estado %s", domain.ErrConflict, t.BookingReference, t.Status)
	}
	doc := TicketDocument{Ticket: t, SystemName: defaultSystemName}
	if r, ok := uc.routes.GetByID(t.RouteID); ok {
		doc.Route = r
	}
	if v, ok := uc.vendors.GetByID(t.VendorID); ok {
		doc.Vendor = v
	}
	if s, ok := uc.settings.GetByName(settingSystemName); ok && s.Value != "" {
		doc.SystemName = s.Value
	}
	if s, ok := uc.settings.GetByName(settingContactPhone); ok {
		doc.Contact = s.Value
	}

	pdf, err := uc.generator.GenerateTicketPDF(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar ticket: %w", err)
	}
	return pdf, "ticket-" + t.BookingReference + ".pdf", nil
}
