package repository

import "github.com/jhoicas/tiyende-api/internal/domain/entity"

// TicketRepository define el puerto de persistencia para Ticket. No hay borrado:
// un ticket se cancela o reembolsa cambiando su Status.
type TicketRepository interface {
	// Create devuelve domain.ErrDuplicate si el BookingReference ya existe.
	Create(in entity.InsertTicket) (*entity.Ticket, error)
	GetByID(id int64) (*entity.Ticket, bool)
	GetByReference(ref string) (*entity.Ticket, bool)
	Update(id int64, patch entity.TicketPatch) (*entity.Ticket, bool, error)
	List() []*entity.Ticket
	ListByRoute(routeID int64) []*entity.Ticket
	ListByVendor(vendorID int64) []*entity.Ticket
}
