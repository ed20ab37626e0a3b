package memory

import (
	"github.com/jhoicas/tiyende-api/internal/domain"
	"github.com/jhoicas/tiyende-api/internal/domain/entity"
	"github.com/jhoicas/tiyende-api/internal/domain/repository"
)

var _ repository.TicketRepository = (*TicketRepo)(nil)

// TicketRepo implementación en memoria de TicketRepository.
// BookingReference es único: se indexa en Store.references bajo el lock de la tabla.
type TicketRepo struct {
	s *Store
}

// NewTicketRepository construye el adaptador de tickets sobre el store.
func NewTicketRepository(s *Store) *TicketRepo {
	return &TicketRepo{s: s}
}

// Create persiste un ticket con BookingDate = ahora y registra "Ticket created".
func (r *TicketRepo) Create(in entity.InsertTicket) (*entity.Ticket, error) {
	status := in.Status
	if status == "" {
		status = entity.TicketPending
	}
	tk := &entity.Ticket{
		BookingReference: in.BookingReference,
		RouteID:          in.RouteID,
		VendorID:         in.VendorID,
		CustomerName:     in.CustomerName,
		CustomerPhone:    in.CustomerPhone,
		CustomerEmail:    cloneString(in.CustomerEmail),
		SeatNumber:       in.SeatNumber,
		Status:           status,
		Amount:           in.Amount,
		PaymentMethod:    cloneString(in.PaymentMethod),
		PaymentReference: cloneString(in.PaymentReference),
		TravelDate:       in.TravelDate,
		BookingDate:      r.s.now(),
	}

	t := r.s.tickets
	t.mu.Lock()
	if _, taken := r.s.references[tk.BookingReference]; taken {
		t.mu.Unlock()
		return nil, domain.ErrDuplicate
	}
	tk.ID = t.allocID()
	t.rows[tk.ID] = tk
	r.s.references[tk.BookingReference] = tk.ID
	out := tk.Clone()
	t.mu.Unlock()

	r.s.activities.Record(nil, "Ticket created", map[string]any{
		"reference": out.BookingReference,
		"customer":  out.CustomerName,
	})
	return out, nil
}

// GetByID obtiene un ticket por id.
func (r *TicketRepo) GetByID(id int64) (*entity.Ticket, bool) {
	t := r.s.tickets
	t.mu.RLock()
	defer t.mu.RUnlock()
	tk, ok := t.rows[id]
	if !ok {
		return nil, false
	}
	return tk.Clone(), true
}

// GetByReference obtiene un ticket por su código de reserva.
func (r *TicketRepo) GetByReference(ref string) (*entity.Ticket, bool) {
	t := r.s.tickets
	t.mu.RLock()
	defer t.mu.RUnlock()
	id, ok := r.s.references[ref]
	if !ok {
		return nil, false
	}
	return t.rows[id].Clone(), true
}

// Update fusiona el patch. Devuelve ErrDuplicate si cambia a una referencia ocupada.
// Registra "Ticket updated" con la referencia y cliente previos y el nuevo status si vino.
func (r *TicketRepo) Update(id int64, patch entity.TicketPatch) (*entity.Ticket, bool, error) {
	t := r.s.tickets
	t.mu.Lock()
	tk, ok := t.rows[id]
	if !ok {
		t.mu.Unlock()
		return nil, false, nil
	}
	if patch.BookingReference != nil && *patch.BookingReference != tk.BookingReference {
		if _, taken := r.s.references[*patch.BookingReference]; taken {
			t.mu.Unlock()
			return nil, true, domain.ErrDuplicate
		}
		delete(r.s.references, tk.BookingReference)
		r.s.references[*patch.BookingReference] = tk.ID
	}
	details := map[string]any{
		"reference": tk.BookingReference,
		"customer":  tk.CustomerName,
	}
	if patch.Status != nil {
		details["status"] = *patch.Status
	}
	patch.Apply(tk)
	out := tk.Clone()
	t.mu.Unlock()

	r.s.activities.Record(nil, "Ticket updated", details)
	return out, true, nil
}

// List devuelve todos los tickets.
func (r *TicketRepo) List() []*entity.Ticket {
	return r.s.tickets.snapshot(nil, (*entity.Ticket).Clone, ticketID)
}

// ListByRoute filtra por ruta.
func (r *TicketRepo) ListByRoute(routeID int64) []*entity.Ticket {
	return r.s.tickets.snapshot(func(tk *entity.Ticket) bool {
		return tk.RouteID == routeID
	}, (*entity.Ticket).Clone, ticketID)
}

// ListByVendor filtra por vendor.
func (r *TicketRepo) ListByVendor(vendorID int64) []*entity.Ticket {
	return r.s.tickets.snapshot(func(tk *entity.Ticket) bool {
		return tk.VendorID == vendorID
	}, (*entity.Ticket).Clone, ticketID)
}

func ticketID(tk *entity.Ticket) int64 { return tk.ID }
