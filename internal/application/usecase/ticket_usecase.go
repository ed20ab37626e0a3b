package usecase

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tiyende-api/internal/application/dto"
	"github.com/jhoicas/tiyende-api/internal/domain"
	"github.com/jhoicas/tiyende-api/internal/domain/entity"
	"github.com/jhoicas/tiyende-api/internal/domain/repository"
)

// DefaultReferencePrefix prefijo de los códigos de reserva generados.
const DefaultReferencePrefix = "TIY"

const maxReferenceAttempts = 5

// TicketUseCase casos de uso para tickets: valida ruta y vendor referenciados,
// rango de asiento y que el asiento esté libre para la fecha de viaje.
type TicketUseCase struct {
	repo    repository.TicketRepository
	routes  repository.RouteRepository
	vendors repository.VendorRepository
	prefix  string

	// serializa verificación de asiento + alta para que dos reservas
	// concurrentes no tomen el mismo asiento
	mu sync.Mutex
}

// NewTicketUseCase construye el caso de uso. prefix vacío = DefaultReferencePrefix.
func NewTicketUseCase(
	repo repository.TicketRepository,
	routes repository.RouteRepository,
	vendors repository.VendorRepository,
	prefix string,
) *TicketUseCase {
	if prefix == "" {
		prefix = DefaultReferencePrefix
	}
	return &TicketUseCase{repo: repo, routes: routes, vendors: vendors, prefix: prefix}
}

// Create crea un ticket. Si BookingReference viene vacío se genera uno.
//
// Errores: ErrInvalidInput (datos), ErrReferenceNotFound (ruta/vendor),
// ErrConflict (asiento ocupado), ErrDuplicate (referencia ya usada).
func (uc *TicketUseCase) Create(in dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	if in.CustomerName == "" || in.CustomerPhone == "" {
		return nil, invalidf("customerName y customerPhone son requeridos")
	}
	if in.Status != "" && !entity.IsValidTicketStatus(in.Status) {
		return nil, invalidf("status debe ser paid, pending, refunded o cancelled")
	}
	if in.Amount.IsNegative() {
		return nil, invalidf("amount no puede ser negativo")
	}
	if ref := strings.TrimSpace(in.BookingReference); ref != "" {
		if err := validateReference(ref); err != nil {
			return nil, err
		}
	}
	travelDate, err := ParseTravelDate(in.TravelDate)
	if err != nil {
		return nil, err
	}
	route, ok := uc.routes.GetByID(in.RouteID)
	if !ok {
		return nil, missingRef("ruta")
	}
	if _, ok := uc.vendors.GetByID(in.VendorID); !ok {
		return nil, missingRef("vendor")
	}
	if in.SeatNumber < 1 || in.SeatNumber > route.Capacity {
		return nil, invalidf("seatNumber debe estar entre 1 y %d", route.Capacity)
	}
	amount := in.Amount
	if amount.IsZero() {
		amount = route.Fare
	}

	ins := entity.InsertTicket{
		BookingReference: strings.TrimSpace(in.BookingReference),
		RouteID:          in.RouteID,
		VendorID:         in.VendorID,
		CustomerName:     in.CustomerName,
		CustomerPhone:    in.CustomerPhone,
		CustomerEmail:    in.CustomerEmail,
		SeatNumber:       in.SeatNumber,
		Status:           in.Status,
		Amount:           amount,
		PaymentMethod:    in.PaymentMethod,
		PaymentReference: in.PaymentReference,
		TravelDate:       travelDate,
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	holds := ins.Status == "" || ins.Status == entity.TicketPaid || ins.Status == entity.TicketPending
	if holds && uc.seatTaken(in.RouteID, in.SeatNumber, travelDate, 0) {
		return nil, fmt.Errorf("%w: asiento %d ocupado para esa fecha", domain.ErrConflict, in.SeatNumber)
	}

	if ins.BookingReference != "" {
		t, err := uc.repo.Create(ins)
		if err != nil {
			return nil, err
		}
		return ToTicketResponse(t), nil
	}
	for range maxReferenceAttempts {
		ins.BookingReference = uc.newReference()
		t, err := uc.repo.Create(ins)
		if errors.Is(err, domain.ErrDuplicate) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return ToTicketResponse(t), nil
	}
	return nil, fmt.Errorf("ticket: no se pudo generar una referencia única")
}

// GetByID obtiene un ticket; (nil, nil) si no existe.
func (uc *TicketUseCase) GetByID(id int64) (*dto.TicketResponse, error) {
	t, ok := uc.repo.GetByID(id)
	if !ok {
		return nil, nil
	}
	return ToTicketResponse(t), nil
}

// GetByReference obtiene un ticket por código de reserva; (nil, nil) si no existe.
func (uc *TicketUseCase) GetByReference(ref string) (*dto.TicketResponse, error) {
	t, ok := uc.repo.GetByReference(ref)
	if !ok {
		return nil, nil
	}
	return ToTicketResponse(t), nil
}

// Update aplica una actualización parcial; (nil, nil) si el ticket no existe.
func (uc *TicketUseCase) Update(id int64, in dto.UpdateTicketRequest) (*dto.TicketResponse, error) {
	patch := entity.TicketPatch{
		BookingReference: in.BookingReference,
		RouteID:          in.RouteID,
		VendorID:         in.VendorID,
		CustomerName:     in.CustomerName,
		CustomerPhone:    in.CustomerPhone,
		CustomerEmail:    in.CustomerEmail,
		SeatNumber:       in.SeatNumber,
		Status:           in.Status,
		Amount:           in.Amount,
		PaymentMethod:    in.PaymentMethod,
		PaymentReference: in.PaymentReference,
	}
	if in.BookingReference != nil {
		if err := validateReference(*in.BookingReference); err != nil {
			return nil, err
		}
	}
	if in.Status != nil && !entity.IsValidTicketStatus(*in.Status) {
		return nil, invalidf("status debe ser paid, pending, refunded o cancelled")
	}
	if in.Amount != nil && in.Amount.IsNegative() {
		return nil, invalidf("amount no puede ser negativo")
	}
	if in.TravelDate != nil {
		d, err := ParseTravelDate(*in.TravelDate)
		if err != nil {
			return nil, err
		}
		patch.TravelDate = &d
	}
	if in.VendorID != nil {
		if _, ok := uc.vendors.GetByID(*in.VendorID); !ok {
			return nil, missingRef("vendor")
		}
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	current, ok := uc.repo.GetByID(id)
	if !ok {
		return nil, nil
	}
	next := current.Clone()
	patch.Apply(next)

	route, ok := uc.routes.GetByID(next.RouteID)
	if in.RouteID != nil && !ok {
		return nil, missingRef("ruta")
	}
	if ok && (in.SeatNumber != nil || in.RouteID != nil) {
		if next.SeatNumber < 1 || next.SeatNumber > route.Capacity {
			return nil, invalidf("seatNumber debe estar entre 1 y %d", route.Capacity)
		}
	}
	moved := next.RouteID != current.RouteID || next.SeatNumber != current.SeatNumber ||
		!sameDay(next.TravelDate, current.TravelDate) || (next.HoldsSeat() && !current.HoldsSeat())
	if moved && next.HoldsSeat() && uc.seatTaken(next.RouteID, next.SeatNumber, next.TravelDate, id) {
		return nil, fmt.Errorf("%w: asiento %d ocupado para esa fecha", domain.ErrConflict, next.SeatNumber)
	}

	t, ok, err := uc.repo.Update(id, patch)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return ToTicketResponse(t), nil
}

// List lista tickets; routeID tiene prioridad sobre vendorID; ambos en 0 = todos.
func (uc *TicketUseCase) List(f dto.TicketFilter) []dto.TicketResponse {
	switch {
	case f.RouteID > 0:
		return ToTicketList(uc.repo.ListByRoute(f.RouteID))
	case f.VendorID > 0:
		return ToTicketList(uc.repo.ListByVendor(f.VendorID))
	default:
		return ToTicketList(uc.repo.List())
	}
}

// seatTaken indica si otro ticket vigente ocupa el asiento en esa ruta y fecha.
func (uc *TicketUseCase) seatTaken(routeID int64, seat int, day time.Time, exceptID int64) bool {
	for _, t := range uc.repo.ListByRoute(routeID) {
		if t.ID != exceptID && t.SeatNumber == seat && t.HoldsSeat() && sameDay(t.TravelDate, day) {
			return true
		}
	}
	return false
}

func (uc *TicketUseCase) newReference() string {
	return uc.prefix + "-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}
