package usecase

import (
	"github.com/jhoicas/tiyende-api/internal/application/dto"
	"github.com/jhoicas/tiyende-api/internal/domain"
	"github.com/jhoicas/tiyende-api/internal/domain/entity"
	"github.com/jhoicas/tiyende-api/internal/domain/repository"
)

// RouteUseCase casos de uso para rutas. Verifica que el vendor referenciado exista
// antes de crear o reasignar una ruta.
type RouteUseCase struct {
	repo    repository.RouteRepository
	vendors repository.VendorRepository
}

// NewRouteUseCase construye el caso de uso.
func NewRouteUseCase(repo repository.RouteRepository, vendors repository.VendorRepository) *RouteUseCase {
	return &RouteUseCase{repo: repo, vendors: vendors}
}

// Create crea una ruta. Devuelve ErrReferenceNotFound si el vendor no existe.
func (uc *RouteUseCase) Create(in dto.CreateRouteRequest) (*dto.RouteResponse, error) {
	if in.Departure == "" || in.Destination == "" {
		return nil, invalidf("departure y destination son requeridos")
	}
	if err := validateClock("departureTime", in.DepartureTime); err != nil {
		return nil, err
	}
	if err := validateClock("estimatedArrival", in.EstimatedArrival); err != nil {
		return nil, err
	}
	if in.Fare.IsNegative() {
		return nil, invalidf("fare no puede ser negativo")
	}
	if in.Capacity <= 0 {
		return nil, invalidf("capacity debe ser mayor a 0")
	}
	if in.Status != "" && !entity.IsValidRouteStatus(in.Status) {
		return nil, invalidf("status debe ser active, inactive o suspended")
	}
	days, err := NormalizeWeekdays(in.DaysOfWeek)
	if err != nil {
		return nil, err
	}
	if _, ok := uc.vendors.GetByID(in.VendorID); !ok {
		return nil, missingRef("vendor")
	}
	r := uc.repo.Create(entity.InsertRoute{
		VendorID:         in.VendorID,
		Departure:        in.Departure,
		Destination:      in.Destination,
		DepartureTime:    in.DepartureTime,
		EstimatedArrival: in.EstimatedArrival,
		Fare:             in.Fare,
		Capacity:         in.Capacity,
		Status:           in.Status,
		DaysOfWeek:       days,
	})
	return ToRouteResponse(r), nil
}

// GetByID obtiene una ruta; (nil, nil) si no existe.
func (uc *RouteUseCase) GetByID(id int64) (*dto.RouteResponse, error) {
	r, ok := uc.repo.GetByID(id)
	if !ok {
		return nil, nil
	}
	return ToRouteResponse(r), nil
}

// Update aplica una actualización parcial; (nil, nil) si la ruta no existe.
func (uc *RouteUseCase) Update(id int64, in dto.UpdateRouteRequest) (*dto.RouteResponse, error) {
	patch := entity.RoutePatch{
		VendorID:         in.VendorID,
		Departure:        in.Departure,
		Destination:      in.Destination,
		DepartureTime:    in.DepartureTime,
		EstimatedArrival: in.EstimatedArrival,
		Fare:             in.Fare,
		Capacity:         in.Capacity,
		Status:           in.Status,
	}
	if in.DepartureTime != nil {
		if err := validateClock("departureTime", *in.DepartureTime); err != nil {
			return nil, err
		}
	}
	if in.EstimatedArrival != nil {
		if err := validateClock("estimatedArrival", *in.EstimatedArrival); err != nil {
			return nil, err
		}
	}
	if in.Fare != nil && in.Fare.IsNegative() {
		return nil, invalidf("fare no puede ser negativo")
	}
	if in.Capacity != nil && *in.Capacity <= 0 {
		return nil, invalidf("capacity debe ser mayor a 0")
	}
	if in.Status != nil && !entity.IsValidRouteStatus(*in.Status) {
		return nil, invalidf("status debe ser active, inactive o suspended")
	}
	if in.DaysOfWeek != nil {
		days, err := NormalizeWeekdays(in.DaysOfWeek)
		if err != nil {
			return nil, err
		}
		patch.DaysOfWeek = days
	}
	if in.VendorID != nil {
		if _, ok := uc.vendors.GetByID(*in.VendorID); !ok {
			return nil, missingRef("vendor")
		}
	}
	r, ok := uc.repo.Update(id, patch)
	if !ok {
		return nil, nil
	}
	return ToRouteResponse(r), nil
}

// List lista rutas; vendorID > 0 filtra por vendor.
func (uc *RouteUseCase) List(vendorID int64) []dto.RouteResponse {
	if vendorID > 0 {
		return toRouteList(uc.repo.ListByVendor(vendorID))
	}
	return toRouteList(uc.repo.List())
}

// Delete elimina una ruta. Devuelve domain.ErrNotFound si no existía.
func (uc *RouteUseCase) Delete(id int64) error {
	if !uc.repo.Delete(id) {
		return domain.ErrNotFound
	}
	return nil
}
