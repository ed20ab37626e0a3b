package memory

import (
	"github.com/jhoicas/tiyende-api/internal/domain/entity"
	"github.com/jhoicas/tiyende-api/internal/domain/repository"
)

var _ repository.RouteRepository = (*RouteRepo)(nil)

// RouteRepo implementación en memoria de RouteRepository.
type RouteRepo struct {
	s *Store
}

// NewRouteRepository construye el adaptador de rutas sobre el store.
func NewRouteRepository(s *Store) *RouteRepo {
	return &RouteRepo{s: s}
}

// Create persiste una ruta y registra "Route created" con el nombre del vendor si existe.
// La existencia del vendor la verifica el caso de uso, no el store.
func (r *RouteRepo) Create(in entity.InsertRoute) *entity.Route {
	status := in.Status
	if status == "" {
		status = entity.RouteActive
	}
	rt := &entity.Route{
		VendorID:         in.VendorID,
		Departure:        in.Departure,
		Destination:      in.Destination,
		DepartureTime:    in.DepartureTime,
		EstimatedArrival: in.EstimatedArrival,
		Fare:             in.Fare,
		Capacity:         in.Capacity,
		Status:           status,
		DaysOfWeek:       append([]string(nil), in.DaysOfWeek...),
		CreatedAt:        r.s.now(),
	}

	t := r.s.routes
	t.mu.Lock()
	rt.ID = t.allocID()
	t.rows[rt.ID] = rt
	out := rt.Clone()
	t.mu.Unlock()

	details := map[string]any{"route": out.Label()}
	if v, ok := NewVendorRepository(r.s).GetByID(out.VendorID); ok {
		details["vendor"] = v.Name
	}
	r.s.activities.Record(nil, "Route created", details)
	return out
}

// GetByID obtiene una ruta por id.
func (r *RouteRepo) GetByID(id int64) (*entity.Route, bool) {
	t := r.s.routes
	t.mu.RLock()
	defer t.mu.RUnlock()
	rt, ok := t.rows[id]
	if !ok {
		return nil, false
	}
	return rt.Clone(), true
}

// Update fusiona el patch y registra "Route updated" con la etiqueta previa.
func (r *RouteRepo) Update(id int64, patch entity.RoutePatch) (*entity.Route, bool) {
	t := r.s.routes
	t.mu.Lock()
	rt, ok := t.rows[id]
	if !ok {
		t.mu.Unlock()
		return nil, false
	}
	label := rt.Label()
	patch.Apply(rt)
	out := rt.Clone()
	t.mu.Unlock()

	r.s.activities.Record(nil, "Route updated", map[string]any{"route": label})
	return out, true
}

// List devuelve todas las rutas.
func (r *RouteRepo) List() []*entity.Route {
	return r.s.routes.snapshot(nil, (*entity.Route).Clone, routeID)
}

// ListByVendor filtra por vendor (recorrido lineal).
func (r *RouteRepo) ListByVendor(vendorID int64) []*entity.Route {
	return r.s.routes.snapshot(func(rt *entity.Route) bool {
		return rt.VendorID == vendorID
	}, (*entity.Route).Clone, routeID)
}

// Delete elimina la ruta; registra "Route deleted" solo si existía.
func (r *RouteRepo) Delete(id int64) bool {
	t := r.s.routes
	t.mu.Lock()
	rt, ok := t.rows[id]
	if ok {
		delete(t.rows, id)
	}
	t.mu.Unlock()
	if !ok {
		return false
	}
	r.s.activities.Record(nil, "Route deleted", map[string]any{"route": rt.Label()})
	return true
}

func routeID(rt *entity.Route) int64 { return rt.ID }
