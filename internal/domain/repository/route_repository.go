package repository

import "github.com/jhoicas/tiyende-api/internal/domain/entity"

// RouteRepository define el puerto de persistencia para Route.
type RouteRepository interface {
	Create(in entity.InsertRoute) *entity.Route
	GetByID(id int64) (*entity.Route, bool)
	Update(id int64, patch entity.RoutePatch) (*entity.Route, bool)
	List() []*entity.Route
	ListByVendor(vendorID int64) []*entity.Route
	Delete(id int64) bool
}
