package usecase

import (
	"github.com/jhoicas/tiyende-api/internal/application/dto"
	"github.com/jhoicas/tiyende-api/internal/domain"
	"github.com/jhoicas/tiyende-api/internal/domain/entity"
	"github.com/jhoicas/tiyende-api/internal/domain/repository"
)

// VendorUseCase casos de uso CRUD para vendors (empresas de buses).
type VendorUseCase struct {
	repo   repository.VendorRepository
	routes repository.RouteRepository
}

// NewVendorUseCase construye el caso de uso.
func NewVendorUseCase(repo repository.VendorRepository, routes repository.RouteRepository) *VendorUseCase {
	return &VendorUseCase{repo: repo, routes: routes}
}

// Create crea un vendor. Status vacío = active.
func (uc *VendorUseCase) Create(in dto.CreateVendorRequest) (*dto.VendorResponse, error) {
	if in.Name == "" || in.ContactPerson == "" || in.Email == "" || in.Phone == "" {
		return nil, invalidf("name, contactPerson, email y phone son requeridos")
	}
	if in.Status != "" && !entity.IsValidVendorStatus(in.Status) {
		return nil, invalidf("status debe ser active, inactive o pending")
	}
	v := uc.repo.Create(entity.InsertVendor{
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		Status:        in.Status,
		Logo:          in.Logo,
	})
	return ToVendorResponse(v), nil
}

// GetByID obtiene un vendor; (nil, nil) si no existe.
func (uc *VendorUseCase) GetByID(id int64) (*dto.VendorResponse, error) {
	v, ok := uc.repo.GetByID(id)
	if !ok {
		return nil, nil
	}
	return ToVendorResponse(v), nil
}

// Update aplica una actualización parcial; (nil, nil) si no existe.
func (uc *VendorUseCase) Update(id int64, in dto.UpdateVendorRequest) (*dto.VendorResponse, error) {
	if in.Status != nil && !entity.IsValidVendorStatus(*in.Status) {
		return nil, invalidf("status debe ser active, inactive o pending")
	}
	if in.Name != nil && *in.Name == "" {
		return nil, invalidf("name no puede ser vacío")
	}
	v, ok := uc.repo.Update(id, entity.VendorPatch{
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		Status:        in.Status,
		Logo:          in.Logo,
	})
	if !ok {
		return nil, nil
	}
	return ToVendorResponse(v), nil
}

// List lista todos los vendors.
func (uc *VendorUseCase) List() []dto.VendorResponse {
	return toVendorList(uc.repo.List())
}

// Delete elimina un vendor. Devuelve domain.ErrNotFound si no existía.
func (uc *VendorUseCase) Delete(id int64) error {
	if !uc.repo.Delete(id) {
		return domain.ErrNotFound
	}
	return nil
}

// ListRoutes lista las rutas de un vendor. Devuelve domain.ErrNotFound si el vendor no existe.
func (uc *VendorUseCase) ListRoutes(vendorID int64) ([]dto.RouteResponse, error) {
	if _, ok := uc.repo.GetByID(vendorID); !ok {
		return nil, domain.ErrNotFound
	}
	return toRouteList(uc.routes.ListByVendor(vendorID)), nil
}
