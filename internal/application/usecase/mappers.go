package usecase

import (
	"github.com/jhoicas/tiyende-api/internal/application/dto"
	"github.com/jhoicas/tiyende-api/internal/domain/entity"
)

// ToVendorResponse convierte la entidad a DTO.
func ToVendorResponse(v *entity.Vendor) *dto.VendorResponse {
	if v == nil {
		return nil
	}
	return &dto.VendorResponse{
		ID:            v.ID,
		Name:          v.Name,
		ContactPerson: v.ContactPerson,
		Email:         v.Email,
		Phone:         v.Phone,
		Address:       v.Address,
		Status:        v.Status,
		Logo:          v.Logo,
		CreatedAt:     v.CreatedAt,
	}
}

// ToRouteResponse convierte la entidad a DTO.
func ToRouteResponse(r *entity.Route) *dto.RouteResponse {
	if r == nil {
		return nil
	}
	days := r.DaysOfWeek
	if days == nil {
		days = []string{}
	}
	return &dto.RouteResponse{
		ID:               r.ID,
		VendorID:         r.VendorID,
		Departure:        r.Departure,
		Destination:      r.Destination,
		DepartureTime:    r.DepartureTime,
		EstimatedArrival: r.EstimatedArrival,
		Fare:             r.Fare,
		Capacity:         r.Capacity,
		Status:           r.Status,
		DaysOfWeek:       days,
		CreatedAt:        r.CreatedAt,
	}
}

// ToTicketResponse convierte la entidad a DTO.
func ToTicketResponse(t *entity.Ticket) *dto.TicketResponse {
	if t == nil {
		return nil
	}
	return &dto.TicketResponse{
		ID:               t.ID,
		BookingReference: t.BookingReference,
		RouteID:          t.RouteID,
		VendorID:         t.VendorID,
		CustomerName:     t.CustomerName,
		CustomerPhone:    t.CustomerPhone,
		CustomerEmail:    t.CustomerEmail,
		SeatNumber:       t.SeatNumber,
		Status:           t.Status,
		Amount:           t.Amount,
		PaymentMethod:    t.PaymentMethod,
		PaymentReference: t.PaymentReference,
		TravelDate:       t.TravelDate,
		BookingDate:      t.BookingDate,
	}
}

// ToUserResponse convierte la entidad a DTO (sin password ni token).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		Active:    u.Active,
		LastLogin: u.LastLogin,
	}
}

// ToSettingResponse convierte la entidad a DTO.
func ToSettingResponse(s *entity.Setting) *dto.SettingResponse {
	if s == nil {
		return nil
	}
	return &dto.SettingResponse{
		ID:          s.ID,
		Name:        s.Name,
		Value:       s.Value,
		Description: s.Description,
		UpdatedAt:   s.UpdatedAt,
	}
}

// ToActivityResponse convierte la entidad a DTO.
func ToActivityResponse(a *entity.Activity) *dto.ActivityResponse {
	if a == nil {
		return nil
	}
	return &dto.ActivityResponse{
		ID:        a.ID,
		UserID:    a.UserID,
		Action:    a.Action,
		Details:   a.Details,
		Timestamp: a.Timestamp,
	}
}

func toVendorList(list []*entity.Vendor) []dto.VendorResponse {
	out := make([]dto.VendorResponse, 0, len(list))
	for _, v := range list {
		out = append(out, *ToVendorResponse(v))
	}
	return out
}

func toRouteList(list []*entity.Route) []dto.RouteResponse {
	out := make([]dto.RouteResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *ToRouteResponse(r))
	}
	return out
}

// ToTicketList convierte una lista de tickets.
func ToTicketList(list []*entity.Ticket) []dto.TicketResponse {
	out := make([]dto.TicketResponse, 0, len(list))
	for _, t := range list {
		out = append(out, *ToTicketResponse(t))
	}
	return out
}

// ToActivityList convierte una lista de actividades.
func ToActivityList(list []*entity.Activity) []dto.ActivityResponse {
	out := make([]dto.ActivityResponse, 0, len(list))
	for _, a := range list {
		out = append(out, *ToActivityResponse(a))
	}
	return out
}
