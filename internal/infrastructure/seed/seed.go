// Package seed carga datos de ejemplo desde un fixture YAML al store en memoria.
// Sin archivo explícito se usa el fixture embebido default.yaml.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/tiyende-api/internal/application/usecase"
	"github.com/jhoicas/tiyende-api/internal/domain/entity"
	"github.com/jhoicas/tiyende-api/internal/domain/repository"
)

//go:embed default.yaml
var defaultFixture []byte

// Fixture estructura del archivo YAML. Las referencias (vendor, route, user)
// son posiciones 1-based dentro de su lista, que en un store vacío coinciden con el id.
type Fixture struct {
	Users []struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"` // vacío = AdminPassword de Repos
		Email    string `yaml:"email"`
		FullName string `yaml:"fullName"`
		Role     string `yaml:"role"`
	} `yaml:"users"`
	Vendors []struct {
		Name          string `yaml:"name"`
		ContactPerson string `yaml:"contactPerson"`
		Email         string `yaml:"email"`
		Phone         string `yaml:"phone"`
		Address       string `yaml:"address"`
		Status        string `yaml:"status"`
	} `yaml:"vendors"`
	Routes []struct {
		Vendor           int      `yaml:"vendor"`
		Departure        string   `yaml:"departure"`
		Destination      string   `yaml:"destination"`
		DepartureTime    string   `yaml:"departureTime"`
		EstimatedArrival string   `yaml:"estimatedArrival"`
		Fare             string   `yaml:"fare"`
		Capacity         int      `yaml:"capacity"`
		Status           string   `yaml:"status"`
		DaysOfWeek       []string `yaml:"daysOfWeek"`
	} `yaml:"routes"`
	Settings []struct {
		Name  string `yaml:"name"`
		Value string `yaml:"value"`
	} `yaml:"settings"`
	Tickets []struct {
		BookingReference string `yaml:"bookingReference"`
		Route            int    `yaml:"route"`
		Vendor           int    `yaml:"vendor"`
		CustomerName     string `yaml:"customerName"`
		CustomerPhone    string `yaml:"customerPhone"`
		CustomerEmail    string `yaml:"customerEmail"`
		SeatNumber       int    `yaml:"seatNumber"`
		Status           string `yaml:"status"`
		Amount           string `yaml:"amount"`
		PaymentMethod    string `yaml:"paymentMethod"`
		PaymentReference string `yaml:"paymentReference"`
		TravelDate       string `yaml:"travelDate"`
	} `yaml:"tickets"`
	Activities []struct {
		User    int64          `yaml:"user"`
		Action  string         `yaml:"action"`
		Details map[string]any `yaml:"details"`
	} `yaml:"activities"`
}

// Repos puertos que el seeder necesita.
type Repos struct {
	Users         repository.UserRepository
	Vendors       repository.VendorRepository
	Routes        repository.RouteRepository
	Tickets       repository.TicketRepository
	Settings      repository.SettingRepository
	Activities    repository.ActivityRepository
	AdminPassword string
}

// Result conteo de registros cargados.
type Result struct {
	Users, Vendors, Routes, Tickets, Settings, Activities int
}

// Parse decodifica un fixture YAML.
func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("seed: parse yaml: %w", err)
	}
	return &f, nil
}

// LoadFile lee y decodifica el fixture en path; path vacío = fixture embebido.
func LoadFile(path string) (*Fixture, error) {
	if path == "" {
		return Parse(defaultFixture)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: leer %s: %w", path, err)
	}
	return Parse(data)
}

// Apply carga el fixture en orden users → vendors → routes → settings → tickets → activities.
func Apply(f *Fixture, r Repos) (Result, error) {
	var res Result

	for _, u := range f.Users {
		pass := u.Password
		if pass == "" {
			pass = r.AdminPassword
		}
		if pass == "" {
			return res, fmt.Errorf("seed: usuario %q sin password", u.Username)
		}
		hash, err := usecase.HashPassword(pass)
		if err != nil {
			return res, err
		}
		if _, err := r.Users.Create(entity.InsertUser{
			Username:     u.Username,
			PasswordHash: hash,
			Email:        u.Email,
			FullName:     u.FullName,
			Role:         u.Role,
		}); err != nil {
			return res, fmt.Errorf("seed: usuario %q: %w", u.Username, err)
		}
		res.Users++
	}

	vendorIDs := make([]int64, 0, len(f.Vendors))
	for _, v := range f.Vendors {
		in := entity.InsertVendor{
			Name:          v.Name,
			ContactPerson: v.ContactPerson,
			Email:         v.Email,
			Phone:         v.Phone,
			Status:        v.Status,
		}
		if v.Address != "" {
			in.Address = &v.Address
		}
		vendorIDs = append(vendorIDs, r.Vendors.Create(in).ID)
		res.Vendors++
	}

	routeIDs := make([]int64, 0, len(f.Routes))
	for i, rt := range f.Routes {
		vid, err := ref(vendorIDs, rt.Vendor, "vendor")
		if err != nil {
			return res, fmt.Errorf("seed: ruta %d: %w", i+1, err)
		}
		fare, err := decimal.NewFromString(rt.Fare)
		if err != nil {
			return res, fmt.Errorf("seed: ruta %d: fare: %w", i+1, err)
		}
		days, err := usecase.NormalizeWeekdays(rt.DaysOfWeek)
		if err != nil {
			return res, fmt.Errorf("seed: ruta %d: %w", i+1, err)
		}
		routeIDs = append(routeIDs, r.Routes.Create(entity.InsertRoute{
			VendorID:         vid,
			Departure:        rt.Departure,
			Destination:      rt.Destination,
			DepartureTime:    rt.DepartureTime,
			EstimatedArrival: rt.EstimatedArrival,
			Fare:             fare,
			Capacity:         rt.Capacity,
			Status:           rt.Status,
			DaysOfWeek:       days,
		}).ID)
		res.Routes++
	}

	for _, s := range f.Settings {
		r.Settings.Upsert(s.Name, s.Value)
		res.Settings++
	}

	for i, t := range f.Tickets {
		rid, err := ref(routeIDs, t.Route, "ruta")
		if err != nil {
			return res, fmt.Errorf("seed: ticket %d: %w", i+1, err)
		}
		vid, err := ref(vendorIDs, t.Vendor, "vendor")
		if err != nil {
			return res, fmt.Errorf("seed: ticket %d: %w", i+1, err)
		}
		amount, err := decimal.NewFromString(t.Amount)
		if err != nil {
			return res, fmt.Errorf("seed: ticket %d: amount: %w", i+1, err)
		}
		travel, err := usecase.ParseTravelDate(t.TravelDate)
		if err != nil {
			return res, fmt.Errorf("seed: ticket %d: %w", i+1, err)
		}
		if _, err := r.Tickets.Create(entity.InsertTicket{
			BookingReference: t.BookingReference,
			RouteID:          rid,
			VendorID:         vid,
			CustomerName:     t.CustomerName,
			CustomerPhone:    t.CustomerPhone,
			CustomerEmail:    optional(t.CustomerEmail),
			SeatNumber:       t.SeatNumber,
			Status:           t.Status,
			Amount:           amount,
			PaymentMethod:    optional(t.PaymentMethod),
			PaymentReference: optional(t.PaymentReference),
			TravelDate:       travel,
		}); err != nil {
			return res, fmt.Errorf("seed: ticket %q: %w", t.BookingReference, err)
		}
		res.Tickets++
	}

	for _, a := range f.Activities {
		var uid *int64
		if a.User > 0 {
			id := a.User
			uid = &id
		}
		r.Activities.Record(uid, a.Action, a.Details)
		res.Activities++
	}
	return res, nil
}

func ref(ids []int64, pos int, what string) (int64, error) {
	if pos < 1 || pos > len(ids) {
		return 0, fmt.Errorf("%s %d fuera de rango", what, pos)
	}
	return ids[pos-1], nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
