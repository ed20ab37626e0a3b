package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/tiyende-api/internal/application/analytics"
	"github.com/jhoicas/tiyende-api/internal/application/auth"
	"github.com/jhoicas/tiyende-api/internal/application/dto"
	"github.com/jhoicas/tiyende-api/internal/application/usecase"
	"github.com/jhoicas/tiyende-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/tiyende-api/internal/infrastructure/pdf"
	"github.com/jhoicas/tiyende-api/internal/infrastructure/seed"
	apphttp "github.com/jhoicas/tiyende-api/internal/interfaces/http"
	"github.com/jhoicas/tiyende-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testAdminPassword = "admin123"

type testServer struct {
	t   *testing.T
	app *fiber.App
}

// newTestServer arma la API completa sobre un store en memoria con el fixture embebido.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	s := memory.NewStore()
	userRepo := memory.NewUserRepository(s)
	vendorRepo := memory.NewVendorRepository(s)
	routeRepo := memory.NewRouteRepository(s)
	ticketRepo := memory.NewTicketRepository(s)
	settingRepo := memory.NewSettingRepository(s)
	activityRepo := memory.NewActivityRepository(s)

	fixture, err := seed.LoadFile("")
	require.NoError(t, err)
	_, err = seed.Apply(fixture, seed.Repos{
		Users: userRepo, Vendors: vendorRepo, Routes: routeRepo, Tickets: ticketRepo,
		Settings: settingRepo, Activities: activityRepo, AdminPassword: testAdminPassword,
	})
	require.NoError(t, err)

	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(userRepo, activityRepo, auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}),
		UserUC:      usecase.NewUserUseCase(userRepo),
		VendorUC:    usecase.NewVendorUseCase(vendorRepo, routeRepo),
		RouteUC:     usecase.NewRouteUseCase(routeRepo, vendorRepo),
		TicketUC:    usecase.NewTicketUseCase(ticketRepo, routeRepo, vendorRepo, ""),
		TicketPDF:   usecase.NewTicketPDFUseCase(ticketRepo, routeRepo, vendorRepo, settingRepo, infrapdf.NewMarotoTicketGenerator()),
		SettingUC:   usecase.NewSettingUseCase(settingRepo),
		ActivityUC:  usecase.NewActivityUseCase(activityRepo),
		DashboardUC: appanalytics.NewDashboardUseCase(ticketRepo, vendorRepo, routeRepo, activityRepo),
		JWTSecret:   testJWTSecret,
	})
	return &testServer{t: t, app: app}
}

// call ejecuta una petición; body nil = sin cuerpo. token vacío = sin Authorization.
func (ts *testServer) call(method, path, token string, body any) *http.Response {
	ts.t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(ts.t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := ts.app.Test(req, -1)
	require.NoError(ts.t, err)
	return resp
}

func (ts *testServer) login(username, password string) string {
	ts.t.Helper()
	resp := ts.call(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: username, Password: password})
	defer resp.Body.Close()
	require.Equal(ts.t, http.StatusOK, resp.StatusCode)
	var out dto.LoginResponse
	require.NoError(ts.t, json.NewDecoder(resp.Body).Decode(&out))
	return out.Token
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestAuth_LoginMeLogout(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login("admin", testAdminPassword)

	me := decode[dto.UserResponse](t, ts.call(http.MethodGet, "/api/auth/me", token, nil))
	assert.Equal(t, "admin", me.Username)
	assert.NotNil(t, me.LastLogin)

	resp := ts.call(http.MethodPost, "/api/auth/logout", token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = ts.call(http.MethodGet, "/api/auth/me", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "el token deja de valer tras logout")
}

func TestAuth_LoginCredencialesInvalidas(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.call(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: "admin", Password: "mala"})
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = ts.call(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: "nadie", Password: "x"})
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = ts.call(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAuth_RutaProtegidaSinToken(t *testing.T) {
	ts := newTestServer(t)
	resp := ts.call(http.MethodGet, "/api/vendors", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Users (admin)
// ──────────────────────────────────────────────────────────────────────────────

func TestUsers_SoloAdminYDuplicados(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.login("admin", testAdminPassword)

	newUser := dto.CreateUserRequest{
		Username: "mary", Password: "secreto1", Email: "mary@tiyende.com", FullName: "Mary Banda",
	}
	created := ts.call(http.MethodPost, "/api/users", admin, newUser)
	assert.Equal(t, http.StatusCreated, created.StatusCode)
	user := decode[dto.UserResponse](t, created)
	assert.Equal(t, "staff", user.Role)

	raw, _ := json.Marshal(user)
	assert.NotContains(t, string(raw), "password", "el password nunca se serializa")

	dup := ts.call(http.MethodPost, "/api/users", admin, newUser)
	dup.Body.Close()
	assert.Equal(t, http.StatusConflict, dup.StatusCode)

	staff := ts.login("mary", "secreto1")
	resp := ts.call(http.MethodGet, "/api/users", staff, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = ts.call(http.MethodDelete, "/api/users/99", admin, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUsers_CuentaDesactivadaPierdeAcceso(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.login("admin", testAdminPassword)

	user := decode[dto.UserResponse](t, ts.call(http.MethodPost, "/api/users", admin, dto.CreateUserRequest{
		Username: "mary", Password: "secreto1", Email: "mary@tiyende.com", FullName: "Mary Banda",
	}))
	staff := ts.login("mary", "secreto1")

	inactive := false
	resp := ts.call(http.MethodPatch, "/api/users/"+strconv.FormatInt(user.ID, 10), admin, dto.UpdateUserRequest{Active: &inactive})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = ts.call(http.MethodGet, "/api/vendors", staff, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = ts.call(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: "mary", Password: "secreto1"})
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestUsers_RoleDegradadoAplicaSinRelogin(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.login("admin", testAdminPassword)

	other := decode[dto.UserResponse](t, ts.call(http.MethodPost, "/api/users", admin, dto.CreateUserRequest{
		Username: "kaluba", Password: "secreto1", Email: "kaluba@tiyende.com", FullName: "Kaluba Mwape", Role: "admin",
	}))
	second := ts.login("kaluba", "secreto1")

	resp := ts.call(http.MethodGet, "/api/users", second, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	staff := "staff"
	resp = ts.call(http.MethodPatch, "/api/users/"+strconv.FormatInt(other.ID, 10), admin, dto.UpdateUserRequest{Role: &staff})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = ts.call(http.MethodGet, "/api/users", second, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Vendors y rutas
// ──────────────────────────────────────────────────────────────────────────────

func TestVendors_CRUD(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login("admin", testAdminPassword)

	list := decode[[]dto.VendorResponse](t, ts.call(http.MethodGet, "/api/vendors", token, nil))
	require.Len(t, list, 2)
	assert.Equal(t, "Mazhandu Bus", list[0].Name)

	created := ts.call(http.MethodPost, "/api/vendors", token, dto.CreateVendorRequest{
		Name: "Zambia Royal Bus", ContactPerson: "Peter Phiri", Email: "info@royal.zm", Phone: "+260 95 0000000",
	})
	require.Equal(t, http.StatusCreated, created.StatusCode)
	v := decode[dto.VendorResponse](t, created)
	assert.Equal(t, int64(3), v.ID)
	assert.Equal(t, "active", v.Status)

	pending := "pending"
	updated := decode[dto.VendorResponse](t, ts.call(http.MethodPatch, "/api/vendors/3", token, dto.UpdateVendorRequest{Status: &pending}))
	assert.Equal(t, "pending", updated.Status)
	assert.Equal(t, "Zambia Royal Bus", updated.Name)

	resp := ts.call(http.MethodDelete, "/api/vendors/3", token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = ts.call(http.MethodGet, "/api/vendors/3", token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = ts.call(http.MethodGet, "/api/vendors/abc", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_ID")
}

func TestVendors_ValidacionDevuelve400(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login("admin", testAdminPassword)

	resp := ts.call(http.MethodPost, "/api/vendors", token, dto.CreateVendorRequest{Name: "Sin contacto"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", out.Code)
}

func TestRoutes_FiltroYVendorInexistente(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login("admin", testAdminPassword)

	all := decode[[]dto.RouteResponse](t, ts.call(http.MethodGet, "/api/routes", token, nil))
	assert.Len(t, all, 2)

	byVendor := decode[[]dto.RouteResponse](t, ts.call(http.MethodGet, "/api/routes?vendorId=2", token, nil))
	require.Len(t, byVendor, 1)
	assert.Equal(t, "Ndola", byVendor[0].Destination)

	nested := decode[[]dto.RouteResponse](t, ts.call(http.MethodGet, "/api/vendors/1/routes", token, nil))
	require.Len(t, nested, 1)
	assert.Equal(t, "Livingstone", nested[0].Destination)

	resp := ts.call(http.MethodPost, "/api/routes", token, map[string]any{
		"vendorId": 99, "departure": "Lusaka", "destination": "Mongu",
		"departureTime": "06:00", "estimatedArrival": "13:00", "fare": "280", "capacity": 30,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_REFERENCE", decode[dto.ErrorResponse](t, resp).Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tickets
// ──────────────────────────────────────────────────────────────────────────────

func TestTickets_CreateConflictoYReferencia(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login("admin", testAdminPassword)

	booking := map[string]any{
		"routeId": 1, "vendorId": 1, "customerName": "Jane Mwale", "customerPhone": "+260 96 1111111",
		"seatNumber": 20, "travelDate": "2023-06-15",
	}
	created := ts.call(http.MethodPost, "/api/tickets", token, booking)
	require.Equal(t, http.StatusCreated, created.StatusCode)
	tk := decode[dto.TicketResponse](t, created)
	assert.Equal(t, "350", tk.Amount.String())
	assert.Regexp(t, `^TIY-[0-9A-F]{8}$`, tk.BookingReference)

	again := ts.call(http.MethodPost, "/api/tickets", token, booking)
	again.Body.Close()
	assert.Equal(t, http.StatusConflict, again.StatusCode, "asiento ya reservado para esa fecha")

	byRef := decode[dto.TicketResponse](t, ts.call(http.MethodGet, "/api/tickets/reference/"+tk.BookingReference, token, nil))
	assert.Equal(t, tk.ID, byRef.ID)

	resp := ts.call(http.MethodGet, "/api/tickets/reference/TIY-NOPE", token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = ts.call(http.MethodGet, "/api/tickets/reference", token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	bad := map[string]any{"routeId": 99, "vendorId": 1, "customerName": "X", "customerPhone": "1", "seatNumber": 1, "travelDate": "2023-06-15"}
	resp = ts.call(http.MethodPost, "/api/tickets", token, bad)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTickets_ReferenciaConCaracteresInvalidos(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login("admin", testAdminPassword)

	resp := ts.call(http.MethodPost, "/api/tickets", token, map[string]any{
		"bookingReference": `TIY"; filename=x.exe`, "routeId": 1, "vendorId": 1,
		"customerName": "Jane Mwale", "customerPhone": "+260 96 1111111", "seatNumber": 21, "travelDate": "2023-06-15",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)

	bad := "TIY 01"
	upd := ts.call(http.MethodPatch, "/api/tickets/1", token, dto.UpdateTicketRequest{BookingReference: &bad})
	upd.Body.Close()
	assert.Equal(t, http.StatusBadRequest, upd.StatusCode)
}

func TestTickets_ListadoFiltradoYUpdate(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login("admin", testAdminPassword)

	all := decode[[]dto.TicketResponse](t, ts.call(http.MethodGet, "/api/tickets", token, nil))
	assert.Len(t, all, 2)
	byRoute := decode[[]dto.TicketResponse](t, ts.call(http.MethodGet, "/api/tickets?routeId=2", token, nil))
	require.Len(t, byRoute, 1)
	assert.Equal(t, "TIY-8293", byRoute[0].BookingReference)
	byVendor := decode[[]dto.TicketResponse](t, ts.call(http.MethodGet, "/api/tickets?vendorId=1", token, nil))
	require.Len(t, byVendor, 1)
	assert.Equal(t, "TIY-8294", byVendor[0].BookingReference)

	resp := ts.call(http.MethodGet, "/api/tickets?routeId=abc", token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	paid := "paid"
	updated := decode[dto.TicketResponse](t, ts.call(http.MethodPatch, "/api/tickets/2", token, dto.UpdateTicketRequest{Status: &paid}))
	assert.Equal(t, "paid", updated.Status)
	assert.Equal(t, "Maria Sakala", updated.CustomerName)

	resp = ts.call(http.MethodPatch, "/api/tickets/99", token, dto.UpdateTicketRequest{Status: &paid})
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTickets_DescargaPDF(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login("admin", testAdminPassword)

	resp := ts.call(http.MethodGet, "/api/tickets/1/pdf", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "ticket-TIY-8294.pdf")
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))

	missing := ts.call(http.MethodGet, "/api/tickets/99/pdf", token, nil)
	missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Settings, dashboard y actividad
// ──────────────────────────────────────────────────────────────────────────────

func TestSettings_LecturaYEscrituraAdmin(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.login("admin", testAdminPassword)

	list := decode[[]dto.SettingResponse](t, ts.call(http.MethodGet, "/api/settings", admin, nil))
	assert.Len(t, list, 3)

	got := decode[dto.SettingResponse](t, ts.call(http.MethodGet, "/api/settings/contact_email", admin, nil))
	assert.Equal(t, "support@tiyende.com", got.Value)

	upserted := decode[dto.SettingResponse](t, ts.call(http.MethodPost, "/api/settings/currency", admin, dto.UpsertSettingRequest{Value: "ZMW"}))
	assert.Equal(t, "ZMW", upserted.Value)

	resp := ts.call(http.MethodGet, "/api/settings/nope", admin, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = ts.call(http.MethodPost, "/api/users", admin, dto.CreateUserRequest{
		Username: "mary", Password: "secreto1", Email: "mary@tiyende.com", FullName: "Mary Banda",
	})
	resp.Body.Close()
	staff := ts.login("mary", "secreto1")
	resp = ts.call(http.MethodPost, "/api/settings/currency", staff, dto.UpsertSettingRequest{Value: "USD"})
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestSettings_NombreIntactoTrasOtrasPeticiones(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.login("admin", testAdminPassword)

	resp := ts.call(http.MethodPost, "/api/settings/currency_code", admin, dto.UpsertSettingRequest{Value: "ZMW"})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// peticiones posteriores reutilizan los buffers de Fiber
	for i := range 20 {
		path := "/api/routes" + strings.Repeat("x", i%7)
		if i%2 == 0 {
			path = "/api/settings/otro_" + strconv.Itoa(i)
		}
		r := ts.call(http.MethodGet, path, admin, nil)
		r.Body.Close()
	}

	list := decode[[]dto.SettingResponse](t, ts.call(http.MethodGet, "/api/settings", admin, nil))
	names := make([]string, 0, len(list))
	for _, st := range list {
		names = append(names, st.Name)
	}
	assert.Equal(t, []string{"system_name", "contact_email", "contact_phone", "currency_code"}, names)

	got := ts.call(http.MethodGet, "/api/settings/currency_code", admin, nil)
	require.Equal(t, http.StatusOK, got.StatusCode)
	assert.Equal(t, "ZMW", decode[dto.SettingResponse](t, got).Value)

	recent := decode[[]dto.ActivityResponse](t, ts.call(http.MethodGet, "/api/activities?limit=1", admin, nil))
	require.Len(t, recent, 1)
	assert.Equal(t, "currency_code", recent[0].Details["setting"])
}

func TestDashboard_Snapshot(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login("admin", testAdminPassword)

	snap := decode[dto.DashboardStatsDTO](t, ts.call(http.MethodGet, "/api/dashboard", token, nil))
	assert.Equal(t, 2, snap.TotalBookings)
	assert.Equal(t, "350", snap.TotalRevenue.String())
	assert.Equal(t, 2, snap.ActiveVendors)
	assert.Equal(t, 2, snap.ActiveRoutes)
	assert.Len(t, snap.RecentBookings, 2)
	require.NotEmpty(t, snap.RecentActivities)
	assert.Equal(t, "User logged in", snap.RecentActivities[0].Action)
}

func TestActivities_RegistroManualYLimite(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login("admin", testAdminPassword)

	created := ts.call(http.MethodPost, "/api/activities", token, dto.CreateActivityRequest{
		Action: "New route added", Details: map[string]any{"route": "Lusaka → Mongu"},
	})
	require.Equal(t, http.StatusCreated, created.StatusCode)
	a := decode[dto.ActivityResponse](t, created)
	require.NotNil(t, a.UserID)
	assert.Equal(t, int64(1), *a.UserID)

	recent := decode[[]dto.ActivityResponse](t, ts.call(http.MethodGet, "/api/activities?limit=2", token, nil))
	require.Len(t, recent, 2)
	assert.Equal(t, "New route added", recent[0].Action)
	assert.Equal(t, "User logged in", recent[1].Action)

	resp := ts.call(http.MethodPost, "/api/activities", token, dto.CreateActivityRequest{})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
