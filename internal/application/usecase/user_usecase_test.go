package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tiyende-api/internal/application/dto"
	"github.com/jhoicas/tiyende-api/internal/application/usecase"
	"github.com/jhoicas/tiyende-api/internal/domain"
	"github.com/jhoicas/tiyende-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Users
// ──────────────────────────────────────────────────────────────────────────────

func TestUserUseCase_CreateHasheaPassword(t *testing.T) {
	s := memory.NewStore()
	repo := memory.NewUserRepository(s)
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Create(dto.CreateUserRequest{
		Username: "mary", Password: "secreto1", Email: "mary@tiyende.com", FullName: "Mary Banda",
	})
	require.NoError(t, err)
	assert.Equal(t, "staff", out.Role)
	assert.True(t, out.Active)

	stored, ok := repo.GetByID(out.ID)
	require.True(t, ok)
	assert.NotEqual(t, "secreto1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto1")))
	assert.Equal(t, 0, s.Activities().Len(), "alta de usuario no registra actividad")
}

func TestUserUseCase_CreateDuplicadoYValidaciones(t *testing.T) {
	uc := usecase.NewUserUseCase(memory.NewUserRepository(memory.NewStore()))
	base := dto.CreateUserRequest{Username: "mary", Password: "secreto1", Email: "m@t.com", FullName: "Mary"}

	_, err := uc.Create(base)
	require.NoError(t, err)
	_, err = uc.Create(base)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	short := base
	short.Username, short.Password = "otro", "123"
	_, err = uc.Create(short)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	badRole := base
	badRole.Username, badRole.Role = "otro", "root"
	_, err = uc.Create(badRole)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserUseCase_UpdateYDelete(t *testing.T) {
	uc := usecase.NewUserUseCase(memory.NewUserRepository(memory.NewStore()))
	u, err := uc.Create(dto.CreateUserRequest{Username: "mary", Password: "secreto1", Email: "m@t.com", FullName: "Mary"})
	require.NoError(t, err)

	inactive := false
	out, err := uc.Update(u.ID, dto.UpdateUserRequest{Active: &inactive})
	require.NoError(t, err)
	assert.False(t, out.Active)
	assert.Equal(t, "mary", out.Username)

	missing, err := uc.Update(99, dto.UpdateUserRequest{Active: &inactive})
	assert.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, uc.Delete(u.ID))
	assert.ErrorIs(t, uc.Delete(u.ID), domain.ErrNotFound)
	assert.Empty(t, uc.List())
}

// ──────────────────────────────────────────────────────────────────────────────
// Settings y actividad
// ──────────────────────────────────────────────────────────────────────────────

func TestSettingUseCase_Upsert(t *testing.T) {
	uc := usecase.NewSettingUseCase(memory.NewSettingRepository(memory.NewStore()))

	_, err := uc.Upsert("contact_email", dto.UpsertSettingRequest{Value: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.Upsert("contact_email", dto.UpsertSettingRequest{Value: "support@tiyende.com"})
	require.NoError(t, err)
	assert.Equal(t, "support@tiyende.com", out.Value)

	got, err := uc.Get("contact_email")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, out.ID, got.ID)

	none, err := uc.Get("nope")
	assert.NoError(t, err)
	assert.Nil(t, none)
}

func TestActivityUseCase_RecordAtribuyeAlActor(t *testing.T) {
	s := memory.NewStore()
	uc := usecase.NewActivityUseCase(memory.NewActivityRepository(s))

	out, err := uc.Record(3, dto.CreateActivityRequest{Action: "New vendor added", Details: map[string]any{"vendorName": "Zambia Royal Bus"}})
	require.NoError(t, err)
	require.NotNil(t, out.UserID)
	assert.Equal(t, int64(3), *out.UserID)

	other := int64(8)
	out, err = uc.Record(3, dto.CreateActivityRequest{UserID: &other, Action: "x"})
	require.NoError(t, err)
	assert.Equal(t, int64(8), *out.UserID)

	_, err = uc.Record(3, dto.CreateActivityRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	recent := uc.Recent(0)
	require.Len(t, recent, 2)
	assert.Equal(t, "x", recent[0].Action)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ticket PDF
// ──────────────────────────────────────────────────────────────────────────────

type fakeTicketPDF struct {
	doc usecase.TicketDocument
	err error
}

func (g *fakeTicketPDF) GenerateTicketPDF(_ context.Context, doc usecase.TicketDocument) ([]byte, error) {
	g.doc = doc
	if g.err != nil {
		return nil, g.err
	}
	return []byte("%PDF-fake"), nil
}

func TestTicketPDFUseCase_Download(t *testing.T) {
	f := newFixture(t)
	vendorID, routeID := f.seedRoute(t)
	in := ticketReq(vendorID, routeID, 4, "2023-06-15")
	in.BookingReference = "TIY-8294"
	tk, err := f.tickets.Create(in)
	require.NoError(t, err)

	settings := memory.NewSettingRepository(f.store)
	settings.Upsert("contact_phone", "+260 97 1234567")

	gen := &fakeTicketPDF{}
	uc := usecase.NewTicketPDFUseCase(
		memory.NewTicketRepository(f.store), memory.NewRouteRepository(f.store),
		memory.NewVendorRepository(f.store), settings, gen,
	)

	pdf, filename, err := uc.Download(context.Background(), tk.ID)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(pdf))
	assert.Equal(t, "ticket-TIY-8294.pdf", filename)
	assert.Equal(t, "Tiyende Bus Reservation", gen.doc.SystemName)
	assert.Equal(t, "+260 97 1234567", gen.doc.Contact)
	require.NotNil(t, gen.doc.Route)
	assert.Equal(t, "Livingstone", gen.doc.Route.Destination)

	_, _, err = uc.Download(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	refunded := "refunded"
	_, err = f.tickets.Update(tk.ID, dto.UpdateTicketRequest{Status: &refunded})
	require.NoError(t, err)
	_, _, err = uc.Download(context.Background(), tk.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	gen.err = errors.New("boom")
	paid := "paid"
	_, err = f.tickets.Update(tk.ID, dto.UpdateTicketRequest{Status: &paid})
	require.NoError(t, err)
	_, _, err = uc.Download(context.Background(), tk.ID)
	assert.Error(t, err)
}
