package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tiyende-api/internal/application/dto"
	"github.com/jhoicas/tiyende-api/internal/application/usecase"
	"github.com/jhoicas/tiyende-api/internal/domain"
)

// TicketHandler maneja reservas (tickets) y su PDF imprimible.
type TicketHandler struct {
	uc  *usecase.TicketUseCase
	pdf *usecase.TicketPDFUseCase
}

// NewTicketHandler construye el handler.
func NewTicketHandler(uc *usecase.TicketUseCase, pdf *usecase.TicketPDFUseCase) *TicketHandler {
	return &TicketHandler{uc: uc, pdf: pdf}
}

// List godoc
// @Summary      Listar tickets
// @Description  routeId tiene prioridad sobre vendorId.
// @Tags         tickets
// @Security     Bearer
// @Produce      json
// @Param        routeId   query  int  false  "Filtrar por ruta"
// @Param        vendorId  query  int  false  "Filtrar por vendor"
// @Success      200  {array}   dto.TicketResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/tickets [get]
func (h *TicketHandler) List(c *fiber.Ctx) error {
	var f dto.TicketFilter
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "routeId y vendorId deben ser enteros"})
	}
	return c.JSON(h.uc.List(f))
}

// Create godoc
// @Summary      Crear ticket
// @Description  Sin bookingReference se genera uno. El asiento debe estar libre para la fecha de viaje.
// @Tags         tickets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTicketRequest  true  "Datos de la reserva"
// @Success      201   {object}  dto.TicketResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tickets [post]
func (h *TicketHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTicketRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByReference godoc
// @Summary      Obtener ticket por código de reserva
// @Tags         tickets
// @Security     Bearer
// @Produce      json
// @Param        ref  path  string  true  "Código de reserva, ej. TIY-8294"
// @Success      200  {object}  dto.TicketResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tickets/reference/{ref} [get]
func (h *TicketHandler) GetByReference(c *fiber.Ctx) error {
	ref := strings.TrimSpace(c.Params("ref"))
	if ref == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_REFERENCE", Message: "reference es requerido"})
	}
	out, err := h.uc.GetByReference(ref)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "ticket no encontrado")
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener ticket por ID
// @Tags         tickets
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del ticket"
// @Success      200  {object}  dto.TicketResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tickets/{id} [get]
func (h *TicketHandler) GetByID(c *fiber.Ctx) error {
	id, ok, err := paramID(c)
	if !ok {
		return err
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "ticket no encontrado")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar ticket
// @Tags         tickets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del ticket"
// @Param        body  body  dto.UpdateTicketRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.TicketResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tickets/{id} [patch]
func (h *TicketHandler) Update(c *fiber.Ctx) error {
	id, ok, err := paramID(c)
	if !ok {
		return err
	}
	var in dto.UpdateTicketRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "ticket no encontrado")
	}
	return c.JSON(out)
}

// DownloadPDF godoc
// @Summary      Descargar ticket en PDF
// @Description  Ticket imprimible con QR del código de reserva. Sólo tickets pagados o pendientes.
// @Tags         tickets
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del ticket"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/tickets/{id}/pdf [get]
func (h *TicketHandler) DownloadPDF(c *fiber.Ctx) error {
	id, ok, err := paramID(c)
	if !ok {
		return err
	}
	pdf, filename, err := h.pdf.Download(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "ticket no encontrado")
		}
		return respondError(c, err)
	}
	// Attachment escapa el nombre y fija Content-Type por la extensión
	c.Attachment(filename)
	return c.Send(pdf)
}
