package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/jhoicas/tiyende-api/internal/application/dto"
	"github.com/jhoicas/tiyende-api/internal/application/usecase"
)

// SettingHandler configuración clave-valor del sistema.
type SettingHandler struct {
	uc *usecase.SettingUseCase
}

// NewSettingHandler construye el handler.
func NewSettingHandler(uc *usecase.SettingUseCase) *SettingHandler {
	return &SettingHandler{uc: uc}
}

// List godoc
// @Summary      Listar settings
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SettingResponse
// @Router       /api/settings [get]
func (h *SettingHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}

// Get godoc
// @Summary      Obtener setting por nombre
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Param        name  path  string  true  "Nombre, ej. system_name"
// @Success      200   {object}  dto.SettingResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/settings/{name} [get]
func (h *SettingHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("name"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "setting no encontrado")
	}
	return c.JSON(out)
}

// Upsert godoc
// @Summary      Crear o actualizar setting
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        name  path  string  true  "Nombre del setting"
// @Param        body  body  dto.UpsertSettingRequest  true  "Nuevo valor"
// @Success      200   {object}  dto.SettingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/settings/{name} [post]
func (h *SettingHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertSettingRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Upsert(utils.CopyString(c.Params("name")), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
