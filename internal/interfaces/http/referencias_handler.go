package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/terceros"
)

// ReferenciasHandler tipos de identificación y canales de cliente.
type ReferenciasHandler struct {
	uc *terceros.ReferenciasUseCase
}

// NewReferenciasHandler construye el handler.
func NewReferenciasHandler(uc *terceros.ReferenciasUseCase) *ReferenciasHandler {
	return &ReferenciasHandler{uc: uc}
}

// CreateTipo godoc
// @Summary      Crear tipo de identificación
// @Tags         tipos-identificacion
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TipoIdentificacionRequest  true  "Datos del tipo"
// @Success      201   {object}  dto.TipoIdentificacionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tipos-identificacion [post]
func (h *ReferenciasHandler) CreateTipo(c *fiber.Ctx) error {
	var in dto.TipoIdentificacionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateTipo(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetTipo godoc
// @Summary      Obtener tipo de identificación
// @Tags         tipos-identificacion
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del tipo"
// @Success      200  {object}  dto.TipoIdentificacionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tipos-identificacion/{id} [get]
func (h *ReferenciasHandler) GetTipo(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetTipo(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListTipos godoc
// @Summary      Listar tipos de identificación
// @Tags         tipos-identificacion
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TipoIdentificacionResponse
// @Router       /api/tipos-identificacion [get]
func (h *ReferenciasHandler) ListTipos(c *fiber.Ctx) error {
	out, err := h.uc.ListTipos(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateTipo godoc
// @Summary      Actualizar tipo de identificación
// @Tags         tipos-identificacion
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                         true  "ID del tipo"
// @Param        body  body  dto.TipoIdentificacionRequest  true  "Datos del tipo"
// @Success      200   {object}  dto.TipoIdentificacionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tipos-identificacion/{id} [put]
func (h *ReferenciasHandler) UpdateTipo(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.TipoIdentificacionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateTipo(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteTipo godoc
// @Summary      Eliminar tipo de identificación
// @Tags         tipos-identificacion
// @Security     Bearer
// @Param        id   path  string  true  "ID del tipo"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/tipos-identificacion/{id} [delete]
func (h *ReferenciasHandler) DeleteTipo(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.DeleteTipo(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateCanal godoc
// @Summary      Crear canal de cliente
// @Tags         canales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCanalRequest  true  "Código y nombre del canal"
// @Success      201   {object}  dto.CanalResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/canales [post]
func (h *ReferenciasHandler) CreateCanal(c *fiber.Ctx) error {
	var in dto.CreateCanalRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateCanal(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetCanal godoc
// @Summary      Obtener canal
// @Tags         canales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Código del canal"
// @Success      200  {object}  dto.CanalResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/canales/{id} [get]
func (h *ReferenciasHandler) GetCanal(c *fiber.Ctx) error {
	out, err := h.uc.GetCanal(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListCanales godoc
// @Summary      Listar canales
// @Tags         canales
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CanalResponse
// @Router       /api/canales [get]
func (h *ReferenciasHandler) ListCanales(c *fiber.Ctx) error {
	out, err := h.uc.ListCanales(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateCanal godoc
// @Summary      Renombrar canal
// @Tags         canales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "Código del canal"
// @Param        body  body  dto.UpdateCanalRequest  true  "Nombre"
// @Success      200   {object}  dto.CanalResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/canales/{id} [put]
func (h *ReferenciasHandler) UpdateCanal(c *fiber.Ctx) error {
	var in dto.UpdateCanalRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateCanal(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteCanal godoc
// @Summary      Eliminar canal
// @Tags         canales
// @Security     Bearer
// @Param        id   path  string  true  "Código del canal"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/canales/{id} [delete]
func (h *ReferenciasHandler) DeleteCanal(c *fiber.Ctx) error {
	if err := h.uc.DeleteCanal(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
