package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-api/internal/application/catalogo"
	"github.com/jhoicas/pos-api/internal/application/dto"
)

// GrupoHandler CRUD de grupos de artículos.
type GrupoHandler struct {
	uc *catalogo.GrupoUseCase
}

// NewGrupoHandler construye el handler.
func NewGrupoHandler(uc *catalogo.GrupoUseCase) *GrupoHandler {
	return &GrupoHandler{uc: uc}
}

// Create godoc
// @Summary      Crear grupo
// @Tags         grupos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateGrupoRequest  true  "Datos del grupo"
// @Success      201   {object}  dto.GrupoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/grupos [post]
func (h *GrupoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateGrupoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener grupo
// @Tags         grupos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del grupo"
// @Success      200  {object}  dto.GrupoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/grupos/{id} [get]
func (h *GrupoHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar grupos
// @Tags         grupos
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Desplazamiento"  default(0)
// @Success      200  {array}  dto.GrupoResponse
// @Router       /api/grupos [get]
func (h *GrupoHandler) List(c *fiber.Ctx) error {
	p := page(c)
	out, err := h.uc.List(c.UserContext(), p.Limit, p.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar grupo
// @Tags         grupos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del grupo"
// @Param        body  body  dto.UpdateGrupoRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.GrupoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/grupos/{id} [patch]
func (h *GrupoHandler) Update(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateGrupoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar grupo
// @Description  Rechazado con 409 IN_USE si tiene líneas o artículos.
// @Tags         grupos
// @Security     Bearer
// @Param        id   path  string  true  "ID del grupo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/grupos/{id} [delete]
func (h *GrupoHandler) Delete(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// LineaHandler CRUD de líneas de artículos.
type LineaHandler struct {
	uc *catalogo.LineaUseCase
}

// NewLineaHandler construye el handler.
func NewLineaHandler(uc *catalogo.LineaUseCase) *LineaHandler {
	return &LineaHandler{uc: uc}
}

// Create godoc
// @Summary      Crear línea
// @Tags         lineas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLineaRequest  true  "Datos de la línea"
// @Success      201   {object}  dto.LineaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/lineas [post]
func (h *LineaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLineaRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener línea
// @Tags         lineas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la línea"
// @Success      200  {object}  dto.LineaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lineas/{id} [get]
func (h *LineaHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar líneas
// @Tags         lineas
// @Security     Bearer
// @Produce      json
// @Param        grupo_id  query  string  false  "Filtrar por grupo"
// @Param        limit     query  int     false  "Límite"  default(20)
// @Param        offset    query  int     false  "Desplazamiento"  default(0)
// @Success      200  {array}  dto.LineaResponse
// @Router       /api/lineas [get]
func (h *LineaHandler) List(c *fiber.Ctx) error {
	if err := uuidQuery(c, "grupo_id"); err != nil {
		return respondError(c, err)
	}
	p := page(c)
	out, err := h.uc.List(c.UserContext(), c.Query("grupo_id"), p.Limit, p.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar línea
// @Tags         lineas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la línea"
// @Param        body  body  dto.UpdateLineaRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.LineaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/lineas/{id} [patch]
func (h *LineaHandler) Update(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateLineaRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar línea
// @Tags         lineas
// @Security     Bearer
// @Param        id   path  string  true  "ID de la línea"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/lineas/{id} [delete]
func (h *LineaHandler) Delete(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
