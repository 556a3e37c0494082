package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-api/internal/application/catalogo"
	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// ArticuloHandler maneja artículos y su lista de precios.
type ArticuloHandler struct {
	uc *catalogo.ArticuloUseCase
}

// NewArticuloHandler construye el handler.
func NewArticuloHandler(uc *catalogo.ArticuloUseCase) *ArticuloHandler {
	return &ArticuloHandler{uc: uc}
}

// Create godoc
// @Summary      Crear artículo
// @Description  Crea el artículo y su lista de precios con precio_1.
// @Tags         articulos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateArticuloRequest  true  "Datos del artículo"
// @Success      201   {object}  dto.ArticuloResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/articulos [post]
func (h *ArticuloHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateArticuloRequest
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
// @Summary      Obtener artículo
// @Tags         articulos
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del artículo"
// @Param        fields  query  string  false  "Campos a devolver, separados por coma"
// @Success      200  {object}  dto.ArticuloResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/articulos/{id} [get]
func (h *ArticuloHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	if fields := dto.ParseFields(c.Query("fields")); len(fields) > 0 {
		return c.JSON(dto.Project(out, fields))
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar artículos
// @Description  Sin fields devuelve el listado plano; con fields proyecta la salida completa.
// @Tags         articulos
// @Security     Bearer
// @Produce      json
// @Param        grupo_id  query  string  false  "Filtrar por grupo"
// @Param        linea_id  query  string  false  "Filtrar por línea"
// @Param        q         query  string  false  "Buscar por código, código de barras o descripción"
// @Param        fields    query  string  false  "Campos a devolver, separados por coma"
// @Param        limit     query  int     false  "Límite"  default(20)
// @Param        offset    query  int     false  "Desplazamiento"  default(0)
// @Success      200  {object}  dto.ArticuloListResponse
// @Router       /api/articulos [get]
func (h *ArticuloHandler) List(c *fiber.Ctx) error {
	if err := uuidQuery(c, "grupo_id", "linea_id"); err != nil {
		return respondError(c, err)
	}
	p := page(c)
	f := repository.ArticuloFiltro{
		GrupoID: c.Query("grupo_id"),
		LineaID: c.Query("linea_id"),
		Buscar:  c.Query("q"),
		Limit:   p.Limit,
		Offset:  p.Offset,
	}
	fields := dto.ParseFields(c.Query("fields"))
	if len(fields) == 0 {
		out, err := h.uc.List(c.UserContext(), f)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	list, err := h.uc.ListCompleto(c.UserContext(), f)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]map[string]interface{}, 0, len(list))
	for _, a := range list {
		items = append(items, dto.Project(a, fields))
	}
	return c.JSON(fiber.Map{
		"items": items,
		"page":  dto.PageResponse{Limit: p.Limit, Offset: p.Offset},
	})
}

// Update godoc
// @Summary      Actualizar artículo
// @Tags         articulos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del artículo"
// @Param        body  body  dto.UpdateArticuloRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.ArticuloResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/articulos/{id} [patch]
func (h *ArticuloHandler) Update(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateArticuloRequest
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
// @Summary      Eliminar artículo
// @Description  Rechazado con 409 IN_USE si aparece en ítems de órdenes.
// @Tags         articulos
// @Security     Bearer
// @Param        id   path  string  true  "ID del artículo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/articulos/{id} [delete]
func (h *ArticuloHandler) Delete(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdatePrecios godoc
// @Summary      Actualizar lista de precios
// @Tags         articulos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID del artículo"
// @Param        body  body  dto.PreciosRequest  true  "Precios a modificar"
// @Success      200   {object}  dto.PreciosResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/articulos/{id}/precios [put]
func (h *ArticuloHandler) UpdatePrecios(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.PreciosRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdatePrecios(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
