package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/pedidos"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// OrdenHandler órdenes de compra de cliente, sus ítems y la nota en PDF.
type OrdenHandler struct {
	uc  *pedidos.OrdenUseCase
	pdf *pedidos.PDFUseCase
}

// NewOrdenHandler construye el handler.
func NewOrdenHandler(uc *pedidos.OrdenUseCase, pdf *pedidos.PDFUseCase) *OrdenHandler {
	return &OrdenHandler{uc: uc, pdf: pdf}
}

// Create godoc
// @Summary      Crear orden
// @Description  Crea la cabecera y, opcionalmente, sus ítems en una sola transacción.
// @Tags         ordenes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrdenRequest  true  "Cabecera e ítems iniciales"
// @Success      201   {object}  dto.OrdenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/ordenes [post]
func (h *OrdenHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrdenRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener orden con ítems
// @Tags         ordenes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.OrdenResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ordenes/{id} [get]
func (h *OrdenHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar órdenes
// @Tags         ordenes
// @Security     Bearer
// @Produce      json
// @Param        cliente_id   query  string  false  "Filtrar por cliente"
// @Param        vendedor_id  query  string  false  "Filtrar por vendedor"
// @Param        estado       query  int     false  "Filtrar por estado (1-5)"
// @Param        limit        query  int     false  "Límite"  default(20)
// @Param        offset       query  int     false  "Desplazamiento"  default(0)
// @Success      200  {object}  dto.OrdenListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ordenes [get]
func (h *OrdenHandler) List(c *fiber.Ctx) error {
	if err := uuidQuery(c, "cliente_id", "vendedor_id"); err != nil {
		return respondError(c, err)
	}
	p := page(c)
	out, err := h.uc.List(c.UserContext(), repository.OrdenFiltro{
		ClienteID:  c.Query("cliente_id"),
		VendedorID: c.Query("vendedor_id"),
		Estado:     entity.EstadoOrden(c.QueryInt("estado", 0)),
		Limit:      p.Limit,
		Offset:     p.Offset,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cabecera de orden
// @Tags         ordenes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la orden"
// @Param        body  body  dto.UpdateOrdenRequest  true  "vendedor_id, estado, notas"
// @Success      200   {object}  dto.OrdenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ordenes/{id} [patch]
func (h *OrdenHandler) Update(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateOrdenRequest
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
// @Summary      Eliminar orden
// @Description  Elimina la orden y sus ítems.
// @Tags         ordenes
// @Security     Bearer
// @Param        id   path  string  true  "ID de la orden"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ordenes/{id} [delete]
func (h *OrdenHandler) Delete(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AgregarItem godoc
// @Summary      Agregar ítem
// @Description  precio_unitario 0 u omitido toma precio_1 de la lista del artículo. El importe se recalcula.
// @Tags         ordenes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string           true  "ID de la orden"
// @Param        body  body  dto.ItemRequest  true  "Ítem"
// @Success      201   {object}  dto.OrdenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/ordenes/{id}/items [post]
func (h *OrdenHandler) AgregarItem(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AgregarItem(c.UserContext(), GetUserID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ActualizarItem godoc
// @Summary      Actualizar ítem
// @Tags         ordenes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id       path  string                 true  "ID de la orden"
// @Param        item_id  path  string                 true  "ID del ítem"
// @Param        body     body  dto.UpdateItemRequest  true  "cantidad, precio_unitario, estado"
// @Success      200      {object}  dto.OrdenResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/ordenes/{id}/items/{item_id} [patch]
func (h *OrdenHandler) ActualizarItem(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	itemID, err := uuidParam(c, "item_id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.ActualizarItem(c.UserContext(), id, itemID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// EliminarItem godoc
// @Summary      Eliminar ítem
// @Tags         ordenes
// @Security     Bearer
// @Produce      json
// @Param        id       path  string  true  "ID de la orden"
// @Param        item_id  path  string  true  "ID del ítem"
// @Success      200      {object}  dto.OrdenResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/ordenes/{id}/items/{item_id} [delete]
func (h *OrdenHandler) EliminarItem(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	itemID, err := uuidParam(c, "item_id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.EliminarItem(c.UserContext(), id, itemID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DescargarPDF godoc
// @Summary      Nota de pedido en PDF
// @Tags         ordenes
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ordenes/{id}/pdf [get]
func (h *OrdenHandler) DescargarPDF(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	pdfBytes, filename, err := h.pdf.DescargarPDF(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdfBytes)
}
