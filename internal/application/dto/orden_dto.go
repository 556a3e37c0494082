package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemRequest entrada para agregar un ítem. precio_unitario omitido (o 0) toma el precio_1 del artículo.
type ItemRequest struct {
	ArticuloID     string          `json:"articulo_id" validate:"required,uuid"`
	Cantidad       int             `json:"cantidad" validate:"gt=0,max=1000000"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario" validate:"gte=0,decimal=12 2"`
}

// UpdateItemRequest actualización parcial de un ítem.
type UpdateItemRequest struct {
	Cantidad       *int             `json:"cantidad" validate:"omitempty,gt=0,max=1000000"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario" validate:"omitempty,gte=0,decimal=12 2"`
	Estado         *int             `json:"estado" validate:"omitempty,oneof=0 1"`
}

// CreateOrdenRequest entrada para crear una orden, opcionalmente con sus ítems iniciales.
type CreateOrdenRequest struct {
	ClienteID   string        `json:"cliente_id" validate:"required,uuid"`
	VendedorID  string        `json:"vendedor_id" validate:"required,uuid"`
	FechaPedido *time.Time    `json:"fecha_pedido"`
	Notas       string        `json:"notas"`
	Items       []ItemRequest `json:"items" validate:"dive"`
}

// UpdateOrdenRequest actualización parcial de la cabecera de una orden.
type UpdateOrdenRequest struct {
	VendedorID *string `json:"vendedor_id" validate:"omitempty,uuid"`
	Estado     *int    `json:"estado" validate:"omitempty,min=1,max=5"`
	Notas      *string `json:"notas"`
}

// ItemResponse salida de un ítem de orden.
type ItemResponse struct {
	ItemID              string          `json:"item_id"`
	NroItem             int             `json:"nro_item"`
	ArticuloID          string          `json:"articulo_id"`
	ArticuloDescripcion string          `json:"articulo_descripcion"`
	Cantidad            int             `json:"cantidad"`
	PrecioUnitario      decimal.Decimal `json:"precio_unitario"`
	TotalItem           decimal.Decimal `json:"total_item"`
	Estado              int             `json:"estado"`
}

// OrdenResponse salida de una orden con sus ítems.
type OrdenResponse struct {
	PedidoID      string          `json:"pedido_id"`
	NroPedido     int64           `json:"nro_pedido"`
	FechaPedido   time.Time       `json:"fecha_pedido"`
	ClienteID     string          `json:"cliente_id"`
	ClienteNombre string          `json:"cliente_nombre"`
	VendedorID    string          `json:"vendedor_id"`
	Importe       decimal.Decimal `json:"importe"`
	Estado        int             `json:"estado"`
	EstadoDisplay string          `json:"estado_display"`
	Notas         string          `json:"notas"`
	CreadoPor     string          `json:"creado_por"`
	FechaCreacion time.Time       `json:"fecha_creacion"`
	Items         []ItemResponse  `json:"items"`
}

// OrdenListItem fila del listado de órdenes.
type OrdenListItem struct {
	PedidoID       string          `json:"pedido_id"`
	NroPedido      int64           `json:"nro_pedido"`
	FechaPedido    time.Time       `json:"fecha_pedido"`
	ClienteNombre  string          `json:"cliente_nombre"`
	VendedorNombre string          `json:"vendedor_nombre"`
	Importe        decimal.Decimal `json:"importe"`
	Estado         int             `json:"estado"`
	EstadoDisplay  string          `json:"estado_display"`
}

// OrdenListResponse lista paginada de órdenes.
type OrdenListResponse struct {
	Items []OrdenListItem `json:"items"`
	Page  PageResponse    `json:"page"`
}
