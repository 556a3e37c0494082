package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemOrden línea de una orden. TotalItem = Cantidad * PrecioUnitario.
type ItemOrden struct {
	ID             string
	OrdenID        string
	NroItem        int
	ArticuloID     string
	Cantidad       int
	PrecioUnitario decimal.Decimal
	TotalItem      decimal.Decimal
	Estado         EstadoEntidad
	CreadoPor      string
	FechaCreacion  time.Time
}

// ItemOrdenDetalle ítem con los datos del artículo para presentación.
type ItemOrdenDetalle struct {
	ItemOrden
	ArticuloCodigo      string
	ArticuloDescripcion string
}
