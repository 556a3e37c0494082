package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Orden cabecera de una orden de compra de cliente.
// Importe es siempre la suma de TotalItem de sus ítems después de cualquier escritura de ítems.
type Orden struct {
	ID            string
	NroPedido     int64 // consecutivo asignado por la base de datos
	FechaPedido   time.Time
	ClienteID     string
	VendedorID    string
	Importe       decimal.Decimal
	Estado        EstadoOrden
	Notas         string
	CreadoPor     string
	FechaCreacion time.Time
}

// OrdenResumen orden con los nombres de cliente y vendedor resueltos (listados y PDF).
type OrdenResumen struct {
	Orden
	ClienteNombre  string
	VendedorNombre string
}
