package entity

import "github.com/shopspring/decimal"

// ListaPrecios precios escalonados de un artículo (relación 1:1, clave = ArticuloID).
type ListaPrecios struct {
	ArticuloID   string
	Precio1      decimal.Decimal
	Precio2      decimal.Decimal
	Precio3      decimal.Decimal
	Precio4      decimal.Decimal
	PrecioCompra decimal.Decimal
	PrecioCosto  decimal.Decimal
}
