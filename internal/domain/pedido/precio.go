// Package pedido contiene las reglas puras de cálculo de órdenes: precio del ítem y total de la orden.
package pedido

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// Límites de las columnas NUMERIC de precios (12, 2) y de totales (14, 2).
const (
	DigitosPrecio = 12
	DigitosTotal  = 14
	Decimales     = 2
)

// cabe indica si d se guarda en NUMERIC(digitos, Decimales) sin redondeo.
func cabe(d decimal.Decimal, digitos int32) bool {
	return d.Equal(d.Truncate(Decimales)) && d.Abs().LessThan(decimal.New(1, digitos-Decimales))
}

// ResolverItem fija PrecioUnitario y TotalItem del ítem antes de persistirlo.
//
// TotalItem = Cantidad * PrecioUnitario. Si PrecioUnitario es cero (no especificado) se toma
// Precio1 de la lista del artículo. Sin lista de precios: en modo estricto devuelve
// ErrPrecioNoConfigurado; si no, el precio y el total quedan en cero. Un precio con más de
// dos decimales o un total que no cabe en su columna son errores de campo.
func ResolverItem(item *entity.ItemOrden, lista *entity.ListaPrecios, estricto bool) error {
	if item.Cantidad <= 0 {
		return domain.FieldErr("cantidad", domain.CodeGt, "La cantidad debe ser mayor que 0.")
	}
	if item.PrecioUnitario.IsNegative() {
		return domain.FieldErr("precio_unitario", domain.CodeGte, "El precio unitario no puede ser negativo.")
	}
	if !cabe(item.PrecioUnitario, DigitosPrecio) {
		return domain.FieldErr("precio_unitario", domain.CodeDecimal,
			"Debe tener como máximo 10 dígitos enteros y 2 decimales.")
	}

	cantidad := decimal.NewFromInt(int64(item.Cantidad))
	item.TotalItem = cantidad.Mul(item.PrecioUnitario)

	if item.PrecioUnitario.IsZero() {
		if lista == nil {
			if estricto {
				return domain.ErrPrecioNoConfigurado
			}
			return nil
		}
		item.PrecioUnitario = lista.Precio1
		item.TotalItem = cantidad.Mul(item.PrecioUnitario)
	}
	if !cabe(item.TotalItem, DigitosTotal) {
		return domain.FieldErr("cantidad", domain.CodeMax, "El total del ítem excede el máximo permitido.")
	}
	return nil
}
