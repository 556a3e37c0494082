package pedido

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// CalcularImporte recalcula el importe de la orden desde cero como la suma de TotalItem
// de todos sus ítems, sin filtrar por estado.
func CalcularImporte(items []*entity.ItemOrden) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.TotalItem)
	}
	return total
}

// ImporteValido indica si el importe cabe en la columna de la orden.
func ImporteValido(importe decimal.Decimal) bool {
	return cabe(importe, DigitosTotal)
}

// SiguienteNroItem devuelve el consecutivo del próximo ítem (máximo actual + 1).
func SiguienteNroItem(items []*entity.ItemOrden) int {
	max := 0
	for _, it := range items {
		if it.NroItem > max {
			max = it.NroItem
		}
	}
	return max + 1
}
