package pedido_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/pedido"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// ResolverItem
// ──────────────────────────────────────────────────────────────────────────────

func TestResolverItem_PrecioExplicito(t *testing.T) {
	item := &entity.ItemOrden{Cantidad: 3, PrecioUnitario: dec("2.50")}
	lista := &entity.ListaPrecios{Precio1: dec("99.00")}

	require.NoError(t, pedido.ResolverItem(item, lista, true))
	assert.True(t, dec("2.50").Equal(item.PrecioUnitario), "un precio explícito no se reemplaza")
	assert.True(t, dec("7.50").Equal(item.TotalItem))
}

func TestResolverItem_TomaPrecio1SiNoHayPrecio(t *testing.T) {
	item := &entity.ItemOrden{Cantidad: 4}
	lista := &entity.ListaPrecios{Precio1: dec("10.00")}

	require.NoError(t, pedido.ResolverItem(item, lista, true))
	assert.True(t, dec("10.00").Equal(item.PrecioUnitario))
	assert.True(t, dec("40.00").Equal(item.TotalItem))
}

func TestResolverItem_SinListaModoEstricto(t *testing.T) {
	item := &entity.ItemOrden{Cantidad: 2}

	err := pedido.ResolverItem(item, nil, true)
	assert.True(t, errors.Is(err, domain.ErrPrecioNoConfigurado))
}

func TestResolverItem_SinListaModoHeredado(t *testing.T) {
	item := &entity.ItemOrden{Cantidad: 2}

	require.NoError(t, pedido.ResolverItem(item, nil, false))
	assert.True(t, item.PrecioUnitario.IsZero())
	assert.True(t, item.TotalItem.IsZero(), "sin lista el total queda en cero")
}

func TestResolverItem_CantidadInvalida(t *testing.T) {
	err := pedido.ResolverItem(&entity.ItemOrden{Cantidad: 0}, nil, false)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Has("cantidad", domain.CodeGt))
}

func TestResolverItem_Idempotente(t *testing.T) {
	item := &entity.ItemOrden{Cantidad: 5}
	lista := &entity.ListaPrecios{Precio1: dec("1.25")}
	require.NoError(t, pedido.ResolverItem(item, lista, true))
	primero := item.TotalItem

	// Re-guardar sin cambios: el precio ya resuelto se conserva y el total no cambia.
	lista.Precio1 = dec("3.00")
	require.NoError(t, pedido.ResolverItem(item, lista, true))
	assert.True(t, primero.Equal(item.TotalItem))
	assert.True(t, dec("1.25").Equal(item.PrecioUnitario))
}

func TestResolverItem_PrecioConMasDeDosDecimales(t *testing.T) {
	// 3 × 0.005 = 0.015; guardado como NUMERIC(12,2) rompería total = cantidad × precio.
	item := &entity.ItemOrden{Cantidad: 3, PrecioUnitario: dec("0.005")}
	err := pedido.ResolverItem(item, &entity.ListaPrecios{Precio1: dec("1.00")}, true)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Has("precio_unitario", domain.CodeDecimal))
}

func TestResolverItem_PrecioConCerosFinalesEsValido(t *testing.T) {
	item := &entity.ItemOrden{Cantidad: 2, PrecioUnitario: dec("4.500")}
	require.NoError(t, pedido.ResolverItem(item, nil, true))
	assert.True(t, dec("9.00").Equal(item.TotalItem))
}

func TestResolverItem_CeroNegativoTomaPrecio1(t *testing.T) {
	item := &entity.ItemOrden{Cantidad: 2, PrecioUnitario: dec("-0.00")}
	require.NoError(t, pedido.ResolverItem(item, &entity.ListaPrecios{Precio1: dec("3.10")}, true))
	assert.True(t, dec("3.10").Equal(item.PrecioUnitario))
	assert.True(t, dec("6.20").Equal(item.TotalItem))
}

func TestResolverItem_TotalFueraDeRango(t *testing.T) {
	item := &entity.ItemOrden{Cantidad: 1000000, PrecioUnitario: dec("9999999999.99")}
	err := pedido.ResolverItem(item, nil, true)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Has("cantidad", domain.CodeMax))
}

func TestImporteValido(t *testing.T) {
	assert.True(t, pedido.ImporteValido(dec("999999999999.99")))
	assert.False(t, pedido.ImporteValido(dec("1000000000000.00")))
	assert.False(t, pedido.ImporteValido(dec("1.001")))
}

// ──────────────────────────────────────────────────────────────────────────────
// CalcularImporte
// ──────────────────────────────────────────────────────────────────────────────

func TestCalcularImporte_RecalculaDesdeCero(t *testing.T) {
	var items []*entity.ItemOrden
	esperados := []string{"5.00", "12.50", "15.00"}
	totales := []string{"5.00", "7.50", "2.50"}

	for i, tot := range totales {
		items = append(items, &entity.ItemOrden{NroItem: i + 1, TotalItem: dec(tot)})
		assert.True(t, dec(esperados[i]).Equal(pedido.CalcularImporte(items)),
			"importe tras el ítem %d", i+1)
	}
}

func TestCalcularImporte_IncluyeItemsInactivos(t *testing.T) {
	items := []*entity.ItemOrden{
		{TotalItem: dec("4.00"), Estado: entity.EstadoActivo},
		{TotalItem: dec("6.00"), Estado: entity.EstadoInactivo},
	}
	assert.True(t, dec("10.00").Equal(pedido.CalcularImporte(items)))
}

func TestCalcularImporte_SinItems(t *testing.T) {
	assert.True(t, pedido.CalcularImporte(nil).IsZero())
}

func TestSiguienteNroItem(t *testing.T) {
	assert.Equal(t, 1, pedido.SiguienteNroItem(nil))
	items := []*entity.ItemOrden{{NroItem: 1}, {NroItem: 4}, {NroItem: 2}}
	assert.Equal(t, 5, pedido.SiguienteNroItem(items))
}
