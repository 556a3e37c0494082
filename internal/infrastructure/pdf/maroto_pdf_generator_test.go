package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	casos := map[string]string{
		"0":        "0,00",
		"999":      "999,00",
		"25000":    "25.000,00",
		"1234.5":   "1.234,50",
		"1000000":  "1.000.000,00",
		"-4500.25": "-4.500,25",
	}
	for in, want := range casos {
		assert.Equal(t, want, formatMoney(decimal.RequireFromString(in)), in)
	}
}

func TestGenerateOrdenPDF(t *testing.T) {
	o := &entity.OrdenResumen{
		Orden: entity.Orden{
			NroPedido:   42,
			FechaPedido: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Importe:     decimal.RequireFromString("15.00"),
			Estado:      entity.OrdenPendiente,
			Notas:       "Entregar en bodega",
		},
		ClienteNombre:  "María Pérez",
		VendedorNombre: "Ana",
	}
	items := []*entity.ItemOrdenDetalle{{
		ItemOrden: entity.ItemOrden{
			NroItem: 1, Cantidad: 2,
			PrecioUnitario: decimal.RequireFromString("7.50"),
			TotalItem:      decimal.RequireFromString("15.00"),
		},
		ArticuloCodigo:      "A001",
		ArticuloDescripcion: "Arroz 1kg",
	}}

	g := NewMarotoPDFGenerator("Distribuidora POS")
	b, err := g.GenerateOrdenPDF(context.Background(), o, &entity.Cliente{NroIdentificacion: "1020304050"}, items)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))

	// sin datos del cliente el documento se genera igual
	_, err = g.GenerateOrdenPDF(context.Background(), o, nil, nil)
	assert.NoError(t, err)
}
