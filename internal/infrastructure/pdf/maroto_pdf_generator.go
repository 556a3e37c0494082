// Package pdf genera la nota de pedido (orden de compra de cliente) en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio  │  N° Pedido + Fecha + Estado  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + identificación + contacto                │
//	│  VENDEDOR                                                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Código | Descripción | Cant | P.Unit | Total    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  IMPORTE                                                    │
//	│  NOTAS + código de barras del N° de pedido                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/application/pedidos"
	"github.com/jhoicas/pos-api/internal/domain/entity"
)

var _ pedidos.OrdenPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa pedidos.OrdenPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	negocio string
}

// NewMarotoPDFGenerator construye el generador; negocio es el nombre impreso en el encabezado.
func NewMarotoPDFGenerator(negocio string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{negocio: negocio}
}

// GenerateOrdenPDF genera la nota de pedido y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateOrdenPDF(
	_ context.Context,
	orden *entity.OrdenResumen,
	cliente *entity.Cliente,
	items []*entity.ItemOrdenDetalle,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Nota de pedido "+nroPedido(orden.NroPedido), true).
		WithAuthor(g.negocio, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.negocio, orden))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clienteRow(orden, cliente))
	m.AddRows(vendedorRow(orden))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableItemRows(items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(importeRow(orden))
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRows(orden)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: negocio (izq) y N° de pedido + fecha + estado (der).
func headerRow(negocio string, o *entity.OrdenResumen) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(negocio, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("NOTA DE PEDIDO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+nroPedido(o.NroPedido), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6,
			}),
			text.New("Fecha: "+o.FechaPedido.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
			text.New("Estado: "+o.Estado.Display(), props.Text{
				Size: 8, Align: align.Right, Top: 17, Color: colorGray,
			}),
		),
	)
}

// clienteRow: datos del comprador. c puede ser nil.
func clienteRow(o *entity.OrdenResumen, c *entity.Cliente) core.Row {
	detalle := "—"
	if c != nil {
		detalle = fmt.Sprintf("Identificación: %s   |   Tel: %s   |   Email: %s   |   Dirección: %s",
			nonEmpty(c.NroIdentificacion, "—"),
			nonEmpty(c.NroMovil, "—"),
			nonEmpty(c.CorreoElectronico, "—"),
			nonEmpty(c.Direccion, "—"),
		)
	}
	return row.New(16).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(o.ClienteNombre, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(detalle, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func vendedorRow(o *entity.OrdenResumen) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New("Vendedor: "+nonEmpty(o.VendedorNombre, "—"), props.Text{Size: 8, Top: 2}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de ítems.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Código", 2, align.Left),
		h("Descripción", 4, align.Left),
		h("Cant.", 1, align.Center),
		h("Precio Unit.", 2, align.Right),
		h("Total", 2, align.Right),
	)
}

// tableItemRows: una fila por ítem, en orden de nro_item.
func tableItemRows(items []*entity.ItemOrdenDetalle) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprint(it.NroItem), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(it.ArticuloCodigo, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(it.ArticuloDescripcion, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(fmt.Sprint(it.Cantidad), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New("$"+formatMoney(it.PrecioUnitario), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New("$"+formatMoney(it.TotalItem), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// importeRow: total de la orden alineado a la derecha.
func importeRow(o *entity.OrdenResumen) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("IMPORTE:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New("$"+formatMoney(o.Importe), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// footerRows: notas y código de barras con el N° de pedido.
func footerRows(o *entity.OrdenResumen) []core.Row {
	var rows []core.Row
	if o.Notas != "" {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("NOTAS", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		)))
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New(o.Notas, props.Text{Size: 8, Color: colorGray, Top: 1}),
		)))
	}
	rows = append(rows, row.New(18).Add(
		col.New(4).Add(code.NewBar(nroPedido(o.NroPedido), props.Barcode{Percent: 90})),
		col.New(8),
	))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nroPedido(n int64) string {
	return fmt.Sprintf("%06d", n)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney formatea con puntos de miles y coma decimal (dos decimales).
// Ej: 25000 → "25.000,00", 1234.5 → "1.234,50"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	entero, dec, _ := strings.Cut(s, ".")

	n := len(entero)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(entero) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	out := string(buf) + "," + dec
	if neg {
		return "-" + out
	}
	return out
}
