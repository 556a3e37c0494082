package pedidos

import (
	"context"
	"fmt"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// PDFUseCase genera la nota de pedido en PDF de una orden.
type PDFUseCase struct {
	ordenes   repository.OrdenRepository
	items     repository.ItemOrdenRepository
	clientes  repository.ClienteRepository
	generator OrdenPDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	ordenes repository.OrdenRepository,
	items repository.ItemOrdenRepository,
	clientes repository.ClienteRepository,
	generator OrdenPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{ordenes: ordenes, items: items, clientes: clientes, generator: generator}
}

// DescargarPDF devuelve (pdfBytes, filename, nil), o domain.ErrNotFound si la orden no existe.
func (uc *PDFUseCase) DescargarPDF(ctx context.Context, ordenID string) (pdfBytes []byte, filename string, err error) {
	// ── 1. Cargar orden ───────────────────────────────────────────────────────
	o, err := uc.ordenes.GetResumen(ctx, ordenID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener orden: %w", err)
	}
	if o == nil {
		return nil, "", domain.ErrNotFound
	}

	// ── 2. Cliente e ítems ────────────────────────────────────────────────────
	cliente, err := uc.clientes.GetByID(ctx, o.ClienteID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	items, err := uc.items.ListDetalleByOrden(ctx, ordenID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener ítems: %w", err)
	}

	// ── 3. Generar PDF ────────────────────────────────────────────────────────
	pdfBytes, err = uc.generator.GenerateOrdenPDF(ctx, o, cliente, items)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("pedido_%06d.pdf", o.NroPedido), nil
}
