package pedidos

import (
	"context"

	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// TxRunner ejecuta fn en una transacción con los repositorios de órdenes, ítems y precios.
// La escritura de un ítem y el recálculo del importe de su orden ocurren en la misma transacción.
type TxRunner interface {
	RunPedidos(ctx context.Context, fn func(
		ordenes repository.OrdenRepository,
		items repository.ItemOrdenRepository,
		precios repository.ListaPreciosRepository,
	) error) error
}

// OrdenPDFGenerator genera la nota de pedido en PDF.
type OrdenPDFGenerator interface {
	GenerateOrdenPDF(ctx context.Context, orden *entity.OrdenResumen, cliente *entity.Cliente, items []*entity.ItemOrdenDetalle) ([]byte, error)
}

// Metricas contadores de negocio de órdenes.
type Metricas interface {
	// OperacionOrden cuenta una operación confirmada (crear_orden, agregar_item, ...).
	OperacionOrden(op string)
	// PrecioNoConfigurado cuenta ítems rechazados por artículo sin lista de precios.
	PrecioNoConfigurado()
}

type nopMetricas struct{}

func (nopMetricas) OperacionOrden(string) {}
func (nopMetricas) PrecioNoConfigurado()  {}

// Config parámetros de negocio del módulo de pedidos.
type Config struct {
	// PrecioEstricto rechaza ítems sin precio cuando el artículo no tiene lista de precios.
	PrecioEstricto bool
}
