package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// OrdenFiltro criterios de listado de órdenes.
type OrdenFiltro struct {
	ClienteID  string
	VendedorID string
	Estado     entity.EstadoOrden // 0 = todos
	Limit      int
	Offset     int
}

// OrdenRepository define el puerto de persistencia para cabeceras de orden.
type OrdenRepository interface {
	// Create persiste la orden y asigna NroPedido y FechaCreacion desde la base de datos.
	Create(ctx context.Context, o *entity.Orden) error
	GetByID(ctx context.Context, id string) (*entity.Orden, error)
	// GetForUpdate bloquea la fila de la orden hasta el fin de la transacción (SELECT ... FOR UPDATE).
	// Solo tiene efecto cuando el repositorio está atado a una transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.Orden, error)
	GetResumen(ctx context.Context, id string) (*entity.OrdenResumen, error)
	List(ctx context.Context, f OrdenFiltro) ([]*entity.OrdenResumen, error)
	Update(ctx context.Context, o *entity.Orden) error
	UpdateImporte(ctx context.Context, id string, importe decimal.Decimal) error
	// Delete elimina la orden; sus ítems se eliminan en cascada.
	Delete(ctx context.Context, id string) error
	ExistsByCliente(ctx context.Context, clienteID string) (bool, error)
	ExistsByVendedor(ctx context.Context, vendedorID string) (bool, error)
}

// ItemOrdenRepository define el puerto de persistencia para ítems de orden.
type ItemOrdenRepository interface {
	Create(ctx context.Context, it *entity.ItemOrden) error
	GetByID(ctx context.Context, id string) (*entity.ItemOrden, error)
	Update(ctx context.Context, it *entity.ItemOrden) error
	Delete(ctx context.Context, id string) error
	ListByOrden(ctx context.Context, ordenID string) ([]*entity.ItemOrden, error)
	ListDetalleByOrden(ctx context.Context, ordenID string) ([]*entity.ItemOrdenDetalle, error)
	ExistsByArticulo(ctx context.Context, articuloID string) (bool, error)
}
