package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/pos-api/internal/application/catalogo"
	"github.com/jhoicas/pos-api/internal/application/pedidos"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

var (
	_ catalogo.TxRunner = (*TxRunner)(nil)
	_ pedidos.TxRunner  = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// run inicia una transacción, ejecuta fn con la tx y hace Commit o Rollback.
func (r *TxRunner) run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCatalogo alta de artículo y su lista de precios en una sola transacción.
func (r *TxRunner) RunCatalogo(ctx context.Context, fn func(
	articulos repository.ArticuloRepository,
	precios repository.ListaPreciosRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewArticuloRepository(tx), NewListaPreciosRepository(tx))
	})
}

// RunPedidos escritura de ítems y recálculo del importe. El GetForUpdate de la orden
// toma el bloqueo de fila que serializa escrituras concurrentes sobre la misma orden.
func (r *TxRunner) RunPedidos(ctx context.Context, fn func(
	ordenes repository.OrdenRepository,
	items repository.ItemOrdenRepository,
	precios repository.ListaPreciosRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewOrdenRepository(tx), NewItemOrdenRepository(tx), NewListaPreciosRepository(tx))
	})
}
