package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

var _ repository.ListaPreciosRepository = (*ListaPreciosRepo)(nil)

// ListaPreciosRepo lista de precios por artículo (1:1).
type ListaPreciosRepo struct {
	q Querier
}

// NewListaPreciosRepository construye el adaptador. Pasar pool o tx (Querier).
func NewListaPreciosRepository(q Querier) *ListaPreciosRepo {
	return &ListaPreciosRepo{q: q}
}

const listaCols = `articulo_id, precio_1, precio_2, precio_3, precio_4, precio_compra, precio_costo`

func listaArgs(lp *entity.ListaPrecios) []any {
	return []any{lp.ArticuloID, lp.Precio1, lp.Precio2, lp.Precio3, lp.Precio4, lp.PrecioCompra, lp.PrecioCosto}
}

func (r *ListaPreciosRepo) Create(ctx context.Context, lp *entity.ListaPrecios) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO lista_precios (`+listaCols+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		listaArgs(lp)...,
	)
	if err != nil {
		return writeErr("insert lista_precios", err)
	}
	return nil
}

func (r *ListaPreciosRepo) GetByArticulo(ctx context.Context, articuloID string) (*entity.ListaPrecios, error) {
	var lp entity.ListaPrecios
	err := r.q.QueryRow(ctx, `SELECT `+listaCols+` FROM lista_precios WHERE articulo_id = $1`, articuloID).Scan(
		&lp.ArticuloID, &lp.Precio1, &lp.Precio2, &lp.Precio3, &lp.Precio4, &lp.PrecioCompra, &lp.PrecioCosto,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lista_precios: %w", err)
	}
	return &lp, nil
}

func (r *ListaPreciosRepo) Upsert(ctx context.Context, lp *entity.ListaPrecios) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO lista_precios (`+listaCols+`) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (articulo_id) DO UPDATE SET
			precio_1 = EXCLUDED.precio_1, precio_2 = EXCLUDED.precio_2,
			precio_3 = EXCLUDED.precio_3, precio_4 = EXCLUDED.precio_4,
			precio_compra = EXCLUDED.precio_compra, precio_costo = EXCLUDED.precio_costo`,
		listaArgs(lp)...,
	)
	if err != nil {
		return writeErr("upsert lista_precios", err)
	}
	return nil
}
