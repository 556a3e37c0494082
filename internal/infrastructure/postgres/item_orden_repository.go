package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

var _ repository.ItemOrdenRepository = (*ItemOrdenRepo)(nil)

// ItemOrdenRepo ítems de orden sobre PostgreSQL (usable con pool o tx).
type ItemOrdenRepo struct {
	q Querier
}

// NewItemOrdenRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemOrdenRepository(q Querier) *ItemOrdenRepo {
	return &ItemOrdenRepo{q: q}
}

const itemCols = `i.id, i.orden_id, i.nro_item, i.articulo_id, i.cantidad, i.precio_unitario, i.total_item, i.estado, i.creado_por, i.fecha_creacion`

func itemDest(it *entity.ItemOrden) []any {
	return []any{&it.ID, &it.OrdenID, &it.NroItem, &it.ArticuloID, &it.Cantidad, &it.PrecioUnitario,
		&it.TotalItem, &it.Estado, &it.CreadoPor, &it.FechaCreacion}
}

func (r *ItemOrdenRepo) Create(ctx context.Context, it *entity.ItemOrden) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO items_ordenes_compra_cliente
			(id, orden_id, nro_item, articulo_id, cantidad, precio_unitario, total_item, estado, creado_por)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING fecha_creacion`,
		it.ID, it.OrdenID, it.NroItem, it.ArticuloID, it.Cantidad, it.PrecioUnitario, it.TotalItem, it.Estado, it.CreadoPor,
	).Scan(&it.FechaCreacion)
	if err != nil {
		return writeErr("insert item", err)
	}
	return nil
}

func (r *ItemOrdenRepo) GetByID(ctx context.Context, id string) (*entity.ItemOrden, error) {
	var it entity.ItemOrden
	err := r.q.QueryRow(ctx, `SELECT `+itemCols+` FROM items_ordenes_compra_cliente i WHERE i.id = $1`, id).Scan(itemDest(&it)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

func (r *ItemOrdenRepo) Update(ctx context.Context, it *entity.ItemOrden) error {
	_, err := r.q.Exec(ctx, `
		UPDATE items_ordenes_compra_cliente
		SET cantidad = $2, precio_unitario = $3, total_item = $4, estado = $5
		WHERE id = $1`,
		it.ID, it.Cantidad, it.PrecioUnitario, it.TotalItem, it.Estado,
	)
	if err != nil {
		return writeErr("update item", err)
	}
	return nil
}

func (r *ItemOrdenRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM items_ordenes_compra_cliente WHERE id = $1`, id); err != nil {
		return deleteErr("delete item", err)
	}
	return nil
}

// ListByOrden ítems de la orden por nro_item.
func (r *ItemOrdenRepo) ListByOrden(ctx context.Context, ordenID string) ([]*entity.ItemOrden, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+itemCols+` FROM items_ordenes_compra_cliente i WHERE i.orden_id = $1 ORDER BY i.nro_item`, ordenID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.ItemOrden
	for rows.Next() {
		var it entity.ItemOrden
		if err := rows.Scan(itemDest(&it)...); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// ListDetalleByOrden ítems con código y descripción del artículo.
func (r *ItemOrdenRepo) ListDetalleByOrden(ctx context.Context, ordenID string) ([]*entity.ItemOrdenDetalle, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+itemCols+`, a.codigo, a.descripcion
		FROM items_ordenes_compra_cliente i
		JOIN articulos a ON a.id = i.articulo_id
		WHERE i.orden_id = $1
		ORDER BY i.nro_item`, ordenID)
	if err != nil {
		return nil, fmt.Errorf("list items detalle: %w", err)
	}
	defer rows.Close()
	var list []*entity.ItemOrdenDetalle
	for rows.Next() {
		var d entity.ItemOrdenDetalle
		dest := append(itemDest(&d.ItemOrden), &d.ArticuloCodigo, &d.ArticuloDescripcion)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan item detalle: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

func (r *ItemOrdenRepo) ExistsByArticulo(ctx context.Context, articuloID string) (bool, error) {
	return exists(ctx, r.q, `SELECT EXISTS (SELECT 1 FROM items_ordenes_compra_cliente WHERE articulo_id = $1)`, articuloID)
}
