package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

var _ repository.OrdenRepository = (*OrdenRepo)(nil)

// OrdenRepo cabeceras de orden sobre PostgreSQL (usable con pool o tx).
type OrdenRepo struct {
	q Querier
}

// NewOrdenRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrdenRepository(q Querier) *OrdenRepo {
	return &OrdenRepo{q: q}
}

const ordenCols = `o.id, o.nro_pedido, o.fecha_pedido, o.cliente_id, o.vendedor_id, o.importe, o.estado, o.notas, o.creado_por, o.fecha_creacion`

func ordenDest(o *entity.Orden) []any {
	return []any{&o.ID, &o.NroPedido, &o.FechaPedido, &o.ClienteID, &o.VendedorID, &o.Importe,
		&o.Estado, &o.Notas, &o.CreadoPor, &o.FechaCreacion}
}

const resumenSelect = `
	SELECT ` + ordenCols + `, c.nombres, v.nombre
	FROM ordenes_compra_cliente o
	JOIN clientes c ON c.id = o.cliente_id
	JOIN vendedores v ON v.id = o.vendedor_id`

func scanResumen(row pgx.Row) (*entity.OrdenResumen, error) {
	var res entity.OrdenResumen
	dest := append(ordenDest(&res.Orden), &res.ClienteNombre, &res.VendedorNombre)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &res, nil
}

// Create inserta la orden; nro_pedido (BIGSERIAL) y fecha_creacion los asigna la base de datos.
func (r *OrdenRepo) Create(ctx context.Context, o *entity.Orden) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO ordenes_compra_cliente (id, fecha_pedido, cliente_id, vendedor_id, importe, estado, notas, creado_por)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING nro_pedido, fecha_creacion`,
		o.ID, o.FechaPedido, o.ClienteID, o.VendedorID, o.Importe, o.Estado, o.Notas, o.CreadoPor,
	).Scan(&o.NroPedido, &o.FechaCreacion)
	if err != nil {
		return writeErr("insert orden", err)
	}
	return nil
}

func (r *OrdenRepo) GetByID(ctx context.Context, id string) (*entity.Orden, error) {
	return r.get(ctx, `SELECT `+ordenCols+` FROM ordenes_compra_cliente o WHERE o.id = $1`, id)
}

// GetForUpdate bloquea la fila hasta el fin de la transacción.
func (r *OrdenRepo) GetForUpdate(ctx context.Context, id string) (*entity.Orden, error) {
	return r.get(ctx, `SELECT `+ordenCols+` FROM ordenes_compra_cliente o WHERE o.id = $1 FOR UPDATE`, id)
}

func (r *OrdenRepo) get(ctx context.Context, sql, id string) (*entity.Orden, error) {
	var o entity.Orden
	if err := r.q.QueryRow(ctx, sql, id).Scan(ordenDest(&o)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get orden: %w", err)
	}
	return &o, nil
}

func (r *OrdenRepo) GetResumen(ctx context.Context, id string) (*entity.OrdenResumen, error) {
	res, err := scanResumen(r.q.QueryRow(ctx, resumenSelect+` WHERE o.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get orden resumen: %w", err)
	}
	return res, nil
}

// List más recientes primero (nro_pedido descendente).
func (r *OrdenRepo) List(ctx context.Context, f repository.OrdenFiltro) ([]*entity.OrdenResumen, error) {
	var w filtro
	if f.ClienteID != "" {
		w.add("o.cliente_id = ?", f.ClienteID)
	}
	if f.VendedorID != "" {
		w.add("o.vendedor_id = ?", f.VendedorID)
	}
	if f.Estado != 0 {
		w.add("o.estado = ?", f.Estado)
	}
	where := w.where()
	pag := w.page(f.Limit, f.Offset)
	rows, err := r.q.Query(ctx, resumenSelect+where+` ORDER BY o.nro_pedido DESC`+pag, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list ordenes: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrdenResumen
	for rows.Next() {
		res, err := scanResumen(rows)
		if err != nil {
			return nil, fmt.Errorf("scan orden: %w", err)
		}
		list = append(list, res)
	}
	return list, rows.Err()
}

// Update actualiza la cabecera. El importe solo cambia vía UpdateImporte.
func (r *OrdenRepo) Update(ctx context.Context, o *entity.Orden) error {
	_, err := r.q.Exec(ctx,
		`UPDATE ordenes_compra_cliente SET fecha_pedido = $2, vendedor_id = $3, estado = $4, notas = $5 WHERE id = $1`,
		o.ID, o.FechaPedido, o.VendedorID, o.Estado, o.Notas,
	)
	if err != nil {
		return writeErr("update orden", err)
	}
	return nil
}

func (r *OrdenRepo) UpdateImporte(ctx context.Context, id string, importe decimal.Decimal) error {
	if _, err := r.q.Exec(ctx, `UPDATE ordenes_compra_cliente SET importe = $2 WHERE id = $1`, id, importe); err != nil {
		return fmt.Errorf("update importe: %w", err)
	}
	return nil
}

// Delete elimina la orden; ON DELETE CASCADE elimina sus ítems.
func (r *OrdenRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM ordenes_compra_cliente WHERE id = $1`, id); err != nil {
		return deleteErr("delete orden", err)
	}
	return nil
}

func (r *OrdenRepo) ExistsByCliente(ctx context.Context, clienteID string) (bool, error) {
	return exists(ctx, r.q, `SELECT EXISTS (SELECT 1 FROM ordenes_compra_cliente WHERE cliente_id = $1)`, clienteID)
}

func (r *OrdenRepo) ExistsByVendedor(ctx context.Context, vendedorID string) (bool, error) {
	return exists(ctx, r.q, `SELECT EXISTS (SELECT 1 FROM ordenes_compra_cliente WHERE vendedor_id = $1)`, vendedorID)
}
