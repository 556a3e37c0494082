package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación del puerto ClienteRepository sobre PostgreSQL.
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

const clienteCols = `id, tipo_identificacion_id, nro_identificacion, nombres, direccion, correo_electronico, nro_movil, canal_id, estado`

func scanCliente(row pgx.Row) (*entity.Cliente, error) {
	var c entity.Cliente
	err := row.Scan(&c.ID, &c.TipoIdentificacionID, &c.NroIdentificacion, &c.Nombres, &c.Direccion,
		&c.CorreoElectronico, &c.NroMovil, &c.CanalID, &c.Estado)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClienteRepo) Create(ctx context.Context, c *entity.Cliente) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO clientes (`+clienteCols+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.ID, c.TipoIdentificacionID, c.NroIdentificacion, c.Nombres, c.Direccion,
		c.CorreoElectronico, c.NroMovil, c.CanalID, c.Estado,
	)
	if err != nil {
		return writeErr("insert cliente", err)
	}
	return nil
}

func (r *ClienteRepo) GetByID(ctx context.Context, id string) (*entity.Cliente, error) {
	c, err := scanCliente(r.q.QueryRow(ctx, `SELECT `+clienteCols+` FROM clientes WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return c, nil
}

func (r *ClienteRepo) List(ctx context.Context, f repository.ClienteFiltro) ([]*entity.Cliente, error) {
	var w filtro
	if f.CanalID != "" {
		w.add("canal_id = ?", f.CanalID)
	}
	if f.Buscar != "" {
		w.add("(nombres ILIKE ? OR nro_identificacion ILIKE ?)", "%"+f.Buscar+"%")
	}
	where := w.where()
	pag := w.page(f.Limit, f.Offset)
	rows, err := r.q.Query(ctx, `SELECT `+clienteCols+` FROM clientes`+where+` ORDER BY nro_identificacion`+pag, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		c, err := scanCliente(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *ClienteRepo) Update(ctx context.Context, c *entity.Cliente) error {
	_, err := r.q.Exec(ctx, `
		UPDATE clientes SET tipo_identificacion_id = $2, nro_identificacion = $3, nombres = $4, direccion = $5,
			correo_electronico = $6, nro_movil = $7, canal_id = $8, estado = $9
		WHERE id = $1`,
		c.ID, c.TipoIdentificacionID, c.NroIdentificacion, c.Nombres, c.Direccion,
		c.CorreoElectronico, c.NroMovil, c.CanalID, c.Estado,
	)
	if err != nil {
		return writeErr("update cliente", err)
	}
	return nil
}

func (r *ClienteRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM clientes WHERE id = $1`, id); err != nil {
		return deleteErr("delete cliente", err)
	}
	return nil
}

func (r *ClienteRepo) ExistsByTipoIdentificacion(ctx context.Context, tipoID string) (bool, error) {
	return exists(ctx, r.q, `SELECT EXISTS (SELECT 1 FROM clientes WHERE tipo_identificacion_id = $1)`, tipoID)
}

func (r *ClienteRepo) ExistsByCanal(ctx context.Context, canalID string) (bool, error) {
	return exists(ctx, r.q, `SELECT EXISTS (SELECT 1 FROM clientes WHERE canal_id = $1)`, canalID)
}
