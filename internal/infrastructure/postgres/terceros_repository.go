package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

var (
	_ repository.TipoIdentificacionRepository = (*TipoIdentificacionRepo)(nil)
	_ repository.CanalRepository              = (*CanalRepo)(nil)
	_ repository.VendedorRepository           = (*VendedorRepo)(nil)
)

// TipoIdentificacionRepo tipos de identificación sobre PostgreSQL.
type TipoIdentificacionRepo struct {
	q Querier
}

// NewTipoIdentificacionRepository construye el adaptador.
func NewTipoIdentificacionRepository(q Querier) *TipoIdentificacionRepo {
	return &TipoIdentificacionRepo{q: q}
}

func (r *TipoIdentificacionRepo) Create(ctx context.Context, t *entity.TipoIdentificacion) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO tipos_identificacion (id, nombre, descripcion, estado) VALUES ($1, $2, $3, $4)`,
		t.ID, t.Nombre, t.Descripcion, t.Estado,
	)
	if err != nil {
		return writeErr("insert tipo_identificacion", err)
	}
	return nil
}

func (r *TipoIdentificacionRepo) GetByID(ctx context.Context, id string) (*entity.TipoIdentificacion, error) {
	var t entity.TipoIdentificacion
	err := r.q.QueryRow(ctx,
		`SELECT id, nombre, descripcion, estado FROM tipos_identificacion WHERE id = $1`, id,
	).Scan(&t.ID, &t.Nombre, &t.Descripcion, &t.Estado)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tipo_identificacion: %w", err)
	}
	return &t, nil
}

func (r *TipoIdentificacionRepo) List(ctx context.Context) ([]*entity.TipoIdentificacion, error) {
	rows, err := r.q.Query(ctx, `SELECT id, nombre, descripcion, estado FROM tipos_identificacion ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list tipos_identificacion: %w", err)
	}
	defer rows.Close()
	var list []*entity.TipoIdentificacion
	for rows.Next() {
		var t entity.TipoIdentificacion
		if err := rows.Scan(&t.ID, &t.Nombre, &t.Descripcion, &t.Estado); err != nil {
			return nil, fmt.Errorf("scan tipo_identificacion: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

func (r *TipoIdentificacionRepo) Update(ctx context.Context, t *entity.TipoIdentificacion) error {
	_, err := r.q.Exec(ctx,
		`UPDATE tipos_identificacion SET nombre = $2, descripcion = $3, estado = $4 WHERE id = $1`,
		t.ID, t.Nombre, t.Descripcion, t.Estado,
	)
	if err != nil {
		return writeErr("update tipo_identificacion", err)
	}
	return nil
}

func (r *TipoIdentificacionRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM tipos_identificacion WHERE id = $1`, id); err != nil {
		return deleteErr("delete tipo_identificacion", err)
	}
	return nil
}

// CanalRepo canales de cliente sobre PostgreSQL. El ID lo define el usuario (hasta 3 caracteres).
type CanalRepo struct {
	q Querier
}

// NewCanalRepository construye el adaptador.
func NewCanalRepository(q Querier) *CanalRepo {
	return &CanalRepo{q: q}
}

func (r *CanalRepo) Create(ctx context.Context, c *entity.CanalCliente) error {
	_, err := r.q.Exec(ctx, `INSERT INTO canal_cliente (id, nombre) VALUES ($1, $2)`, c.ID, c.Nombre)
	if err != nil {
		return writeErr("insert canal", err)
	}
	return nil
}

func (r *CanalRepo) GetByID(ctx context.Context, id string) (*entity.CanalCliente, error) {
	var c entity.CanalCliente
	err := r.q.QueryRow(ctx, `SELECT id, nombre FROM canal_cliente WHERE id = $1`, id).Scan(&c.ID, &c.Nombre)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get canal: %w", err)
	}
	return &c, nil
}

func (r *CanalRepo) List(ctx context.Context) ([]*entity.CanalCliente, error) {
	rows, err := r.q.Query(ctx, `SELECT id, nombre FROM canal_cliente ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list canales: %w", err)
	}
	defer rows.Close()
	var list []*entity.CanalCliente
	for rows.Next() {
		var c entity.CanalCliente
		if err := rows.Scan(&c.ID, &c.Nombre); err != nil {
			return nil, fmt.Errorf("scan canal: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *CanalRepo) Update(ctx context.Context, c *entity.CanalCliente) error {
	if _, err := r.q.Exec(ctx, `UPDATE canal_cliente SET nombre = $2 WHERE id = $1`, c.ID, c.Nombre); err != nil {
		return writeErr("update canal", err)
	}
	return nil
}

func (r *CanalRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM canal_cliente WHERE id = $1`, id); err != nil {
		return deleteErr("delete canal", err)
	}
	return nil
}

// VendedorRepo vendedores sobre PostgreSQL.
type VendedorRepo struct {
	q Querier
}

// NewVendedorRepository construye el adaptador.
func NewVendedorRepository(q Querier) *VendedorRepo {
	return &VendedorRepo{q: q}
}

const vendedorCols = `id, nombre, correo, estado`

func scanVendedor(row pgx.Row) (*entity.Vendedor, error) {
	var v entity.Vendedor
	if err := row.Scan(&v.ID, &v.Nombre, &v.Correo, &v.Estado); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VendedorRepo) Create(ctx context.Context, v *entity.Vendedor) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO vendedores (`+vendedorCols+`) VALUES ($1, $2, $3, $4)`,
		v.ID, v.Nombre, v.Correo, v.Estado,
	)
	if err != nil {
		return writeErr("insert vendedor", err)
	}
	return nil
}

func (r *VendedorRepo) GetByID(ctx context.Context, id string) (*entity.Vendedor, error) {
	return r.getBy(ctx, `id = $1`, id)
}

// GetByCorreo busca sin distinguir mayúsculas.
func (r *VendedorRepo) GetByCorreo(ctx context.Context, correo string) (*entity.Vendedor, error) {
	return r.getBy(ctx, `lower(correo) = lower($1)`, correo)
}

func (r *VendedorRepo) getBy(ctx context.Context, cond, val string) (*entity.Vendedor, error) {
	v, err := scanVendedor(r.q.QueryRow(ctx, `SELECT `+vendedorCols+` FROM vendedores WHERE `+cond, val))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendedor: %w", err)
	}
	return v, nil
}

func (r *VendedorRepo) List(ctx context.Context, limit, offset int) ([]*entity.Vendedor, error) {
	var f filtro
	pag := f.page(limit, offset)
	rows, err := r.q.Query(ctx, `SELECT `+vendedorCols+` FROM vendedores ORDER BY nombre`+pag, f.args...)
	if err != nil {
		return nil, fmt.Errorf("list vendedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vendedor
	for rows.Next() {
		v, err := scanVendedor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vendedor: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

func (r *VendedorRepo) Update(ctx context.Context, v *entity.Vendedor) error {
	_, err := r.q.Exec(ctx,
		`UPDATE vendedores SET nombre = $2, correo = $3, estado = $4 WHERE id = $1`,
		v.ID, v.Nombre, v.Correo, v.Estado,
	)
	if err != nil {
		return writeErr("update vendedor", err)
	}
	return nil
}

func (r *VendedorRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM vendedores WHERE id = $1`, id); err != nil {
		return deleteErr("delete vendedor", err)
	}
	return nil
}
