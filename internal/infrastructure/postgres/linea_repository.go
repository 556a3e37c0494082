package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

var _ repository.LineaRepository = (*LineaRepo)(nil)

// LineaRepo implementación del puerto LineaRepository sobre PostgreSQL.
type LineaRepo struct {
	q Querier
}

// NewLineaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLineaRepository(q Querier) *LineaRepo {
	return &LineaRepo{q: q}
}

const lineaCols = `id, codigo, grupo_id, nombre, estado`

func scanLinea(row pgx.Row) (*entity.LineaArticulo, error) {
	var l entity.LineaArticulo
	if err := row.Scan(&l.ID, &l.Codigo, &l.GrupoID, &l.Nombre, &l.Estado); err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LineaRepo) Create(ctx context.Context, l *entity.LineaArticulo) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO lineas_articulos (`+lineaCols+`) VALUES ($1, $2, $3, $4, $5)`,
		l.ID, l.Codigo, l.GrupoID, l.Nombre, l.Estado,
	)
	if err != nil {
		return writeErr("insert linea", err)
	}
	return nil
}

func (r *LineaRepo) GetByID(ctx context.Context, id string) (*entity.LineaArticulo, error) {
	l, err := scanLinea(r.q.QueryRow(ctx, `SELECT `+lineaCols+` FROM lineas_articulos WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get linea: %w", err)
	}
	return l, nil
}

func (r *LineaRepo) List(ctx context.Context, grupoID string, limit, offset int) ([]*entity.LineaArticulo, error) {
	var f filtro
	if grupoID != "" {
		f.add("grupo_id = ?", grupoID)
	}
	where := f.where()
	pag := f.page(limit, offset)
	rows, err := r.q.Query(ctx, `SELECT `+lineaCols+` FROM lineas_articulos`+where+` ORDER BY codigo`+pag, f.args...)
	if err != nil {
		return nil, fmt.Errorf("list lineas: %w", err)
	}
	defer rows.Close()
	var list []*entity.LineaArticulo
	for rows.Next() {
		l, err := scanLinea(rows)
		if err != nil {
			return nil, fmt.Errorf("scan linea: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

func (r *LineaRepo) Update(ctx context.Context, l *entity.LineaArticulo) error {
	_, err := r.q.Exec(ctx,
		`UPDATE lineas_articulos SET codigo = $2, grupo_id = $3, nombre = $4, estado = $5 WHERE id = $1`,
		l.ID, l.Codigo, l.GrupoID, l.Nombre, l.Estado,
	)
	if err != nil {
		return writeErr("update linea", err)
	}
	return nil
}

func (r *LineaRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM lineas_articulos WHERE id = $1`, id); err != nil {
		return deleteErr("delete linea", err)
	}
	return nil
}

func (r *LineaRepo) ExistsByGrupo(ctx context.Context, grupoID string) (bool, error) {
	return exists(ctx, r.q, `SELECT EXISTS (SELECT 1 FROM lineas_articulos WHERE grupo_id = $1)`, grupoID)
}

// exists ejecuta un SELECT EXISTS(...) con un argumento.
func exists(ctx context.Context, q Querier, sql string, arg any) (bool, error) {
	var ok bool
	if err := q.QueryRow(ctx, sql, arg).Scan(&ok); err != nil {
		return false, fmt.Errorf("exists: %w", err)
	}
	return ok, nil
}
