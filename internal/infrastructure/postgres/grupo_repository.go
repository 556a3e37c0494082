package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

var _ repository.GrupoRepository = (*GrupoRepo)(nil)

// GrupoRepo implementación del puerto GrupoRepository sobre PostgreSQL.
type GrupoRepo struct {
	q Querier
}

// NewGrupoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGrupoRepository(q Querier) *GrupoRepo {
	return &GrupoRepo{q: q}
}

const grupoCols = `id, codigo, nombre, estado`

func scanGrupo(row pgx.Row) (*entity.GrupoArticulo, error) {
	var g entity.GrupoArticulo
	if err := row.Scan(&g.ID, &g.Codigo, &g.Nombre, &g.Estado); err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GrupoRepo) Create(ctx context.Context, g *entity.GrupoArticulo) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO grupos_articulos (`+grupoCols+`) VALUES ($1, $2, $3, $4)`,
		g.ID, g.Codigo, g.Nombre, g.Estado,
	)
	if err != nil {
		return writeErr("insert grupo", err)
	}
	return nil
}

func (r *GrupoRepo) GetByID(ctx context.Context, id string) (*entity.GrupoArticulo, error) {
	return r.getBy(ctx, "id", id)
}

func (r *GrupoRepo) GetByCodigo(ctx context.Context, codigo string) (*entity.GrupoArticulo, error) {
	return r.getBy(ctx, "codigo", codigo)
}

func (r *GrupoRepo) getBy(ctx context.Context, col, val string) (*entity.GrupoArticulo, error) {
	g, err := scanGrupo(r.q.QueryRow(ctx, `SELECT `+grupoCols+` FROM grupos_articulos WHERE `+col+` = $1`, val))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get grupo: %w", err)
	}
	return g, nil
}

func (r *GrupoRepo) List(ctx context.Context, limit, offset int) ([]*entity.GrupoArticulo, error) {
	var f filtro
	pag := f.page(limit, offset)
	rows, err := r.q.Query(ctx, `SELECT `+grupoCols+` FROM grupos_articulos ORDER BY codigo`+pag, f.args...)
	if err != nil {
		return nil, fmt.Errorf("list grupos: %w", err)
	}
	defer rows.Close()
	var list []*entity.GrupoArticulo
	for rows.Next() {
		g, err := scanGrupo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan grupo: %w", err)
		}
		list = append(list, g)
	}
	return list, rows.Err()
}

func (r *GrupoRepo) Update(ctx context.Context, g *entity.GrupoArticulo) error {
	_, err := r.q.Exec(ctx,
		`UPDATE grupos_articulos SET codigo = $2, nombre = $3, estado = $4 WHERE id = $1`,
		g.ID, g.Codigo, g.Nombre, g.Estado,
	)
	if err != nil {
		return writeErr("update grupo", err)
	}
	return nil
}

func (r *GrupoRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM grupos_articulos WHERE id = $1`, id); err != nil {
		return deleteErr("delete grupo", err)
	}
	return nil
}
