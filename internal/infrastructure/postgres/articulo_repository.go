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

var _ repository.ArticuloRepository = (*ArticuloRepo)(nil)

// ArticuloRepo implementación del puerto ArticuloRepository sobre PostgreSQL (usable con pool o tx).
type ArticuloRepo struct {
	q Querier
}

// NewArticuloRepository construye el adaptador de persistencia para artículos. Pasar pool o tx (Querier).
func NewArticuloRepository(q Querier) *ArticuloRepo {
	return &ArticuloRepo{q: q}
}

const articuloCols = `id, codigo, codigo_barras, descripcion, presentacion, grupo_id, linea_id, stock, imagen, estado`

func articuloDest(a *entity.Articulo) []any {
	return []any{&a.ID, &a.Codigo, &a.CodigoBarras, &a.Descripcion, &a.Presentacion,
		&a.GrupoID, &a.LineaID, &a.Stock, &a.Imagen, &a.Estado}
}

// detalleSelect artículo con grupo, línea y precios (LEFT JOIN: el artículo puede no tener lista).
const detalleSelect = `
	SELECT a.id, a.codigo, a.codigo_barras, a.descripcion, a.presentacion, a.grupo_id, a.linea_id,
	       a.stock, a.imagen, a.estado,
	       g.id, g.codigo, g.nombre, g.estado,
	       l.id, l.codigo, l.grupo_id, l.nombre, l.estado,
	       lp.precio_1, lp.precio_2, lp.precio_3, lp.precio_4, lp.precio_compra, lp.precio_costo
	FROM articulos a
	JOIN grupos_articulos g ON g.id = a.grupo_id
	JOIN lineas_articulos l ON l.id = a.linea_id
	LEFT JOIN lista_precios lp ON lp.articulo_id = a.id`

func scanDetalle(row pgx.Row) (*entity.ArticuloDetalle, error) {
	d := &entity.ArticuloDetalle{Grupo: &entity.GrupoArticulo{}, Linea: &entity.LineaArticulo{}}
	var p1, p2, p3, p4, pc, pk *decimal.Decimal
	dest := articuloDest(&d.Articulo)
	dest = append(dest,
		&d.Grupo.ID, &d.Grupo.Codigo, &d.Grupo.Nombre, &d.Grupo.Estado,
		&d.Linea.ID, &d.Linea.Codigo, &d.Linea.GrupoID, &d.Linea.Nombre, &d.Linea.Estado,
		&p1, &p2, &p3, &p4, &pc, &pk,
	)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	if p1 != nil {
		d.Precios = &entity.ListaPrecios{
			ArticuloID:   d.ID,
			Precio1:      *p1,
			Precio2:      deref(p2),
			Precio3:      deref(p3),
			Precio4:      deref(p4),
			PrecioCompra: deref(pc),
			PrecioCosto:  deref(pk),
		}
	}
	return d, nil
}

func deref(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// Create persiste un nuevo artículo. Código duplicado -> domain.ErrDuplicate.
func (r *ArticuloRepo) Create(ctx context.Context, a *entity.Articulo) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO articulos (`+articuloCols+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		a.ID, a.Codigo, a.CodigoBarras, a.Descripcion, a.Presentacion, a.GrupoID, a.LineaID, a.Stock, a.Imagen, a.Estado,
	)
	if err != nil {
		return writeErr("insert articulo", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID.
func (r *ArticuloRepo) GetByID(ctx context.Context, id string) (*entity.Articulo, error) {
	return r.getBy(ctx, "id", id)
}

// GetByCodigo obtiene un artículo por código.
func (r *ArticuloRepo) GetByCodigo(ctx context.Context, codigo string) (*entity.Articulo, error) {
	return r.getBy(ctx, "codigo", codigo)
}

func (r *ArticuloRepo) getBy(ctx context.Context, col, val string) (*entity.Articulo, error) {
	var a entity.Articulo
	err := r.q.QueryRow(ctx, `SELECT `+articuloCols+` FROM articulos WHERE `+col+` = $1`, val).Scan(articuloDest(&a)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get articulo: %w", err)
	}
	return &a, nil
}

// GetDetalle obtiene el artículo con grupo, línea y precios.
func (r *ArticuloRepo) GetDetalle(ctx context.Context, id string) (*entity.ArticuloDetalle, error) {
	d, err := scanDetalle(r.q.QueryRow(ctx, detalleSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get articulo detalle: %w", err)
	}
	return d, nil
}

// List lista artículos con filtros; orden por código.
func (r *ArticuloRepo) List(ctx context.Context, f repository.ArticuloFiltro) ([]*entity.ArticuloDetalle, error) {
	var w filtro
	if f.GrupoID != "" {
		w.add("a.grupo_id = ?", f.GrupoID)
	}
	if f.LineaID != "" {
		w.add("a.linea_id = ?", f.LineaID)
	}
	if f.Buscar != "" {
		w.add("(a.codigo ILIKE ? OR a.codigo_barras ILIKE ? OR a.descripcion ILIKE ?)", "%"+f.Buscar+"%")
	}
	where := w.where()
	pag := w.page(f.Limit, f.Offset)
	rows, err := r.q.Query(ctx, detalleSelect+where+` ORDER BY a.codigo`+pag, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list articulos: %w", err)
	}
	defer rows.Close()
	var list []*entity.ArticuloDetalle
	for rows.Next() {
		d, err := scanDetalle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan articulo: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// Update actualiza todos los campos editables del artículo.
func (r *ArticuloRepo) Update(ctx context.Context, a *entity.Articulo) error {
	_, err := r.q.Exec(ctx, `
		UPDATE articulos SET codigo = $2, codigo_barras = $3, descripcion = $4, presentacion = $5,
			grupo_id = $6, linea_id = $7, stock = $8, imagen = $9, estado = $10
		WHERE id = $1`,
		a.ID, a.Codigo, a.CodigoBarras, a.Descripcion, a.Presentacion, a.GrupoID, a.LineaID, a.Stock, a.Imagen, a.Estado,
	)
	if err != nil {
		return writeErr("update articulo", err)
	}
	return nil
}

// Delete elimina el artículo; su lista de precios se elimina en cascada.
func (r *ArticuloRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM articulos WHERE id = $1`, id); err != nil {
		return deleteErr("delete articulo", err)
	}
	return nil
}

func (r *ArticuloRepo) ExistsByGrupo(ctx context.Context, grupoID string) (bool, error) {
	return exists(ctx, r.q, `SELECT EXISTS (SELECT 1 FROM articulos WHERE grupo_id = $1)`, grupoID)
}

func (r *ArticuloRepo) ExistsByLinea(ctx context.Context, lineaID string) (bool, error) {
	return exists(ctx, r.q, `SELECT EXISTS (SELECT 1 FROM articulos WHERE linea_id = $1)`, lineaID)
}
