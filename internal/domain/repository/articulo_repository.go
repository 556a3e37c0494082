package repository

import (
	"context"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// ArticuloFiltro criterios de listado de artículos. Los campos vacíos no filtran.
type ArticuloFiltro struct {
	GrupoID string
	LineaID string
	Buscar  string // coincide con código, código de barras o descripción
	Limit   int
	Offset  int
}

// ArticuloRepository define el puerto de persistencia para artículos.
type ArticuloRepository interface {
	Create(ctx context.Context, a *entity.Articulo) error
	GetByID(ctx context.Context, id string) (*entity.Articulo, error)
	GetByCodigo(ctx context.Context, codigo string) (*entity.Articulo, error)
	// GetDetalle devuelve el artículo con grupo, línea y lista de precios (cualquiera puede ser nil).
	GetDetalle(ctx context.Context, id string) (*entity.ArticuloDetalle, error)
	List(ctx context.Context, f ArticuloFiltro) ([]*entity.ArticuloDetalle, error)
	Update(ctx context.Context, a *entity.Articulo) error
	Delete(ctx context.Context, id string) error
	ExistsByGrupo(ctx context.Context, grupoID string) (bool, error)
	ExistsByLinea(ctx context.Context, lineaID string) (bool, error)
}
