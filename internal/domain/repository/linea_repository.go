package repository

import (
	"context"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// LineaRepository define el puerto de persistencia para líneas de artículos.
type LineaRepository interface {
	Create(ctx context.Context, l *entity.LineaArticulo) error
	GetByID(ctx context.Context, id string) (*entity.LineaArticulo, error)
	// List lista las líneas; si grupoID no es vacío filtra por grupo.
	List(ctx context.Context, grupoID string, limit, offset int) ([]*entity.LineaArticulo, error)
	Update(ctx context.Context, l *entity.LineaArticulo) error
	Delete(ctx context.Context, id string) error
	ExistsByGrupo(ctx context.Context, grupoID string) (bool, error)
}
