package repository

import (
	"context"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// GrupoRepository define el puerto de persistencia para grupos de artículos.
// Los Get* devuelven (nil, nil) cuando no existe el registro.
type GrupoRepository interface {
	Create(ctx context.Context, g *entity.GrupoArticulo) error
	GetByID(ctx context.Context, id string) (*entity.GrupoArticulo, error)
	GetByCodigo(ctx context.Context, codigo string) (*entity.GrupoArticulo, error)
	List(ctx context.Context, limit, offset int) ([]*entity.GrupoArticulo, error)
	Update(ctx context.Context, g *entity.GrupoArticulo) error
	Delete(ctx context.Context, id string) error
}
