package repository

import (
	"context"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// ListaPreciosRepository define el puerto de persistencia para la lista de precios (1:1 con artículo).
type ListaPreciosRepository interface {
	Create(ctx context.Context, lp *entity.ListaPrecios) error
	GetByArticulo(ctx context.Context, articuloID string) (*entity.ListaPrecios, error)
	// Upsert crea o reemplaza los precios del artículo.
	Upsert(ctx context.Context, lp *entity.ListaPrecios) error
}
