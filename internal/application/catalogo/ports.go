package catalogo

import (
	"context"

	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// TxRunner ejecuta fn en una transacción con los repositorios de artículo y lista de precios.
// Si fn devuelve error no queda ningún registro parcial.
type TxRunner interface {
	RunCatalogo(ctx context.Context, fn func(
		articulos repository.ArticuloRepository,
		precios repository.ListaPreciosRepository,
	) error) error
}
