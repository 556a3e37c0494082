package pedidos_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/pedidos"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/infrastructure/memoria"
)

type generadorFake struct {
	orden   *entity.OrdenResumen
	cliente *entity.Cliente
	items   []*entity.ItemOrdenDetalle
	err     error
}

func (g *generadorFake) GenerateOrdenPDF(_ context.Context, o *entity.OrdenResumen, c *entity.Cliente, items []*entity.ItemOrdenDetalle) ([]byte, error) {
	g.orden, g.cliente, g.items = o, c, items
	if g.err != nil {
		return nil, g.err
	}
	return []byte("%PDF-1.4"), nil
}

func TestDescargarPDF(t *testing.T) {
	e := nuevoEntorno(t, true)
	ctx := context.Background()
	o, err := e.uc.Create(ctx, usuarioTest, dto.CreateOrdenRequest{
		ClienteID: clienteID, VendedorID: vendedorID,
		Items: []dto.ItemRequest{{ArticuloID: articuloA, Cantidad: 2}},
	})
	require.NoError(t, err)

	gen := &generadorFake{}
	uc := pedidos.NewPDFUseCase(
		memoria.NewOrdenRepository(e.store),
		memoria.NewItemOrdenRepository(e.store),
		memoria.NewClienteRepository(e.store),
		gen,
	)

	pdf, nombre, err := uc.DescargarPDF(ctx, o.PedidoID)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(pdf))
	assert.Equal(t, "pedido_000001.pdf", nombre)
	assert.Equal(t, "Ana", gen.orden.VendedorNombre)
	assert.Equal(t, "María Pérez", gen.cliente.Nombres)
	require.Len(t, gen.items, 1)
	assert.Equal(t, "A001", gen.items[0].ArticuloCodigo)

	_, _, err = uc.DescargarPDF(ctx, noExiste)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	gen.err = errors.New("fuente no disponible")
	_, _, err = uc.DescargarPDF(ctx, o.PedidoID)
	assert.ErrorContains(t, err, "generación fallida")
}
