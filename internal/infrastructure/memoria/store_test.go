package memoria

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

func TestTxRunner_RollbackDeshaceCambios(t *testing.T) {
	s := NewStore()
	tx := NewTxRunner(s)
	ctx := context.Background()
	boom := errors.New("falla")

	err := tx.RunCatalogo(ctx, func(a repository.ArticuloRepository, p repository.ListaPreciosRepository) error {
		require.NoError(t, a.Create(ctx, &entity.Articulo{ID: "a1", Codigo: "A001"}))
		require.NoError(t, p.Create(ctx, &entity.ListaPrecios{ArticuloID: "a1", Precio1: decimal.NewFromInt(10)}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, _ := NewArticuloRepository(s).GetByID(ctx, "a1")
	assert.Nil(t, got, "el artículo no debe persistir tras el rollback")
	lp, _ := NewListaPreciosRepository(s).GetByArticulo(ctx, "a1")
	assert.Nil(t, lp)
}

// escribirDuranteRollback abre una transacción de pedidos que falla mientras otra goroutine
// ejecuta escribir fuera de ella.
func escribirDuranteRollback(t *testing.T, s *Store, escribir func() error) {
	t.Helper()
	ctx := context.Background()
	boom := errors.New("falla")
	done := make(chan error, 1)

	err := NewTxRunner(s).RunPedidos(ctx, func(_ repository.OrdenRepository, _ repository.ItemOrdenRepository, _ repository.ListaPreciosRepository) error {
		go func() { done <- escribir() }()
		time.Sleep(20 * time.Millisecond)
		return boom
	})
	require.ErrorIs(t, err, boom)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("la escritura externa no terminó")
	}
}

func TestTxRunner_RollbackNoBorraEscriturasAjenas(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	grupos := NewGrupoRepository(s)

	escribirDuranteRollback(t, s, func() error {
		return grupos.Create(ctx, &entity.GrupoArticulo{ID: "g1", Codigo: "ABA", Nombre: "Abarrotes"})
	})

	got, err := grupos.GetByID(ctx, "g1")
	require.NoError(t, err)
	require.NotNil(t, got, "el grupo creado fuera de la transacción debe sobrevivir al rollback")
	assert.Equal(t, "ABA", got.Codigo)
}

func TestTxRunner_RollbackNoReviveOrdenEliminada(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	ordenes := NewOrdenRepository(s)
	require.NoError(t, ordenes.Create(ctx, &entity.Orden{ID: "o1"}))

	escribirDuranteRollback(t, s, func() error {
		return ordenes.Delete(ctx, "o1")
	})

	got, err := ordenes.GetByID(ctx, "o1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestOrdenRepo_DeleteEliminaItemsEnCascada(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	ordenes := NewOrdenRepository(s)
	items := NewItemOrdenRepository(s)

	require.NoError(t, ordenes.Create(ctx, &entity.Orden{ID: "o1"}))
	require.NoError(t, items.Create(ctx, &entity.ItemOrden{ID: "i1", OrdenID: "o1", NroItem: 1}))
	require.NoError(t, items.Create(ctx, &entity.ItemOrden{ID: "i2", OrdenID: "o1", NroItem: 2}))

	require.NoError(t, ordenes.Delete(ctx, "o1"))
	list, _ := items.ListByOrden(ctx, "o1")
	assert.Empty(t, list)
}

func TestOrdenRepo_NroPedidoConsecutivo(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	ordenes := NewOrdenRepository(s)
	o1, o2 := &entity.Orden{ID: "o1"}, &entity.Orden{ID: "o2"}
	require.NoError(t, ordenes.Create(ctx, o1))
	require.NoError(t, ordenes.Create(ctx, o2))
	assert.Equal(t, int64(1), o1.NroPedido)
	assert.Equal(t, int64(2), o2.NroPedido)
}

func TestGrupoRepo_DeleteReferenciadoRechazado(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	require.NoError(t, NewGrupoRepository(s).Create(ctx, &entity.GrupoArticulo{ID: "g1", Codigo: "G1"}))
	require.NoError(t, NewLineaRepository(s).Create(ctx, &entity.LineaArticulo{ID: "l1", GrupoID: "g1"}))

	err := NewGrupoRepository(s).Delete(ctx, "g1")
	assert.ErrorIs(t, err, domain.ErrEnUso)
}
