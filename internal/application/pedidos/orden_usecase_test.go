package pedidos_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/pedidos"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/internal/infrastructure/memoria"
)

const (
	clienteID   = "aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaaa"
	vendedorID  = "bbbbbbbb-bbbb-4bbb-8bbb-bbbbbbbbbbbb"
	articuloA   = "cccccccc-cccc-4ccc-8ccc-cccccccccccc" // precio_1 = 10.00
	articuloB   = "dddddddd-dddd-4ddd-8ddd-dddddddddddd" // precio_1 = 2.50
	sinPrecio   = "eeeeeeee-eeee-4eee-8eee-eeeeeeeeeeee" // sin lista de precios
	noExiste    = "99999999-9999-4999-8999-999999999999"
	usuarioTest = "usr-1"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Entorno de prueba
// ──────────────────────────────────────────────────────────────────────────────

type metricasFake struct {
	mu         sync.Mutex
	ops        map[string]int
	sinPrecioN int
}

func (m *metricasFake) OperacionOrden(op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ops == nil {
		m.ops = map[string]int{}
	}
	m.ops[op]++
}

func (m *metricasFake) PrecioNoConfigurado() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sinPrecioN++
}

type entorno struct {
	store    *memoria.Store
	uc       *pedidos.OrdenUseCase
	metricas *metricasFake
}

func nuevoEntorno(t *testing.T, estricto bool) *entorno {
	t.Helper()
	s := memoria.NewStore()
	ctx := context.Background()

	require.NoError(t, memoria.NewClienteRepository(s).Create(ctx, &entity.Cliente{ID: clienteID, Nombres: "María Pérez"}))
	require.NoError(t, memoria.NewVendedorRepository(s).Create(ctx, &entity.Vendedor{ID: vendedorID, Nombre: "Ana", Correo: "ana@pos.co"}))
	ar := memoria.NewArticuloRepository(s)
	require.NoError(t, ar.Create(ctx, &entity.Articulo{ID: articuloA, Codigo: "A001", Descripcion: "Arroz 1kg"}))
	require.NoError(t, ar.Create(ctx, &entity.Articulo{ID: articuloB, Codigo: "B001", Descripcion: "Panela"}))
	require.NoError(t, ar.Create(ctx, &entity.Articulo{ID: sinPrecio, Codigo: "S001", Descripcion: "Sin precio"}))
	lp := memoria.NewListaPreciosRepository(s)
	require.NoError(t, lp.Create(ctx, &entity.ListaPrecios{ArticuloID: articuloA, Precio1: dec("10.00")}))
	require.NoError(t, lp.Create(ctx, &entity.ListaPrecios{ArticuloID: articuloB, Precio1: dec("2.50")}))

	m := &metricasFake{}
	uc := pedidos.NewOrdenUseCase(
		memoria.NewTxRunner(s),
		memoria.NewOrdenRepository(s),
		memoria.NewItemOrdenRepository(s),
		memoria.NewClienteRepository(s),
		memoria.NewVendedorRepository(s),
		ar,
		pedidos.Config{PrecioEstricto: estricto},
		m,
	)
	return &entorno{store: s, uc: uc, metricas: m}
}

func (e *entorno) ordenVacia(t *testing.T) *dto.OrdenResponse {
	t.Helper()
	o, err := e.uc.Create(context.Background(), usuarioTest, dto.CreateOrdenRequest{ClienteID: clienteID, VendedorID: vendedorID})
	require.NoError(t, err)
	return o
}

// ──────────────────────────────────────────────────────────────────────────────
// Precio y total del ítem
// ──────────────────────────────────────────────────────────────────────────────

func TestAgregarItem_PrecioOmitidoTomaPrecio1(t *testing.T) {
	e := nuevoEntorno(t, true)
	o := e.ordenVacia(t)

	res, err := e.uc.AgregarItem(context.Background(), usuarioTest, o.PedidoID, dto.ItemRequest{ArticuloID: articuloA, Cantidad: 3})
	require.NoError(t, err)

	require.Len(t, res.Items, 1)
	it := res.Items[0]
	assert.True(t, dec("10.00").Equal(it.PrecioUnitario))
	assert.True(t, dec("30.00").Equal(it.TotalItem))
	assert.Equal(t, "Arroz 1kg", it.ArticuloDescripcion)
	assert.Equal(t, 1, it.NroItem)
	assert.True(t, dec("30.00").Equal(res.Importe))
}

func TestAgregarItem_SinListaModoEstrictoNoDejaRastro(t *testing.T) {
	e := nuevoEntorno(t, true)
	o := e.ordenVacia(t)
	ctx := context.Background()

	_, err := e.uc.AgregarItem(ctx, usuarioTest, o.PedidoID, dto.ItemRequest{ArticuloID: articuloA, Cantidad: 1})
	require.NoError(t, err)

	_, err = e.uc.AgregarItem(ctx, usuarioTest, o.PedidoID, dto.ItemRequest{ArticuloID: sinPrecio, Cantidad: 2})
	require.True(t, errors.Is(err, domain.ErrPrecioNoConfigurado))
	assert.Contains(t, err.Error(), "S001")
	assert.Equal(t, 1, e.metricas.sinPrecioN)

	got, err := e.uc.GetByID(ctx, o.PedidoID)
	require.NoError(t, err)
	assert.Len(t, got.Items, 1, "el ítem rechazado no se guarda")
	assert.True(t, dec("10.00").Equal(got.Importe))
}

func TestAgregarItem_SinListaModoHeredadoQuedaEnCero(t *testing.T) {
	e := nuevoEntorno(t, false)
	o := e.ordenVacia(t)

	res, err := e.uc.AgregarItem(context.Background(), usuarioTest, o.PedidoID, dto.ItemRequest{ArticuloID: sinPrecio, Cantidad: 2})
	require.NoError(t, err)
	assert.True(t, res.Items[0].TotalItem.IsZero())
	assert.True(t, res.Importe.IsZero())
}

func TestAgregarItem_ValidacionesYReferencias(t *testing.T) {
	e := nuevoEntorno(t, true)
	o := e.ordenVacia(t)
	ctx := context.Background()

	_, err := e.uc.AgregarItem(ctx, usuarioTest, o.PedidoID, dto.ItemRequest{ArticuloID: articuloA, Cantidad: 0})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Has("cantidad", domain.CodeGt))

	_, err = e.uc.AgregarItem(ctx, usuarioTest, o.PedidoID, dto.ItemRequest{ArticuloID: noExiste, Cantidad: 1})
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Has("articulo_id", domain.CodeNotFound))

	_, err = e.uc.AgregarItem(ctx, usuarioTest, noExiste, dto.ItemRequest{ArticuloID: articuloA, Cantidad: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAgregarItem_LimitesDeCantidadYPrecio(t *testing.T) {
	e := nuevoEntorno(t, true)
	o := e.ordenVacia(t)
	ctx := context.Background()
	var verr *domain.ValidationError

	_, err := e.uc.AgregarItem(ctx, usuarioTest, o.PedidoID, dto.ItemRequest{ArticuloID: articuloA, Cantidad: 3, PrecioUnitario: dec("0.005")})
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Has("precio_unitario", domain.CodeDecimal))

	_, err = e.uc.AgregarItem(ctx, usuarioTest, o.PedidoID, dto.ItemRequest{ArticuloID: articuloA, Cantidad: 1000001})
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Has("cantidad", domain.CodeMax))

	got, err := e.uc.GetByID(ctx, o.PedidoID)
	require.NoError(t, err)
	assert.Empty(t, got.Items)
}

// ──────────────────────────────────────────────────────────────────────────────
// Importe de la orden
// ──────────────────────────────────────────────────────────────────────────────

func TestImporte_RecalculadoTrasCadaItem(t *testing.T) {
	e := nuevoEntorno(t, true)
	o := e.ordenVacia(t)
	ctx := context.Background()

	pasos := []struct {
		req      dto.ItemRequest
		esperado string
	}{
		{dto.ItemRequest{ArticuloID: articuloB, Cantidad: 2}, "5.00"},                               // 2 x 2.50
		{dto.ItemRequest{ArticuloID: articuloA, Cantidad: 1, PrecioUnitario: dec("7.50")}, "12.50"}, // precio explícito
		{dto.ItemRequest{ArticuloID: articuloB, Cantidad: 1, PrecioUnitario: dec("2.50")}, "15.00"},
	}
	for i, p := range pasos {
		res, err := e.uc.AgregarItem(ctx, usuarioTest, o.PedidoID, p.req)
		require.NoError(t, err)
		assert.True(t, dec(p.esperado).Equal(res.Importe), "paso %d: importe %s", i+1, res.Importe)
		assert.Equal(t, i+1, res.Items[len(res.Items)-1].NroItem)
	}
	assert.Equal(t, 3, e.metricas.ops["agregar_item"])
}

func TestActualizarItem_SinCambiosEsIdempotente(t *testing.T) {
	e := nuevoEntorno(t, true)
	o := e.ordenVacia(t)
	ctx := context.Background()
	res, err := e.uc.AgregarItem(ctx, usuarioTest, o.PedidoID, dto.ItemRequest{ArticuloID: articuloA, Cantidad: 4})
	require.NoError(t, err)
	itemID := res.Items[0].ItemID

	// el precio de lista cambia después de crear el ítem
	require.NoError(t, memoria.NewListaPreciosRepository(e.store).Upsert(ctx, &entity.ListaPrecios{ArticuloID: articuloA, Precio1: dec("99.00")}))

	again, err := e.uc.ActualizarItem(ctx, o.PedidoID, itemID, dto.UpdateItemRequest{})
	require.NoError(t, err)
	assert.True(t, dec("40.00").Equal(again.Items[0].TotalItem))
	assert.True(t, dec("40.00").Equal(again.Importe))
}

func TestActualizarItem_CambiaCantidadYRecalcula(t *testing.T) {
	e := nuevoEntorno(t, true)
	o := e.ordenVacia(t)
	ctx := context.Background()
	_, err := e.uc.AgregarItem(ctx, usuarioTest, o.PedidoID, dto.ItemRequest{ArticuloID: articuloB, Cantidad: 2})
	require.NoError(t, err)
	res, err := e.uc.AgregarItem(ctx, usuarioTest, o.PedidoID, dto.ItemRequest{ArticuloID: articuloA, Cantidad: 1})
	require.NoError(t, err)

	cant := 3
	upd, err := e.uc.ActualizarItem(ctx, o.PedidoID, res.Items[1].ItemID, dto.UpdateItemRequest{Cantidad: &cant})
	require.NoError(t, err)
	assert.True(t, dec("30.00").Equal(upd.Items[1].TotalItem))
	assert.True(t, dec("35.00").Equal(upd.Importe))
}

func TestImporte_IncluyeItemsInactivos(t *testing.T) {
	e := nuevoEntorno(t, true)
	o := e.ordenVacia(t)
	ctx := context.Background()
	res, err := e.uc.AgregarItem(ctx, usuarioTest, o.PedidoID, dto.ItemRequest{ArticuloID: articuloA, Cantidad: 1})
	require.NoError(t, err)

	inactivo := int(entity.EstadoInactivo)
	upd, err := e.uc.ActualizarItem(ctx, o.PedidoID, res.Items[0].ItemID, dto.UpdateItemRequest{Estado: &inactivo})
	require.NoError(t, err)
	assert.True(t, dec("10.00").Equal(upd.Importe))
}

func TestEliminarItem_Recalcula(t *testing.T) {
	e := nuevoEntorno(t, true)
	o := e.ordenVacia(t)
	ctx := context.Background()
	_, err := e.uc.AgregarItem(ctx, usuarioTest, o.PedidoID, dto.ItemRequest{ArticuloID: articuloA, Cantidad: 1})
	require.NoError(t, err)
	res, err := e.uc.AgregarItem(ctx, usuarioTest, o.PedidoID, dto.ItemRequest{ArticuloID: articuloB, Cantidad: 1})
	require.NoError(t, err)

	upd, err := e.uc.EliminarItem(ctx, o.PedidoID, res.Items[0].ItemID)
	require.NoError(t, err)
	require.Len(t, upd.Items, 1)
	assert.True(t, dec("2.50").Equal(upd.Importe))

	_, err = e.uc.EliminarItem(ctx, o.PedidoID, res.Items[0].ItemID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAgregarItem_ConcurrenteSinPerderActualizaciones(t *testing.T) {
	e := nuevoEntorno(t, true)
	o := e.ordenVacia(t)
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.uc.AgregarItem(ctx, usuarioTest, o.PedidoID, dto.ItemRequest{ArticuloID: articuloB, Cantidad: 1})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := e.uc.GetByID(ctx, o.PedidoID)
	require.NoError(t, err)
	assert.Len(t, got.Items, n)
	assert.True(t, dec("50.00").Equal(got.Importe), "importe %s", got.Importe)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cabecera
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_ConItemsIniciales(t *testing.T) {
	e := nuevoEntorno(t, true)
	o, err := e.uc.Create(context.Background(), usuarioTest, dto.CreateOrdenRequest{
		ClienteID:  clienteID,
		VendedorID: vendedorID,
		Notas:      "  entregar en la mañana ",
		Items: []dto.ItemRequest{
			{ArticuloID: articuloA, Cantidad: 1},
			{ArticuloID: articuloB, Cantidad: 2},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), o.NroPedido)
	assert.Equal(t, "María Pérez", o.ClienteNombre)
	assert.Equal(t, "Pendiente", o.EstadoDisplay)
	assert.Equal(t, "entregar en la mañana", o.Notas)
	assert.Equal(t, usuarioTest, o.CreadoPor)
	require.Len(t, o.Items, 2)
	assert.Equal(t, 2, o.Items[1].NroItem)
	assert.True(t, dec("15.00").Equal(o.Importe))
}

func TestCreate_FallaDeUnItemNoCreaLaOrden(t *testing.T) {
	e := nuevoEntorno(t, true)
	ctx := context.Background()
	_, err := e.uc.Create(ctx, usuarioTest, dto.CreateOrdenRequest{
		ClienteID:  clienteID,
		VendedorID: vendedorID,
		Items: []dto.ItemRequest{
			{ArticuloID: articuloA, Cantidad: 1},
			{ArticuloID: sinPrecio, Cantidad: 1},
		},
	})
	require.ErrorIs(t, err, domain.ErrPrecioNoConfigurado)

	list, err := e.uc.List(ctx, repository.OrdenFiltro{})
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}

func TestCreate_ReferenciasInexistentes(t *testing.T) {
	e := nuevoEntorno(t, true)
	_, err := e.uc.Create(context.Background(), usuarioTest, dto.CreateOrdenRequest{
		ClienteID:  noExiste,
		VendedorID: vendedorID,
		Items:      []dto.ItemRequest{{ArticuloID: noExiste, Cantidad: 1}},
	})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Has("cliente_id", domain.CodeNotFound))
	assert.True(t, verr.Has("items[0].articulo_id", domain.CodeNotFound))
}

func TestDelete_EliminaItemsEnCascada(t *testing.T) {
	e := nuevoEntorno(t, true)
	ctx := context.Background()
	o, err := e.uc.Create(ctx, usuarioTest, dto.CreateOrdenRequest{
		ClienteID: clienteID, VendedorID: vendedorID,
		Items: []dto.ItemRequest{{ArticuloID: articuloA, Cantidad: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, e.uc.Delete(ctx, o.PedidoID))
	items, err := memoria.NewItemOrdenRepository(e.store).ListByOrden(ctx, o.PedidoID)
	require.NoError(t, err)
	assert.Empty(t, items)
	_, err = e.uc.GetByID(ctx, o.PedidoID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_EstadoYNotas(t *testing.T) {
	e := nuevoEntorno(t, true)
	o := e.ordenVacia(t)
	estado := int(entity.OrdenConfirmada)
	notas := "confirmada por teléfono"

	upd, err := e.uc.Update(context.Background(), o.PedidoID, dto.UpdateOrdenRequest{Estado: &estado, Notas: &notas})
	require.NoError(t, err)
	assert.Equal(t, "Confirmada", upd.EstadoDisplay)
	assert.Equal(t, notas, upd.Notas)

	malo := 9
	_, err = e.uc.Update(context.Background(), o.PedidoID, dto.UpdateOrdenRequest{Estado: &malo})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
