package catalogo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-api/internal/application/catalogo"
	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/internal/infrastructure/memoria"
)

const (
	grupoAbarrotes = "11111111-1111-4111-8111-111111111111"
	grupoBebidas   = "22222222-2222-4222-8222-222222222222"
	lineaGranos    = "33333333-3333-4333-8333-333333333333"
	lineaGaseosas  = "44444444-4444-4444-8444-444444444444"
	noExiste       = "99999999-9999-4999-8999-999999999999"
)

// ──────────────────────────────────────────────────────────────────────────────
// Entorno de prueba
// ──────────────────────────────────────────────────────────────────────────────

type entorno struct {
	store     *memoria.Store
	articulos *catalogo.ArticuloUseCase
	grupos    *catalogo.GrupoUseCase
	lineas    *catalogo.LineaUseCase
}

func nuevoEntorno(t *testing.T) *entorno {
	t.Helper()
	s := memoria.NewStore()
	ctx := context.Background()
	gr := memoria.NewGrupoRepository(s)
	lr := memoria.NewLineaRepository(s)
	ar := memoria.NewArticuloRepository(s)

	require.NoError(t, gr.Create(ctx, &entity.GrupoArticulo{ID: grupoAbarrotes, Codigo: "ABA", Nombre: "Abarrotes", Estado: entity.EstadoActivo}))
	require.NoError(t, gr.Create(ctx, &entity.GrupoArticulo{ID: grupoBebidas, Codigo: "BEB", Nombre: "Bebidas", Estado: entity.EstadoActivo}))
	require.NoError(t, lr.Create(ctx, &entity.LineaArticulo{ID: lineaGranos, Codigo: "GRA", GrupoID: grupoAbarrotes, Nombre: "Granos"}))
	require.NoError(t, lr.Create(ctx, &entity.LineaArticulo{ID: lineaGaseosas, Codigo: "GAS", GrupoID: grupoBebidas, Nombre: "Gaseosas"}))

	return &entorno{
		store: s,
		articulos: catalogo.NewArticuloUseCase(
			memoria.NewTxRunner(s), ar, gr, lr,
			memoria.NewListaPreciosRepository(s), memoria.NewItemOrdenRepository(s),
		),
		grupos: catalogo.NewGrupoUseCase(gr, lr, ar),
		lineas: catalogo.NewLineaUseCase(lr, gr, ar),
	}
}

func arrozValido() dto.CreateArticuloRequest {
	return dto.CreateArticuloRequest{
		CodigoArticulo: "ARZ001",
		Descripcion:    "Arroz blanco 1kg",
		GrupoID:        grupoAbarrotes,
		LineaID:        lineaGranos,
		Stock:          decimal.RequireFromString("12.50"),
		Precio1:        decimal.RequireFromString("4.20"),
	}
}

func validationErr(t *testing.T, err error) *domain.ValidationError {
	t.Helper()
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr), "se esperaba ValidationError, se obtuvo %v", err)
	return verr
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestArticuloCreate_GuardaArticuloYPrecio1(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()

	res, err := e.articulos.Create(ctx, arrozValido())
	require.NoError(t, err)

	got, err := e.articulos.GetByID(ctx, res.ArticuloID)
	require.NoError(t, err)
	assert.Equal(t, "ARZ001", got.CodigoArticulo)
	assert.Equal(t, "Arroz blanco 1kg", got.Descripcion)
	assert.True(t, decimal.RequireFromString("12.50").Equal(got.Stock))
	require.NotNil(t, got.Precios)
	assert.True(t, decimal.RequireFromString("4.20").Equal(got.Precios.Precio1))
	assert.True(t, got.Precios.Precio2.IsZero(), "los demás precios no se llenan")
	assert.True(t, got.Precios.PrecioCosto.IsZero())
	require.NotNil(t, got.Grupo)
	assert.Equal(t, "Abarrotes", got.Grupo.NombreGrupo)
	assert.Equal(t, "Granos", got.Linea.NombreLinea)
}

func TestArticuloCreate_CodigoDuplicado(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	_, err := e.articulos.Create(ctx, arrozValido())
	require.NoError(t, err)

	segundo := arrozValido()
	segundo.Descripcion = "Otro arroz distinto"
	_, err = e.articulos.Create(ctx, segundo)

	verr := validationErr(t, err)
	assert.True(t, verr.Has("codigo_articulo", domain.CodeDuplicate))

	list, err := e.articulos.List(ctx, repository.ArticuloFiltro{})
	require.NoError(t, err)
	assert.Len(t, list.Items, 1, "el intento fallido no deja registros")
}

func TestArticuloCreate_LineaDeOtroGrupo(t *testing.T) {
	e := nuevoEntorno(t)
	in := arrozValido()
	in.LineaID = lineaGaseosas

	_, err := e.articulos.Create(context.Background(), in)

	verr := validationErr(t, err)
	assert.True(t, verr.Has("linea_id", domain.CodeMismatch))
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestArticuloCreate_ReferenciasInexistentes(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()

	in := arrozValido()
	in.GrupoID = noExiste
	_, err := e.articulos.Create(ctx, in)
	assert.True(t, validationErr(t, err).Has("grupo_id", domain.CodeNotFound))

	in = arrozValido()
	in.LineaID = noExiste
	_, err = e.articulos.Create(ctx, in)
	assert.True(t, validationErr(t, err).Has("linea_id", domain.CodeNotFound))
}

func TestArticuloCreate_ErroresDeCampoAntesQueReferencias(t *testing.T) {
	e := nuevoEntorno(t)
	in := arrozValido()
	in.CodigoArticulo = "AB"
	in.Descripcion = "Arr"
	in.Stock = decimal.NewFromInt(-1)
	in.GrupoID = noExiste

	_, err := e.articulos.Create(context.Background(), in)

	verr := validationErr(t, err)
	assert.True(t, verr.Has("codigo_articulo", domain.CodeMin))
	assert.True(t, verr.Has("descripcion", domain.CodeMin))
	assert.True(t, verr.Has("stock", domain.CodeGte))
	assert.False(t, verr.HasField("grupo_id"), "las referencias no se revisan si fallan los campos")
}

func TestArticuloCreate_NormalizaEspacios(t *testing.T) {
	e := nuevoEntorno(t)
	in := arrozValido()
	in.CodigoArticulo = "  ARZ002 "

	res, err := e.articulos.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "ARZ002", res.CodigoArticulo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete / Precios
// ──────────────────────────────────────────────────────────────────────────────

func TestArticuloUpdate_CambioDeGrupoExigeLineaCoherente(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	res, err := e.articulos.Create(ctx, arrozValido())
	require.NoError(t, err)

	grupo := grupoBebidas
	_, err = e.articulos.Update(ctx, res.ArticuloID, dto.UpdateArticuloRequest{GrupoID: &grupo})
	assert.True(t, validationErr(t, err).Has("linea_id", domain.CodeMismatch))

	linea := lineaGaseosas
	upd, err := e.articulos.Update(ctx, res.ArticuloID, dto.UpdateArticuloRequest{GrupoID: &grupo, LineaID: &linea})
	require.NoError(t, err)
	assert.Equal(t, "Bebidas", upd.Grupo.NombreGrupo)
}

func TestArticuloDelete_UsadoEnOrdenRechazado(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	res, err := e.articulos.Create(ctx, arrozValido())
	require.NoError(t, err)
	require.NoError(t, memoria.NewItemOrdenRepository(e.store).Create(ctx, &entity.ItemOrden{
		ID: "it1", OrdenID: "o1", ArticuloID: res.ArticuloID, Cantidad: 1,
	}))

	err = e.articulos.Delete(ctx, res.ArticuloID)
	assert.ErrorIs(t, err, domain.ErrEnUso)
}

func TestArticuloUpdatePrecios_Parcial(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	res, err := e.articulos.Create(ctx, arrozValido())
	require.NoError(t, err)

	p3 := decimal.RequireFromString("3.80")
	out, err := e.articulos.UpdatePrecios(ctx, res.ArticuloID, dto.PreciosRequest{Precio3: &p3})
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("4.20").Equal(out.Precio1), "precio_1 se conserva")
	assert.True(t, p3.Equal(out.Precio3))

	neg := decimal.NewFromInt(-1)
	_, err = e.articulos.UpdatePrecios(ctx, res.ArticuloID, dto.PreciosRequest{PrecioCosto: &neg})
	assert.True(t, validationErr(t, err).Has("precio_costo", domain.CodeGte))
}

func TestArticuloCreate_DecimalesFueraDeEscala(t *testing.T) {
	e := nuevoEntorno(t)
	in := arrozValido()
	in.Stock = decimal.RequireFromString("123456789012345.678")
	in.Precio1 = decimal.RequireFromString("0.005")

	_, err := e.articulos.Create(context.Background(), in)
	verr := validationErr(t, err)
	assert.True(t, verr.Has("stock", domain.CodeDecimal))
	assert.True(t, verr.Has("precio_1", domain.CodeDecimal))
}

func TestArticuloUpdatePrecios_MasDeDosDecimalesRechazado(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	res, err := e.articulos.Create(ctx, arrozValido())
	require.NoError(t, err)

	p2 := decimal.RequireFromString("1.999")
	_, err = e.articulos.UpdatePrecios(ctx, res.ArticuloID, dto.PreciosRequest{Precio2: &p2})
	assert.True(t, validationErr(t, err).Has("precio_2", domain.CodeDecimal))
}

func TestArticuloList_PlanoConNombres(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	_, err := e.articulos.Create(ctx, arrozValido())
	require.NoError(t, err)

	list, err := e.articulos.List(ctx, repository.ArticuloFiltro{GrupoID: grupoAbarrotes})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Abarrotes", list.Items[0].GrupoNombre)
	assert.Equal(t, "Granos", list.Items[0].LineaNombre)
	require.NotNil(t, list.Items[0].Precio)
	assert.True(t, decimal.RequireFromString("4.20").Equal(*list.Items[0].Precio))
}
