package catalogo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain"
)

func TestGrupoDelete_ConArticulosRechazado(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	_, err := e.articulos.Create(ctx, arrozValido())
	require.NoError(t, err)

	assert.ErrorIs(t, e.grupos.Delete(ctx, grupoAbarrotes), domain.ErrEnUso)
	assert.ErrorIs(t, e.lineas.Delete(ctx, lineaGranos), domain.ErrEnUso)
}

func TestGrupoDelete_ConLineasRechazado(t *testing.T) {
	e := nuevoEntorno(t)
	assert.ErrorIs(t, e.grupos.Delete(context.Background(), grupoBebidas), domain.ErrEnUso)
}

func TestGrupoDelete_SinReferenciasPermitido(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	g, err := e.grupos.Create(ctx, dto.CreateGrupoRequest{CodigoGrupo: "LIM", NombreGrupo: "Limpieza"})
	require.NoError(t, err)
	assert.Equal(t, "Activo", g.EstadoDisplay)

	require.NoError(t, e.grupos.Delete(ctx, g.GrupoID))
	_, err = e.grupos.GetByID(ctx, g.GrupoID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGrupoCreate_CodigoDuplicadoYLargo(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()

	_, err := e.grupos.Create(ctx, dto.CreateGrupoRequest{CodigoGrupo: "ABA", NombreGrupo: "Repetido"})
	assert.True(t, validationErr(t, err).Has("codigo_grupo", domain.CodeDuplicate))

	_, err = e.grupos.Create(ctx, dto.CreateGrupoRequest{CodigoGrupo: "ABCDEF", NombreGrupo: "Largo"})
	assert.True(t, validationErr(t, err).Has("codigo_grupo", domain.CodeMax))
}

func TestLineaCreate_GrupoInexistente(t *testing.T) {
	e := nuevoEntorno(t)
	_, err := e.lineas.Create(context.Background(), dto.CreateLineaRequest{
		CodigoLinea: "X1", GrupoID: noExiste, NombreLinea: "Huérfana",
	})
	assert.True(t, validationErr(t, err).Has("grupo_id", domain.CodeNotFound))
}

func TestLineaUpdate_MoverConArticulosRechazado(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	_, err := e.articulos.Create(ctx, arrozValido())
	require.NoError(t, err)

	g := grupoBebidas
	_, err = e.lineas.Update(ctx, lineaGranos, dto.UpdateLineaRequest{GrupoID: &g})
	assert.ErrorIs(t, err, domain.ErrEnUso)
}
