package dto_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/pos-api/internal/application/dto"
)

func TestParseFields(t *testing.T) {
	assert.Nil(t, dto.ParseFields(""))
	assert.Nil(t, dto.ParseFields("   "))
	assert.Equal(t, []string{"codigo_articulo", "stock"}, dto.ParseFields(" codigo_articulo, ,stock "))
}

func TestProject_SoloCamposPedidos(t *testing.T) {
	r := dto.ArticuloResponse{
		ArticuloID:     "a1",
		CodigoArticulo: "A001",
		Descripcion:    "Arroz blanco",
		Stock:          decimal.NewFromInt(7),
		Grupo:          &dto.GrupoRef{GrupoID: "g1", NombreGrupo: "Abarrotes"},
	}

	out := dto.Project(r, []string{"codigo_articulo", "grupo", "no_existe"})

	assert.Len(t, out, 2, "los campos desconocidos se descartan")
	assert.Equal(t, "A001", out["codigo_articulo"])
	assert.Equal(t, "Abarrotes", out["grupo"])
	_, tieneDescripcion := out["descripcion"]
	assert.False(t, tieneDescripcion)
}

func TestProject_SinCamposDevuelveTodo(t *testing.T) {
	r := dto.ArticuloResponse{ArticuloID: "a1"}
	out := dto.Project(r, nil)
	assert.Contains(t, out, "articulo_id")
	assert.Contains(t, out, "linea")
	assert.Nil(t, out["linea"])
}

func TestValidate_CodigosDeDominio(t *testing.T) {
	verr := dto.Validate(dto.CreateArticuloRequest{
		CodigoArticulo: "AB",
		Descripcion:    "Arroz",
		GrupoID:        "no-uuid",
		Stock:          decimal.NewFromInt(-1),
	})

	assert.True(t, verr.Has("codigo_articulo", "min"))
	assert.True(t, verr.Has("grupo_id", "uuid"))
	assert.True(t, verr.Has("linea_id", "required"))
	assert.True(t, verr.Has("stock", "gte"))
	assert.False(t, verr.Has("descripcion", "min"), "5 caracteres es el mínimo permitido")
}
