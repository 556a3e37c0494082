package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type muestra struct {
	Codigo string          `json:"codigo" validate:"required,min=4,max=25"`
	Correo string          `json:"correo,omitempty" validate:"omitempty,email"`
	Stock  decimal.Decimal `json:"stock" validate:"gte=0"`
}

func TestStruct_Valido(t *testing.T) {
	errs := Struct(muestra{Codigo: "A001", Stock: decimal.NewFromInt(3)})
	assert.Empty(t, errs)
}

func TestStruct_UsaNombreJSONyMensajes(t *testing.T) {
	errs := Struct(muestra{Codigo: "AB", Correo: "no-es-correo", Stock: decimal.NewFromFloat(-1.5)})
	require.Len(t, errs, 3)

	byField := map[string]FieldError{}
	for _, e := range errs {
		byField[e.Field] = e
	}
	assert.Equal(t, "min", byField["codigo"].Tag)
	assert.Equal(t, "Debe tener al menos 4 caracteres.", byField["codigo"].Message)
	assert.Equal(t, "email", byField["correo"].Tag)
	assert.Equal(t, "gte", byField["stock"].Tag, "decimal negativo debe fallar gte=0")
}

func TestStruct_CuentaRunasNoBytes(t *testing.T) {
	// "Ñandú" tiene 5 runas y 7 bytes
	type desc struct {
		D string `json:"descripcion" validate:"min=5"`
	}
	assert.Empty(t, Struct(desc{D: "Ñandú"}))
}

func TestNormalize_NFCyEspacios(t *testing.T) {
	descompuesta := "N\u0303andu\u0301" // N + tilde combinante, u + acento combinante
	got := Normalize("  " + descompuesta + " ")
	assert.Equal(t, "\u00d1and\u00fa", got)
	assert.Nil(t, NormalizePtr(nil))
	assert.Equal(t, "x", *NormalizePtr(strPtr(" x ")))
}

func strPtr(s string) *string { return &s }

func TestStruct_RutaDeCamposAnidados(t *testing.T) {
	type item struct {
		Cantidad int `json:"cantidad" validate:"gt=0"`
	}
	type orden struct {
		Items []item `json:"items" validate:"dive"`
	}
	errs := Struct(orden{Items: []item{{Cantidad: 1}, {Cantidad: 0}}})
	require.Len(t, errs, 1)
	assert.Equal(t, "items[1].cantidad", errs[0].Field)
	assert.Equal(t, "gt", errs[0].Tag)
}

type montos struct {
	Stock  decimal.Decimal  `json:"stock" validate:"gte=0,decimal=12 2"`
	Precio *decimal.Decimal `json:"precio" validate:"omitempty,decimal=12 2"`
}

func TestStruct_DecimalLimitaDigitosYDecimales(t *testing.T) {
	assert.Empty(t, Struct(montos{Stock: decimal.RequireFromString("9999999999.99")}))
	assert.Empty(t, Struct(montos{Stock: decimal.RequireFromString("1.500")}), "ceros finales no cuentan")

	errs := Struct(montos{Stock: decimal.RequireFromString("123456789012345.678")})
	require.Len(t, errs, 1)
	assert.Equal(t, "stock", errs[0].Field)
	assert.Equal(t, "decimal", errs[0].Tag)
	assert.Equal(t, "Debe tener como máximo 10 dígitos enteros y 2 decimales.", errs[0].Message)

	p := decimal.RequireFromString("0.005")
	errs = Struct(montos{Precio: &p})
	require.Len(t, errs, 1)
	assert.Equal(t, "precio", errs[0].Field)
}

func TestDecimalCabe(t *testing.T) {
	assert.True(t, DecimalCabe(decimal.RequireFromString("-12.30"), 4, 2))
	assert.False(t, DecimalCabe(decimal.RequireFromString("100.00"), 4, 2))
	assert.False(t, DecimalCabe(decimal.RequireFromString("0.001"), 4, 2))
}
