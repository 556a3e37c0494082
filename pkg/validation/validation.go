// Package validation envuelve go-playground/validator con nombres de campo JSON,
// soporte para decimal.Decimal y mensajes en español.
package validation

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// FieldError error de validación de un campo.
type FieldError struct {
	Field   string
	Tag     string
	Message string
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	// decimal.Decimal se valida como número (gte, gt, lte...).
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	// decimal=<dígitos> <decimales>, como NUMERIC(p, s) en la base de datos.
	if err := v.RegisterValidation("decimal", decimalTag); err != nil {
		panic(err)
	}
	return v
}

// DecimalCabe indica si d cabe en NUMERIC(digitos, decimales) sin redondeo.
func DecimalCabe(d decimal.Decimal, digitos, decimales int32) bool {
	if !d.Equal(d.Truncate(decimales)) {
		return false
	}
	return d.Abs().LessThan(decimal.New(1, digitos-decimales))
}

func decimalTag(fl validator.FieldLevel) bool {
	digitos, decimales, ok := decimalParam(fl.Param())
	if !ok {
		return false
	}
	d, ok := decimalOriginal(fl)
	if !ok {
		return true
	}
	return DecimalCabe(d, digitos, decimales)
}

func decimalParam(param string) (int32, int32, bool) {
	parts := strings.Fields(param)
	if len(parts) != 2 {
		return 0, 0, false
	}
	p, err1 := strconv.Atoi(parts[0])
	s, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || s < 0 || p <= s {
		return 0, 0, false
	}
	return int32(p), int32(s), true
}

// decimalOriginal recupera el decimal.Decimal del struct padre; fl.Field() ya viene
// convertido a float64 por la función de tipo registrada.
func decimalOriginal(fl validator.FieldLevel) (decimal.Decimal, bool) {
	parent := fl.Parent()
	for parent.Kind() == reflect.Ptr {
		if parent.IsNil() {
			return decimal.Decimal{}, false
		}
		parent = parent.Elem()
	}
	if parent.Kind() != reflect.Struct {
		return decimal.Decimal{}, false
	}
	f := parent.FieldByName(fl.StructFieldName())
	for f.IsValid() && f.Kind() == reflect.Ptr {
		if f.IsNil() {
			return decimal.Decimal{}, false
		}
		f = f.Elem()
	}
	if !f.IsValid() {
		return decimal.Decimal{}, false
	}
	d, ok := f.Interface().(decimal.Decimal)
	return d, ok
}

// Struct valida s y devuelve los errores por campo (vacío si es válido).
func Struct(s interface{}) []FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "", Tag: "invalid", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, e := range verrs {
		out = append(out, FieldError{
			Field:   fieldPath(e),
			Tag:     e.Tag(),
			Message: message(e),
		})
	}
	return out
}

// fieldPath devuelve la ruta JSON del campo sin el nombre del struct raíz (p. ej. "items[0].cantidad").
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "Este campo es requerido."
	case "email":
		return "Introduzca una dirección de correo electrónico válida."
	case "uuid", "uuid4":
		return "Debe ser un UUID válido."
	case "min":
		if e.Kind() == reflect.String {
			return "Debe tener al menos " + e.Param() + " caracteres."
		}
		return "Debe ser mayor o igual a " + e.Param() + "."
	case "max":
		if e.Kind() == reflect.String {
			return "No debe exceder los " + e.Param() + " caracteres."
		}
		return "Debe ser menor o igual a " + e.Param() + "."
	case "len":
		return "Debe tener exactamente " + e.Param() + " caracteres."
	case "gte":
		return "Debe ser mayor o igual a " + e.Param() + "."
	case "gt":
		return "Debe ser mayor que " + e.Param() + "."
	case "decimal":
		if p, s, ok := decimalParam(e.Param()); ok {
			return "Debe tener como máximo " + strconv.Itoa(int(p-s)) + " dígitos enteros y " + strconv.Itoa(int(s)) + " decimales."
		}
		return "Número decimal fuera de rango."
	case "oneof":
		return "Valor no permitido; opciones: " + e.Param() + "."
	default:
		return "Valor inválido."
	}
}
