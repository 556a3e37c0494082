package dto

import (
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/pkg/validation"
)

// Validate aplica las etiquetas `validate` de in y devuelve los errores por campo con códigos de dominio.
// Devuelve un conjunto vacío (HasErrors() == false) si la entrada es válida.
func Validate(in interface{}) *domain.ValidationError {
	verr := domain.NewValidationError()
	for _, fe := range validation.Struct(in) {
		verr.Add(fe.Field, codeFor(fe.Tag), fe.Message)
	}
	return verr
}

func codeFor(tag string) string {
	switch tag {
	case "required":
		return domain.CodeRequired
	case "min", "len":
		return domain.CodeMin
	case "max":
		return domain.CodeMax
	case "gte":
		return domain.CodeGte
	case "gt":
		return domain.CodeGt
	case "email":
		return domain.CodeEmail
	case "uuid", "uuid4":
		return domain.CodeUUID
	case "decimal":
		return domain.CodeDecimal
	default:
		return domain.CodeInvalid
	}
}
