package domain

import (
	"strings"
)

// Códigos de error por campo.
const (
	CodeRequired  = "required"
	CodeMin       = "min"
	CodeMax       = "max"
	CodeGte       = "gte"
	CodeGt        = "gt"
	CodeEmail     = "email"
	CodeUUID      = "uuid"
	CodeInvalid   = "invalid"
	CodeDuplicate = "duplicate"
	CodeNotFound  = "not_found"
	CodeMismatch  = "mismatch"
	CodeDecimal   = "decimal"
)

// FieldError error atribuible a un campo de la entrada (nombre de campo tal como viaja en JSON).
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError conjunto de errores por campo. Se detecta antes de cualquier escritura.
// errors.Is(err, ErrInvalidInput) es verdadero para cualquier ValidationError.
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError crea un conjunto vacío.
func NewValidationError() *ValidationError {
	return &ValidationError{}
}

// FieldErr atajo para un error de un solo campo.
func FieldErr(field, code, message string) *ValidationError {
	v := NewValidationError()
	v.Add(field, code, message)
	return v
}

// Add agrega un error para el campo.
func (e *ValidationError) Add(field, code, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Code: code, Message: message})
}

// HasErrors indica si hay al menos un error.
func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

// Has indica si el campo tiene un error con ese código.
func (e *ValidationError) Has(field, code string) bool {
	if e == nil {
		return false
	}
	for _, f := range e.Fields {
		if f.Field == field && f.Code == code {
			return true
		}
	}
	return false
}

// HasField indica si el campo tiene algún error.
func (e *ValidationError) HasField(field string) bool {
	if e == nil {
		return false
	}
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// HasCode indica si algún campo tiene el código.
func (e *ValidationError) HasCode(code string) bool {
	if e == nil {
		return false
	}
	for _, f := range e.Fields {
		if f.Code == code {
			return true
		}
	}
	return false
}

// OrNil devuelve nil si no hay errores (evita el nil tipado en interfaces error).
func (e *ValidationError) OrNil() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validación: " + strings.Join(parts, "; ")
}

// Is permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
