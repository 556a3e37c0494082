package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-api/internal/domain"
)

func TestValidationError_EsErrInvalidInput(t *testing.T) {
	verr := domain.FieldErr("linea_id", domain.CodeMismatch, "La línea seleccionada no pertenece al grupo.")
	wrapped := fmt.Errorf("crear artículo: %w", verr)

	assert.True(t, errors.Is(wrapped, domain.ErrInvalidInput))

	var target *domain.ValidationError
	require.True(t, errors.As(wrapped, &target))
	assert.True(t, target.Has("linea_id", domain.CodeMismatch))
	assert.False(t, target.Has("grupo_id", domain.CodeMismatch))
	assert.Contains(t, verr.Error(), "linea_id")
}

func TestValidationError_OrNilSinErrores(t *testing.T) {
	verr := domain.NewValidationError()
	assert.NoError(t, verr.OrNil())

	verr.Add("stock", domain.CodeGte, "El stock no puede ser negativo.")
	assert.Error(t, verr.OrNil())
	assert.True(t, verr.HasCode(domain.CodeGte))
}
