package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/pos-api/internal/domain"
)

func TestTraduccionDeErrores(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	fk := &pgconn.PgError{Code: "23503"}

	assert.ErrorIs(t, writeErr("insert articulo", unique), domain.ErrDuplicate)
	assert.ErrorIs(t, writeErr("insert articulo", fk), domain.ErrInvalidInput)
	assert.ErrorIs(t, deleteErr("delete grupo", fk), domain.ErrEnUso)
	assert.ErrorIs(t, writeErr("update importe", &pgconn.PgError{Code: "22003"}), domain.ErrInvalidInput)

	otro := errors.New("conexión cerrada")
	assert.ErrorIs(t, deleteErr("delete grupo", otro), otro)
}

func TestFiltro(t *testing.T) {
	var f filtro
	assert.Equal(t, "", f.where())

	f.add("a.grupo_id = ?", "g1")
	f.add("(a.codigo ILIKE ? OR a.descripcion ILIKE ?)", "%x%")
	pag := f.page(20, 40)

	assert.Equal(t, " WHERE a.grupo_id = $1 AND (a.codigo ILIKE $2 OR a.descripcion ILIKE $2)", f.where())
	assert.Equal(t, " LIMIT $3 OFFSET $4", pag)
	assert.Equal(t, []any{"g1", "%x%", 20, 40}, f.args)
}
