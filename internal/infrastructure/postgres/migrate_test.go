package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigracionesEmbebidas(t *testing.T) {
	names, err := migrationNames()
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "001_init.sql", names[0])

	sql, err := migrationsFS.ReadFile("migrations/001_init.sql")
	require.NoError(t, err)
	for _, tabla := range []string{"articulos", "lista_precios", "ordenes_compra_cliente", "items_ordenes_compra_cliente"} {
		assert.True(t, strings.Contains(string(sql), "CREATE TABLE IF NOT EXISTS "+tabla+" "), tabla)
	}
	assert.Contains(t, string(sql), "ON DELETE CASCADE")
	assert.Contains(t, string(sql), "CHECK (stock >= 0)")
}
