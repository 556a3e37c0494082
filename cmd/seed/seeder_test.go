package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-api/internal/application/auth"
	"github.com/jhoicas/pos-api/internal/application/catalogo"
	"github.com/jhoicas/pos-api/internal/application/terceros"
	"github.com/jhoicas/pos-api/internal/infrastructure/memoria"
	"github.com/jhoicas/pos-api/pkg/config"
	"github.com/jhoicas/pos-api/pkg/logger"
)

func TestReadCSV_Latin1(t *testing.T) {
	// "Cédula" en ISO-8859-1: é = 0xE9
	raw := "nombre;descripcion\nC\xe9dula;Documento nacional\n\n"
	rows, err := readCSV(strings.NewReader(raw), 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Cédula", rows[0][0])
}

func TestReadCSV_UTF8ConBOMyColumnasFaltantes(t *testing.T) {
	rows, err := readCSV(strings.NewReader("\xef\xbb\xbfcodigo;nombre\nABA;Añejos\n"), 2)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"ABA", "Añejos"}}, rows)

	_, err = readCSV(strings.NewReader("codigo;nombre\nABA\n"), 2)
	assert.Error(t, err)
}

func nuevoSeeder(t *testing.T, admin config.AdminConfig) *seeder {
	t.Helper()
	s := memoria.NewStore()
	grupos := memoria.NewGrupoRepository(s)
	lineas := memoria.NewLineaRepository(s)
	articulos := memoria.NewArticuloRepository(s)
	tipos := memoria.NewTipoIdentificacionRepository(s)
	canales := memoria.NewCanalRepository(s)
	usuarios := memoria.NewUsuarioRepository(s)
	return &seeder{
		log:         logger.Nop(),
		referencias: terceros.NewReferenciasUseCase(tipos, canales, memoria.NewClienteRepository(s)),
		grupoUC:     catalogo.NewGrupoUseCase(grupos, lineas, articulos),
		lineaUC:     catalogo.NewLineaUseCase(lineas, grupos, articulos),
		auth:        auth.NewAuthUseCase(usuarios, auth.JWTConfig{Secret: "x"}, nil),
		grupos:      grupos,
		lineas:      lineas,
		usuarios:    usuarios,
		admin:       admin,
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestSeeder_RunEsIdempotente(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tipos_identificacion.csv", "nombre;descripcion\nDNI;Documento nacional\nRUC;Registro \xfanico\n")
	writeFile(t, dir, "canales.csv", "canal_id;nombre\nBOD;Bodega\nMAY;Mayorista\n")
	writeFile(t, dir, "grupos.csv", "codigo;nombre\nABA;Abarrotes\nBEB;Bebidas\n")
	writeFile(t, dir, "lineas.csv", "codigo;codigo_grupo;nombre\nGRA;ABA;Granos\nGAS;BEB;Gaseosas\n")

	s := nuevoSeeder(t, config.AdminConfig{Correo: "Admin@POS.co", Password: "secreto123"})
	ctx := context.Background()

	res, err := s.run(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, resultado{tipos: 2, canales: 2, grupos: 2, lineas: 2, admin: true}, res)

	tipos, err := s.referencias.ListTipos(ctx)
	require.NoError(t, err)
	var nombres []string
	for _, tp := range tipos {
		nombres = append(nombres, tp.NombreTipo)
	}
	assert.Contains(t, nombres, "RUC")

	res, err = s.run(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, resultado{}, res, "la segunda ejecución no inserta nada")
}

func TestSeeder_LineaConGrupoInexistente(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "lineas.csv", "codigo;codigo_grupo;nombre\nGRA;XXX;Granos\n")

	_, err := nuevoSeeder(t, config.AdminConfig{}).run(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lineas.csv fila 2")
}

func TestSeeder_DirectorioVacio(t *testing.T) {
	res, err := nuevoSeeder(t, config.AdminConfig{}).run(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, resultado{}, res)
}
