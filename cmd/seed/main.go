// seed carga datos de referencia (tipos de identificación, canales, grupos y líneas) desde
// archivos CSV separados por ';' con encabezado. Acepta UTF-8 o ISO-8859-1 (exportaciones
// de Excel en español).
//
// Uso: go run ./cmd/seed [directorio]
// Por defecto lee ./seed. Archivos reconocidos (todos opcionales):
//
//	tipos_identificacion.csv  nombre;descripcion
//	canales.csv               canal_id;nombre
//	grupos.csv                codigo;nombre
//	lineas.csv                codigo;codigo_grupo;nombre
//
// Si ADMIN_CORREO y ADMIN_PASSWORD están definidos, crea además el usuario administrador.
package main

import (
	"context"
	"os"

	"github.com/jhoicas/pos-api/internal/application/auth"
	"github.com/jhoicas/pos-api/internal/application/catalogo"
	"github.com/jhoicas/pos-api/internal/application/terceros"
	"github.com/jhoicas/pos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/pos-api/pkg/config"
	"github.com/jhoicas/pos-api/pkg/logger"
)

func main() {
	dir := "seed"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	if err := postgres.Migrate(ctx, pool, log.Zerolog()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	grupos := postgres.NewGrupoRepository(pool)
	lineas := postgres.NewLineaRepository(pool)
	articulos := postgres.NewArticuloRepository(pool)
	tipos := postgres.NewTipoIdentificacionRepository(pool)
	canales := postgres.NewCanalRepository(pool)
	clientes := postgres.NewClienteRepository(pool)

	s := &seeder{
		log:         log,
		referencias: terceros.NewReferenciasUseCase(tipos, canales, clientes),
		grupoUC:     catalogo.NewGrupoUseCase(grupos, lineas, articulos),
		lineaUC:     catalogo.NewLineaUseCase(lineas, grupos, articulos),
		grupos:      grupos,
		lineas:      lineas,
		usuarios:    postgres.NewUsuarioRepository(pool),
		admin:       cfg.Admin,
	}
	s.auth = auth.NewAuthUseCase(s.usuarios, auth.JWTConfig{Secret: cfg.JWT.Secret}, nil)

	res, err := s.run(ctx, dir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", dir).Msg("seed")
	}
	log.Info().
		Int("tipos", res.tipos).
		Int("canales", res.canales).
		Int("grupos", res.grupos).
		Int("lineas", res.lineas).
		Bool("admin", res.admin).
		Msg("seed completado")
}
