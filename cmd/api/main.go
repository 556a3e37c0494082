package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	_ "github.com/jhoicas/pos-api/docs"
	"github.com/jhoicas/pos-api/internal/application/auth"
	"github.com/jhoicas/pos-api/internal/application/catalogo"
	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/pedidos"
	"github.com/jhoicas/pos-api/internal/application/terceros"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/pos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/pos-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/pos-api/internal/interfaces/http"
	"github.com/jhoicas/pos-api/pkg/config"
	"github.com/jhoicas/pos-api/pkg/logger"
)

// @title                       POS API
// @version                     1.0
// @description                 Catálogo, clientes y órdenes de compra de un punto de venta.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	var r repos
	switch cfg.DB.Driver {
	case "memory":
		log.Warn().Msg("DB_DRIVER=memory: los datos se pierden al detener el proceso")
		r = memoriaRepos()
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if cfg.DB.AutoMigrate {
			if err := postgres.Migrate(ctx, pool, log.Zerolog()); err != nil {
				log.Fatal().Err(err).Msg("migraciones")
			}
		}
		r = postgresRepos(pool)
	}

	// Métricas: nil desactiva los contadores de negocio en los casos de uso.
	var (
		m        *metrics.Metrics
		ordenMet pedidos.Metricas
		loginMet auth.Metricas
	)
	if cfg.Metrics.Enabled {
		m = metrics.New("pos")
		ordenMet, loginMet = m, m
	}

	authUC := auth.NewAuthUseCase(r.usuarios, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, loginMet)
	if err := ensureAdmin(ctx, authUC, r, cfg.Admin); err != nil {
		log.Fatal().Err(err).Msg("alta de administrador")
	}

	ordenUC := pedidos.NewOrdenUseCase(
		r.tx, r.ordenes, r.items, r.clientes, r.vendedores, r.articulos,
		pedidos.Config{PrecioEstricto: cfg.Pedidos.PrecioEstricto},
		ordenMet,
	)
	pdfUC := pedidos.NewPDFUseCase(r.ordenes, r.items, r.clientes, infrapdf.NewMarotoPDFGenerator(cfg.Pedidos.NombreNegocio))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log))
	if m != nil {
		app.Use(m.Middleware())
		app.Get(cfg.Metrics.Path, m.Handler())
	}

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "db_driver": cfg.DB.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		GrupoUC:       catalogo.NewGrupoUseCase(r.grupos, r.lineas, r.articulos),
		LineaUC:       catalogo.NewLineaUseCase(r.lineas, r.grupos, r.articulos),
		ArticuloUC:    catalogo.NewArticuloUseCase(r.tx, r.articulos, r.grupos, r.lineas, r.precios, r.items),
		ReferenciasUC: terceros.NewReferenciasUseCase(r.tipos, r.canales, r.clientes),
		VendedorUC:    terceros.NewVendedorUseCase(r.vendedores, r.ordenes),
		ClienteUC:     terceros.NewClienteUseCase(r.clientes, r.tipos, r.canales, r.ordenes),
		OrdenUC:       ordenUC,
		PDFUC:         pdfUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// ensureAdmin crea el administrador configurado si aún no existe.
func ensureAdmin(ctx context.Context, uc *auth.AuthUseCase, r repos, adm config.AdminConfig) error {
	if adm.Correo == "" || adm.Password == "" {
		return nil
	}
	u, err := r.usuarios.GetByCorreo(ctx, strings.ToLower(strings.TrimSpace(adm.Correo)))
	if err != nil || u != nil {
		return err
	}
	_, err = uc.RegistrarUsuario(ctx, dto.CreateUsuarioRequest{
		Correo:   adm.Correo,
		Password: adm.Password,
		Nombre:   "Administrador",
		Rol:      entity.RolAdmin,
	})
	return err
}
