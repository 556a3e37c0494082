package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-api/internal/application/auth"
	"github.com/jhoicas/pos-api/internal/application/catalogo"
	"github.com/jhoicas/pos-api/internal/application/pedidos"
	"github.com/jhoicas/pos-api/internal/application/terceros"
	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	GrupoUC       *catalogo.GrupoUseCase
	LineaUC       *catalogo.LineaUseCase
	ArticuloUC    *catalogo.ArticuloUseCase
	ReferenciasUC *terceros.ReferenciasUseCase
	VendedorUC    *terceros.VendedorUseCase
	ClienteUC     *terceros.ClienteUseCase
	OrdenUC       *pedidos.OrdenUseCase
	PDFUC         *pedidos.PDFUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
//
// Lecturas y órdenes: cualquier usuario autenticado.
// Escrituras de catálogo, terceros y alta de usuarios: solo admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	admin := RequireRole(entity.RolAdmin)

	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/auth/usuarios", admin, authHandler.Register)

	// Catálogo
	grupos := protected.Group("/grupos")
	grupoHandler := NewGrupoHandler(deps.GrupoUC)
	grupos.Get("/", grupoHandler.List)
	grupos.Get("/:id", grupoHandler.GetByID)
	grupos.Post("/", admin, grupoHandler.Create)
	grupos.Patch("/:id", admin, grupoHandler.Update)
	grupos.Delete("/:id", admin, grupoHandler.Delete)

	lineas := protected.Group("/lineas")
	lineaHandler := NewLineaHandler(deps.LineaUC)
	lineas.Get("/", lineaHandler.List)
	lineas.Get("/:id", lineaHandler.GetByID)
	lineas.Post("/", admin, lineaHandler.Create)
	lineas.Patch("/:id", admin, lineaHandler.Update)
	lineas.Delete("/:id", admin, lineaHandler.Delete)

	articulos := protected.Group("/articulos")
	articuloHandler := NewArticuloHandler(deps.ArticuloUC)
	articulos.Get("/", articuloHandler.List)
	articulos.Get("/:id", articuloHandler.GetByID)
	articulos.Post("/", admin, articuloHandler.Create)
	articulos.Patch("/:id", admin, articuloHandler.Update)
	articulos.Delete("/:id", admin, articuloHandler.Delete)
	articulos.Put("/:id/precios", admin, articuloHandler.UpdatePrecios)

	// Terceros
	refHandler := NewReferenciasHandler(deps.ReferenciasUC)
	tipos := protected.Group("/tipos-identificacion")
	tipos.Get("/", refHandler.ListTipos)
	tipos.Get("/:id", refHandler.GetTipo)
	tipos.Post("/", admin, refHandler.CreateTipo)
	tipos.Put("/:id", admin, refHandler.UpdateTipo)
	tipos.Delete("/:id", admin, refHandler.DeleteTipo)

	canales := protected.Group("/canales")
	canales.Get("/", refHandler.ListCanales)
	canales.Get("/:id", refHandler.GetCanal)
	canales.Post("/", admin, refHandler.CreateCanal)
	canales.Put("/:id", admin, refHandler.UpdateCanal)
	canales.Delete("/:id", admin, refHandler.DeleteCanal)

	vendedores := protected.Group("/vendedores")
	vendedorHandler := NewVendedorHandler(deps.VendedorUC)
	vendedores.Get("/", vendedorHandler.List)
	vendedores.Get("/:id", vendedorHandler.GetByID)
	vendedores.Post("/", admin, vendedorHandler.Create)
	vendedores.Patch("/:id", admin, vendedorHandler.Update)
	vendedores.Delete("/:id", admin, vendedorHandler.Delete)

	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Post("/", admin, clienteHandler.Create)
	clientes.Patch("/:id", admin, clienteHandler.Update)
	clientes.Delete("/:id", admin, clienteHandler.Delete)

	// Pedidos
	ordenes := protected.Group("/ordenes")
	ordenHandler := NewOrdenHandler(deps.OrdenUC, deps.PDFUC)
	ordenes.Post("/", ordenHandler.Create)
	ordenes.Get("/", ordenHandler.List)
	ordenes.Get("/:id", ordenHandler.GetByID)
	ordenes.Patch("/:id", ordenHandler.Update)
	ordenes.Delete("/:id", ordenHandler.Delete)
	ordenes.Get("/:id/pdf", ordenHandler.DescargarPDF)
	ordenes.Post("/:id/items", ordenHandler.AgregarItem)
	ordenes.Patch("/:id/items/:item_id", ordenHandler.ActualizarItem)
	ordenes.Delete("/:id/items/:item_id", ordenHandler.EliminarItem)
}
