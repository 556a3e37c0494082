package entity

import "github.com/shopspring/decimal"

// Articulo ítem vendible del catálogo. Codigo es único; Stock nunca es negativo.
type Articulo struct {
	ID           string
	Codigo       string
	CodigoBarras string
	Descripcion  string
	Presentacion string
	GrupoID      string
	LineaID      string
	Stock        decimal.Decimal
	Imagen       string
	Estado       EstadoEntidad
}

// ArticuloDetalle artículo con sus referencias resueltas para presentación.
// Linea, Grupo y Precios pueden ser nil si no se cargaron o no existen.
type ArticuloDetalle struct {
	Articulo
	Grupo   *GrupoArticulo
	Linea   *LineaArticulo
	Precios *ListaPrecios
}
