package dto

import "github.com/shopspring/decimal"

// ── Grupos ───────────────────────────────────────────────────────────────────

// CreateGrupoRequest entrada para crear un grupo de artículos.
type CreateGrupoRequest struct {
	CodigoGrupo string `json:"codigo_grupo" validate:"required,max=5"`
	NombreGrupo string `json:"nombre_grupo" validate:"required,max=150"`
	Estado      *int   `json:"estado" validate:"omitempty,oneof=0 1"`
}

// UpdateGrupoRequest actualización parcial de un grupo.
type UpdateGrupoRequest struct {
	CodigoGrupo *string `json:"codigo_grupo" validate:"omitempty,min=1,max=5"`
	NombreGrupo *string `json:"nombre_grupo" validate:"omitempty,min=1,max=150"`
	Estado      *int    `json:"estado" validate:"omitempty,oneof=0 1"`
}

// GrupoResponse salida de un grupo.
type GrupoResponse struct {
	GrupoID       string `json:"grupo_id"`
	CodigoGrupo   string `json:"codigo_grupo"`
	NombreGrupo   string `json:"nombre_grupo"`
	Estado        int    `json:"estado"`
	EstadoDisplay string `json:"estado_display"`
}

// ── Líneas ───────────────────────────────────────────────────────────────────

// CreateLineaRequest entrada para crear una línea dentro de un grupo.
type CreateLineaRequest struct {
	CodigoLinea string `json:"codigo_linea" validate:"required,max=10"`
	GrupoID     string `json:"grupo_id" validate:"required,uuid"`
	NombreLinea string `json:"nombre_linea" validate:"required,max=150"`
	Estado      *int   `json:"estado" validate:"omitempty,oneof=0 1"`
}

// UpdateLineaRequest actualización parcial de una línea.
type UpdateLineaRequest struct {
	CodigoLinea *string `json:"codigo_linea" validate:"omitempty,min=1,max=10"`
	GrupoID     *string `json:"grupo_id" validate:"omitempty,uuid"`
	NombreLinea *string `json:"nombre_linea" validate:"omitempty,min=1,max=150"`
	Estado      *int    `json:"estado" validate:"omitempty,oneof=0 1"`
}

// LineaResponse salida de una línea.
type LineaResponse struct {
	LineaID       string `json:"linea_id"`
	CodigoLinea   string `json:"codigo_linea"`
	GrupoID       string `json:"grupo_id"`
	NombreLinea   string `json:"nombre_linea"`
	Estado        int    `json:"estado"`
	EstadoDisplay string `json:"estado_display"`
}

// ── Artículos ────────────────────────────────────────────────────────────────

// CreateArticuloRequest entrada para crear un artículo junto con su lista de precios (precio_1).
type CreateArticuloRequest struct {
	CodigoArticulo string          `json:"codigo_articulo" validate:"required,min=4,max=25"`
	CodigoBarras   string          `json:"codigo_barras" validate:"max=25"`
	Descripcion    string          `json:"descripcion" validate:"required,min=5,max=150"`
	Presentacion   string          `json:"presentacion" validate:"max=100"`
	GrupoID        string          `json:"grupo_id" validate:"required,uuid"`
	LineaID        string          `json:"linea_id" validate:"required,uuid"`
	Stock          decimal.Decimal `json:"stock" validate:"gte=0,decimal=12 2"`
	Imagen         string          `json:"imagen" validate:"max=255"`
	Precio1        decimal.Decimal `json:"precio_1" validate:"gte=0,decimal=12 2"`
}

// UpdateArticuloRequest actualización parcial de un artículo. Los precios se actualizan aparte.
type UpdateArticuloRequest struct {
	CodigoArticulo *string          `json:"codigo_articulo" validate:"omitempty,min=4,max=25"`
	CodigoBarras   *string          `json:"codigo_barras" validate:"omitempty,max=25"`
	Descripcion    *string          `json:"descripcion" validate:"omitempty,min=5,max=150"`
	Presentacion   *string          `json:"presentacion" validate:"omitempty,max=100"`
	GrupoID        *string          `json:"grupo_id" validate:"omitempty,uuid"`
	LineaID        *string          `json:"linea_id" validate:"omitempty,uuid"`
	Stock          *decimal.Decimal `json:"stock" validate:"omitempty,gte=0,decimal=12 2"`
	Imagen         *string          `json:"imagen" validate:"omitempty,max=255"`
	Estado         *int             `json:"estado" validate:"omitempty,oneof=0 1"`
}

// PreciosRequest actualiza cualquiera de los seis precios de un artículo.
type PreciosRequest struct {
	Precio1      *decimal.Decimal `json:"precio_1" validate:"omitempty,gte=0,decimal=12 2"`
	Precio2      *decimal.Decimal `json:"precio_2" validate:"omitempty,gte=0,decimal=12 2"`
	Precio3      *decimal.Decimal `json:"precio_3" validate:"omitempty,gte=0,decimal=12 2"`
	Precio4      *decimal.Decimal `json:"precio_4" validate:"omitempty,gte=0,decimal=12 2"`
	PrecioCompra *decimal.Decimal `json:"precio_compra" validate:"omitempty,gte=0,decimal=12 2"`
	PrecioCosto  *decimal.Decimal `json:"precio_costo" validate:"omitempty,gte=0,decimal=12 2"`
}

// GrupoRef grupo anidado en la salida de un artículo.
type GrupoRef struct {
	GrupoID     string `json:"grupo_id"`
	CodigoGrupo string `json:"codigo_grupo"`
	NombreGrupo string `json:"nombre_grupo"`
}

// LineaRef línea anidada en la salida de un artículo.
type LineaRef struct {
	LineaID     string `json:"linea_id"`
	CodigoLinea string `json:"codigo_linea"`
	NombreLinea string `json:"nombre_linea"`
}

// PreciosResponse lista de precios de un artículo.
type PreciosResponse struct {
	Precio1      decimal.Decimal `json:"precio_1"`
	Precio2      decimal.Decimal `json:"precio_2"`
	Precio3      decimal.Decimal `json:"precio_3"`
	Precio4      decimal.Decimal `json:"precio_4"`
	PrecioCompra decimal.Decimal `json:"precio_compra"`
	PrecioCosto  decimal.Decimal `json:"precio_costo"`
}

// ArticuloResponse salida completa de un artículo con referencias anidadas.
type ArticuloResponse struct {
	ArticuloID     string           `json:"articulo_id"`
	CodigoArticulo string           `json:"codigo_articulo"`
	CodigoBarras   string           `json:"codigo_barras"`
	Descripcion    string           `json:"descripcion"`
	Presentacion   string           `json:"presentacion"`
	Stock          decimal.Decimal  `json:"stock"`
	Imagen         string           `json:"imagen"`
	Estado         int              `json:"estado"`
	EstadoDisplay  string           `json:"estado_display"`
	Grupo          *GrupoRef        `json:"grupo"`
	Linea          *LineaRef        `json:"linea"`
	Precios        *PreciosResponse `json:"precios"`
}

// FieldMap expone los campos para proyección (?fields=). Grupo y línea viajan por nombre.
func (r ArticuloResponse) FieldMap() map[string]interface{} {
	m := map[string]interface{}{
		"articulo_id":     r.ArticuloID,
		"codigo_articulo": r.CodigoArticulo,
		"codigo_barras":   r.CodigoBarras,
		"descripcion":     r.Descripcion,
		"presentacion":    r.Presentacion,
		"stock":           r.Stock,
		"imagen":          r.Imagen,
		"estado":          r.Estado,
		"estado_display":  r.EstadoDisplay,
		"grupo":           nil,
		"linea":           nil,
		"precios":         r.Precios,
	}
	if r.Grupo != nil {
		m["grupo"] = r.Grupo.NombreGrupo
	}
	if r.Linea != nil {
		m["linea"] = r.Linea.NombreLinea
	}
	return m
}

// ArticuloListItem fila plana del listado de artículos.
type ArticuloListItem struct {
	ArticuloID     string           `json:"articulo_id"`
	CodigoArticulo string           `json:"codigo_articulo"`
	Descripcion    string           `json:"descripcion"`
	GrupoNombre    string           `json:"grupo_nombre"`
	LineaNombre    string           `json:"linea_nombre"`
	Stock          decimal.Decimal  `json:"stock"`
	Precio         *decimal.Decimal `json:"precio"`
}

// ArticuloListResponse lista paginada de artículos.
type ArticuloListResponse struct {
	Items []ArticuloListItem `json:"items"`
	Page  PageResponse       `json:"page"`
}
