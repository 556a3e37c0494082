package entity

// LineaArticulo subcategoría de un grupo. Un artículo con grupo y línea exige que la línea pertenezca a ese grupo.
type LineaArticulo struct {
	ID      string
	Codigo  string // hasta 10 caracteres
	GrupoID string
	Nombre  string
	Estado  EstadoEntidad
}
