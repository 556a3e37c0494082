package entity

// GrupoArticulo primer nivel de la clasificación de artículos.
type GrupoArticulo struct {
	ID     string
	Codigo string // hasta 5 caracteres
	Nombre string
	Estado EstadoEntidad
}
