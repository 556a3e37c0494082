package entity

// TipoIdentificacion tipo de documento del cliente (CC, NIT, CE...).
type TipoIdentificacion struct {
	ID          string
	Nombre      string
	Descripcion string
	Estado      EstadoEntidad
}
