package entity

// Cliente comprador; referencia un tipo de identificación y un canal.
type Cliente struct {
	ID                   string
	TipoIdentificacionID string
	NroIdentificacion    string // hasta 11 caracteres
	Nombres              string
	Direccion            string
	CorreoElectronico    string
	NroMovil             string // hasta 15 caracteres
	CanalID              string
	Estado               EstadoEntidad
}
