package entity

// Vendedor asesor comercial asignado a las órdenes. Correo es único.
type Vendedor struct {
	ID     string
	Nombre string
	Correo string
	Estado EstadoEntidad
}
