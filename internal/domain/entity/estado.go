package entity

// EstadoEntidad estado de registros maestros (grupos, artículos, clientes...).
type EstadoEntidad int

const (
	EstadoInactivo EstadoEntidad = 0
	EstadoActivo   EstadoEntidad = 1
)

// Display devuelve la etiqueta legible del estado.
func (e EstadoEntidad) Display() string {
	switch e {
	case EstadoActivo:
		return "Activo"
	case EstadoInactivo:
		return "Inactivo"
	default:
		return "Desconocido"
	}
}

// Valid indica si el valor es uno de los estados definidos.
func (e EstadoEntidad) Valid() bool {
	return e == EstadoActivo || e == EstadoInactivo
}

// EstadoOrden ciclo de vida de una orden de compra de cliente.
type EstadoOrden int

const (
	OrdenPendiente  EstadoOrden = 1
	OrdenConfirmada EstadoOrden = 2
	OrdenDespachada EstadoOrden = 3
	OrdenEntregada  EstadoOrden = 4
	OrdenAnulada    EstadoOrden = 5
)

// Display devuelve la etiqueta legible del estado (estado_display).
func (e EstadoOrden) Display() string {
	switch e {
	case OrdenPendiente:
		return "Pendiente"
	case OrdenConfirmada:
		return "Confirmada"
	case OrdenDespachada:
		return "Despachada"
	case OrdenEntregada:
		return "Entregada"
	case OrdenAnulada:
		return "Anulada"
	default:
		return "Desconocido"
	}
}

// Valid indica si el valor es uno de los estados definidos.
func (e EstadoOrden) Valid() bool {
	return e >= OrdenPendiente && e <= OrdenAnulada
}
