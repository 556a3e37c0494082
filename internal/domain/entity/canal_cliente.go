package entity

// CanalCliente canal comercial del cliente (mayorista, detal...). ID de hasta 3 caracteres.
type CanalCliente struct {
	ID     string
	Nombre string
}
