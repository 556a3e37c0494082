package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAdmin    = "admin"
	RolVendedor = "vendedor"
)

// Usuario cuenta que opera el sistema; se usa para el creado_por de órdenes e ítems.
type Usuario struct {
	ID           string
	Correo       string
	PasswordHash string // bcrypt
	Nombre       string
	Rol          string
	Activo       bool
	CreatedAt    time.Time
}
