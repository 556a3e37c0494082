package dto

import "time"

// UsuarioResponse salida de un usuario (sin password).
type UsuarioResponse struct {
	ID        string    `json:"id"`
	Correo    string    `json:"correo"`
	Nombre    string    `json:"nombre"`
	Rol       string    `json:"rol"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Correo   string `json:"correo" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}

// CreateUsuarioRequest entrada para registrar un usuario (solo admin).
type CreateUsuarioRequest struct {
	Correo   string `json:"correo" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8"`
	Nombre   string `json:"nombre" validate:"required,max=150"`
	Rol      string `json:"rol" validate:"omitempty,oneof=admin vendedor"`
}
