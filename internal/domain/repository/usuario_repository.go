package repository

import (
	"context"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para usuarios del sistema.
type UsuarioRepository interface {
	Create(ctx context.Context, u *entity.Usuario) error
	GetByID(ctx context.Context, id string) (*entity.Usuario, error)
	GetByCorreo(ctx context.Context, correo string) (*entity.Usuario, error)
	Update(ctx context.Context, u *entity.Usuario) error
}
