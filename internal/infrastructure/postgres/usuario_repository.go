package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

const usuarioCols = `id, correo, password_hash, nombre, rol, activo, created_at`

// Create persiste un nuevo usuario. Correo duplicado -> domain.ErrDuplicate.
func (r *UsuarioRepo) Create(ctx context.Context, u *entity.Usuario) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO usuarios (`+usuarioCols+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Correo, u.PasswordHash, u.Nombre, u.Rol, u.Activo, u.CreatedAt,
	)
	if err != nil {
		return writeErr("insert usuario", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UsuarioRepo) GetByID(ctx context.Context, id string) (*entity.Usuario, error) {
	return r.getBy(ctx, `id = $1`, id)
}

// GetByCorreo obtiene un usuario por correo (sin distinguir mayúsculas).
func (r *UsuarioRepo) GetByCorreo(ctx context.Context, correo string) (*entity.Usuario, error) {
	return r.getBy(ctx, `lower(correo) = lower($1)`, correo)
}

func (r *UsuarioRepo) getBy(ctx context.Context, cond, val string) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.q.QueryRow(ctx, `SELECT `+usuarioCols+` FROM usuarios WHERE `+cond, val).Scan(
		&u.ID, &u.Correo, &u.PasswordHash, &u.Nombre, &u.Rol, &u.Activo, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// Update actualiza nombre, rol, estado y hash de password.
func (r *UsuarioRepo) Update(ctx context.Context, u *entity.Usuario) error {
	_, err := r.q.Exec(ctx,
		`UPDATE usuarios SET correo = $2, password_hash = $3, nombre = $4, rol = $5, activo = $6 WHERE id = $1`,
		u.ID, u.Correo, u.PasswordHash, u.Nombre, u.Rol, u.Activo,
	)
	if err != nil {
		return writeErr("update usuario", err)
	}
	return nil
}
