package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-api/internal/application/auth"
	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/infrastructure/memoria"
	pkgjwt "github.com/jhoicas/pos-api/pkg/jwt"
)

const secret = "test-secret"

type contador map[string]int

func (c contador) LoginIntento(r string) { c[r]++ }

func nuevoAuth(t *testing.T) (*auth.AuthUseCase, *memoria.UsuarioRepo, contador) {
	t.Helper()
	repo := memoria.NewUsuarioRepository(memoria.NewStore())
	c := contador{}
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "pos-api-test"}, c)
	return uc, repo, c
}

func TestLogin_GeneraTokenConRol(t *testing.T) {
	uc, _, c := nuevoAuth(t)
	ctx := context.Background()
	u, err := uc.RegistrarUsuario(ctx, dto.CreateUsuarioRequest{Correo: " Admin@POS.co ", Password: "secreto123", Nombre: "Admin", Rol: "admin"})
	require.NoError(t, err)
	assert.Equal(t, "admin@pos.co", u.Correo)

	res, err := uc.Login(ctx, dto.LoginRequest{Correo: "ADMIN@pos.co", Password: "secreto123"})
	require.NoError(t, err)
	userID, rol, err := pkgjwt.Parse(secret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, userID)
	assert.Equal(t, "admin", rol)
	assert.Equal(t, 1, c["ok"])

	me, err := uc.Me(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Admin", me.Nombre)
}

func TestLogin_Errores(t *testing.T) {
	uc, repo, c := nuevoAuth(t)
	ctx := context.Background()
	u, err := uc.RegistrarUsuario(ctx, dto.CreateUsuarioRequest{Correo: "ven@pos.co", Password: "secreto123", Nombre: "Vendedor"})
	require.NoError(t, err)
	assert.Equal(t, "vendedor", u.Rol)

	_, err = uc.Login(ctx, dto.LoginRequest{Correo: "otro@pos.co", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.Login(ctx, dto.LoginRequest{Correo: "ven@pos.co", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, 2, c["credenciales"])

	guardado, _ := repo.GetByID(ctx, u.ID)
	guardado.Activo = false
	require.NoError(t, repo.Update(ctx, guardado))
	_, err = uc.Login(ctx, dto.LoginRequest{Correo: "ven@pos.co", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRegistrarUsuario_Validaciones(t *testing.T) {
	uc, _, _ := nuevoAuth(t)
	ctx := context.Background()
	_, err := uc.RegistrarUsuario(ctx, dto.CreateUsuarioRequest{Correo: "a@pos.co", Password: "secreto123", Nombre: "A"})
	require.NoError(t, err)

	_, err = uc.RegistrarUsuario(ctx, dto.CreateUsuarioRequest{Correo: "A@pos.co", Password: "secreto123", Nombre: "B"})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Has("correo", domain.CodeDuplicate))

	_, err = uc.RegistrarUsuario(ctx, dto.CreateUsuarioRequest{Correo: "no-correo", Password: "corta", Nombre: ""})
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Has("correo", domain.CodeEmail))
	assert.True(t, verr.Has("password", domain.CodeMin))
	assert.True(t, verr.Has("nombre", domain.CodeRequired))
}
