package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/pkg/jwt"
	"github.com/jhoicas/pos-api/pkg/validation"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Metricas contador de intentos de login. Puede ser nil.
type Metricas interface {
	LoginIntento(resultado string)
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	usuarios repository.UsuarioRepository
	jwtCfg   JWTConfig
	metricas Metricas
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarios repository.UsuarioRepository, jwtCfg JWTConfig, metricas Metricas) *AuthUseCase {
	return &AuthUseCase{usuarios: usuarios, jwtCfg: jwtCfg, metricas: metricas}
}

// RegistrarUsuario crea un usuario: hashea password con bcrypt y persiste.
// El correo se guarda en minúsculas y es único.
func (uc *AuthUseCase) RegistrarUsuario(ctx context.Context, in dto.CreateUsuarioRequest) (*dto.UsuarioResponse, error) {
	in.Correo = strings.ToLower(validation.Normalize(in.Correo))
	in.Nombre = validation.Normalize(in.Nombre)
	if err := dto.Validate(in).OrNil(); err != nil {
		return nil, err
	}
	existing, err := uc.usuarios.GetByCorreo(ctx, in.Correo)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.FieldErr("correo", domain.CodeDuplicate, "Ya existe un usuario con este correo.")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	rol := in.Rol
	if rol == "" {
		rol = entity.RolVendedor
	}
	u := &entity.Usuario{
		ID:           uuid.New().String(),
		Correo:       in.Correo,
		PasswordHash: string(hash),
		Nombre:       in.Nombre,
		Rol:          rol,
		Activo:       true,
		CreatedAt:    time.Now(),
	}
	if err := uc.usuarios.Create(ctx, u); err != nil {
		return nil, err
	}
	return toUsuarioResponse(u), nil
}

// Login verifica correo/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	in.Correo = strings.ToLower(validation.Normalize(in.Correo))
	if err := dto.Validate(in).OrNil(); err != nil {
		return nil, err
	}
	u, err := uc.usuarios.GetByCorreo(ctx, in.Correo)
	if err != nil {
		return nil, err
	}
	if u == nil {
		uc.contar("credenciales")
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		uc.contar("credenciales")
		return nil, domain.ErrUnauthorized
	}
	if !u.Activo {
		uc.contar("inactivo")
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.contar("ok")
	return &dto.LoginResponse{
		Token:   token,
		Usuario: *toUsuarioResponse(u),
	}, nil
}

// Me devuelve el usuario autenticado.
func (uc *AuthUseCase) Me(ctx context.Context, id string) (*dto.UsuarioResponse, error) {
	u, err := uc.usuarios.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUsuarioResponse(u), nil
}

func (uc *AuthUseCase) contar(resultado string) {
	if uc.metricas != nil {
		uc.metricas.LoginIntento(resultado)
	}
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:        u.ID,
		Correo:    u.Correo,
		Nombre:    u.Nombre,
		Rol:       u.Rol,
		Activo:    u.Activo,
		CreatedAt: u.CreatedAt,
	}
}
