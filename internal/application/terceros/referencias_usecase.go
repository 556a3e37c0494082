package terceros

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/pkg/validation"
)

// ReferenciasUseCase mantiene los datos de referencia de clientes: tipos de identificación y canales.
type ReferenciasUseCase struct {
	tipos    repository.TipoIdentificacionRepository
	canales  repository.CanalRepository
	clientes repository.ClienteRepository
}

// NewReferenciasUseCase construye el caso de uso.
func NewReferenciasUseCase(tipos repository.TipoIdentificacionRepository, canales repository.CanalRepository, clientes repository.ClienteRepository) *ReferenciasUseCase {
	return &ReferenciasUseCase{tipos: tipos, canales: canales, clientes: clientes}
}

// CreateTipo crea un tipo de identificación.
func (uc *ReferenciasUseCase) CreateTipo(ctx context.Context, in dto.TipoIdentificacionRequest) (*dto.TipoIdentificacionResponse, error) {
	in.NombreTipo = validation.Normalize(in.NombreTipo)
	in.Descripcion = validation.Normalize(in.Descripcion)
	if err := dto.Validate(in).OrNil(); err != nil {
		return nil, err
	}
	t := &entity.TipoIdentificacion{
		ID:          uuid.New().String(),
		Nombre:      in.NombreTipo,
		Descripcion: in.Descripcion,
		Estado:      estadoEntidad(in.Estado, entity.EstadoActivo),
	}
	if err := uc.tipos.Create(ctx, t); err != nil {
		return nil, err
	}
	return toTipoResponse(t), nil
}

// GetTipo obtiene un tipo de identificación.
func (uc *ReferenciasUseCase) GetTipo(ctx context.Context, id string) (*dto.TipoIdentificacionResponse, error) {
	t, err := uc.tipos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return toTipoResponse(t), nil
}

// ListTipos lista los tipos por nombre.
func (uc *ReferenciasUseCase) ListTipos(ctx context.Context) ([]dto.TipoIdentificacionResponse, error) {
	list, err := uc.tipos.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TipoIdentificacionResponse, 0, len(list))
	for _, t := range list {
		out = append(out, *toTipoResponse(t))
	}
	return out, nil
}

// UpdateTipo reemplaza nombre, descripción y estado.
func (uc *ReferenciasUseCase) UpdateTipo(ctx context.Context, id string, in dto.TipoIdentificacionRequest) (*dto.TipoIdentificacionResponse, error) {
	in.NombreTipo = validation.Normalize(in.NombreTipo)
	in.Descripcion = validation.Normalize(in.Descripcion)
	if err := dto.Validate(in).OrNil(); err != nil {
		return nil, err
	}
	t, err := uc.tipos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	t.Nombre = in.NombreTipo
	t.Descripcion = in.Descripcion
	t.Estado = estadoEntidad(in.Estado, t.Estado)
	if err := uc.tipos.Update(ctx, t); err != nil {
		return nil, err
	}
	return toTipoResponse(t), nil
}

// DeleteTipo elimina un tipo; se rechaza si algún cliente lo usa.
func (uc *ReferenciasUseCase) DeleteTipo(ctx context.Context, id string) error {
	t, err := uc.tipos.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNotFound
	}
	used, err := uc.clientes.ExistsByTipoIdentificacion(ctx, id)
	if err != nil {
		return err
	}
	if used {
		return domain.ErrEnUso
	}
	return uc.tipos.Delete(ctx, id)
}

// CreateCanal crea un canal con el código indicado.
func (uc *ReferenciasUseCase) CreateCanal(ctx context.Context, in dto.CreateCanalRequest) (*dto.CanalResponse, error) {
	in.CanalID = validation.Normalize(in.CanalID)
	in.NombreCanal = validation.Normalize(in.NombreCanal)
	if err := dto.Validate(in).OrNil(); err != nil {
		return nil, err
	}
	c := &entity.CanalCliente{ID: in.CanalID, Nombre: in.NombreCanal}
	if err := uc.canales.Create(ctx, c); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.FieldErr("canal_id", domain.CodeDuplicate, "Ya existe un canal con este código.")
		}
		return nil, err
	}
	return toCanalResponse(c), nil
}

// GetCanal obtiene un canal.
func (uc *ReferenciasUseCase) GetCanal(ctx context.Context, id string) (*dto.CanalResponse, error) {
	c, err := uc.canales.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toCanalResponse(c), nil
}

// ListCanales lista los canales por nombre.
func (uc *ReferenciasUseCase) ListCanales(ctx context.Context) ([]dto.CanalResponse, error) {
	list, err := uc.canales.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CanalResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCanalResponse(c))
	}
	return out, nil
}

// UpdateCanal renombra un canal.
func (uc *ReferenciasUseCase) UpdateCanal(ctx context.Context, id string, in dto.UpdateCanalRequest) (*dto.CanalResponse, error) {
	in.NombreCanal = validation.Normalize(in.NombreCanal)
	if err := dto.Validate(in).OrNil(); err != nil {
		return nil, err
	}
	c, err := uc.canales.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	c.Nombre = in.NombreCanal
	if err := uc.canales.Update(ctx, c); err != nil {
		return nil, err
	}
	return toCanalResponse(c), nil
}

// DeleteCanal elimina un canal; se rechaza si algún cliente lo usa.
func (uc *ReferenciasUseCase) DeleteCanal(ctx context.Context, id string) error {
	c, err := uc.canales.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	used, err := uc.clientes.ExistsByCanal(ctx, id)
	if err != nil {
		return err
	}
	if used {
		return domain.ErrEnUso
	}
	return uc.canales.Delete(ctx, id)
}
