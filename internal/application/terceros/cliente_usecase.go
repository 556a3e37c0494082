package terceros

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/pkg/validation"
)

// ClienteUseCase casos de uso CRUD para clientes.
type ClienteUseCase struct {
	repo    repository.ClienteRepository
	tipos   repository.TipoIdentificacionRepository
	canales repository.CanalRepository
	ordenes repository.OrdenRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(
	repo repository.ClienteRepository,
	tipos repository.TipoIdentificacionRepository,
	canales repository.CanalRepository,
	ordenes repository.OrdenRepository,
) *ClienteUseCase {
	return &ClienteUseCase{repo: repo, tipos: tipos, canales: canales, ordenes: ordenes}
}

// Create valida campos y luego que el tipo de identificación y el canal existan.
func (uc *ClienteUseCase) Create(ctx context.Context, in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	in.TipoIdentificacionID = validation.Normalize(in.TipoIdentificacionID)
	in.NroIdentificacion = validation.Normalize(in.NroIdentificacion)
	in.Nombres = validation.Normalize(in.Nombres)
	in.Direccion = validation.Normalize(in.Direccion)
	in.CorreoElectronico = validation.Normalize(in.CorreoElectronico)
	in.NroMovil = validation.Normalize(in.NroMovil)
	in.CanalID = validation.Normalize(in.CanalID)
	if err := dto.Validate(in).OrNil(); err != nil {
		return nil, err
	}
	if err := uc.checkReferencias(ctx, in.TipoIdentificacionID, in.CanalID); err != nil {
		return nil, err
	}
	c := &entity.Cliente{
		ID:                   uuid.New().String(),
		TipoIdentificacionID: in.TipoIdentificacionID,
		NroIdentificacion:    in.NroIdentificacion,
		Nombres:              in.Nombres,
		Direccion:            in.Direccion,
		CorreoElectronico:    in.CorreoElectronico,
		NroMovil:             in.NroMovil,
		CanalID:              in.CanalID,
		Estado:               estadoEntidad(in.Estado, entity.EstadoActivo),
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

// GetByID obtiene un cliente.
func (uc *ClienteUseCase) GetByID(ctx context.Context, id string) (*dto.ClienteResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toClienteResponse(c), nil
}

// List lista clientes ordenados por número de identificación.
func (uc *ClienteUseCase) List(ctx context.Context, f repository.ClienteFiltro) (*dto.ClienteListResponse, error) {
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := &dto.ClienteListResponse{
		Items: make([]dto.ClienteResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset},
	}
	for _, c := range list {
		out.Items = append(out.Items, *toClienteResponse(c))
	}
	return out, nil
}

// Update actualiza parcialmente un cliente.
func (uc *ClienteUseCase) Update(ctx context.Context, id string, in dto.UpdateClienteRequest) (*dto.ClienteResponse, error) {
	in.TipoIdentificacionID = validation.NormalizePtr(in.TipoIdentificacionID)
	in.NroIdentificacion = validation.NormalizePtr(in.NroIdentificacion)
	in.Nombres = validation.NormalizePtr(in.Nombres)
	in.Direccion = validation.NormalizePtr(in.Direccion)
	in.CorreoElectronico = validation.NormalizePtr(in.CorreoElectronico)
	in.NroMovil = validation.NormalizePtr(in.NroMovil)
	in.CanalID = validation.NormalizePtr(in.CanalID)
	if err := dto.Validate(in).OrNil(); err != nil {
		return nil, err
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.TipoIdentificacionID != nil {
		c.TipoIdentificacionID = *in.TipoIdentificacionID
	}
	if in.CanalID != nil {
		c.CanalID = *in.CanalID
	}
	if in.TipoIdentificacionID != nil || in.CanalID != nil {
		if err := uc.checkReferencias(ctx, c.TipoIdentificacionID, c.CanalID); err != nil {
			return nil, err
		}
	}
	if in.NroIdentificacion != nil {
		c.NroIdentificacion = *in.NroIdentificacion
	}
	if in.Nombres != nil {
		c.Nombres = *in.Nombres
	}
	if in.Direccion != nil {
		c.Direccion = *in.Direccion
	}
	if in.CorreoElectronico != nil {
		c.CorreoElectronico = *in.CorreoElectronico
	}
	if in.NroMovil != nil {
		c.NroMovil = *in.NroMovil
	}
	c.Estado = estadoEntidad(in.Estado, c.Estado)
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

// Delete elimina un cliente; se rechaza si tiene órdenes.
func (uc *ClienteUseCase) Delete(ctx context.Context, id string) error {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	used, err := uc.ordenes.ExistsByCliente(ctx, id)
	if err != nil {
		return err
	}
	if used {
		return domain.ErrEnUso
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *ClienteUseCase) checkReferencias(ctx context.Context, tipoID, canalID string) error {
	verr := domain.NewValidationError()
	t, err := uc.tipos.GetByID(ctx, tipoID)
	if err != nil {
		return err
	}
	if t == nil {
		verr.Add("tipo_identificacion_id", domain.CodeNotFound, "El tipo de identificación seleccionado no existe.")
	}
	c, err := uc.canales.GetByID(ctx, canalID)
	if err != nil {
		return err
	}
	if c == nil {
		verr.Add("canal_id", domain.CodeNotFound, "El canal seleccionado no existe.")
	}
	return verr.OrNil()
}
