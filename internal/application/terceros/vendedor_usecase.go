package terceros

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/pkg/validation"
)

// VendedorUseCase casos de uso CRUD para vendedores. El correo es único.
type VendedorUseCase struct {
	repo    repository.VendedorRepository
	ordenes repository.OrdenRepository
}

// NewVendedorUseCase construye el caso de uso.
func NewVendedorUseCase(repo repository.VendedorRepository, ordenes repository.OrdenRepository) *VendedorUseCase {
	return &VendedorUseCase{repo: repo, ordenes: ordenes}
}

// Create crea un vendedor.
func (uc *VendedorUseCase) Create(ctx context.Context, in dto.CreateVendedorRequest) (*dto.VendedorResponse, error) {
	in.Nombre = validation.Normalize(in.Nombre)
	in.Correo = strings.ToLower(validation.Normalize(in.Correo))
	verr := dto.Validate(in)
	if !verr.HasField("correo") {
		existing, err := uc.repo.GetByCorreo(ctx, in.Correo)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			verr.Fields = append(verr.Fields, correoDuplicado().Fields...)
		}
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	v := &entity.Vendedor{
		ID:     uuid.New().String(),
		Nombre: in.Nombre,
		Correo: in.Correo,
		Estado: estadoEntidad(in.Estado, entity.EstadoActivo),
	}
	if err := uc.repo.Create(ctx, v); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, correoDuplicado()
		}
		return nil, err
	}
	return toVendedorResponse(v), nil
}

// GetByID obtiene un vendedor.
func (uc *VendedorUseCase) GetByID(ctx context.Context, id string) (*dto.VendedorResponse, error) {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	return toVendedorResponse(v), nil
}

// List lista vendedores por nombre.
func (uc *VendedorUseCase) List(ctx context.Context, limit, offset int) ([]dto.VendedorResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VendedorResponse, 0, len(list))
	for _, v := range list {
		out = append(out, *toVendedorResponse(v))
	}
	return out, nil
}

// Update actualiza parcialmente un vendedor.
func (uc *VendedorUseCase) Update(ctx context.Context, id string, in dto.UpdateVendedorRequest) (*dto.VendedorResponse, error) {
	in.Nombre = validation.NormalizePtr(in.Nombre)
	if in.Correo != nil {
		c := strings.ToLower(validation.Normalize(*in.Correo))
		in.Correo = &c
	}
	if err := dto.Validate(in).OrNil(); err != nil {
		return nil, err
	}
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	if in.Correo != nil && *in.Correo != v.Correo {
		existing, err := uc.repo.GetByCorreo(ctx, *in.Correo)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != v.ID {
			return nil, correoDuplicado()
		}
		v.Correo = *in.Correo
	}
	if in.Nombre != nil {
		v.Nombre = *in.Nombre
	}
	v.Estado = estadoEntidad(in.Estado, v.Estado)
	if err := uc.repo.Update(ctx, v); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, correoDuplicado()
		}
		return nil, err
	}
	return toVendedorResponse(v), nil
}

// Delete elimina un vendedor; se rechaza si tiene órdenes.
func (uc *VendedorUseCase) Delete(ctx context.Context, id string) error {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if v == nil {
		return domain.ErrNotFound
	}
	used, err := uc.ordenes.ExistsByVendedor(ctx, id)
	if err != nil {
		return err
	}
	if used {
		return domain.ErrEnUso
	}
	return uc.repo.Delete(ctx, id)
}

func correoDuplicado() *domain.ValidationError {
	return domain.FieldErr("correo", domain.CodeDuplicate, "Ya existe un vendedor con este correo.")
}
