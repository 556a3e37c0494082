package catalogo

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

// GrupoUseCase casos de uso CRUD para grupos de artículos.
type GrupoUseCase struct {
	repo      repository.GrupoRepository
	lineas    repository.LineaRepository
	articulos repository.ArticuloRepository
}

// NewGrupoUseCase construye el caso de uso.
func NewGrupoUseCase(repo repository.GrupoRepository, lineas repository.LineaRepository, articulos repository.ArticuloRepository) *GrupoUseCase {
	return &GrupoUseCase{repo: repo, lineas: lineas, articulos: articulos}
}

// Create crea un grupo. El código es único.
func (uc *GrupoUseCase) Create(ctx context.Context, in dto.CreateGrupoRequest) (*dto.GrupoResponse, error) {
	in.CodigoGrupo = validation.Normalize(in.CodigoGrupo)
	in.NombreGrupo = validation.Normalize(in.NombreGrupo)
	verr := dto.Validate(in)
	if !verr.HasField("codigo_grupo") {
		if err := uc.checkCodigo(ctx, in.CodigoGrupo, "", verr); err != nil {
			return nil, err
		}
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	g := &entity.GrupoArticulo{
		ID:     uuid.New().String(),
		Codigo: in.CodigoGrupo,
		Nombre: in.NombreGrupo,
		Estado: estadoEntidad(in.Estado, entity.EstadoActivo),
	}
	if err := uc.repo.Create(ctx, g); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, codigoGrupoDuplicado()
		}
		return nil, err
	}
	return toGrupoResponse(g), nil
}

// GetByID obtiene un grupo.
func (uc *GrupoUseCase) GetByID(ctx context.Context, id string) (*dto.GrupoResponse, error) {
	g, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, domain.ErrNotFound
	}
	return toGrupoResponse(g), nil
}

// List lista los grupos ordenados por código.
func (uc *GrupoUseCase) List(ctx context.Context, limit, offset int) ([]dto.GrupoResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GrupoResponse, 0, len(list))
	for _, g := range list {
		out = append(out, *toGrupoResponse(g))
	}
	return out, nil
}

// Update actualiza parcialmente un grupo.
func (uc *GrupoUseCase) Update(ctx context.Context, id string, in dto.UpdateGrupoRequest) (*dto.GrupoResponse, error) {
	in.CodigoGrupo = validation.NormalizePtr(in.CodigoGrupo)
	in.NombreGrupo = validation.NormalizePtr(in.NombreGrupo)
	if err := dto.Validate(in).OrNil(); err != nil {
		return nil, err
	}
	g, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, domain.ErrNotFound
	}
	if in.CodigoGrupo != nil && *in.CodigoGrupo != g.Codigo {
		verr := domain.NewValidationError()
		if err := uc.checkCodigo(ctx, *in.CodigoGrupo, g.ID, verr); err != nil {
			return nil, err
		}
		if err := verr.OrNil(); err != nil {
			return nil, err
		}
		g.Codigo = *in.CodigoGrupo
	}
	if in.NombreGrupo != nil {
		g.Nombre = *in.NombreGrupo
	}
	g.Estado = estadoEntidad(in.Estado, g.Estado)
	if err := uc.repo.Update(ctx, g); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, codigoGrupoDuplicado()
		}
		return nil, err
	}
	return toGrupoResponse(g), nil
}

// Delete elimina un grupo. Se rechaza si tiene líneas o artículos.
func (uc *GrupoUseCase) Delete(ctx context.Context, id string) error {
	g, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if g == nil {
		return domain.ErrNotFound
	}
	if used, err := uc.lineas.ExistsByGrupo(ctx, id); err != nil {
		return err
	} else if used {
		return domain.ErrEnUso
	}
	if used, err := uc.articulos.ExistsByGrupo(ctx, id); err != nil {
		return err
	} else if used {
		return domain.ErrEnUso
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *GrupoUseCase) checkCodigo(ctx context.Context, codigo, selfID string, verr *domain.ValidationError) error {
	existing, err := uc.repo.GetByCodigo(ctx, codigo)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		verr.Fields = append(verr.Fields, codigoGrupoDuplicado().Fields...)
	}
	return nil
}

func codigoGrupoDuplicado() *domain.ValidationError {
	return domain.FieldErr("codigo_grupo", domain.CodeDuplicate, "Ya existe un grupo con este código.")
}
