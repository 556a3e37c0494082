package catalogo

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/pkg/validation"
)

// LineaUseCase casos de uso CRUD para líneas de artículos.
type LineaUseCase struct {
	repo      repository.LineaRepository
	grupos    repository.GrupoRepository
	articulos repository.ArticuloRepository
}

// NewLineaUseCase construye el caso de uso.
func NewLineaUseCase(repo repository.LineaRepository, grupos repository.GrupoRepository, articulos repository.ArticuloRepository) *LineaUseCase {
	return &LineaUseCase{repo: repo, grupos: grupos, articulos: articulos}
}

// Create crea una línea dentro de un grupo existente.
func (uc *LineaUseCase) Create(ctx context.Context, in dto.CreateLineaRequest) (*dto.LineaResponse, error) {
	in.CodigoLinea = validation.Normalize(in.CodigoLinea)
	in.NombreLinea = validation.Normalize(in.NombreLinea)
	in.GrupoID = validation.Normalize(in.GrupoID)
	if err := dto.Validate(in).OrNil(); err != nil {
		return nil, err
	}
	if err := uc.checkGrupo(ctx, in.GrupoID); err != nil {
		return nil, err
	}
	l := &entity.LineaArticulo{
		ID:      uuid.New().String(),
		Codigo:  in.CodigoLinea,
		GrupoID: in.GrupoID,
		Nombre:  in.NombreLinea,
		Estado:  estadoEntidad(in.Estado, entity.EstadoActivo),
	}
	if err := uc.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return toLineaResponse(l), nil
}

// GetByID obtiene una línea.
func (uc *LineaUseCase) GetByID(ctx context.Context, id string) (*dto.LineaResponse, error) {
	l, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}
	return toLineaResponse(l), nil
}

// List lista líneas, opcionalmente de un solo grupo.
func (uc *LineaUseCase) List(ctx context.Context, grupoID string, limit, offset int) ([]dto.LineaResponse, error) {
	list, err := uc.repo.List(ctx, grupoID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LineaResponse, 0, len(list))
	for _, l := range list {
		out = append(out, *toLineaResponse(l))
	}
	return out, nil
}

// Update actualiza parcialmente una línea. No se puede mover de grupo una línea con artículos,
// porque dejaría artículos cuya línea no pertenece a su grupo.
func (uc *LineaUseCase) Update(ctx context.Context, id string, in dto.UpdateLineaRequest) (*dto.LineaResponse, error) {
	in.CodigoLinea = validation.NormalizePtr(in.CodigoLinea)
	in.NombreLinea = validation.NormalizePtr(in.NombreLinea)
	in.GrupoID = validation.NormalizePtr(in.GrupoID)
	if err := dto.Validate(in).OrNil(); err != nil {
		return nil, err
	}
	l, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}
	if in.GrupoID != nil && *in.GrupoID != l.GrupoID {
		if err := uc.checkGrupo(ctx, *in.GrupoID); err != nil {
			return nil, err
		}
		used, err := uc.articulos.ExistsByLinea(ctx, id)
		if err != nil {
			return nil, err
		}
		if used {
			return nil, domain.ErrEnUso
		}
		l.GrupoID = *in.GrupoID
	}
	if in.CodigoLinea != nil {
		l.Codigo = *in.CodigoLinea
	}
	if in.NombreLinea != nil {
		l.Nombre = *in.NombreLinea
	}
	l.Estado = estadoEntidad(in.Estado, l.Estado)
	if err := uc.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	return toLineaResponse(l), nil
}

// Delete elimina una línea. Se rechaza si algún artículo la referencia.
func (uc *LineaUseCase) Delete(ctx context.Context, id string) error {
	l, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if l == nil {
		return domain.ErrNotFound
	}
	used, err := uc.articulos.ExistsByLinea(ctx, id)
	if err != nil {
		return err
	}
	if used {
		return domain.ErrEnUso
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *LineaUseCase) checkGrupo(ctx context.Context, grupoID string) error {
	g, err := uc.grupos.GetByID(ctx, grupoID)
	if err != nil {
		return err
	}
	if g == nil {
		return domain.FieldErr("grupo_id", domain.CodeNotFound, "El grupo seleccionado no existe.")
	}
	return nil
}
