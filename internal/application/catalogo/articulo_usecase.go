package catalogo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/pkg/validation"
)

// ArticuloUseCase alta, consulta y mantenimiento de artículos y su lista de precios.
type ArticuloUseCase struct {
	tx        TxRunner
	repo      repository.ArticuloRepository
	grupos    repository.GrupoRepository
	lineas    repository.LineaRepository
	precios   repository.ListaPreciosRepository
	itemsRepo repository.ItemOrdenRepository
}

// NewArticuloUseCase construye el caso de uso.
func NewArticuloUseCase(
	tx TxRunner,
	repo repository.ArticuloRepository,
	grupos repository.GrupoRepository,
	lineas repository.LineaRepository,
	precios repository.ListaPreciosRepository,
	itemsRepo repository.ItemOrdenRepository,
) *ArticuloUseCase {
	return &ArticuloUseCase{
		tx:        tx,
		repo:      repo,
		grupos:    grupos,
		lineas:    lineas,
		precios:   precios,
		itemsRepo: itemsRepo,
	}
}

// Create valida y crea el artículo junto con su lista de precios (solo precio_1) en una transacción.
//
// Orden de validación: primero los campos (formato, longitudes, unicidad del código, stock);
// solo si todos pasan, las referencias (grupo existe, línea existe, línea pertenece al grupo).
func (uc *ArticuloUseCase) Create(ctx context.Context, in dto.CreateArticuloRequest) (*dto.ArticuloResponse, error) {
	normalizeCreate(&in)

	verr := dto.Validate(in)
	if !verr.HasField("codigo_articulo") {
		existing, err := uc.repo.GetByCodigo(ctx, in.CodigoArticulo)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			verr.Fields = append(verr.Fields, codigoDuplicado().Fields...)
		}
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	grupo, linea, err := uc.resolveGrupoLinea(ctx, in.GrupoID, in.LineaID)
	if err != nil {
		return nil, err
	}

	a := &entity.Articulo{
		ID:           uuid.New().String(),
		Codigo:       in.CodigoArticulo,
		CodigoBarras: in.CodigoBarras,
		Descripcion:  in.Descripcion,
		Presentacion: in.Presentacion,
		GrupoID:      grupo.ID,
		LineaID:      linea.ID,
		Stock:        in.Stock,
		Imagen:       in.Imagen,
		Estado:       entity.EstadoActivo,
	}
	lp := &entity.ListaPrecios{ArticuloID: a.ID, Precio1: in.Precio1}

	err = uc.tx.RunCatalogo(ctx, func(articulos repository.ArticuloRepository, precios repository.ListaPreciosRepository) error {
		if err := articulos.Create(ctx, a); err != nil {
			return err
		}
		return precios.Create(ctx, lp)
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, codigoDuplicado()
		}
		return nil, fmt.Errorf("crear artículo: %w", err)
	}
	return ToArticuloResponse(&entity.ArticuloDetalle{Articulo: *a, Grupo: grupo, Linea: linea, Precios: lp}), nil
}

// GetByID devuelve el artículo con grupo, línea y precios.
func (uc *ArticuloUseCase) GetByID(ctx context.Context, id string) (*dto.ArticuloResponse, error) {
	d, err := uc.repo.GetDetalle(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	return ToArticuloResponse(d), nil
}

// List devuelve el listado plano (grupo_nombre, linea_nombre, precio).
func (uc *ArticuloUseCase) List(ctx context.Context, f repository.ArticuloFiltro) (*dto.ArticuloListResponse, error) {
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := &dto.ArticuloListResponse{
		Items: make([]dto.ArticuloListItem, 0, len(list)),
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset},
	}
	for _, d := range list {
		out.Items = append(out.Items, toArticuloListItem(d))
	}
	return out, nil
}

// ListCompleto devuelve las salidas completas; el handler las proyecta con ?fields=.
func (uc *ArticuloUseCase) ListCompleto(ctx context.Context, f repository.ArticuloFiltro) ([]*dto.ArticuloResponse, error) {
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ArticuloResponse, 0, len(list))
	for _, d := range list {
		out = append(out, ToArticuloResponse(d))
	}
	return out, nil
}

// Update actualiza parcialmente un artículo. Si cambia el grupo o la línea, la línea
// resultante debe pertenecer al grupo resultante.
func (uc *ArticuloUseCase) Update(ctx context.Context, id string, in dto.UpdateArticuloRequest) (*dto.ArticuloResponse, error) {
	normalizeUpdate(&in)
	if err := dto.Validate(in).OrNil(); err != nil {
		return nil, err
	}
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}

	if in.CodigoArticulo != nil && *in.CodigoArticulo != a.Codigo {
		existing, err := uc.repo.GetByCodigo(ctx, *in.CodigoArticulo)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, codigoDuplicado()
		}
		a.Codigo = *in.CodigoArticulo
	}
	if in.GrupoID != nil || in.LineaID != nil {
		grupoID, lineaID := a.GrupoID, a.LineaID
		if in.GrupoID != nil {
			grupoID = *in.GrupoID
		}
		if in.LineaID != nil {
			lineaID = *in.LineaID
		}
		if _, _, err := uc.resolveGrupoLinea(ctx, grupoID, lineaID); err != nil {
			return nil, err
		}
		a.GrupoID, a.LineaID = grupoID, lineaID
	}
	if in.CodigoBarras != nil {
		a.CodigoBarras = *in.CodigoBarras
	}
	if in.Descripcion != nil {
		a.Descripcion = *in.Descripcion
	}
	if in.Presentacion != nil {
		a.Presentacion = *in.Presentacion
	}
	if in.Stock != nil {
		a.Stock = *in.Stock
	}
	if in.Imagen != nil {
		a.Imagen = *in.Imagen
	}
	a.Estado = estadoEntidad(in.Estado, a.Estado)

	if err := uc.repo.Update(ctx, a); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, codigoDuplicado()
		}
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// Delete elimina el artículo y su lista de precios. Se rechaza si hay ítems de orden que lo usan.
func (uc *ArticuloUseCase) Delete(ctx context.Context, id string) error {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrNotFound
	}
	used, err := uc.itemsRepo.ExistsByArticulo(ctx, id)
	if err != nil {
		return err
	}
	if used {
		return domain.ErrEnUso
	}
	return uc.repo.Delete(ctx, id)
}

// UpdatePrecios fija cualquiera de los seis precios. Crea la lista si el artículo no la tenía.
func (uc *ArticuloUseCase) UpdatePrecios(ctx context.Context, id string, in dto.PreciosRequest) (*dto.PreciosResponse, error) {
	if err := dto.Validate(in).OrNil(); err != nil {
		return nil, err
	}
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	lp, err := uc.precios.GetByArticulo(ctx, id)
	if err != nil {
		return nil, err
	}
	if lp == nil {
		lp = &entity.ListaPrecios{ArticuloID: id}
	}
	if in.Precio1 != nil {
		lp.Precio1 = *in.Precio1
	}
	if in.Precio2 != nil {
		lp.Precio2 = *in.Precio2
	}
	if in.Precio3 != nil {
		lp.Precio3 = *in.Precio3
	}
	if in.Precio4 != nil {
		lp.Precio4 = *in.Precio4
	}
	if in.PrecioCompra != nil {
		lp.PrecioCompra = *in.PrecioCompra
	}
	if in.PrecioCosto != nil {
		lp.PrecioCosto = *in.PrecioCosto
	}
	if err := uc.precios.Upsert(ctx, lp); err != nil {
		return nil, err
	}
	return toPreciosResponse(lp), nil
}

// resolveGrupoLinea valida las referencias cruzadas: grupo existe, línea existe y pertenece al grupo.
func (uc *ArticuloUseCase) resolveGrupoLinea(ctx context.Context, grupoID, lineaID string) (*entity.GrupoArticulo, *entity.LineaArticulo, error) {
	grupo, err := uc.grupos.GetByID(ctx, grupoID)
	if err != nil {
		return nil, nil, err
	}
	if grupo == nil {
		return nil, nil, domain.FieldErr("grupo_id", domain.CodeNotFound, "El grupo seleccionado no existe.")
	}
	linea, err := uc.lineas.GetByID(ctx, lineaID)
	if err != nil {
		return nil, nil, err
	}
	if linea == nil {
		return nil, nil, domain.FieldErr("linea_id", domain.CodeNotFound, "La línea seleccionada no existe.")
	}
	if linea.GrupoID != grupo.ID {
		return nil, nil, domain.FieldErr("linea_id", domain.CodeMismatch, "La línea seleccionada no pertenece al grupo.")
	}
	return grupo, linea, nil
}

func codigoDuplicado() *domain.ValidationError {
	return domain.FieldErr("codigo_articulo", domain.CodeDuplicate, "Este código de artículo ya existe.")
}

func normalizeCreate(in *dto.CreateArticuloRequest) {
	in.CodigoArticulo = validation.Normalize(in.CodigoArticulo)
	in.CodigoBarras = validation.Normalize(in.CodigoBarras)
	in.Descripcion = validation.Normalize(in.Descripcion)
	in.Presentacion = validation.Normalize(in.Presentacion)
	in.GrupoID = validation.Normalize(in.GrupoID)
	in.LineaID = validation.Normalize(in.LineaID)
	in.Imagen = validation.Normalize(in.Imagen)
}

func normalizeUpdate(in *dto.UpdateArticuloRequest) {
	in.CodigoArticulo = validation.NormalizePtr(in.CodigoArticulo)
	in.CodigoBarras = validation.NormalizePtr(in.CodigoBarras)
	in.Descripcion = validation.NormalizePtr(in.Descripcion)
	in.Presentacion = validation.NormalizePtr(in.Presentacion)
	in.GrupoID = validation.NormalizePtr(in.GrupoID)
	in.LineaID = validation.NormalizePtr(in.LineaID)
	in.Imagen = validation.NormalizePtr(in.Imagen)
}
