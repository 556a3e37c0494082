package pedidos

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/pedido"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/pkg/validation"
)

// OrdenUseCase órdenes de compra de cliente y sus ítems.
//
// Toda escritura de ítems sigue el mismo flujo dentro de una transacción: bloquear la orden
// (SELECT ... FOR UPDATE), resolver precio y total del ítem, persistir el ítem, releer los ítems
// y guardar el importe recalculado desde cero. Dos escrituras concurrentes sobre la misma orden
// quedan serializadas por el bloqueo; si algo falla no queda ni el ítem ni el importe a medias.
type OrdenUseCase struct {
	tx         TxRunner
	ordenes    repository.OrdenRepository
	items      repository.ItemOrdenRepository
	clientes   repository.ClienteRepository
	vendedores repository.VendedorRepository
	articulos  repository.ArticuloRepository
	cfg        Config
	metricas   Metricas
}

// NewOrdenUseCase construye el caso de uso. metricas puede ser nil.
func NewOrdenUseCase(
	tx TxRunner,
	ordenes repository.OrdenRepository,
	items repository.ItemOrdenRepository,
	clientes repository.ClienteRepository,
	vendedores repository.VendedorRepository,
	articulos repository.ArticuloRepository,
	cfg Config,
	metricas Metricas,
) *OrdenUseCase {
	if metricas == nil {
		metricas = nopMetricas{}
	}
	return &OrdenUseCase{
		tx:         tx,
		ordenes:    ordenes,
		items:      items,
		clientes:   clientes,
		vendedores: vendedores,
		articulos:  articulos,
		cfg:        cfg,
		metricas:   metricas,
	}
}

// Create crea la orden (estado Pendiente) con sus ítems iniciales en una sola transacción.
func (uc *OrdenUseCase) Create(ctx context.Context, usuarioID string, in dto.CreateOrdenRequest) (*dto.OrdenResponse, error) {
	in.ClienteID = validation.Normalize(in.ClienteID)
	in.VendedorID = validation.Normalize(in.VendedorID)
	in.Notas = validation.Normalize(in.Notas)
	for i := range in.Items {
		in.Items[i].ArticuloID = validation.Normalize(in.Items[i].ArticuloID)
	}
	if err := dto.Validate(in).OrNil(); err != nil {
		return nil, err
	}

	verr := domain.NewValidationError()
	if err := uc.checkCliente(ctx, in.ClienteID, verr); err != nil {
		return nil, err
	}
	if err := uc.checkVendedor(ctx, in.VendedorID, verr); err != nil {
		return nil, err
	}
	articulos := make(map[string]*entity.Articulo, len(in.Items))
	for i, it := range in.Items {
		a, err := uc.articulos.GetByID(ctx, it.ArticuloID)
		if err != nil {
			return nil, err
		}
		if a == nil {
			verr.Add("items["+strconv.Itoa(i)+"].articulo_id", domain.CodeNotFound, "El artículo seleccionado no existe.")
			continue
		}
		articulos[a.ID] = a
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	now := time.Now()
	o := &entity.Orden{
		ID:          uuid.New().String(),
		FechaPedido: now,
		ClienteID:   in.ClienteID,
		VendedorID:  in.VendedorID,
		Estado:      entity.OrdenPendiente,
		Notas:       in.Notas,
		CreadoPor:   usuarioID,
	}
	if in.FechaPedido != nil {
		o.FechaPedido = *in.FechaPedido
	}

	err := uc.tx.RunPedidos(ctx, func(ordenes repository.OrdenRepository, items repository.ItemOrdenRepository, precios repository.ListaPreciosRepository) error {
		if err := ordenes.Create(ctx, o); err != nil {
			return err
		}
		for i, it := range in.Items {
			item := &entity.ItemOrden{
				ID:             uuid.New().String(),
				OrdenID:        o.ID,
				NroItem:        i + 1,
				ArticuloID:     it.ArticuloID,
				Cantidad:       it.Cantidad,
				PrecioUnitario: it.PrecioUnitario,
				Estado:         entity.EstadoActivo,
				CreadoPor:      usuarioID,
			}
			if err := uc.resolver(ctx, precios, item, articulos[it.ArticuloID]); err != nil {
				return err
			}
			if err := items.Create(ctx, item); err != nil {
				return err
			}
		}
		return recalcular(ctx, ordenes, items, o.ID)
	})
	if err != nil {
		return nil, err
	}
	uc.metricas.OperacionOrden("crear_orden")
	return uc.GetByID(ctx, o.ID)
}

// GetByID devuelve la orden con cliente_nombre, estado_display e ítems.
func (uc *OrdenUseCase) GetByID(ctx context.Context, id string) (*dto.OrdenResponse, error) {
	o, err := uc.ordenes.GetResumen(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.items.ListDetalleByOrden(ctx, id)
	if err != nil {
		return nil, err
	}
	return toOrdenResponse(o, items), nil
}

// List lista órdenes (más recientes primero) con filtros opcionales.
func (uc *OrdenUseCase) List(ctx context.Context, f repository.OrdenFiltro) (*dto.OrdenListResponse, error) {
	if f.Estado != 0 && !f.Estado.Valid() {
		return nil, domain.FieldErr("estado", domain.CodeInvalid, "Estado de orden inválido.")
	}
	list, err := uc.ordenes.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := &dto.OrdenListResponse{
		Items: make([]dto.OrdenListItem, 0, len(list)),
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset},
	}
	for _, o := range list {
		out.Items = append(out.Items, toOrdenListItem(o))
	}
	return out, nil
}

// Update modifica la cabecera: vendedor, estado y notas. El importe no se toca.
func (uc *OrdenUseCase) Update(ctx context.Context, id string, in dto.UpdateOrdenRequest) (*dto.OrdenResponse, error) {
	in.VendedorID = validation.NormalizePtr(in.VendedorID)
	in.Notas = validation.NormalizePtr(in.Notas)
	if err := dto.Validate(in).OrNil(); err != nil {
		return nil, err
	}
	if in.VendedorID != nil {
		verr := domain.NewValidationError()
		if err := uc.checkVendedor(ctx, *in.VendedorID, verr); err != nil {
			return nil, err
		}
		if err := verr.OrNil(); err != nil {
			return nil, err
		}
	}
	err := uc.tx.RunPedidos(ctx, func(ordenes repository.OrdenRepository, _ repository.ItemOrdenRepository, _ repository.ListaPreciosRepository) error {
		o, err := ordenes.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.ErrNotFound
		}
		if in.VendedorID != nil {
			o.VendedorID = *in.VendedorID
		}
		if in.Estado != nil {
			o.Estado = entity.EstadoOrden(*in.Estado)
		}
		if in.Notas != nil {
			o.Notas = *in.Notas
		}
		return ordenes.Update(ctx, o)
	})
	if err != nil {
		return nil, err
	}
	uc.metricas.OperacionOrden("actualizar_orden")
	return uc.GetByID(ctx, id)
}

// Delete elimina la orden y, en cascada, todos sus ítems.
func (uc *OrdenUseCase) Delete(ctx context.Context, id string) error {
	o, err := uc.ordenes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if o == nil {
		return domain.ErrNotFound
	}
	if err := uc.ordenes.Delete(ctx, id); err != nil {
		return err
	}
	uc.metricas.OperacionOrden("eliminar_orden")
	return nil
}

// AgregarItem agrega un ítem (nro_item = máximo + 1) y recalcula el importe de la orden.
func (uc *OrdenUseCase) AgregarItem(ctx context.Context, usuarioID, ordenID string, in dto.ItemRequest) (*dto.OrdenResponse, error) {
	in.ArticuloID = validation.Normalize(in.ArticuloID)
	if err := dto.Validate(in).OrNil(); err != nil {
		return nil, err
	}
	a, err := uc.articulos.GetByID(ctx, in.ArticuloID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.FieldErr("articulo_id", domain.CodeNotFound, "El artículo seleccionado no existe.")
	}

	err = uc.tx.RunPedidos(ctx, func(ordenes repository.OrdenRepository, items repository.ItemOrdenRepository, precios repository.ListaPreciosRepository) error {
		o, err := ordenes.GetForUpdate(ctx, ordenID)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.ErrNotFound
		}
		actuales, err := items.ListByOrden(ctx, ordenID)
		if err != nil {
			return err
		}
		item := &entity.ItemOrden{
			ID:             uuid.New().String(),
			OrdenID:        ordenID,
			NroItem:        pedido.SiguienteNroItem(actuales),
			ArticuloID:     a.ID,
			Cantidad:       in.Cantidad,
			PrecioUnitario: in.PrecioUnitario,
			Estado:         entity.EstadoActivo,
			CreadoPor:      usuarioID,
		}
		if err := uc.resolver(ctx, precios, item, a); err != nil {
			return err
		}
		if err := items.Create(ctx, item); err != nil {
			return err
		}
		return recalcular(ctx, ordenes, items, ordenID)
	})
	if err != nil {
		return nil, err
	}
	uc.metricas.OperacionOrden("agregar_item")
	return uc.GetByID(ctx, ordenID)
}

// ActualizarItem modifica cantidad, precio o estado del ítem, recalcula su total y el importe.
// Guardar el ítem sin cambios no altera ni su total ni el importe.
func (uc *OrdenUseCase) ActualizarItem(ctx context.Context, ordenID, itemID string, in dto.UpdateItemRequest) (*dto.OrdenResponse, error) {
	if err := dto.Validate(in).OrNil(); err != nil {
		return nil, err
	}
	err := uc.tx.RunPedidos(ctx, func(ordenes repository.OrdenRepository, items repository.ItemOrdenRepository, precios repository.ListaPreciosRepository) error {
		o, err := ordenes.GetForUpdate(ctx, ordenID)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.ErrNotFound
		}
		item, err := items.GetByID(ctx, itemID)
		if err != nil {
			return err
		}
		if item == nil || item.OrdenID != ordenID {
			return domain.ErrNotFound
		}
		if in.Cantidad != nil {
			item.Cantidad = *in.Cantidad
		}
		if in.PrecioUnitario != nil {
			item.PrecioUnitario = *in.PrecioUnitario
		}
		if in.Estado != nil {
			item.Estado = entity.EstadoEntidad(*in.Estado)
		}
		a, err := uc.articulos.GetByID(ctx, item.ArticuloID)
		if err != nil {
			return err
		}
		if err := uc.resolver(ctx, precios, item, a); err != nil {
			return err
		}
		if err := items.Update(ctx, item); err != nil {
			return err
		}
		return recalcular(ctx, ordenes, items, ordenID)
	})
	if err != nil {
		return nil, err
	}
	uc.metricas.OperacionOrden("actualizar_item")
	return uc.GetByID(ctx, ordenID)
}

// EliminarItem elimina el ítem y recalcula el importe.
func (uc *OrdenUseCase) EliminarItem(ctx context.Context, ordenID, itemID string) (*dto.OrdenResponse, error) {
	err := uc.tx.RunPedidos(ctx, func(ordenes repository.OrdenRepository, items repository.ItemOrdenRepository, _ repository.ListaPreciosRepository) error {
		o, err := ordenes.GetForUpdate(ctx, ordenID)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.ErrNotFound
		}
		item, err := items.GetByID(ctx, itemID)
		if err != nil {
			return err
		}
		if item == nil || item.OrdenID != ordenID {
			return domain.ErrNotFound
		}
		if err := items.Delete(ctx, itemID); err != nil {
			return err
		}
		return recalcular(ctx, ordenes, items, ordenID)
	})
	if err != nil {
		return nil, err
	}
	uc.metricas.OperacionOrden("eliminar_item")
	return uc.GetByID(ctx, ordenID)
}

// resolver fija precio y total del ítem con la lista de precios del artículo.
func (uc *OrdenUseCase) resolver(ctx context.Context, precios repository.ListaPreciosRepository, item *entity.ItemOrden, a *entity.Articulo) error {
	lista, err := precios.GetByArticulo(ctx, item.ArticuloID)
	if err != nil {
		return err
	}
	if err := pedido.ResolverItem(item, lista, uc.cfg.PrecioEstricto); err != nil {
		if errors.Is(err, domain.ErrPrecioNoConfigurado) {
			uc.metricas.PrecioNoConfigurado()
			codigo := item.ArticuloID
			if a != nil {
				codigo = a.Codigo
			}
			return fmt.Errorf("%w: artículo %s", err, codigo)
		}
		return err
	}
	return nil
}

// recalcular relee todos los ítems de la orden y persiste el importe calculado desde cero.
func recalcular(ctx context.Context, ordenes repository.OrdenRepository, items repository.ItemOrdenRepository, ordenID string) error {
	list, err := items.ListByOrden(ctx, ordenID)
	if err != nil {
		return err
	}
	importe := pedido.CalcularImporte(list)
	if !pedido.ImporteValido(importe) {
		return domain.FieldErr("importe", domain.CodeMax, "El importe de la orden excede el máximo permitido.")
	}
	return ordenes.UpdateImporte(ctx, ordenID, importe)
}

func (uc *OrdenUseCase) checkCliente(ctx context.Context, id string, verr *domain.ValidationError) error {
	c, err := uc.clientes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		verr.Add("cliente_id", domain.CodeNotFound, "El cliente seleccionado no existe.")
	}
	return nil
}

func (uc *OrdenUseCase) checkVendedor(ctx context.Context, id string, verr *domain.ValidationError) error {
	v, err := uc.vendedores.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if v == nil {
		verr.Add("vendedor_id", domain.CodeNotFound, "El vendedor seleccionado no existe.")
	}
	return nil
}
