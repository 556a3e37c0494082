package memoria

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

var (
	_ repository.OrdenRepository     = (*OrdenRepo)(nil)
	_ repository.ItemOrdenRepository = (*ItemOrdenRepo)(nil)
)

// OrdenRepo órdenes en memoria. NroPedido es un contador del almacén.
type OrdenRepo struct{ s sesion }

// NewOrdenRepository construye el repositorio.
func NewOrdenRepository(s *Store) *OrdenRepo { return &OrdenRepo{s: s.sesion(false)} }

func (r *OrdenRepo) Create(_ context.Context, o *entity.Orden) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nroPedido++
	o.NroPedido = r.s.nroPedido
	if o.FechaCreacion.IsZero() {
		o.FechaCreacion = time.Now()
	}
	r.s.ordenes[o.ID] = *o
	return nil
}

func (r *OrdenRepo) GetByID(_ context.Context, id string) (*entity.Orden, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	o, ok := r.s.ordenes[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

// GetForUpdate equivale a GetByID: la exclusión la da el TxRunner, que serializa transacciones.
func (r *OrdenRepo) GetForUpdate(ctx context.Context, id string) (*entity.Orden, error) {
	return r.GetByID(ctx, id)
}

// resumen requiere el lock de lectura tomado.
func (r *OrdenRepo) resumen(o entity.Orden) *entity.OrdenResumen {
	res := &entity.OrdenResumen{Orden: o}
	if c, ok := r.s.clientes[o.ClienteID]; ok {
		res.ClienteNombre = c.Nombres
	}
	if v, ok := r.s.vendedores[o.VendedorID]; ok {
		res.VendedorNombre = v.Nombre
	}
	return res
}

func (r *OrdenRepo) GetResumen(_ context.Context, id string) (*entity.OrdenResumen, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	o, ok := r.s.ordenes[id]
	if !ok {
		return nil, nil
	}
	return r.resumen(o), nil
}

func (r *OrdenRepo) List(_ context.Context, f repository.OrdenFiltro) ([]*entity.OrdenResumen, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.OrdenResumen
	for _, o := range r.s.ordenes {
		if f.ClienteID != "" && o.ClienteID != f.ClienteID {
			continue
		}
		if f.VendedorID != "" && o.VendedorID != f.VendedorID {
			continue
		}
		if f.Estado != 0 && o.Estado != f.Estado {
			continue
		}
		list = append(list, r.resumen(o))
	}
	// más recientes primero
	sort.Slice(list, func(i, j int) bool { return list[i].NroPedido > list[j].NroPedido })
	return page(list, f.Limit, f.Offset), nil
}

func (r *OrdenRepo) Update(_ context.Context, o *entity.Orden) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.ordenes[o.ID]; ok {
		r.s.ordenes[o.ID] = *o
	}
	return nil
}

func (r *OrdenRepo) UpdateImporte(_ context.Context, id string, importe decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if o, ok := r.s.ordenes[id]; ok {
		o.Importe = importe
		r.s.ordenes[id] = o
	}
	return nil
}

func (r *OrdenRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for itemID, it := range r.s.items {
		if it.OrdenID == id {
			delete(r.s.items, itemID)
		}
	}
	delete(r.s.ordenes, id)
	return nil
}

func (r *OrdenRepo) ExistsByCliente(_ context.Context, clienteID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, o := range r.s.ordenes {
		if o.ClienteID == clienteID {
			return true, nil
		}
	}
	return false, nil
}

func (r *OrdenRepo) ExistsByVendedor(_ context.Context, vendedorID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, o := range r.s.ordenes {
		if o.VendedorID == vendedorID {
			return true, nil
		}
	}
	return false, nil
}

// ItemOrdenRepo ítems de orden en memoria.
type ItemOrdenRepo struct{ s sesion }

// NewItemOrdenRepository construye el repositorio.
func NewItemOrdenRepository(s *Store) *ItemOrdenRepo { return &ItemOrdenRepo{s: s.sesion(false)} }

func (r *ItemOrdenRepo) Create(_ context.Context, it *entity.ItemOrden) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if it.FechaCreacion.IsZero() {
		it.FechaCreacion = time.Now()
	}
	r.s.items[it.ID] = *it
	return nil
}

func (r *ItemOrdenRepo) GetByID(_ context.Context, id string) (*entity.ItemOrden, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	it, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (r *ItemOrdenRepo) Update(_ context.Context, it *entity.ItemOrden) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[it.ID]; ok {
		r.s.items[it.ID] = *it
	}
	return nil
}

func (r *ItemOrdenRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.items, id)
	return nil
}

func (r *ItemOrdenRepo) ListByOrden(_ context.Context, ordenID string) ([]*entity.ItemOrden, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.ItemOrden
	for _, it := range r.s.items {
		if it.OrdenID == ordenID {
			it := it
			list = append(list, &it)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].NroItem < list[j].NroItem })
	return list, nil
}

func (r *ItemOrdenRepo) ListDetalleByOrden(ctx context.Context, ordenID string) ([]*entity.ItemOrdenDetalle, error) {
	items, _ := r.ListByOrden(ctx, ordenID)
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.ItemOrdenDetalle, 0, len(items))
	for _, it := range items {
		d := &entity.ItemOrdenDetalle{ItemOrden: *it}
		if a, ok := r.s.articulos[it.ArticuloID]; ok {
			d.ArticuloCodigo = a.Codigo
			d.ArticuloDescripcion = a.Descripcion
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *ItemOrdenRepo) ExistsByArticulo(_ context.Context, articuloID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, it := range r.s.items {
		if it.ArticuloID == articuloID {
			return true, nil
		}
	}
	return false, nil
}
