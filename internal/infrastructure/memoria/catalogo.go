package memoria

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

var (
	_ repository.GrupoRepository        = (*GrupoRepo)(nil)
	_ repository.LineaRepository        = (*LineaRepo)(nil)
	_ repository.ArticuloRepository     = (*ArticuloRepo)(nil)
	_ repository.ListaPreciosRepository = (*ListaPreciosRepo)(nil)
)

// GrupoRepo grupos en memoria.
type GrupoRepo struct{ s sesion }

// NewGrupoRepository construye el repositorio.
func NewGrupoRepository(s *Store) *GrupoRepo { return &GrupoRepo{s: s.sesion(false)} }

func (r *GrupoRepo) Create(_ context.Context, g *entity.GrupoArticulo) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.grupos {
		if x.Codigo == g.Codigo {
			return domain.ErrDuplicate
		}
	}
	r.s.grupos[g.ID] = *g
	return nil
}

func (r *GrupoRepo) GetByID(_ context.Context, id string) (*entity.GrupoArticulo, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	g, ok := r.s.grupos[id]
	if !ok {
		return nil, nil
	}
	return &g, nil
}

func (r *GrupoRepo) GetByCodigo(_ context.Context, codigo string) (*entity.GrupoArticulo, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, g := range r.s.grupos {
		if g.Codigo == codigo {
			g := g
			return &g, nil
		}
	}
	return nil, nil
}

func (r *GrupoRepo) List(_ context.Context, limit, offset int) ([]*entity.GrupoArticulo, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.GrupoArticulo, 0, len(r.s.grupos))
	for _, g := range r.s.grupos {
		g := g
		list = append(list, &g)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Codigo < list[j].Codigo })
	return page(list, limit, offset), nil
}

func (r *GrupoRepo) Update(_ context.Context, g *entity.GrupoArticulo) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.grupos {
		if x.Codigo == g.Codigo && x.ID != g.ID {
			return domain.ErrDuplicate
		}
	}
	if _, ok := r.s.grupos[g.ID]; ok {
		r.s.grupos[g.ID] = *g
	}
	return nil
}

func (r *GrupoRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, l := range r.s.lineas {
		if l.GrupoID == id {
			return domain.ErrEnUso
		}
	}
	for _, a := range r.s.articulos {
		if a.GrupoID == id {
			return domain.ErrEnUso
		}
	}
	delete(r.s.grupos, id)
	return nil
}

// LineaRepo líneas en memoria.
type LineaRepo struct{ s sesion }

// NewLineaRepository construye el repositorio.
func NewLineaRepository(s *Store) *LineaRepo { return &LineaRepo{s: s.sesion(false)} }

func (r *LineaRepo) Create(_ context.Context, l *entity.LineaArticulo) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.lineas[l.ID] = *l
	return nil
}

func (r *LineaRepo) GetByID(_ context.Context, id string) (*entity.LineaArticulo, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	l, ok := r.s.lineas[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (r *LineaRepo) List(_ context.Context, grupoID string, limit, offset int) ([]*entity.LineaArticulo, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.LineaArticulo
	for _, l := range r.s.lineas {
		if grupoID != "" && l.GrupoID != grupoID {
			continue
		}
		l := l
		list = append(list, &l)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Codigo < list[j].Codigo })
	return page(list, limit, offset), nil
}

func (r *LineaRepo) Update(_ context.Context, l *entity.LineaArticulo) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.lineas[l.ID]; ok {
		r.s.lineas[l.ID] = *l
	}
	return nil
}

func (r *LineaRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.articulos {
		if a.LineaID == id {
			return domain.ErrEnUso
		}
	}
	delete(r.s.lineas, id)
	return nil
}

func (r *LineaRepo) ExistsByGrupo(_ context.Context, grupoID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, l := range r.s.lineas {
		if l.GrupoID == grupoID {
			return true, nil
		}
	}
	return false, nil
}

// ArticuloRepo artículos en memoria.
type ArticuloRepo struct{ s sesion }

// NewArticuloRepository construye el repositorio.
func NewArticuloRepository(s *Store) *ArticuloRepo { return &ArticuloRepo{s: s.sesion(false)} }

func (r *ArticuloRepo) Create(_ context.Context, a *entity.Articulo) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.articulos {
		if x.Codigo == a.Codigo {
			return domain.ErrDuplicate
		}
	}
	if a.Stock.IsNegative() {
		return domain.ErrInvalidInput
	}
	r.s.articulos[a.ID] = *a
	return nil
}

func (r *ArticuloRepo) GetByID(_ context.Context, id string) (*entity.Articulo, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, ok := r.s.articulos[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *ArticuloRepo) GetByCodigo(_ context.Context, codigo string) (*entity.Articulo, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, a := range r.s.articulos {
		if a.Codigo == codigo {
			a := a
			return &a, nil
		}
	}
	return nil, nil
}

// detalle arma el artículo con sus referencias. Requiere el lock de lectura tomado.
func (r *ArticuloRepo) detalle(a entity.Articulo) *entity.ArticuloDetalle {
	d := &entity.ArticuloDetalle{Articulo: a}
	if g, ok := r.s.grupos[a.GrupoID]; ok {
		d.Grupo = &g
	}
	if l, ok := r.s.lineas[a.LineaID]; ok {
		d.Linea = &l
	}
	if p, ok := r.s.precios[a.ID]; ok {
		d.Precios = &p
	}
	return d
}

func (r *ArticuloRepo) GetDetalle(_ context.Context, id string) (*entity.ArticuloDetalle, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, ok := r.s.articulos[id]
	if !ok {
		return nil, nil
	}
	return r.detalle(a), nil
}

func (r *ArticuloRepo) List(_ context.Context, f repository.ArticuloFiltro) ([]*entity.ArticuloDetalle, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	buscar := strings.ToLower(f.Buscar)
	var list []*entity.ArticuloDetalle
	for _, a := range r.s.articulos {
		if f.GrupoID != "" && a.GrupoID != f.GrupoID {
			continue
		}
		if f.LineaID != "" && a.LineaID != f.LineaID {
			continue
		}
		if buscar != "" &&
			!strings.Contains(strings.ToLower(a.Codigo), buscar) &&
			!strings.Contains(strings.ToLower(a.CodigoBarras), buscar) &&
			!strings.Contains(strings.ToLower(a.Descripcion), buscar) {
			continue
		}
		list = append(list, r.detalle(a))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Codigo < list[j].Codigo })
	return page(list, f.Limit, f.Offset), nil
}

func (r *ArticuloRepo) Update(_ context.Context, a *entity.Articulo) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.articulos {
		if x.Codigo == a.Codigo && x.ID != a.ID {
			return domain.ErrDuplicate
		}
	}
	if _, ok := r.s.articulos[a.ID]; ok {
		r.s.articulos[a.ID] = *a
	}
	return nil
}

func (r *ArticuloRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, it := range r.s.items {
		if it.ArticuloID == id {
			return domain.ErrEnUso
		}
	}
	delete(r.s.articulos, id)
	delete(r.s.precios, id)
	return nil
}

func (r *ArticuloRepo) ExistsByGrupo(_ context.Context, grupoID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, a := range r.s.articulos {
		if a.GrupoID == grupoID {
			return true, nil
		}
	}
	return false, nil
}

func (r *ArticuloRepo) ExistsByLinea(_ context.Context, lineaID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, a := range r.s.articulos {
		if a.LineaID == lineaID {
			return true, nil
		}
	}
	return false, nil
}

// ListaPreciosRepo listas de precios en memoria.
type ListaPreciosRepo struct{ s sesion }

// NewListaPreciosRepository construye el repositorio.
func NewListaPreciosRepository(s *Store) *ListaPreciosRepo { return &ListaPreciosRepo{s: s.sesion(false)} }

func (r *ListaPreciosRepo) Create(_ context.Context, lp *entity.ListaPrecios) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.precios[lp.ArticuloID]; ok {
		return domain.ErrDuplicate
	}
	r.s.precios[lp.ArticuloID] = *lp
	return nil
}

func (r *ListaPreciosRepo) GetByArticulo(_ context.Context, articuloID string) (*entity.ListaPrecios, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	lp, ok := r.s.precios[articuloID]
	if !ok {
		return nil, nil
	}
	return &lp, nil
}

func (r *ListaPreciosRepo) Upsert(_ context.Context, lp *entity.ListaPrecios) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.precios[lp.ArticuloID] = *lp
	return nil
}
