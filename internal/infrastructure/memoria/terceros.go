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
	_ repository.TipoIdentificacionRepository = (*TipoIdentificacionRepo)(nil)
	_ repository.CanalRepository              = (*CanalRepo)(nil)
	_ repository.VendedorRepository           = (*VendedorRepo)(nil)
	_ repository.ClienteRepository            = (*ClienteRepo)(nil)
	_ repository.UsuarioRepository            = (*UsuarioRepo)(nil)
)

// TipoIdentificacionRepo tipos de identificación en memoria.
type TipoIdentificacionRepo struct{ s sesion }

// NewTipoIdentificacionRepository construye el repositorio.
func NewTipoIdentificacionRepository(s *Store) *TipoIdentificacionRepo {
	return &TipoIdentificacionRepo{s: s.sesion(false)}
}

func (r *TipoIdentificacionRepo) Create(_ context.Context, t *entity.TipoIdentificacion) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.tipos[t.ID] = *t
	return nil
}

func (r *TipoIdentificacionRepo) GetByID(_ context.Context, id string) (*entity.TipoIdentificacion, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t, ok := r.s.tipos[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *TipoIdentificacionRepo) List(_ context.Context) ([]*entity.TipoIdentificacion, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.TipoIdentificacion, 0, len(r.s.tipos))
	for _, t := range r.s.tipos {
		t := t
		list = append(list, &t)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Nombre < list[j].Nombre })
	return list, nil
}

func (r *TipoIdentificacionRepo) Update(_ context.Context, t *entity.TipoIdentificacion) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.tipos[t.ID]; ok {
		r.s.tipos[t.ID] = *t
	}
	return nil
}

func (r *TipoIdentificacionRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.clientes {
		if c.TipoIdentificacionID == id {
			return domain.ErrEnUso
		}
	}
	delete(r.s.tipos, id)
	return nil
}

// CanalRepo canales de cliente en memoria.
type CanalRepo struct{ s sesion }

// NewCanalRepository construye el repositorio.
func NewCanalRepository(s *Store) *CanalRepo { return &CanalRepo{s: s.sesion(false)} }

func (r *CanalRepo) Create(_ context.Context, c *entity.CanalCliente) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.canales[c.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.canales[c.ID] = *c
	return nil
}

func (r *CanalRepo) GetByID(_ context.Context, id string) (*entity.CanalCliente, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.canales[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CanalRepo) List(_ context.Context) ([]*entity.CanalCliente, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.CanalCliente, 0, len(r.s.canales))
	for _, c := range r.s.canales {
		c := c
		list = append(list, &c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Nombre < list[j].Nombre })
	return list, nil
}

func (r *CanalRepo) Update(_ context.Context, c *entity.CanalCliente) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.canales[c.ID]; ok {
		r.s.canales[c.ID] = *c
	}
	return nil
}

func (r *CanalRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.clientes {
		if c.CanalID == id {
			return domain.ErrEnUso
		}
	}
	delete(r.s.canales, id)
	return nil
}

// VendedorRepo vendedores en memoria.
type VendedorRepo struct{ s sesion }

// NewVendedorRepository construye el repositorio.
func NewVendedorRepository(s *Store) *VendedorRepo { return &VendedorRepo{s: s.sesion(false)} }

func (r *VendedorRepo) Create(_ context.Context, v *entity.Vendedor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.vendedores {
		if strings.EqualFold(x.Correo, v.Correo) {
			return domain.ErrDuplicate
		}
	}
	r.s.vendedores[v.ID] = *v
	return nil
}

func (r *VendedorRepo) GetByID(_ context.Context, id string) (*entity.Vendedor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	v, ok := r.s.vendedores[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (r *VendedorRepo) GetByCorreo(_ context.Context, correo string) (*entity.Vendedor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, v := range r.s.vendedores {
		if strings.EqualFold(v.Correo, correo) {
			v := v
			return &v, nil
		}
	}
	return nil, nil
}

func (r *VendedorRepo) List(_ context.Context, limit, offset int) ([]*entity.Vendedor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Vendedor, 0, len(r.s.vendedores))
	for _, v := range r.s.vendedores {
		v := v
		list = append(list, &v)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Nombre < list[j].Nombre })
	return page(list, limit, offset), nil
}

func (r *VendedorRepo) Update(_ context.Context, v *entity.Vendedor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.vendedores {
		if strings.EqualFold(x.Correo, v.Correo) && x.ID != v.ID {
			return domain.ErrDuplicate
		}
	}
	if _, ok := r.s.vendedores[v.ID]; ok {
		r.s.vendedores[v.ID] = *v
	}
	return nil
}

func (r *VendedorRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, o := range r.s.ordenes {
		if o.VendedorID == id {
			return domain.ErrEnUso
		}
	}
	delete(r.s.vendedores, id)
	return nil
}

// ClienteRepo clientes en memoria.
type ClienteRepo struct{ s sesion }

// NewClienteRepository construye el repositorio.
func NewClienteRepository(s *Store) *ClienteRepo { return &ClienteRepo{s: s.sesion(false)} }

func (r *ClienteRepo) Create(_ context.Context, c *entity.Cliente) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.clientes[c.ID] = *c
	return nil
}

func (r *ClienteRepo) GetByID(_ context.Context, id string) (*entity.Cliente, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.clientes[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *ClienteRepo) List(_ context.Context, f repository.ClienteFiltro) ([]*entity.Cliente, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	buscar := strings.ToLower(f.Buscar)
	var list []*entity.Cliente
	for _, c := range r.s.clientes {
		if f.CanalID != "" && c.CanalID != f.CanalID {
			continue
		}
		if buscar != "" &&
			!strings.Contains(strings.ToLower(c.Nombres), buscar) &&
			!strings.Contains(c.NroIdentificacion, buscar) {
			continue
		}
		c := c
		list = append(list, &c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].NroIdentificacion < list[j].NroIdentificacion })
	return page(list, f.Limit, f.Offset), nil
}

func (r *ClienteRepo) Update(_ context.Context, c *entity.Cliente) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.clientes[c.ID]; ok {
		r.s.clientes[c.ID] = *c
	}
	return nil
}

func (r *ClienteRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, o := range r.s.ordenes {
		if o.ClienteID == id {
			return domain.ErrEnUso
		}
	}
	delete(r.s.clientes, id)
	return nil
}

func (r *ClienteRepo) ExistsByTipoIdentificacion(_ context.Context, tipoID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.clientes {
		if c.TipoIdentificacionID == tipoID {
			return true, nil
		}
	}
	return false, nil
}

func (r *ClienteRepo) ExistsByCanal(_ context.Context, canalID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.clientes {
		if c.CanalID == canalID {
			return true, nil
		}
	}
	return false, nil
}

// UsuarioRepo usuarios en memoria.
type UsuarioRepo struct{ s sesion }

// NewUsuarioRepository construye el repositorio.
func NewUsuarioRepository(s *Store) *UsuarioRepo { return &UsuarioRepo{s: s.sesion(false)} }

func (r *UsuarioRepo) Create(_ context.Context, u *entity.Usuario) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.usuarios {
		if strings.EqualFold(x.Correo, u.Correo) {
			return domain.ErrDuplicate
		}
	}
	r.s.usuarios[u.ID] = *u
	return nil
}

func (r *UsuarioRepo) GetByID(_ context.Context, id string) (*entity.Usuario, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.usuarios[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UsuarioRepo) GetByCorreo(_ context.Context, correo string) (*entity.Usuario, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.usuarios {
		if strings.EqualFold(u.Correo, correo) {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UsuarioRepo) Update(_ context.Context, u *entity.Usuario) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.usuarios[u.ID]; ok {
		r.s.usuarios[u.ID] = *u
	}
	return nil
}
