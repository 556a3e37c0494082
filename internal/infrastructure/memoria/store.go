// Package memoria implementa los puertos de repositorio en memoria. Las transacciones se
// serializan y hacen rollback restaurando una copia del estado; las escrituras fuera de una
// transacción esperan a que termine la abierta, así un rollback sólo deshace lo suyo.
// Se usa en pruebas y en ejecución local sin base de datos (DB_DRIVER=memory).
package memoria

import (
	"context"
	"sync"

	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// Store estado compartido por todos los repositorios en memoria.
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex

	grupos     map[string]entity.GrupoArticulo
	lineas     map[string]entity.LineaArticulo
	articulos  map[string]entity.Articulo
	precios    map[string]entity.ListaPrecios
	tipos      map[string]entity.TipoIdentificacion
	canales    map[string]entity.CanalCliente
	vendedores map[string]entity.Vendedor
	clientes   map[string]entity.Cliente
	ordenes    map[string]entity.Orden
	items      map[string]entity.ItemOrden
	usuarios   map[string]entity.Usuario
	nroPedido  int64
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		grupos:     map[string]entity.GrupoArticulo{},
		lineas:     map[string]entity.LineaArticulo{},
		articulos:  map[string]entity.Articulo{},
		precios:    map[string]entity.ListaPrecios{},
		tipos:      map[string]entity.TipoIdentificacion{},
		canales:    map[string]entity.CanalCliente{},
		vendedores: map[string]entity.Vendedor{},
		clientes:   map[string]entity.Cliente{},
		ordenes:    map[string]entity.Orden{},
		items:      map[string]entity.ItemOrden{},
		usuarios:   map[string]entity.Usuario{},
	}
}

// escritor toma txMu antes de escribir salvo dentro de una transacción, que ya lo tiene.
type escritor struct {
	s    *Store
	enTx bool
}

func (e escritor) Lock() {
	if !e.enTx {
		e.s.txMu.Lock()
	}
	e.s.mu.Lock()
}

func (e escritor) Unlock() {
	e.s.mu.Unlock()
	if !e.enTx {
		e.s.txMu.Unlock()
	}
}

func (e escritor) RLock()   { e.s.mu.RLock() }
func (e escritor) RUnlock() { e.s.mu.RUnlock() }

// sesion vista del almacén que usan los repositorios; su mu reemplaza al del Store.
type sesion struct {
	*Store
	mu escritor
}

func (s *Store) sesion(enTx bool) sesion {
	return sesion{Store: s, mu: escritor{s: s, enTx: enTx}}
}

type snapshot struct {
	grupos     map[string]entity.GrupoArticulo
	lineas     map[string]entity.LineaArticulo
	articulos  map[string]entity.Articulo
	precios    map[string]entity.ListaPrecios
	tipos      map[string]entity.TipoIdentificacion
	canales    map[string]entity.CanalCliente
	vendedores map[string]entity.Vendedor
	clientes   map[string]entity.Cliente
	ordenes    map[string]entity.Orden
	items      map[string]entity.ItemOrden
	usuarios   map[string]entity.Usuario
	nroPedido  int64
}

func copyMap[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{
		grupos:     copyMap(s.grupos),
		lineas:     copyMap(s.lineas),
		articulos:  copyMap(s.articulos),
		precios:    copyMap(s.precios),
		tipos:      copyMap(s.tipos),
		canales:    copyMap(s.canales),
		vendedores: copyMap(s.vendedores),
		clientes:   copyMap(s.clientes),
		ordenes:    copyMap(s.ordenes),
		items:      copyMap(s.items),
		usuarios:   copyMap(s.usuarios),
		nroPedido:  s.nroPedido,
	}
}

func (s *Store) restore(sn snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grupos, s.lineas, s.articulos, s.precios = sn.grupos, sn.lineas, sn.articulos, sn.precios
	s.tipos, s.canales, s.vendedores, s.clientes = sn.tipos, sn.canales, sn.vendedores, sn.clientes
	s.ordenes, s.items, s.usuarios, s.nroPedido = sn.ordenes, sn.items, sn.usuarios, sn.nroPedido
}

// run serializa la función y deshace sus cambios si devuelve error.
func (s *Store) run(fn func() error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	sn := s.snapshot()
	if err := fn(); err != nil {
		s.restore(sn)
		return err
	}
	return nil
}

// TxRunner ejecuta callbacks con los repositorios en memoria de forma atómica.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el almacén.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// RunCatalogo ejecuta fn con repos de artículos y precios.
func (r *TxRunner) RunCatalogo(ctx context.Context, fn func(
	articulos repository.ArticuloRepository,
	precios repository.ListaPreciosRepository,
) error) error {
	return r.s.run(func() error {
		tx := r.s.sesion(true)
		return fn(&ArticuloRepo{s: tx}, &ListaPreciosRepo{s: tx})
	})
}

// RunPedidos ejecuta fn con repos de órdenes, ítems y precios.
func (r *TxRunner) RunPedidos(ctx context.Context, fn func(
	ordenes repository.OrdenRepository,
	items repository.ItemOrdenRepository,
	precios repository.ListaPreciosRepository,
) error) error {
	return r.s.run(func() error {
		tx := r.s.sesion(true)
		return fn(&OrdenRepo{s: tx}, &ItemOrdenRepo{s: tx}, &ListaPreciosRepo{s: tx})
	})
}

func page[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
