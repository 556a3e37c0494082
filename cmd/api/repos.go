package main

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/pos-api/internal/application/catalogo"
	"github.com/jhoicas/pos-api/internal/application/pedidos"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/internal/infrastructure/memoria"
	"github.com/jhoicas/pos-api/internal/infrastructure/postgres"
)

type txRunner interface {
	catalogo.TxRunner
	pedidos.TxRunner
}

// repos conjunto de adaptadores de persistencia (PostgreSQL o memoria).
type repos struct {
	tx         txRunner
	grupos     repository.GrupoRepository
	lineas     repository.LineaRepository
	articulos  repository.ArticuloRepository
	precios    repository.ListaPreciosRepository
	tipos      repository.TipoIdentificacionRepository
	canales    repository.CanalRepository
	vendedores repository.VendedorRepository
	clientes   repository.ClienteRepository
	ordenes    repository.OrdenRepository
	items      repository.ItemOrdenRepository
	usuarios   repository.UsuarioRepository
}

func postgresRepos(pool *pgxpool.Pool) repos {
	return repos{
		tx:         postgres.NewTxRunner(pool),
		grupos:     postgres.NewGrupoRepository(pool),
		lineas:     postgres.NewLineaRepository(pool),
		articulos:  postgres.NewArticuloRepository(pool),
		precios:    postgres.NewListaPreciosRepository(pool),
		tipos:      postgres.NewTipoIdentificacionRepository(pool),
		canales:    postgres.NewCanalRepository(pool),
		vendedores: postgres.NewVendedorRepository(pool),
		clientes:   postgres.NewClienteRepository(pool),
		ordenes:    postgres.NewOrdenRepository(pool),
		items:      postgres.NewItemOrdenRepository(pool),
		usuarios:   postgres.NewUsuarioRepository(pool),
	}
}

func memoriaRepos() repos {
	s := memoria.NewStore()
	return repos{
		tx:         memoria.NewTxRunner(s),
		grupos:     memoria.NewGrupoRepository(s),
		lineas:     memoria.NewLineaRepository(s),
		articulos:  memoria.NewArticuloRepository(s),
		precios:    memoria.NewListaPreciosRepository(s),
		tipos:      memoria.NewTipoIdentificacionRepository(s),
		canales:    memoria.NewCanalRepository(s),
		vendedores: memoria.NewVendedorRepository(s),
		clientes:   memoria.NewClienteRepository(s),
		ordenes:    memoria.NewOrdenRepository(s),
		items:      memoria.NewItemOrdenRepository(s),
		usuarios:   memoria.NewUsuarioRepository(s),
	}
}
