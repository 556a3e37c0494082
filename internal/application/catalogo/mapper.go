package catalogo

import (
	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain/entity"
)

func toGrupoResponse(g *entity.GrupoArticulo) *dto.GrupoResponse {
	return &dto.GrupoResponse{
		GrupoID:       g.ID,
		CodigoGrupo:   g.Codigo,
		NombreGrupo:   g.Nombre,
		Estado:        int(g.Estado),
		EstadoDisplay: g.Estado.Display(),
	}
}

func toLineaResponse(l *entity.LineaArticulo) *dto.LineaResponse {
	return &dto.LineaResponse{
		LineaID:       l.ID,
		CodigoLinea:   l.Codigo,
		GrupoID:       l.GrupoID,
		NombreLinea:   l.Nombre,
		Estado:        int(l.Estado),
		EstadoDisplay: l.Estado.Display(),
	}
}

func toPreciosResponse(lp *entity.ListaPrecios) *dto.PreciosResponse {
	if lp == nil {
		return nil
	}
	return &dto.PreciosResponse{
		Precio1:      lp.Precio1,
		Precio2:      lp.Precio2,
		Precio3:      lp.Precio3,
		Precio4:      lp.Precio4,
		PrecioCompra: lp.PrecioCompra,
		PrecioCosto:  lp.PrecioCosto,
	}
}

// ToArticuloResponse arma la salida completa con grupo, línea y precios anidados.
func ToArticuloResponse(d *entity.ArticuloDetalle) *dto.ArticuloResponse {
	r := &dto.ArticuloResponse{
		ArticuloID:     d.ID,
		CodigoArticulo: d.Codigo,
		CodigoBarras:   d.CodigoBarras,
		Descripcion:    d.Descripcion,
		Presentacion:   d.Presentacion,
		Stock:          d.Stock,
		Imagen:         d.Imagen,
		Estado:         int(d.Estado),
		EstadoDisplay:  d.Estado.Display(),
		Precios:        toPreciosResponse(d.Precios),
	}
	if d.Grupo != nil {
		r.Grupo = &dto.GrupoRef{GrupoID: d.Grupo.ID, CodigoGrupo: d.Grupo.Codigo, NombreGrupo: d.Grupo.Nombre}
	}
	if d.Linea != nil {
		r.Linea = &dto.LineaRef{LineaID: d.Linea.ID, CodigoLinea: d.Linea.Codigo, NombreLinea: d.Linea.Nombre}
	}
	return r
}

func toArticuloListItem(d *entity.ArticuloDetalle) dto.ArticuloListItem {
	it := dto.ArticuloListItem{
		ArticuloID:     d.ID,
		CodigoArticulo: d.Codigo,
		Descripcion:    d.Descripcion,
		Stock:          d.Stock,
	}
	if d.Grupo != nil {
		it.GrupoNombre = d.Grupo.Nombre
	}
	if d.Linea != nil {
		it.LineaNombre = d.Linea.Nombre
	}
	if d.Precios != nil {
		p := d.Precios.Precio1
		it.Precio = &p
	}
	return it
}

func estadoEntidad(p *int, def entity.EstadoEntidad) entity.EstadoEntidad {
	if p == nil {
		return def
	}
	return entity.EstadoEntidad(*p)
}
