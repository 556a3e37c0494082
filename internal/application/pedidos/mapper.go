package pedidos

import (
	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain/entity"
)

func toItemResponse(d *entity.ItemOrdenDetalle) dto.ItemResponse {
	return dto.ItemResponse{
		ItemID:              d.ID,
		NroItem:             d.NroItem,
		ArticuloID:          d.ArticuloID,
		ArticuloDescripcion: d.ArticuloDescripcion,
		Cantidad:            d.Cantidad,
		PrecioUnitario:      d.PrecioUnitario,
		TotalItem:           d.TotalItem,
		Estado:              int(d.Estado),
	}
}

func toOrdenResponse(o *entity.OrdenResumen, items []*entity.ItemOrdenDetalle) *dto.OrdenResponse {
	r := &dto.OrdenResponse{
		PedidoID:      o.ID,
		NroPedido:     o.NroPedido,
		FechaPedido:   o.FechaPedido,
		ClienteID:     o.ClienteID,
		ClienteNombre: o.ClienteNombre,
		VendedorID:    o.VendedorID,
		Importe:       o.Importe,
		Estado:        int(o.Estado),
		EstadoDisplay: o.Estado.Display(),
		Notas:         o.Notas,
		CreadoPor:     o.CreadoPor,
		FechaCreacion: o.FechaCreacion,
		Items:         make([]dto.ItemResponse, 0, len(items)),
	}
	for _, it := range items {
		r.Items = append(r.Items, toItemResponse(it))
	}
	return r
}

func toOrdenListItem(o *entity.OrdenResumen) dto.OrdenListItem {
	return dto.OrdenListItem{
		PedidoID:       o.ID,
		NroPedido:      o.NroPedido,
		FechaPedido:    o.FechaPedido,
		ClienteNombre:  o.ClienteNombre,
		VendedorNombre: o.VendedorNombre,
		Importe:        o.Importe,
		Estado:         int(o.Estado),
		EstadoDisplay:  o.Estado.Display(),
	}
}
