package terceros

import (
	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain/entity"
)

func toTipoResponse(t *entity.TipoIdentificacion) *dto.TipoIdentificacionResponse {
	return &dto.TipoIdentificacionResponse{
		TipoID:        t.ID,
		NombreTipo:    t.Nombre,
		Descripcion:   t.Descripcion,
		Estado:        int(t.Estado),
		EstadoDisplay: t.Estado.Display(),
	}
}

func toCanalResponse(c *entity.CanalCliente) *dto.CanalResponse {
	return &dto.CanalResponse{CanalID: c.ID, NombreCanal: c.Nombre}
}

func toVendedorResponse(v *entity.Vendedor) *dto.VendedorResponse {
	return &dto.VendedorResponse{
		VendedorID:    v.ID,
		Nombre:        v.Nombre,
		Correo:        v.Correo,
		Estado:        int(v.Estado),
		EstadoDisplay: v.Estado.Display(),
	}
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ClienteID:            c.ID,
		TipoIdentificacionID: c.TipoIdentificacionID,
		NroIdentificacion:    c.NroIdentificacion,
		Nombres:              c.Nombres,
		Direccion:            c.Direccion,
		CorreoElectronico:    c.CorreoElectronico,
		NroMovil:             c.NroMovil,
		CanalID:              c.CanalID,
		Estado:               int(c.Estado),
		EstadoDisplay:        c.Estado.Display(),
	}
}

func estadoEntidad(p *int, def entity.EstadoEntidad) entity.EstadoEntidad {
	if p == nil {
		return def
	}
	return entity.EstadoEntidad(*p)
}
