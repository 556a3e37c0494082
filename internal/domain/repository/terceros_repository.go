package repository

import (
	"context"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// TipoIdentificacionRepository puerto de persistencia para tipos de identificación.
type TipoIdentificacionRepository interface {
	Create(ctx context.Context, t *entity.TipoIdentificacion) error
	GetByID(ctx context.Context, id string) (*entity.TipoIdentificacion, error)
	List(ctx context.Context) ([]*entity.TipoIdentificacion, error)
	Update(ctx context.Context, t *entity.TipoIdentificacion) error
	Delete(ctx context.Context, id string) error
}

// CanalRepository puerto de persistencia para canales de cliente.
type CanalRepository interface {
	Create(ctx context.Context, c *entity.CanalCliente) error
	GetByID(ctx context.Context, id string) (*entity.CanalCliente, error)
	List(ctx context.Context) ([]*entity.CanalCliente, error)
	Update(ctx context.Context, c *entity.CanalCliente) error
	Delete(ctx context.Context, id string) error
}

// VendedorRepository puerto de persistencia para vendedores. Correo es único.
type VendedorRepository interface {
	Create(ctx context.Context, v *entity.Vendedor) error
	GetByID(ctx context.Context, id string) (*entity.Vendedor, error)
	GetByCorreo(ctx context.Context, correo string) (*entity.Vendedor, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Vendedor, error)
	Update(ctx context.Context, v *entity.Vendedor) error
	Delete(ctx context.Context, id string) error
}

// ClienteFiltro criterios de listado de clientes.
type ClienteFiltro struct {
	CanalID string
	Buscar  string // nombres o número de identificación
	Limit   int
	Offset  int
}

// ClienteRepository puerto de persistencia para clientes.
type ClienteRepository interface {
	Create(ctx context.Context, c *entity.Cliente) error
	GetByID(ctx context.Context, id string) (*entity.Cliente, error)
	List(ctx context.Context, f ClienteFiltro) ([]*entity.Cliente, error)
	Update(ctx context.Context, c *entity.Cliente) error
	Delete(ctx context.Context, id string) error
	ExistsByTipoIdentificacion(ctx context.Context, tipoID string) (bool, error)
	ExistsByCanal(ctx context.Context, canalID string) (bool, error)
}
