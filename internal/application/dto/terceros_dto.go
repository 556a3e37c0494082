package dto

// ── Tipos de identificación ──────────────────────────────────────────────────

// TipoIdentificacionRequest entrada para crear o reemplazar un tipo de identificación.
type TipoIdentificacionRequest struct {
	NombreTipo  string `json:"nombre_tipo" validate:"required,max=150"`
	Descripcion string `json:"descripcion"`
	Estado      *int   `json:"estado" validate:"omitempty,oneof=0 1"`
}

// TipoIdentificacionResponse salida de un tipo de identificación.
type TipoIdentificacionResponse struct {
	TipoID        string `json:"tipo_id"`
	NombreTipo    string `json:"nombre_tipo"`
	Descripcion   string `json:"descripcion"`
	Estado        int    `json:"estado"`
	EstadoDisplay string `json:"estado_display"`
}

// ── Canales ──────────────────────────────────────────────────────────────────

// CreateCanalRequest entrada para crear un canal; el ID lo define el usuario (hasta 3 caracteres).
type CreateCanalRequest struct {
	CanalID     string `json:"canal_id" validate:"required,max=3"`
	NombreCanal string `json:"nombre_canal" validate:"required,max=100"`
}

// UpdateCanalRequest entrada para renombrar un canal.
type UpdateCanalRequest struct {
	NombreCanal string `json:"nombre_canal" validate:"required,max=100"`
}

// CanalResponse salida de un canal.
type CanalResponse struct {
	CanalID     string `json:"canal_id"`
	NombreCanal string `json:"nombre_canal"`
}

// ── Vendedores ───────────────────────────────────────────────────────────────

// CreateVendedorRequest entrada para crear un vendedor.
type CreateVendedorRequest struct {
	Nombre string `json:"nombre" validate:"required,max=150"`
	Correo string `json:"correo" validate:"required,email"`
	Estado *int   `json:"estado" validate:"omitempty,oneof=0 1"`
}

// UpdateVendedorRequest actualización parcial de un vendedor.
type UpdateVendedorRequest struct {
	Nombre *string `json:"nombre" validate:"omitempty,min=1,max=150"`
	Correo *string `json:"correo" validate:"omitempty,email"`
	Estado *int    `json:"estado" validate:"omitempty,oneof=0 1"`
}

// VendedorResponse salida de un vendedor.
type VendedorResponse struct {
	VendedorID    string `json:"vendedor_id"`
	Nombre        string `json:"nombre"`
	Correo        string `json:"correo"`
	Estado        int    `json:"estado"`
	EstadoDisplay string `json:"estado_display"`
}

// ── Clientes ─────────────────────────────────────────────────────────────────

// CreateClienteRequest entrada para crear un cliente.
type CreateClienteRequest struct {
	TipoIdentificacionID string `json:"tipo_identificacion_id" validate:"required,uuid"`
	NroIdentificacion    string `json:"nro_identificacion" validate:"required,max=11"`
	Nombres              string `json:"nombres" validate:"required,max=150"`
	Direccion            string `json:"direccion" validate:"max=150"`
	CorreoElectronico    string `json:"correo_electronico" validate:"omitempty,email,max=255"`
	NroMovil             string `json:"nro_movil" validate:"max=15"`
	CanalID              string `json:"canal_id" validate:"required,max=3"`
	Estado               *int   `json:"estado" validate:"omitempty,oneof=0 1"`
}

// UpdateClienteRequest actualización parcial de un cliente.
type UpdateClienteRequest struct {
	TipoIdentificacionID *string `json:"tipo_identificacion_id" validate:"omitempty,uuid"`
	NroIdentificacion    *string `json:"nro_identificacion" validate:"omitempty,min=1,max=11"`
	Nombres              *string `json:"nombres" validate:"omitempty,min=1,max=150"`
	Direccion            *string `json:"direccion" validate:"omitempty,max=150"`
	CorreoElectronico    *string `json:"correo_electronico" validate:"omitempty,email,max=255"`
	NroMovil             *string `json:"nro_movil" validate:"omitempty,max=15"`
	CanalID              *string `json:"canal_id" validate:"omitempty,min=1,max=3"`
	Estado               *int    `json:"estado" validate:"omitempty,oneof=0 1"`
}

// ClienteResponse salida de un cliente.
type ClienteResponse struct {
	ClienteID            string `json:"cliente_id"`
	TipoIdentificacionID string `json:"tipo_identificacion_id"`
	NroIdentificacion    string `json:"nro_identificacion"`
	Nombres              string `json:"nombres"`
	Direccion            string `json:"direccion"`
	CorreoElectronico    string `json:"correo_electronico"`
	NroMovil             string `json:"nro_movil"`
	CanalID              string `json:"canal_id"`
	Estado               int    `json:"estado"`
	EstadoDisplay        string `json:"estado_display"`
}

// ClienteListResponse lista paginada de clientes.
type ClienteListResponse struct {
	Items []ClienteResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
