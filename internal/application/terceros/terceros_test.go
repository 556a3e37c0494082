package terceros_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/terceros"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/infrastructure/memoria"
)

type entorno struct {
	store       *memoria.Store
	referencias *terceros.ReferenciasUseCase
	vendedores  *terceros.VendedorUseCase
	clientes    *terceros.ClienteUseCase
	tipoCC      string
}

func nuevoEntorno(t *testing.T) *entorno {
	t.Helper()
	s := memoria.NewStore()
	tipos := memoria.NewTipoIdentificacionRepository(s)
	canales := memoria.NewCanalRepository(s)
	clientes := memoria.NewClienteRepository(s)
	ordenes := memoria.NewOrdenRepository(s)
	e := &entorno{
		store:       s,
		referencias: terceros.NewReferenciasUseCase(tipos, canales, clientes),
		vendedores:  terceros.NewVendedorUseCase(memoria.NewVendedorRepository(s), ordenes),
		clientes:    terceros.NewClienteUseCase(clientes, tipos, canales, ordenes),
	}
	ctx := context.Background()
	tipo, err := e.referencias.CreateTipo(ctx, dto.TipoIdentificacionRequest{NombreTipo: "Cédula de ciudadanía"})
	require.NoError(t, err)
	e.tipoCC = tipo.TipoID
	_, err = e.referencias.CreateCanal(ctx, dto.CreateCanalRequest{CanalID: "TDA", NombreCanal: "Tienda"})
	require.NoError(t, err)
	return e
}

func validationErr(t *testing.T, err error) *domain.ValidationError {
	t.Helper()
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr), "se esperaba ValidationError, se obtuvo %v", err)
	return verr
}

func TestClienteCreate_Valido(t *testing.T) {
	e := nuevoEntorno(t)
	c, err := e.clientes.Create(context.Background(), dto.CreateClienteRequest{
		TipoIdentificacionID: e.tipoCC,
		NroIdentificacion:    "1020304050",
		Nombres:              "María Pérez",
		CorreoElectronico:    "maria@example.com",
		NroMovil:             "3001234567",
		CanalID:              "TDA",
	})
	require.NoError(t, err)
	assert.Equal(t, "Activo", c.EstadoDisplay)
}

func TestClienteCreate_ReferenciasInexistentes(t *testing.T) {
	e := nuevoEntorno(t)
	_, err := e.clientes.Create(context.Background(), dto.CreateClienteRequest{
		TipoIdentificacionID: "99999999-9999-4999-8999-999999999999",
		NroIdentificacion:    "1",
		Nombres:              "Sin tipo",
		CanalID:              "ZZZ",
	})
	verr := validationErr(t, err)
	assert.True(t, verr.Has("tipo_identificacion_id", domain.CodeNotFound))
	assert.True(t, verr.Has("canal_id", domain.CodeNotFound))
}

func TestClienteCreate_LongitudesYCorreo(t *testing.T) {
	e := nuevoEntorno(t)
	_, err := e.clientes.Create(context.Background(), dto.CreateClienteRequest{
		TipoIdentificacionID: e.tipoCC,
		NroIdentificacion:    "123456789012",
		Nombres:              "Largo",
		CorreoElectronico:    "no-es-correo",
		NroMovil:             "1234567890123456",
		CanalID:              "TDA",
	})
	verr := validationErr(t, err)
	assert.True(t, verr.Has("nro_identificacion", domain.CodeMax))
	assert.True(t, verr.Has("nro_movil", domain.CodeMax))
	assert.True(t, verr.Has("correo_electronico", domain.CodeEmail))
}

func TestVendedorCreate_CorreoUnicoSinMayusculas(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	_, err := e.vendedores.Create(ctx, dto.CreateVendedorRequest{Nombre: "Ana", Correo: "ana@pos.co"})
	require.NoError(t, err)

	_, err = e.vendedores.Create(ctx, dto.CreateVendedorRequest{Nombre: "Ana B", Correo: "ANA@pos.co"})
	assert.True(t, validationErr(t, err).Has("correo", domain.CodeDuplicate))
}

func TestDeleteReferenciados_Rechazados(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	c, err := e.clientes.Create(ctx, dto.CreateClienteRequest{
		TipoIdentificacionID: e.tipoCC, NroIdentificacion: "77", Nombres: "Luis", CanalID: "TDA",
	})
	require.NoError(t, err)
	v, err := e.vendedores.Create(ctx, dto.CreateVendedorRequest{Nombre: "Ana", Correo: "ana@pos.co"})
	require.NoError(t, err)
	require.NoError(t, memoria.NewOrdenRepository(e.store).Create(ctx, &entity.Orden{
		ID: "o1", ClienteID: c.ClienteID, VendedorID: v.VendedorID, Estado: entity.OrdenPendiente,
	}))

	assert.ErrorIs(t, e.referencias.DeleteTipo(ctx, e.tipoCC), domain.ErrEnUso)
	assert.ErrorIs(t, e.referencias.DeleteCanal(ctx, "TDA"), domain.ErrEnUso)
	assert.ErrorIs(t, e.clientes.Delete(ctx, c.ClienteID), domain.ErrEnUso)
	assert.ErrorIs(t, e.vendedores.Delete(ctx, v.VendedorID), domain.ErrEnUso)
}

func TestCanalCreate_Duplicado(t *testing.T) {
	e := nuevoEntorno(t)
	_, err := e.referencias.CreateCanal(context.Background(), dto.CreateCanalRequest{CanalID: "TDA", NombreCanal: "Otra"})
	assert.True(t, validationErr(t, err).Has("canal_id", domain.CodeDuplicate))
}
