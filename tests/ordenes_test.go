package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sallepos/internal/dto"
	"sallepos/internal/model"
	"sallepos/internal/repository"
	"sallepos/internal/service"
)

type ordenEnv struct {
	svc       service.OrdenService
	ordenes   *stubOrdenRepo
	clientes  *stubClienteRepo
	auditoria *stubAuditoriaRepo
}

func buildOrdenEnv() *ordenEnv {
	env := &ordenEnv{
		ordenes:   newStubOrdenRepo(),
		clientes:  newStubClienteRepo(),
		auditoria: &stubAuditoriaRepo{},
	}
	env.svc = service.NewOrdenService(env.ordenes, env.clientes, env.auditoria)
	return env
}

func TestCrearOrden(t *testing.T) {
	env := buildOrdenEnv()

	resp, err := env.svc.Crear(context.Background(), cajeroPrueba(), dto.CrearOrdenRequest{
		Items: []dto.ItemOrdenRequest{
			{Nombre: "Torta de jamón", Precio: dec("45.50"), Costo: dec("20"), PrecioPuntos: 45, Cantidad: 2},
			{Nombre: "Agua de horchata", Precio: dec("25"), Costo: dec("8"), Cantidad: 1},
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.OrdenID)
	assert.Equal(t, model.OrdenPendiente, resp.Estado)
	assert.Equal(t, "Ana", resp.Cajero)
	assert.Equal(t, uint(1), resp.CajeroID)
	// 45.50 * 2 + 25 = 116
	assert.True(t, resp.Total.Equal(dec("116")))
	require.Len(t, resp.Items, 2)
	assert.Equal(t, 2, resp.Items[0].Cantidad)

	guardada, err := env.ordenes.Get(context.Background(), resp.OrdenID)
	require.NoError(t, err)
	assert.True(t, guardada.Total.Equal(dec("116")))
}

func TestCrearOrdenConCliente(t *testing.T) {
	env := buildOrdenEnv()
	cliente := &model.Cliente{Nombre: "Luis", Correo: "luis@example.com"}
	require.NoError(t, env.clientes.Create(context.Background(), cliente))

	resp, err := env.svc.Crear(context.Background(), cajeroPrueba(), dto.CrearOrdenRequest{
		Items:     []dto.ItemOrdenRequest{{Nombre: "Café", Precio: dec("30"), Cantidad: 1}},
		ClienteID: &cliente.ID,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.ClienteID)
	assert.Equal(t, cliente.ID, *resp.ClienteID)
	require.NotNil(t, resp.ClienteNombre)
	assert.Equal(t, "Luis", *resp.ClienteNombre)
}

func TestCrearOrdenClienteInexistente(t *testing.T) {
	env := buildOrdenEnv()
	clienteID := uint(99)

	_, err := env.svc.Crear(context.Background(), cajeroPrueba(), dto.CrearOrdenRequest{
		Items:     []dto.ItemOrdenRequest{{Nombre: "Café", Precio: dec("30"), Cantidad: 1}},
		ClienteID: &clienteID,
	})
	assert.ErrorIs(t, err, repository.ErrClienteNoEncontrado)
}

func TestListarOrdenesPorCajero(t *testing.T) {
	env := buildOrdenEnv()
	ctx := context.Background()

	otro := &model.Empleado{ID: 2, Nombre: "Beto", Rol: model.RolCajero, Codigo: "5678"}
	items := []dto.ItemOrdenRequest{{Nombre: "Café", Precio: dec("30"), Cantidad: 1}}
	_, err := env.svc.Crear(ctx, cajeroPrueba(), dto.CrearOrdenRequest{Items: items})
	require.NoError(t, err)
	_, err = env.svc.Crear(ctx, cajeroPrueba(), dto.CrearOrdenRequest{Items: items})
	require.NoError(t, err)
	_, err = env.svc.Crear(ctx, otro, dto.CrearOrdenRequest{Items: items})
	require.NoError(t, err)

	propias, err := env.svc.Listar(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, propias, 2)

	todas, err := env.svc.ListarTodas(ctx)
	require.NoError(t, err)
	assert.Len(t, todas, 3)
}

func TestCancelarOrden(t *testing.T) {
	env := buildOrdenEnv()
	ctx := context.Background()

	resp, err := env.svc.Crear(ctx, cajeroPrueba(), dto.CrearOrdenRequest{
		Items: []dto.ItemOrdenRequest{{Nombre: "Café", Precio: dec("30"), Cantidad: 1}},
	})
	require.NoError(t, err)

	motivo := "cliente se arrepintió"
	require.NoError(t, env.svc.Cancelar(ctx, resp.OrdenID, cajeroPrueba(), &motivo))

	_, err = env.ordenes.Get(ctx, resp.OrdenID)
	assert.ErrorIs(t, err, repository.ErrOrdenNoEncontrada)

	require.Len(t, env.auditoria.registros, 1)
	registro := env.auditoria.registros[0]
	assert.Equal(t, resp.OrdenID, registro.OrdenID)
	assert.Equal(t, model.OrdenCancelada, registro.EstadoFinal)
	require.NotNil(t, registro.Motivo)
	assert.Equal(t, motivo, *registro.Motivo)
	assert.True(t, registro.Total.Equal(dec("30")))
}

func TestCancelarOrdenInexistente(t *testing.T) {
	env := buildOrdenEnv()
	err := env.svc.Cancelar(context.Background(), "no-existe", cajeroPrueba(), nil)
	assert.ErrorIs(t, err, repository.ErrOrdenNoEncontrada)
	assert.Empty(t, env.auditoria.registros)
}
