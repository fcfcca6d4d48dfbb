package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sallepos/internal/dto"
	"sallepos/internal/model"
	"sallepos/internal/service"
)

type catalogoEnv struct {
	productosSvc  service.ProductoService
	categoriasSvc service.CategoriaService
	productos     *stubProductoRepo
	categorias    *stubCategoriaRepo
}

func buildCatalogoEnv(t *testing.T) (*catalogoEnv, *dto.CategoriaResponse) {
	t.Helper()
	env := &catalogoEnv{
		productos:  newStubProductoRepo(),
		categorias: newStubCategoriaRepo(),
	}
	env.productosSvc = service.NewProductoService(env.productos, env.categorias)
	env.categoriasSvc = service.NewCategoriaService(env.categorias, env.productos)

	cat, err := env.categoriasSvc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "Bebidas"})
	require.NoError(t, err)
	return env, cat
}

func TestCrearProducto(t *testing.T) {
	env, cat := buildCatalogoEnv(t)

	resp, err := env.productosSvc.Crear(context.Background(), dto.CrearProductoRequest{
		CategoriaID:  cat.ID,
		Nombre:       "Agua de horchata",
		Costo:        dec("8"),
		Precio:       dec("25"),
		PrecioPuntos: 25,
	})
	require.NoError(t, err)

	assert.NotZero(t, resp.ID)
	assert.Equal(t, model.ProductoDisponible, resp.Status, "un producto nuevo nace disponible")
	assert.True(t, resp.Precio.Equal(dec("25")))
}

func TestCrearProductoCategoriaInexistente(t *testing.T) {
	env, _ := buildCatalogoEnv(t)

	_, err := env.productosSvc.Crear(context.Background(), dto.CrearProductoRequest{
		CategoriaID: 99,
		Nombre:      "Fantasma",
		Precio:      dec("10"),
	})
	assert.ErrorIs(t, err, service.ErrCategoriaNoEncontrada)
}

func TestListarProductosSoloDisponibles(t *testing.T) {
	env, cat := buildCatalogoEnv(t)
	ctx := context.Background()

	disponible, err := env.productosSvc.Crear(ctx, dto.CrearProductoRequest{
		CategoriaID: cat.ID, Nombre: "Café", Precio: dec("30"),
	})
	require.NoError(t, err)
	fuera, err := env.productosSvc.Crear(ctx, dto.CrearProductoRequest{
		CategoriaID: cat.ID, Nombre: "Temporada", Precio: dec("50"),
	})
	require.NoError(t, err)

	status := model.ProductoFueraDeServicio
	_, err = env.productosSvc.Actualizar(ctx, fuera.ID, dto.ActualizarProductoRequest{Status: &status})
	require.NoError(t, err)

	visibles, err := env.productosSvc.Listar(ctx, true)
	require.NoError(t, err)
	require.Len(t, visibles, 1)
	assert.Equal(t, disponible.ID, visibles[0].ID)

	todos, err := env.productosSvc.Listar(ctx, false)
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}

func TestActualizarProducto(t *testing.T) {
	env, cat := buildCatalogoEnv(t)
	ctx := context.Background()

	creado, err := env.productosSvc.Crear(ctx, dto.CrearProductoRequest{
		CategoriaID: cat.ID, Nombre: "Café", Precio: dec("30"),
	})
	require.NoError(t, err)

	nuevoPrecio := dec("35.555")
	resp, err := env.productosSvc.Actualizar(ctx, creado.ID, dto.ActualizarProductoRequest{
		Precio: &nuevoPrecio,
	})
	require.NoError(t, err)
	assert.True(t, resp.Precio.Equal(dec("35.56")), "el precio se redondea a dos decimales")
	assert.Equal(t, "Café", resp.Nombre)
}

func TestEliminarProductoInexistente(t *testing.T) {
	env, _ := buildCatalogoEnv(t)
	err := env.productosSvc.Eliminar(context.Background(), 99)
	assert.ErrorIs(t, err, service.ErrProductoNoEncontrado)
}

func TestEliminarCategoriaConProductos(t *testing.T) {
	env, cat := buildCatalogoEnv(t)
	ctx := context.Background()

	_, err := env.productosSvc.Crear(ctx, dto.CrearProductoRequest{
		CategoriaID: cat.ID, Nombre: "Café", Precio: dec("30"),
	})
	require.NoError(t, err)

	err = env.categoriasSvc.Eliminar(ctx, cat.ID)
	require.Error(t, err)
	assert.Equal(t, "La categoría tiene productos asignados", err.Error())
}

func TestEliminarCategoriaVacia(t *testing.T) {
	env, cat := buildCatalogoEnv(t)
	ctx := context.Background()

	require.NoError(t, env.categoriasSvc.Eliminar(ctx, cat.ID))
	categorias, err := env.categoriasSvc.Listar(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, categorias)
}

func TestListarCategoriasSoloActivas(t *testing.T) {
	env, cat := buildCatalogoEnv(t)
	ctx := context.Background()

	inactivo := false
	_, err := env.categoriasSvc.Actualizar(ctx, cat.ID, dto.ActualizarCategoriaRequest{Activo: &inactivo})
	require.NoError(t, err)

	activas, err := env.categoriasSvc.Listar(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, activas)
}
