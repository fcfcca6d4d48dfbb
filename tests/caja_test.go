package tests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sallepos/internal/handler"
	"sallepos/internal/model"
	"sallepos/internal/service"
)

type cajaEnv struct {
	svc      service.CajaService
	sesiones *stubSesionRepo
	ventas   *stubVentaRepo
	cierres  *stubCierreRepo
}

func buildCajaEnv() *cajaEnv {
	env := &cajaEnv{
		sesiones: newStubSesionRepo(),
		ventas:   newStubVentaRepo(),
		cierres:  &stubCierreRepo{},
	}
	env.svc = service.NewCajaService(env.sesiones, env.ventas, env.cierres)
	return env
}

func TestAbrirCaja(t *testing.T) {
	env := buildCajaEnv()

	err := env.svc.AbrirCaja(context.Background(), sesionPrueba, dec("500"))
	require.NoError(t, err)

	caja, err := env.svc.CajaActual(context.Background(), sesionPrueba)
	require.NoError(t, err)
	assert.True(t, caja.Equal(dec("500")))

	inicial, ok, _ := env.sesiones.GetCajaInicial(context.Background(), sesionPrueba)
	assert.True(t, ok)
	assert.True(t, inicial.Equal(dec("500")))
	_, ok, _ = env.sesiones.GetFechaInicio(context.Background(), sesionPrueba)
	assert.True(t, ok, "abrir caja fija el inicio del turno")
}

func TestAbrirCajaMontoNegativo(t *testing.T) {
	env := buildCajaEnv()
	err := env.svc.AbrirCaja(context.Background(), sesionPrueba, dec("-1"))
	assert.ErrorIs(t, err, service.ErrMontoNegativo)
}

func TestAbrirCajaMontoCero(t *testing.T) {
	env := buildCajaEnv()

	require.NoError(t, env.svc.AbrirCaja(context.Background(), sesionPrueba, dec("0")))

	caja, err := env.svc.CajaActual(context.Background(), sesionPrueba)
	require.NoError(t, err)
	assert.True(t, caja.IsZero(), "un turno puede arrancar sin fondo en el cajón")
}

// postSetCaja ejecuta el handler de apertura con un body JSON crudo.
func postSetCaja(t *testing.T, env *cajaEnv, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/set-caja", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	handler.NewCajaHandler(env.svc).AbrirCaja(c)
	return w
}

func TestSetCajaAceptaMontoCero(t *testing.T) {
	env := buildCajaEnv()

	w := postSetCaja(t, env, `{"monto": 0}`)
	assert.Equal(t, http.StatusOK, w.Code, "monto 0 es una apertura válida, no un campo faltante")
}

func TestSetCajaSinMonto(t *testing.T) {
	env := buildCajaEnv()

	w := postSetCaja(t, env, `{}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAbrirCajaDosVeces(t *testing.T) {
	env := buildCajaEnv()
	require.NoError(t, env.svc.AbrirCaja(context.Background(), sesionPrueba, dec("500")))

	err := env.svc.AbrirCaja(context.Background(), sesionPrueba, dec("200"))
	assert.ErrorIs(t, err, service.ErrCajaYaAbierta)

	caja, _ := env.svc.CajaActual(context.Background(), sesionPrueba)
	assert.True(t, caja.Equal(dec("500")), "el monto original no se pisa")
}

func TestCajaActualSinCaja(t *testing.T) {
	env := buildCajaEnv()
	_, err := env.svc.CajaActual(context.Background(), sesionPrueba)
	assert.ErrorIs(t, err, service.ErrCajaNoAbierta)
}

func TestResumenCajaSoloCuentaElTurno(t *testing.T) {
	env := buildCajaEnv()
	ctx := context.Background()
	inicio := time.Now()

	require.NoError(t, env.sesiones.SetCaja(ctx, sesionPrueba, dec("650")))
	require.NoError(t, env.sesiones.SetCajaInicial(ctx, sesionPrueba, dec("500")))
	require.NoError(t, env.sesiones.SetFechaInicio(ctx, sesionPrueba, inicio))

	// Venta de un turno anterior: no debe contar
	require.NoError(t, env.ventas.Create(ctx, nil, &model.Venta{
		OrdenID: "vieja", CajeroID: 1, CajeroNombre: "Ana",
		Total: dec("999"), PagoCon: dec("999"), Cambio: dec("0"),
		FechaVenta: inicio.Add(-2 * time.Hour),
	}))
	// Venta de otro cajero dentro del turno: tampoco
	require.NoError(t, env.ventas.Create(ctx, nil, &model.Venta{
		OrdenID: "ajena", CajeroID: 2, CajeroNombre: "Beto",
		Total: dec("80"), PagoCon: dec("80"), Cambio: dec("0"),
		FechaVenta: inicio.Add(time.Minute),
	}))
	// Dos ventas propias del turno
	for _, total := range []string{"100", "50"} {
		require.NoError(t, env.ventas.Create(ctx, nil, &model.Venta{
			OrdenID: "propia-" + total, CajeroID: 1, CajeroNombre: "Ana",
			Total: dec(total), PagoCon: dec(total), Cambio: dec("0"),
			FechaVenta: inicio.Add(time.Minute),
		}))
	}

	resumen, err := env.svc.ResumenCaja(ctx, sesionPrueba, 1)
	require.NoError(t, err)

	assert.True(t, resumen.MontoInicial.Equal(dec("500")))
	assert.True(t, resumen.MontoActual.Equal(dec("650")))
	assert.True(t, resumen.TotalVentas.Equal(dec("150")))
	assert.Equal(t, 2, resumen.CantidadOrdenes)

	// La lista detallada trae solo las ventas propias del turno
	require.Len(t, resumen.Ventas, 2)
	ordenes := []string{resumen.Ventas[0].OrdenID, resumen.Ventas[1].OrdenID}
	assert.ElementsMatch(t, []string{"propia-100", "propia-50"}, ordenes)
	assert.Equal(t, "Ana", resumen.Ventas[0].CajeroNombre)
}

func TestCerrarCaja(t *testing.T) {
	env := buildCajaEnv()
	ctx := context.Background()
	require.NoError(t, env.svc.AbrirCaja(ctx, sesionPrueba, dec("500")))
	require.NoError(t, env.sesiones.SaveSesion(ctx, sesionPrueba, cajeroPrueba()))

	require.NoError(t, env.ventas.Create(ctx, nil, &model.Venta{
		OrdenID: "ord-1", CajeroID: 1, CajeroNombre: "Ana",
		Total: dec("120"), PagoCon: dec("120"), Cambio: dec("0"),
	}))
	_, err := env.sesiones.IncrementarCaja(ctx, sesionPrueba, dec("120"))
	require.NoError(t, err)

	cierre, err := env.svc.CerrarCaja(ctx, sesionPrueba, 1, "Ana")
	require.NoError(t, err)

	assert.True(t, cierre.MontoInicial.Equal(dec("500")))
	assert.True(t, cierre.TotalVentas.Equal(dec("120")))
	assert.True(t, cierre.MontoFinal.Equal(dec("620")))
	assert.Equal(t, 1, cierre.CantidadOrdenes)
	require.Len(t, env.cierres.cierres, 1)

	// El corte no toca el estado efímero: el cajón sigue abierto y la
	// sesión viva; solo cerrar-sesion limpia
	caja, err := env.svc.CajaActual(ctx, sesionPrueba)
	require.NoError(t, err)
	assert.True(t, caja.Equal(dec("620")))
	_, err = env.sesiones.GetSesion(ctx, sesionPrueba)
	assert.NoError(t, err)
}

func TestCerrarCajaPermiteSegundoCorte(t *testing.T) {
	env := buildCajaEnv()
	ctx := context.Background()
	require.NoError(t, env.svc.AbrirCaja(ctx, sesionPrueba, dec("500")))

	_, err := env.svc.CerrarCaja(ctx, sesionPrueba, 1, "Ana")
	require.NoError(t, err)

	// El cajero sigue vendiendo después del primer corte
	require.NoError(t, env.ventas.Create(ctx, nil, &model.Venta{
		OrdenID: "ord-tarde", CajeroID: 1, CajeroNombre: "Ana",
		Total: dec("40"), PagoCon: dec("40"), Cambio: dec("0"),
	}))
	_, err = env.sesiones.IncrementarCaja(ctx, sesionPrueba, dec("40"))
	require.NoError(t, err)

	segundo, err := env.svc.CerrarCaja(ctx, sesionPrueba, 1, "Ana")
	require.NoError(t, err)
	assert.True(t, segundo.MontoFinal.Equal(dec("540")))
	assert.Len(t, env.cierres.cierres, 2)
}

func TestCerrarCajaSinAbrir(t *testing.T) {
	env := buildCajaEnv()
	_, err := env.svc.CerrarCaja(context.Background(), sesionPrueba, 1, "Ana")
	assert.ErrorIs(t, err, service.ErrCajaNoAbierta)
	assert.Empty(t, env.cierres.cierres)
}

func TestCierres(t *testing.T) {
	env := buildCajaEnv()
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, env.cierres.Create(ctx, &model.CierreCaja{
			CajeroID: 1, CajeroNombre: "Ana",
			MontoInicial: dec("500"), TotalVentas: dec("100"), MontoFinal: dec("600"),
			CantidadOrdenes: 2, FechaInicio: time.Now(),
		}))
	}

	cierres, err := env.svc.Cierres(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, cierres, 2)
}
