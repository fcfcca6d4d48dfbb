package tests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sallepos/internal/dto"
	"sallepos/internal/model"
	"sallepos/internal/service"
)

func sembrarVentas(t *testing.T, ventas *stubVentaRepo) {
	t.Helper()
	ctx := context.Background()
	fecha := time.Date(2026, 8, 15, 12, 0, 0, 0, time.Local)

	// Dos ventas de Ana y una de Beto dentro del rango
	for _, total := range []string{"100", "60"} {
		require.NoError(t, ventas.Create(ctx, nil, &model.Venta{
			OrdenID: "ana-" + total, CajeroID: 1, CajeroNombre: "Ana",
			Total: dec(total), PagoCon: dec(total), Cambio: dec("0"),
			Items: []model.ItemOrden{
				{Nombre: "Torta", Precio: dec(total), Costo: dec("20"), Cantidad: 1},
			},
			FechaVenta: fecha,
		}))
	}
	require.NoError(t, ventas.Create(ctx, nil, &model.Venta{
		OrdenID: "beto-1", CajeroID: 2, CajeroNombre: "Beto",
		Total: dec("40"), PagoCon: dec("40"), Cambio: dec("0"),
		Items: []model.ItemOrden{
			{Nombre: "Café", Precio: dec("40"), Costo: dec("10"), Cantidad: 1},
		},
		FechaVenta: fecha,
	}))
	// Fuera del rango consultado
	require.NoError(t, ventas.Create(ctx, nil, &model.Venta{
		OrdenID: "vieja", CajeroID: 1, CajeroNombre: "Ana",
		Total: dec("500"), PagoCon: dec("500"), Cambio: dec("0"),
		FechaVenta: time.Date(2026, 7, 1, 12, 0, 0, 0, time.Local),
	}))
}

func TestReporteFinanciero(t *testing.T) {
	ventas := newStubVentaRepo()
	sembrarVentas(t, ventas)
	svc := service.NewReporteService(ventas, t.TempDir())

	resp, err := svc.ReporteFinanciero(context.Background(), dto.RangoFechasFilter{
		FechaInicio: "2026-08-01",
		FechaFin:    "2026-08-31",
	})
	require.NoError(t, err)

	assert.True(t, resp.TotalVentas.Equal(dec("200")))
	assert.True(t, resp.TotalCostos.Equal(dec("50")))
	assert.True(t, resp.Ganancia.Equal(dec("150")))
	assert.Equal(t, 3, resp.CantidadVentas)
	// 200 / 3 redondeado a dos decimales
	assert.True(t, resp.TicketPromedio.Equal(dec("66.67")))
}

func TestReporteFinancieroSinVentas(t *testing.T) {
	svc := service.NewReporteService(newStubVentaRepo(), t.TempDir())

	resp, err := svc.ReporteFinanciero(context.Background(), dto.RangoFechasFilter{
		FechaInicio: "2026-01-01",
		FechaFin:    "2026-01-31",
	})
	require.NoError(t, err)
	assert.Zero(t, resp.CantidadVentas)
	assert.True(t, resp.TicketPromedio.IsZero(), "sin ventas el promedio es cero, no una división entre cero")
}

func TestReporteFinancieroRangoInvalido(t *testing.T) {
	svc := service.NewReporteService(newStubVentaRepo(), t.TempDir())

	_, err := svc.ReporteFinanciero(context.Background(), dto.RangoFechasFilter{
		FechaInicio: "2026-08-31",
		FechaFin:    "2026-08-01",
	})
	require.Error(t, err)
	assert.Equal(t, "fecha_fin no puede ser anterior a fecha_inicio", err.Error())
}

func TestVentasPorEmpleado(t *testing.T) {
	ventas := newStubVentaRepo()
	sembrarVentas(t, ventas)
	svc := service.NewReporteService(ventas, t.TempDir())

	items, err := svc.VentasPorEmpleado(context.Background(), dto.RangoFechasFilter{
		FechaInicio: "2026-08-01",
		FechaFin:    "2026-08-31",
	})
	require.NoError(t, err)
	require.Len(t, items, 2)

	porNombre := make(map[string]dto.VentasEmpleadoItem, len(items))
	for _, it := range items {
		porNombre[it.CajeroNombre] = it
	}
	assert.Equal(t, 2, porNombre["Ana"].CantidadVentas)
	assert.True(t, porNombre["Ana"].TotalVendido.Equal(dec("160")))
	assert.Equal(t, 1, porNombre["Beto"].CantidadVentas)
	assert.True(t, porNombre["Beto"].TotalVendido.Equal(dec("40")))
}

func TestVentasRecientes(t *testing.T) {
	ventas := newStubVentaRepo()
	sembrarVentas(t, ventas)
	svc := service.NewReporteService(ventas, t.TempDir())

	items, err := svc.VentasRecientes(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "vieja", items[0].OrdenID, "la más reciente primero")
}

func TestReporteEmpleadosPDF(t *testing.T) {
	ventas := newStubVentaRepo()
	sembrarVentas(t, ventas)
	svc := service.NewReporteService(ventas, t.TempDir())

	path, err := svc.ReporteEmpleadosPDF(context.Background(), dto.RangoFechasFilter{
		FechaInicio: "2026-08-01",
		FechaFin:    "2026-08-31",
	})
	require.NoError(t, err)
	assert.FileExists(t, path)
}
