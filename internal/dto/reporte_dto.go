package dto

import "github.com/shopspring/decimal"

// RangoFechasFilter is bound from query string of the reporting endpoints.
type RangoFechasFilter struct {
	FechaInicio string `form:"fecha_inicio" validate:"required,datetime=2006-01-02"`
	FechaFin    string `form:"fecha_fin"    validate:"required,datetime=2006-01-02"`
}

type ReporteFinancieroResponse struct {
	FechaInicio    string          `json:"fecha_inicio"`
	FechaFin       string          `json:"fecha_fin"`
	TotalVentas    decimal.Decimal `json:"total_ventas"`
	TotalCostos    decimal.Decimal `json:"total_costos"`
	Ganancia       decimal.Decimal `json:"ganancia"`
	CantidadVentas int             `json:"cantidad_ventas"`
	TicketPromedio decimal.Decimal `json:"ticket_promedio"`
}

type VentasEmpleadoItem struct {
	CajeroID       uint            `json:"cajero_id"`
	CajeroNombre   string          `json:"cajero_nombre"`
	CantidadVentas int             `json:"cantidad_ventas"`
	TotalVendido   decimal.Decimal `json:"total_vendido"`
}

type VentaRecienteItem struct {
	ID           uint            `json:"id"`
	OrdenID      string          `json:"orden_id"`
	CajeroNombre string          `json:"cajero_nombre"`
	Total        decimal.Decimal `json:"total"`
	FechaVenta   string          `json:"fecha_venta"`
}
