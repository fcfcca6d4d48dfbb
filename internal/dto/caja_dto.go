package dto

import (
	"github.com/shopspring/decimal"

	"sallepos/internal/model"
)

type SetCajaRequest struct {
	// Pointer: a drawer can legitimately open with $0.00, so presence and
	// zero-value must be distinguishable.
	Monto *decimal.Decimal `json:"monto" validate:"required"`
}

type CajaResponse struct {
	Caja decimal.Decimal `json:"caja"`
}

// VentaTurnoItem is one sale row inside the shift summary.
type VentaTurnoItem struct {
	ID           uint              `json:"id"`
	OrdenID      string            `json:"orden_id"`
	CajeroNombre string            `json:"cajero_nombre"`
	Total        decimal.Decimal   `json:"total"`
	PagoCon      decimal.Decimal   `json:"pago_con"`
	Cambio       decimal.Decimal   `json:"cambio"`
	FechaVenta   string            `json:"fecha_venta"`
	Items        []model.ItemOrden `json:"items"`
}

// ResumenCajaResponse is returned by GET /api/resumen-caja before closing the shift.
type ResumenCajaResponse struct {
	MontoInicial    decimal.Decimal  `json:"monto_inicial"`
	MontoActual     decimal.Decimal  `json:"monto_actual"`
	TotalVentas     decimal.Decimal  `json:"total_ventas"`
	CantidadOrdenes int              `json:"cantidad_ordenes"`
	FechaInicio     string           `json:"fecha_inicio"`
	Ventas          []VentaTurnoItem `json:"ventas"`
}

type CierreCajaResponse struct {
	ID              uint            `json:"id"`
	CajeroID        uint            `json:"cajero_id"`
	CajeroNombre    string          `json:"cajero_nombre"`
	MontoInicial    decimal.Decimal `json:"monto_inicial"`
	TotalVentas     decimal.Decimal `json:"total_ventas"`
	MontoFinal      decimal.Decimal `json:"monto_final"`
	CantidadOrdenes int             `json:"cantidad_ordenes"`
	FechaInicio     string          `json:"fecha_inicio"`
	FechaCierre     string          `json:"fecha_cierre"`
}
