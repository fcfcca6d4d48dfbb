package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type PagoRequest struct {
	OrdenID string          `json:"orden_id" validate:"required"`
	PagoCon decimal.Decimal `json:"pago_con" validate:"required"`
	// Optional: link the sale to a loyalty client so points accrue.
	ClienteID *uint `json:"cliente_id" validate:"omitempty,min=1"`
	// Optional discount — the server re-validates against descuento_cliente
	// and silently drops it when the claim does not match an active discount.
	DescuentoID         *uint            `json:"descuento_id"          validate:"omitempty,min=1"`
	PorcentajeDescuento *decimal.Decimal `json:"porcentaje_descuento"`
	TotalOriginal       *decimal.Decimal `json:"total_original"`
}

type PagoPuntosRequest struct {
	OrdenID          string `json:"orden_id"          validate:"required"`
	ClienteID        uint   `json:"cliente_id"        validate:"required,min=1"`
	PuntosNecesarios int    `json:"puntos_necesarios" validate:"required,gt=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PagoResponse struct {
	VentaID           uint             `json:"venta_id"`
	Total             decimal.Decimal  `json:"total"`
	PagoCon           decimal.Decimal  `json:"pago_con"`
	Cambio            decimal.Decimal  `json:"cambio"`
	CajaActual        decimal.Decimal  `json:"caja_actual"`
	PuntosGanados     int              `json:"puntos_ganados,omitempty"`
	PuntosNuevos      int              `json:"puntos_nuevos,omitempty"`
	DescuentoAplicado *decimal.Decimal `json:"descuento_aplicado,omitempty"`
	TotalOriginal     *decimal.Decimal `json:"total_original,omitempty"`
}

type PagoPuntosResponse struct {
	VentaID           uint `json:"venta_id"`
	PuntosDescontados int  `json:"puntos_descontados"`
	PuntosRestantes   int  `json:"puntos_restantes"`
}
