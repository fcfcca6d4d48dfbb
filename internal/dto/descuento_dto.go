package dto

import "github.com/shopspring/decimal"

type CrearDescuentoRequest struct {
	ClienteID           *uint           `json:"cliente_id"           validate:"omitempty,min=1"`
	PorcentajeDescuento decimal.Decimal `json:"porcentaje_descuento" validate:"required"`
	FechaFin            *string         `json:"fecha_fin"` // YYYY-MM-DD
	Notas               *string         `json:"notas"`
}

type DescuentoResponse struct {
	ID                  uint            `json:"id"`
	ClienteID           *uint           `json:"cliente_id,omitempty"`
	ClienteNombre       *string         `json:"cliente_nombre,omitempty"`
	PorcentajeDescuento decimal.Decimal `json:"porcentaje_descuento"`
	Activo              bool            `json:"activo"`
	FechaInicio         string          `json:"fecha_inicio"`
	FechaFin            *string         `json:"fecha_fin,omitempty"`
	Notas               *string         `json:"notas,omitempty"`
}
