package dto

import (
	"github.com/shopspring/decimal"

	"sallepos/internal/model"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ItemOrdenRequest struct {
	Nombre       string          `json:"nombre"        validate:"required"`
	Precio       decimal.Decimal `json:"precio"        validate:"required"`
	Costo        decimal.Decimal `json:"costo"         validate:"min=0"`
	PrecioPuntos int             `json:"precio_puntos" validate:"min=0"`
	Cantidad     int             `json:"cantidad"      validate:"required,min=1"`
}

type CrearOrdenRequest struct {
	Items     []ItemOrdenRequest `json:"items"      validate:"required,min=1,dive"`
	Notas     *string            `json:"notas"`
	ClienteID *uint              `json:"cliente_id" validate:"omitempty,min=1"`
}

type CancelarOrdenRequest struct {
	Motivo *string `json:"motivo"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type OrdenResponse struct {
	OrdenID       string            `json:"orden_id"`
	Items         []model.ItemOrden `json:"items"`
	Total         decimal.Decimal   `json:"total"`
	Estado        string            `json:"estado"`
	Cajero        string            `json:"cajero"`
	CajeroID      uint              `json:"cajero_id"`
	Fecha         string            `json:"fecha"`
	Notas         *string           `json:"notas,omitempty"`
	ClienteID     *uint             `json:"cliente_id,omitempty"`
	ClienteNombre *string           `json:"cliente_nombre,omitempty"`
}

type OrdenListResponse struct {
	Ordenes []OrdenResponse `json:"ordenes"`
}
