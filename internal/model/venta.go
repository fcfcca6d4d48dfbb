package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venta is the immutable durable record of a completed payment. Items is the
// order's line-item list serialized as JSONB. For points payments PagoCon
// and Cambio are zero and the points breakdown lives in Notas.
type Venta struct {
	ID           uint            `gorm:"primaryKey"`
	OrdenID      string          `gorm:"index;not null"`
	CajeroID     uint            `gorm:"index;not null"`
	CajeroNombre string          `gorm:"not null"`
	ClienteID    *uint           `gorm:"index"`
	Total        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PagoCon      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Cambio       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Items        []ItemOrden     `gorm:"serializer:json;type:jsonb"`
	Notas        *string
	FechaVenta   time.Time `gorm:"index;autoCreateTime"`
}

func (Venta) TableName() string { return "ventas" }
