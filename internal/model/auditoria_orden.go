package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditoriaOrden records every terminal order transition before the order is
// removed from the ephemeral store, so paid and cancelled orders do not
// silently vanish from the working set. Insert-only.
type AuditoriaOrden struct {
	ID           uint            `gorm:"primaryKey"`
	OrdenID      string          `gorm:"index;not null"`
	CajeroID     uint            `gorm:"index;not null"`
	CajeroNombre string          `gorm:"not null"`
	Total        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	EstadoFinal  string          `gorm:"type:varchar(20);not null"`
	Motivo       *string
	CreatedAt    time.Time
}

func (AuditoriaOrden) TableName() string { return "auditoria_orden" }
