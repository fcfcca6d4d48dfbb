package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CierreCaja is the durable snapshot written once per shift reconciliation.
// Never mutated after insert.
type CierreCaja struct {
	ID              uint            `gorm:"primaryKey"`
	CajeroID        uint            `gorm:"index;not null"`
	CajeroNombre    string          `gorm:"not null"`
	MontoInicial    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalVentas     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CantidadOrdenes int             `gorm:"not null"`
	MontoFinal      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	FechaInicio     time.Time       `gorm:"not null"`
	FechaCierre     time.Time       `gorm:"autoCreateTime"`
}

func (CierreCaja) TableName() string { return "cierre_caja" }
