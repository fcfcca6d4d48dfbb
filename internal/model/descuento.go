package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DescuentoCliente is a percentage discount. ClienteID nil means a general
// discount. At most one active discount per client: creating a new one
// deactivates the previous ones. A discount consumed by a payment is deleted
// permanently, not deactivated.
type DescuentoCliente struct {
	ID                  uint            `gorm:"primaryKey"`
	ClienteID           *uint           `gorm:"index"`
	PorcentajeDescuento decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	Activo              bool            `gorm:"not null;default:true"`
	FechaInicio         time.Time       `gorm:"autoCreateTime"`
	FechaFin            *time.Time
	Notas               *string
	CreatedAt           time.Time

	Cliente *Cliente `gorm:"foreignKey:ClienteID"`
}

func (DescuentoCliente) TableName() string { return "descuento_cliente" }
