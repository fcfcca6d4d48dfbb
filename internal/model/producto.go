package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status values for Producto.
const (
	ProductoDisponible      = "disponible"
	ProductoFueraDeServicio = "fuera de servicio"
)

// Producto is a catalog item. PrecioPuntos is the loyalty-points price used
// by the points payment path; zero means the product cannot be bought with
// points alone.
type Producto struct {
	ID           uint            `gorm:"primaryKey"`
	CategoriaID  uint            `gorm:"index;not null"`
	Nombre       string          `gorm:"index;not null"`
	Costo        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Precio       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PrecioPuntos int             `gorm:"not null;default:0"`
	Descripcion  *string
	Img          *string
	Status       string `gorm:"type:varchar(20);not null;default:'disponible'"`
	CreatedAt    time.Time

	Categoria *Categoria `gorm:"foreignKey:CategoriaID"`
}

func (Producto) TableName() string { return "producto" }
