package model

import "time"

// Categoria classifies products on the cashier screen. Orden controls the
// display position.
type Categoria struct {
	ID          uint   `gorm:"primaryKey"`
	Nombre      string `gorm:"uniqueIndex;not null"`
	Descripcion *string
	Orden       int  `gorm:"not null;default:0"`
	Activo      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
}

func (Categoria) TableName() string { return "categoria" }
