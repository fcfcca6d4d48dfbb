package model

import "time"

// Cliente is a loyalty-program member. PuntosAcumulados never goes negative;
// the payment engine rejects redemptions that would overdraw it.
type Cliente struct {
	ID               uint   `gorm:"primaryKey"`
	Nombre           string `gorm:"not null"`
	Correo           string `gorm:"uniqueIndex;not null"`
	PuntosAcumulados int    `gorm:"not null;default:0"`
	UltimaVisita     *time.Time
	CreatedAt        time.Time
}

func (Cliente) TableName() string { return "cliente" }
