package model

import "time"

// ConfiguracionTicket holds the printable-receipt header/footer settings.
// Logically a single row; the newest row wins.
type ConfiguracionTicket struct {
	ID                    uint    `gorm:"primaryKey"`
	NombreNegocio         string  `gorm:"not null"`
	Direccion             *string
	Telefono              *string
	RFC                   *string `gorm:"column:rfc"`
	MensajeAgradecimiento *string
	MostrarPuntos         bool `gorm:"not null;default:true"`
	Encabezado            *string
	PiePagina             *string
	LogoURL               *string `gorm:"column:logo_url"`
	UpdatedBy             *uint
	UpdatedAt             time.Time
}

func (ConfiguracionTicket) TableName() string { return "configuracion_ticket" }
