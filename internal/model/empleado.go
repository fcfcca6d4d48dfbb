package model

import "time"

// Rol values for Empleado.
const (
	RolCajero        = "cajero"
	RolGerente       = "gerente"
	RolAdministrador = "administrador"
	RolCocinero      = "cocinero"
)

// Empleado is a system user identified by a unique 4-digit login code.
// The struct doubles as the session snapshot stored in Redis, hence the
// json tags.
type Empleado struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nombre    string    `gorm:"not null" json:"nombre"`
	Rol       string    `gorm:"type:varchar(20);not null" json:"rol"`
	Codigo    string    `gorm:"type:varchar(4);uniqueIndex;not null" json:"codigo"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides GORM's default singular → plural logic for Spanish names.
func (Empleado) TableName() string { return "empleado" }
