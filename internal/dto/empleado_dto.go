package dto

type CrearEmpleadoRequest struct {
	Nombre string `json:"nombre" validate:"required,min=2"`
	Rol    string `json:"rol"    validate:"required,oneof=cajero gerente administrador cocinero"`
	Codigo string `json:"codigo" validate:"required,len=4,numeric"`
}

type ActualizarEmpleadoRequest struct {
	Nombre *string `json:"nombre" validate:"omitempty,min=2"`
	Rol    *string `json:"rol"    validate:"omitempty,oneof=cajero gerente administrador cocinero"`
	Codigo *string `json:"codigo" validate:"omitempty,len=4,numeric"`
}

type EmpleadoResponse struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
	Rol    string `json:"rol"`
}
