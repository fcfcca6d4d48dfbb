package dto

type CrearClienteRequest struct {
	Nombre string `json:"nombre" validate:"required,min=2"`
	Correo string `json:"correo" validate:"required,email"`
}

type ActualizarClienteRequest struct {
	Nombre *string `json:"nombre" validate:"omitempty,min=2"`
	Correo *string `json:"correo" validate:"omitempty,email"`
}

type ClienteResponse struct {
	ID               uint    `json:"id"`
	Nombre           string  `json:"nombre"`
	Correo           string  `json:"correo"`
	PuntosAcumulados int     `json:"puntos_acumulados"`
	UltimaVisita     *string `json:"ultima_visita,omitempty"`
}
