package dto

import "sallepos/internal/model"

type LoginRequest struct {
	Codigo string `json:"codigo" validate:"required,len=4,numeric"`
}

type LoginResponse struct {
	SessionID    string          `json:"session_id"`
	Empleado     *model.Empleado `json:"empleado"`
	RequiereCaja bool            `json:"requiere_caja"`
}
