package dto

type ConfiguracionTicketRequest struct {
	NombreNegocio         string  `json:"nombre_negocio" validate:"required,min=2"`
	Direccion             *string `json:"direccion"`
	Telefono              *string `json:"telefono"`
	RFC                   *string `json:"rfc"`
	MensajeAgradecimiento *string `json:"mensaje_agradecimiento"`
	MostrarPuntos         *bool   `json:"mostrar_puntos"`
	Encabezado            *string `json:"encabezado"`
	PiePagina             *string `json:"pie_pagina"`
	LogoURL               *string `json:"logo_url" validate:"omitempty,url"`
}
