package dto

import "github.com/shopspring/decimal"

// ─── Producto ────────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	CategoriaID  uint            `json:"categoria_id"  validate:"required,min=1"`
	Nombre       string          `json:"nombre"        validate:"required,min=2"`
	Costo        decimal.Decimal `json:"costo"         validate:"min=0"`
	Precio       decimal.Decimal `json:"precio"        validate:"required"`
	PrecioPuntos int             `json:"precio_puntos" validate:"min=0"`
	Descripcion  *string         `json:"descripcion"`
	Img          *string         `json:"img"`
}

type ActualizarProductoRequest struct {
	CategoriaID  *uint            `json:"categoria_id"  validate:"omitempty,min=1"`
	Nombre       *string          `json:"nombre"        validate:"omitempty,min=2"`
	Costo        *decimal.Decimal `json:"costo"`
	Precio       *decimal.Decimal `json:"precio"`
	PrecioPuntos *int             `json:"precio_puntos" validate:"omitempty,min=0"`
	Descripcion  *string          `json:"descripcion"`
	Img          *string          `json:"img"`
	Status       *string          `json:"status" validate:"omitempty,oneof=disponible 'fuera de servicio'"`
}

type ProductoResponse struct {
	ID           uint            `json:"id"`
	CategoriaID  uint            `json:"categoria_id"`
	Categoria    string          `json:"categoria,omitempty"`
	Nombre       string          `json:"nombre"`
	Costo        decimal.Decimal `json:"costo"`
	Precio       decimal.Decimal `json:"precio"`
	PrecioPuntos int             `json:"precio_puntos"`
	Descripcion  *string         `json:"descripcion,omitempty"`
	Img          *string         `json:"img,omitempty"`
	Status       string          `json:"status"`
}

// ─── Categoria ───────────────────────────────────────────────────────────────

type CrearCategoriaRequest struct {
	Nombre      string  `json:"nombre" validate:"required,min=2"`
	Descripcion *string `json:"descripcion"`
	Orden       int     `json:"orden"  validate:"min=0"`
}

type ActualizarCategoriaRequest struct {
	Nombre      *string `json:"nombre" validate:"omitempty,min=2"`
	Descripcion *string `json:"descripcion"`
	Orden       *int    `json:"orden"  validate:"omitempty,min=0"`
	Activo      *bool   `json:"activo"`
}

type CategoriaResponse struct {
	ID          uint    `json:"id"`
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion,omitempty"`
	Orden       int     `json:"orden"`
	Activo      bool    `json:"activo"`
}
