package model

import "github.com/shopspring/decimal"

// Estado values for an Orden. An order is pendiente from creation until it
// reaches one of the two terminal states; pagada and cancelada both remove
// it from the ephemeral store.
const (
	OrdenPendiente = "pendiente"
	OrdenPagada    = "pagada"
	OrdenCancelada = "cancelada"
)

// ItemOrden is a line item, normalized at order creation: prices to decimal,
// cantidad to int regardless of what the client sent.
type ItemOrden struct {
	Nombre       string          `json:"nombre"`
	Precio       decimal.Decimal `json:"precio"`
	Costo        decimal.Decimal `json:"costo"`
	PrecioPuntos int             `json:"precio_puntos"`
	Cantidad     int             `json:"cantidad"`
}

// Subtotal returns precio × cantidad for the line.
func (i ItemOrden) Subtotal() decimal.Decimal {
	return i.Precio.Mul(decimal.NewFromInt(int64(i.Cantidad)))
}

// Orden lives only in Redis (key orden:{id}) until it is paid or cancelled.
// The authoritative record of a paid order is the Venta row; cancelled and
// paid orders also leave an AuditoriaOrden entry.
type Orden struct {
	OrdenID       string          `json:"orden_id"`
	Items         []ItemOrden     `json:"items"`
	Total         decimal.Decimal `json:"total"`
	Estado        string          `json:"estado"`
	Cajero        string          `json:"cajero"`
	CajeroID      uint            `json:"cajero_id"`
	Fecha         string          `json:"fecha"`
	Notas         *string         `json:"notas"`
	ClienteID     *uint           `json:"cliente_id"`
	ClienteNombre *string         `json:"cliente_nombre"`
}
