package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"sallepos/internal/dto"
	"sallepos/internal/model"
	"sallepos/internal/repository"
	"sallepos/internal/worker"
)

var (
	ErrOrdenYaPagada = errors.New("Esta orden ya fue pagada")
)

// puntosRate: clients earn 5% of the final total as loyalty points, floored.
var puntosRate = decimal.NewFromFloat(0.05)

type PagoService interface {
	// ProcesarPago settles an open order with cash, optionally applying a
	// client discount and accruing loyalty points.
	ProcesarPago(ctx context.Context, sessionID string, cajero *model.Empleado, req dto.PagoRequest) (*dto.PagoResponse, error)
	// ProcesarPagoPuntos settles an open order by redeeming loyalty points.
	// The cash drawer is never touched on this path.
	ProcesarPagoPuntos(ctx context.Context, cajero *model.Empleado, req dto.PagoPuntosRequest) (*dto.PagoPuntosResponse, error)
}

type pagoService struct {
	ordenes    repository.OrdenRepository
	sesiones   repository.SesionRepository
	ventas     repository.VentaRepository
	clientes   repository.ClienteRepository
	descuentos repository.DescuentoRepository
	auditoria  repository.AuditoriaRepository
	dispatcher *worker.Dispatcher
}

func NewPagoService(
	ordenes repository.OrdenRepository,
	sesiones repository.SesionRepository,
	ventas repository.VentaRepository,
	clientes repository.ClienteRepository,
	descuentos repository.DescuentoRepository,
	auditoria repository.AuditoriaRepository,
	dispatcher *worker.Dispatcher,
) PagoService {
	return &pagoService{
		ordenes:    ordenes,
		sesiones:   sesiones,
		ventas:     ventas,
		clientes:   clientes,
		descuentos: descuentos,
		auditoria:  auditoria,
		dispatcher: dispatcher,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func (s *pagoService) ProcesarPago(ctx context.Context, sessionID string, cajero *model.Empleado, req dto.PagoRequest) (*dto.PagoResponse, error) {
	orden, err := s.ordenes.Get(ctx, req.OrdenID)
	if err != nil {
		return nil, err
	}
	if orden.Estado == model.OrdenPagada {
		return nil, ErrOrdenYaPagada
	}

	// An order created with a client keeps its sale linked to that client
	// even when the payment request omits cliente_id.
	if req.ClienteID == nil {
		req.ClienteID = orden.ClienteID
	}

	totalOriginal := orden.Total
	totalFinal := totalOriginal
	notas := ""
	if orden.Notas != nil {
		notas = *orden.Notas
	}

	// Re-validate the claimed discount server-side. A claim that does not
	// match an active discount is dropped without failing the payment: the
	// cashier sees the undiscounted total in the response.
	var descuentoAplicado *model.DescuentoCliente
	if req.DescuentoID != nil && req.ClienteID != nil && req.PorcentajeDescuento != nil {
		d, err := s.descuentos.FindActivoByCliente(ctx, *req.ClienteID)
		if err == nil && d.ID == *req.DescuentoID && d.PorcentajeDescuento.Equal(*req.PorcentajeDescuento) {
			descuentoAplicado = d
			pct := d.PorcentajeDescuento.Div(decimal.NewFromInt(100))
			montoDescuento := totalOriginal.Mul(pct).Round(2)
			totalFinal = totalOriginal.Sub(montoDescuento)

			linea := fmt.Sprintf("Descuento aplicado: %s%% (-$%s). Total original: $%s. Total con descuento: $%s",
				d.PorcentajeDescuento.String(), montoDescuento.StringFixed(2),
				totalOriginal.StringFixed(2), totalFinal.StringFixed(2))
			if d.Notas != nil && *d.Notas != "" {
				linea += fmt.Sprintf("\nMotivo del descuento: %s", *d.Notas)
			}
			if notas != "" {
				notas += "\n"
			}
			notas += linea
		} else {
			log.Warn().
				Str("orden_id", req.OrdenID).
				Uint("descuento_id", *req.DescuentoID).
				Msg("descuento reclamado no coincide con uno activo, se ignora")
		}
	}

	if req.PagoCon.LessThan(totalFinal) {
		faltan := totalFinal.Sub(req.PagoCon)
		return nil, fmt.Errorf("Pago insuficiente. Faltan $%s", faltan.StringFixed(2))
	}
	cambio := req.PagoCon.Sub(totalFinal)

	// Drawer liquidity: the drawer must be able to hand over the change.
	caja, abierta, err := s.sesiones.GetCaja(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !abierta {
		return nil, ErrCajaNoAbierta
	}
	if caja.Add(totalFinal).Sub(cambio).IsNegative() {
		return nil, errors.New("No hay suficiente efectivo en caja para dar cambio")
	}

	// Loyalty accrual on the discounted total
	puntosGanados := 0
	if req.ClienteID != nil {
		puntosGanados = int(totalFinal.Mul(puntosRate).IntPart())
	}

	var notasPtr *string
	if notas != "" {
		notasPtr = &notas
	}
	venta := &model.Venta{
		OrdenID:      orden.OrdenID,
		CajeroID:     cajero.ID,
		CajeroNombre: cajero.Nombre,
		ClienteID:    req.ClienteID,
		Total:        totalFinal,
		PagoCon:      req.PagoCon,
		Cambio:       cambio,
		Items:        orden.Items,
		Notas:        notasPtr,
	}

	// Sale row and points accrual commit together
	txErr := runTx(ctx, s.ventas.DB(), func(tx *gorm.DB) error {
		if err := s.ventas.Create(ctx, tx, venta); err != nil {
			return err
		}
		if req.ClienteID != nil && puntosGanados > 0 {
			if err := s.clientes.AgregarPuntos(ctx, tx, *req.ClienteID, puntosGanados); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	// A consumed discount never applies twice. Deletion failure is logged but
	// does not undo the committed sale.
	if descuentoAplicado != nil {
		if err := s.descuentos.EliminarPermanente(ctx, descuentoAplicado.ID); err != nil {
			log.Error().Err(err).
				Uint("descuento_id", descuentoAplicado.ID).
				Msg("no se pudo eliminar el descuento consumido")
		}
	}

	// Drawer takes the tendered cash and gives change: net movement is the
	// final total. Atomic on Redis, so concurrent payments never lose money.
	cajaNueva, err := s.sesiones.IncrementarCaja(ctx, sessionID, totalFinal)
	if err != nil {
		return nil, err
	}

	if err := s.ordenes.Delete(ctx, req.OrdenID); err != nil {
		return nil, err
	}
	s.registrarPagada(ctx, orden, cajero)

	resp := &dto.PagoResponse{
		VentaID:    venta.ID,
		Total:      totalFinal,
		PagoCon:    req.PagoCon,
		Cambio:     cambio,
		CajaActual: cajaNueva,
	}
	if req.ClienteID != nil {
		resp.PuntosGanados = puntosGanados
		if cliente, err := s.clientes.FindByID(ctx, *req.ClienteID); err == nil {
			resp.PuntosNuevos = cliente.PuntosAcumulados
			s.enviarRecibo(ctx, venta.ID, cliente.Correo)
		}
	}
	if descuentoAplicado != nil {
		resp.DescuentoAplicado = &descuentoAplicado.PorcentajeDescuento
		resp.TotalOriginal = &totalOriginal
	}
	return resp, nil
}

func (s *pagoService) ProcesarPagoPuntos(ctx context.Context, cajero *model.Empleado, req dto.PagoPuntosRequest) (*dto.PagoPuntosResponse, error) {
	orden, err := s.ordenes.Get(ctx, req.OrdenID)
	if err != nil {
		return nil, err
	}
	if orden.Estado == model.OrdenPagada {
		return nil, ErrOrdenYaPagada
	}

	cliente, err := s.clientes.FindByID(ctx, req.ClienteID)
	if err != nil {
		return nil, repository.ErrClienteNoEncontrado
	}
	if cliente.PuntosAcumulados < req.PuntosNecesarios {
		return nil, fmt.Errorf("Puntos insuficientes. Tiene %d, necesita %d",
			cliente.PuntosAcumulados, req.PuntosNecesarios)
	}

	notas := notasPagoPuntos(orden, req.PuntosNecesarios)
	clienteID := cliente.ID
	venta := &model.Venta{
		OrdenID:      orden.OrdenID,
		CajeroID:     cajero.ID,
		CajeroNombre: cajero.Nombre,
		ClienteID:    &clienteID,
		Total:        orden.Total,
		PagoCon:      decimal.Zero,
		Cambio:       decimal.Zero,
		Items:        orden.Items,
		Notas:        &notas,
	}

	// Deduction and sale row commit atomically: a crash can never leave the
	// client charged without a recorded sale, or vice versa.
	txErr := runTx(ctx, s.ventas.DB(), func(tx *gorm.DB) error {
		if err := s.clientes.DescontarPuntos(ctx, tx, cliente.ID, req.PuntosNecesarios); err != nil {
			return err
		}
		return s.ventas.Create(ctx, tx, venta)
	})
	if txErr != nil {
		return nil, txErr
	}

	if err := s.ordenes.Delete(ctx, req.OrdenID); err != nil {
		return nil, err
	}
	s.registrarPagada(ctx, orden, cajero)
	s.enviarRecibo(ctx, venta.ID, cliente.Correo)

	return &dto.PagoPuntosResponse{
		VentaID:           venta.ID,
		PuntosDescontados: req.PuntosNecesarios,
		PuntosRestantes:   cliente.PuntosAcumulados - req.PuntosNecesarios,
	}, nil
}

// notasPagoPuntos builds the per-item redemption breakdown stored on the sale.
func notasPagoPuntos(orden *model.Orden, puntos int) string {
	var b strings.Builder
	b.WriteString("Pagado con puntos de lealtad:")
	for _, item := range orden.Items {
		fmt.Fprintf(&b, "\n- %s x%d = %d pts", item.Nombre, item.Cantidad, item.PrecioPuntos*item.Cantidad)
	}
	fmt.Fprintf(&b, "\nTotal: %d puntos", puntos)
	return b.String()
}

// registrarPagada leaves the durable audit record for a settled order.
// Best-effort: the payment already committed.
func (s *pagoService) registrarPagada(ctx context.Context, orden *model.Orden, cajero *model.Empleado) {
	err := s.auditoria.Create(ctx, &model.AuditoriaOrden{
		OrdenID:      orden.OrdenID,
		CajeroID:     cajero.ID,
		CajeroNombre: cajero.Nombre,
		Total:        orden.Total,
		EstadoFinal:  model.OrdenPagada,
	})
	if err != nil {
		log.Error().Err(err).Str("orden_id", orden.OrdenID).Msg("no se pudo registrar auditoría de orden pagada")
	}
}

// enviarRecibo queues the receipt email for clients with a registered address.
func (s *pagoService) enviarRecibo(ctx context.Context, ventaID uint, correo string) {
	if s.dispatcher == nil || correo == "" {
		return
	}
	_ = s.dispatcher.EnqueueRecibo(ctx, worker.ReciboJob{VentaID: ventaID, Correo: correo})
}
