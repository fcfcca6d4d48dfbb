package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"sallepos/internal/dto"
	"sallepos/internal/model"
	"sallepos/internal/repository"
)

var (
	ErrCajaNoAbierta = errors.New("No hay caja abierta para esta sesión")
	ErrCajaYaAbierta = errors.New("La caja ya fue aperturada")
	ErrMontoNegativo = errors.New("El monto inicial no puede ser negativo")
)

type CajaService interface {
	// AbrirCaja funds the drawer: sets the running balance, the immutable
	// opening amount, and the shift start timestamp.
	AbrirCaja(ctx context.Context, sessionID string, monto decimal.Decimal) error
	CajaActual(ctx context.Context, sessionID string) (decimal.Decimal, error)
	ResumenCaja(ctx context.Context, sessionID string, cajeroID uint) (*dto.ResumenCajaResponse, error)
	// CerrarCaja persists the shift reconciliation row. It leaves the drawer
	// keys untouched: the cashier can keep selling and cut again, and only
	// Logout tears the ephemeral state down.
	CerrarCaja(ctx context.Context, sessionID string, cajeroID uint, cajeroNombre string) (*dto.CierreCajaResponse, error)
	Cierres(ctx context.Context, limit int) ([]dto.CierreCajaResponse, error)
}

type cajaService struct {
	sesiones repository.SesionRepository
	ventas   repository.VentaRepository
	cierres  repository.CierreRepository
}

func NewCajaService(
	sesiones repository.SesionRepository,
	ventas repository.VentaRepository,
	cierres repository.CierreRepository,
) CajaService {
	return &cajaService{sesiones: sesiones, ventas: ventas, cierres: cierres}
}

func (s *cajaService) AbrirCaja(ctx context.Context, sessionID string, monto decimal.Decimal) error {
	if monto.IsNegative() {
		return ErrMontoNegativo
	}
	if _, abierta, err := s.sesiones.GetCaja(ctx, sessionID); err != nil {
		return err
	} else if abierta {
		return ErrCajaYaAbierta
	}

	if err := s.sesiones.SetCaja(ctx, sessionID, monto); err != nil {
		return err
	}
	if err := s.sesiones.SetCajaInicial(ctx, sessionID, monto); err != nil {
		return err
	}
	return s.sesiones.SetFechaInicio(ctx, sessionID, time.Now())
}

func (s *cajaService) CajaActual(ctx context.Context, sessionID string) (decimal.Decimal, error) {
	caja, abierta, err := s.sesiones.GetCaja(ctx, sessionID)
	if err != nil {
		return decimal.Zero, err
	}
	if !abierta {
		return decimal.Zero, ErrCajaNoAbierta
	}
	return caja, nil
}

func (s *cajaService) ResumenCaja(ctx context.Context, sessionID string, cajeroID uint) (*dto.ResumenCajaResponse, error) {
	inicial, abierta, err := s.sesiones.GetCajaInicial(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !abierta {
		return nil, ErrCajaNoAbierta
	}

	actual, _, err := s.sesiones.GetCaja(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	fechaInicio, ok, err := s.sesiones.GetFechaInicio(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCajaNoAbierta
	}

	// Shift totals come from the durable sales rows, not from the drawer:
	// the drawer moves with change given, the reconciliation must not.
	resumen, err := s.ventas.ResumenTurno(ctx, cajeroID, fechaInicio)
	if err != nil {
		return nil, err
	}
	ventas, err := s.ventas.VentasTurno(ctx, cajeroID, fechaInicio)
	if err != nil {
		return nil, err
	}

	items := make([]dto.VentaTurnoItem, len(ventas))
	for i := range ventas {
		v := &ventas[i]
		items[i] = dto.VentaTurnoItem{
			ID:           v.ID,
			OrdenID:      v.OrdenID,
			CajeroNombre: v.CajeroNombre,
			Total:        v.Total,
			PagoCon:      v.PagoCon,
			Cambio:       v.Cambio,
			FechaVenta:   v.FechaVenta.Format("2006-01-02 15:04:05"),
			Items:        v.Items,
		}
	}

	return &dto.ResumenCajaResponse{
		MontoInicial:    inicial,
		MontoActual:     actual,
		TotalVentas:     resumen.TotalVentas,
		CantidadOrdenes: resumen.CantidadOrdenes,
		FechaInicio:     fechaInicio.Format("2006-01-02 15:04:05"),
		Ventas:          items,
	}, nil
}

func (s *cajaService) CerrarCaja(ctx context.Context, sessionID string, cajeroID uint, cajeroNombre string) (*dto.CierreCajaResponse, error) {
	resumen, err := s.ResumenCaja(ctx, sessionID, cajeroID)
	if err != nil {
		return nil, err
	}

	fechaInicio, _ := time.ParseInLocation("2006-01-02 15:04:05", resumen.FechaInicio, time.Local)
	cierre := &model.CierreCaja{
		CajeroID:        cajeroID,
		CajeroNombre:    cajeroNombre,
		MontoInicial:    resumen.MontoInicial,
		TotalVentas:     resumen.TotalVentas,
		MontoFinal:      resumen.MontoActual,
		CantidadOrdenes: resumen.CantidadOrdenes,
		FechaInicio:     fechaInicio,
	}
	if err := s.cierres.Create(ctx, cierre); err != nil {
		return nil, err
	}

	return cierreToResponse(cierre), nil
}

func (s *cajaService) Cierres(ctx context.Context, limit int) ([]dto.CierreCajaResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	cierres, err := s.cierres.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CierreCajaResponse, len(cierres))
	for i := range cierres {
		resp[i] = *cierreToResponse(&cierres[i])
	}
	return resp, nil
}

func cierreToResponse(c *model.CierreCaja) *dto.CierreCajaResponse {
	return &dto.CierreCajaResponse{
		ID:              c.ID,
		CajeroID:        c.CajeroID,
		CajeroNombre:    c.CajeroNombre,
		MontoInicial:    c.MontoInicial,
		TotalVentas:     c.TotalVentas,
		MontoFinal:      c.MontoFinal,
		CantidadOrdenes: c.CantidadOrdenes,
		FechaInicio:     c.FechaInicio.Format("2006-01-02 15:04:05"),
		FechaCierre:     c.FechaCierre.Format("2006-01-02 15:04:05"),
	}
}
