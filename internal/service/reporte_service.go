package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"sallepos/internal/dto"
	"sallepos/internal/infra"
	"sallepos/internal/repository"
)

type ReporteService interface {
	ReporteFinanciero(ctx context.Context, filter dto.RangoFechasFilter) (*dto.ReporteFinancieroResponse, error)
	VentasPorEmpleado(ctx context.Context, filter dto.RangoFechasFilter) ([]dto.VentasEmpleadoItem, error)
	// ReporteEmpleadosPDF renders the sales-by-employee report and returns the
	// path of the generated file.
	ReporteEmpleadosPDF(ctx context.Context, filter dto.RangoFechasFilter) (string, error)
	VentasRecientes(ctx context.Context, limit int) ([]dto.VentaRecienteItem, error)
}

type reporteService struct {
	ventas      repository.VentaRepository
	storagePath string
}

func NewReporteService(ventas repository.VentaRepository, storagePath string) ReporteService {
	return &reporteService{ventas: ventas, storagePath: storagePath}
}

// parseRango turns the inclusive YYYY-MM-DD range into [desde, hasta) bounds.
func parseRango(filter dto.RangoFechasFilter) (time.Time, time.Time, error) {
	desde, err := time.ParseInLocation("2006-01-02", filter.FechaInicio, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("fecha_inicio inválida, use el formato YYYY-MM-DD")
	}
	fin, err := time.ParseInLocation("2006-01-02", filter.FechaFin, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("fecha_fin inválida, use el formato YYYY-MM-DD")
	}
	hasta := fin.AddDate(0, 0, 1)
	if hasta.Before(desde) {
		return time.Time{}, time.Time{}, errors.New("fecha_fin no puede ser anterior a fecha_inicio")
	}
	return desde, hasta, nil
}

func (s *reporteService) ReporteFinanciero(ctx context.Context, filter dto.RangoFechasFilter) (*dto.ReporteFinancieroResponse, error) {
	desde, hasta, err := parseRango(filter)
	if err != nil {
		return nil, err
	}

	resumen, err := s.ventas.ResumenFinanciero(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}

	ticketPromedio := decimal.Zero
	if resumen.CantidadVentas > 0 {
		ticketPromedio = resumen.TotalVentas.Div(decimal.NewFromInt(int64(resumen.CantidadVentas))).Round(2)
	}

	return &dto.ReporteFinancieroResponse{
		FechaInicio:    filter.FechaInicio,
		FechaFin:       filter.FechaFin,
		TotalVentas:    resumen.TotalVentas,
		TotalCostos:    resumen.TotalCostos,
		Ganancia:       resumen.TotalVentas.Sub(resumen.TotalCostos),
		CantidadVentas: resumen.CantidadVentas,
		TicketPromedio: ticketPromedio,
	}, nil
}

func (s *reporteService) VentasPorEmpleado(ctx context.Context, filter dto.RangoFechasFilter) ([]dto.VentasEmpleadoItem, error) {
	desde, hasta, err := parseRango(filter)
	if err != nil {
		return nil, err
	}
	rows, err := s.ventas.VentasPorEmpleado(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VentasEmpleadoItem, len(rows))
	for i, r := range rows {
		items[i] = dto.VentasEmpleadoItem{
			CajeroID:       r.CajeroID,
			CajeroNombre:   r.CajeroNombre,
			CantidadVentas: r.CantidadVentas,
			TotalVendido:   r.TotalVendido,
		}
	}
	return items, nil
}

func (s *reporteService) ReporteEmpleadosPDF(ctx context.Context, filter dto.RangoFechasFilter) (string, error) {
	items, err := s.VentasPorEmpleado(ctx, filter)
	if err != nil {
		return "", err
	}
	rows := make([]infra.ReporteEmpleadoRow, len(items))
	for i, it := range items {
		rows[i] = infra.ReporteEmpleadoRow{
			CajeroNombre:   it.CajeroNombre,
			CantidadVentas: it.CantidadVentas,
			TotalVendido:   it.TotalVendido,
		}
	}
	return infra.GenerateReporteEmpleadosPDF(rows, filter.FechaInicio, filter.FechaFin, s.storagePath)
}

func (s *reporteService) VentasRecientes(ctx context.Context, limit int) ([]dto.VentaRecienteItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	ventas, err := s.ventas.Recientes(ctx, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VentaRecienteItem, len(ventas))
	for i, v := range ventas {
		items[i] = dto.VentaRecienteItem{
			ID:           v.ID,
			OrdenID:      v.OrdenID,
			CajeroNombre: v.CajeroNombre,
			Total:        v.Total,
			FechaVenta:   v.FechaVenta.Format("2006-01-02 15:04:05"),
		}
	}
	return items, nil
}
