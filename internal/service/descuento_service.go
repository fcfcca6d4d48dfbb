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

var ErrDescuentoNoEncontrado = errors.New("Descuento no encontrado")

type DescuentoService interface {
	Crear(ctx context.Context, req dto.CrearDescuentoRequest) (*dto.DescuentoResponse, error)
	Listar(ctx context.Context, soloActivos bool) ([]dto.DescuentoResponse, error)
	// ActivoParaCliente returns the discount the terminal may offer at payment
	// time, or nil when the client has none.
	ActivoParaCliente(ctx context.Context, clienteID uint) (*dto.DescuentoResponse, error)
	Desactivar(ctx context.Context, id uint) error
}

type descuentoService struct {
	repo     repository.DescuentoRepository
	clientes repository.ClienteRepository
}

func NewDescuentoService(repo repository.DescuentoRepository, clientes repository.ClienteRepository) DescuentoService {
	return &descuentoService{repo: repo, clientes: clientes}
}

func (s *descuentoService) Crear(ctx context.Context, req dto.CrearDescuentoRequest) (*dto.DescuentoResponse, error) {
	cien := decimal.NewFromInt(100)
	if req.PorcentajeDescuento.LessThanOrEqual(decimal.Zero) || req.PorcentajeDescuento.GreaterThan(cien) {
		return nil, errors.New("El porcentaje de descuento debe estar entre 0 y 100")
	}
	if req.ClienteID != nil {
		if _, err := s.clientes.FindByID(ctx, *req.ClienteID); err != nil {
			return nil, repository.ErrClienteNoEncontrado
		}
	}

	d := &model.DescuentoCliente{
		ClienteID:           req.ClienteID,
		PorcentajeDescuento: req.PorcentajeDescuento.Round(2),
		Activo:              true,
		Notas:               req.Notas,
	}
	if req.FechaFin != nil {
		fin, err := time.ParseInLocation("2006-01-02", *req.FechaFin, time.Local)
		if err != nil {
			return nil, errors.New("fecha_fin inválida, use el formato YYYY-MM-DD")
		}
		d.FechaFin = &fin
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return descuentoToResponse(d), nil
}

func (s *descuentoService) Listar(ctx context.Context, soloActivos bool) ([]dto.DescuentoResponse, error) {
	descuentos, err := s.repo.List(ctx, soloActivos)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.DescuentoResponse, len(descuentos))
	for i := range descuentos {
		resp[i] = *descuentoToResponse(&descuentos[i])
	}
	return resp, nil
}

func (s *descuentoService) ActivoParaCliente(ctx context.Context, clienteID uint) (*dto.DescuentoResponse, error) {
	d, err := s.repo.FindActivoByCliente(ctx, clienteID)
	if err != nil {
		return nil, nil // no active discount is not an error
	}
	return descuentoToResponse(d), nil
}

func (s *descuentoService) Desactivar(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrDescuentoNoEncontrado
	}
	return s.repo.Desactivar(ctx, id)
}

func descuentoToResponse(d *model.DescuentoCliente) *dto.DescuentoResponse {
	resp := &dto.DescuentoResponse{
		ID:                  d.ID,
		ClienteID:           d.ClienteID,
		PorcentajeDescuento: d.PorcentajeDescuento,
		Activo:              d.Activo,
		FechaInicio:         d.FechaInicio.Format("2006-01-02"),
		Notas:               d.Notas,
	}
	if d.Cliente != nil {
		resp.ClienteNombre = &d.Cliente.Nombre
	}
	if d.FechaFin != nil {
		fin := d.FechaFin.Format("2006-01-02")
		resp.FechaFin = &fin
	}
	return resp
}
