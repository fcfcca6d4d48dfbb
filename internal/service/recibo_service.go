package service

import (
	"context"
	"errors"

	"sallepos/internal/infra"
	"sallepos/internal/repository"
)

var ErrVentaNoEncontrada = errors.New("Venta no encontrada")

type ReciboService interface {
	// Generar renders the receipt PDF for a completed sale and returns the
	// path of the written file.
	Generar(ctx context.Context, ventaID uint) (string, error)
}

type reciboService struct {
	ventas        repository.VentaRepository
	configuracion repository.ConfiguracionRepository
	storagePath   string
}

func NewReciboService(
	ventas repository.VentaRepository,
	configuracion repository.ConfiguracionRepository,
	storagePath string,
) ReciboService {
	return &reciboService{ventas: ventas, configuracion: configuracion, storagePath: storagePath}
}

func (s *reciboService) Generar(ctx context.Context, ventaID uint) (string, error) {
	venta, err := s.ventas.FindByID(ctx, ventaID)
	if err != nil {
		return "", ErrVentaNoEncontrada
	}
	cfg, err := s.configuracion.Get(ctx)
	if err != nil {
		return "", err
	}
	return infra.GenerateReciboPDF(venta, cfg, s.storagePath)
}
