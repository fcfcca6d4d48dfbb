package service

import (
	"context"

	"sallepos/internal/dto"
	"sallepos/internal/model"
	"sallepos/internal/repository"
)

type ConfiguracionService interface {
	// Obtener returns the ticket configuration, falling back to defaults when
	// none was saved yet.
	Obtener(ctx context.Context) (*model.ConfiguracionTicket, error)
	Guardar(ctx context.Context, updatedBy uint, req dto.ConfiguracionTicketRequest) (*model.ConfiguracionTicket, error)
}

type configuracionService struct {
	repo repository.ConfiguracionRepository
}

func NewConfiguracionService(repo repository.ConfiguracionRepository) ConfiguracionService {
	return &configuracionService{repo: repo}
}

func (s *configuracionService) Obtener(ctx context.Context) (*model.ConfiguracionTicket, error) {
	cfg, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = &model.ConfiguracionTicket{NombreNegocio: "SallePOS", MostrarPuntos: true}
	}
	return cfg, nil
}

func (s *configuracionService) Guardar(ctx context.Context, updatedBy uint, req dto.ConfiguracionTicketRequest) (*model.ConfiguracionTicket, error) {
	mostrarPuntos := true
	if req.MostrarPuntos != nil {
		mostrarPuntos = *req.MostrarPuntos
	}
	cfg := &model.ConfiguracionTicket{
		NombreNegocio:         req.NombreNegocio,
		Direccion:             req.Direccion,
		Telefono:              req.Telefono,
		RFC:                   req.RFC,
		MensajeAgradecimiento: req.MensajeAgradecimiento,
		MostrarPuntos:         mostrarPuntos,
		Encabezado:            req.Encabezado,
		PiePagina:             req.PiePagina,
		LogoURL:               req.LogoURL,
		UpdatedBy:             &updatedBy,
	}
	if err := s.repo.Upsert(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
